package blob

import (
	"context"
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"
	azb "github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/blob"

	"snackmatch/internal/config"
)

// AzureStore keeps generated images in an Azure blob container.
type AzureStore struct {
	client    *azblob.Client
	account   string
	container string
}

var _ Store = (*AzureStore)(nil)

func NewAzureStore(cfg config.StorageConfig) (*AzureStore, error) {
	if cfg.AzureAccountName == "" {
		return nil, fmt.Errorf("AZURE_STORAGE_ACCOUNT_NAME could not be found")
	}
	if cfg.AzureAccountKey == "" {
		return nil, fmt.Errorf("AZURE_STORAGE_PRIMARY_ACCOUNT_KEY could not be found")
	}

	cred, err := azblob.NewSharedKeyCredential(cfg.AzureAccountName, cfg.AzureAccountKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create shared key credential: %w", err)
	}

	client, err := azblob.NewClientWithSharedKeyCredential(fmt.Sprintf("https://%s.blob.core.windows.net/", cfg.AzureAccountName), cred, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create blob client: %w", err)
	}

	return &AzureStore{
		client:    client,
		account:   cfg.AzureAccountName,
		container: cfg.AzureContainer,
	}, nil
}

func (s *AzureStore) Put(ctx context.Context, key string, data []byte, contentType string) error {
	_, err := s.client.UploadBuffer(ctx, s.container, key, data, &azblob.UploadBufferOptions{
		HTTPHeaders: &azb.HTTPHeaders{BlobContentType: &contentType},
	})
	return err
}

func (s *AzureStore) URL(key string) string {
	return fmt.Sprintf("https://%s.blob.core.windows.net/%s/%s", s.account, s.container, key)
}
