package blob

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"snackmatch/internal/config"
)

// MinioStore talks to any S3-compatible endpoint. The bucket is created
// on first use and is expected to allow public reads so the URLs it
// hands out resolve without signing.
type MinioStore struct {
	client   *minio.Client
	bucket   string
	initOnce sync.Once
	initErr  error
}

var _ Store = (*MinioStore)(nil)

func NewMinioStore(cfg config.StorageConfig) (*MinioStore, error) {
	endpoint := strings.TrimSpace(cfg.Endpoint)
	if endpoint == "" {
		return nil, fmt.Errorf("s3 endpoint is required")
	}
	if cfg.AccessKey == "" || cfg.SecretKey == "" {
		return nil, fmt.Errorf("s3 access key and secret key are required")
	}

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("init s3 client: %w", err)
	}

	return &MinioStore{client: client, bucket: cfg.Bucket}, nil
}

func (s *MinioStore) ensureBucket(ctx context.Context) error {
	s.initOnce.Do(func() {
		exists, err := s.client.BucketExists(ctx, s.bucket)
		if err != nil {
			s.initErr = err
			return
		}
		if exists {
			return
		}
		s.initErr = s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{})
	})
	return s.initErr
}

func (s *MinioStore) Put(ctx context.Context, key string, data []byte, contentType string) error {
	if err := s.ensureBucket(ctx); err != nil {
		return fmt.Errorf("ensure bucket: %w", err)
	}
	_, err := s.client.PutObject(ctx, s.bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	return err
}

func (s *MinioStore) URL(key string) string {
	return strings.TrimSuffix(s.client.EndpointURL().String(), "/") + "/" + s.bucket + "/" + key
}

// Ready probes the bucket so /ready fails fast on bad credentials.
func (s *MinioStore) Ready(ctx context.Context) error {
	return s.ensureBucket(ctx)
}
