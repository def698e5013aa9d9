package blob

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"snackmatch/internal/config"
)

func TestMemoryStorePut(t *testing.T) {
	s := NewMemoryStore()
	require.NoError(t, s.Put(context.Background(), "a.png", []byte{1, 2, 3}, "image/png"))

	data, ok := s.Data("a.png")
	require.True(t, ok)
	assert.Equal(t, []byte{1, 2, 3}, data)
	assert.Equal(t, []string{"a.png"}, s.Keys())
}

func TestFileStorePutAndURL(t *testing.T) {
	dir := t.TempDir()
	s := NewFileStore(dir, "http://localhost:8080/")

	require.NoError(t, s.Put(context.Background(), "pizza-1.png", []byte("png"), "image/png"))

	data, err := os.ReadFile(filepath.Join(dir, "pizza-1.png"))
	require.NoError(t, err)
	assert.Equal(t, "png", string(data))
	assert.Equal(t, "http://localhost:8080/images/pizza-1.png", s.URL("pizza-1.png"))
}

func TestMakeStoreFallsBackToFile(t *testing.T) {
	store, err := MakeStore(config.StorageConfig{FileDir: t.TempDir(), PublicBaseURL: "http://localhost:8080"})
	require.NoError(t, err)
	_, ok := store.(*FileStore)
	assert.True(t, ok)
}

func TestMinioStoreRequiresCredentials(t *testing.T) {
	_, err := NewMinioStore(config.StorageConfig{Endpoint: "localhost:9000"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "access key")
}

func TestAzureStoreRequiresCredentials(t *testing.T) {
	_, err := NewAzureStore(config.StorageConfig{AzureAccountName: "acct"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "AZURE_STORAGE_PRIMARY_ACCOUNT_KEY")
}
