package blob

import (
	"log/slog"

	"snackmatch/internal/config"
)

// MakeStore picks a backend from the storage config: S3-compatible when
// an endpoint is set, Azure when an account name is set, otherwise a
// local directory.
func MakeStore(cfg config.StorageConfig) (Store, error) {
	if cfg.Endpoint != "" {
		slog.Info("using s3-compatible storage for images", "endpoint", cfg.Endpoint, "bucket", cfg.Bucket)
		return NewMinioStore(cfg)
	}
	if cfg.AzureAccountName != "" {
		slog.Info("using azure blob storage for images", "account", cfg.AzureAccountName, "container", cfg.AzureContainer)
		return NewAzureStore(cfg)
	}
	slog.Info("using local directory for images", "dir", cfg.FileDir)
	return NewFileStore(cfg.FileDir, cfg.PublicBaseURL), nil
}
