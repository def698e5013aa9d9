package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	AI      AIConfig
	Storage StorageConfig
}

type AIConfig struct {
	// Provider selects the image model backend: "gateway" speaks the
	// OpenAI-compatible chat completions dialect, "gemini" uses the
	// google genai SDK directly.
	Provider        string `envconfig:"AI_PROVIDER" default:"gateway"`
	APIKey          string `envconfig:"AI_API_KEY"`
	Model           string `envconfig:"AI_MODEL"`
	GatewayEndpoint string `envconfig:"AI_GATEWAY_ENDPOINT"`
}

type StorageConfig struct {
	// S3-compatible object storage. Selected when Endpoint is set.
	Endpoint  string `envconfig:"S3_ENDPOINT"`
	AccessKey string `envconfig:"S3_ACCESS_KEY"`
	SecretKey string `envconfig:"S3_SECRET_KEY"`
	Bucket    string `envconfig:"S3_BUCKET" default:"food-images"`
	UseSSL    bool   `envconfig:"S3_USE_SSL" default:"true"`

	// Azure blob storage. Selected when AzureAccountName is set.
	AzureAccountName string `envconfig:"AZURE_STORAGE_ACCOUNT_NAME"`
	AzureAccountKey  string `envconfig:"AZURE_STORAGE_PRIMARY_ACCOUNT_KEY"`
	AzureContainer   string `envconfig:"AZURE_STORAGE_CONTAINER" default:"food-images"`

	// Local directory fallback for development.
	FileDir       string `envconfig:"IMAGE_DIR" default:"images"`
	PublicBaseURL string `envconfig:"PUBLIC_BASE_URL" default:"http://localhost:8080"`
}

func Load() (*Config, error) {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}
