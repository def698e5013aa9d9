// Package images owns the image generation flow: prompt construction,
// the model call, object storage, and the per-session URL cache.
package images

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"snackmatch/internal/blob"
	"snackmatch/internal/config"
)

// ErrNoImage means the model call succeeded but carried no image payload.
var ErrNoImage = errors.New("no image data in model response")

// Model turns a prompt into raw image bytes. The call is opaque: it
// either yields at least one decoded image or an error.
type Model interface {
	GenerateImage(ctx context.Context, prompt string) ([]byte, error)
}

// NewModel picks the backend named by config.
func NewModel(cfg config.AIConfig) (Model, error) {
	switch cfg.Provider {
	case "gateway", "":
		return NewGatewayClient(cfg), nil
	case "gemini":
		return NewGeminiClient(cfg), nil
	default:
		return nil, fmt.Errorf("unknown AI provider %q", cfg.Provider)
	}
}

type Service struct {
	model Model
	store blob.Store
}

func NewService(model Model, store blob.Store) *Service {
	return &Service{model: model, store: store}
}

type Generated struct {
	URL      string
	FileName string
}

// Generate produces one photographic image for a snack, persists it
// under a fresh key, and returns the object's public URL. Any failure
// short-circuits; nothing is written after a model failure.
func (s *Service) Generate(ctx context.Context, name, description string) (*Generated, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("snack name is required")
	}

	slog.InfoContext(ctx, "generating image", "snack", name)
	data, err := s.model.GenerateImage(ctx, Prompt(name, description))
	if err != nil {
		return nil, err
	}

	key := objectKey(name, time.Now())
	if err := s.store.Put(ctx, key, data, "image/png"); err != nil {
		return nil, fmt.Errorf("failed to store image: %w", err)
	}

	url := s.store.URL(key)
	slog.InfoContext(ctx, "image generated and uploaded", "snack", name, "url", url)
	return &Generated{URL: url, FileName: key}, nil
}
