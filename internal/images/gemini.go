package images

import (
	"context"
	"fmt"
	"strings"
	"sync"

	genai "google.golang.org/genai"

	"snackmatch/internal/config"
)

const defaultGeminiModel = "gemini-2.5-flash-image"

// GeminiClient generates images through the google genai SDK. The SDK
// client is built lazily so a missing credential surfaces as a
// per-request error instead of failing startup.
type GeminiClient struct {
	apiKey string
	model  string

	once    sync.Once
	cli     *genai.Client
	initErr error
}

var _ Model = (*GeminiClient)(nil)

func NewGeminiClient(cfg config.AIConfig) *GeminiClient {
	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		model = defaultGeminiModel
	}
	return &GeminiClient{apiKey: cfg.APIKey, model: model}
}

func (g *GeminiClient) GenerateImage(ctx context.Context, prompt string) ([]byte, error) {
	if g.apiKey == "" {
		return nil, fmt.Errorf("AI_API_KEY is not configured")
	}
	g.once.Do(func() {
		g.cli, g.initErr = genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  g.apiKey,
			Backend: genai.BackendGeminiAPI,
		})
	})
	if g.initErr != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", g.initErr)
	}

	resp, err := g.cli.Models.GenerateContent(ctx, g.model,
		[]*genai.Content{{Parts: []*genai.Part{{Text: prompt}}}},
		&genai.GenerateContentConfig{ResponseModalities: []string{"IMAGE", "TEXT"}},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to generate image: %w", err)
	}

	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if part.InlineData != nil && len(part.InlineData.Data) > 0 {
				return part.InlineData.Data, nil
			}
		}
	}
	return nil, ErrNoImage
}
