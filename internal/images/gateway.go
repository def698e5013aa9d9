package images

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"snackmatch/internal/config"
)

const (
	defaultGatewayEndpoint = "https://ai.gateway.lovable.dev/v1/chat/completions"
	defaultGatewayModel    = "google/gemini-2.5-flash-image"
)

// GatewayClient calls an OpenAI-compatible chat completions endpoint
// that returns generated images inline as base64 data URLs.
type GatewayClient struct {
	apiKey     string
	model      string
	endpoint   string
	httpClient *http.Client
}

var _ Model = (*GatewayClient)(nil)

func NewGatewayClient(cfg config.AIConfig) *GatewayClient {
	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		model = defaultGatewayModel
	}
	endpoint := strings.TrimSpace(cfg.GatewayEndpoint)
	if endpoint == "" {
		endpoint = defaultGatewayEndpoint
	}
	return &GatewayClient{
		apiKey:     cfg.APIKey,
		model:      model,
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: 90 * time.Second},
	}
}

type gatewayMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type gatewayRequest struct {
	Model      string           `json:"model"`
	Messages   []gatewayMessage `json:"messages"`
	Modalities []string         `json:"modalities"`
}

type gatewayResponse struct {
	Choices []struct {
		Message struct {
			Images []struct {
				ImageURL struct {
					URL string `json:"url"`
				} `json:"image_url"`
			} `json:"images"`
		} `json:"message"`
	} `json:"choices"`
}

type gatewayErrorResponse struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (c *GatewayClient) GenerateImage(ctx context.Context, prompt string) ([]byte, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("AI_API_KEY is not configured")
	}

	body, err := json.Marshal(gatewayRequest{
		Model:      c.model,
		Messages:   []gatewayMessage{{Role: "user", Content: prompt}},
		Modalities: []string{"image", "text"},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal gateway request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build gateway request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("gateway request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed reading gateway response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var apiErr gatewayErrorResponse
		if err := json.Unmarshal(respBody, &apiErr); err == nil && apiErr.Error.Message != "" {
			return nil, fmt.Errorf("failed to generate image (%d): %s", resp.StatusCode, apiErr.Error.Message)
		}
		return nil, fmt.Errorf("failed to generate image (%d): %s", resp.StatusCode, strings.TrimSpace(string(respBody)))
	}

	var parsed gatewayResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return nil, fmt.Errorf("failed to decode gateway response: %w", err)
	}

	if len(parsed.Choices) == 0 || len(parsed.Choices[0].Message.Images) == 0 {
		return nil, ErrNoImage
	}
	dataURL := parsed.Choices[0].Message.Images[0].ImageURL.URL
	if dataURL == "" {
		return nil, ErrNoImage
	}

	return decodeDataURL(dataURL)
}

// decodeDataURL strips an optional "data:image/png;base64," header and
// decodes the remainder.
func decodeDataURL(s string) ([]byte, error) {
	if i := strings.IndexByte(s, ','); i >= 0 {
		s = s[i+1:]
	}
	data, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image data: %w", err)
	}
	return data, nil
}
