// warmimages pre-generates trending thumbnails against a running
// snackmatch server so first page loads don't start cold.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"snackmatch/internal/catalog"
)

func main() {
	var addr string
	var timeout time.Duration

	flag.StringVar(&addr, "addr", "http://localhost:8080", "Base URL of the snackmatch server")
	flag.DurationVar(&timeout, "timeout", 2*time.Minute, "Per-request timeout")
	flag.Parse()

	client := retryablehttp.NewClient()
	client.RetryMax = 2
	client.HTTPClient.Timeout = timeout
	client.Logger = nil
	// keep the final 500 response so its error body can be reported
	client.ErrorHandler = retryablehttp.PassthroughErrorHandler

	failed := 0
	for _, snack := range catalog.Trending() {
		url, err := warm(client, addr, snack)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%-25s FAILED: %v\n", snack.Name, err)
			failed++
			continue
		}
		fmt.Printf("%-25s %s\n", snack.Name, url)
	}

	if failed > 0 {
		os.Exit(1)
	}
}

type generateResponse struct {
	ImageURL string `json:"imageUrl"`
	FileName string `json:"fileName"`
	Error    string `json:"error"`
}

func warm(client *retryablehttp.Client, addr string, snack catalog.Snack) (string, error) {
	body, err := json.Marshal(map[string]string{
		"snackName":   snack.Name,
		"description": snack.ImagePrompt,
	})
	if err != nil {
		return "", err
	}

	resp, err := client.Post(addr+"/api/images/generate", "application/json", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	var parsed generateResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", fmt.Errorf("unexpected response: %s", respBody)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("server returned %d: %s", resp.StatusCode, parsed.Error)
	}
	if parsed.ImageURL == "" {
		return "", fmt.Errorf("no image URL in response")
	}
	return parsed.ImageURL, nil
}
