package feeds

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"photofeed/internal/core/posts"
)

// ImageClient fetches the randomized external image source
type ImageClient struct {
	client  *http.Client
	baseURL string
}

// NewImageClient creates a client for the randomized image endpoint
func NewImageClient(client *http.Client, baseURL string) *ImageClient {
	if client == nil {
		client = http.DefaultClient
	}
	return &ImageClient{client: client, baseURL: baseURL}
}

// RandomImage fetches one random image URL.
// Non-2xx responses yield posts.ErrFetch and are not retried.
func (c *ImageClient) RandomImage(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL, nil)
	if err != nil {
		return "", fmt.Errorf("creating image request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", posts.ErrFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("%w: image source returned status %d", posts.ErrFetch, resp.StatusCode)
	}

	var payload struct {
		Image string `json:"image"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("%w: %v", posts.ErrDataFormat, err)
	}
	if payload.Image == "" {
		return "", fmt.Errorf("%w: image source returned empty URL", posts.ErrDataFormat)
	}

	return payload.Image, nil
}
