// Package modelrunner provides a small client for an OpenAI-compatible
// embeddings endpoint (Docker Model Runner, llama.cpp server, OpenAI) and
// adapts it to domain.EmbeddingProvider.
package modelrunner

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// DefaultEmbeddingsPath is the Docker Model Runner embeddings route.
const DefaultEmbeddingsPath = "/engines/v1/embeddings"

// DRMAPIClient is a thin client for the OpenAI-compatible embeddings API
type DRMAPIClient struct {
	baseURL        string
	embeddingsPath string
	apiKey         string
	http           *http.Client
}

// NewDRMAPIClient creates a new client. An empty embeddingsPath uses DefaultEmbeddingsPath.
func NewDRMAPIClient(baseURL, embeddingsPath, apiKey string, httpClient *http.Client) DRMAPIClient {
	if embeddingsPath == "" {
		embeddingsPath = DefaultEmbeddingsPath
	}
	return DRMAPIClient{
		baseURL:        baseURL,
		embeddingsPath: embeddingsPath,
		apiKey:         apiKey,
		http:           httpClient,
	}
}

// StatusErr is returned for non-2xx responses.
type StatusErr struct {
	StatusCode int
	Status     string
	Body       string
}

func (e *StatusErr) Error() string {
	return fmt.Sprintf("non-2xx response: %s: %s", e.Status, e.Body)
}

// Embeddings calls the embeddings endpoint.
func (c DRMAPIClient) Embeddings(ctx context.Context, req EmbeddingsRequest) (*EmbeddingsResponse, error) {
	if req.Model == "" {
		return nil, errors.New("model is required")
	}
	if len(req.Input) == 0 {
		return nil, errors.New("input is required")
	}

	httpReq, err := c.newPostRequest(ctx, c.embeddingsPath, req)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("http do: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &StatusErr{StatusCode: resp.StatusCode, Status: resp.Status, Body: string(respBody)}
	}

	var out EmbeddingsResponse
	if err := json.Unmarshal(respBody, &out); err != nil {
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}

	return &out, nil
}

func (c DRMAPIClient) newPostRequest(ctx context.Context, path string, body any) (*http.Request, error) {
	endpoint, err := url.JoinPath(c.baseURL, path)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}
	var bodyReader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request: %w", err)
		}
		bodyReader = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
	return req, nil
}
