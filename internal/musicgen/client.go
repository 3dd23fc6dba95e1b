package musicgen

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultAPIURL is the hosted MusicGen inference endpoint.
const DefaultAPIURL = "https://router.huggingface.co/hf-inference/models/facebook/musicgen-small"

// maxBodyBytes caps how much of a response is buffered.
const maxBodyBytes = 64 << 20

// Client talks to a text-to-music inference endpoint.
type Client struct {
	apiURL string
	apiKey string
	http   *http.Client
}

// NewClient creates an inference client. An empty apiKey means no credential
// is configured and callers should skip the remote path.
func NewClient(apiURL, apiKey string, timeout time.Duration) *Client {
	return &Client{
		apiURL: apiURL,
		apiKey: apiKey,
		http:   &http.Client{Timeout: timeout},
	}
}

// GenerateRequest is the inference request body.
type GenerateRequest struct {
	Inputs string `json:"inputs"`
}

// Response is a completed HTTP exchange with the backend.
type Response struct {
	StatusCode int
	Body       []byte
}

// HasCredential reports whether a bearer token is configured.
func (c *Client) HasCredential() bool {
	return c.apiKey != ""
}

// Generate posts the prompt and returns the raw response. A non-nil error
// means no response was received; HTTP error statuses are returned as a
// Response for the caller to classify.
func (c *Client) Generate(ctx context.Context, prompt string) (Response, error) {
	body, err := json.Marshal(GenerateRequest{Inputs: prompt})
	if err != nil {
		return Response{}, fmt.Errorf("marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewReader(body))
	if err != nil {
		return Response{}, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return Response{}, fmt.Errorf("submit request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return Response{}, fmt.Errorf("read response: %w", err)
	}
	return Response{StatusCode: resp.StatusCode, Body: data}, nil
}
