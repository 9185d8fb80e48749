// Package ollama provides an llm.Provider backed by a local or remote
// Ollama instance via its /api/chat endpoint.
package ollama

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/chatfolio/chatfolio-go/pkg/llm"
)

const (
	defaultBaseURL = "http://localhost:11434"
	defaultModel   = "llama3.1"
)

// Client implements llm.Provider against an Ollama server.
type Client struct {
	client  *http.Client
	model   string
	baseURL string
}

// Config is the configuration for the Ollama provider.
type Config struct {
	// Model is the model name. Defaults to "llama3.1".
	Model string

	// BaseURL is the Ollama service address. Defaults to
	// "http://localhost:11434".
	BaseURL string

	// HTTPClient overrides the default client (120s timeout). The
	// engine's turn timeout usually fires first; this is the backstop.
	HTTPClient *http.Client
}

// NewClient creates an Ollama provider.
func NewClient(cfg *Config) (*Client, error) {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	model := cfg.Model
	if model == "" {
		model = defaultModel
	}

	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: 120 * time.Second}
	}

	return &Client{
		client:  client,
		model:   model,
		baseURL: baseURL,
	}, nil
}

// Complete sends the request to /api/chat (non-streaming) and returns
// the reply content.
func (c *Client) Complete(ctx context.Context, req *llm.Request, opts ...llm.Option) (string, error) {
	options := llm.ApplyOptions(opts)

	reqBody := map[string]interface{}{
		"model":    c.model,
		"messages": req.Messages(),
		"stream":   false,
		"options": map[string]interface{}{
			"temperature": options.Temperature,
			"num_predict": options.MaxTokens,
		},
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("ollama: marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/api/chat", c.baseURL)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("ollama: create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("ollama: send request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("ollama: request failed with status %d: %s", resp.StatusCode, string(body))
	}

	var response struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return "", fmt.Errorf("ollama: decode response: %w", err)
	}

	if response.Message.Content == "" {
		return "", errors.New("ollama: empty response")
	}

	return response.Message.Content, nil
}

// Close is a no-op for the HTTP client.
func (c *Client) Close() error {
	return nil
}
