// Package openai provides an llm.Provider backed by the OpenAI chat
// completions API.
//
// Any OpenAI-compatible endpoint works through BaseURL; in particular
// Groq's API is served by pointing BaseURL at
// https://api.groq.com/openai/v1.
package openai

import (
	"context"
	"errors"

	openai "github.com/sashabaranov/go-openai"

	"github.com/chatfolio/chatfolio-go/pkg/llm"
)

// GroqBaseURL is the OpenAI-compatible endpoint for Groq.
const GroqBaseURL = "https://api.groq.com/openai/v1"

const defaultModel = "gpt-4o-mini"

// Client implements llm.Provider on the OpenAI API.
type Client struct {
	client *openai.Client
	model  string
}

// Config is the configuration for the OpenAI provider.
type Config struct {
	// APIKey is the API key (required).
	APIKey string

	// Model is the model name. Defaults to "gpt-4o-mini".
	Model string

	// BaseURL overrides the API endpoint, e.g. for Groq or a proxy.
	BaseURL string
}

// NewClient creates an OpenAI provider.
func NewClient(cfg *Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("openai: api key is required")
	}

	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}

	model := cfg.Model
	if model == "" {
		model = defaultModel
	}

	return &Client{
		client: openai.NewClientWithConfig(clientConfig),
		model:  model,
	}, nil
}

// Complete sends the request as a chat completion and returns the
// first choice's content.
func (c *Client) Complete(ctx context.Context, req *llm.Request, opts ...llm.Option) (string, error) {
	options := llm.ApplyOptions(opts)

	messages := req.Messages()
	chatMessages := make([]openai.ChatCompletionMessage, len(messages))
	for i, msg := range messages {
		chatMessages[i] = openai.ChatCompletionMessage{
			Role:    msg.Role,
			Content: msg.Content,
		}
	}

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Messages:    chatMessages,
		Temperature: float32(options.Temperature),
		MaxTokens:   options.MaxTokens,
	})
	if err != nil {
		return "", err
	}

	if len(resp.Choices) == 0 {
		return "", errors.New("openai: no choices returned")
	}

	return resp.Choices[0].Message.Content, nil
}

// Close is a no-op; the SDK client holds no resources needing release.
func (c *Client) Close() error {
	return nil
}
