// Package llm defines the generative-model collaborator consumed by the
// assistant engine.
//
// The engine treats providers as opaque oracles: a single attempt per
// turn, bounded by the caller's context, with empty replies, errors and
// timeouts all handled identically upstream. There is no retry here or
// anywhere above.
package llm

import "context"

// Conversation roles.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is a single message in a conversation.
type Message struct {
	// Role is "system", "user", or "assistant".
	Role string `json:"role"`

	// Content is the message text.
	Content string `json:"content"`
}

// Request carries one completion call: a system prompt, the recent
// conversation history, and the current user message.
type Request struct {
	// System is the system prompt, already including any retrieval
	// context the caller wants the model grounded on.
	System string

	// History is the recent conversation window, oldest first.
	History []Message

	// User is the current user message.
	User string
}

// Messages flattens the request into provider wire order: system
// prompt, history, current user message.
func (r *Request) Messages() []Message {
	messages := make([]Message, 0, len(r.History)+2)
	if r.System != "" {
		messages = append(messages, Message{Role: RoleSystem, Content: r.System})
	}
	messages = append(messages, r.History...)
	messages = append(messages, Message{Role: RoleUser, Content: r.User})
	return messages
}

// Provider is implemented by every generative-model backend.
type Provider interface {
	// Complete returns the model's reply text for the request. It must
	// honor ctx cancellation; the engine wraps every call in a timeout.
	Complete(ctx context.Context, req *Request, opts ...Option) (string, error)

	// Close releases provider resources.
	Close() error
}

// Options contains generation parameters.
type Options struct {
	// Temperature controls randomness (0.0-2.0).
	Temperature float64

	// MaxTokens limits the reply length.
	MaxTokens int
}

// Option configures generation parameters.
type Option func(*Options)

// WithTemperature sets the sampling temperature.
func WithTemperature(temp float64) Option {
	return func(opts *Options) {
		opts.Temperature = temp
	}
}

// WithMaxTokens sets the reply token limit.
func WithMaxTokens(max int) Option {
	return func(opts *Options) {
		opts.MaxTokens = max
	}
}

// ApplyOptions resolves options against the defaults used for concierge
// replies: low temperature, short answers.
func ApplyOptions(opts []Option) *Options {
	options := &Options{
		Temperature: 0.6,
		MaxTokens:   250,
	}
	for _, opt := range opts {
		opt(options)
	}
	return options
}
