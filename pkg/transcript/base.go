// Package transcript provides conversation transcript types and storage
// backends.
//
// A conversation is flushed to a Store once, at session end, by the
// embedding application; during a session the message list is owned by
// the session handler and never shared. Backends are provided for
// SQLite (local development), PostgreSQL and MySQL.
package transcript

import (
	"context"
	"time"
)

// Conversation roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is a single turn in a conversation.
type Message struct {
	// Role is "user" or "assistant".
	Role string `json:"role"`

	// Content is the message text.
	Content string `json:"content"`

	// Timestamp is when the message was appended.
	Timestamp time.Time `json:"timestamp"`
}

// Conversation is a complete session transcript.
type Conversation struct {
	// ID is the unique identifier, assigned by the store on first save
	// if zero.
	ID int64 `json:"id"`

	// SessionID identifies the visitor session this transcript belongs to.
	SessionID string `json:"session_id"`

	// Messages is the ordered message list.
	Messages []Message `json:"messages"`

	// StartedAt is when the session began.
	StartedAt time.Time `json:"started_at"`

	// EndedAt is when the session ended (nil while open).
	EndedAt *time.Time `json:"ended_at,omitempty"`

	// Topics is the session's topic history, insertion-ordered.
	Topics []string `json:"topics,omitempty"`

	// Intents lists the intent types observed during the session.
	Intents []string `json:"intents,omitempty"`

	// MessageCount is len(Messages), denormalized for listing queries.
	MessageCount int `json:"message_count"`
}

// Store persists conversation transcripts.
type Store interface {
	// Save writes the conversation, assigning an ID if it has none.
	// Saving an existing ID replaces the stored transcript, so a
	// session-end flush is idempotent.
	Save(ctx context.Context, conv *Conversation) (int64, error)

	// Get returns a conversation by ID.
	Get(ctx context.Context, id int64) (*Conversation, error)

	// List returns conversations, newest first. A non-empty sessionID
	// filters to that session; limit <= 0 means no limit.
	List(ctx context.Context, sessionID string, limit int) ([]*Conversation, error)

	// Close releases the backing connection.
	Close() error
}
