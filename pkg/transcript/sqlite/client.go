// Package sqlite provides a SQLite transcript store.
//
// Message lists and topic/intent sets are stored as JSON strings in
// TEXT columns, which keeps the schema portable across the SQL
// backends.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bwmarrin/snowflake"
	_ "github.com/mattn/go-sqlite3"

	"github.com/chatfolio/chatfolio-go/pkg/transcript"
)

// Client implements transcript.Store using SQLite as the backend.
type Client struct {
	db        *sql.DB
	tableName string
	node      *snowflake.Node
}

// Config contains configuration for creating a SQLite transcript store.
type Config struct {
	// DBPath is the path to the SQLite database file.
	DBPath string

	// TableName is the table storing conversations. Defaults to
	// "conversations".
	TableName string
}

// NewClient creates a SQLite transcript store, creating the database
// file and schema as needed.
func NewClient(cfg *Config) (*Client, error) {
	dbDir := filepath.Dir(cfg.DBPath)
	if dbDir != "" && dbDir != "." {
		if err := os.MkdirAll(dbDir, 0755); err != nil {
			return nil, fmt.Errorf("transcript sqlite: create directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", cfg.DBPath+"?_foreign_keys=1&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("transcript sqlite: %w", err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("transcript sqlite: %w", err)
	}

	tableName := cfg.TableName
	if tableName == "" {
		tableName = "conversations"
	}

	node, err := snowflake.NewNode(1)
	if err != nil {
		return nil, fmt.Errorf("transcript sqlite: %w", err)
	}

	client := &Client{db: db, tableName: tableName, node: node}
	if err := client.initTables(context.Background()); err != nil {
		return nil, err
	}

	return client, nil
}

func (c *Client) initTables(ctx context.Context) error {
	query := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			id INTEGER PRIMARY KEY,
			session_id TEXT NOT NULL,
			messages TEXT NOT NULL,
			topics TEXT,
			intents TEXT,
			started_at DATETIME NOT NULL,
			ended_at DATETIME,
			message_count INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`, c.tableName)

	if _, err := c.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("transcript sqlite: init tables: %w", err)
	}

	indexQuery := fmt.Sprintf(`
		CREATE INDEX IF NOT EXISTS idx_%s_session ON %s(session_id)
	`, c.tableName, c.tableName)
	if _, err := c.db.ExecContext(ctx, indexQuery); err != nil {
		return fmt.Errorf("transcript sqlite: init tables: %w", err)
	}

	return nil
}

// Save writes the conversation, assigning a snowflake ID if needed.
func (c *Client) Save(ctx context.Context, conv *transcript.Conversation) (int64, error) {
	if conv.ID == 0 {
		conv.ID = c.node.Generate().Int64()
	}
	conv.MessageCount = len(conv.Messages)

	messages, topics, intents, err := encodeDocuments(conv)
	if err != nil {
		return 0, err
	}

	query := fmt.Sprintf(`
		INSERT OR REPLACE INTO %s
			(id, session_id, messages, topics, intents, started_at, ended_at, message_count)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, c.tableName)

	_, err = c.db.ExecContext(ctx, query,
		conv.ID, conv.SessionID, messages, topics, intents,
		conv.StartedAt, conv.EndedAt, conv.MessageCount)
	if err != nil {
		return 0, fmt.Errorf("transcript sqlite: save: %w", err)
	}

	return conv.ID, nil
}

// Get returns a conversation by ID.
func (c *Client) Get(ctx context.Context, id int64) (*transcript.Conversation, error) {
	query := fmt.Sprintf(`
		SELECT id, session_id, messages, topics, intents, started_at, ended_at, message_count
		FROM %s WHERE id = ?
	`, c.tableName)

	conv, err := scanConversation(c.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("transcript sqlite: conversation %d not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("transcript sqlite: get: %w", err)
	}
	return conv, nil
}

// List returns conversations, newest first.
func (c *Client) List(ctx context.Context, sessionID string, limit int) ([]*transcript.Conversation, error) {
	where, args := buildWhereClause(sessionID)
	query := fmt.Sprintf(`
		SELECT id, session_id, messages, topics, intents, started_at, ended_at, message_count
		FROM %s %s ORDER BY started_at DESC
	`, c.tableName, where)
	if limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", limit)
	}

	rows, err := c.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("transcript sqlite: list: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var convs []*transcript.Conversation
	for rows.Next() {
		conv, err := scanConversation(rows)
		if err != nil {
			return nil, fmt.Errorf("transcript sqlite: list: %w", err)
		}
		convs = append(convs, conv)
	}
	return convs, rows.Err()
}

// Close closes the database connection.
func (c *Client) Close() error {
	return c.db.Close()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanConversation(row rowScanner) (*transcript.Conversation, error) {
	var conv transcript.Conversation
	var messages string
	var topics, intents sql.NullString

	err := row.Scan(&conv.ID, &conv.SessionID, &messages, &topics, &intents,
		&conv.StartedAt, &conv.EndedAt, &conv.MessageCount)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(messages), &conv.Messages); err != nil {
		return nil, err
	}
	if topics.Valid && topics.String != "" {
		if err := json.Unmarshal([]byte(topics.String), &conv.Topics); err != nil {
			return nil, err
		}
	}
	if intents.Valid && intents.String != "" {
		if err := json.Unmarshal([]byte(intents.String), &conv.Intents); err != nil {
			return nil, err
		}
	}

	return &conv, nil
}

func encodeDocuments(conv *transcript.Conversation) (messages, topics, intents string, err error) {
	m, err := json.Marshal(conv.Messages)
	if err != nil {
		return "", "", "", fmt.Errorf("transcript: encode messages: %w", err)
	}
	t, err := json.Marshal(conv.Topics)
	if err != nil {
		return "", "", "", fmt.Errorf("transcript: encode topics: %w", err)
	}
	i, err := json.Marshal(conv.Intents)
	if err != nil {
		return "", "", "", fmt.Errorf("transcript: encode intents: %w", err)
	}
	return string(m), string(t), string(i), nil
}
