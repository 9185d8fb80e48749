// Package postgres provides a PostgreSQL transcript store.
package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/bwmarrin/snowflake"
	_ "github.com/lib/pq"

	"github.com/chatfolio/chatfolio-go/pkg/transcript"
)

// Client implements transcript.Store using PostgreSQL as the backend.
type Client struct {
	db        *sql.DB
	tableName string
	node      *snowflake.Node
}

// Config contains PostgreSQL configuration.
type Config struct {
	Host      string
	Port      int
	User      string
	Password  string
	DBName    string
	TableName string
	SSLMode   string
}

// NewClient creates a PostgreSQL transcript store.
func NewClient(cfg *Config) (*Client, error) {
	sslMode := cfg.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}

	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, sslMode)

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("transcript postgres: %w", err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("transcript postgres: %w", err)
	}

	tableName := cfg.TableName
	if tableName == "" {
		tableName = "conversations"
	}

	node, err := snowflake.NewNode(1)
	if err != nil {
		return nil, fmt.Errorf("transcript postgres: %w", err)
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
			id BIGINT PRIMARY KEY,
			session_id TEXT NOT NULL,
			messages JSONB NOT NULL,
			topics JSONB,
			intents JSONB,
			started_at TIMESTAMPTZ NOT NULL,
			ended_at TIMESTAMPTZ,
			message_count INTEGER NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ DEFAULT NOW()
		)
	`, c.tableName)

	if _, err := c.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("transcript postgres: init tables: %w", err)
	}

	indexQuery := fmt.Sprintf(`
		CREATE INDEX IF NOT EXISTS idx_%s_session ON %s(session_id)
	`, c.tableName, c.tableName)
	if _, err := c.db.ExecContext(ctx, indexQuery); err != nil {
		return fmt.Errorf("transcript postgres: init tables: %w", err)
	}

	return nil
}

// Save writes the conversation, assigning a snowflake ID if needed.
func (c *Client) Save(ctx context.Context, conv *transcript.Conversation) (int64, error) {
	if conv.ID == 0 {
		conv.ID = c.node.Generate().Int64()
	}
	conv.MessageCount = len(conv.Messages)

	messages, err := json.Marshal(conv.Messages)
	if err != nil {
		return 0, fmt.Errorf("transcript postgres: encode messages: %w", err)
	}
	topics, err := json.Marshal(conv.Topics)
	if err != nil {
		return 0, fmt.Errorf("transcript postgres: encode topics: %w", err)
	}
	intents, err := json.Marshal(conv.Intents)
	if err != nil {
		return 0, fmt.Errorf("transcript postgres: encode intents: %w", err)
	}

	query := fmt.Sprintf(`
		INSERT INTO %s
			(id, session_id, messages, topics, intents, started_at, ended_at, message_count)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO UPDATE SET
			messages = EXCLUDED.messages,
			topics = EXCLUDED.topics,
			intents = EXCLUDED.intents,
			ended_at = EXCLUDED.ended_at,
			message_count = EXCLUDED.message_count
	`, c.tableName)

	_, err = c.db.ExecContext(ctx, query,
		conv.ID, conv.SessionID, string(messages), string(topics), string(intents),
		conv.StartedAt, conv.EndedAt, conv.MessageCount)
	if err != nil {
		return 0, fmt.Errorf("transcript postgres: save: %w", err)
	}

	return conv.ID, nil
}

// Get returns a conversation by ID.
func (c *Client) Get(ctx context.Context, id int64) (*transcript.Conversation, error) {
	query := fmt.Sprintf(`
		SELECT id, session_id, messages, topics, intents, started_at, ended_at, message_count
		FROM %s WHERE id = $1
	`, c.tableName)

	conv, err := scanConversation(c.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("transcript postgres: conversation %d not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("transcript postgres: get: %w", err)
	}
	return conv, nil
}

// List returns conversations, newest first.
func (c *Client) List(ctx context.Context, sessionID string, limit int) ([]*transcript.Conversation, error) {
	query := fmt.Sprintf(`
		SELECT id, session_id, messages, topics, intents, started_at, ended_at, message_count
		FROM %s
	`, c.tableName)

	var args []interface{}
	if sessionID != "" {
		query += " WHERE session_id = $1"
		args = append(args, sessionID)
	}
	query += " ORDER BY started_at DESC"
	if limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", limit)
	}

	rows, err := c.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("transcript postgres: list: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var convs []*transcript.Conversation
	for rows.Next() {
		conv, err := scanConversation(rows)
		if err != nil {
			return nil, fmt.Errorf("transcript postgres: list: %w", err)
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
	if topics.Valid && topics.String != "" && topics.String != "null" {
		if err := json.Unmarshal([]byte(topics.String), &conv.Topics); err != nil {
			return nil, err
		}
	}
	if intents.Valid && intents.String != "" && intents.String != "null" {
		if err := json.Unmarshal([]byte(intents.String), &conv.Intents); err != nil {
			return nil, err
		}
	}

	return &conv, nil
}
