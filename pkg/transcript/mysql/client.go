// Package mysql provides a MySQL transcript store.
package mysql

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/bwmarrin/snowflake"
	_ "github.com/go-sql-driver/mysql"

	"github.com/chatfolio/chatfolio-go/pkg/transcript"
)

// Client implements transcript.Store using MySQL as the backend.
type Client struct {
	db        *sql.DB
	tableName string
	node      *snowflake.Node
}

// Config contains MySQL configuration.
type Config struct {
	Host      string
	Port      int
	User      string
	Password  string
	DBName    string
	TableName string
}

// NewClient creates a MySQL transcript store.
func NewClient(cfg *Config) (*Client, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true",
		cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.DBName)

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("transcript mysql: %w", err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("transcript mysql: %w", err)
	}

	tableName := cfg.TableName
	if tableName == "" {
		tableName = "conversations"
	}

	node, err := snowflake.NewNode(1)
	if err != nil {
		return nil, fmt.Errorf("transcript mysql: %w", err)
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
			session_id VARCHAR(128) NOT NULL,
			messages JSON NOT NULL,
			topics JSON,
			intents JSON,
			started_at DATETIME NOT NULL,
			ended_at DATETIME,
			message_count INT NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			INDEX idx_session (session_id)
		)
	`, c.tableName)

	if _, err := c.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("transcript mysql: init tables: %w", err)
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
		return 0, fmt.Errorf("transcript mysql: encode messages: %w", err)
	}
	topics, err := json.Marshal(conv.Topics)
	if err != nil {
		return 0, fmt.Errorf("transcript mysql: encode topics: %w", err)
	}
	intents, err := json.Marshal(conv.Intents)
	if err != nil {
		return 0, fmt.Errorf("transcript mysql: encode intents: %w", err)
	}

	query := fmt.Sprintf(`
		INSERT INTO %s
			(id, session_id, messages, topics, intents, started_at, ended_at, message_count)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE
			messages = VALUES(messages),
			topics = VALUES(topics),
			intents = VALUES(intents),
			ended_at = VALUES(ended_at),
			message_count = VALUES(message_count)
	`, c.tableName)

	_, err = c.db.ExecContext(ctx, query,
		conv.ID, conv.SessionID, string(messages), string(topics), string(intents),
		conv.StartedAt, conv.EndedAt, conv.MessageCount)
	if err != nil {
		return 0, fmt.Errorf("transcript mysql: save: %w", err)
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
		return nil, fmt.Errorf("transcript mysql: conversation %d not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("transcript mysql: get: %w", err)
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
		query += " WHERE session_id = ?"
		args = append(args, sessionID)
	}
	query += " ORDER BY started_at DESC"
	if limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", limit)
	}

	rows, err := c.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("transcript mysql: list: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var convs []*transcript.Conversation
	for rows.Next() {
		conv, err := scanConversation(rows)
		if err != nil {
			return nil, fmt.Errorf("transcript mysql: list: %w", err)
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
