// Package sqlite provides a SQLite-backed profile store.
//
// The profile lives in a single-document table: one row per named
// profile, the record serialized as JSON in a TEXT column. This mirrors
// how the hosted document database holds the profile in production
// while keeping local development self-contained.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/chatfolio/chatfolio-go/pkg/profile"
)

// Store implements profile.Store on a SQLite database.
type Store struct {
	db        *sql.DB
	tableName string
	docID     string
}

// Config contains configuration for creating a SQLite profile store.
type Config struct {
	// DBPath is the path to the SQLite database file.
	DBPath string

	// TableName is the table holding profile documents. Defaults to
	// "profiles".
	TableName string

	// DocID selects which profile row to load. Defaults to "default".
	DocID string
}

// NewStore opens (creating if necessary) the profile database.
func NewStore(cfg *Config) (*Store, error) {
	dbDir := filepath.Dir(cfg.DBPath)
	if dbDir != "" && dbDir != "." {
		if err := os.MkdirAll(dbDir, 0755); err != nil {
			return nil, fmt.Errorf("profile sqlite: create directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", cfg.DBPath+"?_foreign_keys=1&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("profile sqlite: %w", err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("profile sqlite: %w", err)
	}

	tableName := cfg.TableName
	if tableName == "" {
		tableName = "profiles"
	}
	docID := cfg.DocID
	if docID == "" {
		docID = "default"
	}

	store := &Store{db: db, tableName: tableName, docID: docID}
	if err := store.initTables(context.Background()); err != nil {
		return nil, err
	}

	return store, nil
}

func (s *Store) initTables(ctx context.Context) error {
	query := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			doc_id TEXT PRIMARY KEY,
			record TEXT NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`, s.tableName)

	if _, err := s.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("profile sqlite: init tables: %w", err)
	}
	return nil
}

// Load reads and decodes the selected profile document.
func (s *Store) Load(ctx context.Context) (*profile.Record, error) {
	query := fmt.Sprintf("SELECT record FROM %s WHERE doc_id = ?", s.tableName)

	var raw string
	err := s.db.QueryRowContext(ctx, query, s.docID).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("profile sqlite: no profile with doc_id %q", s.docID)
	}
	if err != nil {
		return nil, fmt.Errorf("profile sqlite: load: %w", err)
	}

	var record profile.Record
	if err := json.Unmarshal([]byte(raw), &record); err != nil {
		return nil, fmt.Errorf("profile sqlite: decode: %w", err)
	}
	return &record, nil
}

// Save writes the record as the selected document, replacing any
// previous version. Intended for seeding and admin tooling, not for the
// engine, which treats the profile as read-only.
func (s *Store) Save(ctx context.Context, record *profile.Record) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("profile sqlite: encode: %w", err)
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (doc_id, record, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(doc_id) DO UPDATE SET record = excluded.record, updated_at = excluded.updated_at
	`, s.tableName)

	if _, err := s.db.ExecContext(ctx, query, s.docID, string(data), time.Now().UTC()); err != nil {
		return fmt.Errorf("profile sqlite: save: %w", err)
	}
	return nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}
