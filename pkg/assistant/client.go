package assistant

import (
	"context"
	"fmt"

	"github.com/bwmarrin/snowflake"

	"github.com/chatfolio/chatfolio-go/pkg/llm"
	ollamaLLM "github.com/chatfolio/chatfolio-go/pkg/llm/ollama"
	openaiLLM "github.com/chatfolio/chatfolio-go/pkg/llm/openai"
	"github.com/chatfolio/chatfolio-go/pkg/profile"
	"github.com/chatfolio/chatfolio-go/pkg/retrieval"
	"github.com/chatfolio/chatfolio-go/pkg/transcript"
	transcriptMySQL "github.com/chatfolio/chatfolio-go/pkg/transcript/mysql"
	transcriptPostgres "github.com/chatfolio/chatfolio-go/pkg/transcript/postgres"
	transcriptSQLite "github.com/chatfolio/chatfolio-go/pkg/transcript/sqlite"
)

// Client is the concierge engine for one profile.
//
// A Client owns the read-only profile record, the retrieval pipeline
// with its cache, and the optional model provider and transcript store.
// It is safe for use from concurrent sessions; per-session state
// (history, topic set) belongs to the caller and is passed into each
// HandleTurn call.
//
// Example:
//
//	config, _ := assistant.LoadConfigFromEnv()
//	client, _ := assistant.NewClient(config)
//	defer client.Close()
//
//	turn := client.HandleTurn(ctx, "tell me about his projects", history, topics)
//	fmt.Println(turn.Reply)
type Client struct {
	config      *Config
	profile     *profile.Record
	provider    llm.Provider
	retriever   *retrieval.Retriever
	transcripts transcript.Store
	node        *snowflake.Node
}

// NewClient creates a Client from configuration, with options for
// injecting pre-built collaborators (used by tests and by applications
// that assemble their own providers).
//
// The profile is loaded once here and held for the Client's lifetime.
func NewClient(cfg *Config, opts ...ClientOption) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var options clientOptions
	for _, opt := range opts {
		opt(&options)
	}

	record, err := loadProfile(cfg, &options)
	if err != nil {
		return nil, NewAssistantError("NewClient", err)
	}

	provider := options.provider
	if provider == nil {
		provider, err = initLLM(cfg.LLM)
		if err != nil {
			return nil, NewAssistantError("NewClient", err)
		}
	}

	store := options.transcriptStore
	if store == nil && cfg.Transcript != nil {
		store, err = initTranscriptStore(cfg.Transcript)
		if err != nil {
			return nil, NewAssistantError("NewClient", err)
		}
	}

	node, err := snowflake.NewNode(1)
	if err != nil {
		return nil, NewAssistantError("NewClient", err)
	}

	return &Client{
		config:      cfg,
		profile:     record,
		provider:    provider,
		retriever:   retrieval.NewRetriever(),
		transcripts: store,
		node:        node,
	}, nil
}

func loadProfile(cfg *Config, options *clientOptions) (*profile.Record, error) {
	if options.profileRecord != nil {
		return options.profileRecord, nil
	}

	store := options.profileStore
	if store == nil {
		if cfg.ProfilePath == "" {
			return nil, ErrProfileNotFound
		}
		store = profile.NewFileStore(cfg.ProfilePath)
	}

	record, err := store.Load(context.Background())
	if err != nil {
		return nil, err
	}
	return record, nil
}

// initLLM builds the provider named by the configuration. An empty
// provider name yields nil: the engine then answers from local
// templates only.
func initLLM(cfg LLMConfig) (llm.Provider, error) {
	switch cfg.Provider {
	case "":
		return nil, nil
	case "openai":
		return openaiLLM.NewClient(&openaiLLM.Config{
			APIKey:  cfg.APIKey,
			Model:   cfg.Model,
			BaseURL: cfg.BaseURL,
		})
	case "groq":
		baseURL := cfg.BaseURL
		if baseURL == "" {
			baseURL = openaiLLM.GroqBaseURL
		}
		return openaiLLM.NewClient(&openaiLLM.Config{
			APIKey:  cfg.APIKey,
			Model:   cfg.Model,
			BaseURL: baseURL,
		})
	case "ollama":
		return ollamaLLM.NewClient(&ollamaLLM.Config{
			Model:   cfg.Model,
			BaseURL: cfg.BaseURL,
		})
	default:
		return nil, fmt.Errorf("%w: unknown llm provider %q", ErrInvalidConfig, cfg.Provider)
	}
}

func initTranscriptStore(cfg *TranscriptConfig) (transcript.Store, error) {
	switch cfg.Provider {
	case "sqlite":
		return transcriptSQLite.NewClient(&transcriptSQLite.Config{
			DBPath:    getConfigString(cfg.Config, "db_path", "./conversations.db"),
			TableName: getConfigString(cfg.Config, "table_name", "conversations"),
		})
	case "postgres":
		return transcriptPostgres.NewClient(&transcriptPostgres.Config{
			Host:      getConfigString(cfg.Config, "host", "localhost"),
			Port:      getConfigInt(cfg.Config, "port", 5432),
			User:      getConfigString(cfg.Config, "user", "postgres"),
			Password:  getConfigString(cfg.Config, "password", ""),
			DBName:    getConfigString(cfg.Config, "db_name", "chatfolio"),
			TableName: getConfigString(cfg.Config, "table_name", "conversations"),
			SSLMode:   getConfigString(cfg.Config, "ssl_mode", "disable"),
		})
	case "mysql":
		return transcriptMySQL.NewClient(&transcriptMySQL.Config{
			Host:      getConfigString(cfg.Config, "host", "localhost"),
			Port:      getConfigInt(cfg.Config, "port", 3306),
			User:      getConfigString(cfg.Config, "user", "root"),
			Password:  getConfigString(cfg.Config, "password", ""),
			DBName:    getConfigString(cfg.Config, "db_name", "chatfolio"),
			TableName: getConfigString(cfg.Config, "table_name", "conversations"),
		})
	default:
		return nil, fmt.Errorf("%w: unknown transcript provider %q", ErrInvalidConfig, cfg.Provider)
	}
}

func getConfigString(config map[string]interface{}, key, defaultValue string) string {
	if value, ok := config[key].(string); ok && value != "" {
		return value
	}
	return defaultValue
}

func getConfigInt(config map[string]interface{}, key string, defaultValue int) int {
	switch value := config[key].(type) {
	case int:
		return value
	case float64:
		return int(value)
	}
	return defaultValue
}

// Profile returns the active profile record. Callers must treat it as
// read-only.
func (c *Client) Profile() *profile.Record {
	return c.profile
}

// Greeting returns the session-opening message for the profile owner.
func (c *Client) Greeting() string {
	return Greeting(c.profile)
}

// NewSessionID generates a unique session identifier.
func (c *Client) NewSessionID() string {
	return c.node.Generate().String()
}

// SaveConversation flushes a finished conversation to the transcript
// store. It is a no-op when no store is configured.
func (c *Client) SaveConversation(ctx context.Context, conv *transcript.Conversation) (int64, error) {
	if c.transcripts == nil {
		return 0, nil
	}
	id, err := c.transcripts.Save(ctx, conv)
	if err != nil {
		return 0, NewAssistantError("SaveConversation", fmt.Errorf("%w: %v", ErrStorageOperation, err))
	}
	return id, nil
}

// Transcripts exposes the configured transcript store (nil when
// persistence is disabled).
func (c *Client) Transcripts() transcript.Store {
	return c.transcripts
}

// Close releases the provider and store resources.
func (c *Client) Close() error {
	var firstErr error
	if c.provider != nil {
		if err := c.provider.Close(); err != nil {
			firstErr = err
		}
	}
	if c.transcripts != nil {
		if err := c.transcripts.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return NewAssistantError("Close", firstErr)
}
