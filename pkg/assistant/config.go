package assistant

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config contains the complete configuration for an assistant Client.
type Config struct {
	// LLM configures the generative-model provider.
	LLM LLMConfig `json:"llm"`

	// ProfilePath is the path of the profile JSON document. Ignored
	// when a profile or profile store is injected via options.
	ProfilePath string `json:"profile_path"`

	// Transcript configures conversation persistence (optional; the
	// engine runs without a store).
	Transcript *TranscriptConfig `json:"transcript,omitempty"`

	// AnswerTimeout bounds each external model call. A timed-out call
	// is treated exactly like a failed one. Defaults to 15 seconds.
	AnswerTimeout time.Duration `json:"answer_timeout"`
}

// LLMConfig contains configuration for the generative-model provider.
//
// Supported providers: openai, groq, ollama.
type LLMConfig struct {
	// Provider is the provider name (openai, groq, ollama).
	Provider string `json:"provider"`

	// APIKey is the API key (required for openai and groq).
	APIKey string `json:"api_key"`

	// Model is the model name (e.g. "gpt-4o-mini", "llama3.1").
	Model string `json:"model"`

	// BaseURL overrides the provider's default endpoint.
	BaseURL string `json:"base_url,omitempty"`
}

// TranscriptConfig contains configuration for the transcript store.
//
// Supported providers: sqlite, postgres, mysql.
type TranscriptConfig struct {
	// Provider is the store backend name.
	Provider string `json:"provider"`

	// Config contains provider-specific settings.
	// For sqlite: db_path, table_name.
	// For postgres: host, port, user, password, db_name, table_name, ssl_mode.
	// For mysql: host, port, user, password, db_name, table_name.
	Config map[string]interface{} `json:"config"`
}

// Validate checks the configuration for missing or inconsistent fields.
func (c *Config) Validate() error {
	switch c.LLM.Provider {
	case "openai", "groq":
		if c.LLM.APIKey == "" {
			return fmt.Errorf("%w: %s requires an api key", ErrInvalidConfig, c.LLM.Provider)
		}
	case "ollama", "":
		// Local provider, or no provider at all: the engine still works,
		// answering from templates only.
	default:
		return fmt.Errorf("%w: unknown llm provider %q", ErrInvalidConfig, c.LLM.Provider)
	}

	if c.Transcript != nil {
		switch c.Transcript.Provider {
		case "sqlite", "postgres", "mysql":
		default:
			return fmt.Errorf("%w: unknown transcript provider %q", ErrInvalidConfig, c.Transcript.Provider)
		}
	}

	if c.AnswerTimeout < 0 {
		return fmt.Errorf("%w: negative answer timeout", ErrInvalidConfig)
	}

	return nil
}

// FindEnvFile searches for a .env (or .env.example) file starting in
// the working directory and walking up to five levels.
func FindEnvFile() (string, bool) {
	dir, err := os.Getwd()
	if err != nil {
		return "", false
	}

	for i := 0; i < 5; i++ {
		for _, name := range []string{".env", ".env.example"} {
			path := filepath.Join(dir, name)
			if _, err := os.Stat(path); err == nil {
				return path, true
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", false
}

// LoadConfigFromEnv loads configuration from environment variables,
// first loading a .env file if one is found.
//
// Supported variables:
//   - LLM_PROVIDER (openai, groq, ollama), LLM_API_KEY, LLM_MODEL, LLM_BASE_URL
//   - OLLAMA_URL (base URL shortcut when LLM_PROVIDER=ollama)
//   - PROFILE_PATH
//   - TRANSCRIPT_PROVIDER (sqlite, postgres, mysql; empty disables persistence)
//   - SQLITE_PATH, SQLITE_TABLE
//   - POSTGRES_HOST, POSTGRES_PORT, POSTGRES_USER, POSTGRES_PASSWORD,
//     POSTGRES_DATABASE, POSTGRES_SSLMODE
//   - MYSQL_HOST, MYSQL_PORT, MYSQL_USER, MYSQL_PASSWORD, MYSQL_DATABASE
//   - ANSWER_TIMEOUT_SECONDS
func LoadConfigFromEnv() (*Config, error) {
	if envPath, found := FindEnvFile(); found {
		_ = godotenv.Load(envPath)
	} else {
		_ = godotenv.Load()
	}

	llmProvider := getEnvOrDefault("LLM_PROVIDER", "openai")

	llmBaseURL := os.Getenv("LLM_BASE_URL")
	if llmProvider == "ollama" && llmBaseURL == "" {
		llmBaseURL = getEnvOrDefault("OLLAMA_URL", "http://localhost:11434")
	}

	var defaultModel string
	switch llmProvider {
	case "groq":
		defaultModel = "llama-3.1-8b-instant"
	case "ollama":
		defaultModel = "llama3.1"
	default:
		defaultModel = "gpt-4o-mini"
	}

	config := &Config{
		LLM: LLMConfig{
			Provider: llmProvider,
			APIKey:   os.Getenv("LLM_API_KEY"),
			Model:    getEnvOrDefault("LLM_MODEL", defaultModel),
			BaseURL:  llmBaseURL,
		},
		ProfilePath: getEnvOrDefault("PROFILE_PATH", "./profile.json"),
	}

	if provider := os.Getenv("TRANSCRIPT_PROVIDER"); provider != "" {
		transcriptConfig := make(map[string]interface{})
		switch provider {
		case "sqlite":
			transcriptConfig = map[string]interface{}{
				"db_path":    getEnvOrDefault("SQLITE_PATH", "./conversations.db"),
				"table_name": getEnvOrDefault("SQLITE_TABLE", "conversations"),
			}
		case "postgres":
			port, _ := strconv.Atoi(getEnvOrDefault("POSTGRES_PORT", "5432"))
			transcriptConfig = map[string]interface{}{
				"host":     getEnvOrDefault("POSTGRES_HOST", "localhost"),
				"port":     port,
				"user":     getEnvOrDefault("POSTGRES_USER", "postgres"),
				"password": os.Getenv("POSTGRES_PASSWORD"),
				"db_name":  getEnvOrDefault("POSTGRES_DATABASE", "chatfolio"),
				"ssl_mode": getEnvOrDefault("POSTGRES_SSLMODE", "disable"),
			}
		case "mysql":
			port, _ := strconv.Atoi(getEnvOrDefault("MYSQL_PORT", "3306"))
			transcriptConfig = map[string]interface{}{
				"host":     getEnvOrDefault("MYSQL_HOST", "localhost"),
				"port":     port,
				"user":     getEnvOrDefault("MYSQL_USER", "root"),
				"password": os.Getenv("MYSQL_PASSWORD"),
				"db_name":  getEnvOrDefault("MYSQL_DATABASE", "chatfolio"),
			}
		}
		config.Transcript = &TranscriptConfig{
			Provider: provider,
			Config:   transcriptConfig,
		}
	}

	seconds, err := strconv.Atoi(getEnvOrDefault("ANSWER_TIMEOUT_SECONDS", "15"))
	if err != nil || seconds <= 0 {
		seconds = 15
	}
	config.AnswerTimeout = time.Duration(seconds) * time.Second

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
