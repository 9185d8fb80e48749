package assistant_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chatfolio/chatfolio-go/pkg/assistant"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  assistant.Config
		wantErr bool
	}{
		{
			name:   "empty config is valid",
			config: assistant.Config{},
		},
		{
			name: "openai requires api key",
			config: assistant.Config{
				LLM: assistant.LLMConfig{Provider: "openai"},
			},
			wantErr: true,
		},
		{
			name: "groq requires api key",
			config: assistant.Config{
				LLM: assistant.LLMConfig{Provider: "groq"},
			},
			wantErr: true,
		},
		{
			name: "openai with key",
			config: assistant.Config{
				LLM: assistant.LLMConfig{Provider: "openai", APIKey: "sk-test"},
			},
		},
		{
			name: "ollama needs no key",
			config: assistant.Config{
				LLM: assistant.LLMConfig{Provider: "ollama"},
			},
		},
		{
			name: "unknown llm provider",
			config: assistant.Config{
				LLM: assistant.LLMConfig{Provider: "bard"},
			},
			wantErr: true,
		},
		{
			name: "unknown transcript provider",
			config: assistant.Config{
				Transcript: &assistant.TranscriptConfig{Provider: "mongodb"},
			},
			wantErr: true,
		},
		{
			name: "negative answer timeout",
			config: assistant.Config{
				AnswerTimeout: -time.Second,
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, assistant.ErrInvalidConfig)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("LLM_PROVIDER", "groq")
	t.Setenv("LLM_API_KEY", "gsk-test")
	t.Setenv("LLM_MODEL", "")
	t.Setenv("LLM_BASE_URL", "")
	t.Setenv("PROFILE_PATH", "/tmp/profile.json")
	t.Setenv("TRANSCRIPT_PROVIDER", "sqlite")
	t.Setenv("SQLITE_PATH", "/tmp/test.db")
	t.Setenv("ANSWER_TIMEOUT_SECONDS", "")

	config, err := assistant.LoadConfigFromEnv()
	require.NoError(t, err)

	assert.Equal(t, "groq", config.LLM.Provider)
	assert.Equal(t, "gsk-test", config.LLM.APIKey)
	assert.Equal(t, "llama-3.1-8b-instant", config.LLM.Model)
	assert.Equal(t, "/tmp/profile.json", config.ProfilePath)
	assert.Equal(t, 15*time.Second, config.AnswerTimeout)

	require.NotNil(t, config.Transcript)
	assert.Equal(t, "sqlite", config.Transcript.Provider)
	assert.Equal(t, "/tmp/test.db", config.Transcript.Config["db_path"])
}

func TestLoadConfigFromEnv_OllamaDefaults(t *testing.T) {
	t.Setenv("LLM_PROVIDER", "ollama")
	t.Setenv("LLM_API_KEY", "")
	t.Setenv("LLM_MODEL", "")
	t.Setenv("LLM_BASE_URL", "")
	t.Setenv("OLLAMA_URL", "")
	t.Setenv("TRANSCRIPT_PROVIDER", "")

	config, err := assistant.LoadConfigFromEnv()
	require.NoError(t, err)

	assert.Equal(t, "llama3.1", config.LLM.Model)
	assert.Equal(t, "http://localhost:11434", config.LLM.BaseURL)
	assert.Nil(t, config.Transcript)
}

func TestLoadConfigFromEnv_InvalidProviderFails(t *testing.T) {
	t.Setenv("LLM_PROVIDER", "bard")

	_, err := assistant.LoadConfigFromEnv()
	assert.ErrorIs(t, err, assistant.ErrInvalidConfig)
}

func TestNewClient_RejectsInvalidConfig(t *testing.T) {
	_, err := assistant.NewClient(&assistant.Config{
		LLM: assistant.LLMConfig{Provider: "openai"},
	})
	assert.ErrorIs(t, err, assistant.ErrInvalidConfig)
}

func TestNewClient_RequiresAProfileSource(t *testing.T) {
	_, err := assistant.NewClient(&assistant.Config{})
	assert.ErrorIs(t, err, assistant.ErrProfileNotFound)
}
