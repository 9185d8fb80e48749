package assistant

import (
	"github.com/chatfolio/chatfolio-go/pkg/llm"
	"github.com/chatfolio/chatfolio-go/pkg/profile"
	"github.com/chatfolio/chatfolio-go/pkg/transcript"
)

// ClientOption configures a Client beyond what Config carries,
// primarily for injecting pre-built collaborators.
type ClientOption func(*clientOptions)

type clientOptions struct {
	provider        llm.Provider
	profileRecord   *profile.Record
	profileStore    profile.Store
	transcriptStore transcript.Store
}

// WithProvider injects a generative-model provider, overriding the
// provider the Config would build.
func WithProvider(p llm.Provider) ClientOption {
	return func(opts *clientOptions) {
		opts.provider = p
	}
}

// WithProfile injects an in-memory profile record, skipping the
// profile store entirely.
func WithProfile(record *profile.Record) ClientOption {
	return func(opts *clientOptions) {
		opts.profileRecord = record
	}
}

// WithProfileStore injects a profile store, overriding the default
// JSON-file store at Config.ProfilePath.
func WithProfileStore(store profile.Store) ClientOption {
	return func(opts *clientOptions) {
		opts.profileStore = store
	}
}

// WithTranscriptStore injects a transcript store, overriding the store
// the Config would build.
func WithTranscriptStore(store transcript.Store) ClientOption {
	return func(opts *clientOptions) {
		opts.transcriptStore = store
	}
}
