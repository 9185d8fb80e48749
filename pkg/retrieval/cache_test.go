package retrieval

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStore_EvictsOldestAtCapacity(t *testing.T) {
	r := NewRetriever()

	for i := 0; i < defaultCacheSize+5; i++ {
		r.store(fmt.Sprintf("query %d", i), Result{Confidence: float64(i)})
	}

	assert.Len(t, r.cache, defaultCacheSize)
	assert.Len(t, r.cacheOrder, defaultCacheSize)

	// The five oldest entries are gone, the rest survive in order.
	_, ok := r.cache["query 4"]
	assert.False(t, ok)
	_, ok = r.cache["query 5"]
	assert.True(t, ok)
	assert.Equal(t, "query 5", r.cacheOrder[0])
}

func TestStore_OverwriteDoesNotGrowOrder(t *testing.T) {
	r := NewRetriever()

	r.store("q", Result{Confidence: 0.1})
	r.store("q", Result{Confidence: 0.7})

	assert.Len(t, r.cacheOrder, 1)
	assert.Equal(t, 0.7, r.cache["q"].Confidence)
}

func TestRelevanceScore(t *testing.T) {
	tests := []struct {
		name  string
		query string
		text  string
		want  float64
	}{
		{"exact phrase", "cloud systems", "Alex builds cloud systems daily", 10 + 2 + 2},
		{"keyword occurrences", "golang services", "golang golang and services", 4 + 2},
		{"category pair without overlap", "academic record", "holds two degrees", 5},
		{"nothing", "quantum", "gardening notes", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, relevanceScore(tt.query, tt.text))
		})
	}
}

func TestExtractKeywords(t *testing.T) {
	keywords := extractKeywords("what is the gpa of alex at university")
	assert.Equal(t, []string{"gpa", "alex", "university"}, keywords)

	assert.Nil(t, extractKeywords("who is he"))
}
