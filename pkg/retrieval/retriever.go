// Package retrieval scores profile sections against a visitor query and
// assembles a bounded context string for grounding generated answers.
//
// This is keyword retrieval, not vector search: the scoring function is
// a hand-built combination of exact-phrase, keyword-occurrence and
// category-alignment signals, weighted per section. It is deterministic
// for a fixed profile, which makes the results safely cacheable.
package retrieval

import (
	"encoding/json"
	"sort"
	"strings"
	"sync"

	"github.com/chatfolio/chatfolio-go/pkg/profile"
)

const (
	// topSections is how many scored sections feed the context string.
	topSections = 3

	// sectionCharLimit caps each section's contribution to the context.
	sectionCharLimit = 200

	// contextCharLimit is the hard cap on the assembled context.
	contextCharLimit = 500

	// confidenceNorm squashes the top raw score into [0,1].
	confidenceNorm = 20.0

	// defaultCacheSize bounds the per-retriever result cache.
	defaultCacheSize = 50
)

// Result is the outcome of one retrieval call.
type Result struct {
	// RelevantInfo holds the serialized text of the top-scoring
	// sections, best first. Empty when nothing matched.
	RelevantInfo []string

	// Context is the concatenated, truncated grounding string. Its
	// length never exceeds 500 characters.
	Context string

	// Confidence is min(topScore/20, 1); 0 means no grounding found,
	// which callers must treat as an ordinary outcome, not an error.
	Confidence float64
}

// Retriever owns the scoring pipeline and a bounded result cache.
//
// The cache is keyed by the normalized query and evicts its oldest
// inserted entry once full (insertion order, not access order). A mutex
// guards it so a single Retriever may serve concurrent sessions.
type Retriever struct {
	maxCacheSize int

	mu         sync.Mutex
	cache      map[string]Result
	cacheOrder []string
}

// NewRetriever creates a Retriever with the default cache bound.
func NewRetriever() *Retriever {
	return &Retriever{
		maxCacheSize: defaultCacheSize,
		cache:        make(map[string]Result),
	}
}

// Retrieve scores every profile section against the query and returns
// the assembled context.
//
// The query is normalized first: lowercased, with third-person pronouns
// replaced by the subject's first name so "what's his GPA" matches the
// same sections as "what's <name>'s GPA". Absent profile sections score
// zero and are excluded; they never cause an error.
func (r *Retriever) Retrieve(query string, p *profile.Record) Result {
	normalized := Normalize(query, p.FirstName())

	r.mu.Lock()
	if cached, ok := r.cache[normalized]; ok {
		r.mu.Unlock()
		return cached
	}
	r.mu.Unlock()

	type scored struct {
		text  string
		score float64
	}

	var matches []scored
	for _, section := range sections(p) {
		score := relevanceScore(normalized, section.text) * section.weight
		if score > 0 {
			matches = append(matches, scored{text: section.text, score: score})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].score > matches[j].score
	})
	if len(matches) > topSections {
		matches = matches[:topSections]
	}

	var contextParts []string
	var relevantInfo []string
	for _, m := range matches {
		relevantInfo = append(relevantInfo, m.text)
		if text := strings.TrimSpace(m.text); text != "" {
			contextParts = append(contextParts, truncate(m.text, sectionCharLimit))
		}
	}

	context := strings.Join(contextParts, "\n\n")
	if len(context) > contextCharLimit {
		context = context[:contextCharLimit]
	}

	confidence := 0.0
	if len(matches) > 0 {
		confidence = matches[0].score / confidenceNorm
		if confidence > 1 {
			confidence = 1
		}
	}

	result := Result{
		RelevantInfo: relevantInfo,
		Context:      context,
		Confidence:   confidence,
	}

	r.store(normalized, result)
	return result
}

// store inserts a result, evicting the oldest entry at capacity.
func (r *Retriever) store(key string, result Result) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.cache[key]; ok {
		r.cache[key] = result
		return
	}

	if len(r.cacheOrder) >= r.maxCacheSize {
		oldest := r.cacheOrder[0]
		r.cacheOrder = r.cacheOrder[1:]
		delete(r.cache, oldest)
	}

	r.cache[key] = result
	r.cacheOrder = append(r.cacheOrder, key)
}

// section pairs a serialized profile section with its importance weight.
// Narrative sections weigh highest; contact, personality and goals
// lowest.
type section struct {
	name   string
	text   string
	weight float64
}

// sections partitions the profile into the fixed ordered list of
// scorable sections. Structured sections are serialized to JSON so
// field values (degree names, company names, technology lists) are
// searchable text.
func sections(p *profile.Record) []section {
	return []section{
		{"summary", p.Summary, 3},
		{"background", p.Background, 3},
		{"education", marshal(p.Education), 2},
		{"experience", marshal(p.Experience), 2},
		{"projects", marshal(p.Projects), 2},
		{"skills", marshal(p.Skills), 2},
		{"certifications", marshal(p.Certifications), 2},
		{"achievements", marshal(p.Achievements), 2},
		{"contact", marshal(p.Contact), 1},
		{"personality", p.Personality, 1},
		{"goals", marshal(p.Goals), 1},
	}
}

func marshal(v interface{}) string {
	data, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(data)
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit] + "..."
}
