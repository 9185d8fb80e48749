package retrieval

import (
	"regexp"
	"strings"
)

var pronounRe = regexp.MustCompile(`\b(he|his|him)\b`)

// Normalize lowercases the query and substitutes third-person pronouns
// with the subject token. Retrieval and caching both key off this form.
func Normalize(query, subject string) string {
	normalized := strings.ToLower(strings.TrimSpace(query))
	if subject != "" {
		normalized = pronounRe.ReplaceAllString(normalized, subject)
	}
	return normalized
}

// questionWords and stopWords are dropped during keyword extraction;
// they carry no topical signal.
var questionWords = []string{
	"what", "when", "where", "who", "why", "how", "which", "tell",
	"about", "his", "he", "him",
}

var stopWords = []string{
	"is", "are", "was", "were", "the", "a", "an", "and", "or", "but",
	"in", "on", "at", "to", "for", "of", "with", "by",
}

// extractKeywords splits the normalized query on whitespace and keeps
// tokens longer than two characters that are neither stop words nor
// question words.
func extractKeywords(query string) []string {
	var keywords []string
	for _, word := range strings.Fields(query) {
		if len(word) <= 2 {
			continue
		}
		if containsWord(stopWords, word) || containsWord(questionWords, word) {
			continue
		}
		keywords = append(keywords, word)
	}
	return keywords
}

// categoryPair is a coarse topical-alignment signal layered on top of
// literal keyword counting: when the query mentions any term on the
// query side and the section text any term on the section side, the
// section earns a fixed bonus even without keyword overlap.
type categoryPair struct {
	queryTerms   []string
	sectionTerms []string
}

var categoryPairs = []categoryPair{
	{
		[]string{"education", "academic", "degree", "gpa", "university", "school"},
		[]string{"education", "degree", "gpa", "university", "school", "masters", "bachelors"},
	},
	{
		[]string{"experience", "work", "job", "company", "role"},
		[]string{"experience", "work", "company", "engineer", "developer"},
	},
	{
		[]string{"project", "work", "built"},
		[]string{"project", "built", "developed"},
	},
	{
		[]string{"skill", "technology", "tech", "expertise"},
		[]string{"skill", "technology", "tech"},
	},
	{
		[]string{"certification", "certificate", "certified"},
		[]string{"certification", "certified"},
	},
	{
		[]string{"award", "achievement", "recognition", "winner"},
		[]string{"award", "achievement", "winner"},
	},
	{
		[]string{"contact", "email", "phone", "reach", "linkedin", "github"},
		[]string{"contact", "email", "phone", "linkedin", "github"},
	},
}

// relevanceScore computes the raw (pre-weight) relevance of a section
// text against a normalized query:
//
//   - +10 when the text contains the whole query as a substring
//   - +2 per occurrence of each extracted query keyword
//   - +5 per category pair whose terms appear on both sides
func relevanceScore(query, text string) float64 {
	textLower := strings.ToLower(text)

	score := 0.0
	if query != "" && strings.Contains(textLower, query) {
		score += 10
	}

	for _, keyword := range extractKeywords(query) {
		score += float64(strings.Count(textLower, keyword)) * 2
	}

	for _, pair := range categoryPairs {
		if containsAny(query, pair.queryTerms) && containsAny(textLower, pair.sectionTerms) {
			score += 5
		}
	}

	return score
}

func containsAny(s string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(s, term) {
			return true
		}
	}
	return false
}

func containsWord(words []string, word string) bool {
	for _, w := range words {
		if w == word {
			return true
		}
	}
	return false
}
