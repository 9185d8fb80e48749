package retrieval_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chatfolio/chatfolio-go/pkg/profile"
	"github.com/chatfolio/chatfolio-go/pkg/retrieval"
)

func testProfile() *profile.Record {
	return &profile.Record{
		Name:       "Alex Doe",
		Summary:    "Alex builds cloud systems.",
		Background: "Grew up tinkering with computers.",
		Education: profile.Education{
			Masters: &profile.Degree{
				Degree: "MS Computer Science",
				School: "State University",
				GPA:    "3.9",
			},
		},
		Experience: []profile.Role{
			{Title: "Software Engineer", Company: "Initech", Period: "2021-2024"},
		},
		Skills: profile.Skills{
			Backend: []string{"Go", "PostgreSQL"},
		},
	}
}

func TestRetrieve_RanksEducationForGPAQuery(t *testing.T) {
	r := retrieval.NewRetriever()
	p := testProfile()

	result := r.Retrieve("what is his GPA?", p)

	require.NotEmpty(t, result.RelevantInfo)
	assert.Contains(t, result.RelevantInfo[0], "3.9")
	assert.Contains(t, result.Context, "3.9")
	assert.Greater(t, result.Confidence, 0.0)
}

func TestRetrieve_NoMatchIsNotAnError(t *testing.T) {
	r := retrieval.NewRetriever()
	result := r.Retrieve("purple elephant parade", testProfile())

	assert.Empty(t, result.RelevantInfo)
	assert.Empty(t, result.Context)
	assert.Zero(t, result.Confidence)
}

func TestRetrieve_Deterministic(t *testing.T) {
	r := retrieval.NewRetriever()
	p := testProfile()

	first := r.Retrieve("what is his GPA?", p)
	second := r.Retrieve("what is his GPA?", p)
	assert.Equal(t, first, second)

	// Pronoun substitution makes the name form hit the same cache key.
	named := r.Retrieve("what is alex GPA?", p)
	assert.Equal(t, first, named)
}

func TestRetrieve_ContextIsBounded(t *testing.T) {
	p := testProfile()
	p.Summary = strings.Repeat("alex studied at the university and loved it. ", 12)
	p.Background = strings.Repeat("the university shaped how alex approaches education. ", 10)

	r := retrieval.NewRetriever()
	result := r.Retrieve("tell me about his university education", p)

	require.NotEmpty(t, result.Context)
	assert.LessOrEqual(t, len(result.Context), 500)
}

func TestRetrieve_SectionTruncation(t *testing.T) {
	p := &profile.Record{
		Name:    "Alex Doe",
		Summary: strings.Repeat("alex ships resilient backend services every week. ", 10),
	}

	r := retrieval.NewRetriever()
	result := r.Retrieve("what does alex ship", p)

	require.NotEmpty(t, result.Context)
	assert.True(t, strings.HasSuffix(result.Context, "..."))
	assert.Len(t, result.Context, 203)
}

func TestRetrieve_ConfidenceCappedAtOne(t *testing.T) {
	p := testProfile()
	p.Summary = strings.Repeat("gpa university degree education school ", 10)

	r := retrieval.NewRetriever()
	result := r.Retrieve("what is his gpa at the university", p)

	assert.Equal(t, 1.0, result.Confidence)
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		subject string
		want    string
	}{
		{"pronoun substitution", "what is HIS gpa", "alex", "what is alex gpa"},
		{"all pronoun forms", "he said his work suits him", "alex", "alex said alex work suits alex"},
		{"word boundary respected", "this history", "alex", "this history"},
		{"empty subject keeps pronouns", "his gpa", "", "his gpa"},
		{"trims and lowercases", "  What IS It  ", "alex", "what is it"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, retrieval.Normalize(tt.query, tt.subject))
		})
	}
}
