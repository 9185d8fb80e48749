package intent_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/chatfolio/chatfolio-go/pkg/intent"
)

func TestClassify_SmallTalk(t *testing.T) {
	tests := []struct {
		name      string
		utterance string
		want      intent.Type
	}{
		{"plain greeting", "hi", intent.TypeSmallTalk},
		{"hello", "Hello!", intent.TypeSmallTalk},
		{"hey with padding", "  hey  ", intent.TypeSmallTalk},
		{"good morning", "good morning", intent.TypeSmallTalk},
		{"question mark blocks greeting", "hello there?", intent.TypeAskAboutSubject},
		{"greeting with question", "hi, what is his GPA?", intent.TypeAskAboutSubject},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := intent.Classify(tt.utterance)
			assert.Equal(t, tt.want, result.Type)
		})
	}
}

func TestClassify_SmallTalkConfidence(t *testing.T) {
	result := intent.Classify("hi")
	assert.Equal(t, intent.TypeSmallTalk, result.Type)
	assert.InDelta(t, 0.9, result.Confidence, 0.001)
	assert.Empty(t, result.Topic)
}

func TestClassify_LongGreetingIsNotSmallTalk(t *testing.T) {
	// Over the length gate even though it opens with a greeting word.
	result := intent.Classify("hi there, I just spent a long while reading every single page")
	assert.NotEqual(t, intent.TypeSmallTalk, result.Type)
}

func TestClassify_ScheduleMeeting(t *testing.T) {
	tests := []struct {
		name       string
		utterance  string
		confidence float64
		date       string
		time       string
	}{
		{
			name:       "book with relative date and time",
			utterance:  "Can you book a meeting for tomorrow at 2pm?",
			confidence: 0.95, // "book" + "meeting"
			date:       "tomorrow",
			time:       "2pm",
		},
		{
			name:       "numeric date with clock time",
			utterance:  "can we schedule a call on 12/05/2026 at 10:30 am",
			confidence: 0.95, // "schedule" + "call"
			date:       "12/05/2026",
			time:       "10:30 am",
		},
		{
			name:       "day name without time",
			utterance:  "set up a zoom appointment next friday",
			confidence: 0.95, // "zoom" + "appointment"
			date:       "next friday",
			time:       "",
		},
		{
			name:       "bare scheduling request",
			utterance:  "please arrange an intro",
			confidence: 0.9, // single keyword
			date:       "",
			time:       "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := intent.Classify(tt.utterance)
			assert.Equal(t, intent.TypeScheduleMeeting, result.Type)
			assert.InDelta(t, tt.confidence, result.Confidence, 0.001)
			assert.Equal(t, tt.date, result.Date)
			assert.Equal(t, tt.time, result.Time)
		})
	}
}

func TestClassify_SendResume(t *testing.T) {
	for _, utterance := range []string{
		"send me the resume please",
		"where can I download resume?",
		"could you share his CV?",
	} {
		result := intent.Classify(utterance)
		assert.Equal(t, intent.TypeSendResume, result.Type, "utterance: %q", utterance)
		assert.InDelta(t, 0.9, result.Confidence, 0.001)
	}
}

func TestClassify_ScheduleBeatsResume(t *testing.T) {
	// Both rule families match; cascade order resolves it.
	result := intent.Classify("book a call to discuss the resume")
	assert.Equal(t, intent.TypeScheduleMeeting, result.Type)
}

func TestClassify_AskAboutSubject(t *testing.T) {
	tests := []struct {
		name      string
		utterance string
		topic     intent.Topic
	}{
		{"education question", "what is his GPA?", intent.TopicEducation},
		{"experience question", "where does he work", intent.TopicExperience},
		{"projects question", "what has he built recently", intent.TopicProjects},
		{"skills question", "what technologies does he use", intent.TopicSkills},
		{"contact question", "how can i reach him on linkedin", intent.TopicContact},
		{"goals question", "what are his aspirations", intent.TopicGoals},
		{"no topic group hit", "describe the person for me, please", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := intent.Classify(tt.utterance)
			assert.Equal(t, intent.TypeAskAboutSubject, result.Type)
			assert.Equal(t, tt.topic, result.Topic)
			assert.GreaterOrEqual(t, result.Confidence, 0.7)
		})
	}
}

func TestClassify_ConfidenceIsNotCapped(t *testing.T) {
	// Keyword bonuses are additive, so a keyword-dense question can score
	// past 1.0. Callers threshold-compare, they never treat it as a
	// probability.
	result := intent.Classify("tell me about his education, his degree, his gpa, his university and his coursework")
	assert.Equal(t, intent.TypeAskAboutSubject, result.Type)
	assert.Greater(t, result.Confidence, 1.0)
}

func TestClassify_Unknown(t *testing.T) {
	for _, utterance := range []string{"", "   ", "ok", "thanks"} {
		result := intent.Classify(utterance)
		assert.Equal(t, intent.TypeUnknown, result.Type, "utterance: %q", utterance)
		assert.InDelta(t, 0.3, result.Confidence, 0.001)
	}
}

func TestExtractTopic_GroupOrderResolvesTies(t *testing.T) {
	// "work" (experience) and "projects" both match; the experience group
	// is evaluated first.
	assert.Equal(t, intent.TopicExperience, intent.ExtractTopic("his work and projects"))

	// Education outranks everything when both match.
	assert.Equal(t, intent.TopicEducation, intent.ExtractTopic("degree and work history"))
}

func TestExtractTopic_NoMatch(t *testing.T) {
	assert.Equal(t, intent.Topic(""), intent.ExtractTopic("something entirely unrelated"))
}
