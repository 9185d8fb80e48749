package assistant

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/chatfolio/chatfolio-go/pkg/profile"
)

func answerProfile() *profile.Record {
	return &profile.Record{
		Name:    "Alex Doe",
		Summary: "Alex builds cloud systems.",
		Education: profile.Education{
			Masters: &profile.Degree{
				Degree:   "MS Computer Science",
				School:   "State University",
				Location: "Springfield",
				Period:   "2019-2021",
				GPA:      "3.9",
				Courses:  []string{"Distributed Systems", "Machine Learning"},
			},
			Bachelors: &profile.Degree{
				Degree: "BS Software Engineering",
				School: "City College",
				GPA:    "3.7",
			},
		},
		Experience: []profile.Role{
			{Title: "Staff Engineer", Company: "Initech", Period: "2023-2025"},
			{Title: "Senior Engineer", Company: "Globex"},
			{Title: "Engineer", Company: "Umbrella"},
			{Title: "Junior Engineer", Company: "Hooli"},
		},
		Projects: []profile.Project{
			{Name: "Chat Widget", Description: strings.Repeat("realtime messaging ", 12)},
		},
		Skills: profile.Skills{
			AIML:    []string{"PyTorch"},
			Backend: []string{"Go", "PostgreSQL"},
		},
		Achievements:   []profile.Award{{Title: "Hackathon Winner", Event: "DevCon"}},
		Certifications: []profile.Certification{{Name: "AWS SAA", Issuer: "Amazon"}},
		Goals:          []string{"Ship a book", "Mentor juniors"},
		ResumeURL:      "https://example.com/resume.pdf",
		SchedulerURL:   "https://example.com/book",
	}
}

func TestDetailRequested(t *testing.T) {
	tests := []struct {
		utterance string
		want      bool
	}{
		{"tell me more", true},
		{"explain his education", true},
		{"give me the full picture", true},
		{"in depth please", true},
		{"what is his gpa", false},
		{"", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, detailRequested(tt.utterance), "utterance: %q", tt.utterance)
	}
}

func TestFormatEducation_Brief(t *testing.T) {
	got := formatEducation(answerProfile(), false)

	assert.Contains(t, got, "Alex Doe's Education:")
	assert.Contains(t, got, "MS Computer Science")
	assert.Contains(t, got, "State University (2019-2021)")
	assert.Contains(t, got, "GPA: 3.9")
	assert.Contains(t, got, "BS Software Engineering")
	assert.Contains(t, got, "GPA: 3.7")
	assert.Contains(t, got, "Would you like more details")

	// Brief mode leaves out location and coursework.
	assert.NotContains(t, got, "Springfield")
	assert.NotContains(t, got, "Distributed Systems")
}

func TestFormatEducation_Detailed(t *testing.T) {
	got := formatEducation(answerProfile(), true)

	assert.Contains(t, got, "State University, Springfield (2019-2021)")
	assert.Contains(t, got, "Relevant Coursework:")
	assert.Contains(t, got, "- Distributed Systems")
	assert.NotContains(t, got, "Would you like more details")
}

func TestFormatExperience_BriefCapsAtThreeRoles(t *testing.T) {
	got := formatExperience(answerProfile(), false)

	assert.Contains(t, got, "1. Staff Engineer at Initech")
	assert.Contains(t, got, "3. Engineer at Umbrella")
	assert.NotContains(t, got, "Hooli")
	assert.Contains(t, got, "Would you like more details")
}

func TestFormatExperience_Empty(t *testing.T) {
	p := &profile.Record{Name: "Alex Doe"}
	got := formatExperience(p, false)

	assert.Contains(t, got, "Alex Doe's Work Experience:")
	assert.Contains(t, got, "Would you like more details")
}

func TestFormatProjects_BriefTruncatesDescriptions(t *testing.T) {
	got := formatProjects(answerProfile(), false)

	assert.Contains(t, got, "1. Chat Widget")
	assert.Contains(t, got, "...")
	assert.NotContains(t, got, strings.Repeat("realtime messaging ", 12))
}

func TestFormatSkills(t *testing.T) {
	brief := formatSkills(answerProfile(), false)
	assert.Contains(t, brief, "AI & Machine Learning, Backend Development")
	assert.NotContains(t, brief, "PostgreSQL")

	detailed := formatSkills(answerProfile(), true)
	assert.Contains(t, detailed, "Go, PostgreSQL")
	assert.NotContains(t, detailed, "Frontend Development")
}

func TestFormatAchievements(t *testing.T) {
	brief := formatAchievements(answerProfile(), false)
	assert.Contains(t, brief, "Awards: 1 award(s)")
	assert.Contains(t, brief, "Certifications: 1 certification(s)")

	detailed := formatAchievements(answerProfile(), true)
	assert.Contains(t, detailed, "- Hackathon Winner - DevCon")
	assert.Contains(t, detailed, "- AWS SAA (Amazon)")
}

func TestFormatContact_MissingFieldsFallBack(t *testing.T) {
	p := &profile.Record{
		Name:    "Alex Doe",
		Contact: profile.Contact{Email: "alex@example.com"},
	}
	got := formatContact(p)

	assert.Contains(t, got, "Email: alex@example.com")
	assert.Contains(t, got, "Phone: Available on request")
	assert.Contains(t, got, "LinkedIn: Available on request")
}

func TestScheduleReply(t *testing.T) {
	p := answerProfile()

	confirmed := scheduleReply(p, "tomorrow", "2pm")
	assert.Contains(t, confirmed, "tomorrow at 2pm")
	assert.Contains(t, confirmed, p.SchedulerURL)

	prompt := scheduleReply(p, "tomorrow", "")
	assert.Contains(t, prompt, "preferred date")
	assert.Contains(t, prompt, p.SchedulerURL)
}

func TestResumeReply(t *testing.T) {
	got := resumeReply(answerProfile())
	assert.Contains(t, got, "https://example.com/resume.pdf")
	assert.Contains(t, got, "Alex Doe's")
}

func TestSmallTalkReply(t *testing.T) {
	p := answerProfile()

	assert.Contains(t, smallTalkReply(p, "how are you"), "doing great")
	assert.Contains(t, smallTalkReply(p, "thanks a lot"), "You're very welcome")
	assert.Contains(t, smallTalkReply(p, "hi"), "Alex Doe's AI assistant")
}

func TestGeneralBriefAnswer(t *testing.T) {
	got := generalBriefAnswer(answerProfile())
	assert.Contains(t, got, "Alex builds cloud systems.")
	assert.Contains(t, got, "Would you like to know more")

	// No summary at all degrades to the generic fallback.
	empty := generalBriefAnswer(&profile.Record{Name: "Alex Doe"})
	assert.Contains(t, empty, "Could you be more specific?")
}
