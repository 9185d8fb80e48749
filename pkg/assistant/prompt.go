package assistant

import (
	"fmt"
	"strings"
	"time"

	"github.com/chatfolio/chatfolio-go/pkg/profile"
)

// promptContextLimit caps how much retrieval context rides along in the
// system prompt.
const promptContextLimit = 500

// allTopicCategories is the universe for progressive disclosure, in
// discovery-suggestion order.
var allTopicCategories = []string{
	"education", "experience", "projects", "skills", "achievements",
	"contact", "background",
}

// BuildSystemPrompt assembles the system prompt for the external model.
//
// The prompt asks for short answers by default and, for progressive
// disclosure, names the topic categories the session has not yet
// touched so the model can steer toward them instead of repeating
// ground already covered.
func BuildSystemPrompt(p *profile.Record, context string, sessionTopics []string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "You are %s's AI assistant on their portfolio site. ", p.Name)
	b.WriteString("Be brief (2-3 sentences) unless asked for details. ")
	fmt.Fprintf(&b, "Always refer to the owner as %q. Answer only what is asked, ", p.Name)
	b.WriteString("and use the provided context when present.")

	if unexplored := unexploredTopics(sessionTopics); len(unexplored) > 0 {
		fmt.Fprintf(&b, "\n\nThe visitor has not yet asked about: %s. ",
			strings.Join(unexplored, ", "))
		b.WriteString("When it fits naturally, mention one of these as a follow-up.")
	}

	if context != "" {
		if len(context) > promptContextLimit {
			context = context[:promptContextLimit]
		}
		fmt.Fprintf(&b, "\n\nContext: %s", context)
	}

	return b.String()
}

func unexploredTopics(sessionTopics []string) []string {
	seen := make(map[string]bool, len(sessionTopics))
	for _, t := range sessionTopics {
		seen[t] = true
	}

	var unexplored []string
	for _, t := range allTopicCategories {
		if !seen[t] {
			unexplored = append(unexplored, t)
		}
	}
	return unexplored
}

// Greeting returns the session-opening message, with a clock-based
// salutation.
func Greeting(p *profile.Record) string {
	return greetingAt(p, time.Now())
}

func greetingAt(p *profile.Record, now time.Time) string {
	var salutation string
	switch hour := now.Hour(); {
	case hour >= 5 && hour < 12:
		salutation = "Good morning"
	case hour >= 12 && hour < 17:
		salutation = "Good afternoon"
	default:
		salutation = "Good evening"
	}

	return fmt.Sprintf("%s! I'm %s's AI assistant. I can tell you about %s's background, work experience, projects, and skills. I can also help you schedule a meeting or share the resume. What would you like to know?",
		salutation, p.Name, p.Name)
}
