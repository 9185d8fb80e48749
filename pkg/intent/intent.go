// Package intent classifies visitor utterances into the fixed set of
// concierge intents.
//
// Classification is a deterministic, ordered rule cascade over keyword
// and pattern matches. It is deliberately not a trained model: every
// decision is explainable by pointing at the rule that fired. Keyword
// lists overlap across rules ("work" appears in both the experience and
// the general ask lists); resolution is strictly by cascade order, so
// the order of the rules and of the topic table is load-bearing.
package intent

import (
	"regexp"
	"strings"
)

// Type is the coarse category of what the visitor wants.
type Type string

const (
	// TypeAskAboutSubject asks a question about the site owner.
	TypeAskAboutSubject Type = "ask_about_subject"

	// TypeScheduleMeeting requests a meeting or call.
	TypeScheduleMeeting Type = "schedule_meeting"

	// TypeSendResume requests the owner's resume.
	TypeSendResume Type = "send_resume"

	// TypeSmallTalk is a greeting or pleasantry with no question in it.
	TypeSmallTalk Type = "small_talk"

	// TypeUnknown is the universal catch-all; classification never fails.
	TypeUnknown Type = "unknown"
)

// Topic is a profile topic category extracted alongside an
// ask-about-subject intent.
type Topic string

const (
	TopicEducation    Topic = "education"
	TopicExperience   Topic = "experience"
	TopicProjects     Topic = "projects"
	TopicSkills       Topic = "skills"
	TopicAchievements Topic = "achievements"
	TopicBackground   Topic = "background"
	TopicGoals        Topic = "goals"
	TopicInterests    Topic = "interests"
	TopicContact      Topic = "contact"
)

// Result is the outcome of classifying a single utterance.
//
// Confidence is a monotonic heuristic score, not a probability: the
// additive keyword bonuses can push it past 1.0 and callers must only
// threshold-compare it. Topic, Date and Time are empty when no slot was
// extracted.
type Result struct {
	Type       Type
	Confidence float64
	Topic      Topic
	Date       string
	Time       string
}

// smallTalkMaxLen is the length gate for the greeting rule: anything
// longer is assumed to carry a real question even if it opens with "hi".
const smallTalkMaxLen = 50

// askMinLen lets any sufficiently long utterance default to
// ask-about-subject rather than unknown.
const askMinLen = 10

var (
	// dateRe matches numeric dates or relative day-name expressions.
	dateRe = regexp.MustCompile(`(?i)(\d{1,2}[/\-]\d{1,2}[/\-]\d{2,4})|(tomorrow|today|next week|monday|tuesday|wednesday|thursday|friday|saturday|sunday|next monday|next tuesday|next wednesday|next thursday|next friday)`)

	// timeRe matches "HH:MM am/pm" or "H am/pm" forms.
	timeRe = regexp.MustCompile(`(?i)(\d{1,2}:\d{2}\s*(am|pm)?)|(\d{1,2}\s*(am|pm))`)
)

// Classify maps a raw utterance to an intent with a confidence score and
// any extracted slots.
//
// The cascade is evaluated in order and the first matching rule wins:
//
//  1. Small talk: a known greeting, under 50 characters, with no
//     interrogative marker. The marker guard keeps "hi, what's his
//     experience?" out of the greeting path.
//  2. Schedule meeting: any scheduling keyword; confidence grows with
//     the match count; date/time slots come from pattern matches.
//  3. Send resume: any resume keyword.
//  4. Ask about subject: any ask keyword, or any utterance longer than
//     10 characters; the topic slot is the first topic group whose
//     keyword set intersects the utterance.
//  5. Unknown.
//
// Classify is pure and case-insensitive; an empty utterance falls
// through to Unknown.
func Classify(utterance string) Result {
	msg := strings.ToLower(strings.TrimSpace(utterance))

	if isGreeting(msg) && len(msg) < smallTalkMaxLen && !isInterrogative(msg) {
		return Result{Type: TypeSmallTalk, Confidence: 0.9}
	}

	if n := countMatches(msg, scheduleKeywords); n > 0 {
		return Result{
			Type:       TypeScheduleMeeting,
			Confidence: 0.85 + float64(n)*0.05,
			Date:       dateRe.FindString(msg),
			Time:       timeRe.FindString(msg),
		}
	}

	if countMatches(msg, resumeKeywords) > 0 {
		return Result{Type: TypeSendResume, Confidence: 0.9}
	}

	if n := countMatches(msg, askKeywords); n > 0 || len(msg) > askMinLen {
		return Result{
			Type:       TypeAskAboutSubject,
			Confidence: 0.7 + float64(n)*0.05,
			Topic:      ExtractTopic(msg),
		}
	}

	return Result{Type: TypeUnknown, Confidence: 0.3}
}

// ExtractTopic returns the first topic whose keyword group intersects
// the lowercased utterance, or "" when none does. Group order decides
// ties; it is not a scoring comparison.
func ExtractTopic(msg string) Topic {
	for _, group := range topicGroups {
		for _, kw := range group.keywords {
			if strings.Contains(msg, kw) {
				return group.topic
			}
		}
	}
	return ""
}

func isGreeting(msg string) bool {
	for _, g := range greetings {
		if strings.Contains(msg, g) {
			return true
		}
	}
	return false
}

func isInterrogative(msg string) bool {
	if strings.Contains(msg, "?") {
		return true
	}
	for _, m := range interrogativeMarkers {
		if strings.Contains(msg, m) {
			return true
		}
	}
	return false
}

func countMatches(msg string, keywords []string) int {
	n := 0
	for _, kw := range keywords {
		if strings.Contains(msg, kw) {
			n++
		}
	}
	return n
}
