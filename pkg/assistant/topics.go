package assistant

import (
	"strings"

	"github.com/chatfolio/chatfolio-go/pkg/transcript"
)

// topicKeywordGroup pairs a topic category with the keywords that mark
// it in a user message. Group order fixes the discovery order when one
// message touches several topics.
type topicKeywordGroup struct {
	topic    string
	keywords []string
}

var topicKeywordGroups = []topicKeywordGroup{
	{"education", []string{"education", "degree", "university", "school", "gpa", "academic", "masters", "bachelors"}},
	{"experience", []string{"experience", "work", "job", "company", "role", "position", "career"}},
	{"projects", []string{"project", "built", "developed", "created", "application", "system"}},
	{"skills", []string{"skill", "technology", "tech", "expertise", "proficient", "language", "framework"}},
	{"achievements", []string{"achievement", "award", "certification", "recognition", "winner"}},
	{"contact", []string{"contact", "email", "phone", "reach", "linkedin", "github", "connect"}},
	{"background", []string{"background", "about", "who", "introduction", "summary"}},
}

// UpdateTopics recomputes the session's topic history from the full
// conversation: every user message is scanned against the topic keyword
// groups and each topic is recorded the first time it appears.
//
// The result is an order-preserving set: insertion order is the order
// topics were first mentioned, duplicates are ignored, and recomputing
// over a longer history never removes or reorders previously discovered
// topics. Recomputation from scratch each turn is intentional: it keeps
// the tracker stateless and the cost is negligible at conversation
// scale.
func UpdateTopics(history []transcript.Message) []string {
	var topics []string
	seen := make(map[string]bool)

	for _, msg := range history {
		if msg.Role != transcript.RoleUser {
			continue
		}
		content := strings.ToLower(msg.Content)
		for _, group := range topicKeywordGroups {
			if seen[group.topic] {
				continue
			}
			for _, kw := range group.keywords {
				if strings.Contains(content, kw) {
					topics = append(topics, group.topic)
					seen[group.topic] = true
					break
				}
			}
		}
	}

	return topics
}
