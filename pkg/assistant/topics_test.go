package assistant_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/chatfolio/chatfolio-go/pkg/assistant"
	"github.com/chatfolio/chatfolio-go/pkg/transcript"
)

func userMsg(content string) transcript.Message {
	return transcript.Message{Role: transcript.RoleUser, Content: content}
}

func assistantMsg(content string) transcript.Message {
	return transcript.Message{Role: transcript.RoleAssistant, Content: content}
}

func TestUpdateTopics(t *testing.T) {
	history := []transcript.Message{
		userMsg("what is his GPA at university?"),
		assistantMsg("His GPA was 3.9."),
		userMsg("and where does he work?"),
	}

	topics := assistant.UpdateTopics(history)
	assert.Equal(t, []string{"education", "experience"}, topics)
}

func TestUpdateTopics_FirstMentionOrderIsStable(t *testing.T) {
	history := []transcript.Message{
		userMsg("show me his projects"),
		userMsg("what is his education?"),
		userMsg("more projects please"),
	}

	topics := assistant.UpdateTopics(history)
	assert.Equal(t, []string{"projects", "education"}, topics)
}

func TestUpdateTopics_GrowingHistoryOnlyAppends(t *testing.T) {
	history := []transcript.Message{
		userMsg("what skills does he have?"),
	}

	before := assistant.UpdateTopics(history)

	history = append(history, userMsg("how can i reach him by email?"))
	after := assistant.UpdateTopics(history)

	assert.Equal(t, before, after[:len(before)])
	assert.Contains(t, after, "contact")
}

func TestUpdateTopics_AssistantMessagesAreIgnored(t *testing.T) {
	history := []transcript.Message{
		assistantMsg("He studied at State University."),
	}

	assert.Empty(t, assistant.UpdateTopics(history))
}

func TestUpdateTopics_OneMessageCanMarkSeveralTopics(t *testing.T) {
	topics := assistant.UpdateTopics([]transcript.Message{
		userMsg("compare his education with his work experience"),
	})

	assert.Equal(t, []string{"education", "experience"}, topics)
}
