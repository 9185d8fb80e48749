package assistant

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/chatfolio/chatfolio-go/pkg/intent"
	"github.com/chatfolio/chatfolio-go/pkg/llm"
	"github.com/chatfolio/chatfolio-go/pkg/retrieval"
	"github.com/chatfolio/chatfolio-go/pkg/transcript"
)

const (
	// historyWindow is how many recent messages ride along on each
	// external model call.
	historyWindow = 10

	// topicScanWindow is how many recent messages the second-pass topic
	// inference scans when the current utterance carries no topic slot.
	topicScanWindow = 4

	// minModelReplyChars filters degenerate model replies: anything
	// this short or shorter is treated as if the provider had failed.
	minModelReplyChars = 10

	// retrievalFloor is the minimum retrieval confidence for a context
	// preview to count as a usable local answer.
	retrievalFloor = 0.2

	defaultAnswerTimeout = 15 * time.Second
)

// Turn is the outcome of handling one user utterance.
type Turn struct {
	// Reply is the final answer text. Always non-empty: the dispatch
	// chain terminates in a local template, so a failing external
	// provider can never surface an error to the visitor.
	Reply string

	// Intent is the classification the reply was dispatched on.
	Intent intent.Result

	// Topics is the updated session topic history, recomputed from the
	// conversation including this turn's user message.
	Topics []string
}

// HandleTurn runs the per-turn state machine: classify, retrieve when
// the intent needs profile grounding, then produce the reply from an
// ordered chain of attempts (external model first where configured,
// local templates as fallback).
//
// history is the session's conversation so far, oldest first, not yet
// including userText. sessionTopics is the topic history before this
// turn; it biases the model's system prompt toward unexplored topics.
//
// HandleTurn never fails: classification has a universal catch-all,
// retrieval degrades to an empty context, and every external-model
// problem (error, timeout, empty or too-short reply) falls through to
// the next attempt. An empty utterance classifies as Unknown.
func (c *Client) HandleTurn(ctx context.Context, userText string, history []transcript.Message, sessionTopics []string) *Turn {
	result := intent.Classify(userText)

	reply := c.dispatch(ctx, userText, result, history, sessionTopics)

	withCurrent := make([]transcript.Message, 0, len(history)+1)
	withCurrent = append(withCurrent, history...)
	withCurrent = append(withCurrent, transcript.Message{
		Role:      transcript.RoleUser,
		Content:   userText,
		Timestamp: time.Now(),
	})

	return &Turn{
		Reply:  reply,
		Intent: result,
		Topics: UpdateTopics(withCurrent),
	}
}

// dispatch maps the classified intent to its answer chain.
func (c *Client) dispatch(ctx context.Context, userText string, result intent.Result, history []transcript.Message, sessionTopics []string) string {
	switch result.Type {
	case intent.TypeSmallTalk:
		// Greetings carry no question, so the model call goes out
		// without retrieval context.
		if reply, ok := c.tryModel(ctx, userText, history, sessionTopics, ""); ok {
			return reply
		}
		return smallTalkReply(c.profile, userText)

	case intent.TypeSendResume:
		return resumeReply(c.profile)

	case intent.TypeScheduleMeeting:
		return scheduleReply(c.profile, result.Date, result.Time)

	case intent.TypeAskAboutSubject:
		rag := c.retriever.Retrieve(userText, c.profile)
		if reply, ok := c.tryModel(ctx, userText, history, sessionTopics, rag.Context); ok {
			return reply
		}
		if reply := c.localStructuredAnswer(result, userText, history, rag); strings.TrimSpace(reply) != "" {
			return reply
		}
		return genericFallback(c.profile)

	default:
		rag := c.retriever.Retrieve(userText, c.profile)
		if reply, ok := c.tryModel(ctx, userText, history, sessionTopics, rag.Context); ok {
			return reply
		}
		return genericFallback(c.profile)
	}
}

// tryModel makes the single external-model attempt for this turn,
// bounded by the configured timeout. All failure modes (error, timeout,
// empty or degenerate reply) collapse into ok=false; the reason is
// logged for operators and never shown to the visitor.
func (c *Client) tryModel(ctx context.Context, userText string, history []transcript.Message, sessionTopics []string, ragContext string) (string, bool) {
	if c.provider == nil {
		return "", false
	}

	timeout := c.config.AnswerTimeout
	if timeout <= 0 {
		timeout = defaultAnswerTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req := &llm.Request{
		System:  BuildSystemPrompt(c.profile, ragContext, sessionTopics),
		History: recentHistory(history, historyWindow),
		User:    userText,
	}

	reply, err := c.provider.Complete(ctx, req)
	if err != nil {
		log.Printf("chatfolio: model call failed, using local answer: %v", err)
		return "", false
	}
	if len(strings.TrimSpace(reply)) <= minModelReplyChars {
		log.Printf("chatfolio: model reply too short (%d chars), using local answer", len(strings.TrimSpace(reply)))
		return "", false
	}

	return reply, true
}

// localStructuredAnswer renders the deterministic per-topic template
// for an ask-about-subject intent.
//
// Topic inference has two passes: the slot extracted from the current
// utterance, then a scan of the last few history messages. With no
// topic at all, a sufficiently confident retrieval context is previewed
// before giving the general answer.
func (c *Client) localStructuredAnswer(result intent.Result, userText string, history []transcript.Message, rag retrieval.Result) string {
	topic := result.Topic
	if topic == "" {
		topic = topicFromHistory(history, c.profile.FirstName())
	}

	detailed := detailRequested(userText)

	switch topic {
	case intent.TopicEducation:
		return formatEducation(c.profile, detailed)
	case intent.TopicExperience:
		return formatExperience(c.profile, detailed)
	case intent.TopicProjects:
		return formatProjects(c.profile, detailed)
	case intent.TopicSkills:
		return formatSkills(c.profile, detailed)
	case intent.TopicAchievements:
		return formatAchievements(c.profile, detailed)
	case intent.TopicContact:
		return formatContact(c.profile)
	case intent.TopicBackground:
		return formatBackground(c.profile, detailed)
	case intent.TopicGoals:
		return formatGoals(c.profile, detailed)
	case intent.TopicInterests:
		return formatInterests(c.profile, detailed)
	}

	if rag.Confidence > retrievalFloor && rag.Context != "" {
		preview := rag.Context
		if len(preview) > 200 {
			preview = preview[:200]
		}
		return "Based on your question:\n\n" + preview + "...\n\nWould you like more details?"
	}

	return generalBriefAnswer(c.profile)
}

// topicFromHistory is the second inference pass: scan the last few
// user messages for a topic keyword hit.
func topicFromHistory(history []transcript.Message, subject string) intent.Topic {
	start := len(history) - topicScanWindow
	if start < 0 {
		start = 0
	}
	for _, msg := range history[start:] {
		if msg.Role != transcript.RoleUser {
			continue
		}
		if topic := intent.ExtractTopic(retrieval.Normalize(msg.Content, subject)); topic != "" {
			return topic
		}
	}
	return ""
}

// recentHistory converts the most recent transcript messages into
// provider messages.
func recentHistory(history []transcript.Message, window int) []llm.Message {
	start := len(history) - window
	if start < 0 {
		start = 0
	}

	messages := make([]llm.Message, 0, len(history)-start)
	for _, msg := range history[start:] {
		messages = append(messages, llm.Message{
			Role:    msg.Role,
			Content: msg.Content,
		})
	}
	return messages
}
