package model

import (
	"strings"
	"time"
)

// TurnRole identifies who spoke a conversation turn.
type TurnRole string

const (
	TurnUser      TurnRole = "user"
	TurnAssistant TurnRole = "assistant"
)

// ConversationTurn is one utterance in a coaching session, tagged with
// the question it belongs to.
type ConversationTurn struct {
	Role          TurnRole  `json:"role"`
	Content       string    `json:"content"`
	Timestamp     time.Time `json:"timestamp"`
	QuestionIndex int       `json:"question_index"`
}

// SessionState is the server-side record of one candidate's progress
// through a topic's question set.
type SessionState struct {
	Topic                string             `json:"topic"`
	CurrentQuestionIndex int                `json:"current_question_index"`
	Completed            bool               `json:"completed"`
	Turns                []ConversationTurn `json:"turns,omitempty"`
	UpdatedAt            time.Time          `json:"updated_at"`
}

// UserTextForQuestion concatenates everything the candidate has said
// while on the given question. The objective completeness check runs
// over this accumulated text, not just the latest utterance.
func (s *SessionState) UserTextForQuestion(idx int) string {
	var b strings.Builder
	for _, t := range s.Turns {
		if t.Role != TurnUser || t.QuestionIndex != idx {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(t.Content)
	}
	return b.String()
}
