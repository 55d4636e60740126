package coach

import (
	"fmt"
	"strings"
	"testing"

	"github.com/rittik987/alex.ai/pkg/model"
	"github.com/stretchr/testify/assert"
)

func TestBuildCoachingPrompt(t *testing.T) {
	q := model.Question{ID: 2, Type: model.QuestionBehavioral, Text: "Describe a challenge."}
	profile := &model.Profile{FullName: "Priya Sharma", Field: "Computer Science", Branch: "Backend"}
	turns := []model.ConversationTurn{
		{Role: model.TurnUser, Content: "earlier answer"},
		{Role: model.TurnAssistant, Content: "earlier coaching"},
	}

	prompt := BuildCoachingPrompt(q, profile, turns, "my latest answer")

	assert.Contains(t, prompt, "You are Alex")
	assert.Contains(t, prompt, CompletionPhrase)
	assert.Contains(t, prompt, "Priya Sharma")
	assert.Contains(t, prompt, "Computer Science Backend")
	assert.Contains(t, prompt, "Describe a challenge.")
	assert.Contains(t, prompt, "earlier coaching")
	assert.Contains(t, prompt, "my latest answer")
}

func TestBuildCoachingPromptNilProfile(t *testing.T) {
	q := model.Question{ID: 1, Type: model.QuestionBehavioral, Text: "Tell me about yourself."}

	prompt := BuildCoachingPrompt(q, nil, nil, "hello")

	assert.Contains(t, prompt, "Candidate Name: Candidate")
	assert.Contains(t, prompt, "Candidate Background: unknown")
}

func TestBuildCoachingPromptWindowsHistory(t *testing.T) {
	q := model.Question{ID: 1, Type: model.QuestionBehavioral, Text: "Tell me about yourself."}

	var turns []model.ConversationTurn
	for i := 0; i < 10; i++ {
		turns = append(turns, model.ConversationTurn{
			Role:    model.TurnUser,
			Content: fmt.Sprintf("turn-%d", i),
		})
	}

	prompt := BuildCoachingPrompt(q, nil, turns, "latest")

	assert.False(t, strings.Contains(prompt, "turn-0"))
	assert.False(t, strings.Contains(prompt, "turn-5"))
	assert.Contains(t, prompt, "turn-6")
	assert.Contains(t, prompt, "turn-9")
}
