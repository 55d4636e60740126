package coach

import (
	"context"
	"errors"
	"testing"

	"github.com/rittik987/alex.ai/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestBankUsesStoredSet(t *testing.T) {
	stored := model.QuestionSet{
		Topic: "reactjs-deep-dive",
		Questions: []model.Question{
			{ID: 1, Type: model.QuestionBehavioral, Text: "Custom opener"},
		},
	}
	bank := NewBank(&stubSource{qs: stored}, zap.NewNop())

	qs := bank.QuestionSet(context.Background(), "reactjs-deep-dive")
	require.Equal(t, 1, qs.Len())
	assert.Equal(t, "Custom opener", qs.Questions[0].Text)
}

func TestBankFallsBackOnSourceError(t *testing.T) {
	bank := NewBank(&stubSource{err: errors.New("db down")}, zap.NewNop())

	qs := bank.QuestionSet(context.Background(), "problem-solving-dsa")
	assert.NotZero(t, qs.Len())
	assert.Equal(t, "problem-solving-dsa", qs.Topic)
}

func TestBankUnknownTopicGetsDefault(t *testing.T) {
	bank := NewBank(nil, zap.NewNop())

	qs := bank.QuestionSet(context.Background(), "underwater-basket-weaving")
	require.NotZero(t, qs.Len())
	assert.Equal(t, defaultTopic, qs.Topic)
}

func TestBankNeverReturnsEmpty(t *testing.T) {
	banks := []*Bank{
		NewBank(nil, zap.NewNop()),
		NewBank(&stubSource{err: errors.New("boom")}, zap.NewNop()),
		NewBank(&stubSource{qs: model.QuestionSet{}}, zap.NewNop()),
	}
	topics := []string{"problem-solving-dsa", "reactjs-deep-dive", "nextjs-fullstack", "system-design-basics", ""}

	for _, bank := range banks {
		for _, topic := range topics {
			qs := bank.QuestionSet(context.Background(), topic)
			assert.NotZero(t, qs.Len(), "topic %q", topic)
		}
	}
}

func TestFallbackSetsOpenWithIntroduction(t *testing.T) {
	for topic, questions := range fallbackQuestionSets {
		require.NotEmpty(t, questions, "topic %q", topic)
		assert.True(t, IsIntroductoryQuestion(questions[0].Text), "topic %q", topic)
	}
}
