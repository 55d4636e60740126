package coach

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rittik987/alex.ai/pkg/model"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type stubOracle struct {
	reply string
	err   error
	calls int
}

func (s *stubOracle) Generate(_ context.Context, _ string) (string, error) {
	s.calls++
	if s.err != nil {
		return "", s.err
	}
	return s.reply, nil
}

var introQuestion = model.Question{ID: 1, Type: model.QuestionBehavioral, Text: "Tell me about yourself."}

func TestCoachingTurnUsesOracleReply(t *testing.T) {
	oracle := &stubOracle{reply: "Good answer. " + CompletionPhrase}
	gen := NewGenerator(oracle, time.Second, zap.NewNop())

	turn := gen.CoachingTurn(context.Background(), introQuestion, nil, nil, "some answer text", "some answer text")

	assert.Equal(t, 1, oracle.calls)
	assert.True(t, turn.Sufficient)
	assert.False(t, turn.Fallback)
	assert.Contains(t, turn.Utterance, "Good answer")
}

func TestCoachingTurnWithoutCueIsInsufficient(t *testing.T) {
	oracle := &stubOracle{reply: "Can you add more detail about the results?"}
	gen := NewGenerator(oracle, time.Second, zap.NewNop())

	turn := gen.CoachingTurn(context.Background(), introQuestion, nil, nil, "answer", "answer")

	assert.False(t, turn.Sufficient)
}

func TestCoachingTurnFallbackOnOracleFailure(t *testing.T) {
	oracle := &stubOracle{err: errors.New("upstream unavailable")}
	gen := NewGenerator(oracle, time.Second, zap.NewNop())

	t.Run("gibberish gets a re-ask", func(t *testing.T) {
		turn := gen.CoachingTurn(context.Background(), introQuestion, nil, nil, "asdfghjkl qwerty zxcvb", "asdfghjkl qwerty zxcvb")
		assert.True(t, turn.Fallback)
		assert.False(t, turn.Sufficient)
		assert.NotEmpty(t, turn.Utterance)
	})

	t.Run("complete introduction passes", func(t *testing.T) {
		turn := gen.CoachingTurn(context.Background(), introQuestion, nil, nil, fullIntro, fullIntro)
		assert.True(t, turn.Fallback)
		assert.True(t, turn.Sufficient)
	})

	t.Run("partial introduction names the gaps", func(t *testing.T) {
		turn := gen.CoachingTurn(context.Background(), introQuestion, nil, nil, "Hi, my name is Sam and that is all.", "Hi, my name is Sam and that is all.")
		assert.True(t, turn.Fallback)
		assert.False(t, turn.Sufficient)
		assert.Contains(t, turn.Utterance, "your education")
	})

	t.Run("short behavioral answer gets a STAR nudge", func(t *testing.T) {
		q := model.Question{ID: 2, Type: model.QuestionBehavioral, Text: "Describe a technical challenge you overcame."}
		turn := gen.CoachingTurn(context.Background(), q, nil, nil, "It was hard but I fixed it.", "It was hard but I fixed it.")
		assert.True(t, turn.Fallback)
		assert.False(t, turn.Sufficient)
		assert.Contains(t, turn.Utterance, "STAR")
	})

	t.Run("substantive behavioral answer passes", func(t *testing.T) {
		q := model.Question{ID: 2, Type: model.QuestionBehavioral, Text: "Describe a technical challenge you overcame."}
		answer := "Our payment service kept timing out under load, so I profiled the hot path, found an unindexed query, added a covering index, and cut p99 latency from two seconds to eighty milliseconds."
		turn := gen.CoachingTurn(context.Background(), q, nil, nil, answer, answer)
		assert.True(t, turn.Fallback)
		assert.True(t, turn.Sufficient)
	})
}

func TestCoachingTurnFallbackUsesFirstName(t *testing.T) {
	oracle := &stubOracle{err: errors.New("boom")}
	gen := NewGenerator(oracle, time.Second, zap.NewNop())
	profile := &model.Profile{FullName: "Priya Sharma"}

	turn := gen.CoachingTurn(context.Background(), introQuestion, profile, nil, "Hi, my name is Priya.", "Hi, my name is Priya.")

	assert.Contains(t, turn.Utterance, "Priya")
	assert.NotContains(t, turn.Utterance, "Sharma")
}

func TestIsGibberish(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"asdfghjkl", true},
		{"aaaaaaaaaaaa", true},
		{"xkcdqwrtpsdfgh zxcvbnmasdfqw", true},
		{"hi", true},
		{"I have three years of backend experience.", false},
		{"My name is Sam and I studied at MIT.", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, isGibberish(tt.text), "text: %q", tt.text)
	}
}

func TestContainsCompletionCue(t *testing.T) {
	assert.True(t, ContainsCompletionCue(CompletionPhrase))
	assert.True(t, ContainsCompletionCue("Well done. LET'S MOVE ON."))
	assert.True(t, ContainsCompletionCue("Strong answer, let's move on to the next one."))
	assert.False(t, ContainsCompletionCue("Let's keep working on this one."))
	assert.False(t, ContainsCompletionCue(""))
}
