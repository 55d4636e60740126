package coach

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rittik987/alex.ai/pkg/model"
	"go.uber.org/zap"
)

var (
	// ErrIndexOutOfRange means the client sent a question index that
	// cannot exist for the topic's question set.
	ErrIndexOutOfRange = errors.New("question index out of range")

	// ErrSessionDesync means the client's index disagrees with the
	// server-side session. The server state is authoritative.
	ErrSessionDesync = errors.New("client question index out of sync with session")
)

const completionMessage = "Congratulations! You've completed the interview. Great job!"

// TurnInput is the candidate's latest contribution: free text, or a
// code submission for a coding question. Profile personalizes the
// coaching utterance and may be nil.
type TurnInput struct {
	UserInput        string
	Code             string
	Language         string
	IsCodeSubmission bool
	Profile          *model.Profile
}

// Outcome is the result of one progression step.
type Outcome struct {
	Utterance    string
	Advanced     bool
	Index        int
	Completed    bool
	NextQuestion *model.Question
}

// Controller owns a session's progression state. After each candidate
// turn it decides whether to stay on the current question, advance, or
// end the interview.
//
// Advance policy: the oracle's subjective signal alone advances most
// questions, but for introductory behavioral questions the objective
// component check must also pass. The objective signal wins a
// disagreement, so a model false-positive cannot end an incomplete
// self-introduction early.
type Controller struct {
	bank        *Bank
	gen         *Generator
	store       SessionStore
	historyTrim int
	logger      *zap.Logger
}

func NewController(bank *Bank, gen *Generator, store SessionStore, historyTrim int, logger *zap.Logger) *Controller {
	if historyTrim < 1 {
		historyTrim = 20
	}
	return &Controller{
		bank:        bank,
		gen:         gen,
		store:       store,
		historyTrim: historyTrim,
		logger:      logger,
	}
}

// Bank exposes the question source for read-only lookups.
func (c *Controller) Bank() *Bank {
	return c.bank
}

// StartSession resets state for the key and returns the question set
// with its opening question.
func (c *Controller) StartSession(ctx context.Context, key SessionKey) (model.QuestionSet, error) {
	qs := c.bank.QuestionSet(ctx, key.Topic)

	state := &model.SessionState{
		Topic:     key.Topic,
		UpdatedAt: time.Now(),
	}
	if err := c.store.Put(ctx, key, state); err != nil {
		return model.QuestionSet{}, fmt.Errorf("start session: %w", err)
	}
	return qs, nil
}

// SessionIndex reports the stored session's current question index,
// zero when no session exists yet. The voice loop uses it because the
// speech client doesn't track the index itself.
func (c *Controller) SessionIndex(ctx context.Context, key SessionKey) (int, error) {
	state, err := c.store.Get(ctx, key)
	if err != nil {
		return 0, fmt.Errorf("load session: %w", err)
	}
	if state == nil {
		return 0, nil
	}
	return state.CurrentQuestionIndex, nil
}

// HandleTurn runs one full progression step for the candidate's latest
// input. clientIndex is validated against the question set and the
// stored session before anything else happens.
func (c *Controller) HandleTurn(ctx context.Context, key SessionKey, clientIndex int, in TurnInput) (Outcome, error) {
	qs := c.bank.QuestionSet(ctx, key.Topic)

	if clientIndex < 0 || clientIndex > qs.Len() {
		return Outcome{}, fmt.Errorf("%w: %d (question set has %d questions)", ErrIndexOutOfRange, clientIndex, qs.Len())
	}

	state, err := c.store.Get(ctx, key)
	if err != nil {
		return Outcome{}, fmt.Errorf("load session: %w", err)
	}
	if state == nil {
		state = &model.SessionState{Topic: key.Topic, CurrentQuestionIndex: clientIndex}
	}

	// Terminal state is stable: once complete, every further call
	// reports completion and nothing else changes.
	if state.Completed || state.CurrentQuestionIndex >= qs.Len() {
		return Outcome{
			Utterance: completionMessage,
			Index:     qs.Len(),
			Completed: true,
		}, nil
	}

	if clientIndex != state.CurrentQuestionIndex {
		return Outcome{}, fmt.Errorf("%w: client at %d, session at %d", ErrSessionDesync, clientIndex, state.CurrentQuestionIndex)
	}

	question, _ := qs.At(state.CurrentQuestionIndex)
	idx := state.CurrentQuestionIndex

	userContent := in.UserInput
	if in.IsCodeSubmission {
		userContent = in.Code
	}
	state.Turns = append(state.Turns, model.ConversationTurn{
		Role:          model.TurnUser,
		Content:       userContent,
		Timestamp:     time.Now(),
		QuestionIndex: idx,
	})

	utterance, signal := c.evaluateTurn(ctx, question, state, in)

	advance := signal
	if question.Type == model.QuestionBehavioral && IsIntroductoryQuestion(question.Text) {
		objective := ClassifyComponents(state.UserTextForQuestion(idx))
		advance = signal && objective.Complete()
		if signal && !advance {
			c.logger.Sugar().Debugw("objective check blocked advance",
				"session", key.String(), "index", idx, "missing", objective.Missing())
		}
	}

	state.Turns = append(state.Turns, model.ConversationTurn{
		Role:          model.TurnAssistant,
		Content:       utterance,
		Timestamp:     time.Now(),
		QuestionIndex: idx,
	})
	if len(state.Turns) > c.historyTrim {
		state.Turns = state.Turns[len(state.Turns)-c.historyTrim:]
	}

	out := Outcome{Utterance: utterance, Index: idx}
	if advance {
		idx++
		state.CurrentQuestionIndex = idx
		out.Advanced = true
		out.Index = idx
		if idx >= qs.Len() {
			state.Completed = true
			out.Completed = true
		} else if next, ok := qs.At(idx); ok {
			out.NextQuestion = &next
		}
	}

	state.UpdatedAt = time.Now()
	if err := c.store.Put(ctx, key, state); err != nil {
		return Outcome{}, fmt.Errorf("save session: %w", err)
	}
	return out, nil
}

// evaluateTurn produces the assistant utterance and the advance signal
// for it. Code submissions on coding questions bypass the oracle
// entirely; the evaluator's verdict plays the subjective signal's role.
func (c *Controller) evaluateTurn(ctx context.Context, question model.Question, state *model.SessionState, in TurnInput) (string, bool) {
	if question.Type == model.QuestionCoding && in.IsCodeSubmission {
		ev := EvaluateCode(in.Code, in.Language, question)
		return ev.Message, ev.IsCorrect
	}

	turn := c.gen.CoachingTurn(ctx, question, in.Profile, state.Turns, in.UserInput,
		state.UserTextForQuestion(state.CurrentQuestionIndex))
	return turn.Utterance, turn.Sufficient
}
