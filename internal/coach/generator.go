package coach

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/rittik987/alex.ai/pkg/model"
	"go.uber.org/zap"
)

// Oracle is the external conversational model, treated as a reasoning
// black box: prompt text in, utterance text out.
type Oracle interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Turn is one generated coaching utterance plus the subjective advance
// signal. Fallback marks utterances produced locally after an oracle
// failure.
type Turn struct {
	Utterance  string
	Sufficient bool
	Fallback   bool
}

// Generator builds the coaching prompt and delegates to the oracle.
// The oracle call is bounded by a timeout; any failure is absorbed by
// a deterministic local fallback so a coaching turn is always produced.
type Generator struct {
	oracle  Oracle
	timeout time.Duration
	logger  *zap.Logger
}

func NewGenerator(oracle Oracle, timeout time.Duration, logger *zap.Logger) *Generator {
	return &Generator{oracle: oracle, timeout: timeout, logger: logger}
}

// CoachingTurn produces the assistant utterance for the candidate's
// latest input. questionUserText is the accumulated candidate text for
// the current question (including this input), used by the fallback
// path's objective decisions.
func (g *Generator) CoachingTurn(ctx context.Context, q model.Question, profile *model.Profile, turns []model.ConversationTurn, userInput, questionUserText string) Turn {
	prompt := BuildCoachingPrompt(q, profile, turns, userInput)

	oracleCtx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	utterance, err := g.oracle.Generate(oracleCtx, prompt)
	if err != nil {
		g.logger.Sugar().Warnw("oracle call failed, using fallback coaching", "question_id", q.ID, "err", err)
		return g.fallbackTurn(q, profile, userInput, questionUserText)
	}

	return Turn{
		Utterance:  utterance,
		Sufficient: ContainsCompletionCue(utterance),
	}
}

// minSubstantiveAnswer is the length below which a behavioral answer
// gets a STAR nudge instead of credit.
const minSubstantiveAnswer = 80

func (g *Generator) fallbackTurn(q model.Question, profile *model.Profile, userInput, questionUserText string) Turn {
	name := "there"
	if first := profile.FirstName(); first != "" {
		name = first
	}

	if isGibberish(userInput) {
		return Turn{
			Utterance: fmt.Sprintf("%s, I notice your response doesn't seem to address the interview question. In a real interview it's crucial to give thoughtful, relevant answers. Could you give me a genuine response to: %q?", name, q.Text),
			Fallback:  true,
		}
	}

	// Introductory questions keep the objective completeness rule even
	// without the oracle.
	if q.Type == model.QuestionBehavioral && IsIntroductoryQuestion(q.Text) {
		components := ClassifyComponents(questionUserText)
		if components.Complete() {
			return Turn{
				Utterance:  fmt.Sprintf("That covers everything I'd want to hear in an introduction, %s. %s", name, CompletionPhrase),
				Sufficient: true,
				Fallback:   true,
			}
		}
		missing := strings.Join(components.Missing(), ", ")
		return Turn{
			Utterance: fmt.Sprintf("I'm having a brief technical moment, but let's not lose momentum, %s. A strong introduction covers who you are, your education, skills, projects, and goals. I'd still like to hear about: %s.", name, missing),
			Fallback:  true,
		}
	}

	if len(strings.TrimSpace(userInput)) >= minSubstantiveAnswer {
		return Turn{
			Utterance:  fmt.Sprintf("Good effort, %s! You're providing real detail here. To make it even stronger, show the measurable impact of your actions. %s", name, CompletionPhrase),
			Sufficient: true,
			Fallback:   true,
		}
	}

	return Turn{
		Utterance: fmt.Sprintf("%s, that's a start, but this answer needs more depth. Try the STAR method: describe the Situation, the Task, the Actions you took, and the Results you achieved. Can you expand your answer using that framework?", name),
		Fallback:  true,
	}
}

var (
	longConsonantRun = regexp.MustCompile(`^[^aeiou\s]{8,}$`)
	repeatedChar     = regexp.MustCompile(`(.)\1{4,}`)
	vowel            = regexp.MustCompile(`[aeiouAEIOU]`)
)

// isGibberish flags keyboard-mash input: natural language carries
// roughly 40% vowels, so a very low vowel ratio, long consonant runs,
// or heavy character repetition all indicate a non-answer.
func isGibberish(text string) bool {
	trimmed := strings.TrimSpace(text)
	if len(trimmed) < 10 {
		return true
	}

	words := strings.Fields(strings.ToLower(trimmed))
	allLong := len(words) > 0
	for _, w := range words {
		if longConsonantRun.MatchString(w) || repeatedChar.MatchString(w) {
			return true
		}
		if len(w) <= 12 {
			allLong = false
		}
	}
	if allLong {
		return true
	}

	vowelCount := len(vowel.FindAllString(trimmed, -1))
	return float64(vowelCount)/float64(len(trimmed)) < 0.15
}
