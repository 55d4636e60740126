package coach

import (
	"strings"

	"github.com/rittik987/alex.ai/pkg/model"
)

// Evaluation is the heuristic verdict on a code submission. It is a
// structural approximation, not execution: no compiling, no sandboxing,
// no test cases.
type Evaluation struct {
	IsCorrect bool   `json:"isCorrect"`
	Score     int    `json:"score"`
	Message   string `json:"message"`
}

// Structural signal weights. A submission passes at passThreshold.
const (
	weightFunction = 3
	weightLoop     = 2
	weightReturn   = 2
	weightLines    = 1
	weightHashMap  = 2

	passThreshold = 6
	minLineCount  = 5
)

var (
	functionMarkers = []string{"def ", "func ", "function ", "function(", "=>", "public ", "private ", "fn "}
	loopMarkers     = []string{"for ", "for(", "while ", "while(", ".map(", ".foreach", "range("}
	returnMarkers   = []string{"return"}
	hashMapMarkers  = []string{"map[", "hashmap", "dict(", "dict{", "new map", "set(", "new set", "{}", "unordered_map"}
)

// EvaluateCode scores a coding-question submission from structural
// signals. Identical inputs always yield the identical result, and
// malformed input is a low score, never an error.
func EvaluateCode(code, language string, q model.Question) Evaluation {
	trimmed := strings.TrimSpace(code)
	if trimmed == "" {
		return Evaluation{
			IsCorrect: false,
			Score:     0,
			Message:   "I don't see any code in your submission. Take another look at the problem and share your solution when it's ready.",
		}
	}

	lower := strings.ToLower(trimmed)
	score := 0

	if containsAny(lower, functionMarkers) {
		score += weightFunction
	}
	if containsAny(lower, loopMarkers) {
		score += weightLoop
	}
	if containsAny(lower, returnMarkers) {
		score += weightReturn
	}
	if lineCount(trimmed) >= minLineCount {
		score += weightLines
	}
	if containsAny(lower, hashMapMarkers) {
		score += weightHashMap
	}

	if score >= passThreshold {
		return Evaluation{
			IsCorrect: true,
			Score:     score,
			Message:   "Nice work! Your solution has a solid structure: I can see a clear function, iteration, and a result being returned. In a live interview, walk your interviewer through the time and space complexity as you go.",
		}
	}

	return Evaluation{
		IsCorrect: false,
		Score:     score,
		Message:   "You're on the right track, but the solution looks incomplete. Make sure you define a function, iterate over the input, and return your result. Consider whether a hash map could simplify the lookup.",
	}
}

func lineCount(code string) int {
	n := 0
	for _, line := range strings.Split(code, "\n") {
		if strings.TrimSpace(line) != "" {
			n++
		}
	}
	return n
}
