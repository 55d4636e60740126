package coach

import (
	"testing"

	"github.com/rittik987/alex.ai/pkg/model"
	"github.com/stretchr/testify/assert"
)

var twoSumQuestion = model.Question{ID: 3, Type: model.QuestionCoding, Text: "Two sum", Difficulty: "Easy"}

const passingSolution = `def two_sum(nums, target):
    seen = {}
    for i, n in enumerate(nums):
        if target - n in seen:
            return [seen[target - n], i]
        seen[n] = i
    return []`

func TestEvaluateCodePassing(t *testing.T) {
	ev := EvaluateCode(passingSolution, "python", twoSumQuestion)

	assert.True(t, ev.IsCorrect)
	assert.GreaterOrEqual(t, ev.Score, passThreshold)
	assert.NotEmpty(t, ev.Message)
}

func TestEvaluateCodeIncomplete(t *testing.T) {
	ev := EvaluateCode("x = 1 + 2", "python", twoSumQuestion)

	assert.False(t, ev.IsCorrect)
	assert.Less(t, ev.Score, passThreshold)
	assert.NotEmpty(t, ev.Message)
}

func TestEvaluateCodeEmpty(t *testing.T) {
	for _, code := range []string{"", "   ", "\n\t\n"} {
		ev := EvaluateCode(code, "go", twoSumQuestion)
		assert.False(t, ev.IsCorrect)
		assert.Zero(t, ev.Score)
	}
}

func TestEvaluateCodeMalformedNeverPanics(t *testing.T) {
	inputs := []string{
		"}}}}{{{{",
		"<<<>>> not code at all",
		"SELECT * FROM users; DROP TABLE users;",
		"\x00\x01\x02",
	}
	for _, code := range inputs {
		ev := EvaluateCode(code, "unknown", twoSumQuestion)
		assert.False(t, ev.IsCorrect)
	}
}

func TestEvaluateCodeDeterministic(t *testing.T) {
	first := EvaluateCode(passingSolution, "python", twoSumQuestion)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, EvaluateCode(passingSolution, "python", twoSumQuestion))
	}
}

func TestEvaluateCodeGoSolution(t *testing.T) {
	code := `func twoSum(nums []int, target int) []int {
	seen := map[int]int{}
	for i, n := range nums {
		if j, ok := seen[target-n]; ok {
			return []int{j, i}
		}
		seen[n] = i
	}
	return nil
}`
	ev := EvaluateCode(code, "go", twoSumQuestion)
	assert.True(t, ev.IsCorrect)
}
