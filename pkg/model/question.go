package model

// QuestionType distinguishes conversational questions from ones that
// expect a code submission.
type QuestionType string

const (
	QuestionBehavioral QuestionType = "behavioral"
	QuestionCoding     QuestionType = "coding"
)

// Question is one scripted interview question.
type Question struct {
	ID         int          `json:"id"`
	Type       QuestionType `json:"type"`
	Text       string       `json:"text"`
	Difficulty string       `json:"difficulty,omitempty"`
}

// QuestionSet is the ordered script for one interview topic.
type QuestionSet struct {
	Topic     string     `json:"topic"`
	Questions []Question `json:"questions"`
}

func (qs QuestionSet) Len() int {
	return len(qs.Questions)
}

// At returns the question at idx, reporting false when idx is past the
// end of the script.
func (qs QuestionSet) At(idx int) (Question, bool) {
	if idx < 0 || idx >= len(qs.Questions) {
		return Question{}, false
	}
	return qs.Questions[idx], true
}

type PutQuestionSetReq struct {
	Questions []Question `json:"questions" binding:"required,min=1,dive"`
}

type ImportQuestionSetReq struct {
	Topic string `json:"topic" binding:"required"`
	URL   string `json:"url" binding:"required,url"`
}
