package model

// ClientTurn is a conversation turn as the browser sends it. Only the
// role and content matter; the server keeps its own authoritative
// history.
type ClientTurn struct {
	Role    TurnRole `json:"role"`
	Content string   `json:"content"`
}

// ChatRequest is one interview progression call. An empty history with
// no input bootstraps a fresh session for the topic.
type ChatRequest struct {
	Topic                string       `json:"topic" binding:"required"`
	CurrentQuestionIndex int          `json:"currentQuestionIndex"`
	UserInput            string       `json:"userInput"`
	Code                 string       `json:"code"`
	Language             string       `json:"language"`
	IsCodeSubmission     bool         `json:"isCodeSubmission"`
	History              []ClientTurn `json:"history"`
}

type ChatResponse struct {
	AIResponse           string     `json:"aiResponse"`
	MoveToNext           bool       `json:"moveToNext"`
	NextQuestion         *Question  `json:"nextQuestion,omitempty"`
	NextQuestionType     *string    `json:"nextQuestionType,omitempty"`
	CurrentQuestionIndex int        `json:"currentQuestionIndex"`
	Completed            bool       `json:"completed"`
	QuestionSet          []Question `json:"questionSet,omitempty"`
}

// VoiceTurnRequest is one inbound websocket frame: a spoken transcript
// for the active topic.
type VoiceTurnRequest struct {
	Topic string `json:"topic"`
	Text  string `json:"text"`
}

type VoiceTurnResponse struct {
	AIResponse           string `json:"aiResponse,omitempty"`
	AudioData            string `json:"audioData,omitempty"`
	MoveToNext           bool   `json:"moveToNext"`
	CurrentQuestionIndex int    `json:"currentQuestionIndex"`
	Completed            bool   `json:"completed"`
	Error                string `json:"error,omitempty"`
}

type TTSRequest struct {
	Text string `json:"text" binding:"required"`
}

type TTSResponse struct {
	AudioData string `json:"audioData"`
}

type AvatarVideoRequest struct {
	Text string `json:"text" binding:"required"`
}

type AvatarVideoResponse struct {
	VideoURL string `json:"videoUrl"`
}
