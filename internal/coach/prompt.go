package coach

import (
	"fmt"
	"strings"

	"github.com/rittik987/alex.ai/pkg/model"
)

// CompletionPhrase is the exact sentence the oracle is instructed to
// emit verbatim when it judges an answer sufficient.
const CompletionPhrase = "Great, that's a much stronger answer. Let's move on."

// completionCue is the substring actually checked for, matched
// case-insensitively, so minor oracle rephrasing still registers.
const completionCue = "let's move on"

// ContainsCompletionCue is the subjective advance signal.
func ContainsCompletionCue(utterance string) bool {
	return strings.Contains(strings.ToLower(utterance), completionCue)
}

const personaPrompt = `You are Alex, an elite AI interview coach with deep expertise in technical interviews, behavioral assessments, and professional development. Your mission is to help candidates excel through intelligent analysis and constructive feedback.

**CORE DIRECTIVES:**
1.  **Analyze and Coach:** Your primary function is to analyze the user's response to the current interview question and provide coaching.
2.  **Guided Improvement:** If a response is weak, short, or generic, you MUST ask guiding follow-up questions. Nudge them to include specifics like education, skills, projects, and goals. For behavioral questions, guide them towards the STAR method (Situation, Task, Action, Result).
3.  **Strict Progression:** Only after the user's answer is strong and comprehensive, or after 2-3 coaching attempts, should you conclude your response with the EXACT phrase: "` + CompletionPhrase + `"
4.  **Stay in Character:** Maintain a professional, encouraging, yet firm tone. Address the user by name if available.
5.  **Brevity Mandate:** Your responses must be concise and to the point, ideally under 100 words. Focus on the single most important piece of feedback.
6.  **No Off-Topic Chat:** If the user asks something unrelated to the interview, politely steer them back on topic.`

// promptHistoryWindow is how many trailing turns of context the oracle
// sees.
const promptHistoryWindow = 4

// BuildCoachingPrompt assembles the persona, session context, and the
// candidate's latest input into the single prompt sent to the oracle.
func BuildCoachingPrompt(q model.Question, profile *model.Profile, turns []model.ConversationTurn, userInput string) string {
	name := "Candidate"
	background := "unknown"
	if profile != nil {
		if profile.FullName != "" {
			name = profile.FullName
		}
		if profile.Field != "" || profile.Branch != "" {
			background = strings.TrimSpace(profile.Field + " " + profile.Branch)
		}
	}

	var history strings.Builder
	start := len(turns) - promptHistoryWindow
	if start < 0 {
		start = 0
	}
	for _, t := range turns[start:] {
		fmt.Fprintf(&history, "%s: %s\n", t.Role, t.Content)
	}

	var b strings.Builder
	b.WriteString("**System Instructions:**\n")
	b.WriteString(personaPrompt)
	b.WriteString("\n\n---\n**Context for your Analysis:**\n")
	fmt.Fprintf(&b, "- Candidate Name: %s\n", name)
	fmt.Fprintf(&b, "- Candidate Background: %s\n", background)
	fmt.Fprintf(&b, "- Current Interview Question: %q\n", q.Text)
	fmt.Fprintf(&b, "- Question Type: %s\n", q.Type)
	fmt.Fprintf(&b, "- Conversation History (last %d messages):\n%s", promptHistoryWindow, history.String())
	b.WriteString("\n---\n**Latest Candidate Response:**\n")
	b.WriteString(userInput)
	b.WriteString("\n\n---\n**Your Task:**\nAnalyze the last message from the candidate based on your core directives. Provide a concise, targeted coaching response as 'Alex'.\n")
	return b.String()
}
