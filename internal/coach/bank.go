package coach

import (
	"context"

	"github.com/rittik987/alex.ai/pkg/model"
	"go.uber.org/zap"
)

// QuestionSetSource resolves a topic against the persisted store.
type QuestionSetSource interface {
	GetQuestionSet(ctx context.Context, topic string) (model.QuestionSet, error)
}

// Bank serves the interview script for a topic. A store failure is
// non-fatal: the caller always gets a non-empty set, falling back to
// the built-in questions for the topic or the global default.
type Bank struct {
	source QuestionSetSource
	logger *zap.Logger
}

func NewBank(source QuestionSetSource, logger *zap.Logger) *Bank {
	return &Bank{source: source, logger: logger}
}

const defaultTopic = "problem-solving-dsa"

func (b *Bank) QuestionSet(ctx context.Context, topic string) model.QuestionSet {
	if b.source != nil {
		qs, err := b.source.GetQuestionSet(ctx, topic)
		if err == nil && len(qs.Questions) > 0 {
			return qs
		}
		if err != nil {
			b.logger.Sugar().Warnw("question set lookup failed, using fallback", "topic", topic, "err", err)
		}
	}

	if questions, ok := fallbackQuestionSets[topic]; ok {
		return model.QuestionSet{Topic: topic, Questions: questions}
	}
	return model.QuestionSet{Topic: defaultTopic, Questions: fallbackQuestionSets[defaultTopic]}
}

// Built-in question sets, used when the database is unreachable or the
// topic is unknown.
var fallbackQuestionSets = map[string][]model.Question{
	"problem-solving-dsa": {
		{ID: 1, Type: model.QuestionBehavioral, Text: "Welcome to your mock interview! Let's start with a classic: Tell me about yourself."},
		{ID: 2, Type: model.QuestionBehavioral, Text: "Great! Now, can you describe a time when you faced a significant technical challenge and how you overcame it?"},
		{ID: 3, Type: model.QuestionCoding, Text: "Excellent. Let's move to a coding problem. Given an array of integers `nums` and an integer `target`, return indices of the two numbers such that they add up to the target. You may assume that each input would have exactly one solution, and you may not use the same element twice.", Difficulty: "Easy"},
		{ID: 4, Type: model.QuestionCoding, Text: "Great work! Here's another challenge: Given a string `s`, find the length of the longest substring without repeating characters.", Difficulty: "Medium"},
		{ID: 5, Type: model.QuestionBehavioral, Text: "Thanks for walking through those solutions. Finally, where do you see yourself in 5 years, and how does this role fit into your career goals?"},
	},
	"reactjs-deep-dive": {
		{ID: 1, Type: model.QuestionBehavioral, Text: "Welcome! Before we dive into React, tell me about yourself and your frontend experience."},
		{ID: 2, Type: model.QuestionBehavioral, Text: "Can you explain the difference between controlled and uncontrolled components, and when you'd reach for each?"},
		{ID: 3, Type: model.QuestionCoding, Text: "Let's write some code. Implement a custom hook `useDebounce(value, delay)` that returns the debounced value.", Difficulty: "Medium"},
		{ID: 4, Type: model.QuestionBehavioral, Text: "Describe a performance problem you've hit in a React app and how you diagnosed and fixed it."},
	},
	"nextjs-fullstack": {
		{ID: 1, Type: model.QuestionBehavioral, Text: "Welcome to your full-stack interview! To start: tell me about yourself."},
		{ID: 2, Type: model.QuestionBehavioral, Text: "Walk me through how you'd decide between server-side rendering, static generation, and client-side fetching for a page."},
		{ID: 3, Type: model.QuestionCoding, Text: "Write an API route handler that validates a JSON body with `email` and `message` fields and returns appropriate error responses.", Difficulty: "Easy"},
		{ID: 4, Type: model.QuestionBehavioral, Text: "Tell me about a time a production deployment went wrong. What happened, and what did you change afterwards?"},
	},
	"system-design-basics": {
		{ID: 1, Type: model.QuestionBehavioral, Text: "Welcome! Let's warm up: tell me about yourself and the systems you've worked on."},
		{ID: 2, Type: model.QuestionBehavioral, Text: "Design a URL shortener. Walk me through your data model, API, and how you'd handle collisions."},
		{ID: 3, Type: model.QuestionBehavioral, Text: "How would you scale the read path of that design to a million requests per minute?"},
		{ID: 4, Type: model.QuestionBehavioral, Text: "Finally, where do you want to take your career as a systems engineer over the next 5 years?"},
	},
}
