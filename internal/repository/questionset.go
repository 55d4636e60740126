package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rittik987/alex.ai/pkg/model"
)

type QuestionSetRepository struct {
	db *pgxpool.Pool
}

// GetQuestionSet resolves a topic against the question_sets table.
// Questions are stored as a JSONB array in interview order. Satisfies
// coach.QuestionSetSource.
func (r *QuestionSetRepository) GetQuestionSet(ctx context.Context, topic string) (model.QuestionSet, error) {
	const q = `
SELECT questions
FROM question_sets
WHERE topic = $1
`
	var raw []byte
	row := r.db.QueryRow(ctx, q, topic)
	if err := row.Scan(&raw); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.QuestionSet{}, fmt.Errorf("question set not found: %w", err)
		}
		return model.QuestionSet{}, fmt.Errorf("scan question set: %w", err)
	}

	var questions []model.Question
	if err := json.Unmarshal(raw, &questions); err != nil {
		return model.QuestionSet{}, fmt.Errorf("decode questions: %w", err)
	}
	return model.QuestionSet{Topic: topic, Questions: questions}, nil
}

// Upsert replaces a topic's question set.
func (r *QuestionSetRepository) Upsert(ctx context.Context, topic string, questions []model.Question) error {
	raw, err := json.Marshal(questions)
	if err != nil {
		return fmt.Errorf("encode questions: %w", err)
	}

	const q = `
INSERT INTO question_sets (topic, questions, updated_at)
VALUES ($1, $2, now())
ON CONFLICT (topic) DO UPDATE SET questions = EXCLUDED.questions, updated_at = now()
`
	if _, err := r.db.Exec(ctx, q, topic, raw); err != nil {
		return fmt.Errorf("upsert question set: %w", err)
	}
	return nil
}
