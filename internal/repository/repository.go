package repository

import "github.com/jackc/pgx/v5/pgxpool"

type Repository struct {
	User        UserRepository
	Profile     ProfileRepository
	QuestionSet QuestionSetRepository
}

func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{
		User:        UserRepository{db: db},
		Profile:     ProfileRepository{db: db},
		QuestionSet: QuestionSetRepository{db: db},
	}
}
