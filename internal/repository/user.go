package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rittik987/alex.ai/pkg/model"
)

var ErrEmailTaken = errors.New("email already exists")

type UserRepository struct {
	db *pgxpool.Pool
}

// Create inserts a new user and returns the generated id.
func (r *UserRepository) Create(ctx context.Context, email, passwordHash string) (uuid.UUID, error) {
	id := uuid.New()
	const q = `
INSERT INTO users (user_id, email, password_hash, created_at, updated_at)
VALUES ($1, $2, $3, now(), now())
`
	_, err := r.db.Exec(ctx, q, id, email, passwordHash)
	if err != nil {
		var pgErr *pgconn.PgError
		// 23505 is unique_violation
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return uuid.Nil, fmt.Errorf("%w: %s", ErrEmailTaken, email)
		}
		return uuid.Nil, fmt.Errorf("insert user: %w", err)
	}
	return id, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (model.User, error) {
	const q = `
SELECT user_id, email, password_hash, created_at, updated_at
FROM users
WHERE email = $1
`
	var u model.User
	row := r.db.QueryRow(ctx, q, email)
	if err := row.Scan(&u.UserID, &u.Email, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, fmt.Errorf("user not found: %w", err)
		}
		return model.User{}, fmt.Errorf("scan user by email: %w", err)
	}
	return u, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (model.User, error) {
	const q = `
SELECT user_id, email, password_hash, created_at, updated_at
FROM users
WHERE user_id = $1
`
	var u model.User
	row := r.db.QueryRow(ctx, q, id)
	if err := row.Scan(&u.UserID, &u.Email, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, fmt.Errorf("user not found: %w", err)
		}
		return model.User{}, fmt.Errorf("scan user by id: %w", err)
	}
	return u, nil
}
