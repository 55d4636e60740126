package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rittik987/alex.ai/pkg/model"
)

type ProfileRepository struct {
	db *pgxpool.Pool
}

func (r *ProfileRepository) Create(ctx context.Context, userID uuid.UUID, fullName string) error {
	const q = `
INSERT INTO profiles (user_id, full_name, subscription_plan, interview_minutes_used, created_at, updated_at)
VALUES ($1, $2, 'free', 0, now(), now())
`
	if _, err := r.db.Exec(ctx, q, userID, fullName); err != nil {
		return fmt.Errorf("insert profile: %w", err)
	}
	return nil
}

func (r *ProfileRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (model.Profile, error) {
	const q = `
SELECT user_id, full_name, COALESCE(field, ''), COALESCE(branch, ''),
       subscription_plan, subscription_expiry, interview_minutes_used,
       created_at, updated_at
FROM profiles
WHERE user_id = $1
`
	var p model.Profile
	row := r.db.QueryRow(ctx, q, userID)
	if err := row.Scan(&p.UserID, &p.FullName, &p.Field, &p.Branch,
		&p.SubscriptionPlan, &p.SubscriptionExpiry, &p.InterviewMinutesUsed,
		&p.CreatedAt, &p.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Profile{}, fmt.Errorf("profile not found: %w", err)
		}
		return model.Profile{}, fmt.Errorf("scan profile: %w", err)
	}
	return p, nil
}

// Patch applies the non-nil onboarding fields.
func (r *ProfileRepository) Patch(ctx context.Context, userID uuid.UUID, req model.PatchProfileReq) error {
	const q = `
UPDATE profiles
SET full_name = COALESCE($2, full_name),
    field     = COALESCE($3, field),
    branch    = COALESCE($4, branch),
    updated_at = now()
WHERE user_id = $1
`
	tag, err := r.db.Exec(ctx, q, userID, req.FullName, req.Field, req.Branch)
	if err != nil {
		return fmt.Errorf("patch profile: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// UpdateSubscription is driven by billing webhook events; expiry may be
// nil for non-expiring or reset states.
func (r *ProfileRepository) UpdateSubscription(ctx context.Context, userID uuid.UUID, plan model.SubscriptionPlan, expiry *time.Time) error {
	const q = `
UPDATE profiles
SET subscription_plan = $2, subscription_expiry = $3, updated_at = now()
WHERE user_id = $1
`
	tag, err := r.db.Exec(ctx, q, userID, plan, expiry)
	if err != nil {
		return fmt.Errorf("update subscription: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *ProfileRepository) UpdateMinutesUsed(ctx context.Context, userID uuid.UUID, minutes int) error {
	const q = `
UPDATE profiles
SET interview_minutes_used = $2, updated_at = now()
WHERE user_id = $1
`
	tag, err := r.db.Exec(ctx, q, userID, minutes)
	if err != nil {
		return fmt.Errorf("update minutes used: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
