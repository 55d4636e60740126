package model

import (
	"time"

	"github.com/google/uuid"
)

type SubscriptionPlan string

const (
	PlanFree    SubscriptionPlan = "free"
	PlanStarter SubscriptionPlan = "starter"
	PlanPro     SubscriptionPlan = "pro"
)

// Profile holds the onboarding data used to personalize coaching
// prompts plus the billing fields maintained by the RevenueCat webhook.
type Profile struct {
	UserID               uuid.UUID        `json:"user_id" db:"user_id"`
	FullName             string           `json:"full_name" db:"full_name"`
	Field                string           `json:"field" db:"field"`
	Branch               string           `json:"branch" db:"branch"`
	SubscriptionPlan     SubscriptionPlan `json:"subscription_plan" db:"subscription_plan"`
	SubscriptionExpiry   *time.Time       `json:"subscription_expiry" db:"subscription_expiry"`
	InterviewMinutesUsed int              `json:"interview_minutes_used" db:"interview_minutes_used"`
	CreatedAt            time.Time        `json:"created_at" db:"created_at"`
	UpdatedAt            time.Time        `json:"updated_at" db:"updated_at"`
}

// FirstName returns the leading word of the full name, for addressing
// the candidate in coaching replies.
func (p *Profile) FirstName() string {
	if p == nil || p.FullName == "" {
		return ""
	}
	for i, r := range p.FullName {
		if r == ' ' {
			return p.FullName[:i]
		}
	}
	return p.FullName
}

type PatchProfileReq struct {
	FullName *string `json:"full_name"`
	Field    *string `json:"field"`
	Branch   *string `json:"branch"`
}

type SubscriptionStatusRes struct {
	Plan        SubscriptionPlan `json:"plan"`
	IsActive    bool             `json:"isActive"`
	ExpiresAt   *time.Time       `json:"expiresAt"`
	MinutesUsed int              `json:"minutesUsed"`
}

type UpdateMinutesReq struct {
	Minutes int `json:"minutes" binding:"required,gt=0"`
}
