package handler

import (
	"testing"
	"time"

	"github.com/rittik987/alex.ai/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanFromProductID(t *testing.T) {
	tests := []struct {
		productID string
		want      model.SubscriptionPlan
	}{
		{"alex_starter_monthly", model.PlanStarter},
		{"alex_pro_annual", model.PlanPro},
		{"rc_starter", model.PlanStarter},
		{"something_else", model.PlanFree},
		{"", model.PlanFree},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, planFromProductID(tt.productID), "product: %q", tt.productID)
	}
}

func TestParseExpiry(t *testing.T) {
	assert.Nil(t, parseExpiry(""))
	assert.Nil(t, parseExpiry("not a date"))

	got := parseExpiry("2026-09-30T12:00:00Z")
	require.NotNil(t, got)
	assert.Equal(t, time.Date(2026, 9, 30, 12, 0, 0, 0, time.UTC), got.UTC())
}
