package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rittik987/alex.ai/pkg/model"
)

// RevenueCatWebhook applies billing events to the candidate's profile.
// Purchases and uncancellations set the plan from the product id;
// cancellations, expirations, and billing issues reset to free.
func (h *Handler) RevenueCatWebhook(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	if h.WebhookAuthToken == "" || authHeader != "Bearer "+h.WebhookAuthToken {
		h.Logger.Sugar().Warnw("revenuecat webhook rejected: bad auth token")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var payload model.RevenueCatWebhook
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	event := payload.Event
	userID, err := uuid.Parse(event.AppUserID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid app_user_id"})
		return
	}

	ctx := c.Request.Context()

	switch event.Type {
	case model.RCInitialPurchase, model.RCRenewal, model.RCNonRenewingPurchase, model.RCUncancellation:
		plan := planFromProductID(event.ProductID)
		expiry := parseExpiry(event.ExpiresDate)
		if err := h.Repo.Profile.UpdateSubscription(ctx, userID, plan, expiry); err != nil {
			h.Logger.Sugar().Errorw("subscription update failed", "user_id", userID, "event", event.Type, "err", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update subscription"})
			return
		}

	case model.RCCancellation, model.RCExpiration, model.RCBillingIssue:
		if err := h.Repo.Profile.UpdateSubscription(ctx, userID, model.PlanFree, nil); err != nil {
			h.Logger.Sugar().Errorw("subscription reset failed", "user_id", userID, "event", event.Type, "err", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to reset subscription"})
			return
		}

	default:
		h.Logger.Sugar().Infow("unhandled revenuecat event type", "type", event.Type)
	}

	c.JSON(http.StatusOK, gin.H{"received": true})
}

func planFromProductID(productID string) model.SubscriptionPlan {
	switch {
	case strings.Contains(productID, "starter"):
		return model.PlanStarter
	case strings.Contains(productID, "pro"):
		return model.PlanPro
	default:
		return model.PlanFree
	}
}

func parseExpiry(raw string) *time.Time {
	if raw == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil
	}
	return &t
}
