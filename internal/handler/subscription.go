package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rittik987/alex.ai/pkg/model"
	"github.com/rittik987/alex.ai/pkg/response"
)

// SubscriptionStatus reports the candidate's plan, expiry, and usage.
// A missing profile degrades to the free plan rather than erroring.
func (h *Handler) SubscriptionStatus(c *gin.Context) {
	claims := h.GetClaimsFromContext(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	profile, err := h.Repo.Profile.GetByUserID(c.Request.Context(), claims.UserID)
	if err != nil {
		h.Logger.Sugar().Warnw("profile fetch failed for subscription status", "user_id", claims.UserID, "err", err)
		response.OK(c, model.SubscriptionStatusRes{Plan: model.PlanFree})
		return
	}

	isActive := profile.SubscriptionPlan != model.PlanFree &&
		(profile.SubscriptionExpiry == nil || profile.SubscriptionExpiry.After(time.Now()))

	response.OK(c, model.SubscriptionStatusRes{
		Plan:        profile.SubscriptionPlan,
		IsActive:    isActive,
		ExpiresAt:   profile.SubscriptionExpiry,
		MinutesUsed: profile.InterviewMinutesUsed,
	})
}

// UpdateMinutesUsed records interview minutes consumed by the client.
func (h *Handler) UpdateMinutesUsed(c *gin.Context) {
	claims := h.GetClaimsFromContext(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req model.UpdateMinutesReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := h.Repo.Profile.UpdateMinutesUsed(c.Request.Context(), claims.UserID, req.Minutes); err != nil {
		h.Logger.Sugar().Errorw("minutes update failed", "user_id", claims.UserID, "err", err)
		response.InternalError(c, "failed to update minutes")
		return
	}

	response.OK(c, gin.H{"minutes": req.Minutes})
}
