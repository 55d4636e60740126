package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rittik987/alex.ai/pkg/model"
	"github.com/rittik987/alex.ai/pkg/response"
)

// GetProfile returns the candidate's coaching profile.
func (h *Handler) GetProfile(c *gin.Context) {
	claims := h.GetClaimsFromContext(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	profile, err := h.Repo.Profile.GetByUserID(c.Request.Context(), claims.UserID)
	if err != nil {
		response.NotFound(c, "profile not found")
		return
	}

	response.OK(c, profile)
}

// PatchProfile updates the onboarding fields used to personalize
// coaching prompts.
func (h *Handler) PatchProfile(c *gin.Context) {
	claims := h.GetClaimsFromContext(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req model.PatchProfileReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if req.FullName == nil && req.Field == nil && req.Branch == nil {
		response.BadRequest(c, "no fields to update")
		return
	}

	if err := h.Repo.Profile.Patch(c.Request.Context(), claims.UserID, req); err != nil {
		h.Logger.Sugar().Errorw("profile patch failed", "user_id", claims.UserID, "err", err)
		response.InternalError(c, "failed to update profile")
		return
	}

	response.Message(c, "profile updated successfully")
}
