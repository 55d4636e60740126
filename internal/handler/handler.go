package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rittik987/alex.ai/internal/auth"
	"github.com/rittik987/alex.ai/internal/coach"
	"github.com/rittik987/alex.ai/internal/elevenlabs"
	"github.com/rittik987/alex.ai/internal/repository"
	"github.com/rittik987/alex.ai/internal/tavus"
	"go.uber.org/zap"
)

type Handler struct {
	Logger           *zap.Logger
	Repo             *repository.Repository
	TokenMaker       *auth.JWTMaker
	AccessTokenTTL   time.Duration
	Coach            *coach.Controller
	TTS              *elevenlabs.Client
	Avatar           *tavus.Client
	WebhookAuthToken string
}

// GetClaimsFromContext retrieves the verified token claims set by the
// auth middleware, or nil when the request is unauthenticated.
func (h *Handler) GetClaimsFromContext(c *gin.Context) *auth.Claims {
	contextClaims, exists := c.Get("claims")
	if !exists {
		return nil
	}
	claims, ok := contextClaims.(*auth.Claims)
	if !ok {
		return nil
	}
	return claims
}
