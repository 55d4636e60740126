package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rittik987/alex.ai/internal/repository"
	"github.com/rittik987/alex.ai/pkg"
	"github.com/rittik987/alex.ai/pkg/model"
)

// SignUp creates a new user with an empty coaching profile.
func (h *Handler) SignUp(c *gin.Context) {
	var req model.SignUpReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Logger.Sugar().Warnw("signup bad request", "err", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	pwHash, err := pkg.HashPassword(req.Password)
	if err != nil {
		h.Logger.Sugar().Errorw("failed to hash password", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	userID, err := h.Repo.User.Create(ctx, req.Email, pwHash)
	if err != nil {
		if errors.Is(err, repository.ErrEmailTaken) {
			c.JSON(http.StatusConflict, gin.H{"error": "email already registered"})
			return
		}
		h.Logger.Sugar().Errorw("user create failed", "email", req.Email, "err", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not create user"})
		return
	}

	if err := h.Repo.Profile.Create(ctx, userID, req.FullName); err != nil {
		h.Logger.Sugar().Errorw("profile create failed", "user_id", userID, "err", err)
	}

	c.JSON(http.StatusCreated, gin.H{"message": "user created successfully"})
}

// Login verifies credentials and returns a JWT.
func (h *Handler) Login(c *gin.Context) {
	var req model.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Logger.Sugar().Warnw("login bad request", "err", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	user, err := h.Repo.User.GetByEmail(ctx, req.Email)
	if err != nil {
		h.Logger.Sugar().Warnw("login user not found", "email", req.Email, "err", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}
	if err := pkg.ComparePassword(user.PasswordHash, req.Password); err != nil {
		h.Logger.Sugar().Warnw("login password mismatch", "email", req.Email)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	accessToken, claims, err := h.TokenMaker.GenerateToken(user.UserID, user.Email, h.AccessTokenTTL)
	if err != nil {
		h.Logger.Sugar().Errorw("error creating token", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": model.LoginRes{
		AccessToken: accessToken,
		ExpiresAt:   claims.RegisteredClaims.ExpiresAt.Time,
		User:        model.UserRes{UserID: user.UserID, Email: user.Email},
	}})
}

// Me returns the current user.
func (h *Handler) Me(c *gin.Context) {
	claims := h.GetClaimsFromContext(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	user, err := h.Repo.User.GetByID(c.Request.Context(), claims.UserID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	c.JSON(http.StatusOK, model.UserRes{UserID: user.UserID, Email: user.Email})
}
