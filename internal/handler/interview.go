package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rittik987/alex.ai/internal/coach"
	"github.com/rittik987/alex.ai/pkg/model"
)

// Chat is the interview progression endpoint. An empty history
// bootstraps a fresh session and returns the opening question;
// otherwise it runs one full coaching turn: generate an utterance,
// combine the subjective and objective advance signals, and report the
// new position.
func (h *Handler) Chat(c *gin.Context) {
	var req model.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	claims := h.GetClaimsFromContext(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	ctx := c.Request.Context()
	key := coach.SessionKey{UserID: claims.UserID.String(), Topic: req.Topic}

	// The candidate profile personalizes prompts; a missing profile is
	// not an error, coaching just stays generic.
	var profile *model.Profile
	if p, err := h.Repo.Profile.GetByUserID(ctx, claims.UserID); err == nil {
		profile = &p
	} else {
		h.Logger.Sugar().Warnw("profile fetch failed", "user_id", claims.UserID, "err", err)
	}

	if len(req.History) == 0 && req.UserInput == "" && !req.IsCodeSubmission {
		qs, err := h.Coach.StartSession(ctx, key)
		if err != nil {
			h.Logger.Sugar().Errorw("start session failed", "topic", req.Topic, "err", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			return
		}
		first := qs.Questions[0]
		c.JSON(http.StatusOK, model.ChatResponse{
			AIResponse:           first.Text,
			CurrentQuestionIndex: 0,
			QuestionSet:          qs.Questions,
		})
		return
	}

	out, err := h.Coach.HandleTurn(ctx, key, req.CurrentQuestionIndex, coach.TurnInput{
		UserInput:        req.UserInput,
		Code:             req.Code,
		Language:         req.Language,
		IsCodeSubmission: req.IsCodeSubmission,
		Profile:          profile,
	})
	if err != nil {
		if errors.Is(err, coach.ErrIndexOutOfRange) || errors.Is(err, coach.ErrSessionDesync) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.Logger.Sugar().Errorw("coaching turn failed", "topic", req.Topic, "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	resp := model.ChatResponse{
		AIResponse:           out.Utterance,
		MoveToNext:           out.Advanced,
		NextQuestion:         out.NextQuestion,
		CurrentQuestionIndex: out.Index,
		Completed:            out.Completed,
	}
	if out.NextQuestion != nil {
		t := string(out.NextQuestion.Type)
		resp.NextQuestionType = &t
	}
	c.JSON(http.StatusOK, resp)
}
