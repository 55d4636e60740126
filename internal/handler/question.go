package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rittik987/alex.ai/internal/fetcher"
	"github.com/rittik987/alex.ai/pkg/model"
	"github.com/rittik987/alex.ai/pkg/response"
)

// GetQuestionSet returns the interview script for a topic, resolved
// through the bank so unknown topics still yield the fallback set.
func (h *Handler) GetQuestionSet(c *gin.Context) {
	topic := c.Param("topic")
	if topic == "" {
		response.BadRequest(c, "missing topic")
		return
	}

	qs := h.Coach.Bank().QuestionSet(c.Request.Context(), topic)
	response.OK(c, qs)
}

// PutQuestionSet replaces a topic's stored question set.
func (h *Handler) PutQuestionSet(c *gin.Context) {
	topic := c.Param("topic")
	if topic == "" {
		response.BadRequest(c, "missing topic")
		return
	}

	var req model.PutQuestionSetReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := h.Repo.QuestionSet.Upsert(c.Request.Context(), topic, req.Questions); err != nil {
		h.Logger.Sugar().Errorw("question set upsert failed", "topic", topic, "err", err)
		response.InternalError(c, "failed to save question set")
		return
	}

	response.Message(c, "question set saved successfully")
}

// ImportQuestionSet scrapes interview questions from a public page and
// stores them as the topic's question set.
func (h *Handler) ImportQuestionSet(c *gin.Context) {
	var req model.ImportQuestionSetReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := fetcher.ImportQuestions(req.URL, c.Request.UserAgent())
	if err != nil {
		h.Logger.Sugar().Warnw("question import failed", "url", req.URL, "err", err)
		response.BadRequest(c, "could not import questions from url")
		return
	}

	if err := h.Repo.QuestionSet.Upsert(c.Request.Context(), req.Topic, result.Questions); err != nil {
		h.Logger.Sugar().Errorw("imported question set upsert failed", "topic", req.Topic, "err", err)
		response.InternalError(c, "failed to save question set")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "question set imported successfully",
		"title":     result.Title,
		"questions": result.Questions,
	})
}
