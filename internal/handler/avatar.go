package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/rittik987/alex.ai/pkg/model"
	"github.com/rittik987/alex.ai/pkg/response"
)

// GenerateAvatarVideo turns a coaching utterance into a talking-head
// video via the avatar service.
func (h *Handler) GenerateAvatarVideo(c *gin.Context) {
	var req model.AvatarVideoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if !h.Avatar.Configured() {
		response.InternalError(c, "avatar video is not configured")
		return
	}

	videoURL, err := h.Avatar.GenerateVideo(c.Request.Context(), req.Text)
	if err != nil {
		h.Logger.Sugar().Errorw("avatar video generation failed", "err", err)
		response.BadGateway(c, "failed to generate avatar video")
		return
	}

	response.OK(c, model.AvatarVideoResponse{VideoURL: videoURL})
}
