package handler

import (
	"encoding/base64"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rittik987/alex.ai/internal/coach"
	"github.com/rittik987/alex.ai/pkg/model"
	"github.com/rittik987/alex.ai/pkg/response"
)

// SynthesizeSpeech converts coaching text to audio and returns it as a
// base64 data URL the browser can play directly.
func (h *Handler) SynthesizeSpeech(c *gin.Context) {
	var req model.TTSRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if !h.TTS.Configured() {
		response.InternalError(c, "text-to-speech is not configured")
		return
	}

	audio, err := h.TTS.Synthesize(c.Request.Context(), req.Text)
	if err != nil {
		h.Logger.Sugar().Errorw("tts synthesis failed", "err", err)
		response.BadGateway(c, "failed to generate speech")
		return
	}

	response.OK(c, model.TTSResponse{AudioData: audioDataURL(audio)})
}

func audioDataURL(audio []byte) string {
	return "data:audio/mpeg;base64," + base64.StdEncoding.EncodeToString(audio)
}

var voiceUpgrader = websocket.Upgrader{
	ReadBufferSize:  4096,
	WriteBufferSize: 4096,
	// Origin is enforced by the CORS layer for the rest of the API;
	// the websocket shares the same trusted-origin assumption.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// VoiceSession runs the voice interview loop over a websocket: each
// inbound frame is a spoken transcript, each outbound frame carries the
// coaching reply plus synthesized audio. A TTS failure degrades to a
// text-only frame rather than dropping the turn.
func (h *Handler) VoiceSession(c *gin.Context) {
	claims := h.GetClaimsFromContext(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	conn, err := voiceUpgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.Logger.Sugar().Warnw("websocket upgrade failed", "err", err)
		return
	}
	defer conn.Close()

	ctx := c.Request.Context()

	var profile *model.Profile
	if p, err := h.Repo.Profile.GetByUserID(ctx, claims.UserID); err == nil {
		profile = &p
	}

	for {
		var req model.VoiceTurnRequest
		if err := conn.ReadJSON(&req); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.Logger.Sugar().Warnw("voice session read failed", "err", err)
			}
			return
		}
		if req.Topic == "" || req.Text == "" {
			_ = conn.WriteJSON(model.VoiceTurnResponse{Error: "topic and text are required"})
			continue
		}

		key := coach.SessionKey{UserID: claims.UserID.String(), Topic: req.Topic}

		state, err := h.Coach.SessionIndex(ctx, key)
		if err != nil {
			h.Logger.Sugar().Errorw("voice session load failed", "err", err)
			_ = conn.WriteJSON(model.VoiceTurnResponse{Error: "internal error"})
			continue
		}

		out, err := h.Coach.HandleTurn(ctx, key, state, coach.TurnInput{
			UserInput: req.Text,
			Profile:   profile,
		})
		if err != nil {
			h.Logger.Sugar().Errorw("voice coaching turn failed", "err", err)
			_ = conn.WriteJSON(model.VoiceTurnResponse{Error: "internal error"})
			continue
		}

		resp := model.VoiceTurnResponse{
			AIResponse:           out.Utterance,
			MoveToNext:           out.Advanced,
			CurrentQuestionIndex: out.Index,
			Completed:            out.Completed,
		}
		if h.TTS.Configured() {
			if audio, err := h.TTS.Synthesize(ctx, out.Utterance); err == nil {
				resp.AudioData = audioDataURL(audio)
			} else {
				h.Logger.Sugar().Warnw("voice tts failed, sending text only", "err", err)
			}
		}

		if err := conn.WriteJSON(resp); err != nil {
			h.Logger.Sugar().Warnw("voice session write failed", "err", err)
			return
		}
	}
}
