package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newTestRouter(h *Handler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/chat", h.Chat)
	r.POST("/webhook", h.RevenueCatWebhook)
	return r
}

func TestChatRejectsMalformedBody(t *testing.T) {
	h := &Handler{Logger: zap.NewNop()}
	r := newTestRouter(h)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader("{not json"))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestChatRequiresAuth(t *testing.T) {
	// No auth middleware ran, so no claims are in the context.
	h := &Handler{Logger: zap.NewNop()}
	r := newTestRouter(h)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(`{"topic":"problem-solving-dsa"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestWebhookRejectsBadToken(t *testing.T) {
	h := &Handler{Logger: zap.NewNop(), WebhookAuthToken: "expected-token"}
	r := newTestRouter(h)

	for _, header := range []string{"", "Bearer wrong-token", "expected-token"} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/webhook", strings.NewReader(`{}`))
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code, "header: %q", header)
	}
}

func TestWebhookRejectsAllWhenUnconfigured(t *testing.T) {
	// An empty configured token means the webhook is effectively off.
	h := &Handler{Logger: zap.NewNop()}
	r := newTestRouter(h)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/webhook", strings.NewReader(`{}`))
	req.Header.Set("Authorization", "Bearer ")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAudioDataURL(t *testing.T) {
	got := audioDataURL([]byte("abc"))
	assert.Equal(t, "data:audio/mpeg;base64,YWJj", got)
}
