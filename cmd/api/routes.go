package main

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func (app *application) routes() http.Handler {
	if !app.Config.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())

	// simple logger middleware that uses zap
	r.Use(func(c *gin.Context) {
		start := time.Now()
		c.Next()
		app.Logger.Sugar().Infow("http", "method", c.Request.Method, "path", c.Request.URL.Path, "status", c.Writer.Status(), "duration", time.Since(start))
	})

	r.Use(cors.New(cors.Config{
		AllowOrigins:     app.Config.GetCORSOrigins(),
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	if app.Config.Limiter.Enabled {
		r.Use(app.RateLimitMiddleware())
	}

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := r.Group("/api/v1")
	{
		v1.POST("/signup", app.Handler.SignUp)
		v1.POST("/login", app.Handler.Login)

		// billing events arrive with their own auth token
		v1.POST("/webhooks/revenuecat", app.Handler.RevenueCatWebhook)
	}

	protected := v1.Group("/")
	protected.Use(app.AuthMiddleware())
	{
		protected.GET("/me", app.Handler.Me)

		// interview routes
		protected.POST("/interview/chat", app.Handler.Chat)
		protected.GET("/interview/voice/ws", app.Handler.VoiceSession)

		// media routes
		protected.POST("/voice/tts", app.Handler.SynthesizeSpeech)
		protected.POST("/avatar/video", app.Handler.GenerateAvatarVideo)

		// profile and subscription routes
		protected.GET("/profile", app.Handler.GetProfile)
		protected.PATCH("/profile", app.Handler.PatchProfile)
		protected.GET("/subscription/status", app.Handler.SubscriptionStatus)
		protected.POST("/subscription/minutes", app.Handler.UpdateMinutesUsed)

		// question set routes
		protected.GET("/questionsets/:topic", app.Handler.GetQuestionSet)
		protected.PUT("/questionsets/:topic", app.Handler.PutQuestionSet)
		protected.POST("/questionsets/import", app.Handler.ImportQuestionSet)
	}

	return r
}
