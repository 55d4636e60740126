package main

import (
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rittik987/alex.ai/internal/auth"
	"github.com/rittik987/alex.ai/pkg/response"
	"golang.org/x/time/rate"
)

func (app *application) AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := verifyClaimsFromRequest(c, app.Handler.TokenMaker)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}

		// Check if user still exists
		_, err = app.Repository.User.GetByID(c.Request.Context(), claims.UserID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized access"})
			return
		}

		c.Set("claims", claims)
		c.Next()
	}
}

func verifyClaimsFromRequest(c *gin.Context, tokenMaker *auth.JWTMaker) (*auth.Claims, error) {
	token := ""

	authHeader := c.GetHeader("Authorization")
	if authHeader != "" {
		fields := strings.Fields(authHeader)
		if len(fields) != 2 || fields[0] != "Bearer" {
			return nil, fmt.Errorf("invalid authorization header")
		}
		token = fields[1]
	} else {
		// browsers cannot set headers on websocket upgrades, so the
		// voice route passes the token as a query parameter
		token = c.Query("access_token")
	}

	if token == "" {
		return nil, fmt.Errorf("authorization header is missing")
	}

	claims, err := tokenMaker.VerifyToken(token)
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	return claims, nil
}

// RateLimitMiddleware keeps a token bucket per client IP. Stale
// clients are swept every few minutes so the map cannot grow without
// bound.
func (app *application) RateLimitMiddleware() gin.HandlerFunc {
	type client struct {
		limiter  *rate.Limiter
		lastSeen time.Time
	}

	var (
		mu      sync.Mutex
		clients = make(map[string]*client)
	)

	go func() {
		for {
			time.Sleep(time.Minute)
			mu.Lock()
			for ip, cl := range clients {
				if time.Since(cl.lastSeen) > 3*time.Minute {
					delete(clients, ip)
				}
			}
			mu.Unlock()
		}
	}()

	return func(c *gin.Context) {
		ip := c.ClientIP()

		mu.Lock()
		cl, ok := clients[ip]
		if !ok {
			cl = &client{limiter: rate.NewLimiter(rate.Limit(app.Config.Limiter.RPS), app.Config.Limiter.Burst)}
			clients[ip] = cl
		}
		cl.lastSeen = time.Now()
		allowed := cl.limiter.Allow()
		mu.Unlock()

		if !allowed {
			response.TooManyRequests(c, "")
			c.Abort()
			return
		}

		c.Next()
	}
}
