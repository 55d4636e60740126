package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all application configuration
type Config struct {
	Env        string `envconfig:"APP_ENV" default:"development"`
	Port       int    `envconfig:"APP_PORT" default:"8080"`
	DB         DBConfig
	Redis      RedisConfig
	Limiter    RateLimiterConfig
	CORS       CORSConfig
	JWT        JWTConfig
	Session    SessionConfig
	Gemini     GeminiConfig
	ElevenLabs ElevenLabsConfig
	Tavus      TavusConfig
	RevenueCat RevenueCatConfig
}

// database configuration
type DBConfig struct {
	DSN          string        `envconfig:"DATABASE_URL" required:"true"`
	MaxOpenConns int           `envconfig:"DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleTime  time.Duration `envconfig:"DB_MAX_IDLE_TIME" default:"15m"`
}

// redis configuration (coaching session store)
type RedisConfig struct {
	Addr     string `envconfig:"REDIS_ADDR" default:""`
	Password string `envconfig:"REDIS_PASSWORD" default:""`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

// rate limiting configuration
type RateLimiterConfig struct {
	RPS     float64 `envconfig:"RATE_LIMIT_RPS" default:"10"`
	Burst   int     `envconfig:"RATE_LIMIT_BURST" default:"20"`
	Enabled bool    `envconfig:"RATE_LIMIT_ENABLED" default:"true"`
}

// CORS configuration
type CORSConfig struct {
	TrustedOrigins []string `envconfig:"CORS_TRUSTED_ORIGINS" default:"http://localhost:3000,http://localhost:5173"`
}

// JWT configuration
type JWTConfig struct {
	Secret         string        `envconfig:"JWT_SECRET" required:"true"`
	AccessTokenTTL time.Duration `envconfig:"JWT_ACCESS_TOKEN_TTL" default:"60m"`
}

// session store configuration
type SessionConfig struct {
	TTL         time.Duration `envconfig:"SESSION_TTL" default:"2h"`
	HistoryTrim int           `envconfig:"SESSION_HISTORY_TRIM" default:"20"`
}

// Gemini (coaching oracle) configuration
type GeminiConfig struct {
	APIKey  string        `envconfig:"GEMINI_API_KEY" required:"true"`
	Model   string        `envconfig:"GEMINI_MODEL" default:"gemini-2.0-flash"`
	Timeout time.Duration `envconfig:"GEMINI_TIMEOUT" default:"30s"`
}

// ElevenLabs text-to-speech configuration
type ElevenLabsConfig struct {
	APIKey  string        `envconfig:"ELEVENLABS_API_KEY" default:""`
	VoiceID string        `envconfig:"ELEVENLABS_VOICE_ID" default:""`
	Timeout time.Duration `envconfig:"ELEVENLABS_TIMEOUT" default:"30s"`
}

// Tavus avatar video configuration
type TavusConfig struct {
	APIKey    string        `envconfig:"TAVUS_API_KEY" default:""`
	ReplicaID string        `envconfig:"TAVUS_REPLICA_ID" default:""`
	Timeout   time.Duration `envconfig:"TAVUS_TIMEOUT" default:"60s"`
}

// RevenueCat billing configuration
type RevenueCatConfig struct {
	WebhookAuthToken string `envconfig:"REVENUECAT_WEBHOOK_AUTH_TOKEN" default:""`
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	validEnvs := map[string]bool{
		"development": true,
		"staging":     true,
		"production":  true,
		"test":        true,
	}
	if !validEnvs[c.Env] {
		return fmt.Errorf("invalid environment: %s (must be one of: development, staging, production, test)", c.Env)
	}
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d (must be between 1 and 65535)", c.Port)
	}
	if c.DB.MaxOpenConns < 1 {
		return fmt.Errorf("DB_MAX_OPEN_CONNS must be at least 1")
	}
	if c.Limiter.RPS < 0 {
		return fmt.Errorf("RATE_LIMIT_RPS must be non-negative")
	}
	if c.Limiter.Burst < 1 {
		return fmt.Errorf("RATE_LIMIT_BURST must be at least 1")
	}
	if len(c.JWT.Secret) < 32 {
		return fmt.Errorf("JWT_SECRET must be at least 32 characters")
	}
	if c.Session.HistoryTrim < 1 {
		return fmt.Errorf("SESSION_HISTORY_TRIM must be at least 1")
	}
	if c.Gemini.Timeout <= 0 {
		return fmt.Errorf("GEMINI_TIMEOUT must be positive")
	}
	if len(c.CORS.TrustedOrigins) == 0 {
		return fmt.Errorf("at least one trusted origin must be specified")
	}

	return nil
}

func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// GetCORSOrigins returns the list of trusted CORS origins
func (c *Config) GetCORSOrigins() []string {
	origins := make([]string, 0, len(c.CORS.TrustedOrigins))
	for _, origin := range c.CORS.TrustedOrigins {
		trimmed := strings.TrimSpace(origin)
		if trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
