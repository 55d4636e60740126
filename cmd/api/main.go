package main

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/joho/godotenv/autoload"
	"github.com/rittik987/alex.ai/internal/auth"
	"github.com/rittik987/alex.ai/internal/cache"
	"github.com/rittik987/alex.ai/internal/coach"
	"github.com/rittik987/alex.ai/internal/config"
	"github.com/rittik987/alex.ai/internal/database"
	"github.com/rittik987/alex.ai/internal/elevenlabs"
	"github.com/rittik987/alex.ai/internal/gemini"
	"github.com/rittik987/alex.ai/internal/handler"
	"github.com/rittik987/alex.ai/internal/logger"
	"github.com/rittik987/alex.ai/internal/repository"
	"github.com/rittik987/alex.ai/internal/tavus"
	"go.uber.org/zap"
)

type application struct {
	DB         *pgxpool.Pool
	Logger     *zap.Logger
	Config     *config.Config
	Repository *repository.Repository
	Coach      *coach.Controller
	Handler    *handler.Handler
}

func main() {
	ctx := context.Background()
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log, _ := logger.NewLogger(cfg.Env)
	defer log.Sync()
	sugar := log.Sugar()
	sugar.Infof("config loaded, env=%s", cfg.Env)

	pool, err := database.Connect(ctx, cfg.DB)
	if err != nil {
		sugar.Fatal(err)
	}
	defer pool.Close()

	repo := repository.NewRepository(pool)

	// Sessions live in Redis when an address is configured, otherwise
	// in process memory. Memory is fine for a single instance.
	var store coach.SessionStore
	if cfg.Redis.Addr != "" {
		rdb := cache.NewRedisClient(cfg.Redis)
		if err := cache.Ping(ctx, rdb); err != nil {
			sugar.Fatalf("redis ping failed: %v", err)
		}
		defer rdb.Close()
		store = coach.NewRedisStore(rdb, cfg.Session.TTL)
		sugar.Infow("session store", "backend", "redis", "addr", cfg.Redis.Addr)
	} else {
		store = coach.NewMemoryStore()
		sugar.Infow("session store", "backend", "memory")
	}

	oracle := gemini.NewClient(cfg.Gemini.APIKey, cfg.Gemini.Model)
	bank := coach.NewBank(&repo.QuestionSet, log)
	gen := coach.NewGenerator(oracle, cfg.Gemini.Timeout, log)
	controller := coach.NewController(bank, gen, store, cfg.Session.HistoryTrim, log)

	handlerApp := &handler.Handler{
		Logger:           log,
		Repo:             repo,
		TokenMaker:       auth.NewJWTMaker(cfg.JWT.Secret),
		AccessTokenTTL:   cfg.JWT.AccessTokenTTL,
		Coach:            controller,
		TTS:              elevenlabs.NewClient(cfg.ElevenLabs.APIKey, cfg.ElevenLabs.VoiceID),
		Avatar:           tavus.NewClient(cfg.Tavus.APIKey, cfg.Tavus.ReplicaID),
		WebhookAuthToken: cfg.RevenueCat.WebhookAuthToken,
	}

	app := &application{
		DB:         pool,
		Logger:     log,
		Config:     cfg,
		Repository: repo,
		Coach:      controller,
		Handler:    handlerApp,
	}

	if err := app.serve(); err != nil {
		sugar.Fatal(err)
	}
}
