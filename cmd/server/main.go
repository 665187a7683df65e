package main

import (
	"eyetrends-pos/internal/auth"
	"eyetrends-pos/internal/config"
	"eyetrends-pos/internal/database"
	"eyetrends-pos/internal/handlers"
	"eyetrends-pos/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	logger.Init("eyetrends-pos", cfg.Dev)
	auth.Init(cfg.JWTSecret)

	if !cfg.Dev {
		gin.SetMode(gin.ReleaseMode)
	}

	store, err := database.Connect(cfg.DSN)
	if err != nil {
		log.Fatal().Err(err).Msg("record store connection failed")
	}

	r := handlers.NewRouter(store, cfg.GeminiAPIKey, cfg.AllowedOrigins)

	log.Info().Str("addr", cfg.ListenAddr).Msg("server starting")
	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatal().Err(err).Msg("server failed to start")
	}
}
