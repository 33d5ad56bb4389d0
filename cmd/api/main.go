package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"carmarket-backend/internal/config"
	"carmarket-backend/internal/interfaces/router"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var (
	app  *router.App
	port string
)

func init() {
	cfg, err := config.Load()
	if err != nil {
		panic("config load: " + err.Error())
	}
	setupLogger(cfg)
	app, err = router.CreateApp(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("App create failed")
	}
	port = cfg.Port
}

func setupLogger(cfg *config.Config) {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil || cfg.LogLevel == "" {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	zerolog.TimeFieldFormat = time.RFC3339
	if cfg.Env != "production" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	}
}

func Handler(w http.ResponseWriter, r *http.Request) {
	router.Handler(app.Fiber).ServeHTTP(w, r)
}

func main() {
	ctx := context.Background()
	if err := app.DB.WithContext(ctx).Exec("SELECT 1").Error; err != nil {
		log.Fatal().Err(err).Msg("Database connection failed")
	}
	log.Info().Msg("Database connected")
	if app.Rdb != nil {
		if err := app.Rdb.Ping(ctx).Err(); err != nil {
			log.Fatal().Err(err).Msg("Redis connection failed")
		}
		log.Info().Msg("Redis connected")
	}

	go func() {
		log.Info().Str("port", port).Msgf("Server running at http://localhost:%s (health: /health/json)", port)
		if err := app.Fiber.Listen(":" + port); err != nil {
			log.Fatal().Err(err).Msg("Server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()
	if err := app.Fiber.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP shutdown failed")
	}
	if err := app.Close(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Resource cleanup failed")
	}
}
