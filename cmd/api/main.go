package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/recipevault/recipevault/config"
	"github.com/recipevault/recipevault/internal/database"
	"github.com/recipevault/recipevault/internal/server"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		bootLog := zerolog.New(os.Stderr)
		bootLog.Fatal().Err(err).Msg("failed to load configuration")
	}

	log := newLogger(cfg)

	db, err := database.New(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open database")
	}

	var rdb *redis.Client
	if cfg.RedisEnabled() {
		rdb, err = database.NewRedisClient(cfg)
		if err != nil {
			// The cache is an optimization; the mock works without it.
			log.Warn().Err(err).Msg("redis unavailable, running without recipe cache")
			rdb = nil
		}
	}

	srv := server.NewServer(db, rdb)

	errChan := make(chan error, 1)
	go func() {
		log.Info().Str("addr", cfg.ServerAddr()).Msg("starting REST mock")
		errChan <- srv.Start(cfg.ServerAddr())
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil {
			log.Fatal().Err(err).Msg("server error")
		}
	case sig := <-quit:
		log.Info().Str("signal", sig.String()).Msg("shutting down")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server shutdown error")
	}
	log.Info().Msg("server stopped")
}

func newLogger(cfg *config.Config) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}

	if cfg.LogFormat == "console" {
		return zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: "15:04:05"}).
			With().Timestamp().Logger().Level(level)
	}
	return zerolog.New(os.Stdout).With().Timestamp().Logger().Level(level)
}
