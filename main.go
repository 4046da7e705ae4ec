package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/mylikerahul/chatbot-engine/api"
	"github.com/mylikerahul/chatbot-engine/chat"
	"github.com/mylikerahul/chatbot-engine/config"
	"github.com/mylikerahul/chatbot-engine/embeddings"
	"github.com/mylikerahul/chatbot-engine/intent"
	"github.com/mylikerahul/chatbot-engine/llm"
)

const (
	classifierInitTimeout = 2 * time.Minute
	shutdownTimeout       = 10 * time.Second
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to YAML config file")
	flag.Parse()

	// Optional .env for local development; missing file is fine.
	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid config: %v\n", err)
		os.Exit(1)
	}

	logger := newLogger(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	embedder, err := embeddings.NewEmbedder(cfg)
	if err != nil {
		logger.Warn().Err(err).Msg("embedder unavailable, semantic intent tier disabled")
		embedder = nil
	}

	initCtx, cancel := context.WithTimeout(ctx, classifierInitTimeout)
	classifier := intent.New(initCtx, embedder, logger)
	cancel()

	primary, err := llm.NewClient(cfg, cfg.LLM.Provider, cfg.LLM.Model)
	if err != nil {
		logger.Warn().Err(err).Str("provider", cfg.LLM.Provider).Msg("primary llm unavailable")
	}
	fallback, err := llm.NewClient(cfg, cfg.LLM.FallbackProvider, cfg.LLM.FallbackModel)
	if err != nil {
		logger.Warn().Err(err).Str("provider", cfg.LLM.FallbackProvider).Msg("fallback llm unavailable")
	}
	if primary == nil && fallback == nil {
		logger.Warn().Msg("no llm configured, responses limited to rule-based fallbacks")
	}

	svc := chat.NewService(classifier, primary, fallback, logger)
	server := api.New(svc, cfg.DefaultLanguage, logger)

	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           server,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", addr).Msg("http server listening")
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		logger.Info().Msg("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("shutdown failed")
			os.Exit(1)
		}
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}
}

func newLogger(cfg config.Config) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}

	var logger zerolog.Logger
	if cfg.LogFormat == "console" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	} else {
		logger = zerolog.New(os.Stdout)
	}

	return logger.Level(level).With().
		Timestamp().
		Str("service", "chatbot-engine").
		Logger()
}
