// Package app wires configuration, storage, usecases and the HTTP
// surface into a running server.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/agrimind/agrichat/config"
	"github.com/agrimind/agrichat/internal/api"
	"github.com/agrimind/agrichat/internal/feedback"
	"github.com/agrimind/agrichat/internal/knowledge"
	in_memory "github.com/agrimind/agrichat/internal/storage/in-memory"
	key_value "github.com/agrimind/agrichat/internal/storage/key-value"
	"github.com/agrimind/agrichat/internal/usecase"
	"github.com/redis/go-redis/v9"
)

func Run(cfg *config.Config, logger *slog.Logger) error {
	storage, err := newConversationStorage(cfg, logger)
	if err != nil {
		return err
	}

	memoryUsecase := usecase.NewConversationUsecase(storage, logger)
	openAIUsecase := usecase.NewOpenAIUsecase(cfg.OpenAI, logger)

	chatUsecase := usecase.NewChatUsecase(
		usecase.ChatUsecaseDeps{
			Memory:    memoryUsecase,
			OpenAI:    openAIUsecase,
			Knowledge: knowledge.NewBase(time.Now().UnixNano()),
		},
		cfg.Chat, cfg.Memory, cfg.OpenAI, logger,
	)

	feedbackLogger, err := feedback.NewLogger(cfg.Feedback.Path, cfg.Feedback.QueueSize, logger)
	if err != nil {
		return fmt.Errorf("failed to create feedback logger: %w", err)
	}
	defer func() {
		if closeErr := feedbackLogger.Close(); closeErr != nil {
			logger.Error("failed to close feedback logger", "error", closeErr)
		}
	}()

	handler := api.NewHandler(chatUsecase, memoryUsecase, feedbackLogger, logger)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      api.NewRouter(handler, logger),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 90 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}
	return nil
}

// newConversationStorage picks the redis-backed store when an endpoint
// is configured, otherwise the in-memory one.
func newConversationStorage(cfg *config.Config, logger *slog.Logger) (usecase.ConversationStorage, error) {
	if cfg.Memory.RedisEndpoint == "" {
		logger.Info("using in-memory conversation storage")
		return in_memory.NewConversationStorage(cfg.Memory.MaxTurns), nil
	}

	rdb := redis.NewClient(
		&redis.Options{
			Addr: cfg.Memory.RedisEndpoint,
		},
	)
	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.Memory.RedisEndpoint, err)
	}
	logger.Info("using redis conversation storage", "endpoint", cfg.Memory.RedisEndpoint)
	return key_value.NewConversationStorage(rdb, cfg.Memory.MaxTurns), nil
}
