package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/google/uuid"

	"github.com/heartmarshall/hifz-backend/internal/adapter/gamification"
	"github.com/heartmarshall/hifz-backend/internal/adapter/postgres"
	"github.com/heartmarshall/hifz-backend/internal/adapter/postgres/item"
	"github.com/heartmarshall/hifz-backend/internal/adapter/postgres/reviewlog"
	"github.com/heartmarshall/hifz-backend/internal/config"
	"github.com/heartmarshall/hifz-backend/internal/domain"
	"github.com/heartmarshall/hifz-backend/internal/service/hifz"
	"github.com/heartmarshall/hifz-backend/internal/transport/rest"
)

// rewardBridge matches the collaborator the hifz service expects; app picks
// the HTTP client or the noop depending on configuration.
type rewardBridge interface {
	AwardMemorizationCredit(ctx context.Context, learnerID uuid.UUID) error
	AwardPerfectRecallBonus(ctx context.Context, learnerID uuid.UUID) error
}

// Run is the application entry point. It loads configuration, connects to
// the database, wires the scheduler service and REST transport, and serves
// until SIGINT/SIGTERM, then drains in-flight requests.
func Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	itemRepo := item.New(pool)
	reviewLogRepo := reviewlog.New(pool)
	txManager := postgres.NewTxManager(pool)

	var rewards rewardBridge = gamification.Noop{}
	if cfg.Gamification.BaseURL != "" {
		rewards = gamification.NewClient(cfg.Gamification.BaseURL, cfg.Gamification.Timeout, logger)
	} else {
		logger.Warn("gamification base URL not set, rewards disabled")
	}

	hifzService := hifz.NewService(logger, itemRepo, reviewLogRepo, rewards, txManager, hifz.Config{
		Scheduler: domain.SchedulerConfig{
			DefaultEaseFactor: cfg.Hifz.DefaultEaseFactor,
			MinEaseFactor:     cfg.Hifz.MinEaseFactor,
			MaxEaseFactor:     cfg.Hifz.MaxEaseFactor,
			MaxIntervalDays:   cfg.Hifz.MaxIntervalDays,
		},
		DueLimitDefault: cfg.Hifz.DueLimitDefault,
		DueLimitMax:     cfg.Hifz.DueLimitMax,
		MaxRangeSize:    cfg.Hifz.MaxRangeSize,
	})

	router := rest.NewRouter(
		rest.NewHifzHandler(hifzService, logger),
		rest.NewHealthHandler(pool, BuildVersion()),
		logger,
	)

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	logger.Info("shutdown complete")
	return nil
}
