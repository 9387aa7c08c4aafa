// Package worker hosts background maintenance loops.
package worker

import (
	"context"
	"log/slog"
	"time"

	"keystone/config"
	"keystone/internal/domain/repository"

	"go.uber.org/fx"
)

const defaultCleanupInterval = 1 * time.Hour

// CleanupWorker periodically removes expired sessions and verification
// tokens. Expiry checks at read time keep correctness; the sweep only keeps
// the tables from growing without bound.
type CleanupWorker struct {
	sessionRepo      repository.AuthSessionRepository
	verificationRepo repository.VerificationTokenRepository
	interval         time.Duration
	logger           *slog.Logger

	cancel context.CancelFunc
	done   chan struct{}
}

// CleanupWorkerParams holds dependencies for CleanupWorker, injected by Fx.
type CleanupWorkerParams struct {
	fx.In
	fx.Lifecycle

	SessionRepo      repository.AuthSessionRepository
	VerificationRepo repository.VerificationTokenRepository
	Config           *config.Config
	Logger           *slog.Logger
}

// NewCleanupWorker is the constructor for CleanupWorker. It registers
// lifecycle hooks so the sweep loop starts and stops with the application.
func NewCleanupWorker(params CleanupWorkerParams) *CleanupWorker {
	interval := defaultCleanupInterval
	if params.Config != nil && params.Config.Cleanup != nil && params.Config.Cleanup.Interval > 0 {
		interval = params.Config.Cleanup.Interval
	}

	worker := &CleanupWorker{
		sessionRepo:      params.SessionRepo,
		verificationRepo: params.VerificationRepo,
		interval:         interval,
		logger:           params.Logger,
	}

	params.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			worker.Start()

			return nil
		},
		OnStop: func(ctx context.Context) error {
			return worker.Stop(ctx)
		},
	})

	return worker
}

// Start launches the sweep loop in a background goroutine.
func (w *CleanupWorker) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	w.cancel = cancel
	w.done = make(chan struct{})

	w.logger.Info("Cleanup worker started", slog.Duration("interval", w.interval))

	go w.run(ctx)
}

// Stop cancels the loop and waits for the current sweep to finish.
func (w *CleanupWorker) Stop(ctx context.Context) error {
	if w.cancel == nil {
		return nil
	}
	w.cancel()

	select {
	case <-w.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (w *CleanupWorker) run(ctx context.Context) {
	defer close(w.done)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.Sweep(ctx)
		}
	}
}

// Sweep removes expired sessions and verification tokens once. Errors are
// logged and the next tick retries; a failed sweep never stops the loop.
func (w *CleanupWorker) Sweep(ctx context.Context) {
	sessions, err := w.sessionRepo.DeleteExpired(ctx)
	if err != nil {
		w.logger.Error("Failed to delete expired sessions", slog.Any("error", err))
	}

	tokens, err := w.verificationRepo.DeleteExpired(ctx)
	if err != nil {
		w.logger.Error("Failed to delete expired verification tokens", slog.Any("error", err))
	}

	if sessions > 0 || tokens > 0 {
		w.logger.Info("Expired records removed",
			slog.Int("sessions", sessions),
			slog.Int("verification_tokens", tokens),
		)
	}
}
