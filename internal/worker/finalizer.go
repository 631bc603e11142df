// Package worker contains the background sweeper that re-drives paid
// submissions whose finalization was interrupted by a crash or restart.
package worker

import (
	"context"
	"log/slog"
	"time"

	"neofidu/config"
	"neofidu/internal/delivery"
	"neofidu/internal/domain/entity"
	"neofidu/internal/domain/repository"
	"neofidu/internal/usecase"

	"go.uber.org/fx"
)

const actorSweeper = "system"

// sweptStatuses are the non-terminal post-payment states a submission can
// get stuck in. Saved and AwaitingPayment are excluded: before payment the
// client owns the retry, not the server.
var sweptStatuses = []entity.SubmissionStatus{
	entity.StatusPaid,
	entity.StatusFinalizing,
}

type finalizer struct {
	cfg            *config.FinalizerConfig
	submissionRepo repository.SubmissionRepository
	submissions    usecase.SubmissionUsecase
	admin          usecase.AdminUsecase
	logger         *slog.Logger
	now            func() time.Time
}

// FinalizerParams holds dependencies for the finalizer, injected by Fx.
type FinalizerParams struct {
	fx.In

	Config         *config.Config
	SubmissionRepo repository.SubmissionRepository
	Submissions    usecase.SubmissionUsecase
	Admin          usecase.AdminUsecase
	Logger         *slog.Logger
}

// NewFinalizer creates the stuck-submission sweeper.
func NewFinalizer(params FinalizerParams) delivery.Delivery {
	return &finalizer{
		cfg:            params.Config.Finalizer,
		submissionRepo: params.SubmissionRepo,
		submissions:    params.Submissions,
		admin:          params.Admin,
		logger:         params.Logger,
		now:            time.Now,
	}
}

// Serve sweeps on the configured interval until the context is cancelled.
// The first sweep runs immediately so restarts recover without waiting a
// full interval.
func (f *finalizer) Serve(ctx context.Context) error {
	f.logger.Info("Starting finalizer sweeper",
		slog.Duration("interval", f.cfg.Interval),
		slog.Duration("retry_after", f.cfg.RetryAfter),
	)

	f.sweep(ctx)

	ticker := time.NewTicker(f.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			f.logger.Info("Finalizer sweeper stopped")

			return nil
		case <-ticker.C:
			f.sweep(ctx)
		}
	}
}

// sweep finalizes every submission sitting past the retry cutoff. One
// failing submission never blocks the rest of the batch.
func (f *finalizer) sweep(ctx context.Context) {
	now := f.now()
	cutoff := now.Add(-f.cfg.RetryAfter)

	stuck, err := f.submissionRepo.ListStuck(ctx, sweptStatuses, cutoff)
	if err != nil {
		f.logger.Error("finalizer sweep failed to list submissions", slog.Any("error", err))

		return
	}

	for _, record := range stuck {
		if now.Sub(record.UpdatedAt) > f.cfg.FailAfter {
			f.abandon(ctx, record)

			continue
		}

		if err := f.submissions.Finalize(ctx, record.Reference); err != nil {
			f.logger.Warn("finalization retry failed",
				slog.String("reference", record.Reference),
				slog.Any("error", err),
			)

			continue
		}

		f.logger.Info("stuck submission finalized", slog.String("reference", record.Reference))
	}
}

// abandon gives up on a submission that has been stuck past the fail
// cutoff and marks it for manual handling. The payment is kept; an operator
// resolves the case from the admin surface.
func (f *finalizer) abandon(ctx context.Context, record *entity.SubmissionRecord) {
	err := f.admin.UpdateRequestStatus(ctx, record.Reference, entity.StatusFailed, record.Status, actorSweeper, true)
	if err != nil {
		f.logger.Error("failed to mark abandoned submission",
			slog.String("reference", record.Reference),
			slog.Any("error", err),
		)

		return
	}

	f.logger.Warn("submission abandoned after fail cutoff",
		slog.String("reference", record.Reference),
		slog.String("status", string(record.Status)),
	)
}
