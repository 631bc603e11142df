package worker

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"neofidu/config"
	"neofidu/internal/domain/entity"
	mockRepo "neofidu/internal/mocks/repository"
	mockUsecase "neofidu/internal/mocks/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/mock"
)

type finalizerFixtures struct {
	submissionRepo *mockRepo.MockSubmissionRepository
	submissions    *mockUsecase.MockSubmissionUsecase
	admin          *mockUsecase.MockAdminUsecase
	sweeper        *finalizer
	now            time.Time
}

func createTestFinalizer(t *testing.T) *finalizerFixtures {
	t.Helper()

	fx := &finalizerFixtures{
		submissionRepo: mockRepo.NewMockSubmissionRepository(t),
		submissions:    mockUsecase.NewMockSubmissionUsecase(t),
		admin:          mockUsecase.NewMockAdminUsecase(t),
		now:            time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC),
	}

	fx.sweeper = &finalizer{
		cfg: &config.FinalizerConfig{
			Interval:   time.Minute,
			RetryAfter: 5 * time.Minute,
			FailAfter:  48 * time.Hour,
		},
		submissionRepo: fx.submissionRepo,
		submissions:    fx.submissions,
		admin:          fx.admin,
		logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:            func() time.Time { return fx.now },
	}

	return fx
}

func stuckRecord(reference string, status entity.SubmissionStatus, age time.Duration, now time.Time) *entity.SubmissionRecord {
	return &entity.SubmissionRecord{
		Reference: reference,
		Status:    status,
		UpdatedAt: now.Add(-age),
	}
}

func TestFinalizer_Sweep_RetriesStuckSubmissions(t *testing.T) {
	fx := createTestFinalizer(t)
	ctx := context.Background()

	records := []*entity.SubmissionRecord{
		stuckRecord("NF-2026-AAAA1111", entity.StatusPaid, 10*time.Minute, fx.now),
		stuckRecord("NF-2026-BBBB2222", entity.StatusFinalizing, time.Hour, fx.now),
	}

	fx.submissionRepo.EXPECT().
		ListStuck(ctx, sweptStatuses, fx.now.Add(-5*time.Minute)).
		Return(records, nil).Once()
	fx.submissions.EXPECT().Finalize(ctx, "NF-2026-AAAA1111").Return(nil).Once()
	fx.submissions.EXPECT().Finalize(ctx, "NF-2026-BBBB2222").Return(nil).Once()

	fx.sweeper.sweep(ctx)
}

func TestFinalizer_Sweep_OneFailureDoesNotBlockTheBatch(t *testing.T) {
	fx := createTestFinalizer(t)
	ctx := context.Background()

	records := []*entity.SubmissionRecord{
		stuckRecord("NF-2026-AAAA1111", entity.StatusFinalizing, 20*time.Minute, fx.now),
		stuckRecord("NF-2026-BBBB2222", entity.StatusPaid, 30*time.Minute, fx.now),
	}

	fx.submissionRepo.EXPECT().
		ListStuck(ctx, sweptStatuses, mock.Anything).
		Return(records, nil).Once()
	fx.submissions.EXPECT().
		Finalize(ctx, "NF-2026-AAAA1111").
		Return(errors.New("summary dispatch unavailable")).Once()
	fx.submissions.EXPECT().Finalize(ctx, "NF-2026-BBBB2222").Return(nil).Once()

	fx.sweeper.sweep(ctx)
}

func TestFinalizer_Sweep_AbandonsPastFailCutoff(t *testing.T) {
	fx := createTestFinalizer(t)
	ctx := context.Background()

	records := []*entity.SubmissionRecord{
		stuckRecord("NF-2026-AAAA1111", entity.StatusFinalizing, 72*time.Hour, fx.now),
	}

	fx.submissionRepo.EXPECT().
		ListStuck(ctx, sweptStatuses, mock.Anything).
		Return(records, nil).Once()
	fx.admin.EXPECT().
		UpdateRequestStatus(ctx, "NF-2026-AAAA1111", entity.StatusFailed, entity.StatusFinalizing, actorSweeper, true).
		Return(nil).Once()

	fx.sweeper.sweep(ctx)

	fx.submissions.AssertNotCalled(t, "Finalize", mock.Anything, mock.Anything)
}

func TestFinalizer_Sweep_ListFailureIsNonFatal(t *testing.T) {
	fx := createTestFinalizer(t)
	ctx := context.Background()

	fx.submissionRepo.EXPECT().
		ListStuck(ctx, sweptStatuses, mock.Anything).
		Return(nil, errors.New("connection refused")).Once()

	fx.sweeper.sweep(ctx)

	fx.submissions.AssertNotCalled(t, "Finalize", mock.Anything, mock.Anything)
	fx.admin.AssertNotCalled(t, "UpdateRequestStatus",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
