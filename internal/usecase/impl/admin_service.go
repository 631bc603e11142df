package impl

import (
	"context"
	"log/slog"
	"time"

	domainerrors "neofidu/internal/domain/errors"
	"neofidu/internal/domain/entity"
	"neofidu/internal/domain/repository"
	"neofidu/internal/domain/service"
	"neofidu/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type adminService struct {
	txManager       repository.TransactionManager
	submissionRepo  repository.SubmissionRepository
	notificationSvc service.NotificationService
	logger          *slog.Logger

	now func() time.Time
}

// AdminServiceParams holds dependencies for AdminService, injected by Fx.
type AdminServiceParams struct {
	fx.In

	TxManager       repository.TransactionManager
	SubmissionRepo  repository.SubmissionRepository
	NotificationSvc service.NotificationService
	Logger          *slog.Logger
}

// NewAdminService creates the operator-facing service over submitted
// requests.
func NewAdminService(params AdminServiceParams) usecase.AdminUsecase {
	return &adminService{
		txManager:       params.TxManager,
		submissionRepo:  params.SubmissionRepo,
		notificationSvc: params.NotificationSvc,
		logger:          params.Logger,
		now:             time.Now,
	}
}

func (s *adminService) ListRequests(ctx context.Context, filter repository.SubmissionFilter) ([]*entity.SubmissionRecord, error) {
	records, err := s.submissionRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list submissions")
	}

	return records, nil
}

func (s *adminService) GetRequest(ctx context.Context, reference string) (*entity.SubmissionRecord, error) {
	record, err := s.submissionRepo.FindByReference(ctx, reference)
	if err != nil {
		if errors.Is(err, repository.ErrSubmissionNotFound) {
			return nil, domainerrors.ErrSubmissionNotFound
		}

		return nil, errors.Wrap(err, "failed to load submission")
	}

	return record, nil
}

func (s *adminService) GetStatusHistory(ctx context.Context, reference string) ([]*entity.StatusHistoryEntry, error) {
	history, err := s.submissionRepo.ListStatusHistory(ctx, reference)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load status history")
	}

	return history, nil
}

// UpdateRequestStatus applies an operator transition. The oldStatus argument
// is an optimistic concurrency check: if another operator moved the record
// first, the update is rejected instead of silently overwriting.
func (s *adminService) UpdateRequestStatus(ctx context.Context, reference string, newStatus, oldStatus entity.SubmissionStatus, actor string, notify bool) error {
	record, err := s.submissionRepo.FindByReference(ctx, reference)
	if err != nil {
		if errors.Is(err, repository.ErrSubmissionNotFound) {
			return domainerrors.ErrSubmissionNotFound
		}

		return errors.Wrap(err, "failed to load submission for status update")
	}

	if record.Status != oldStatus {
		return domainerrors.ErrStatusConflict.WithDetails(string(record.Status))
	}
	if record.Status.Terminal() {
		return domainerrors.ErrSubmissionImmutable
	}
	if !record.Status.CanTransitionTo(newStatus) {
		return domainerrors.ErrStatusTransitionInvalid.WithDetails(
			string(record.Status) + " -> " + string(newStatus))
	}

	notified := false
	if notify {
		if err := s.notificationSvc.SendStatusChange(ctx, reference, record.Status, newStatus); err != nil {
			s.logger.Warn("status change notification failed",
				slog.String("reference", reference),
				slog.Any("error", err),
			)
		} else {
			notified = true
		}
	}

	err = s.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		repo := f.NewSubmissionRepository()
		if err := repo.UpdateStatus(ctx, reference, newStatus); err != nil {
			return err
		}

		return repo.AppendStatusHistory(ctx, &entity.StatusHistoryEntry{
			ID:        uuid.New(),
			Reference: reference,
			OldStatus: record.Status,
			NewStatus: newStatus,
			ChangedAt: s.now(),
			Actor:     actor,
			Notified:  notified,
		})
	})
	if err != nil {
		return errors.Wrap(err, "failed to apply status update")
	}

	return nil
}
