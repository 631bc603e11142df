package usecase

import (
	"context"

	"neofidu/internal/domain/entity"
	"neofidu/internal/domain/repository"
)

// AdminUsecase is the read/filter/status-update surface over submitted
// requests and their history. It is the only inbound mutation API besides
// the intake flow itself.
type AdminUsecase interface {
	// ListRequests returns submissions matching the filter, newest first.
	ListRequests(ctx context.Context, filter repository.SubmissionFilter) ([]*entity.SubmissionRecord, error)

	// GetRequest returns one submission by reference.
	GetRequest(ctx context.Context, reference string) (*entity.SubmissionRecord, error)

	// GetStatusHistory returns the append-only audit trail.
	GetStatusHistory(ctx context.Context, reference string) ([]*entity.StatusHistoryEntry, error)

	// UpdateRequestStatus applies an operator transition with an
	// optimistic old-status check, appends history and optionally
	// dispatches a status-change notification.
	UpdateRequestStatus(ctx context.Context, reference string, newStatus, oldStatus entity.SubmissionStatus, actor string, notify bool) error
}
