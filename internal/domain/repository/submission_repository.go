package repository

import (
	"context"
	"time"

	"neofidu/internal/domain/entity"
	"neofidu/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for submission persistence.
var (
	// ErrSubmissionNotFound is returned when no submission matches.
	ErrSubmissionNotFound = errors.New("submission not found")
	// ErrDuplicateSubmission is returned when a second record would be
	// created for the same draft.
	ErrDuplicateSubmission = errors.New("submission already exists for draft")
)

// SubmissionFilter narrows admin listings.
type SubmissionFilter struct {
	Statuses []entity.SubmissionStatus
	Canton   string
	Limit    int
	Offset   int
}

// SubmissionRepository defines the persistence boundary for submitted
// requests and their append-only status history.
type SubmissionRepository interface {
	// Create persists a new submission record. Creation is
	// idempotent-by-draft: replaying a create for a draft that already has
	// a record returns ErrDuplicateSubmission so the caller can fall back
	// to FindByDraftID instead of duplicating.
	Create(ctx context.Context, record *entity.SubmissionRecord) error

	// FindByReference retrieves a submission by its unique reference.
	FindByReference(ctx context.Context, reference string) (*entity.SubmissionRecord, error)

	// FindByDraftID retrieves the submission created for a local draft.
	FindByDraftID(ctx context.Context, draftID uuid.UUID) (*entity.SubmissionRecord, error)

	// UpdateStatus moves the submission to a new status. Implementations
	// must refuse to mutate a Completed record.
	UpdateStatus(ctx context.Context, reference string, status entity.SubmissionStatus) error

	// SetTransaction records the opaque payment transaction id.
	SetTransaction(ctx context.Context, reference, transactionID string) error

	// RecordUploadOutcome stores the per-file result of the post-payment
	// document upload batch.
	RecordUploadOutcome(ctx context.Context, reference string, attached []entity.AttachedDocument, failed []string, manualFollowUp bool) error

	// List returns submissions matching the filter, newest first.
	List(ctx context.Context, filter SubmissionFilter) ([]*entity.SubmissionRecord, error)

	// ListStuck returns submissions sitting in one of the given statuses
	// since before the cutoff, for finalization recovery.
	ListStuck(ctx context.Context, statuses []entity.SubmissionStatus, cutoff time.Time) ([]*entity.SubmissionRecord, error)

	// AppendStatusHistory appends one audit line. The history is
	// append-only: no update or delete operation exists.
	AppendStatusHistory(ctx context.Context, entry *entity.StatusHistoryEntry) error

	// ListStatusHistory returns the audit trail oldest first.
	ListStatusHistory(ctx context.Context, reference string) ([]*entity.StatusHistoryEntry, error)
}
