// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"encoding/json"
	"time"

	"neofidu/internal/domain/entity"
	domainerrors "neofidu/internal/domain/errors"
	"neofidu/internal/domain/repository"
	"neofidu/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// submissionRepository implements the repository.SubmissionRepository interface.
type submissionRepository struct {
	db *gorm.DB
}

// NewSubmissionRepository is the constructor for submissionRepository.
func NewSubmissionRepository(db *gorm.DB) repository.SubmissionRepository {
	return &submissionRepository{
		db: db,
	}
}

// Create persists a new submission record. The unique index on draft_id
// makes creation idempotent-by-draft at the schema level.
func (repo *submissionRepository) Create(ctx context.Context, record *entity.SubmissionRecord) error {
	submissionM, err := fromSubmissionDomain(record)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Create(submissionM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateSubmission
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrPersistenceFailed.WrapMessage("missing required submission information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create submission")
	}

	record.CreatedAt = submissionM.CreatedAt
	record.UpdatedAt = submissionM.UpdatedAt

	return nil
}

// FindByReference retrieves a submission by its unique reference.
func (repo *submissionRepository) FindByReference(ctx context.Context, reference string) (*entity.SubmissionRecord, error) {
	var submissionM model.SubmissionModel

	if err := repo.db.WithContext(ctx).
		Where("reference = ?", reference).
		First(&submissionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSubmissionNotFound
		}

		return nil, errors.Wrap(err, "failed to find submission by reference")
	}

	return toSubmissionDomain(&submissionM)
}

// FindByDraftID retrieves the submission created for a local draft.
func (repo *submissionRepository) FindByDraftID(ctx context.Context, draftID uuid.UUID) (*entity.SubmissionRecord, error) {
	var submissionM model.SubmissionModel

	if err := repo.db.WithContext(ctx).
		Where("draft_id = ?", draftID).
		First(&submissionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSubmissionNotFound
		}

		return nil, errors.Wrap(err, "failed to find submission by draft")
	}

	return toSubmissionDomain(&submissionM)
}

// UpdateStatus moves the submission to a new status. A Completed record is
// never mutated; the guard lives in the WHERE clause so concurrent writers
// cannot race past it.
func (repo *submissionRepository) UpdateStatus(ctx context.Context, reference string, status entity.SubmissionStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.SubmissionModel{}).
		Where("reference = ? AND status <> ?", reference, string(entity.StatusCompleted)).
		Update("status", string(status))

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update submission status")
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := repo.db.WithContext(ctx).
			Model(&model.SubmissionModel{}).
			Where("reference = ?", reference).
			Count(&count).Error; err != nil {
			return errors.Wrap(err, "failed to check submission existence")
		}
		if count == 0 {
			return repository.ErrSubmissionNotFound
		}

		return domainerrors.ErrSubmissionImmutable
	}

	return nil
}

// SetTransaction records the opaque payment transaction id.
func (repo *submissionRepository) SetTransaction(ctx context.Context, reference, transactionID string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.SubmissionModel{}).
		Where("reference = ?", reference).
		Update("transaction_id", transactionID)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to set transaction id")
	}

	if result.RowsAffected == 0 {
		return repository.ErrSubmissionNotFound
	}

	return nil
}

// RecordUploadOutcome stores the per-file result of the post-payment
// document upload batch.
func (repo *submissionRepository) RecordUploadOutcome(ctx context.Context, reference string, attached []entity.AttachedDocument, failed []string, manualFollowUp bool) error {
	attachedJSON, err := json.Marshal(attached)
	if err != nil {
		return errors.Wrap(err, "failed to marshal attached documents")
	}
	failedJSON, err := json.Marshal(failed)
	if err != nil {
		return errors.Wrap(err, "failed to marshal failed uploads")
	}

	result := repo.db.WithContext(ctx).
		Model(&model.SubmissionModel{}).
		Where("reference = ?", reference).
		Updates(map[string]interface{}{
			"attached_documents": attachedJSON,
			"failed_uploads":     failedJSON,
			"manual_follow_up":   manualFollowUp,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to record upload outcome")
	}

	if result.RowsAffected == 0 {
		return repository.ErrSubmissionNotFound
	}

	return nil
}

// List returns submissions matching the filter, newest first.
func (repo *submissionRepository) List(ctx context.Context, filter repository.SubmissionFilter) ([]*entity.SubmissionRecord, error) {
	query := repo.db.WithContext(ctx).Model(&model.SubmissionModel{})

	if len(filter.Statuses) > 0 {
		statuses := make([]string, 0, len(filter.Statuses))
		for _, s := range filter.Statuses {
			statuses = append(statuses, string(s))
		}
		query = query.Where("status IN ?", statuses)
	}
	if filter.Canton != "" {
		query = query.Where("canton = ?", filter.Canton)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	var submissionModels []*model.SubmissionModel
	if err := query.Order("created_at DESC").Find(&submissionModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list submissions")
	}

	return toSubmissionDomainSlice(submissionModels)
}

// ListStuck returns submissions sitting in one of the given statuses since
// before the cutoff, for finalization recovery.
func (repo *submissionRepository) ListStuck(ctx context.Context, statuses []entity.SubmissionStatus, cutoff time.Time) ([]*entity.SubmissionRecord, error) {
	statusStrings := make([]string, 0, len(statuses))
	for _, s := range statuses {
		statusStrings = append(statusStrings, string(s))
	}

	var submissionModels []*model.SubmissionModel
	if err := repo.db.WithContext(ctx).
		Where("status IN ? AND updated_at < ?", statusStrings, cutoff).
		Order("updated_at ASC").
		Find(&submissionModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list stuck submissions")
	}

	return toSubmissionDomainSlice(submissionModels)
}

// AppendStatusHistory appends one audit line.
func (repo *submissionRepository) AppendStatusHistory(ctx context.Context, entry *entity.StatusHistoryEntry) error {
	historyM := &model.StatusHistoryModel{
		ID:        entry.ID,
		Reference: entry.Reference,
		OldStatus: string(entry.OldStatus),
		NewStatus: string(entry.NewStatus),
		ChangedAt: entry.ChangedAt,
		Actor:     entry.Actor,
		Notified:  entry.Notified,
	}

	if err := repo.db.WithContext(ctx).Create(historyM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to append status history")
	}

	return nil
}

// ListStatusHistory returns the audit trail oldest first.
func (repo *submissionRepository) ListStatusHistory(ctx context.Context, reference string) ([]*entity.StatusHistoryEntry, error) {
	var historyModels []*model.StatusHistoryModel

	if err := repo.db.WithContext(ctx).
		Where("reference = ?", reference).
		Order("changed_at ASC").
		Find(&historyModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list status history")
	}

	entries := make([]*entity.StatusHistoryEntry, 0, len(historyModels))
	for _, historyM := range historyModels {
		entries = append(entries, &entity.StatusHistoryEntry{
			ID:        historyM.ID,
			Reference: historyM.Reference,
			OldStatus: entity.SubmissionStatus(historyM.OldStatus),
			NewStatus: entity.SubmissionStatus(historyM.NewStatus),
			ChangedAt: historyM.ChangedAt,
			Actor:     historyM.Actor,
			Notified:  historyM.Notified,
		})
	}

	return entries, nil
}

// --- Mapper Functions ---

// toSubmissionDomain converts a GORM SubmissionModel to a domain SubmissionRecord.
func toSubmissionDomain(data *model.SubmissionModel) (*entity.SubmissionRecord, error) {
	if data == nil {
		return nil, nil
	}

	var profile entity.Profile
	if err := json.Unmarshal(data.ProfileSnapshot, &profile); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal profile snapshot")
	}

	var attached []entity.AttachedDocument
	if len(data.AttachedDocuments) > 0 {
		if err := json.Unmarshal(data.AttachedDocuments, &attached); err != nil {
			return nil, errors.Wrap(err, "failed to unmarshal attached documents")
		}
	}

	var failed []string
	if len(data.FailedUploads) > 0 {
		if err := json.Unmarshal(data.FailedUploads, &failed); err != nil {
			return nil, errors.Wrap(err, "failed to unmarshal failed uploads")
		}
	}

	return &entity.SubmissionRecord{
		ID:                data.ID,
		Reference:         data.Reference,
		DraftID:           data.DraftID,
		ProfileSnapshot:   profile,
		TotalCentimes:     data.TotalCentimes,
		TaxCentimes:       data.TaxCentimes,
		Currency:          data.Currency,
		Status:            entity.SubmissionStatus(data.Status),
		TransactionID:     data.TransactionID,
		AttachedDocuments: attached,
		FailedUploads:     failed,
		ManualFollowUp:    data.ManualFollowUp,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}, nil
}

func toSubmissionDomainSlice(models []*model.SubmissionModel) ([]*entity.SubmissionRecord, error) {
	records := make([]*entity.SubmissionRecord, 0, len(models))
	for _, submissionM := range models {
		record, err := toSubmissionDomain(submissionM)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, nil
}

// fromSubmissionDomain converts a domain SubmissionRecord to a GORM SubmissionModel.
func fromSubmissionDomain(data *entity.SubmissionRecord) (*model.SubmissionModel, error) {
	if data == nil {
		return nil, nil
	}

	profileJSON, err := json.Marshal(data.ProfileSnapshot)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal profile snapshot")
	}
	attachedJSON, err := json.Marshal(data.AttachedDocuments)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal attached documents")
	}
	failedJSON, err := json.Marshal(data.FailedUploads)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal failed uploads")
	}

	return &model.SubmissionModel{
		ID:                data.ID,
		Reference:         data.Reference,
		DraftID:           data.DraftID,
		Canton:            data.ProfileSnapshot.Canton,
		ProfileSnapshot:   profileJSON,
		TotalCentimes:     data.TotalCentimes,
		TaxCentimes:       data.TaxCentimes,
		Currency:          data.Currency,
		Status:            string(data.Status),
		TransactionID:     data.TransactionID,
		AttachedDocuments: attachedJSON,
		FailedUploads:     failedJSON,
		ManualFollowUp:    data.ManualFollowUp,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}, nil
}
