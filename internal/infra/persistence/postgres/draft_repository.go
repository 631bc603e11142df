package postgres

import (
	"context"
	"encoding/json"

	"neofidu/internal/domain/entity"
	domainerrors "neofidu/internal/domain/errors"
	"neofidu/internal/domain/repository"
	"neofidu/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// draftRepository implements the repository.DraftRepository interface.
type draftRepository struct {
	db *gorm.DB
}

// NewDraftRepository is the constructor for draftRepository.
func NewDraftRepository(db *gorm.DB) repository.DraftRepository {
	return &draftRepository{
		db: db,
	}
}

// Save upserts the draft state keyed by its id. The serialized state never
// contains file payloads; the entity excludes them from JSON.
func (repo *draftRepository) Save(ctx context.Context, draft *entity.DraftState) error {
	stateJSON, err := json.Marshal(draft)
	if err != nil {
		return errors.Wrap(err, "failed to marshal draft state")
	}

	draftM := &model.DraftModel{
		ID:          draft.ID,
		CurrentStep: string(draft.CurrentStep),
		Reference:   draft.Reference,
		State:       stateJSON,
		SavedAt:     draft.SavedAt,
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(draftM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to save draft")
	}

	return nil
}

// Find retrieves a draft by id.
func (repo *draftRepository) Find(ctx context.Context, id uuid.UUID) (*entity.DraftState, error) {
	var draftM model.DraftModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&draftM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDraftNotFound
		}

		return nil, errors.Wrap(err, "failed to find draft")
	}

	var draft entity.DraftState
	if err := json.Unmarshal(draftM.State, &draft); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal draft state")
	}

	return &draft, nil
}

// Delete removes the draft. Deleting an absent draft is not an error.
func (repo *draftRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.DraftModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete draft")
	}

	return nil
}
