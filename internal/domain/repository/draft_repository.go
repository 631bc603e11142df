// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"neofidu/internal/domain/entity"
	"neofidu/internal/errors"

	"github.com/google/uuid"
)

// ErrDraftNotFound is returned when no durable draft exists for the id.
var ErrDraftNotFound = errors.New("draft not found")

// DraftRepository persists the client-scoped resumable draft record.
// One record per draft id; file payloads are never part of it.
type DraftRepository interface {
	// Save upserts the draft state keyed by its id.
	Save(ctx context.Context, draft *entity.DraftState) error

	// Find retrieves a draft by id, or ErrDraftNotFound.
	Find(ctx context.Context, id uuid.UUID) (*entity.DraftState, error)

	// Delete removes the draft. Deleting an absent draft is not an error.
	Delete(ctx context.Context, id uuid.UUID) error
}
