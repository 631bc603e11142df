// Package usecase defines the application's inbound interfaces: the intake
// wizard, the submission saga, the upload coordinator and the admin surface.
package usecase

import (
	"context"

	"neofidu/internal/domain/entity"
	"neofidu/internal/domain/pricing"

	"github.com/google/uuid"
)

// IntakeUsecase drives the resumable wizard: draft persistence, derived
// requirement and price recomputation, and step-advancement validation.
type IntakeUsecase interface {
	// CreateDraft starts a fresh draft at the first wizard step.
	CreateDraft(ctx context.Context) (*entity.DraftState, error)

	// SaveDraft persists the draft on every mutation. Saving is fail-soft:
	// on storage unavailability it degrades to an in-process cache and
	// reports durable=false instead of an error.
	SaveDraft(ctx context.Context, draft *entity.DraftState) (durable bool)

	// LoadDraft restores a draft. Uploaded files whose payload cannot be
	// restored and which were never uploaded remotely come back flagged
	// NeedsReattachment.
	LoadDraft(ctx context.Context, id uuid.UUID) (*entity.DraftState, error)

	// ClearDraft removes the durable draft; invoked once the submission
	// reaches Completed.
	ClearDraft(ctx context.Context, id uuid.UUID) error

	// ValidateAdvance checks whether the draft may move past the given
	// step, returning a validation error to surface to the client.
	ValidateAdvance(draft *entity.DraftState, step entity.WizardStep) error

	// DeriveRequirements recomputes the document requirements projection.
	DeriveRequirements(profile entity.Profile) []entity.DocumentRequirement

	// QuotePrice recomputes the deterministic price quote.
	QuotePrice(profile entity.Profile) pricing.Price
}
