// Package impl contains the concrete implementations of the use case layer.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	domainerrors "neofidu/internal/domain/errors"
	"neofidu/internal/domain/entity"
	"neofidu/internal/domain/pricing"
	"neofidu/internal/domain/repository"
	"neofidu/internal/domain/rules"
	"neofidu/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type intakeService struct {
	draftRepo repository.DraftRepository
	logger    *slog.Logger

	// fallback keeps the latest draft state in-process so a storage outage
	// never surfaces as a user-facing save error.
	mu       sync.RWMutex
	fallback map[uuid.UUID]*entity.DraftState

	now func() time.Time
}

// IntakeServiceParams holds dependencies for IntakeService, injected by Fx.
type IntakeServiceParams struct {
	fx.In

	DraftRepo repository.DraftRepository
	Logger    *slog.Logger
}

// NewIntakeService creates a new intake service instance.
func NewIntakeService(params IntakeServiceParams) usecase.IntakeUsecase {
	return &intakeService{
		draftRepo: params.DraftRepo,
		logger:    params.Logger,
		fallback:  make(map[uuid.UUID]*entity.DraftState),
		now:       time.Now,
	}
}

// CreateDraft starts a fresh draft at the first wizard step.
func (s *intakeService) CreateDraft(ctx context.Context) (*entity.DraftState, error) {
	draft := &entity.DraftState{
		ID:          uuid.New(),
		CurrentStep: entity.StepSituation,
		Profile: entity.Profile{
			Category:       entity.CategoryPrivate,
			DeliveryMethod: entity.DeliveryElectronic,
			Deadline:       entity.DeadlineStandard,
		},
		SavedAt: s.now(),
	}

	s.SaveDraft(ctx, draft)

	return draft, nil
}

// SaveDraft persists the draft on every mutation. It never fails from the
// caller's point of view: when the durable store is unavailable the state
// is kept in the in-process cache and durable=false is reported.
func (s *intakeService) SaveDraft(ctx context.Context, draft *entity.DraftState) bool {
	draft.SavedAt = s.now()

	s.mu.Lock()
	s.fallback[draft.ID] = draft
	s.mu.Unlock()

	if err := s.draftRepo.Save(ctx, draft); err != nil {
		s.logger.Warn("draft save degraded to in-memory only",
			slog.String("draft_id", draft.ID.String()),
			slog.Any("error", err),
		)

		return false
	}

	return true
}

// LoadDraft restores a draft, preferring the durable store. Files whose
// payload did not survive and were never uploaded remotely are flagged for
// re-attachment rather than silently dropped.
func (s *intakeService) LoadDraft(ctx context.Context, id uuid.UUID) (*entity.DraftState, error) {
	draft, err := s.draftRepo.Find(ctx, id)
	if err != nil {
		if !errors.Is(err, repository.ErrDraftNotFound) {
			s.logger.Warn("draft load falling back to in-memory cache",
				slog.String("draft_id", id.String()),
				slog.Any("error", err),
			)
		}

		s.mu.RLock()
		cached, ok := s.fallback[id]
		s.mu.RUnlock()
		if !ok {
			return nil, domainerrors.ErrDraftNotFound
		}
		draft = cached
	}

	draft.FlagMissingPayloads()

	return draft, nil
}

// ClearDraft removes the draft from both stores.
func (s *intakeService) ClearDraft(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	delete(s.fallback, id)
	s.mu.Unlock()

	if err := s.draftRepo.Delete(ctx, id); err != nil {
		return errors.Wrap(err, "failed to delete draft")
	}

	return nil
}

// ValidateAdvance checks whether the draft may move past the given step.
// Validation errors are recoverable by user input and never persisted.
func (s *intakeService) ValidateAdvance(draft *entity.DraftState, step entity.WizardStep) error {
	p := draft.Profile

	switch step {
	case entity.StepSituation:
		if p.Canton == "" {
			return domainerrors.ErrValidationFailed.WithDetails("canton is required")
		}
		if p.Category == "" {
			return domainerrors.ErrValidationFailed.WithDetails("client category is required")
		}
		for adult := 1; adult <= p.AdultCount(); adult++ {
			if p.EmploymentOf(adult) == "" {
				return domainerrors.ErrValidationFailed.WithDetails(
					fmt.Sprintf("employment status of adult %d is required", adult))
			}
			if !p.HasCommuteFor(adult) {
				return domainerrors.ErrWorkplaceMissing.WithDetails(
					fmt.Sprintf("adult %d declared no workplace", adult))
			}
		}

	case entity.StepFamily:
		if p.HasChildren && p.ChildrenCount < 1 {
			return domainerrors.ErrValidationFailed.WithDetails("children count is required")
		}

	case entity.StepFinancials:
		for _, fact := range []entity.FinancialFact{
			p.GuardCosts, p.Pillar3a, p.Donations, p.Debts, p.AlimonyPaid, p.AlimonyReceived,
		} {
			if fact.Present && fact.AmountCentimes < 0 {
				return domainerrors.ErrValidationFailed.WithDetails("declared amounts must not be negative")
			}
		}

	case entity.StepProperty:
		if p.OwnsProperty && p.PropertyCount < 1 {
			return domainerrors.ErrValidationFailed.WithDetails("property count is required")
		}

	case entity.StepOptions:
		if p.DeliveryMethod == "" {
			return domainerrors.ErrValidationFailed.WithDetails("delivery method is required")
		}
		if p.Deadline == "" {
			return domainerrors.ErrValidationFailed.WithDetails("deadline tier is required")
		}

	case entity.StepDocuments:
		// A postal delivery choice waives electronic uploads entirely.
		if p.DeliveryMethod == entity.DeliveryPostal {
			return nil
		}
		missing := rules.MissingRequired(rules.Derive(p), draft.UploadedCategories())
		if len(missing) > 0 {
			return domainerrors.ErrValidationFailed.WithDetails(
				fmt.Sprintf("required documents missing: %v", missing))
		}

	case entity.StepPayment:
		if !p.Certified {
			return domainerrors.ErrCertificationMissing
		}
	}

	return nil
}

// DeriveRequirements recomputes the pure requirements projection.
func (s *intakeService) DeriveRequirements(profile entity.Profile) []entity.DocumentRequirement {
	return rules.Derive(profile)
}

// QuotePrice recomputes the deterministic price quote.
func (s *intakeService) QuotePrice(profile entity.Profile) pricing.Price {
	return pricing.Quote(profile)
}
