package impl

import (
	"context"
	"encoding/binary"
	"fmt"
	"log/slog"
	"sync"
	"time"

	domainerrors "neofidu/internal/domain/errors"
	"neofidu/internal/domain/entity"
	"neofidu/internal/domain/pricing"
	"neofidu/internal/domain/repository"
	"neofidu/internal/domain/service"
	"neofidu/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	// createAttempts bounds the silent retry of the server-side draft
	// persist; past this the failure surfaces as a blocking banner, since
	// without a reference there can be no payment session.
	createAttempts = 3

	// uploadAttempts bounds automatic retries of the post-payment upload
	// batch before the submission is marked for manual follow-up.
	uploadAttempts = 2

	// actorSystem labels automated transitions in the status history.
	actorSystem = "system"
)

type submissionService struct {
	txManager       repository.TransactionManager
	submissionRepo  repository.SubmissionRepository
	draftRepo       repository.DraftRepository
	uploads         usecase.UploadCoordinator
	paymentSvc      service.PaymentService
	notificationSvc service.NotificationService
	logger          *slog.Logger

	// inflight serializes Submit per draft id: no two Draft→Saved calls
	// may run concurrently for the same local draft.
	mu       sync.Mutex
	inflight map[uuid.UUID]*sync.Mutex

	now func() time.Time
}

// SubmissionServiceParams holds dependencies for SubmissionService,
// injected by Fx.
type SubmissionServiceParams struct {
	fx.In

	TxManager       repository.TransactionManager
	SubmissionRepo  repository.SubmissionRepository
	DraftRepo       repository.DraftRepository
	Uploads         usecase.UploadCoordinator
	PaymentSvc      service.PaymentService
	NotificationSvc service.NotificationService
	Logger          *slog.Logger
}

// NewSubmissionService creates the saga controller driving a draft through
// Saved, AwaitingPayment, Paid, Finalizing and Completed.
func NewSubmissionService(params SubmissionServiceParams) usecase.SubmissionUsecase {
	return &submissionService{
		txManager:       params.TxManager,
		submissionRepo:  params.SubmissionRepo,
		draftRepo:       params.DraftRepo,
		uploads:         params.Uploads,
		paymentSvc:      params.PaymentSvc,
		notificationSvc: params.NotificationSvc,
		logger:          params.Logger,
		inflight:        make(map[uuid.UUID]*sync.Mutex),
		now:             time.Now,
	}
}

// draftLock returns the single-flight mutex for one local draft.
func (s *submissionService) draftLock(draftID uuid.UUID) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	lock, ok := s.inflight[draftID]
	if !ok {
		lock = &sync.Mutex{}
		s.inflight[draftID] = lock
	}

	return lock
}

// newReference builds the unique human-readable identifier assigned at
// creation, e.g. NF-2026-8F3K2A1B.
func newReference(now time.Time) string {
	id := uuid.New()

	return fmt.Sprintf("NF-%d-%08X", now.Year(), binary.BigEndian.Uint32(id[0:4]))
}

// Submit drives Draft → Saved → AwaitingPayment.
func (s *submissionService) Submit(ctx context.Context, draftID uuid.UUID, contact string) (*usecase.SubmissionReceipt, error) {
	lock := s.draftLock(draftID)
	lock.Lock()
	defer lock.Unlock()

	draft, err := s.draftRepo.Find(ctx, draftID)
	if err != nil {
		if errors.Is(err, repository.ErrDraftNotFound) {
			return nil, domainerrors.ErrDraftNotFound
		}

		return nil, errors.Wrap(err, "failed to load draft for submission")
	}

	if !draft.Profile.Certified {
		return nil, domainerrors.ErrCertificationMissing
	}

	record, err := s.ensureSubmissionRecord(ctx, draft)
	if err != nil {
		return nil, err
	}

	// Remember the reference on the draft so a resumed session skips
	// creation. Fail-soft: the server-side record is the durable anchor.
	if draft.Reference != record.Reference {
		draft.Reference = record.Reference
		if saveErr := s.draftRepo.Save(ctx, draft); saveErr != nil {
			s.logger.Warn("could not store reference on draft",
				slog.String("reference", record.Reference),
				slog.Any("error", saveErr),
			)
		}
	}

	price := pricing.Quote(record.ProfileSnapshot)

	// A stale client can replay Submit after the confirmation webhook has
	// already landed. Once the record is Paid or beyond, opening another
	// payment session would charge the same reference twice; hand back the
	// receipt without a payment URL instead.
	if record.Status != entity.StatusSaved && record.Status != entity.StatusAwaitingPayment {
		s.logger.Info("submit replayed after payment, skipping session creation",
			slog.String("reference", record.Reference),
			slog.String("status", string(record.Status)),
		)

		return &usecase.SubmissionReceipt{
			Reference: record.Reference,
			Price:     price,
		}, nil
	}

	session, err := s.paymentSvc.CreateSession(ctx, service.PaymentRequest{
		Reference:       record.Reference,
		AmountCentimes:  record.TotalCentimes,
		Currency:        record.Currency,
		CustomerContact: contact,
	})
	if err != nil {
		// The submission stays Saved and reusable; the client retries.
		s.logger.Error("payment session creation failed",
			slog.String("reference", record.Reference),
			slog.Any("error", err),
		)

		return nil, domainerrors.ErrPaymentSessionFailed.WithDetails(err.Error())
	}

	if record.Status == entity.StatusSaved {
		if err := s.transition(ctx, record.Reference, entity.StatusSaved, entity.StatusAwaitingPayment, actorSystem, false); err != nil {
			s.logger.Warn("could not record awaiting-payment transition",
				slog.String("reference", record.Reference),
				slog.Any("error", err),
			)
		}
	}

	return &usecase.SubmissionReceipt{
		Reference:  record.Reference,
		Price:      price,
		PaymentURL: session.RedirectURL,
	}, nil
}

// ensureSubmissionRecord creates the server-side record at most once per
// draft. Resumed sessions and replayed requests return the existing record.
func (s *submissionService) ensureSubmissionRecord(ctx context.Context, draft *entity.DraftState) (*entity.SubmissionRecord, error) {
	if draft.Reference != "" {
		record, err := s.submissionRepo.FindByReference(ctx, draft.Reference)
		if err == nil {
			return record, nil
		}
		if !errors.Is(err, repository.ErrSubmissionNotFound) {
			return nil, errors.Wrap(err, "failed to look up submission by reference")
		}
	}

	// The draft may have lost the reference (save degraded to memory):
	// the draft id is the replay key.
	record, err := s.submissionRepo.FindByDraftID(ctx, draft.ID)
	if err == nil {
		return record, nil
	}
	if !errors.Is(err, repository.ErrSubmissionNotFound) {
		return nil, errors.Wrap(err, "failed to look up submission by draft")
	}

	price := pricing.Quote(draft.Profile)
	record = &entity.SubmissionRecord{
		ID:              uuid.New(),
		Reference:       newReference(s.now()),
		DraftID:         draft.ID,
		ProfileSnapshot: draft.Profile,
		TotalCentimes:   int64(price.Total),
		TaxCentimes:     int64(price.Tax),
		Currency:        price.Currency,
		Status:          entity.StatusSaved,
	}

	var lastErr error
	for attempt := 1; attempt <= createAttempts; attempt++ {
		lastErr = s.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
			repo := f.NewSubmissionRepository()
			if err := repo.Create(ctx, record); err != nil {
				return err
			}

			return repo.AppendStatusHistory(ctx, &entity.StatusHistoryEntry{
				ID:        uuid.New(),
				Reference: record.Reference,
				NewStatus: entity.StatusSaved,
				ChangedAt: s.now(),
				Actor:     actorSystem,
			})
		})
		if lastErr == nil {
			return record, nil
		}
		if errors.Is(lastErr, repository.ErrDuplicateSubmission) {
			// Replayed create raced us; adopt the existing record.
			return s.submissionRepo.FindByDraftID(ctx, draft.ID)
		}
		s.logger.Warn("submission persist failed, retrying",
			slog.Int("attempt", attempt),
			slog.Any("error", lastErr),
		)
	}

	return nil, domainerrors.ErrPersistenceFailed.WithDetails(lastErr.Error())
}

// ConfirmPayment consumes the authenticated confirmation signal and drives
// the submission to Paid, then finalization. Replay-safe.
func (s *submissionService) ConfirmPayment(ctx context.Context, payload string) error {
	confirmation, err := s.paymentSvc.VerifyConfirmation(ctx, payload)
	if err != nil {
		return domainerrors.ErrPaymentConfirmationInvalid.WithDetails(err.Error())
	}

	record, err := s.submissionRepo.FindByReference(ctx, confirmation.Reference)
	if err != nil {
		if errors.Is(err, repository.ErrSubmissionNotFound) {
			return domainerrors.ErrSubmissionNotFound
		}

		return errors.Wrap(err, "failed to load submission for confirmation")
	}

	switch record.Status {
	case entity.StatusCompleted:
		// Replayed confirmation for a finished submission.
		return nil
	case entity.StatusPaid, entity.StatusFinalizing:
		// Payment already recorded; only finalization is outstanding.
	case entity.StatusSaved, entity.StatusAwaitingPayment:
		err := s.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
			repo := f.NewSubmissionRepository()
			if err := repo.SetTransaction(ctx, record.Reference, confirmation.TransactionID); err != nil {
				return err
			}
			if err := repo.UpdateStatus(ctx, record.Reference, entity.StatusPaid); err != nil {
				return err
			}

			return repo.AppendStatusHistory(ctx, &entity.StatusHistoryEntry{
				ID:        uuid.New(),
				Reference: record.Reference,
				OldStatus: record.Status,
				NewStatus: entity.StatusPaid,
				ChangedAt: s.now(),
				Actor:     actorSystem,
			})
		})
		if err != nil {
			return errors.Wrap(err, "failed to record payment confirmation")
		}
	default:
		return domainerrors.ErrStatusTransitionInvalid.WithDetails(string(record.Status))
	}

	// Post-payment side effects are best-effort: the confirmation is
	// acknowledged once payment is durably recorded, and the finalization
	// sweeper retries anything that fails here.
	if err := s.Finalize(ctx, record.Reference); err != nil {
		s.logger.Error("finalization after confirmation failed, will be retried",
			slog.String("reference", record.Reference),
			slog.Any("error", err),
		)
	}

	return nil
}

// Finalize drives Paid → Finalizing → Completed. Idempotent per reference;
// safe to invoke more than once.
func (s *submissionService) Finalize(ctx context.Context, reference string) error {
	record, err := s.submissionRepo.FindByReference(ctx, reference)
	if err != nil {
		if errors.Is(err, repository.ErrSubmissionNotFound) {
			return domainerrors.ErrSubmissionNotFound
		}

		return errors.Wrap(err, "failed to load submission for finalization")
	}

	switch record.Status {
	case entity.StatusCompleted:
		return nil
	case entity.StatusPaid:
		if err := s.transition(ctx, reference, entity.StatusPaid, entity.StatusFinalizing, actorSystem, false); err != nil {
			return errors.Wrap(err, "failed to enter finalizing state")
		}
	case entity.StatusFinalizing:
		// Re-entry after an interrupted run.
	default:
		// There is no unpaid path to finalization.
		return domainerrors.ErrStatusTransitionInvalid.WithDetails(string(record.Status))
	}

	attached, failed := s.uploadDocuments(ctx, record)

	if err := s.submissionRepo.RecordUploadOutcome(ctx, reference, attached, failed, len(failed) > 0); err != nil {
		s.logger.Warn("could not record upload outcome",
			slog.String("reference", reference),
			slog.Any("error", err),
		)
	}

	// Summary distribution happens regardless of upload outcome: the user
	// has been charged and must not be left without a confirmation.
	if err := s.notificationSvc.SendSummary(ctx, reference, attached, failed); err != nil {
		s.logger.Error("summary dispatch failed",
			slog.String("reference", reference),
			slog.Any("error", err),
		)

		return domainerrors.ErrFinalizationFailed.WithDetails(err.Error())
	}

	if err := s.transition(ctx, reference, entity.StatusFinalizing, entity.StatusCompleted, actorSystem, true); err != nil {
		return errors.Wrap(err, "failed to complete submission")
	}

	if err := s.draftRepo.Delete(ctx, record.DraftID); err != nil {
		s.logger.Warn("could not clear draft after completion",
			slog.String("draft_id", record.DraftID.String()),
			slog.Any("error", err),
		)
	}

	return nil
}

// uploadDocuments pushes the buffered files with one bounded automatic
// retry for the failed remainder. Upload failures never block completion.
func (s *submissionService) uploadDocuments(ctx context.Context, record *entity.SubmissionRecord) ([]entity.AttachedDocument, []string) {
	draft, err := s.draftRepo.Find(ctx, record.DraftID)
	if err != nil {
		if !errors.Is(err, repository.ErrDraftNotFound) {
			s.logger.Warn("draft unavailable during finalization",
				slog.String("reference", record.Reference),
				slog.Any("error", err),
			)
		}
		// Nothing buffered to upload; keep whatever was recorded before.
		return record.AttachedDocuments, record.FailedUploads
	}

	files := draft.UploadedFiles
	var attached []entity.AttachedDocument
	var failed []entity.UploadedFileRecord

	for attempt := 1; attempt <= uploadAttempts; attempt++ {
		batchAttached, batchFailed := s.uploads.Upload(ctx, record.Reference, files)
		attached = append(attached, batchAttached...)
		failed = batchFailed
		if len(failed) == 0 {
			break
		}

		s.logger.Warn("document uploads failed",
			slog.String("reference", record.Reference),
			slog.Int("attempt", attempt),
			slog.Int("failed", len(failed)),
		)

		// Retry only the failed remainder. The coordinator hands back the
		// records themselves, so files sharing a display name across
		// categories stay distinguishable.
		files = failed
	}

	return attached, displayNames(failed)
}

func displayNames(files []entity.UploadedFileRecord) []string {
	if len(files) == 0 {
		return nil
	}

	out := make([]string, 0, len(files))
	for _, f := range files {
		out = append(out, f.DisplayName)
	}

	return out
}

// transition atomically moves the submission and appends the audit line.
func (s *submissionService) transition(ctx context.Context, reference string, from, to entity.SubmissionStatus, actor string, notified bool) error {
	return s.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		repo := f.NewSubmissionRepository()
		if err := repo.UpdateStatus(ctx, reference, to); err != nil {
			return err
		}

		return repo.AppendStatusHistory(ctx, &entity.StatusHistoryEntry{
			ID:        uuid.New(),
			Reference: reference,
			OldStatus: from,
			NewStatus: to,
			ChangedAt: s.now(),
			Actor:     actor,
			Notified:  notified,
		})
	})
}

// Resume re-derives the client position from the durable records: the draft
// plus, when present, the submission record are the only source of truth.
func (s *submissionService) Resume(ctx context.Context, draftID uuid.UUID) (*usecase.ResumeView, error) {
	draft, err := s.draftRepo.Find(ctx, draftID)
	if err != nil {
		if errors.Is(err, repository.ErrDraftNotFound) {
			return nil, domainerrors.ErrDraftNotFound
		}

		return nil, errors.Wrap(err, "failed to load draft for resume")
	}
	draft.FlagMissingPayloads()

	record, err := s.findSubmissionFor(ctx, draft)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return &usecase.ResumeView{Draft: draft, ResumeStep: draft.CurrentStep}, nil
	}

	switch record.Status {
	case entity.StatusPaid, entity.StatusFinalizing:
		// Payment was confirmed but finalization did not complete: retry
		// with the same reference before showing anything to the client.
		if err := s.Finalize(ctx, record.Reference); err != nil {
			s.logger.Error("finalization retry on resume failed",
				slog.String("reference", record.Reference),
				slog.Any("error", err),
			)
		}
		if refreshed, findErr := s.submissionRepo.FindByReference(ctx, record.Reference); findErr == nil {
			record = refreshed
		}
	case entity.StatusSaved, entity.StatusAwaitingPayment:
		// Reference exists but no confirmation was observed: re-show the
		// payment step, never re-create the record.
	}

	return &usecase.ResumeView{
		Draft:      draft,
		Submission: record,
		ResumeStep: entity.StepPayment,
	}, nil
}

func (s *submissionService) findSubmissionFor(ctx context.Context, draft *entity.DraftState) (*entity.SubmissionRecord, error) {
	if draft.Reference != "" {
		record, err := s.submissionRepo.FindByReference(ctx, draft.Reference)
		if err == nil {
			return record, nil
		}
		if !errors.Is(err, repository.ErrSubmissionNotFound) {
			return nil, errors.Wrap(err, "failed to look up submission by reference")
		}
	}

	record, err := s.submissionRepo.FindByDraftID(ctx, draft.ID)
	if err != nil {
		if errors.Is(err, repository.ErrSubmissionNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to look up submission by draft")
	}

	return record, nil
}

// Track returns the public tracking view for a reference.
func (s *submissionService) Track(ctx context.Context, reference string) (*usecase.TrackingView, error) {
	record, err := s.submissionRepo.FindByReference(ctx, reference)
	if err != nil {
		if errors.Is(err, repository.ErrSubmissionNotFound) {
			return nil, domainerrors.ErrSubmissionNotFound
		}

		return nil, errors.Wrap(err, "failed to load submission for tracking")
	}

	history, err := s.submissionRepo.ListStatusHistory(ctx, reference)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load status history")
	}

	return &usecase.TrackingView{Record: record, History: history}, nil
}
