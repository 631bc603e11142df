package usecase

import (
	"context"

	"neofidu/internal/domain/entity"
	"neofidu/internal/domain/pricing"

	"github.com/google/uuid"
)

// SubmissionReceipt is what the client gets back from Submit: the durable
// reference, the charged price and the hosted payment page.
type SubmissionReceipt struct {
	Reference  string        `json:"reference"`
	Price      pricing.Price `json:"price"`
	PaymentURL string        `json:"payment_url"`
}

// ResumeView reconciles a reloaded client with the durable state: the draft
// (with re-attachment flags), the submission record if one exists, and the
// step the client should re-enter at.
type ResumeView struct {
	Draft      *entity.DraftState       `json:"draft"`
	Submission *entity.SubmissionRecord `json:"submission,omitempty"`
	ResumeStep entity.WizardStep        `json:"resume_step"`
}

// TrackingView is the client-facing status of a submitted request.
type TrackingView struct {
	Record  *entity.SubmissionRecord     `json:"record"`
	History []*entity.StatusHistoryEntry `json:"history"`
}

// SubmissionUsecase is the saga controller sequencing persist draft →
// confirm payment → payment-gated side effects → finalize, tolerating
// interruption at any step.
type SubmissionUsecase interface {
	// Submit drives Draft → Saved → AwaitingPayment: persists the profile
	// snapshot (at-most-once per draft), assigns the reference and opens a
	// payment session. Safe to call again after an interruption; a second
	// call returns the same reference.
	Submit(ctx context.Context, draftID uuid.UUID, contact string) (*SubmissionReceipt, error)

	// ConfirmPayment consumes the authenticated payment-confirmation
	// payload and drives Saved/AwaitingPayment → Paid, then finalization.
	// Replayed confirmations for an already-paid reference are no-ops.
	ConfirmPayment(ctx context.Context, payload string) error

	// Finalize drives Paid → Finalizing → Completed: uploads buffered
	// documents (best-effort), dispatches the summary and clears the
	// draft. Idempotent per reference.
	Finalize(ctx context.Context, reference string) error

	// Resume re-derives the client position from the durable records after
	// a reload or crash.
	Resume(ctx context.Context, draftID uuid.UUID) (*ResumeView, error)

	// Track returns the public tracking view for a reference.
	Track(ctx context.Context, reference string) (*TrackingView, error)
}
