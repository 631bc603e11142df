package entity

import (
	"time"

	"github.com/google/uuid"
)

// SubmissionStatus is the lifecycle state of a submitted request.
type SubmissionStatus string

const (
	StatusSaved           SubmissionStatus = "saved"
	StatusAwaitingPayment SubmissionStatus = "awaiting_payment"
	StatusPaid            SubmissionStatus = "paid"
	StatusFinalizing      SubmissionStatus = "finalizing"
	StatusCompleted       SubmissionStatus = "completed"
	StatusFailed          SubmissionStatus = "failed"
)

// allowedTransitions encodes the saga's state machine. Completed and Failed
// are terminal; payment confirmation is the only path out of the awaiting
// states, and finalization is re-enterable so interrupted runs can resume.
var allowedTransitions = map[SubmissionStatus][]SubmissionStatus{
	StatusSaved:           {StatusAwaitingPayment, StatusPaid, StatusFailed},
	StatusAwaitingPayment: {StatusPaid, StatusFailed},
	StatusPaid:            {StatusFinalizing, StatusFailed},
	StatusFinalizing:      {StatusFinalizing, StatusCompleted, StatusFailed},
}

// CanTransitionTo reports whether moving from s to next is a legal step.
func (s SubmissionStatus) CanTransitionTo(next SubmissionStatus) bool {
	for _, allowed := range allowedTransitions[s] {
		if allowed == next {
			return true
		}
	}

	return false
}

// Terminal reports whether the status admits no further mutation.
func (s SubmissionStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusFailed
}

// AttachedDocument is one successfully stored supporting document,
// addressable by a human operator through the submission reference.
type AttachedDocument struct {
	Category    DocumentCategory `json:"category"`
	DisplayName string           `json:"display_name"`
	RemoteURL   string           `json:"remote_url"`
}

// SubmissionRecord is the server-side entity created once the client reaches
// the payment step. Immutable once Completed, except for the append-only
// status history.
type SubmissionRecord struct {
	ID              uuid.UUID
	Reference       string // unique human-readable identifier, e.g. NF-2026-8F3K2A
	DraftID         uuid.UUID
	ProfileSnapshot Profile
	TotalCentimes   int64
	TaxCentimes     int64
	Currency        string
	Status          SubmissionStatus
	TransactionID   string // opaque payment transaction id, set on confirmation

	AttachedDocuments []AttachedDocument
	FailedUploads     []string // display names needing manual follow-up
	ManualFollowUp    bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// StatusHistoryEntry is one line of the append-only audit trail kept next to
// a SubmissionRecord, used for audit and client-facing tracking.
type StatusHistoryEntry struct {
	ID        uuid.UUID        `json:"id"`
	Reference string           `json:"reference"`
	OldStatus SubmissionStatus `json:"old_status"`
	NewStatus SubmissionStatus `json:"new_status"`
	ChangedAt time.Time        `json:"changed_at"`
	Actor     string           `json:"actor"`
	Notified  bool             `json:"notified"`
}
