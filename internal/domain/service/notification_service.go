package service

import (
	"context"

	"neofidu/internal/domain/entity"
)

// NotificationService is the out-of-scope notification boundary. The core
// only decides when these fire, never how the messages render.
type NotificationService interface {
	// SendSummary dispatches the post-payment submission summary, listing
	// the successfully attached documents and any failed filenames.
	SendSummary(ctx context.Context, reference string, attached []entity.AttachedDocument, failed []string) error

	// SendStatusChange notifies the client about an operator status change.
	SendStatusChange(ctx context.Context, reference string, oldStatus, newStatus entity.SubmissionStatus) error
}

// IntakeEvent is one notification event handed to the message queue for
// asynchronous rendering and dispatch.
type IntakeEvent struct {
	RequestID string   `json:"request_id,omitempty"` // for distributed tracing
	Kind      string   `json:"kind"`                 // "summary" or "status_change"
	Reference string   `json:"reference"`
	OldStatus string   `json:"old_status,omitempty"`
	NewStatus string   `json:"new_status,omitempty"`
	Documents []string `json:"documents,omitempty"`      // attached display names
	Failed    []string `json:"failed_uploads,omitempty"` // filenames needing follow-up
}

// EventPublisher defines the interface for publishing events to a message
// queue.
type EventPublisher interface {
	// PublishIntakeEvent publishes an intake event for async processing.
	PublishIntakeEvent(ctx context.Context, event *IntakeEvent) error

	// Close releases any resources held by the publisher.
	Close() error
}
