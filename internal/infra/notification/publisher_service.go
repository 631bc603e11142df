// Package notification implements the outbound notification boundary by
// handing intake events to the message queue. Rendering and delivery happen
// in the downstream worker, never in the intake core.
package notification

import (
	"context"
	"log/slog"

	reqctx "neofidu/internal/delivery/context"
	"neofidu/internal/domain/entity"
	"neofidu/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Event kinds published by the intake flow.
const (
	EventKindSummary      = "summary"
	EventKindStatusChange = "status_change"
)

type publisherService struct {
	publisher service.EventPublisher
	logger    *slog.Logger
}

// PublisherServiceParams holds dependencies for the notification service,
// injected by Fx.
type PublisherServiceParams struct {
	fx.In

	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// NewPublisherService creates the queue-backed notification service.
func NewPublisherService(params PublisherServiceParams) service.NotificationService {
	return &publisherService{
		publisher: params.Publisher,
		logger:    params.Logger,
	}
}

// SendSummary dispatches the post-payment submission summary event.
func (s *publisherService) SendSummary(ctx context.Context, reference string, attached []entity.AttachedDocument, failed []string) error {
	documents := make([]string, 0, len(attached))
	for _, doc := range attached {
		documents = append(documents, doc.DisplayName)
	}

	event := &service.IntakeEvent{
		RequestID: reqctx.GetRequestIDFromContext(ctx),
		Kind:      EventKindSummary,
		Reference: reference,
		Documents: documents,
		Failed:    failed,
	}

	if err := s.publisher.PublishIntakeEvent(ctx, event); err != nil {
		return errors.Wrap(err, "failed to publish summary event")
	}

	return nil
}

// SendStatusChange dispatches an operator status-change event.
func (s *publisherService) SendStatusChange(ctx context.Context, reference string, oldStatus, newStatus entity.SubmissionStatus) error {
	event := &service.IntakeEvent{
		RequestID: reqctx.GetRequestIDFromContext(ctx),
		Kind:      EventKindStatusChange,
		Reference: reference,
		OldStatus: string(oldStatus),
		NewStatus: string(newStatus),
	}

	if err := s.publisher.PublishIntakeEvent(ctx, event); err != nil {
		return errors.Wrap(err, "failed to publish status change event")
	}

	return nil
}
