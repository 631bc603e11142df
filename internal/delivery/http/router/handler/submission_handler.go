package handler

import (
	"io"
	"log/slog"
	"net/http"

	"neofidu/internal/delivery/http/response"
	domainerrors "neofidu/internal/domain/errors"
	"neofidu/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// webhookBodyLimit caps confirmation payloads well above any real JWT size.
const webhookBodyLimit = 64 * 1024

// SubmissionHandler holds dependencies for the submission saga handlers.
type SubmissionHandler struct {
	uc     usecase.SubmissionUsecase
	logger *slog.Logger
}

// NewSubmissionHandler is the constructor for SubmissionHandler, injected by Fx.
func NewSubmissionHandler(uc usecase.SubmissionUsecase, logger *slog.Logger) *SubmissionHandler {
	return &SubmissionHandler{
		uc:     uc,
		logger: logger,
	}
}

// submitRequest starts the paid submission for a saved draft.
type submitRequest struct {
	Contact string `json:"contact" validate:"required,email"`
}

// Submit persists the draft as a submission and opens the payment session.
// Calling it again for the same draft returns the same reference.
func (h *SubmissionHandler) Submit(c echo.Context) error {
	draftID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid draft identifier")
	}

	var input submitRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid submission input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	receipt, err := h.uc.Submit(c.Request().Context(), draftID, input.Contact)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, receipt, "Submission saved, payment pending")
}

// PaymentWebhook consumes the signed confirmation the payment provider
// pushes after a successful charge. The raw body is the verification
// payload; authentication happens inside the usecase, not here.
func (h *SubmissionHandler) PaymentWebhook(c echo.Context) error {
	payload, err := io.ReadAll(io.LimitReader(c.Request().Body, webhookBodyLimit))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Unreadable confirmation payload")
	}
	if len(payload) == 0 {
		return response.BadRequest(c, "INVALID_INPUT", "Empty confirmation payload")
	}

	if err := h.uc.ConfirmPayment(c.Request().Context(), string(payload)); err != nil {
		// The provider retries on non-2xx. A submission that is already
		// gone must not trigger endless redelivery.
		if errors.Is(err, domainerrors.ErrSubmissionNotFound) {
			h.logger.Warn("payment confirmation for unknown reference dropped")

			return response.Success(c, http.StatusOK, nil, "Confirmation ignored")
		}

		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Payment confirmed")
}

// Resume reconciles a reloaded client with the durable draft and submission.
func (h *SubmissionHandler) Resume(c echo.Context) error {
	draftID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid draft identifier")
	}

	view, err := h.uc.Resume(c.Request().Context(), draftID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "Session resumed")
}

// Track returns the public status view for a reference.
func (h *SubmissionHandler) Track(c echo.Context) error {
	reference := c.Param("reference")
	if reference == "" {
		return response.BadRequest(c, "INVALID_INPUT", "Reference is required")
	}

	view, err := h.uc.Track(c.Request().Context(), reference)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "Tracking view")
}

// RetryFinalize re-drives finalization for a paid submission. Operator-only;
// the background sweeper does the same thing on a schedule.
func (h *SubmissionHandler) RetryFinalize(c echo.Context) error {
	reference := c.Param("reference")
	if reference == "" {
		return response.BadRequest(c, "INVALID_INPUT", "Reference is required")
	}

	if err := h.uc.Finalize(c.Request().Context(), reference); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Finalization completed")
}
