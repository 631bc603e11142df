// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"neofidu/internal/delivery/http/response"
	"neofidu/internal/domain/entity"
	"neofidu/internal/domain/pricing"
	"neofidu/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// IntakeHandler holds dependencies for the wizard draft handlers.
type IntakeHandler struct {
	uc     usecase.IntakeUsecase
	logger *slog.Logger
}

// NewIntakeHandler is the constructor for IntakeHandler, injected by Fx.
func NewIntakeHandler(uc usecase.IntakeUsecase, logger *slog.Logger) *IntakeHandler {
	return &IntakeHandler{
		uc:     uc,
		logger: logger,
	}
}

// saveDraftResponse reports whether the draft reached durable storage. A
// degraded save is still a success from the client's point of view.
type saveDraftResponse struct {
	Draft   *entity.DraftState `json:"draft"`
	Durable bool               `json:"durable"`
}

// advanceDraftRequest carries the draft alongside the step the client wants
// to move past.
type advanceDraftRequest struct {
	Draft *entity.DraftState `json:"draft" validate:"required"`
	Step  entity.WizardStep  `json:"step" validate:"required"`
}

// quoteResponse wraps the recomputed price projection.
type quoteResponse struct {
	Price pricing.Price `json:"price"`
}

// requirementsResponse wraps the derived document requirement projection.
type requirementsResponse struct {
	Requirements []entity.DocumentRequirement `json:"requirements"`
}

// CreateDraft starts a fresh draft at the first wizard step.
func (h *IntakeHandler) CreateDraft(c echo.Context) error {
	draft, err := h.uc.CreateDraft(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, draft, "Draft created")
}

// GetDraft restores a draft, flagging files that need re-attachment.
func (h *IntakeHandler) GetDraft(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid draft identifier")
	}

	draft, err := h.uc.LoadDraft(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, draft, "Draft loaded")
}

// SaveDraft persists the draft after a client-side mutation.
func (h *IntakeHandler) SaveDraft(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid draft identifier")
	}

	var draft *entity.DraftState
	if err := c.Bind(&draft); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid draft payload")
	}
	if draft == nil {
		return response.BadRequest(c, "INVALID_INPUT", "Draft payload is required")
	}
	draft.ID = id

	durable := h.uc.SaveDraft(c.Request().Context(), draft)

	return response.Success(c, http.StatusOK, saveDraftResponse{Draft: draft, Durable: durable}, "Draft saved")
}

// AdvanceDraft validates step completion, then saves the advanced draft.
func (h *IntakeHandler) AdvanceDraft(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid draft identifier")
	}

	var input advanceDraftRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid advance payload")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}
	input.Draft.ID = id

	if err := h.uc.ValidateAdvance(input.Draft, input.Step); err != nil {
		return errors.WithStack(err)
	}

	durable := h.uc.SaveDraft(c.Request().Context(), input.Draft)

	return response.Success(c, http.StatusOK, saveDraftResponse{Draft: input.Draft, Durable: durable}, "Step completed")
}

// ClearDraft removes the durable draft.
func (h *IntakeHandler) ClearDraft(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid draft identifier")
	}

	if err := h.uc.ClearDraft(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Draft cleared")
}

// Requirements recomputes the document requirement projection for a profile.
func (h *IntakeHandler) Requirements(c echo.Context) error {
	var profile entity.Profile
	if err := c.Bind(&profile); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile payload")
	}

	out := requirementsResponse{Requirements: h.uc.DeriveRequirements(profile)}

	return response.Success(c, http.StatusOK, out, "Requirements derived")
}

// Quote recomputes the deterministic price quote for a profile.
func (h *IntakeHandler) Quote(c echo.Context) error {
	var profile entity.Profile
	if err := c.Bind(&profile); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile payload")
	}

	out := quoteResponse{Price: h.uc.QuotePrice(profile)}

	return response.Success(c, http.StatusOK, out, "Quote computed")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
