package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"neofidu/internal/delivery/http/response"
	"neofidu/internal/domain/entity"
	"neofidu/internal/domain/repository"
	"neofidu/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// defaultListLimit bounds unpaged admin listings.
const defaultListLimit = 50

// AdminHandler holds dependencies for the operator handlers.
type AdminHandler struct {
	uc     usecase.AdminUsecase
	logger *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler, injected by Fx.
func NewAdminHandler(uc usecase.AdminUsecase, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		uc:     uc,
		logger: logger,
	}
}

// updateStatusRequest is the operator's optimistic status transition.
type updateStatusRequest struct {
	NewStatus entity.SubmissionStatus `json:"new_status" validate:"required"`
	OldStatus entity.SubmissionStatus `json:"old_status" validate:"required"`
	Actor     string                  `json:"actor" validate:"required"`
	Notify    bool                    `json:"notify"`
}

// ListRequests returns submissions matching the query filters, newest first.
func (h *AdminHandler) ListRequests(c echo.Context) error {
	filter := repository.SubmissionFilter{
		Canton: c.QueryParam("canton"),
		Limit:  defaultListLimit,
	}

	for _, status := range c.QueryParams()["status"] {
		filter.Statuses = append(filter.Statuses, entity.SubmissionStatus(status))
	}

	if raw := c.QueryParam("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit <= 0 {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid limit")
		}
		filter.Limit = limit
	}
	if raw := c.QueryParam("offset"); raw != "" {
		offset, err := strconv.Atoi(raw)
		if err != nil || offset < 0 {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid offset")
		}
		filter.Offset = offset
	}

	records, err := h.uc.ListRequests(c.Request().Context(), filter)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, records, "Requests listed")
}

// GetRequest returns one submission by reference.
func (h *AdminHandler) GetRequest(c echo.Context) error {
	record, err := h.uc.GetRequest(c.Request().Context(), c.Param("reference"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, record, "Request found")
}

// GetStatusHistory returns the append-only audit trail, oldest first.
func (h *AdminHandler) GetStatusHistory(c echo.Context) error {
	history, err := h.uc.GetStatusHistory(c.Request().Context(), c.Param("reference"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, history, "Status history")
}

// UpdateStatus applies an operator status transition with the optimistic
// old-status check.
func (h *AdminHandler) UpdateStatus(c echo.Context) error {
	var input updateStatusRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status update input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	err := h.uc.UpdateRequestStatus(
		c.Request().Context(),
		c.Param("reference"),
		input.NewStatus,
		input.OldStatus,
		input.Actor,
		input.Notify,
	)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Status updated")
}
