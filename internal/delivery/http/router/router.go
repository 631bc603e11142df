// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"neofidu/internal/delivery/http/middleware"
	"neofidu/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	IntakeHandler     *handler.IntakeHandler
	SubmissionHandler *handler.SubmissionHandler
	AdminHandler      *handler.AdminHandler
	AuthMiddleware    *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	intakeHandler     *handler.IntakeHandler
	submissionHandler *handler.SubmissionHandler
	adminHandler      *handler.AdminHandler
	authMiddleware    *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		intakeHandler:     params.IntakeHandler,
		submissionHandler: params.SubmissionHandler,
		adminHandler:      params.AdminHandler,
		authMiddleware:    params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	// Wizard draft routes
	intakeGroup := api.Group("/intake")
	{
		intakeGroup.POST("/drafts", r.intakeHandler.CreateDraft)
		intakeGroup.GET("/drafts/:id", r.intakeHandler.GetDraft)
		intakeGroup.PUT("/drafts/:id", r.intakeHandler.SaveDraft)
		intakeGroup.DELETE("/drafts/:id", r.intakeHandler.ClearDraft)
		intakeGroup.POST("/drafts/:id/advance", r.intakeHandler.AdvanceDraft)
		intakeGroup.GET("/drafts/:id/resume", r.submissionHandler.Resume)
		intakeGroup.POST("/drafts/:id/submit", r.submissionHandler.Submit)
		intakeGroup.POST("/requirements", r.intakeHandler.Requirements)
		intakeGroup.POST("/quote", r.intakeHandler.Quote)
	}

	// Payment provider callback; authenticated by the signed payload itself
	api.POST("/payments/confirmation", r.submissionHandler.PaymentWebhook)

	// Public tracking view
	api.GET("/requests/:reference", r.submissionHandler.Track)

	// Operator routes behind the static back-office token
	adminGroup := api.Group("/admin")
	adminGroup.Use(r.authMiddleware.RequireOperator)
	{
		adminGroup.GET("/requests", r.adminHandler.ListRequests)
		adminGroup.GET("/requests/:reference", r.adminHandler.GetRequest)
		adminGroup.GET("/requests/:reference/history", r.adminHandler.GetStatusHistory)
		adminGroup.PATCH("/requests/:reference/status", r.adminHandler.UpdateStatus)
		adminGroup.POST("/requests/:reference/finalize", r.submissionHandler.RetryFinalize)
	}
}
