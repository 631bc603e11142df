// Package errors defines the application error taxonomy of the intake flow.
// Five error kinds exist: validation, persistence, payment, upload and
// finalization. No kind may cause a paid submission to be lost or
// duplicated; the reference is the durable anchor for all recovery.
package errors

import (
	"net/http"

	"neofidu/internal/errors"
)

// AppError defines the interface for application-specific errors.
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface.
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error.
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface.
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message.
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code.
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code.
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message.
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information.
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails returns a copy of the error carrying detailed information.
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types.
var (
	// Validation errors block step advancement and are recoverable by user
	// input. They are never persisted server-side.
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"The submitted answers are incomplete or inconsistent",
		"",
	)

	ErrCertificationMissing = NewBaseError(
		http.StatusBadRequest,
		"CERTIFICATION_MISSING",
		"The certification checkbox must be confirmed before submitting",
		"",
	)

	ErrWorkplaceMissing = NewBaseError(
		http.StatusBadRequest,
		"WORKPLACE_MISSING",
		"Every adult needs at least one workplace or an explicit no-commute declaration",
		"",
	)

	// Persistence errors mean the draft could not be saved server-side:
	// without a reference there can be no payment session.
	ErrDraftNotFound = NewBaseError(
		http.StatusNotFound,
		"DRAFT_NOT_FOUND",
		"No draft exists for this identifier",
		"",
	)

	ErrPersistenceFailed = NewBaseError(
		http.StatusServiceUnavailable,
		"PERSISTENCE_FAILED",
		"The request could not be saved, please retry",
		"",
	)

	// Payment errors leave the submission Saved and reusable.
	ErrPaymentSessionFailed = NewBaseError(
		http.StatusBadGateway,
		"PAYMENT_SESSION_FAILED",
		"The payment session could not be created, please retry",
		"",
	)

	ErrPaymentConfirmationInvalid = NewBaseError(
		http.StatusUnauthorized,
		"PAYMENT_CONFIRMATION_INVALID",
		"The payment confirmation signal could not be verified",
		"",
	)

	// Upload errors are per-file and non-blocking; they surface as a
	// contact-support notice listing the failed filenames.
	ErrUploadIncomplete = NewBaseError(
		http.StatusAccepted,
		"UPLOAD_INCOMPLETE",
		"Some documents could not be stored; support will follow up",
		"",
	)

	// Finalization errors are logged and safely retryable; the submission
	// status never regresses past Paid.
	ErrFinalizationFailed = NewBaseError(
		http.StatusInternalServerError,
		"FINALIZATION_FAILED",
		"The submission is paid but could not be finalized yet",
		"",
	)

	ErrSubmissionNotFound = NewBaseError(
		http.StatusNotFound,
		"SUBMISSION_NOT_FOUND",
		"No request exists for this reference",
		"",
	)

	ErrStatusConflict = NewBaseError(
		http.StatusConflict,
		"STATUS_CONFLICT",
		"The request status changed in the meantime",
		"",
	)

	ErrStatusTransitionInvalid = NewBaseError(
		http.StatusConflict,
		"STATUS_TRANSITION_INVALID",
		"The requested status transition is not allowed",
		"",
	)

	ErrSubmissionImmutable = NewBaseError(
		http.StatusConflict,
		"SUBMISSION_IMMUTABLE",
		"A completed request can no longer be modified",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Access denied",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing
// the AppError interface.
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error.
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface.
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code.
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code.
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message.
func (e *DatabaseExecuteError) Message() string {
	return "Database execution failed"
}

// Details returns detailed error information.
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
