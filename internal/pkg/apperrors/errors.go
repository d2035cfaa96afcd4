package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")
	ErrDuplicateEntry   = errors.New("duplicate entry")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrSessionInvalid     = errors.New("invalid session")
	ErrSessionExpired     = errors.New("session expired")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")
)

// Student errors
var (
	ErrStudentNotFound     = errors.New("student not found")
	ErrEmailAlreadyExists  = errors.New("email already exists")
	ErrAadharAlreadyExists = errors.New("aadhar already registered")
)

// Admin errors
var (
	ErrAdminNotFound     = errors.New("admin not found")
	ErrAdminNameExists   = errors.New("admin username already exists")
	ErrInvalidAdminLogin = errors.New("invalid admin credentials")
)

// Payment errors
var (
	ErrPaymentNotFound = errors.New("payment not found")
	ErrInvalidMonth    = errors.New("invalid month")
	ErrInvalidAmount   = errors.New("invalid amount")
)

// Booking errors
var (
	ErrUnknownPlan = errors.New("unknown plan")
)

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Field   string
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// WithField records the offending field name
func (e *CustomError) WithField(field string) *CustomError {
	e.Field = field
	return e
}

// NewValidationError creates a validation error with a user-facing message
func NewValidationError(message string) error {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: message,
	}
}

// NewDuplicateEntryError creates a duplicate-entry error with a user-facing message
func NewDuplicateEntryError(message string) error {
	return &CustomError{
		Err:     ErrDuplicateEntry,
		Message: message,
	}
}

// NewNotFoundError creates a not-found error with a user-facing message
func NewNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrResourceNotFound,
		Message: message,
	}
}

// NewBadRequestError creates a bad-request error with a user-facing message
func NewBadRequestError(message string) error {
	return &CustomError{
		Err:     ErrBadRequest,
		Message: message,
	}
}
