package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")

	// Input errors: the caller's catalog, completed set, or configuration is
	// malformed. Reported immediately, a solve is never attempted.
	ErrInvalidInput  = errors.New("invalid input")
	ErrInvalidConfig = errors.New("invalid planning configuration")

	// Catalog lifecycle errors
	ErrCatalogNotLoaded = errors.New("catalog not loaded")

	// Solver errors: the external solver failed or returned a malformed
	// result. Fatal, propagated unchanged, never silently swallowed.
	ErrSolverFault = errors.New("solver fault")
)

// Is returns whether target matches any of the errors in errList
func Is(err, target error, errList ...error) bool {
	if errors.Is(err, target) {
		return true
	}

	for _, e := range errList {
		if errors.Is(err, e) {
			return true
		}
	}

	return false
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
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
