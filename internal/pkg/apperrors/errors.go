package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")
)

// Category errors
var (
	ErrInvalidCategory  = errors.New("invalid category")
	ErrCategoryMismatch = errors.New("criteria do not belong to the active category")
)

// Dataset errors
var (
	ErrDatasetLoad        = errors.New("failed to load dataset")
	ErrUnsupportedFormat  = errors.New("unsupported dataset format")
	ErrUnsupportedSource  = errors.New("unsupported dataset source")
	ErrDatasetUnavailable = errors.New("dataset is not loaded")
)

// Session errors
var (
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionStore    = errors.New("session store failure")
)

// NewResourceNotFoundError creates a new custom error for resource not found with a message
func NewResourceNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrResourceNotFound,
		Message: message,
	}
}

// NewBadRequestError creates a new custom error for bad request with a message
func NewBadRequestError(message string) error {
	return &CustomError{
		Err:     ErrBadRequest,
		Message: message,
	}
}

// NewInvalidCategoryError reports a category name that is not one of the four entity kinds
func NewInvalidCategoryError(name string) error {
	return &CustomError{
		Err:     ErrInvalidCategory,
		Message: "unknown category: " + name,
		Details: map[string]interface{}{"category": name},
	}
}

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
	Details map[string]interface{}
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
