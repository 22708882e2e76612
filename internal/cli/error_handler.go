package cli

import (
	"fmt"

	"nexttick/internal/errors"
	"nexttick/internal/logging"
)

// ErrorHandler provides centralized error handling for command handlers
type ErrorHandler struct{}

// NewErrorHandler creates a new error handler
func NewErrorHandler() *ErrorHandler {
	return &ErrorHandler{}
}

// Handle provides user-friendly error messages for validation and other
// errors. System errors are logged in debug mode before being rendered
// as a generic notice.
func (eh *ErrorHandler) Handle(operation string, err error) error {
	if errors.ShouldLogError(err) {
		logging.Debugf("error during %s: %v\n", operation, err)
	}

	if _, ok := errors.AsAppError(err); ok {
		return fmt.Errorf("failed to %s: %s", operation, errors.GetUserMessage(err))
	}

	return fmt.Errorf("failed to %s: %w", operation, err)
}

// HandleSimple provides user-friendly error messages without operation context
func (eh *ErrorHandler) HandleSimple(err error) error {
	if errors.ShouldLogError(err) {
		logging.Debugf("error: %v\n", err)
	}

	if _, ok := errors.AsAppError(err); ok {
		return fmt.Errorf("%s", errors.GetUserMessage(err))
	}

	return err
}

// IsValidationError checks if an error is a validation error
func (eh *ErrorHandler) IsValidationError(err error) bool {
	return errors.IsErrorType(err, errors.ErrorTypeValidation)
}

// IsStorageError checks if an error is a storage error
func (eh *ErrorHandler) IsStorageError(err error) bool {
	return errors.IsErrorType(err, errors.ErrorTypeStorage)
}
