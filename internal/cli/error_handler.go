package cli

import (
	stderrors "errors"
	"fmt"

	"task-cli/internal/errors"
	"task-cli/internal/logging"
	"task-cli/internal/validation"
)

const (
	invalidTaskIDMessage = "Invalid task id"
	invalidStatusMessage = "Invalid status parameter. Use 'todo', 'in-progress', or 'done'."
	inputClosedMessage   = "No input received, nothing was changed"
)

// ErrorHandler provides centralized error handling for command handlers
type ErrorHandler struct{}

// NewErrorHandler creates a new error handler
func NewErrorHandler() *ErrorHandler {
	return &ErrorHandler{}
}

// Handle provides user-friendly error messages for validation and other errors
func (eh *ErrorHandler) Handle(operation string, err error) error {
	if validationErr, ok := validation.AsValidationError(err); ok && !errors.IsAppError(err) {
		return fmt.Errorf("failed to %s: %s", operation, validationErr.GetUserFriendlyMessage())
	}

	if _, ok := errors.AsAppError(err); ok {
		userMessage := errors.GetUserMessage(err)
		return fmt.Errorf("failed to %s: %s", operation, userMessage)
	}

	return fmt.Errorf("failed to %s: %w", operation, err)
}

// HandleSimple provides user-friendly error messages without operation context
func (eh *ErrorHandler) HandleSimple(err error) error {
	if validationErr, ok := validation.AsValidationError(err); ok && !errors.IsAppError(err) {
		return fmt.Errorf("%s", validationErr.GetUserFriendlyMessage())
	}

	if _, ok := errors.AsAppError(err); ok {
		userMessage := errors.GetUserMessage(err)
		return fmt.Errorf("%s", userMessage)
	}

	return err
}

// Message returns the single line printed when a command fails
func (eh *ErrorHandler) Message(err error) string {
	switch {
	case eh.IsInputClosed(err):
		return inputClosedMessage
	case eh.IsInvalidField(err, "task_id"):
		return invalidTaskIDMessage
	case eh.IsInvalidField(err, "status"):
		return invalidStatusMessage
	case stderrors.Is(err, errors.ErrTaskNotFound):
		if appErr, ok := errors.AsAppError(err); ok {
			if id, ok := appErr.GetContext("identifier"); ok {
				return fmt.Sprintf("No task with id %v found", id)
			}
		}
	}
	return "Something went wrong! " + eh.HandleSimple(err).Error()
}

// Report prints the failure line for operation and logs system errors
func (eh *ErrorHandler) Report(printer *Printer, operation string, err error) {
	if errors.ShouldLogError(err) {
		logging.Debug("command failed", "operation", operation, "code", eh.GetErrorCode(err), "error", err)
	}
	printer.Failure("%s", eh.Message(err))
}

// IsInvalidField reports whether err rejects the format of field
func (eh *ErrorHandler) IsInvalidField(err error, field string) bool {
	if validationErr, ok := validation.AsValidationError(err); ok {
		for _, fe := range validationErr.GetFieldErrors(field) {
			if fe.Type == validation.ErrorTypeInvalidFormat {
				return true
			}
		}
	}
	if appErr, ok := errors.AsAppError(err); ok && appErr.IsType(errors.ErrorTypeInvalidInput) {
		value, _ := appErr.GetContext("field")
		return value == field
	}
	return false
}

// IsValidationError checks if an error is a validation error
func (eh *ErrorHandler) IsValidationError(err error) bool {
	if validation.IsValidationError(err) {
		return true
	}
	return errors.IsErrorType(err, errors.ErrorTypeValidation)
}

// IsNotFoundError checks if an error is a not found error
func (eh *ErrorHandler) IsNotFoundError(err error) bool {
	return errors.IsErrorType(err, errors.ErrorTypeNotFound)
}

// IsInputClosed checks if interactive input ended early
func (eh *ErrorHandler) IsInputClosed(err error) bool {
	return stderrors.Is(err, ErrInputClosed)
}

// GetErrorCode returns the error code for structured errors
func (eh *ErrorHandler) GetErrorCode(err error) string {
	return errors.GetErrorCode(err)
}
