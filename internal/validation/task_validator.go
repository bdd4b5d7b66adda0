package validation

import (
	"strconv"

	"task-cli/internal/config"
	"task-cli/internal/domain"
)

// TaskValidator provides validation for Task-related operations
type TaskValidator struct {
	validator *Validator
}

// NewTaskValidator creates a new task validator
func NewTaskValidator() *TaskValidator {
	return &TaskValidator{
		validator: NewValidator(),
	}
}

// NewTaskValidatorWithConfig creates a task validator honouring configured limits
func NewTaskValidatorWithConfig(cfg *config.Config) *TaskValidator {
	return &TaskValidator{
		validator: NewValidatorWithConfig(cfg),
	}
}

// ValidateDescription validates a description for creation or update
func (tv *TaskValidator) ValidateDescription(description string) error {
	validationError := NewValidationError()

	trimmed := tv.validator.TrimAndValidateString(description)
	if !tv.validator.IsNonEmptyString(trimmed) {
		validationError.AddRequiredError("description")
		return validationError
	}

	if !tv.validator.IsValidDescriptionLength(trimmed) {
		validationError.AddInvalidLengthError("description", trimmed, 0, tv.validator.DescriptionMaxLength())
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}

// GetValidDescription returns a cleaned description if valid
func (tv *TaskValidator) GetValidDescription(description string) (string, error) {
	if err := tv.ValidateDescription(description); err != nil {
		return "", err
	}
	return tv.validator.TrimAndValidateString(description), nil
}

// ParseTaskID parses a task id typed by the user. Only decimal digits are
// accepted; signs, spaces inside the number and values beyond int64 are not.
func (tv *TaskValidator) ParseTaskID(raw string) (int64, error) {
	trimmed := tv.validator.TrimAndValidateString(raw)
	if trimmed == "" {
		validationError := NewValidationError()
		validationError.AddRequiredError("task_id")
		return 0, validationError
	}

	if !tv.validator.IsDigits(trimmed) {
		validationError := NewValidationError()
		validationError.AddInvalidFormatError("task_id", raw, "a whole number such as 12")
		return 0, validationError
	}

	id, err := strconv.ParseInt(trimmed, 10, 64)
	if err != nil {
		validationError := NewValidationError()
		validationError.AddInvalidFormatError("task_id", raw, "a whole number such as 12")
		return 0, validationError
	}

	return id, nil
}

// ParseStatusFilter parses the optional status argument of a listing
func (tv *TaskValidator) ParseStatusFilter(raw string) (domain.ListFilter, error) {
	trimmed := tv.validator.TrimAndValidateString(raw)
	if trimmed == "" {
		return domain.ListFilter{}, nil
	}

	status, err := domain.ParseStatus(trimmed)
	if err != nil {
		validationError := NewValidationError()
		validationError.AddInvalidFormatError("status", raw, "todo, in-progress or done")
		return domain.ListFilter{}, validationError
	}

	return domain.ByStatus(status), nil
}

// ValidateTask validates a domain.Task object
func (tv *TaskValidator) ValidateTask(task domain.Task) error {
	validationError := NewValidationError()

	if descErr := tv.ValidateDescription(task.Description); descErr != nil {
		if descValidationErr, ok := AsValidationError(descErr); ok {
			validationError.Errors = append(validationError.Errors, descValidationErr.Errors...)
		}
	}

	if !task.Status.IsValid() {
		validationError.AddInvalidValueError("status", task.Status, "must be todo, in-progress or done")
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}
