package domain

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"task-cli/internal/errors"
	"task-cli/internal/repository"
)

// Task represents a task in the domain model.
// This is a pure domain model without store-specific concerns.
type Task struct {
	ID          int64
	Description string
	Status      Status
	CreatedAt   time.Time
	// UpdatedAt is nil until the description is first changed
	UpdatedAt *time.Time
}

// NewTask creates a todo Task created at now. The description is trimmed and
// must be non-empty and at most repository.MaxDescriptionLength characters.
func NewTask(description string, now time.Time) (Task, error) {
	description, err := cleanDescription(description)
	if err != nil {
		return Task{}, err
	}
	return Task{
		Description: description,
		Status:      StatusTodo,
		CreatedAt:   now,
	}, nil
}

// SetDescription replaces the description and records the update time
func (t *Task) SetDescription(description string, now time.Time) error {
	description, err := cleanDescription(description)
	if err != nil {
		return err
	}
	t.Description = description
	updated := now
	t.UpdatedAt = &updated
	return nil
}

// SetStatus moves the task to status. UpdatedAt is left unchanged.
func (t *Task) SetStatus(status Status) error {
	if !status.IsValid() {
		return errors.NewValidationError(fmt.Sprintf("unknown status %s", status), nil).WithContext("field", "status")
	}
	t.Status = status
	return nil
}

// IsValid checks if the task has valid data.
func (t Task) IsValid() bool {
	_, err := cleanDescription(t.Description)
	return err == nil && t.Status.IsValid()
}

// String returns the task description for display purposes.
func (t Task) String() string {
	return t.Description
}

func cleanDescription(description string) (string, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return "", errors.NewValidationError("description is required", nil).WithContext("field", "description")
	}
	if utf8.RuneCountInString(description) > repository.MaxDescriptionLength {
		return "", errors.NewValidationError(
			fmt.Sprintf("description must be at most %d characters long", repository.MaxDescriptionLength), nil,
		).WithContext("field", "description")
	}
	return description, nil
}
