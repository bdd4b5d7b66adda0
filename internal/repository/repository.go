package repository

import (
	"context"
	"fmt"
	"time"
	"unicode/utf8"

	"task-cli/internal/errors"
)

// MaxDescriptionLength is the longest description, in characters, a store accepts
const MaxDescriptionLength = 500

// Stored status values
const (
	StatusTodo       = "todo"
	StatusInProgress = "in-progress"
	StatusDone       = "done"
)

// Task is the persisted form of a task, shared by every store backend
type Task struct {
	ID          int64
	Description string
	Status      string
	CreatedAt   time.Time
	UpdatedAt   *time.Time // nil until the description is first updated
}

// ListOptions narrows ListTasks. A nil Status lists every task.
type ListOptions struct {
	Status *string
}

// Repository defines the interface for task store operations
type Repository interface {
	// CreateTask validates the record, assigns task.ID and persists it
	CreateTask(ctx context.Context, task *Task) error

	// GetTask returns a NotFound AppError when no task has the id
	GetTask(ctx context.Context, id int64) (*Task, error)

	// ListTasks returns tasks in ascending id order
	ListTasks(ctx context.Context, opts ListOptions) ([]*Task, error)

	// UpdateTask persists description, status and updated_at of an existing task
	UpdateTask(ctx context.Context, task *Task) error

	// DeleteTask returns a NotFound AppError when no task has the id
	DeleteTask(ctx context.Context, id int64) error

	Close() error
}

// ValidateRecord applies the store's field-level rules to a record before it is written
func ValidateRecord(task *Task) error {
	if task == nil {
		return errors.NewValidationError("task record is required", nil)
	}
	if task.Description == "" {
		return errors.NewValidationError("description is required", nil).WithContext("field", "description")
	}
	if utf8.RuneCountInString(task.Description) > MaxDescriptionLength {
		return errors.NewValidationError(
			fmt.Sprintf("description must be at most %d characters long", MaxDescriptionLength), nil,
		).WithContext("field", "description")
	}
	if !IsValidStatus(task.Status) {
		return errors.NewValidationError(
			fmt.Sprintf("status %q is not one of todo, in-progress, done", task.Status), nil,
		).WithContext("field", "status")
	}
	return nil
}

// IsValidStatus reports whether s is one of the stored status values
func IsValidStatus(s string) bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusDone:
		return true
	default:
		return false
	}
}

// TaskNotFound builds the NotFound error every backend returns for a missing id
func TaskNotFound(id int64) error {
	return errors.NewNotFoundError("task", fmt.Sprintf("%d", id))
}
