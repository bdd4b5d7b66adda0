package domain

import (
	"fmt"
	"strings"

	"task-cli/internal/errors"
	"task-cli/internal/repository"
)

// Status is the lifecycle state of a task. Any status may follow any other.
type Status int

const (
	StatusTodo Status = iota
	StatusInProgress
	StatusDone
)

// AllStatuses lists every status in lifecycle order
var AllStatuses = []Status{StatusTodo, StatusInProgress, StatusDone}

// String returns the stored form of the status
func (s Status) String() string {
	switch s {
	case StatusTodo:
		return repository.StatusTodo
	case StatusInProgress:
		return repository.StatusInProgress
	case StatusDone:
		return repository.StatusDone
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Icon returns the marker shown next to a task in listings
func (s Status) Icon() string {
	switch s {
	case StatusTodo:
		return "📝"
	case StatusInProgress:
		return "🚀"
	case StatusDone:
		return "✅"
	default:
		return "?"
	}
}

// IsValid reports whether s is one of the defined statuses
func (s Status) IsValid() bool {
	return s >= StatusTodo && s <= StatusDone
}

// ParseStatus parses the stored form of a status, ignoring case and surrounding space
func ParseStatus(s string) (Status, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case repository.StatusTodo:
		return StatusTodo, nil
	case repository.StatusInProgress:
		return StatusInProgress, nil
	case repository.StatusDone:
		return StatusDone, nil
	default:
		return StatusTodo, errors.NewValidationError(
			fmt.Sprintf("unknown status %q: use todo, in-progress or done", s), nil,
		).WithContext("field", "status")
	}
}
