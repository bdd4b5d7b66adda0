package repository

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"task-cli/internal/errors"
)

func TestValidateRecord(t *testing.T) {
	now := time.Now()
	tests := []struct {
		name      string
		task      *Task
		wantField string
	}{
		{name: "valid todo", task: &Task{Description: "Buy milk", Status: StatusTodo, CreatedAt: now}},
		{name: "valid done", task: &Task{Description: "Ship it", Status: StatusDone, CreatedAt: now}},
		{name: "exactly max length", task: &Task{Description: strings.Repeat("a", MaxDescriptionLength), Status: StatusTodo}},
		{name: "max length in multibyte runes", task: &Task{Description: strings.Repeat("é", MaxDescriptionLength), Status: StatusTodo}},
		{name: "empty description", task: &Task{Description: "", Status: StatusTodo}, wantField: "description"},
		{name: "too long", task: &Task{Description: strings.Repeat("a", MaxDescriptionLength+1), Status: StatusTodo}, wantField: "description"},
		{name: "unknown status", task: &Task{Description: "x", Status: "blocked"}, wantField: "status"},
		{name: "uppercase status", task: &Task{Description: "x", Status: "TODO"}, wantField: "status"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRecord(tt.task)
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			appErr, ok := errors.AsAppError(err)
			if assert.True(t, ok) {
				assert.Equal(t, errors.ErrorTypeValidation, appErr.Type)
				field, _ := appErr.GetContext("field")
				assert.Equal(t, tt.wantField, field)
			}
		})
	}
}

func TestTaskNotFound(t *testing.T) {
	err := TaskNotFound(12)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNotFound))
	assert.Contains(t, err.Error(), "task not found: 12")
}
