package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeleteCommand_Execute(t *testing.T) {
	ta := setupTestApp(t, "")
	ta.run(t, "add", "Task 1")
	ta.run(t, "add", "Task 2")
	ta.run(t, "add", "Task 3")

	out := ta.run(t, "delete", "2")
	assert.Equal(t, "Task deleted successfully (ID:2) 🎉\n", out)

	tasks := ta.tasks(t)
	require.Len(t, tasks, 2)
	assert.Equal(t, int64(1), tasks[0].ID)
	assert.Equal(t, int64(3), tasks[1].ID)

	out = ta.run(t, "delete", "2")
	assert.Equal(t, "No task with id 2 found\n", out)
	assert.Len(t, ta.tasks(t), 2)
}

func TestDeleteCommand_PromptsForID(t *testing.T) {
	ta := setupTestApp(t, "\n1\n")
	ta.run(t, "add", "Task 1")
	ta.out.Reset()

	err := NewDeleteCommand(ta.app).Execute(context.Background(), nil)
	require.NoError(t, err)

	assert.Contains(t, ta.out.String(), "Enter the task ID to delete")
	assert.Contains(t, ta.out.String(), "Task deleted successfully (ID:1) 🎉")
	assert.Empty(t, ta.tasks(t))
}
