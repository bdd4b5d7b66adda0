package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"task-cli/internal/repository"
)

func TestTaskMapper_ToRecord(t *testing.T) {
	mapper := NewTaskMapper()
	updated := testNow.Add(time.Hour)
	task := Task{
		ID:          1,
		Description: "Test Task",
		Status:      StatusInProgress,
		CreatedAt:   testNow,
		UpdatedAt:   &updated,
	}

	result := mapper.ToRecord(task)

	expected := &repository.Task{
		ID:          1,
		Description: "Test Task",
		Status:      "in-progress",
		CreatedAt:   testNow,
		UpdatedAt:   &updated,
	}
	assert.Equal(t, expected, result)
}

func TestTaskMapper_FromRecord(t *testing.T) {
	mapper := NewTaskMapper()
	record := &repository.Task{
		ID:          1,
		Description: "Test Task",
		Status:      "done",
		CreatedAt:   testNow,
	}

	result, err := mapper.FromRecord(record)
	require.NoError(t, err)

	expected := Task{
		ID:          1,
		Description: "Test Task",
		Status:      StatusDone,
		CreatedAt:   testNow,
	}
	assert.Equal(t, expected, result)

	_, err = mapper.FromRecord(&repository.Task{ID: 2, Description: "x", Status: "archived"})
	assert.Error(t, err)
}

func TestTaskMapper_FromRecordSlice(t *testing.T) {
	mapper := NewTaskMapper()

	empty, err := mapper.FromRecordSlice(nil)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	tasks, err := mapper.FromRecordSlice([]*repository.Task{
		{ID: 1, Description: "a", Status: "todo", CreatedAt: testNow},
		{ID: 2, Description: "b", Status: "done", CreatedAt: testNow},
	})
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, StatusTodo, tasks[0].Status)
	assert.Equal(t, StatusDone, tasks[1].Status)
}

func TestListFilterMapper_ToOptions(t *testing.T) {
	mapper := NewMapper()

	opts := mapper.ListFilter.ToOptions(ListFilter{})
	assert.Nil(t, opts.Status)

	opts = mapper.ListFilter.ToOptions(ByStatus(StatusInProgress))
	require.NotNil(t, opts.Status)
	assert.Equal(t, "in-progress", *opts.Status)
}
