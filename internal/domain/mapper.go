package domain

import (
	"task-cli/internal/repository"
)

// TaskMapper handles conversion between domain and stored Task models.
type TaskMapper struct{}

// NewTaskMapper creates a new TaskMapper instance.
func NewTaskMapper() *TaskMapper {
	return &TaskMapper{}
}

// ToRecord converts a domain Task to a stored Task.
func (m *TaskMapper) ToRecord(task Task) *repository.Task {
	return &repository.Task{
		ID:          task.ID,
		Description: task.Description,
		Status:      task.Status.String(),
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
	}
}

// FromRecord converts a stored Task to a domain Task. Records carrying an
// unknown status are rejected.
func (m *TaskMapper) FromRecord(record *repository.Task) (Task, error) {
	status, err := ParseStatus(record.Status)
	if err != nil {
		return Task{}, err
	}
	return Task{
		ID:          record.ID,
		Description: record.Description,
		Status:      status,
		CreatedAt:   record.CreatedAt,
		UpdatedAt:   record.UpdatedAt,
	}, nil
}

// FromRecordSlice converts a slice of stored Tasks to domain Tasks.
func (m *TaskMapper) FromRecordSlice(records []*repository.Task) ([]Task, error) {
	tasks := make([]Task, 0, len(records))
	for _, record := range records {
		task, err := m.FromRecord(record)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	return tasks, nil
}

// ListFilterMapper converts listing filters into store options.
type ListFilterMapper struct{}

// NewListFilterMapper creates a new ListFilterMapper instance.
func NewListFilterMapper() *ListFilterMapper {
	return &ListFilterMapper{}
}

// ToOptions converts a domain ListFilter to repository ListOptions.
func (m *ListFilterMapper) ToOptions(filter ListFilter) repository.ListOptions {
	if filter.Status == nil {
		return repository.ListOptions{}
	}
	status := filter.Status.String()
	return repository.ListOptions{Status: &status}
}

// Mapper provides a unified interface for all mapping operations.
type Mapper struct {
	Task       *TaskMapper
	ListFilter *ListFilterMapper
}

// NewMapper creates a new Mapper instance with all sub-mappers.
func NewMapper() *Mapper {
	return &Mapper{
		Task:       NewTaskMapper(),
		ListFilter: NewListFilterMapper(),
	}
}
