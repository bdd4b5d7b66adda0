package services

import (
	"context"

	"task-cli/internal/domain"
)

// TaskService handles task lifecycle operations on top of the task store
type TaskService interface {
	// Task CRUD operations
	AddTask(ctx context.Context, description string) (*domain.Task, error)
	GetTask(ctx context.Context, id int64) (*domain.Task, error)
	UpdateDescription(ctx context.Context, id int64, description string) (*domain.Task, error)
	DeleteTask(ctx context.Context, id int64) error

	// Status transitions
	MarkInProgress(ctx context.Context, id int64) (*domain.Task, error)
	MarkDone(ctx context.Context, id int64) (*domain.Task, error)

	// Listing
	ListTasks(ctx context.Context, filter domain.ListFilter) ([]domain.Task, error)
}

// ServiceContainer manages all services and their dependencies
type ServiceContainer struct {
	TaskService TaskService
}
