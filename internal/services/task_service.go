package services

import (
	"context"
	"time"

	"task-cli/internal/config"
	"task-cli/internal/domain"
	"task-cli/internal/errors"
	"task-cli/internal/logging"
	"task-cli/internal/repository"
	"task-cli/internal/validation"
)

// taskServiceImpl implements the TaskService interface
type taskServiceImpl struct {
	repo          repository.Repository
	mapper        *domain.Mapper
	taskValidator *validation.TaskValidator
	queryTimeout  time.Duration
	now           func() time.Time
}

// NewTaskService creates a new TaskService instance. A nil config uses the defaults.
func NewTaskService(repo repository.Repository, cfg *config.Config) TaskService {
	return newTaskService(repo, cfg, time.Now)
}

func newTaskService(repo repository.Repository, cfg *config.Config, now func() time.Time) *taskServiceImpl {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	return &taskServiceImpl{
		repo:          repo,
		mapper:        domain.NewMapper(),
		taskValidator: validation.NewTaskValidatorWithConfig(cfg),
		queryTimeout:  cfg.GetQueryTimeout(),
		now:           now,
	}
}

// NewServiceContainer wires every service around a single repository
func NewServiceContainer(repo repository.Repository, cfg *config.Config) *ServiceContainer {
	return &ServiceContainer{
		TaskService: NewTaskService(repo, cfg),
	}
}

// withTimeout bounds a single store call by the configured query timeout
func (t *taskServiceImpl) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if t.queryTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, t.queryTimeout)
}

// validateDescription trims a description and checks it against the configured limits
func (t *taskServiceImpl) validateDescription(description string) (string, error) {
	trimmed, err := t.taskValidator.GetValidDescription(description)
	if err != nil {
		if ve, ok := validation.AsValidationError(err); ok {
			return "", ve.ToAppError()
		}
		return "", err
	}
	return trimmed, nil
}

// loadTask fetches a task and converts it to the domain model
func (t *taskServiceImpl) loadTask(ctx context.Context, id int64) (*domain.Task, error) {
	ctx, cancel := t.withTimeout(ctx)
	defer cancel()

	record, err := t.repo.GetTask(ctx, id)
	if err != nil {
		return nil, err
	}

	task, err := t.mapper.Task.FromRecord(record)
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// saveTask writes an existing task back to the store
func (t *taskServiceImpl) saveTask(ctx context.Context, task *domain.Task) error {
	ctx, cancel := t.withTimeout(ctx)
	defer cancel()

	return t.repo.UpdateTask(ctx, t.mapper.Task.ToRecord(*task))
}

// AddTask creates a todo task with the given description
func (t *taskServiceImpl) AddTask(ctx context.Context, description string) (*domain.Task, error) {
	trimmed, err := t.validateDescription(description)
	if err != nil {
		return nil, err
	}

	task, err := domain.NewTask(trimmed, t.now())
	if err != nil {
		return nil, err
	}

	record := t.mapper.Task.ToRecord(task)

	ctx, cancel := t.withTimeout(ctx)
	defer cancel()

	if err := t.repo.CreateTask(ctx, record); err != nil {
		return nil, err
	}

	task.ID = record.ID
	logging.Debug("task added", "id", task.ID)
	return &task, nil
}

// GetTask retrieves a task by its ID
func (t *taskServiceImpl) GetTask(ctx context.Context, id int64) (*domain.Task, error) {
	if id < 0 {
		return nil, errors.NewInvalidInputError("task_id", id, "must not be negative")
	}
	return t.loadTask(ctx, id)
}

// UpdateDescription replaces a task's description and stamps its update time
func (t *taskServiceImpl) UpdateDescription(ctx context.Context, id int64, description string) (*domain.Task, error) {
	trimmed, err := t.validateDescription(description)
	if err != nil {
		return nil, err
	}

	task, err := t.GetTask(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := task.SetDescription(trimmed, t.now()); err != nil {
		return nil, err
	}

	if err := t.saveTask(ctx, task); err != nil {
		return nil, err
	}

	logging.Debug("task description updated", "id", task.ID)
	return task, nil
}

// DeleteTask removes a task. Its id is never handed out again.
func (t *taskServiceImpl) DeleteTask(ctx context.Context, id int64) error {
	if id < 0 {
		return errors.NewInvalidInputError("task_id", id, "must not be negative")
	}

	ctx, cancel := t.withTimeout(ctx)
	defer cancel()

	if err := t.repo.DeleteTask(ctx, id); err != nil {
		return err
	}

	logging.Debug("task deleted", "id", id)
	return nil
}

// MarkInProgress moves a task to in-progress
func (t *taskServiceImpl) MarkInProgress(ctx context.Context, id int64) (*domain.Task, error) {
	return t.setStatus(ctx, id, domain.StatusInProgress)
}

// MarkDone moves a task to done
func (t *taskServiceImpl) MarkDone(ctx context.Context, id int64) (*domain.Task, error) {
	return t.setStatus(ctx, id, domain.StatusDone)
}

func (t *taskServiceImpl) setStatus(ctx context.Context, id int64, status domain.Status) (*domain.Task, error) {
	task, err := t.GetTask(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := task.SetStatus(status); err != nil {
		return nil, err
	}

	if err := t.saveTask(ctx, task); err != nil {
		return nil, err
	}

	logging.Debug("task status changed", "id", task.ID, "status", status.String())
	return task, nil
}

// ListTasks returns tasks in store order, optionally narrowed by status
func (t *taskServiceImpl) ListTasks(ctx context.Context, filter domain.ListFilter) ([]domain.Task, error) {
	ctx, cancel := t.withTimeout(ctx)
	defer cancel()

	records, err := t.repo.ListTasks(ctx, t.mapper.ListFilter.ToOptions(filter))
	if err != nil {
		return nil, err
	}

	return t.mapper.Task.FromRecordSlice(records)
}
