package cli

import (
	"context"
	"fmt"

	"task-cli/internal/domain"
	"task-cli/internal/errors"
)

// MarkCommand sets the status of a task
type MarkCommand struct {
	app    *App
	status domain.Status
}

// NewMarkInProgressCommand creates the mark-in-progress handler
func NewMarkInProgressCommand(app *App) *MarkCommand {
	return &MarkCommand{app: app, status: domain.StatusInProgress}
}

// NewMarkDoneCommand creates the mark-done handler
func NewMarkDoneCommand(app *App) *MarkCommand {
	return &MarkCommand{app: app, status: domain.StatusDone}
}

// Execute runs the command
func (c *MarkCommand) Execute(ctx context.Context, args []string) error {
	operation := "mark task " + c.status.String()

	id, err := c.app.readTaskID(args, "Enter the task ID to update")
	if err != nil {
		return c.app.fail(operation, err)
	}

	var task *domain.Task
	err = c.app.withTimeout(ctx, func(ctx context.Context) error {
		task, err = c.mark(ctx, id)
		return err
	})
	if err != nil {
		return c.app.fail(operation, err)
	}

	c.app.printer.Success("%s", c.confirmation(task))
	return nil
}

func (c *MarkCommand) mark(ctx context.Context, id int64) (*domain.Task, error) {
	switch c.status {
	case domain.StatusInProgress:
		return c.app.taskService.MarkInProgress(ctx, id)
	case domain.StatusDone:
		return c.app.taskService.MarkDone(ctx, id)
	case domain.StatusTodo:
		return nil, errors.NewInvalidInputError("status", c.status.String(), "tasks cannot be marked todo")
	default:
		return nil, errors.NewInvalidInputError("status", c.status.String(), "unknown task status")
	}
}

func (c *MarkCommand) confirmation(task *domain.Task) string {
	switch c.status {
	case domain.StatusInProgress:
		return fmt.Sprintf("%s is in progress", task.Description)
	case domain.StatusDone:
		return fmt.Sprintf("'%s' has been completed 🎉", task.Description)
	case domain.StatusTodo:
		return fmt.Sprintf("%s is todo", task.Description)
	default:
		panic(fmt.Sprintf("unreachable: mark command built with %v", c.status))
	}
}
