package cli

import (
	"context"

	"task-cli/internal/domain"
)

// UpdateCommand handles the update command
type UpdateCommand struct {
	app *App
}

// NewUpdateCommand creates a new update command handler
func NewUpdateCommand(app *App) *UpdateCommand {
	return &UpdateCommand{app: app}
}

// Execute runs the update command. The task must exist before a missing
// description is asked for.
func (c *UpdateCommand) Execute(ctx context.Context, args []string) error {
	id, err := c.app.readTaskID(args, "Enter the task ID to update")
	if err != nil {
		return c.app.fail("update task", err)
	}

	err = c.app.withTimeout(ctx, func(ctx context.Context) error {
		_, err := c.app.taskService.GetTask(ctx, id)
		return err
	})
	if err != nil {
		return c.app.fail("update task", err)
	}

	description, err := joinedArgsOrPrompt(c.app.printer, c.app.input, restArgs(args), "Enter the task name")
	if err != nil {
		return c.app.fail("update task", err)
	}

	var task *domain.Task
	err = c.app.withTimeout(ctx, func(ctx context.Context) error {
		task, err = c.app.taskService.UpdateDescription(ctx, id, description)
		return err
	})
	if err != nil {
		return c.app.fail("update task", err)
	}

	c.app.printer.Success("Task updated successfully (ID:%d) 🎉", task.ID)
	return nil
}
