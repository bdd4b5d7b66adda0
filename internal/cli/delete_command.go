package cli

import (
	"context"
)

// DeleteCommand handles the delete command
type DeleteCommand struct {
	app *App
}

// NewDeleteCommand creates a new delete command handler
func NewDeleteCommand(app *App) *DeleteCommand {
	return &DeleteCommand{app: app}
}

// Execute runs the delete command
func (c *DeleteCommand) Execute(ctx context.Context, args []string) error {
	id, err := c.app.readTaskID(args, "Enter the task ID to delete")
	if err != nil {
		return c.app.fail("delete task", err)
	}

	err = c.app.withTimeout(ctx, func(ctx context.Context) error {
		return c.app.taskService.DeleteTask(ctx, id)
	})
	if err != nil {
		return c.app.fail("delete task", err)
	}

	c.app.printer.Success("Task deleted successfully (ID:%d) 🎉", id)
	return nil
}
