package cli

import (
	"context"

	"task-cli/internal/domain"
)

// AddCommand handles the add command
type AddCommand struct {
	app *App
}

// NewAddCommand creates a new add command handler
func NewAddCommand(app *App) *AddCommand {
	return &AddCommand{app: app}
}

// Execute runs the add command. Every word of args forms the description; a
// blank description is asked for until one is given.
func (c *AddCommand) Execute(ctx context.Context, args []string) error {
	description, err := joinedArgsOrPrompt(c.app.printer, c.app.input, args, "Enter the task name:")
	if err != nil {
		return c.app.fail("add task", err)
	}

	var task *domain.Task
	err = c.app.withTimeout(ctx, func(ctx context.Context) error {
		task, err = c.app.taskService.AddTask(ctx, description)
		return err
	})
	if err != nil {
		return c.app.fail("add task", err)
	}

	c.app.printer.Success("Task added successfully (ID:%d) 🎉", task.ID)
	return nil
}
