package cli

import (
	"context"
	"strings"

	"task-cli/internal/domain"
)

// ListCommand handles the list command
type ListCommand struct {
	app *App
}

// NewListCommand creates a new list command handler
func NewListCommand(app *App) *ListCommand {
	return &ListCommand{app: app}
}

// Execute runs the list command. An optional first argument narrows the
// listing to one status.
func (c *ListCommand) Execute(ctx context.Context, args []string) error {
	var rawStatus string
	if len(args) > 0 {
		rawStatus = strings.ToLower(args[0])
	}

	filter, err := c.app.validator.ParseStatusFilter(rawStatus)
	if err != nil {
		return c.app.fail("list tasks", err)
	}

	var tasks []domain.Task
	err = c.app.withTimeout(ctx, func(ctx context.Context) error {
		tasks, err = c.app.taskService.ListTasks(ctx, filter)
		return err
	})
	if err != nil {
		return c.app.fail("list tasks", err)
	}

	if len(tasks) == 0 {
		c.app.printer.Infoln("No tasks available.")
		return nil
	}

	now := c.app.now()
	for _, task := range tasks {
		c.app.printer.Plain(task.Format(now) + "\n")
	}
	return nil
}
