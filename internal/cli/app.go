package cli

import (
	"context"
	"io"
	"time"

	"task-cli/internal/config"
	"task-cli/internal/errors"
	"task-cli/internal/services"
	"task-cli/internal/validation"
)

// App represents the main CLI application
type App struct {
	taskService  services.TaskService
	validator    *validation.TaskValidator
	printer      *Printer
	input        LineReader
	errorHandler *ErrorHandler
	now          func() time.Time
	timeout      time.Duration
	registry     *CommandRegistry
}

// defaultAppTimeout bounds the store work of a command when no configuration is given
const defaultAppTimeout = 5 * time.Minute

// NewApp creates a new CLI application instance with dependency injection
func NewApp(taskService services.TaskService, out io.Writer, in io.Reader) *App {
	return NewAppWithConfig(taskService, nil, out, in)
}

// NewAppWithConfig creates an application whose input checks honour cfg. A nil
// cfg uses the defaults.
func NewAppWithConfig(taskService services.TaskService, cfg *config.Config, out io.Writer, in io.Reader) *App {
	validator := validation.NewTaskValidator()
	timeout := defaultAppTimeout
	if cfg != nil {
		validator = validation.NewTaskValidatorWithConfig(cfg)
		if cfg.Application.Timeout > 0 {
			timeout = cfg.Application.Timeout
		}
	}

	app := &App{
		taskService:  taskService,
		validator:    validator,
		printer:      NewPrinter(out),
		input:        NewLineReader(in),
		errorHandler: NewErrorHandler(),
		now:          time.Now,
		timeout:      timeout,
	}
	app.registry = NewCommandRegistry(app)
	return app
}

// Registry exposes the commands the application understands
func (a *App) Registry() *CommandRegistry {
	return a.registry
}

// Run executes a single command; args[0] names the command
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errors.NewInvalidInputError("command", "", a.registry.GetUsage())
	}

	commandName := args[0]
	commandArgs := args[1:]

	return a.registry.Execute(ctx, commandName, commandArgs)
}

// fail prints the failure line for operation. Command failures are reported,
// never returned, so the process still exits cleanly.
func (a *App) fail(operation string, err error) error {
	a.errorHandler.Report(a.printer, operation, err)
	return nil
}

// withTimeout runs fn under the application timeout. The deadline starts when
// fn is called, so time spent at an interactive prompt does not count.
func (a *App) withTimeout(ctx context.Context, fn func(ctx context.Context) error) error {
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()
	return fn(ctx)
}

// readTaskID takes the id from args or asks for it, then parses it
func (a *App) readTaskID(args []string, question string) (int64, error) {
	raw, err := argOrPrompt(a.printer, a.input, args, question)
	if err != nil {
		return 0, err
	}
	return a.validator.ParseTaskID(raw)
}

func restArgs(args []string) []string {
	if len(args) < 2 {
		return nil
	}
	return args[1:]
}
