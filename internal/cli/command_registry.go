package cli

import (
	"context"
	"strings"

	"task-cli/internal/errors"
)

// Command represents a CLI command
type Command interface {
	Execute(ctx context.Context, args []string) error
}

// CommandInfo describes a registered command for help output
type CommandInfo struct {
	Name    string
	Usage   string
	Short   string
	MaxArgs int // -1 for no limit
}

type registeredCommand struct {
	info    CommandInfo
	command Command
}

// CommandRegistry manages all available commands
type CommandRegistry struct {
	commands map[string]registeredCommand
	order    []string
}

// builtinCommands lists every command in help order
var builtinCommands = []struct {
	info  CommandInfo
	build func(app *App) Command
}{
	{CommandInfo{Name: "add", Usage: "add [description]", Short: "Add a new task to the list", MaxArgs: -1}, func(app *App) Command { return NewAddCommand(app) }},
	{CommandInfo{Name: "update", Usage: "update [task_id] [description]", Short: "Update an existing task", MaxArgs: -1}, func(app *App) Command { return NewUpdateCommand(app) }},
	{CommandInfo{Name: "delete", Usage: "delete [task_id]", Short: "Delete a task by ID", MaxArgs: 1}, func(app *App) Command { return NewDeleteCommand(app) }},
	{CommandInfo{Name: "mark-in-progress", Usage: "mark-in-progress [task_id]", Short: "Mark a task as 'In Progress'", MaxArgs: 1}, func(app *App) Command { return NewMarkInProgressCommand(app) }},
	{CommandInfo{Name: "mark-done", Usage: "mark-done [task_id]", Short: "Mark a task as 'Done'", MaxArgs: 1}, func(app *App) Command { return NewMarkDoneCommand(app) }},
	{CommandInfo{Name: "list", Usage: "list [status]", Short: "List all tasks", MaxArgs: 1}, func(app *App) Command { return NewListCommand(app) }},
}

// BuiltinCommands describes the commands every application registers
func BuiltinCommands() []CommandInfo {
	infos := make([]CommandInfo, 0, len(builtinCommands))
	for _, builtin := range builtinCommands {
		infos = append(infos, builtin.info)
	}
	return infos
}

// NewCommandRegistry creates a new command registry
func NewCommandRegistry(app *App) *CommandRegistry {
	registry := &CommandRegistry{
		commands: make(map[string]registeredCommand),
	}

	// Register all commands
	for _, builtin := range builtinCommands {
		registry.Register(builtin.info, builtin.build(app))
	}

	return registry
}

// Register adds a command to the registry
func (r *CommandRegistry) Register(info CommandInfo, command Command) {
	if _, exists := r.commands[info.Name]; !exists {
		r.order = append(r.order, info.Name)
	}
	r.commands[info.Name] = registeredCommand{info: info, command: command}
}

// Commands lists registered commands in registration order
func (r *CommandRegistry) Commands() []CommandInfo {
	infos := make([]CommandInfo, 0, len(r.order))
	for _, name := range r.order {
		infos = append(infos, r.commands[name].info)
	}
	return infos
}

// Execute runs the specified command with the given arguments
func (r *CommandRegistry) Execute(ctx context.Context, commandName string, args []string) error {
	registered, exists := r.commands[commandName]
	if !exists {
		return errors.NewInvalidInputError("command", commandName, "unknown command")
	}
	return registered.command.Execute(ctx, args)
}

// GetUsage returns the usage string for the CLI
func (r *CommandRegistry) GetUsage() string {
	usages := make([]string, 0, len(r.order))
	for _, info := range r.Commands() {
		usages = append(usages, "task-cli "+info.Usage)
	}
	return "usage: " + strings.Join(usages, " or ")
}
