package cli

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"task-cli/internal/config"
	"task-cli/internal/logging"
	"task-cli/internal/repository"
	"task-cli/internal/services"
)

// storeAnnotation marks commands that need an open task store
const storeAnnotation = "task-cli/store"

// RepositoryOpener opens the task store selected by the configuration
type RepositoryOpener func(ctx context.Context, cfg *config.Config) (repository.Repository, error)

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd    *cobra.Command
	config *config.Config
	open   RepositoryOpener
	in     io.Reader
	out    io.Writer

	repo repository.Repository
	app  *App
}

// NewRootCommand creates the root cobra command wired to the terminal
func NewRootCommand(cfg *config.Config) *RootCommand {
	return NewRootCommandWith(cfg, config.CreateRepository, os.Stdin, os.Stdout)
}

// NewRootCommandWith creates the root cobra command with an explicit store
// opener and terminal streams
func NewRootCommandWith(cfg *config.Config, open RepositoryOpener, in io.Reader, out io.Writer) *RootCommand {
	root := &RootCommand{
		config: cfg,
		open:   open,
		in:     in,
		out:    out,
	}

	root.cmd = &cobra.Command{
		Use:   "task-cli",
		Short: "Task Manager CLI - Manage your tasks easily",
		Long: `task-cli keeps a personal list of short tasks, each either todo,
in-progress or done.

EXAMPLES:
  task-cli add "Buy milk"                  # Add a task
  task-cli update 1 "Buy oat milk"         # Change a task's description
  task-cli mark-in-progress 1              # Start working on a task
  task-cli mark-done 1                     # Complete a task
  task-cli list done                       # List completed tasks
  task-cli delete 1                        # Delete a task

Arguments left out are asked for interactively.

CONFIGURATION:
  Configuration follows this priority order: command-line flags > environment variables > .env file > defaults

    TASK_CLI_DB_URI                        Task store (default: sqlite://~/.task-cli/tasks.db)
                                           sqlite://, postgres://, mysql:// and mongodb:// are supported
    TASK_CLI_DB_QUERY_TIMEOUT              Store call timeout (default: 10s)
    TASK_CLI_DB_DIR_PERMISSIONS            Permissions of a new SQLite directory (default: 0755)
    TASK_CLI_DESCRIPTION_MAX               Longest accepted description (default: 500)
    TASK_CLI_APP_TIMEOUT                   Whole command timeout (default: 5m)
    TASK_CLI_NO_COLOR                      Disable colored output (default: false)
    TASK_CLI_DEBUG                         Enable debug logging on stderr`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := root.getConfigFromFlags(); err != nil {
				return err
			}
			if cmd.Annotations[storeAnnotation] != "true" {
				return nil
			}
			return root.openStore(cmd.Context())
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return root.closeStore()
		},
	}

	root.cmd.SetOut(out)
	root.cmd.SetIn(in)

	root.addGlobalFlags()
	root.addSubcommands()

	return root
}

// Execute runs the root command
func (r *RootCommand) Execute() error {
	return r.cmd.Execute()
}

// SetArgs overrides the arguments read from os.Args
func (r *RootCommand) SetArgs(args []string) {
	r.cmd.SetArgs(args)
}

// addGlobalFlags adds global configuration flags
func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()

	// Store configuration
	flags.String("db-uri", "", "Task store URI (overrides TASK_CLI_DB_URI)")
	flags.Duration("db-query-timeout", 0, "Store call timeout (overrides TASK_CLI_DB_QUERY_TIMEOUT)")

	// Validation configuration
	flags.Int("description-max-length", 0, "Longest accepted description (overrides TASK_CLI_DESCRIPTION_MAX)")

	// Display configuration
	flags.Bool("no-color", false, "Disable colored output (overrides TASK_CLI_NO_COLOR)")

	// Application configuration
	flags.Duration("app-timeout", 0, "Whole command timeout (overrides TASK_CLI_APP_TIMEOUT)")
	flags.Bool("verbose", false, "Enable debug logging (overrides TASK_CLI_DEBUG)")
}

// addSubcommands creates one cobra command per registered command
func (r *RootCommand) addSubcommands() {
	for _, info := range BuiltinCommands() {
		name := info.Name
		var argsCheck cobra.PositionalArgs = cobra.ArbitraryArgs
		if info.MaxArgs >= 0 {
			argsCheck = cobra.MaximumNArgs(info.MaxArgs)
		}

		r.cmd.AddCommand(&cobra.Command{
			Use:         info.Usage,
			Short:       info.Short,
			Args:        argsCheck,
			Annotations: map[string]string{storeAnnotation: "true"},
			RunE: func(cmd *cobra.Command, args []string) error {
				if r.app == nil {
					// the store could not be opened and the failure was already reported
					return nil
				}
				ctx := cmd.Context()
				if ctx == nil {
					ctx = context.Background()
				}
				return r.app.Run(ctx, append([]string{name}, args...))
			},
		})
	}
}

// openStore opens the configured store and builds the application around it.
// A store that cannot be reached is reported like any other command failure
// and leaves the command without an application to run.
func (r *RootCommand) openStore(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	r.app = nil

	repo, err := r.open(ctx, r.config)
	if err != nil {
		var configErr *config.ConfigError
		if stderrors.As(err, &configErr) {
			return configErr
		}
		NewErrorHandler().Report(NewPrinter(r.out), "open task store", err)
		return nil
	}

	r.repo = repo
	container := services.NewServiceContainer(repo, r.config)
	r.app = NewAppWithConfig(container.TaskService, r.config, r.out, r.in)
	return nil
}

// closeStore releases the store opened for the command
func (r *RootCommand) closeStore() error {
	if r.repo == nil {
		return nil
	}
	err := r.repo.Close()
	r.repo = nil
	if err != nil {
		logging.Debug("closing task store failed", "error", err)
	}
	return nil
}

// getConfigFromFlags updates the configuration with values from command-line flags
func (r *RootCommand) getConfigFromFlags() error {
	if r.config == nil {
		return fmt.Errorf("configuration not initialized")
	}

	flags := r.cmd.PersistentFlags()
	overrides := &config.ConfigOverrides{}

	if flags.Changed("db-uri") {
		uri, _ := flags.GetString("db-uri")
		overrides.DBURI = &uri
	}
	if flags.Changed("db-query-timeout") {
		timeout, _ := flags.GetDuration("db-query-timeout")
		overrides.DBQueryTimeout = &timeout
	}
	if flags.Changed("description-max-length") {
		maxLength, _ := flags.GetInt("description-max-length")
		overrides.DescriptionMaxLength = &maxLength
	}
	if flags.Changed("no-color") {
		noColor, _ := flags.GetBool("no-color")
		overrides.NoColor = &noColor
	}
	if flags.Changed("app-timeout") {
		timeout, _ := flags.GetDuration("app-timeout")
		overrides.Timeout = &timeout
	}
	if flags.Changed("verbose") {
		verbose, _ := flags.GetBool("verbose")
		overrides.Debug = &verbose
	}

	overrides.Apply(r.config)
	if err := r.config.Validate(); err != nil {
		return err
	}

	if r.config.Application.Debug {
		logging.SetDebug(true)
	}
	SetNoColor(r.config.Display.NoColor)
	return nil
}
