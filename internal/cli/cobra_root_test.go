package cli

import (
	"bytes"
	"context"
	stderrors "errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"task-cli/internal/config"
	"task-cli/internal/errors"
	"task-cli/internal/repository"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.NewConfig()
	cfg.Environment = config.Development
	cfg.Database.URI = "sqlite://" + filepath.Join(t.TempDir(), "tasks.db")
	return cfg
}

// execute runs one process-like invocation against cfg
func execute(t *testing.T, cfg *config.Config, input string, args ...string) (string, error) {
	t.Helper()
	color.NoColor = true

	out := &bytes.Buffer{}
	root := NewRootCommandWith(cfg, config.CreateRepository, strings.NewReader(input), out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestRootCommand_ExampleSession(t *testing.T) {
	cfg := testConfig(t)

	out, err := execute(t, cfg, "", "add", "Buy milk")
	require.NoError(t, err)
	assert.Equal(t, "Task added successfully (ID:1) 🎉\n", out)

	out, err = execute(t, cfg, "", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Buy milk")
	assert.Contains(t, out, "TODO")

	out, err = execute(t, cfg, "", "mark-done", "1")
	require.NoError(t, err)
	assert.Equal(t, "'Buy milk' has been completed 🎉\n", out)

	out, err = execute(t, cfg, "", "list", "done")
	require.NoError(t, err)
	assert.Contains(t, out, "Buy milk")

	out, err = execute(t, cfg, "", "delete", "1")
	require.NoError(t, err)
	assert.Equal(t, "Task deleted successfully (ID:1) 🎉\n", out)

	out, err = execute(t, cfg, "", "list")
	require.NoError(t, err)
	assert.Equal(t, "No tasks available.\n", out)
}

func TestRootCommand_InteractiveAdd(t *testing.T) {
	cfg := testConfig(t)

	out, err := execute(t, cfg, "\nWalk dog\n", "add")
	require.NoError(t, err)
	assert.Equal(t, "Enter the task name:\n>> Enter the task name:\n>> Task added successfully (ID:1) 🎉\n", out)
}

func TestRootCommand_CommandFailuresExitCleanly(t *testing.T) {
	cfg := testConfig(t)

	out, err := execute(t, cfg, "", "update", "3", "text")
	require.NoError(t, err)
	assert.Equal(t, "No task with id 3 found\n", out)
}

func TestRootCommand_DBURIFlag(t *testing.T) {
	cfg := testConfig(t)
	other := "sqlite://" + filepath.Join(t.TempDir(), "nested", "other.db")

	_, err := execute(t, cfg, "", "--db-uri", other, "add", "Elsewhere")
	require.NoError(t, err)
	assert.Equal(t, other, cfg.Database.URI)

	otherCfg := testConfig(t)
	otherCfg.Database.URI = other
	out, err := execute(t, otherCfg, "", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Elsewhere")
}

func TestRootCommand_FlagOverrides(t *testing.T) {
	cfg := testConfig(t)

	_, err := execute(t, cfg, "", "--db-query-timeout", "3s", "--app-timeout", "1m", "--description-max-length", "20", "--no-color", "list")
	require.NoError(t, err)

	assert.Equal(t, 3*time.Second, cfg.Database.QueryTimeout)
	assert.Equal(t, time.Minute, cfg.Application.Timeout)
	assert.Equal(t, 20, cfg.Validation.DescriptionMaxLength)
	assert.True(t, cfg.Display.NoColor)

	out, err := execute(t, cfg, "", "add", strings.Repeat("x", 21))
	require.NoError(t, err)
	assert.Contains(t, out, "Something went wrong!")
}

func TestRootCommand_InvalidFlagValue(t *testing.T) {
	cfg := testConfig(t)

	_, err := execute(t, cfg, "", "--db-uri", "redis://localhost", "list")
	require.Error(t, err)

	var configErr *config.ConfigError
	require.ErrorAs(t, err, &configErr)
	assert.Equal(t, "database.uri", configErr.Field)
}

func TestRootCommand_StoreUnavailable(t *testing.T) {
	cfg := testConfig(t)
	failing := func(ctx context.Context, cfg *config.Config) (repository.Repository, error) {
		return nil, errors.NewConnectivityError("postgres://db.internal/tasks", stderrors.New("connection refused"))
	}

	color.NoColor = true
	out := &bytes.Buffer{}
	root := NewRootCommandWith(cfg, failing, strings.NewReader(""), out)
	root.SetArgs([]string{"add", "Buy milk"})

	require.NoError(t, root.Execute())
	assert.Equal(t, "Something went wrong! cannot reach task store at postgres://db.internal/tasks\n", out.String())
}

func TestRootCommand_StoreConfigErrorIsReturned(t *testing.T) {
	cfg := testConfig(t)
	misconfigured := func(ctx context.Context, cfg *config.Config) (repository.Repository, error) {
		return nil, &config.ConfigError{Field: "database.uri", Message: "sqlite URI has no file path"}
	}

	out := &bytes.Buffer{}
	root := NewRootCommandWith(cfg, misconfigured, strings.NewReader(""), out)
	root.SetArgs([]string{"list"})

	err := root.Execute()
	var configErr *config.ConfigError
	require.ErrorAs(t, err, &configErr)
	assert.Equal(t, "database.uri", configErr.Field)
	assert.Empty(t, out.String())
}

// slowReader delivers its data only after a delay, like a user thinking at a prompt
type slowReader struct {
	delay time.Duration
	data  *strings.Reader
}

func (s *slowReader) Read(p []byte) (int, error) {
	time.Sleep(s.delay)
	return s.data.Read(p)
}

func TestRootCommand_AppTimeoutExcludesPromptTime(t *testing.T) {
	color.NoColor = true
	cfg := testConfig(t)
	cfg.Application.Timeout = 50 * time.Millisecond

	out := &bytes.Buffer{}
	in := &slowReader{delay: 150 * time.Millisecond, data: strings.NewReader("Walk dog\n")}
	root := NewRootCommandWith(cfg, config.CreateRepository, in, out)
	root.SetArgs([]string{"add"})

	require.NoError(t, root.Execute())
	assert.Equal(t, "Enter the task name:\n>> Task added successfully (ID:1) 🎉\n", out.String())
}

func TestRootCommand_HelpDoesNotOpenStore(t *testing.T) {
	cfg := testConfig(t)
	opened := false
	opener := func(ctx context.Context, cfg *config.Config) (repository.Repository, error) {
		opened = true
		return nil, stderrors.New("should not be called")
	}

	out := &bytes.Buffer{}
	root := NewRootCommandWith(cfg, opener, strings.NewReader(""), out)
	root.SetArgs([]string{"help"})

	require.NoError(t, root.Execute())
	assert.False(t, opened)
	assert.Contains(t, out.String(), "mark-in-progress")
}

func TestRootCommand_TooManyArguments(t *testing.T) {
	cfg := testConfig(t)

	_, err := execute(t, cfg, "", "delete", "1", "2")
	assert.Error(t, err)
}

// closeTrackingRepository reports whether the command closed its store
type closeTrackingRepository struct {
	repository.Repository
	closed bool
}

func (r *closeTrackingRepository) Close() error {
	r.closed = true
	return r.Repository.Close()
}

func TestRootCommand_ClosesStore(t *testing.T) {
	cfg := testConfig(t)
	tracked := &closeTrackingRepository{}
	opener := func(ctx context.Context, cfg *config.Config) (repository.Repository, error) {
		repo, err := config.CreateTestRepository(ctx)
		if err != nil {
			return nil, err
		}
		tracked.Repository = repo
		return tracked, nil
	}

	root := NewRootCommandWith(cfg, opener, strings.NewReader(""), &bytes.Buffer{})
	root.SetArgs([]string{"list"})

	require.NoError(t, root.Execute())
	assert.True(t, tracked.closed)
}
