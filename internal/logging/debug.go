package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
)

var (
	mu         sync.Mutex
	forceDebug bool
	output     io.Writer = os.Stderr
	logger     *slog.Logger
)

// DebugEnabled returns true if debug mode is enabled via TASK_CLI_DEBUG or SetDebug
func DebugEnabled() bool {
	mu.Lock()
	defer mu.Unlock()
	return forceDebug || os.Getenv("TASK_CLI_DEBUG") != ""
}

// SetDebug turns debug output on regardless of the environment (--verbose)
func SetDebug(enabled bool) {
	mu.Lock()
	defer mu.Unlock()
	forceDebug = enabled
	logger = nil
}

// SetOutput redirects debug output; nil restores stderr
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	if w == nil {
		w = os.Stderr
	}
	output = w
	logger = nil
}

// Logger returns the debug logger. When debug mode is off every record is dropped.
func Logger() *slog.Logger {
	enabled := DebugEnabled()

	mu.Lock()
	defer mu.Unlock()
	if logger == nil || logger.Enabled(context.Background(), slog.LevelDebug) != enabled {
		level := slog.LevelError + 1
		if enabled {
			level = slog.LevelDebug
		}
		logger = slog.New(slog.NewTextHandler(output, &slog.HandlerOptions{Level: level}))
	}
	return logger
}

// Debug logs a structured debug record
func Debug(msg string, args ...any) {
	Logger().Debug(msg, args...)
}

// Debugf prints a formatted debug message only if debug mode is enabled
func Debugf(format string, args ...interface{}) {
	if DebugEnabled() {
		Logger().Debug(strings.TrimRight(fmt.Sprintf(format, args...), "\n"))
	}
}

// Debugln prints a debug message only if debug mode is enabled
func Debugln(args ...interface{}) {
	if DebugEnabled() {
		Logger().Debug(strings.TrimRight(fmt.Sprintln(args...), "\n"))
	}
}
