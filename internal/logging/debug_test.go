package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDebugEnabled(t *testing.T) {
	t.Setenv("TASK_CLI_DEBUG", "")
	SetDebug(false)
	assert.False(t, DebugEnabled(), "debug should be off when TASK_CLI_DEBUG is empty")

	t.Setenv("TASK_CLI_DEBUG", "1")
	assert.True(t, DebugEnabled(), "debug should be on when TASK_CLI_DEBUG is set")

	t.Setenv("TASK_CLI_DEBUG", "")
	SetDebug(true)
	defer SetDebug(false)
	assert.True(t, DebugEnabled(), "SetDebug should force debug on")
}

func TestDebugf(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(nil)

	t.Setenv("TASK_CLI_DEBUG", "")
	SetDebug(false)
	Debugf("hidden %s\n", "message")
	assert.Empty(t, buf.String())

	SetDebug(true)
	defer SetDebug(false)
	Debugf("visible %s\n", "message")
	assert.Contains(t, buf.String(), "visible message")
	assert.Contains(t, buf.String(), "level=DEBUG")
}

func TestDebugStructured(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(nil)

	SetDebug(true)
	defer SetDebug(false)
	Debug("task created", "id", 7)
	Debugln("migrations", "applied")

	assert.Contains(t, buf.String(), "task created")
	assert.Contains(t, buf.String(), "id=7")
	assert.Contains(t, buf.String(), "migrations applied")
}
