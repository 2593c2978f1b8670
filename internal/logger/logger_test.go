package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger_TerminalFormat(t *testing.T) {
	color.NoColor = true
	var buf bytes.Buffer
	l := New(&buf, DEBUG, false)

	l.Warn("parse", "Missing data in event: 'venues'")

	out := buf.String()
	assert.Contains(t, out, "WARN")
	assert.Contains(t, out, "[PARSE     ]")
	assert.Contains(t, out, "Missing data in event: 'venues'")
	assert.Contains(t, out, "logger_test.go:")
	assert.True(t, strings.HasSuffix(out, "\n"))
}

func TestLogger_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, DEBUG, true)

	l.Error("discovery", "boom")

	var entry LogEntry
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "ERROR", entry.Level)
	assert.Equal(t, "DISCOVERY", entry.Category)
	assert.Equal(t, "boom", entry.Message)
	assert.Equal(t, "logger_test.go", entry.File)
	assert.Positive(t, entry.Line)
}

func TestLogger_MinLevelFilters(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, WARN, true)

	l.Debug("app", "hidden")
	l.Info("app", "hidden too")
	l.Warn("app", "shown")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "shown")
}

func TestLogger_FatalExits(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, INFO, true)
	code := -1
	l.exit = func(c int) { code = c }

	l.Fatal("config", "missing key")

	assert.Equal(t, 1, code)
	assert.Contains(t, buf.String(), `"level":"FATAL"`)
}

func TestParseLevel(t *testing.T) {
	cases := map[string]LogLevel{
		"debug":   DEBUG,
		"INFO":    INFO,
		"warning": WARN,
		"Error":   ERROR,
		"fatal":   FATAL,
		"":        INFO,
		"verbose": INFO,
	}
	for in, want := range cases {
		assert.Equal(t, want, ParseLevel(in), in)
	}
}
