package iologger

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/ibupdater/pkg/config"
	"github.com/gnames/ibupdater/pkg/errcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func keepDefault(t *testing.T) {
	old := slog.Default()
	t.Cleanup(func() { slog.SetDefault(old) })
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"trace", slog.LevelInfo},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, parseLevel(tt.input), tt.input)
	}
}

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.LogConfig{Format: "json", Level: "debug"}
	l := New(&buf, cfg)

	l.Debug("Settings loaded", "bases", 2)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "Settings loaded", rec["msg"])
	assert.Equal(t, "DEBUG", rec["level"])
	assert.Equal(t, RunID(), rec["run_id"])
	assert.EqualValues(t, 2, rec["bases"])
}

func TestNew_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, config.LogConfig{Format: "text", Level: "warn"})

	l.Info("hidden")
	assert.Empty(t, buf.String())

	l.Warn("shown")
	assert.Contains(t, buf.String(), "shown")
	assert.Contains(t, buf.String(), "run_id="+RunID())
}

func TestInit_File(t *testing.T) {
	keepDefault(t)
	logPath := filepath.Join(t.TempDir(), "1CSimpleUpdater.log")
	cfg := config.LogConfig{Format: "text", Level: "info", Destination: "file"}

	require.NoError(t, os.WriteFile(logPath, []byte("previous run\n"), 0644))

	t.Run("append keeps previous records", func(t *testing.T) {
		require.NoError(t, Init(logPath, cfg, true))
		slog.Info("appended")

		data, err := os.ReadFile(logPath)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(string(data), "previous run\n"))
		assert.Contains(t, string(data), "appended")
	})

	t.Run("truncate starts fresh file", func(t *testing.T) {
		require.NoError(t, Init(logPath, cfg, false))
		slog.Info("fresh")

		data, err := os.ReadFile(logPath)
		require.NoError(t, err)
		assert.NotContains(t, string(data), "previous run")
		assert.Contains(t, string(data), "fresh")
	})
}

func TestInit_FileError(t *testing.T) {
	keepDefault(t)
	logPath := filepath.Join(t.TempDir(), "no", "such", "dir", "ibupdater.log")
	cfg := config.LogConfig{Format: "text", Level: "info", Destination: "file"}

	err := Init(logPath, cfg, true)
	require.Error(t, err)

	var gnErr *gn.Error
	require.True(t, errors.As(err, &gnErr))
	assert.Equal(t, errcode.CreateLogFileError, gnErr.Code)
	assert.Equal(t, logPath, gnErr.Vars[0])
}

func TestInit_Stderr(t *testing.T) {
	keepDefault(t)
	cfg := config.LogConfig{Format: "json", Level: "info", Destination: "stderr"}
	assert.NoError(t, Init("", cfg, true))
}

func TestNew_Tint(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, config.LogConfig{Format: "tint", Level: "warn"})

	l.Info("hidden")
	assert.Empty(t, buf.String())

	l.Warn("shown", "bases", 2)
	out := buf.String()
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, RunID())
}

func TestInit_ClosesPreviousFile(t *testing.T) {
	keepDefault(t)
	t.Cleanup(func() {
		if logFile != nil {
			logFile.Close()
			logFile = nil
		}
	})
	dir := t.TempDir()
	cfg := config.LogConfig{Format: "text", Level: "info", Destination: "file"}

	require.NoError(t, Init(filepath.Join(dir, "first.log"), cfg, true))
	first := logFile
	require.NotNil(t, first)

	require.NoError(t, Init(filepath.Join(dir, "second.log"), cfg, true))
	second := logFile
	require.NotNil(t, second)
	assert.NotSame(t, first, second)

	_, err := first.WriteString("late record\n")
	assert.ErrorIs(t, err, os.ErrClosed, "Previous log file should be closed")

	cfg.Destination = "stderr"
	require.NoError(t, Init("", cfg, true))
	assert.Nil(t, logFile)
	_, err = second.WriteString("late record\n")
	assert.ErrorIs(t, err, os.ErrClosed, "File should be closed when logs leave it")
}

func TestInit_FileErrorKeepsLogger(t *testing.T) {
	keepDefault(t)
	t.Cleanup(func() {
		if logFile != nil {
			logFile.Close()
			logFile = nil
		}
	})
	dir := t.TempDir()
	cfg := config.LogConfig{Format: "text", Level: "info", Destination: "file"}

	require.NoError(t, Init(filepath.Join(dir, "ok.log"), cfg, true))
	current := logFile

	err := Init(filepath.Join(dir, "no", "such", "dir.log"), cfg, true)
	require.Error(t, err)
	assert.Same(t, current, logFile, "Failed Init should keep the open file")
	_, err = current.WriteString("still open\n")
	assert.NoError(t, err)
}
