package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func useStateDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_STATE_HOME", dir)
	xdg.Reload()
	t.Cleanup(xdg.Reload)
	return dir
}

func TestSetupLogger(t *testing.T) {
	tests := []struct {
		name      string
		verbosity int
		wantLevel zerolog.Level
	}{
		{"default warn level", 0, zerolog.WarnLevel},
		{"info level", 1, zerolog.InfoLevel},
		{"debug level", 2, zerolog.DebugLevel},
		{"trace level", 3, zerolog.TraceLevel},
		{"high verbosity defaults to trace", 7, zerolog.TraceLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := useStateDir(t)

			SetupLogger(tt.verbosity)

			assert.Equal(t, tt.wantLevel, zerolog.GlobalLevel())

			_, err := os.Stat(filepath.Join(dir, "apify", "apify.log"))
			require.NoError(t, err, "log file should be created")
		})
	}
}

func TestLogFilePath(t *testing.T) {
	dir := useStateDir(t)
	assert.Equal(t, filepath.Join(dir, "apify", "apify.log"), LogFilePath())
}

func TestComponentLoggerWritesToLogFile(t *testing.T) {
	dir := useStateDir(t)
	SetupLogger(2)

	logger := GetLogger("files")
	logger.Debug().Str("path", "/project/apify_local").Msg("Created folder")

	data, err := os.ReadFile(filepath.Join(dir, "apify", "apify.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"component":"files"`)
	assert.Contains(t, string(data), "Created folder")
}

func TestLogOperationStart(t *testing.T) {
	dir := useStateDir(t)
	SetupLogger(2)

	done := LogOperationStart(GetLogger("auth"), "credential check")
	done()

	data, err := os.ReadFile(filepath.Join(dir, "apify", "apify.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "Operation started")
	assert.Contains(t, string(data), "Operation completed")
	assert.Contains(t, string(data), `"duration"`)
}

func TestSetupLoggerSwitchesLogFile(t *testing.T) {
	first := useStateDir(t)
	SetupLogger(2)

	second := useStateDir(t)
	SetupLogger(2)

	logger := GetLogger("cli")
	logger.Debug().Msg("after switch")

	old, err := os.ReadFile(filepath.Join(first, "apify", "apify.log"))
	require.NoError(t, err)
	assert.NotContains(t, string(old), "after switch")

	current, err := os.ReadFile(filepath.Join(second, "apify", "apify.log"))
	require.NoError(t, err)
	assert.Contains(t, string(current), "after switch")
}
