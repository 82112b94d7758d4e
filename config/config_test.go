package config

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gosolid/errors"
	"gosolid/logging"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, logging.WarnLevel, cfg.Level())
	assert.NotEmpty(t, cfg.Separator)
	assert.NoError(t, cfg.Validate())
}

func TestParse(t *testing.T) {
	cfg, err := Parse([]byte("log_level: debug\nlog_prefix: \"[ocp]\"\nscenario: shapes.yaml\n"))
	require.NoError(t, err)

	assert.Equal(t, logging.DebugLevel, cfg.Level())
	assert.Equal(t, "[ocp]", cfg.LogPrefix)
	assert.Equal(t, "shapes.yaml", cfg.ScenarioPath)
	// 未出现的字段保留默认值
	assert.Equal(t, DefaultConfig().Separator, cfg.Separator)
}

func TestParse_Invalid(t *testing.T) {
	_, err := Parse([]byte("log_level: [unclosed"))
	assert.True(t, errors.IsErrorCode(err, errors.ErrCodeInvalidInput))

	_, err = Parse([]byte("log_level: verbose"))
	assert.True(t, errors.IsValidation(err))
}

func TestLoad(t *testing.T) {
	t.Setenv(EnvLogLevel, "")
	dir := t.TempDir()
	path := filepath.Join(dir, "gosolid.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log_level: info\nseparator: \"==\"\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, logging.InfoLevel, cfg.Level())
	assert.Equal(t, "==", cfg.Separator)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.True(t, errors.IsNotFound(err))
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv(EnvLogLevel, "error")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, logging.ErrorLevel, cfg.Level())
}

func TestNewLogger(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LogPrefix = "[test]"

	var buf bytes.Buffer
	logger := cfg.NewLogger(&buf)
	logger.Info(context.Background(), "hidden")
	logger.Warn(context.Background(), "shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "[WARN] [test] shown")
}
