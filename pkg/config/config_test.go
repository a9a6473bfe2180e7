package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/repostat/pkg/config"
)

func TestLoadDefaults(t *testing.T) {
	// No config file anywhere near the test working directory.
	t.Chdir(t.TempDir())

	cfg, err := config.Load("")
	require.NoError(t, err)

	assert.Equal(t, "csv", cfg.Format)
	assert.False(t, cfg.Progress)
	assert.Empty(t, cfg.ProjectDir)
	assert.Equal(t, "error", cfg.Logging.Level)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "repostat.yaml")

	content := "format: json\nprogress: true\nproject_dir: /srv/repo\nlogging:\n  level: debug\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "json", cfg.Format)
	assert.True(t, cfg.Progress)
	assert.Equal(t, "/srv/repo", cfg.ProjectDir)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadMissingExplicitFileFails(t *testing.T) {
	t.Parallel()

	_, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))

	assert.Error(t, err)
}

func TestLoadRejectsInvalidFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "repostat.yaml")
	require.NoError(t, os.WriteFile(path, []byte("format: xml\n"), 0o600))

	_, err := config.Load(path)

	assert.ErrorIs(t, err, config.ErrInvalidFormat)
}

func TestLoadRejectsInvalidLogLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "repostat.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logging:\n  level: loud\n"), 0o600))

	_, err := config.Load(path)

	assert.ErrorIs(t, err, config.ErrInvalidLogLevel)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	valid := &config.Config{Format: "text", Logging: config.LoggingConfig{Level: "info"}}
	require.NoError(t, valid.Validate())

	badFormat := &config.Config{Format: "pdf", Logging: config.LoggingConfig{Level: "info"}}
	assert.ErrorIs(t, badFormat.Validate(), config.ErrInvalidFormat)

	badLevel := &config.Config{Format: "csv", Logging: config.LoggingConfig{Level: "trace"}}
	assert.ErrorIs(t, badLevel.Validate(), config.ErrInvalidLogLevel)
}
