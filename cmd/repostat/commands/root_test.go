package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/repostat/pkg/progress"
)

func TestNewRootCommandRegistersSubcommands(t *testing.T) {
	t.Parallel()

	rootCmd := NewRootCommand()

	names := make(map[string]bool)
	for _, sub := range rootCmd.Commands() {
		names[sub.Name()] = true
	}

	for _, want := range []string{"summary", "hotspot", "cloc", "mcp", "config", "version"} {
		assert.True(t, names[want], "missing subcommand %q", want)
	}
}

func TestHotspotKeepsRevisionsAlias(t *testing.T) {
	t.Parallel()

	rootCmd := NewRootCommand()

	sub, _, err := rootCmd.Find([]string{"revisions"})
	require.NoError(t, err)

	assert.Equal(t, "hotspot", sub.Name())
}

func TestProgressSinkSelection(t *testing.T) {
	t.Parallel()

	off := &rootOptions{progress: false}
	assert.IsType(t, progress.Nop{}, off.progressSink())

	on := &rootOptions{progress: true}
	assert.IsType(t, &progress.Console{}, on.progressSink())
}

func TestSetupRejectsUnknownFormat(t *testing.T) {
	t.Chdir(t.TempDir())

	rootCmd := NewRootCommand()
	rootCmd.SetArgs([]string{"config", "--format", "xml"})

	err := rootCmd.Execute()

	assert.Error(t, err)
}

func TestConfigCommandPrintsEffectiveConfig(t *testing.T) {
	t.Chdir(t.TempDir())

	rootCmd := NewRootCommand()
	rootCmd.SetArgs([]string{"config"})

	err := rootCmd.Execute()

	require.NoError(t, err)
}
