// Package commands implements the repostat CLI commands.
package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/repostat/internal/logging"
	"github.com/Sumatoshi-tech/repostat/pkg/config"
	"github.com/Sumatoshi-tech/repostat/pkg/progress"
	"github.com/Sumatoshi-tech/repostat/pkg/render"
	"github.com/Sumatoshi-tech/repostat/pkg/version"
)

// rootOptions holds the persistent flag state shared by all subcommands.
type rootOptions struct {
	verbosity  int
	projectDir string
	format     string
	output     string
	progress   bool
	configPath string

	cfg *config.Config
}

// NewRootCommand creates the repostat root command with all subcommands
// registered.
func NewRootCommand() *cobra.Command {
	ro := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "repostat",
		Short: "Repostat - Git repository statistics",
		Long: `Repostat computes statistics over the commit history of a Git repository.

Commands:
  summary   Whole-history statistics (commits, authors, entries)
  hotspot   Per-entry revision counts across the selected history
  cloc      Per-language line counts at a single revision`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return ro.setup(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.CountVarP(&ro.verbosity, "verbose", "v", "Increase logging verbosity (repeatable: -v warn, -vv info, -vvv debug)")
	flags.StringVarP(&ro.projectDir, "project-dir", "C", ".", "Path to the repository to analyse")
	flags.StringVarP(&ro.format, "format", "f", config.DefaultFormat, "Output format (csv, json, html, text)")
	flags.StringVarP(&ro.output, "output", "o", "", "Output file (default: stdout)")
	flags.BoolVarP(&ro.progress, "progress", "p", config.DefaultProgress, "Show a progress indicator on stderr")
	flags.StringVar(&ro.configPath, "config", "", "Config file (default: .repostat.yaml in . or $HOME)")

	rootCmd.AddCommand(newSummaryCommand(ro))
	rootCmd.AddCommand(newHotspotCommand(ro))
	rootCmd.AddCommand(newClocCommand(ro))
	rootCmd.AddCommand(newMCPCommand())
	rootCmd.AddCommand(newConfigCommand(ro))
	rootCmd.AddCommand(versionCmd())

	return rootCmd
}

// setup loads configuration and merges it under explicit flags. Flags the
// user set win; everything else falls back to the config file.
func (ro *rootOptions) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(ro.configPath)
	if err != nil {
		return err
	}

	ro.cfg = cfg

	flags := cmd.Root().PersistentFlags()
	if !flags.Changed("format") {
		ro.format = cfg.Format
	}

	if !flags.Changed("progress") {
		ro.progress = cfg.Progress
	}

	if !flags.Changed("project-dir") && cfg.ProjectDir != "" {
		ro.projectDir = cfg.ProjectDir
	}

	verbosity := ro.verbosity
	if verbosity == 0 {
		verbosity = verbosityForLevel(cfg.Logging.Level)
	}

	logging.Setup(os.Stderr, verbosity)

	_, err = render.ParseFormat(ro.format)
	if err != nil {
		return err
	}

	return nil
}

// progressSink returns the sink selected by the progress flag. Progress is
// drawn on stderr so it never corrupts statistics written to stdout.
func (ro *rootOptions) progressSink() progress.Sink {
	if !ro.progress {
		return progress.Nop{}
	}

	return progress.NewConsole(os.Stderr)
}

// verbosityForLevel maps a configured log level name to a -v count.
func verbosityForLevel(level string) int {
	switch level {
	case "warn":
		return 1
	case "info":
		return 2
	case "debug":
		return 3
	default:
		return 0
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Fprintf(os.Stdout, "repostat %s (commit: %s, built: %s)\n", version.Version, version.Commit, version.Date)
		},
	}
}
