package commands

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/repostat/internal/logging"
	"github.com/Sumatoshi-tech/repostat/pkg/mcp"
)

// mcpDebugVerbosity is the -v count equivalent of --debug.
const mcpDebugVerbosity = 3

// newMCPCommand creates the MCP server command.
func newMCPCommand() *cobra.Command {
	var debug bool

	cobraCmd := &cobra.Command{
		Use:   "mcp",
		Short: "Start MCP server for AI agent integration",
		Long: `Start a Model Context Protocol (MCP) server on stdio transport.

The MCP server exposes repostat statistics as tools that AI agents can
discover and invoke:
  - repostat_summary: Whole-history statistics for a repository
  - repostat_hotspot: Per-entry revision counts across a history`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cobraCmd *cobra.Command, _ []string) error {
			verbosity := 0
			if debug {
				verbosity = mcpDebugVerbosity
			}

			logger := logging.Setup(os.Stderr, verbosity)

			srv := mcp.NewServer(mcp.ServerDeps{Logger: logger})

			return srv.Run(cobraCmd.Context())
		},
	}

	cobraCmd.Flags().BoolVar(&debug, "debug", false, "Enable debug logging to stderr")

	return cobraCmd
}
