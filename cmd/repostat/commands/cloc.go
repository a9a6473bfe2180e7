package commands

import (
	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/repostat/pkg/cloc"
	"github.com/Sumatoshi-tech/repostat/pkg/gitlib"
	"github.com/Sumatoshi-tech/repostat/pkg/render"
)

// clocCommand holds the configuration for the cloc command.
type clocCommand struct {
	root *rootOptions
	rev  string
}

// newClocCommand creates the cloc command.
func newClocCommand(root *rootOptions) *cobra.Command {
	cc := &clocCommand{root: root}

	cobraCmd := &cobra.Command{
		Use:   "cloc",
		Short: "Per-language line counts at a single revision",
		Long: `Cloc classifies every file reachable from one revision by language and
counts its total, blank and code lines. Vendored paths and binary files
are skipped.`,
		RunE: cc.run,
	}

	cobraCmd.Flags().StringVar(&cc.rev, "commit", "", "Revision to analyse (default HEAD)")

	return cobraCmd
}

func (cc *clocCommand) run(cobraCmd *cobra.Command, _ []string) error {
	repository, err := gitlib.LoadRepository(cc.root.projectDir)
	if err != nil {
		return err
	}
	defer repository.Free()

	stats, err := cloc.Run(cobraCmd.Context(), repository, cc.rev)
	if err != nil {
		return err
	}

	target, err := render.OpenTarget(cc.root.output)
	if err != nil {
		return err
	}
	defer target.Close()

	return render.WriteCloc(target, cc.root.format, stats)
}
