package commands

import (
	"log/slog"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/repostat/pkg/gitlib"
	"github.com/Sumatoshi-tech/repostat/pkg/history"
	"github.com/Sumatoshi-tech/repostat/pkg/render"
)

// summaryCommand holds the configuration for the summary command.
type summaryCommand struct {
	root *rootOptions
	git  gitFlags
}

// newSummaryCommand creates the summary command.
func newSummaryCommand(root *rootOptions) *cobra.Command {
	sc := &summaryCommand{root: root}

	cobraCmd := &cobra.Command{
		Use:   "summary",
		Short: "Whole-history statistics for the repository",
		Long: `Summary counts four statistics over the selected history:
the number of commits, the number of distinct authors, the number of
distinct entry paths, and the number of entries changed (distinct
path and content pairs).`,
		RunE: sc.run,
	}

	sc.git.register(cobraCmd)

	return cobraCmd
}

func (sc *summaryCommand) run(cobraCmd *cobra.Command, _ []string) error {
	filter, err := sc.git.filter()
	if err != nil {
		return err
	}

	repository, err := gitlib.LoadRepository(sc.root.projectDir)
	if err != nil {
		return err
	}
	defer repository.Free()

	opts := history.Options{
		Specs:    sc.git.commits,
		Filter:   filter,
		Progress: sc.root.progressSink(),
	}

	stats, err := history.RunSummary(cobraCmd.Context(), repository, opts)
	if err != nil {
		return err
	}

	slog.Info("history traversed",
		"commits", humanize.Comma(int64(stats.Commits)),
		"authors", stats.Authors)

	target, err := render.OpenTarget(sc.root.output)
	if err != nil {
		return err
	}
	defer target.Close()

	return render.WriteSummary(target, sc.root.format, stats)
}
