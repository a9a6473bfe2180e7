package commands

import (
	"log/slog"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/repostat/pkg/gitlib"
	"github.com/Sumatoshi-tech/repostat/pkg/history"
	"github.com/Sumatoshi-tech/repostat/pkg/render"
)

// hotspotCommand holds the configuration for the hotspot command.
type hotspotCommand struct {
	root *rootOptions
	git  gitFlags
}

// newHotspotCommand creates the hotspot command. The revisions alias is kept
// for users coming from older releases where the command carried that name.
func newHotspotCommand(root *rootOptions) *cobra.Command {
	hc := &hotspotCommand{root: root}

	cobraCmd := &cobra.Command{
		Use:     "hotspot",
		Aliases: []string{"revisions"},
		Short:   "Per-entry revision counts across the selected history",
		Long: `Hotspot counts, for every entry path in the selected history, how many
distinct content revisions the path has seen. Entries rewritten often rank
highest and mark the churn hotspots of the repository.`,
		RunE: hc.run,
	}

	hc.git.register(cobraCmd)

	return cobraCmd
}

func (hc *hotspotCommand) run(cobraCmd *cobra.Command, _ []string) error {
	filter, err := hc.git.filter()
	if err != nil {
		return err
	}

	repository, err := gitlib.LoadRepository(hc.root.projectDir)
	if err != nil {
		return err
	}
	defer repository.Free()

	opts := history.Options{
		Specs:    hc.git.commits,
		Filter:   filter,
		Progress: hc.root.progressSink(),
	}

	records, err := history.RunHotspot(cobraCmd.Context(), repository, opts)
	if err != nil {
		return err
	}

	slog.Info("history traversed", "entries", humanize.Comma(int64(len(records))))

	target, err := render.OpenTarget(hc.root.output)
	if err != nil {
		return err
	}
	defer target.Close()

	return render.WriteHotspot(target, hc.root.format, records)
}
