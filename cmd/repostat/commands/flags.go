package commands

import (
	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/repostat/pkg/history"
)

// gitFlags holds the revision selection and commit filtering flags shared by
// the history-walking commands.
type gitFlags struct {
	commits []string
	grep    string
	before  string
	after   string
}

// register adds the shared flags to the command.
func (gf *gitFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringArrayVar(&gf.commits, "commit", nil,
		"Revision specifier selecting the history (repeatable; prefix ^ excludes, a..b selects a range, a...b adds the merge base; default HEAD)")
	cmd.Flags().StringVar(&gf.grep, "grep", "",
		"Only count commits whose message contains this literal text")
	cmd.Flags().StringVar(&gf.before, "before", "",
		"Only count commits authored strictly before this date (YYYY-MM-DD, UTC)")
	cmd.Flags().StringVar(&gf.after, "after", "",
		"Only count commits authored strictly after this date (YYYY-MM-DD, UTC)")
}

// filter converts the textual flag values into a commit filter.
func (gf *gitFlags) filter() (history.Filter, error) {
	result := history.Filter{Pattern: gf.grep}

	if gf.before != "" {
		bound, err := history.ParseDateBound(gf.before)
		if err != nil {
			return history.Filter{}, err
		}

		result.Before = &bound
	}

	if gf.after != "" {
		bound, err := history.ParseDateBound(gf.after)
		if err != nil {
			return history.Filter{}, err
		}

		result.After = &bound
	}

	return result, nil
}
