package history

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/Sumatoshi-tech/repostat/pkg/gitlib"
	"github.com/Sumatoshi-tech/repostat/pkg/progress"
)

// Options configures one history traversal. The zero value walks the full
// ancestry of HEAD with no filtering and no progress reporting.
type Options struct {
	// Specs is the ordered list of revision specifiers; see SeedWalk.
	Specs []string

	// Filter narrows the candidate commits; the zero value retains all.
	Filter Filter

	// Progress receives one increment per retained commit. Nil means no
	// progress reporting.
	Progress progress.Sink
}

// Traverse resolves the specifiers into a commit walk, applies the filter
// lazily and invokes visit once per retained commit, in the order the
// repository handle yields them. The first resolution or access error aborts
// the traversal; rejected commits are skipped silently and are never visited.
func Traverse(ctx context.Context, repo *gitlib.Repository, opts Options, visit func(*gitlib.Commit) error) error {
	sink := opts.Progress
	if sink == nil {
		sink = progress.Nop{}
	}

	walk, err := repo.Walk()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRepositoryAccess, err)
	}
	defer walk.Free()

	err = SeedWalk(repo, walk, opts.Specs)
	if err != nil {
		return err
	}

	sink.Start("Analysing commits")
	defer sink.Finish()

	for {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return fmt.Errorf("traversal canceled: %w", ctxErr)
		}

		hash, nextErr := walk.Next()
		if errors.Is(nextErr, io.EOF) {
			return nil
		}

		if nextErr != nil {
			return fmt.Errorf("%w: %v", ErrRepositoryAccess, nextErr)
		}

		visitErr := visitCommit(ctx, repo, hash, opts.Filter, sink, visit)
		if visitErr != nil {
			return visitErr
		}
	}
}

func visitCommit(
	ctx context.Context,
	repo *gitlib.Repository,
	hash gitlib.Hash,
	filter Filter,
	sink progress.Sink,
	visit func(*gitlib.Commit) error,
) error {
	commit, err := repo.LookupCommit(ctx, hash)
	if err != nil {
		return fmt.Errorf("%w: commit %s: %v", ErrRepositoryAccess, hash, err)
	}
	defer commit.Free()

	if !filter.Retain(commit) {
		return nil
	}

	sink.Increment()

	return visit(commit)
}

// RunSummary traverses the selected history and returns the summary
// statistics. On error no partial statistics are returned.
func RunSummary(ctx context.Context, repo *gitlib.Repository, opts Options) (SummaryStats, error) {
	agg := NewSummary()

	err := Traverse(ctx, repo, opts, func(commit *gitlib.Commit) error {
		agg.AddCommit(commit.Author().Name)

		return WalkCommitTree(repo, commit, func(obs EntryObservation) error {
			agg.Observe(obs)

			return nil
		})
	})
	if err != nil {
		return SummaryStats{}, err
	}

	return agg.Stats(), nil
}

// RunHotspot traverses the selected history and returns per-path revision
// counts, sorted by path. On error no partial records are returned.
func RunHotspot(ctx context.Context, repo *gitlib.Repository, opts Options) ([]PathRevisions, error) {
	agg := NewHotspot()

	err := Traverse(ctx, repo, opts, func(commit *gitlib.Commit) error {
		return WalkCommitTree(repo, commit, func(obs EntryObservation) error {
			agg.Observe(obs)

			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	return agg.Records(), nil
}
