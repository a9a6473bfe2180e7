// Package cloc counts files and lines per language at a single commit
// snapshot. Language classification is delegated to src-d/enry; vendored
// paths and binary blobs are excluded.
package cloc

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"sort"

	"github.com/src-d/enry/v2"

	"github.com/Sumatoshi-tech/repostat/pkg/gitlib"
	"github.com/Sumatoshi-tech/repostat/pkg/history"
)

// otherLanguage buckets files enry cannot classify.
const otherLanguage = "Other"

// LanguageStats aggregates counts for one language.
type LanguageStats struct {
	Language string
	Files    uint64
	Lines    uint64
	Blanks   uint64
	Code     uint64
}

// Run counts lines per language in the tree of the given revision
// (default HEAD). The walk reuses the history tree walker, so nested files
// are counted exactly once under their full path.
func Run(ctx context.Context, repo *gitlib.Repository, rev string) ([]LanguageStats, error) {
	if rev == "" {
		rev = "HEAD"
	}

	hash, err := repo.RevparseSingle(rev)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", history.ErrResolution, rev, err)
	}

	commit, err := repo.LookupCommit(ctx, hash)
	if err != nil {
		return nil, fmt.Errorf("%w: commit %s: %v", history.ErrRepositoryAccess, hash, err)
	}
	defer commit.Free()

	byLanguage := make(map[string]*LanguageStats)

	err = history.WalkCommitTree(repo, commit, func(obs history.EntryObservation) error {
		return countFile(ctx, repo, obs, byLanguage)
	})
	if err != nil {
		return nil, err
	}

	return sortedStats(byLanguage), nil
}

func countFile(
	ctx context.Context,
	repo *gitlib.Repository,
	obs history.EntryObservation,
	byLanguage map[string]*LanguageStats,
) error {
	if enry.IsVendor(obs.Path) {
		return nil
	}

	blob, err := repo.LookupBlob(ctx, obs.Blob)
	if err != nil {
		return fmt.Errorf("%w: blob %s at %q: %v", history.ErrRepositoryAccess, obs.Blob, obs.Path, err)
	}
	defer blob.Free()

	data := blob.Contents()
	if enry.IsBinary(data) {
		return nil
	}

	lang := enry.GetLanguage(path.Base(obs.Path), data)
	if lang == "" || lang == enry.OtherLanguage {
		lang = otherLanguage
	}

	stats, ok := byLanguage[lang]
	if !ok {
		stats = &LanguageStats{Language: lang}
		byLanguage[lang] = stats
	}

	lines, blanks := countLines(data)

	stats.Files++
	stats.Lines += lines
	stats.Blanks += blanks
	stats.Code += lines - blanks

	return nil
}

// countLines returns the total and blank line counts of the given contents.
// A trailing newline does not start an extra line.
func countLines(data []byte) (lines, blanks uint64) {
	if len(data) == 0 {
		return 0, 0
	}

	for _, line := range bytes.Split(data, []byte{'\n'}) {
		lines++

		if len(bytes.TrimSpace(line)) == 0 {
			blanks++
		}
	}

	if data[len(data)-1] == '\n' {
		lines--
		blanks--
	}

	return lines, blanks
}

func sortedStats(byLanguage map[string]*LanguageStats) []LanguageStats {
	out := make([]LanguageStats, 0, len(byLanguage))

	for _, stats := range byLanguage {
		out = append(out, *stats)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Language < out[j].Language
	})

	return out
}
