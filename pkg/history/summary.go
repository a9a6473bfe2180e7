package history

import (
	"github.com/Sumatoshi-tech/repostat/pkg/gitlib"
)

// SummaryStats holds the four cardinalities the summary aggregator reports.
// Entries counts distinct full paths; EntriesChanged counts distinct blob
// ids, a proxy for how many unique file-content revisions exist across the
// analysed history, not how many times a file changed.
type SummaryStats struct {
	Commits        uint64
	Authors        uint64
	Entries        uint64
	EntriesChanged uint64
}

// Summary is a deduplicating accumulator over retained commits and their
// entry observations. State is monotonic: the counter only increments and
// the sets only grow. Insertion is idempotent, so accumulation commutes
// under set union and a later parallel merge would not change the reported
// results.
type Summary struct {
	commits uint64
	authors map[string]struct{}
	paths   map[string]struct{}
	blobs   map[gitlib.Hash]struct{}
}

// NewSummary creates an empty summary accumulator.
func NewSummary() *Summary {
	return &Summary{
		authors: make(map[string]struct{}),
		paths:   make(map[string]struct{}),
		blobs:   make(map[gitlib.Hash]struct{}),
	}
}

// AddCommit records one retained commit. Empty author names are not
// inserted; git does not guarantee a usable author on every commit.
func (s *Summary) AddCommit(author string) {
	s.commits++

	if author != "" {
		s.authors[author] = struct{}{}
	}
}

// Observe records one entry observation.
func (s *Summary) Observe(obs EntryObservation) {
	s.paths[obs.Path] = struct{}{}
	s.blobs[obs.Blob] = struct{}{}
}

// Stats reports the accumulated cardinalities.
func (s *Summary) Stats() SummaryStats {
	return SummaryStats{
		Commits:        s.commits,
		Authors:        uint64(len(s.authors)),
		Entries:        uint64(len(s.paths)),
		EntriesChanged: uint64(len(s.blobs)),
	}
}
