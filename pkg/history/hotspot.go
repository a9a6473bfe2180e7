package history

import (
	"sort"

	"github.com/Sumatoshi-tech/repostat/pkg/gitlib"
)

// PathRevisions pairs a path with the number of distinct content revisions
// observed at that path across the analysed history.
type PathRevisions struct {
	Path      string
	Revisions uint64
}

// Hotspot accumulates, per path, the set of distinct blob ids observed
// across all retained commits. The per-path set never shrinks and never
// counts the same blob id twice, even when the identical content appears in
// many commits. Revision counts dedupe by content id per path, not by
// commits touching the path.
type Hotspot struct {
	revisions map[string]map[gitlib.Hash]struct{}
}

// NewHotspot creates an empty hotspot accumulator.
func NewHotspot() *Hotspot {
	return &Hotspot{
		revisions: make(map[string]map[gitlib.Hash]struct{}),
	}
}

// Observe records one entry observation.
func (h *Hotspot) Observe(obs EntryObservation) {
	set, ok := h.revisions[obs.Path]
	if !ok {
		set = make(map[gitlib.Hash]struct{})
		h.revisions[obs.Path] = set
	}

	set[obs.Blob] = struct{}{}
}

// Records reports one (path, revision count) pair per observed path, sorted
// by path ascending. Callers that want a ranked hotspot list sort by count
// themselves.
func (h *Hotspot) Records() []PathRevisions {
	records := make([]PathRevisions, 0, len(h.revisions))

	for path, blobs := range h.revisions {
		records = append(records, PathRevisions{
			Path:      path,
			Revisions: uint64(len(blobs)),
		})
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].Path < records[j].Path
	})

	return records
}
