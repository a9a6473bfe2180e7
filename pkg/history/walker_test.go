package history_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/repostat/pkg/gitlib"
	"github.com/Sumatoshi-tech/repostat/pkg/history"
)

// fakeTree is an in-memory tree snapshot.
type fakeTree struct {
	entries []gitlib.Entry
}

func (t fakeTree) Entries() []gitlib.Entry {
	return t.entries
}

// fakeOpener resolves subtrees from a fixed map.
type fakeOpener struct {
	trees map[gitlib.Hash]fakeTree
}

func (o fakeOpener) OpenTree(id gitlib.Hash) (history.Tree, error) {
	tree, ok := o.trees[id]
	if !ok {
		return nil, errors.New("tree not found")
	}

	return tree, nil
}

func collectObservations(t *testing.T, opener history.TreeOpener, root history.Tree) []history.EntryObservation {
	t.Helper()

	var seen []history.EntryObservation

	err := history.WalkTree(opener, root, func(obs history.EntryObservation) error {
		seen = append(seen, obs)

		return nil
	})
	require.NoError(t, err)

	return seen
}

func TestWalkTreeComposesFullPaths(t *testing.T) {
	t.Parallel()

	blob1 := gitlib.NewHash("1111111111111111111111111111111111111111")
	blob2 := gitlib.NewHash("2222222222222222222222222222222222222222")
	subID := gitlib.NewHash("aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa")
	deepID := gitlib.NewHash("bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb")

	opener := fakeOpener{trees: map[gitlib.Hash]fakeTree{
		subID: {entries: []gitlib.Entry{
			{Name: "deep", ID: deepID, Kind: gitlib.EntryKindSubtree},
			{Name: "util.go", ID: blob2, Kind: gitlib.EntryKindFile},
		}},
		deepID: {entries: []gitlib.Entry{
			{Name: "leaf.go", ID: blob1, Kind: gitlib.EntryKindFile},
		}},
	}}
	root := fakeTree{entries: []gitlib.Entry{
		{Name: "main.go", ID: blob1, Kind: gitlib.EntryKindFile},
		{Name: "pkg", ID: subID, Kind: gitlib.EntryKindSubtree},
	}}

	seen := collectObservations(t, opener, root)

	assert.Equal(t, []history.EntryObservation{
		{Path: "main.go", Blob: blob1},
		{Path: "pkg/deep/leaf.go", Blob: blob1},
		{Path: "pkg/util.go", Blob: blob2},
	}, seen)
}

func TestWalkTreeSameNameDifferentDirectories(t *testing.T) {
	t.Parallel()

	blob := gitlib.NewHash("1111111111111111111111111111111111111111")
	dir1 := gitlib.NewHash("aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa")
	dir2 := gitlib.NewHash("bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb")

	opener := fakeOpener{trees: map[gitlib.Hash]fakeTree{
		dir1: {entries: []gitlib.Entry{{Name: "x", ID: blob, Kind: gitlib.EntryKindFile}}},
		dir2: {entries: []gitlib.Entry{{Name: "x", ID: blob, Kind: gitlib.EntryKindFile}}},
	}}
	root := fakeTree{entries: []gitlib.Entry{
		{Name: "dir1", ID: dir1, Kind: gitlib.EntryKindSubtree},
		{Name: "dir2", ID: dir2, Kind: gitlib.EntryKindSubtree},
	}}

	seen := collectObservations(t, opener, root)

	// Full paths keep the two files apart even though the basenames collide.
	assert.Equal(t, []history.EntryObservation{
		{Path: "dir1/x", Blob: blob},
		{Path: "dir2/x", Blob: blob},
	}, seen)
}

func TestWalkTreeSkipsNonFileEntries(t *testing.T) {
	t.Parallel()

	blob := gitlib.NewHash("1111111111111111111111111111111111111111")
	root := fakeTree{entries: []gitlib.Entry{
		{Name: "submodule", ID: gitlib.Hash{}, Kind: gitlib.EntryKindOther},
		{Name: "kept.go", ID: blob, Kind: gitlib.EntryKindFile},
	}}

	seen := collectObservations(t, fakeOpener{}, root)

	assert.Equal(t, []history.EntryObservation{{Path: "kept.go", Blob: blob}}, seen)
}

func TestWalkTreeSubtreeLookupFailureAborts(t *testing.T) {
	t.Parallel()

	root := fakeTree{entries: []gitlib.Entry{
		{Name: "missing", ID: gitlib.NewHash("cccccccccccccccccccccccccccccccccccccccc"), Kind: gitlib.EntryKindSubtree},
	}}

	err := history.WalkTree(fakeOpener{}, root, func(history.EntryObservation) error {
		return nil
	})
	require.Error(t, err)

	assert.ErrorIs(t, err, history.ErrRepositoryAccess)
	assert.Contains(t, err.Error(), `"missing"`)
}

func TestWalkTreeVisitErrorPropagates(t *testing.T) {
	t.Parallel()

	errStop := errors.New("stop")
	blob := gitlib.NewHash("1111111111111111111111111111111111111111")
	root := fakeTree{entries: []gitlib.Entry{
		{Name: "a.go", ID: blob, Kind: gitlib.EntryKindFile},
	}}

	err := history.WalkTree(fakeOpener{}, root, func(history.EntryObservation) error {
		return errStop
	})

	assert.ErrorIs(t, err, errStop)
}
