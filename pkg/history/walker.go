package history

import (
	"fmt"

	"github.com/Sumatoshi-tech/repostat/pkg/gitlib"
)

// EntryObservation is one (path identity, content identifier) pair, produced
// once per file entry per commit. Path is the full slash-joined path from
// the repository root: basename-only identity would conflate files with the
// same name in different directories.
type EntryObservation struct {
	Path string
	Blob gitlib.Hash
}

// Tree yields the entries of one tree snapshot in stable order.
type Tree interface {
	Entries() []gitlib.Entry
}

// TreeOpener resolves a subtree by its content id during a walk.
type TreeOpener interface {
	OpenTree(id gitlib.Hash) (Tree, error)
}

// WalkTree enumerates the file entries reachable from root in pre-order,
// invoking visit once per file. Subtrees are recursed into; entries of other
// kinds (submodule links and the like) are skipped. A subtree lookup failure
// aborts the walk.
func WalkTree(opener TreeOpener, root Tree, visit func(EntryObservation) error) error {
	return walkTree(opener, root, "", visit)
}

func walkTree(opener TreeOpener, tree Tree, prefix string, visit func(EntryObservation) error) error {
	for _, entry := range tree.Entries() {
		path := entry.Name
		if prefix != "" {
			path = prefix + "/" + entry.Name
		}

		switch entry.Kind {
		case gitlib.EntryKindFile:
			err := visit(EntryObservation{Path: path, Blob: entry.ID})
			if err != nil {
				return err
			}
		case gitlib.EntryKindSubtree:
			subtree, err := opener.OpenTree(entry.ID)
			if err != nil {
				return fmt.Errorf("%w: subtree %s at %q: %v", ErrRepositoryAccess, entry.ID, path, err)
			}

			err = walkTree(opener, subtree, path, visit)
			if err != nil {
				return err
			}
		case gitlib.EntryKindOther:
			// Not a recognized file type; never emitted.
		}
	}

	return nil
}

// repoTrees adapts a gitlib repository to the TreeOpener interface,
// materializing each subtree's entries so the underlying libgit2 object can
// be released eagerly.
type repoTrees struct {
	repo *gitlib.Repository
}

// memTree is a materialized tree snapshot.
type memTree struct {
	entries []gitlib.Entry
}

func (t memTree) Entries() []gitlib.Entry {
	return t.entries
}

func (r repoTrees) OpenTree(id gitlib.Hash) (Tree, error) {
	tree, err := r.repo.LookupTree(id)
	if err != nil {
		return nil, err
	}
	defer tree.Free()

	return memTree{entries: tree.Entries()}, nil
}

// WalkCommitTree walks the root tree of a commit, yielding one observation
// per reachable file entry.
func WalkCommitTree(repo *gitlib.Repository, commit *gitlib.Commit, visit func(EntryObservation) error) error {
	root, err := commit.Tree()
	if err != nil {
		return fmt.Errorf("%w: root tree of %s: %v", ErrRepositoryAccess, commit.Hash(), err)
	}
	defer root.Free()

	return WalkTree(repoTrees{repo: repo}, memTree{entries: root.Entries()}, visit)
}
