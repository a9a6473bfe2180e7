package gitlib

import (
	"fmt"

	git2go "github.com/libgit2/git2go/v34"
)

// EntryKind classifies a tree entry for traversal purposes.
type EntryKind int

// Entry kinds. Submodule links and other unrecognized object types map to
// EntryKindOther and are skipped by tree walks.
const (
	EntryKindOther EntryKind = iota
	EntryKindFile
	EntryKindSubtree
)

// Entry is one (name, object) pair inside a tree snapshot. ID is the
// content-derived identifier of the referenced object: for files it is the
// blob id, shared by identical contents anywhere in history.
type Entry struct {
	Name string
	ID   Hash
	Kind EntryKind
}

// Tree wraps a libgit2 tree: an immutable, ordered mapping from entry name
// to blob or subtree, scoped to one snapshot.
type Tree struct {
	tree *git2go.Tree
	repo *Repository
}

// Hash returns the tree hash.
func (t *Tree) Hash() Hash {
	return HashFromOid(t.tree.Id())
}

// EntryCount returns the number of entries in the tree.
func (t *Tree) EntryCount() uint64 {
	return t.tree.EntryCount()
}

// Entries returns all entries in the tree's stable order. The returned
// values are plain data; they stay valid after the tree is freed.
func (t *Tree) Entries() []Entry {
	count := t.tree.EntryCount()
	entries := make([]Entry, 0, count)

	for i := range count {
		raw := t.tree.EntryByIndex(i)
		if raw == nil {
			continue
		}

		entries = append(entries, Entry{
			Name: raw.Name,
			ID:   HashFromOid(raw.Id),
			Kind: entryKind(raw.Type),
		})
	}

	return entries
}

// EntryByPath returns the entry at the given slash-separated path.
func (t *Tree) EntryByPath(path string) (Entry, error) {
	raw, err := t.tree.EntryByPath(path)
	if err != nil {
		return Entry{}, fmt.Errorf("entry by path %q: %w", path, err)
	}

	return Entry{
		Name: raw.Name,
		ID:   HashFromOid(raw.Id),
		Kind: entryKind(raw.Type),
	}, nil
}

// Free releases the tree resources.
func (t *Tree) Free() {
	if t.tree != nil {
		t.tree.Free()
		t.tree = nil
	}
}

// Native returns the underlying libgit2 tree.
func (t *Tree) Native() *git2go.Tree {
	return t.tree
}

func entryKind(objType git2go.ObjectType) EntryKind {
	switch objType {
	case git2go.ObjectBlob:
		return EntryKindFile
	case git2go.ObjectTree:
		return EntryKindSubtree
	default:
		return EntryKindOther
	}
}
