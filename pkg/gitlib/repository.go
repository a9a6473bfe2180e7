package gitlib

import (
	"context"
	"fmt"

	git2go "github.com/libgit2/git2go/v34"
)

// Repository wraps a libgit2 repository. It is read-only for the duration of
// an invocation; repostat never mutates the object store.
type Repository struct {
	repo *git2go.Repository
	path string
}

// OpenRepository opens a git repository at the given path.
func OpenRepository(path string) (*Repository, error) {
	repo, err := git2go.OpenRepository(path)
	if err != nil {
		return nil, fmt.Errorf("open repository: %w", err)
	}

	return &Repository{repo: repo, path: path}, nil
}

// Path returns the repository path.
func (r *Repository) Path() string {
	return r.path
}

// Free releases the repository resources.
func (r *Repository) Free() {
	if r.repo != nil {
		r.repo.Free()
		r.repo = nil
	}
}

// Head returns the HEAD reference target.
func (r *Repository) Head() (Hash, error) {
	ref, err := r.repo.Head()
	if err != nil {
		return Hash{}, fmt.Errorf("get HEAD: %w", err)
	}
	defer ref.Free()

	return HashFromOid(ref.Target()), nil
}

// LookupCommit returns the commit with the given hash.
func (r *Repository) LookupCommit(_ context.Context, hash Hash) (*Commit, error) {
	commit, err := r.repo.LookupCommit(hash.ToOid())
	if err != nil {
		return nil, fmt.Errorf("lookup commit: %w", err)
	}

	return &Commit{commit: commit, repo: r}, nil
}

// LookupTree returns the tree with the given hash.
func (r *Repository) LookupTree(hash Hash) (*Tree, error) {
	tree, err := r.repo.LookupTree(hash.ToOid())
	if err != nil {
		return nil, fmt.Errorf("lookup tree: %w", err)
	}

	return &Tree{tree: tree, repo: r}, nil
}

// LookupBlob returns the blob with the given hash.
func (r *Repository) LookupBlob(_ context.Context, hash Hash) (*Blob, error) {
	blob, err := r.repo.LookupBlob(hash.ToOid())
	if err != nil {
		return nil, fmt.Errorf("lookup blob: %w", err)
	}

	return &Blob{blob: blob}, nil
}

// Revspec is the result of parsing a revision specifier. Single denotes a
// one-commit specifier; otherwise From/To describe a range. MergeBase is set
// for three-dot ranges, which additionally include the merge base of the two
// endpoints in the walk.
type Revspec struct {
	From      Hash
	To        Hash
	Single    bool
	MergeBase bool
}

// Revparse parses a revision specifier (single, two-dot or three-dot form).
func (r *Repository) Revparse(spec string) (Revspec, error) {
	parsed, err := r.repo.Revparse(spec)
	if err != nil {
		return Revspec{}, fmt.Errorf("revparse %q: %w", spec, err)
	}

	out := Revspec{
		Single:    parsed.Flags()&git2go.RevparseSingle != 0,
		MergeBase: parsed.Flags()&git2go.RevparseMergeBase != 0,
	}

	if from := parsed.From(); from != nil {
		out.From = HashFromOid(from.Id())

		from.Free()
	}

	if to := parsed.To(); to != nil {
		out.To = HashFromOid(to.Id())

		to.Free()
	}

	return out, nil
}

// RevparseSingle resolves a specifier that must denote exactly one object.
func (r *Repository) RevparseSingle(spec string) (Hash, error) {
	obj, err := r.repo.RevparseSingle(spec)
	if err != nil {
		return Hash{}, fmt.Errorf("revparse %q: %w", spec, err)
	}
	defer obj.Free()

	return HashFromOid(obj.Id()), nil
}

// MergeBase returns the lowest common ancestor of the two commits.
func (r *Repository) MergeBase(one, two Hash) (Hash, error) {
	base, err := r.repo.MergeBase(one.ToOid(), two.ToOid())
	if err != nil {
		return Hash{}, fmt.Errorf("merge base of %s and %s: %w", one, two, err)
	}

	return HashFromOid(base), nil
}

// Walk creates a new revision walker over this repository. The walker uses
// the natural graph order of libgit2; callers seed it with Push/Hide and
// consume it with Next.
func (r *Repository) Walk() (*RevWalk, error) {
	walk, err := r.repo.Walk()
	if err != nil {
		return nil, fmt.Errorf("create revwalk: %w", err)
	}

	walk.Sorting(git2go.SortNone)

	return &RevWalk{walk: walk, repo: r}, nil
}

// Native returns the underlying libgit2 repository for advanced operations.
func (r *Repository) Native() *git2go.Repository {
	return r.repo
}
