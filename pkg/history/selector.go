package history

import (
	"fmt"
	"strings"

	"github.com/Sumatoshi-tech/repostat/pkg/gitlib"
)

// excludeMarker prefixes a revision specifier whose ancestry is excluded
// from the walk.
const excludeMarker = "^"

// Resolver resolves revision specifiers and computes merge bases. It is the
// slice of the repository handle the selector needs; *gitlib.Repository
// implements it.
type Resolver interface {
	Revparse(spec string) (gitlib.Revspec, error)
	RevparseSingle(spec string) (gitlib.Hash, error)
	MergeBase(one, two gitlib.Hash) (gitlib.Hash, error)
}

// Seeder accepts include/exclude seeds for a revision walk.
// *gitlib.RevWalk implements it.
type Seeder interface {
	Push(hash gitlib.Hash) error
	PushHead() error
	Hide(hash gitlib.Hash) error
}

// SeedWalk translates the ordered specifier list into include/exclude seeds
// on the walk. An empty list seeds the walk with the repository head. The
// actual traversal (turning seeds into a linear commit sequence) stays with
// the repository handle.
//
// Specifier forms:
//   - "rev"       include rev and its ancestry
//   - "^rev"      exclude rev and its ancestry
//   - "a..b"      include b's ancestry, exclude a's
//   - "a...b"     as above, plus the merge base of a and b
func SeedWalk(resolver Resolver, walk Seeder, specs []string) error {
	if len(specs) == 0 {
		err := walk.PushHead()
		if err != nil {
			return fmt.Errorf("%w: HEAD: %v", ErrResolution, err)
		}

		return nil
	}

	for _, spec := range specs {
		err := seedOne(resolver, walk, spec)
		if err != nil {
			return err
		}
	}

	return nil
}

func seedOne(resolver Resolver, walk Seeder, spec string) error {
	if rest, excluded := strings.CutPrefix(spec, excludeMarker); excluded {
		hash, err := resolver.RevparseSingle(rest)
		if err != nil {
			return fmt.Errorf("%w: %q: %v", ErrResolution, spec, err)
		}

		err = walk.Hide(hash)
		if err != nil {
			return fmt.Errorf("%w: %q: %v", ErrResolution, spec, err)
		}

		return nil
	}

	revspec, err := resolver.Revparse(spec)
	if err != nil {
		return fmt.Errorf("%w: %q: %v", ErrResolution, spec, err)
	}

	if revspec.Single {
		err = walk.Push(revspec.From)
		if err != nil {
			return fmt.Errorf("%w: %q: %v", ErrResolution, spec, err)
		}

		return nil
	}

	return seedRange(resolver, walk, spec, revspec)
}

// seedRange seeds a two-endpoint range: include To's ancestry, exclude
// From's. Three-dot ranges additionally push the merge base of the endpoints
// before hiding From, reproducing the classic symmetric-difference
// semantics without re-implementing ancestry search.
func seedRange(resolver Resolver, walk Seeder, spec string, revspec gitlib.Revspec) error {
	err := walk.Push(revspec.To)
	if err != nil {
		return fmt.Errorf("%w: %q: %v", ErrResolution, spec, err)
	}

	if revspec.MergeBase {
		base, baseErr := resolver.MergeBase(revspec.From, revspec.To)
		if baseErr != nil {
			return fmt.Errorf("%w: %q: %v", ErrResolution, spec, baseErr)
		}

		err = walk.Push(base)
		if err != nil {
			return fmt.Errorf("%w: %q: %v", ErrResolution, spec, err)
		}
	}

	err = walk.Hide(revspec.From)
	if err != nil {
		return fmt.Errorf("%w: %q: %v", ErrResolution, spec, err)
	}

	return nil
}
