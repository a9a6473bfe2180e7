package history

import "errors"

// Sentinel errors for the history engine. All three are unrecoverable at the
// point of occurrence: the engine aborts the invocation without emitting
// partial statistics, since partial aggregator state would misrepresent the
// repository.
var (
	// ErrResolution indicates an unresolvable or ambiguous revision
	// specifier, including a malformed exclusion or range endpoint.
	ErrResolution = errors.New("cannot resolve revision specifier")

	// ErrRepositoryAccess indicates the underlying store could not be opened
	// or a commit/tree lookup failed mid-walk.
	ErrRepositoryAccess = errors.New("repository access failed")

	// ErrFilterConfig indicates an invalid date literal for a before/after
	// bound.
	ErrFilterConfig = errors.New("invalid filter configuration")
)
