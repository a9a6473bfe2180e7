package history

import (
	"fmt"
	"strings"
	"time"
)

// CommitView is the slice of a commit the filter reads. *gitlib.Commit and
// *gitlib.TestCommit implement it.
type CommitView interface {
	Message() string
	When() time.Time
}

// Filter is a pure predicate over a single commit. The zero value retains
// everything. Bounds and pattern are evaluated independently; all configured
// rules must hold for a commit to be retained.
type Filter struct {
	// Pattern is a literal, case-sensitive substring the commit message must
	// contain. A commit with no message is rejected whenever a pattern is set.
	Pattern string

	// Before retains only commits strictly earlier than the bound.
	Before *time.Time

	// After retains only commits strictly later than the bound.
	After *time.Time
}

// Retain reports whether the commit passes all configured rules.
func (f Filter) Retain(commit CommitView) bool {
	if f.Pattern != "" {
		msg := commit.Message()
		if msg == "" || !strings.Contains(msg, f.Pattern) {
			return false
		}
	}

	when := commit.When()

	if f.Before != nil && !when.Before(*f.Before) {
		return false
	}

	if f.After != nil && !when.After(*f.After) {
		return false
	}

	return true
}

// ParseDateBound parses an ISO YYYY-MM-DD date literal as UTC midnight, for
// use as a before/after bound.
func ParseDateBound(literal string) (time.Time, error) {
	bound, err := time.ParseInLocation(time.DateOnly, literal, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date %q is not in YYYY-MM-DD form", ErrFilterConfig, literal)
	}

	return bound, nil
}
