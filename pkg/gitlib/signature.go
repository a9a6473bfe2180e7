package gitlib

import "time"

// Signature represents a git signature (author/committer). Name may be empty
// when the underlying commit carries no usable author name.
type Signature struct {
	Name  string
	Email string
	When  time.Time
}
