package gitlib

import (
	"time"
)

// TestCommit is a mock commit for unit tests where real git operations are
// not needed. It carries only the fields the statistics engine reads.
type TestCommit struct {
	hash    Hash
	author  Signature
	message string
	when    time.Time
}

// NewTestCommit creates a new mock commit for testing.
func NewTestCommit(hash Hash, author Signature, message string, when time.Time) *TestCommit {
	return &TestCommit{
		hash:    hash,
		author:  author,
		message: message,
		when:    when,
	}
}

// Hash returns the commit hash.
func (m *TestCommit) Hash() Hash { return m.hash }

// Author returns the commit author.
func (m *TestCommit) Author() Signature { return m.author }

// Message returns the commit message.
func (m *TestCommit) Message() string { return m.message }

// When returns the commit timestamp.
func (m *TestCommit) When() time.Time { return m.when }

// TestSignature creates a signature for testing.
func TestSignature(name, email string) Signature {
	return Signature{
		Name:  name,
		Email: email,
		When:  time.Now(),
	}
}
