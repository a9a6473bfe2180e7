package gitlib

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"
)

// ErrRemoteNotSupported is returned when a remote repository URI is provided.
var ErrRemoteNotSupported = errors.New("remote repositories not supported")

var sshRemotePattern = regexp.MustCompile(`^[A-Za-z]\w*@[A-Za-z0-9][\w.]*:`)

// LoadRepository opens a local git repository. Returns an error for remote
// URIs; repostat only analyses checked-out repositories.
func LoadRepository(uri string) (*Repository, error) {
	if strings.Contains(uri, "://") || sshRemotePattern.MatchString(uri) {
		return nil, fmt.Errorf("%w: %s", ErrRemoteNotSupported, uri)
	}

	if uri != "" && uri[len(uri)-1] == os.PathSeparator {
		uri = uri[:len(uri)-1]
	}

	return OpenRepository(uri)
}
