// Package render writes engine results to output sinks. The aggregation
// engine emits abstract record sequences; every rendering concern lives
// here, one writer per format variant.
package render

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// Output formats.
const (
	// FormatCSV is delimited text with a header row naming the columns.
	FormatCSV = "csv"
	// FormatJSON is a pretty-printed JSON array of records.
	FormatJSON = "json"
	// FormatHTML is an embeddable HTML page wrapping the structured data in
	// a chart.
	FormatHTML = "html"
	// FormatText is a human-readable table.
	FormatText = "text"
)

// ErrUnknownFormat is returned for an unrecognized output format name.
var ErrUnknownFormat = errors.New("unknown output format")

// ParseFormat validates a format name.
func ParseFormat(name string) (string, error) {
	switch name {
	case FormatCSV, FormatJSON, FormatHTML, FormatText:
		return name, nil
	default:
		return "", fmt.Errorf("%w: %q (use csv, json, html or text)", ErrUnknownFormat, name)
	}
}

// OpenTarget returns a writer for the output destination: the given file
// path, or stdout when path is empty. The caller closes it.
func OpenTarget(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopWriteCloser{os.Stdout}, nil
	}

	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create output file: %w", err)
	}

	return file, nil
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
