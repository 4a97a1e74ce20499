package svg

import "errors"

// Error variables define the failure scenarios surfaced by the sanitizer.
// Everything else in this package degrades gracefully instead of failing.
var (
	// ErrFileNotFound indicates the path passed to Load does not exist.
	ErrFileNotFound = errors.New("svg file not found")

	// ErrFileRead indicates the file exists but could not be read.
	ErrFileRead = errors.New("failed to read svg file")
)
