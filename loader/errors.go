package loader

import "errors"

// Sentinel errors for loader operations.
var (
	// ErrUnsupportedFormat is returned for a file extension with no registered decoder.
	ErrUnsupportedFormat = errors.New("unsupported file format")

	// ErrFrontmatter is returned when template frontmatter is malformed.
	ErrFrontmatter = errors.New("invalid frontmatter")
)
