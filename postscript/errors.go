package postscript

import "errors"

// Sentinel errors for PostScript operations.
var (
	// ErrEncode is returned when a figure cannot be serialized.
	ErrEncode = errors.New("encode figure")

	// ErrNoTemplate is returned when a Document is rendered without a template.
	ErrNoTemplate = errors.New("document has no template")
)
