package mdnative

import "errors"

// Sentinel errors for common failure modes.
var (
	// ErrValidation indicates a stylesheet failed validation.
	ErrValidation = errors.New("validation error")

	// ErrParse wraps failures reported by a Parser. The parser's own error
	// remains reachable through errors.Is and errors.As.
	ErrParse = errors.New("parse error")

	// ErrUnsupportedFormat indicates an unknown stylesheet or output format.
	ErrUnsupportedFormat = errors.New("unsupported format")
)
