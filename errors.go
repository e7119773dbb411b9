package shipdash

import "errors"

// Error kinds. Every error returned by this package wraps exactly one of
// them, test with errors.Is.
var (
	// ErrMissingInput is returned when the input file does not exist.
	ErrMissingInput = errors.New("missing input file")

	// ErrSchema is returned when an expected column is absent, has the
	// wrong type or contains missing values.
	ErrSchema = errors.New("schema error")

	// ErrParse is returned for malformed CSV: no header or inconsistent
	// field counts.
	ErrParse = errors.New("parse error")

	// ErrWrite is returned when the output directory or a file in it
	// cannot be written.
	ErrWrite = errors.New("write error")

	// ErrConfig is returned for an unreadable or invalid config file.
	ErrConfig = errors.New("config error")
)
