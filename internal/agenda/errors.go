package agenda

import "errors"

// Sentinel errors for the import pipeline and manual row operations.
// Callers match these with errors.Is and convert them into user-facing
// status messages via MapError; none of them is fatal.
var (
	// ErrParserUnavailable means no spreadsheet parser is wired in, so
	// uploads are rejected before the file is even read.
	ErrParserUnavailable = errors.New("spreadsheet parser unavailable")

	// ErrInvalidFileType means the uploaded filename does not carry an
	// accepted spreadsheet extension.
	ErrInvalidFileType = errors.New("invalid file type")

	// ErrEmptyFile means the parsed sheet held no rows at all.
	ErrEmptyFile = errors.New("empty file")

	// ErrMissingHeaders means a required column is absent from the header row.
	ErrMissingHeaders = errors.New("missing required headers")

	// ErrNoValidRows means every data row was filtered out as blank.
	// Informational, not a failure: the table is simply left unchanged.
	ErrNoValidRows = errors.New("no valid rows")

	// ErrFieldsRequired means a manually entered row had an empty field.
	ErrFieldsRequired = errors.New("all fields are required")
)

// ParseError wraps a failure from the external spreadsheet parser so the
// underlying message can be surfaced without losing errors.As matching.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string { return "parse failure: " + e.Err.Error() }

func (e *ParseError) Unwrap() error { return e.Err }
