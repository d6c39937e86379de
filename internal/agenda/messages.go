// Package agenda error codes reference.
//
// This file defines user-friendly status messages with codes for support
// reference. When users report a problem, the code pins down which gate
// of the import pipeline (or which validation) rejected the action.
//
// # Import Errors (IMP001-IMP099)
//
//	IMP001 - Parser unavailable: the spreadsheet parser is not loaded
//	IMP002 - Invalid file type: extension is not .xlsx or .xls
//	IMP003 - Empty file: the parsed sheet had no rows
//	IMP004 - Missing headers: a required column is absent
//	IMP005 - No valid rows: every data row was blank (informational)
//	IMP006 - Parse failure: the parser rejected the file contents
//
// # Validation Errors (VAL001-VAL099)
//
//	VAL001 - Fields required: a manual row was submitted with an empty field
//
// # Default Error (ERR000)
//
//	ERR000 - Unknown error: fallback when no sentinel matches
package agenda

import "errors"

// UserMessage provides user-friendly error information with actionable guidance.
type UserMessage struct {
	Message string `json:"message"`          // What happened
	Action  string `json:"action,omitempty"` // What to do about it
	Code    string `json:"code"`             // Error code for support reference
}

// MapError converts an error from the import pipeline or a row operation
// into a user-facing status message. Unknown errors map to ERR000; the
// technical detail stays in the server logs.
func MapError(err error) UserMessage {
	switch {
	case errors.Is(err, ErrParserUnavailable):
		return UserMessage{
			Message: "The spreadsheet parser is still loading",
			Action:  "Wait a moment and try the upload again",
			Code:    "IMP001",
		}
	case errors.Is(err, ErrInvalidFileType):
		return UserMessage{
			Message: "This file type cannot be imported",
			Action:  "Upload a .xlsx or .xls spreadsheet",
			Code:    "IMP002",
		}
	case errors.Is(err, ErrEmptyFile):
		return UserMessage{
			Message: "The spreadsheet has no rows",
			Action:  "Check that the first sheet contains a header row and data",
			Code:    "IMP003",
		}
	case errors.Is(err, ErrMissingHeaders):
		return UserMessage{
			Message: "The spreadsheet is missing required columns",
			Action:  "Include time, department, issue, and presenter headers",
			Code:    "IMP004",
		}
	case errors.Is(err, ErrNoValidRows):
		return UserMessage{
			Message: "No rows were added: every row in the file was empty",
			Action:  "Fill in at least one field per row",
			Code:    "IMP005",
		}
	case errors.Is(err, ErrFieldsRequired):
		return UserMessage{
			Message: "Please fill in all fields",
			Action:  "Time, department, issue, and presenter are all required",
			Code:    "VAL001",
		}
	}

	var parseErr *ParseError
	if errors.As(err, &parseErr) {
		return UserMessage{
			Message: "The file could not be parsed: " + parseErr.Err.Error(),
			Action:  "Check that the file is a valid spreadsheet and try again",
			Code:    "IMP006",
		}
	}

	return UserMessage{
		Message: "An unexpected error occurred",
		Action:  "Please try again or contact support",
		Code:    "ERR000",
	}
}
