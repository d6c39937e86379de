package agenda

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestMapError_Codes(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code string
	}{
		{name: "parser unavailable", err: ErrParserUnavailable, code: "IMP001"},
		{name: "invalid file type", err: ErrInvalidFileType, code: "IMP002"},
		{name: "empty file", err: ErrEmptyFile, code: "IMP003"},
		{name: "missing headers", err: ErrMissingHeaders, code: "IMP004"},
		{name: "no valid rows", err: ErrNoValidRows, code: "IMP005"},
		{name: "fields required", err: ErrFieldsRequired, code: "VAL001"},
		{name: "wrapped sentinel", err: fmt.Errorf("import: %w", ErrMissingHeaders), code: "IMP004"},
		{name: "parse failure", err: &ParseError{Err: errors.New("bad zip")}, code: "IMP006"},
		{name: "unknown", err: errors.New("something else"), code: "ERR000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := MapError(tt.err)
			if msg.Code != tt.code {
				t.Errorf("MapError(%v).Code = %q, want %q", tt.err, msg.Code, tt.code)
			}
			if msg.Message == "" {
				t.Errorf("MapError(%v) has empty message", tt.err)
			}
		})
	}
}

func TestMapError_ParseFailureSurfacesUnderlyingMessage(t *testing.T) {
	msg := MapError(&ParseError{Err: errors.New("zip: not a valid zip file")})
	if !strings.Contains(msg.Message, "not a valid zip file") {
		t.Errorf("underlying message not surfaced: %q", msg.Message)
	}
}
