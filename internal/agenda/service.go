package agenda

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// acceptedExtensions are the upload filename extensions the import
// pipeline accepts, matched case-insensitively.
var acceptedExtensions = map[string]bool{
	".xlsx": true,
	".xls":  true,
}

// Parser is the external spreadsheet capability the import pipeline
// depends on: parse workbook bytes into the first sheet's rows, header
// row included. How the parser gets here (static link, plugin, fake in
// tests) is the caller's concern; a nil Parser means "not loaded yet".
type Parser interface {
	Parse(data []byte) ([][]string, error)
}

// Service provides the agenda board operations: manual row CRUD, the
// highlight toggle, and the spreadsheet import pipeline.
type Service struct {
	store  *Store
	parser Parser
}

// NewService creates a Service over the given store. parser may be nil,
// in which case imports are rejected with ErrParserUnavailable until a
// parser is provided.
func NewService(store *Store, parser Parser) *Service {
	return &Service{store: store, parser: parser}
}

// ParserReady reports whether the spreadsheet parser is available.
// The UI uses this to keep the upload control disabled until it is.
func (s *Service) ParserReady() bool {
	return s.parser != nil
}

// Rows returns the table contents in display order.
func (s *Service) Rows() []Row {
	return s.store.List()
}

// Highlighted returns the highlighted row ID, or "" when none.
func (s *Service) Highlighted() string {
	return s.store.Highlighted()
}

// AddRow creates a row from manual entry. All four fields must be
// non-empty after trimming; otherwise ErrFieldsRequired is returned and
// the table is unchanged.
func (s *Service) AddRow(ctx context.Context, f Fields) (Row, error) {
	f = trimFields(f)
	if f.Time == "" || f.Department == "" || f.Issue == "" || f.Presenter == "" {
		return Row{}, ErrFieldsRequired
	}

	row := Row{
		ID:         uuid.NewString(),
		Time:       f.Time,
		Department: f.Department,
		Issue:      f.Issue,
		Presenter:  f.Presenter,
	}
	s.store.Append(ctx, row)

	return row, nil
}

// UpdateRow replaces the content fields of an existing row, keeping its
// ID. The same all-fields-required rule as AddRow applies. An unknown ID
// is a no-op and reports false, not an error.
func (s *Service) UpdateRow(ctx context.Context, id string, f Fields) (bool, error) {
	f = trimFields(f)
	if f.Time == "" || f.Department == "" || f.Issue == "" || f.Presenter == "" {
		return false, ErrFieldsRequired
	}

	return s.store.Replace(ctx, id, f), nil
}

// DeleteRow removes a row by ID. Unknown IDs are a no-op. Deleting the
// highlighted row clears the highlight.
func (s *Service) DeleteRow(ctx context.Context, id string) bool {
	return s.store.Remove(ctx, id)
}

// ToggleHighlight flips the cosmetic highlight on a row and returns the
// currently highlighted row ID, or "" when none.
func (s *Service) ToggleHighlight(id string) string {
	return s.store.ToggleHighlight(id)
}

// Import runs the upload pipeline over one file: availability gate,
// extension gate, parse, header check, normalization, merge. On any
// failure the table is left untouched; on success all normalized rows
// are appended as one unit.
//
// The error taxonomy callers can match with errors.Is/As:
// ErrParserUnavailable, ErrInvalidFileType, ErrEmptyFile,
// ErrMissingHeaders, ErrNoValidRows (informational, zero-effect), and
// *ParseError for anything the parser itself rejects.
func (s *Service) Import(ctx context.Context, filename string, data []byte) (ImportResult, error) {
	result := ImportResult{FileName: filename}

	if s.parser == nil {
		return result, ErrParserUnavailable
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if !acceptedExtensions[ext] {
		return result, fmt.Errorf("%w: %q", ErrInvalidFileType, ext)
	}

	records, err := s.parse(data)
	if err != nil {
		return result, err
	}
	if len(records) == 0 {
		return result, ErrEmptyFile
	}
	result.ParsedRows = len(records) - 1

	rows, err := Normalize(records)
	if err != nil {
		return result, err
	}
	if len(rows) == 0 {
		return result, ErrNoValidRows
	}

	s.store.AppendMany(ctx, rows)
	result.Imported = len(rows)
	result.SkippedBlank = result.ParsedRows - len(rows)

	slog.Info("import complete",
		"file", filename,
		"parsed", result.ParsedRows,
		"imported", result.Imported,
		"skipped_blank", result.SkippedBlank,
	)

	return result, nil
}

// parse invokes the external parser, converting both returned errors and
// panics into *ParseError so nothing from the parser escapes the
// pipeline boundary.
func (s *Service) parse(data []byte) (records [][]string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &ParseError{Err: fmt.Errorf("parser panic: %v", r)}
		}
	}()

	records, parseErr := s.parser.Parse(data)
	if parseErr != nil {
		return nil, &ParseError{Err: parseErr}
	}
	return records, nil
}

func trimFields(f Fields) Fields {
	return Fields{
		Time:       strings.TrimSpace(f.Time),
		Department: strings.TrimSpace(f.Department),
		Issue:      strings.TrimSpace(f.Issue),
		Presenter:  strings.TrimSpace(f.Presenter),
	}
}
