package agenda

import (
	"context"
	"errors"
	"strings"
	"testing"
)

// stubParser returns canned records or a canned error.
type stubParser struct {
	records [][]string
	err     error
}

func (p *stubParser) Parse(_ []byte) ([][]string, error) {
	return p.records, p.err
}

// panicParser models a parser whose internals blow up on bad input.
type panicParser struct{}

func (panicParser) Parse(_ []byte) ([][]string, error) {
	panic("corrupt zip directory")
}

func newTestService(parser Parser) (*Service, *Store) {
	store := NewStore(context.Background(), &memSlot{})
	return NewService(store, parser), store
}

// ============================================================================
// Import pipeline
// ============================================================================

func TestImport_ParserUnavailable(t *testing.T) {
	svc, store := newTestService(nil)

	_, err := svc.Import(context.Background(), "agenda.xlsx", []byte("data"))
	if !errors.Is(err, ErrParserUnavailable) {
		t.Fatalf("Import() error = %v, want ErrParserUnavailable", err)
	}
	if store.Len() != 0 {
		t.Errorf("store changed on gated import: %d rows", store.Len())
	}
}

func TestImport_InvalidFileType(t *testing.T) {
	tests := []string{"agenda.csv", "agenda.txt", "agenda", "agenda.xlsx.pdf"}

	svc, _ := newTestService(&stubParser{})
	for _, name := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := svc.Import(context.Background(), name, []byte("data"))
			if !errors.Is(err, ErrInvalidFileType) {
				t.Errorf("Import(%q) error = %v, want ErrInvalidFileType", name, err)
			}
		})
	}
}

func TestImport_ExtensionCaseInsensitive(t *testing.T) {
	svc, _ := newTestService(&stubParser{
		records: [][]string{
			{"time", "department", "issue", "presenter"},
			{"0.5", "Ops", "Standup", "B. Chen"},
		},
	})

	for _, name := range []string{"agenda.XLSX", "agenda.Xls"} {
		if _, err := svc.Import(context.Background(), name, []byte("data")); err != nil {
			t.Errorf("Import(%q) error = %v, want nil", name, err)
		}
	}
}

func TestImport_ParseFailure(t *testing.T) {
	svc, store := newTestService(&stubParser{err: errors.New("zip: not a valid zip file")})

	_, err := svc.Import(context.Background(), "agenda.xlsx", []byte("garbage"))

	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("Import() error = %v, want *ParseError", err)
	}
	if !strings.Contains(parseErr.Error(), "not a valid zip file") {
		t.Errorf("underlying message lost: %q", parseErr.Error())
	}
	if store.Len() != 0 {
		t.Errorf("store changed on parse failure: %d rows", store.Len())
	}
}

func TestImport_ParserPanicBecomesParseError(t *testing.T) {
	svc, store := newTestService(panicParser{})

	_, err := svc.Import(context.Background(), "agenda.xlsx", []byte("garbage"))

	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("Import() error = %v, want *ParseError", err)
	}
	if store.Len() != 0 {
		t.Errorf("store changed on parser panic: %d rows", store.Len())
	}
}

func TestImport_EmptyFile(t *testing.T) {
	svc, _ := newTestService(&stubParser{records: [][]string{}})

	_, err := svc.Import(context.Background(), "agenda.xlsx", []byte("data"))
	if !errors.Is(err, ErrEmptyFile) {
		t.Fatalf("Import() error = %v, want ErrEmptyFile", err)
	}
}

func TestImport_MissingHeadersLeavesStoreUntouched(t *testing.T) {
	svc, store := newTestService(&stubParser{
		records: [][]string{
			{"Time", "Department", "Issue"}, // presenter absent
			{"0.375", "Finance", "Budget"},
		},
	})
	store.Append(context.Background(), testRow("r1", "08:00", "HR", "Hiring", "D. Kim"))

	_, err := svc.Import(context.Background(), "agenda.xlsx", []byte("data"))
	if !errors.Is(err, ErrMissingHeaders) {
		t.Fatalf("Import() error = %v, want ErrMissingHeaders", err)
	}
	if store.Len() != 1 {
		t.Errorf("store changed on missing headers: %d rows", store.Len())
	}
}

func TestImport_NoValidRows(t *testing.T) {
	svc, store := newTestService(&stubParser{
		records: [][]string{
			{"time", "department", "issue", "presenter"},
			{"", "", "", ""},
			{" ", "", "  ", ""},
		},
	})

	result, err := svc.Import(context.Background(), "agenda.xlsx", []byte("data"))
	if !errors.Is(err, ErrNoValidRows) {
		t.Fatalf("Import() error = %v, want ErrNoValidRows", err)
	}
	if result.ParsedRows != 2 {
		t.Errorf("ParsedRows = %d, want 2", result.ParsedRows)
	}
	if store.Len() != 0 {
		t.Errorf("store changed: %d rows", store.Len())
	}
}

func TestImport_Success(t *testing.T) {
	svc, store := newTestService(&stubParser{
		records: [][]string{
			{"Time", "Department", "Issue", "Presenter"},
			{"0.375", "Finance", "Budget", "A. Lee"},
			{"", "", "", ""}, // blank, skipped
			{"0.5", "Ops", "Staffing", "B. Chen"},
		},
	})
	store.Append(context.Background(), testRow("r1", "08:00", "HR", "Hiring", "D. Kim"))

	result, err := svc.Import(context.Background(), "board.xlsx", []byte("data"))
	if err != nil {
		t.Fatalf("Import() error = %v", err)
	}

	if result.FileName != "board.xlsx" {
		t.Errorf("FileName = %q, want %q", result.FileName, "board.xlsx")
	}
	if result.ParsedRows != 3 || result.Imported != 2 || result.SkippedBlank != 1 {
		t.Errorf("result = %+v, want parsed 3 / imported 2 / skipped 1", result)
	}

	rows := store.List()
	if len(rows) != 3 {
		t.Fatalf("store has %d rows, want 3", len(rows))
	}
	// Imported rows land after existing ones, in sheet order
	if rows[0].ID != "r1" {
		t.Errorf("existing row displaced: %+v", rows[0])
	}
	if rows[1].Time != "09:00" || rows[2].Time != "12:00" {
		t.Errorf("imported rows out of order: %q, %q", rows[1].Time, rows[2].Time)
	}
}

// ============================================================================
// Manual row operations
// ============================================================================

func TestAddRow(t *testing.T) {
	svc, store := newTestService(nil)

	row, err := svc.AddRow(context.Background(), Fields{
		Time: " 09:00 ", Department: "Finance", Issue: "Budget", Presenter: "A. Lee",
	})
	if err != nil {
		t.Fatalf("AddRow() error = %v", err)
	}
	if row.ID == "" {
		t.Error("AddRow assigned no ID")
	}
	if row.Time != "09:00" {
		t.Errorf("Time = %q, want trimmed %q", row.Time, "09:00")
	}
	if store.Len() != 1 {
		t.Errorf("store has %d rows, want 1", store.Len())
	}
}

func TestAddRow_RequiresAllFields(t *testing.T) {
	tests := []struct {
		name   string
		fields Fields
	}{
		{name: "empty issue", fields: Fields{Time: "09:00", Department: "Finance", Presenter: "A. Lee"}},
		{name: "whitespace department", fields: Fields{Time: "09:00", Department: "  ", Issue: "Budget", Presenter: "A. Lee"}},
		{name: "all empty", fields: Fields{}},
	}

	svc, store := newTestService(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.AddRow(context.Background(), tt.fields)
			if !errors.Is(err, ErrFieldsRequired) {
				t.Errorf("AddRow() error = %v, want ErrFieldsRequired", err)
			}
		})
	}
	if store.Len() != 0 {
		t.Errorf("rejected rows were added: %d", store.Len())
	}
}

func TestUpdateRow(t *testing.T) {
	svc, store := newTestService(nil)
	store.Append(context.Background(), testRow("r1", "09:00", "Finance", "Budget", "A. Lee"))

	updated, err := svc.UpdateRow(context.Background(), "r1", Fields{
		Time: "10:00", Department: "Finance", Issue: "Forecast", Presenter: "A. Lee",
	})
	if err != nil {
		t.Fatalf("UpdateRow() error = %v", err)
	}
	if !updated {
		t.Error("UpdateRow reported no update for existing row")
	}
	if store.List()[0].Issue != "Forecast" {
		t.Errorf("Issue = %q, want %q", store.List()[0].Issue, "Forecast")
	}
}

func TestUpdateRow_UnknownIDIsNoOp(t *testing.T) {
	svc, store := newTestService(nil)
	store.Append(context.Background(), testRow("r1", "09:00", "Finance", "Budget", "A. Lee"))

	updated, err := svc.UpdateRow(context.Background(), "missing", Fields{
		Time: "10:00", Department: "X", Issue: "Y", Presenter: "Z",
	})
	if err != nil {
		t.Fatalf("UpdateRow() error = %v", err)
	}
	if updated {
		t.Error("UpdateRow reported an update for unknown ID")
	}
	if got := store.List()[0]; got.Issue != "Budget" {
		t.Errorf("collection changed: %+v", got)
	}
}

func TestDeleteRow_ClearsHighlight(t *testing.T) {
	svc, store := newTestService(nil)
	store.Append(context.Background(), testRow("r1", "09:00", "Finance", "Budget", "A. Lee"))

	svc.ToggleHighlight("r1")
	if svc.Highlighted() != "r1" {
		t.Fatalf("Highlighted() = %q, want r1", svc.Highlighted())
	}

	if !svc.DeleteRow(context.Background(), "r1") {
		t.Fatal("DeleteRow returned false")
	}
	if svc.Highlighted() != "" {
		t.Errorf("highlight not cleared: %q", svc.Highlighted())
	}
	if store.Len() != 0 {
		t.Errorf("store has %d rows, want 0", store.Len())
	}
}

func TestParserReady(t *testing.T) {
	svc, _ := newTestService(nil)
	if svc.ParserReady() {
		t.Error("ParserReady() = true with nil parser")
	}

	svc, _ = newTestService(&stubParser{})
	if !svc.ParserReady() {
		t.Error("ParserReady() = false with parser set")
	}
}
