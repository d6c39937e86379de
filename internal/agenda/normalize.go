package agenda

// normalize.go turns a raw sheet (header row plus data rows) into agenda
// rows. The header match is order-independent, case-insensitive, and
// ignores surrounding whitespace; columns the board does not know about
// are ignored.

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// RequiredColumns are the header names an imported sheet must contain.
var RequiredColumns = []string{"time", "department", "issue", "presenter"}

// HeaderIndex maps lower-cased column names to their position in a sheet row.
type HeaderIndex map[string]int

// MakeHeaderIndex builds a HeaderIndex from a header row.
// Keys are trimmed and lowercased for case-insensitive matching.
func MakeHeaderIndex(header []string) HeaderIndex {
	idx := make(HeaderIndex, len(header))
	for i, h := range header {
		idx[strings.ToLower(strings.TrimSpace(h))] = i
	}
	return idx
}

// missingColumns returns the required columns absent from idx, in
// declaration order.
func missingColumns(idx HeaderIndex) []string {
	var missing []string
	for _, col := range RequiredColumns {
		if _, ok := idx[col]; !ok {
			missing = append(missing, col)
		}
	}
	return missing
}

// Normalize converts parsed sheet records into agenda rows. The first
// record is the header row.
//
// The time column runs through ToClockString so fractional-day serials
// come out as HH:MM; every other column is kept as trimmed text. Rows
// whose four fields are all blank after trimming are dropped silently.
// Each surviving row gets a fresh unique ID.
//
// Returns ErrMissingHeaders (with the absent column names) when any
// required column is missing from the header row. An empty result with a
// nil error means every data row was filtered out; the caller decides
// how to report that.
func Normalize(records [][]string) ([]Row, error) {
	if len(records) == 0 {
		return nil, nil
	}

	idx := MakeHeaderIndex(records[0])
	if missing := missingColumns(idx); len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingHeaders, strings.Join(missing, ", "))
	}

	var rows []Row
	for _, record := range records[1:] {
		row := Row{
			ID:         uuid.NewString(),
			Time:       ToClockString(cellAt(record, idx["time"])),
			Department: cellAt(record, idx["department"]),
			Issue:      cellAt(record, idx["issue"]),
			Presenter:  cellAt(record, idx["presenter"]),
		}
		if row.blank() {
			continue
		}
		rows = append(rows, row)
	}

	return rows, nil
}

// cellAt returns the trimmed cell at position i, or "" when the record is
// shorter than the header row.
func cellAt(record []string, i int) string {
	if i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}
