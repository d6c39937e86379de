// Package agenda provides the business logic for the agenda board:
// the row collection, the spreadsheet import pipeline, and the
// normalization rules that turn raw sheet cells into agenda rows.
// This package has no UI dependencies and can be used by any frontend.
package agenda

// Row is one agenda entry. The ID is assigned at creation and never
// changes; edits replace the content fields only.
type Row struct {
	ID         string `json:"id"`
	Time       string `json:"time"`
	Department string `json:"department"`
	Issue      string `json:"issue"`
	Presenter  string `json:"presenter"`
}

// Fields holds the editable content of a Row (everything but the ID).
type Fields struct {
	Time       string `json:"time"`
	Department string `json:"department"`
	Issue      string `json:"issue"`
	Presenter  string `json:"presenter"`
}

// blank reports whether every content field is empty. Fields are trimmed
// during normalization, so a plain comparison is enough here.
func (r Row) blank() bool {
	return r.Time == "" && r.Department == "" && r.Issue == "" && r.Presenter == ""
}

// ImportResult contains the final result of a spreadsheet import.
type ImportResult struct {
	FileName     string `json:"fileName"`
	ParsedRows   int    `json:"parsedRows"`   // data rows found after the header
	Imported     int    `json:"imported"`     // rows added to the table
	SkippedBlank int    `json:"skippedBlank"` // rows dropped as entirely blank
}
