// Package spreadsheet adapts the excelize workbook library to the flat
// rows-of-cells shape the agenda import pipeline works with. Only the
// first sheet of a workbook is read.
package spreadsheet

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// ExcelParser parses workbook bytes into the first sheet's rows.
// The zero value is ready to use.
type ExcelParser struct{}

// NewExcelParser returns a parser for .xlsx workbooks.
func NewExcelParser() *ExcelParser {
	return &ExcelParser{}
}

// Parse opens the workbook and returns the first sheet's contents as
// rows of cells, header row included. Cells come back as raw values, so
// a time cell holds its fractional-day serial ("0.375") rather than the
// display format the workbook applies.
func (p *ExcelParser) Parse(data []byte) ([][]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("workbook has no sheets")
	}

	rows, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}

	return rows, nil
}

// Write builds an .xlsx workbook from a header row and data rows and
// returns the encoded bytes. Used by the export endpoint.
func Write(header []string, rows [][]string) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)

	if err := setRow(f, sheet, 1, header); err != nil {
		return nil, err
	}
	for i, row := range rows {
		if err := setRow(f, sheet, i+2, row); err != nil {
			return nil, err
		}
	}

	return f.WriteToBuffer()
}

// setRow writes one sheet row starting at column A of the 1-based row n.
func setRow(f *excelize.File, sheet string, n int, cells []string) error {
	cell, err := excelize.CoordinatesToCellName(1, n)
	if err != nil {
		return fmt.Errorf("row %d: %w", n, err)
	}

	values := make([]interface{}, len(cells))
	for i, c := range cells {
		values[i] = c
	}

	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("write row %d: %w", n, err)
	}
	return nil
}
