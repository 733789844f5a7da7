package dataset

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// LoadXLSX reads one worksheet of a spreadsheet. Trailing blank cells are
// trimmed by excelize, so short rows are padded back to the header width;
// rows wider than the header are dropped like malformed CSV rows. Blank rows
// are skipped the way encoding/csv skips empty lines.
func LoadXLSX(path string, opts LoadOptions) (*Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, &IngestionError{Path: path, Err: err}
	}
	defer func() { _ = f.Close() }()

	sheet := opts.Sheet
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, &IngestionError{Path: path, Err: fmt.Errorf("workbook has no sheets")}
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, &IngestionError{Path: path, Err: fmt.Errorf("failed to read sheet %q: %w", sheet, err)}
	}
	if len(rows) == 0 {
		return nil, &IngestionError{Path: path, Err: ErrNoHeader}
	}

	table := &Table{Source: path, Header: normalizeHeader(rows[0])}
	width := len(table.Header)

	for i, row := range rows[1:] {
		if opts.MaxRows > 0 && len(table.Records) >= opts.MaxRows {
			break
		}
		line := i + 2
		if blank(row) {
			continue
		}
		if len(row) > width {
			table.drop(&RowParseError{Line: line, Err: errFieldCount}, opts)
			continue
		}
		if !validUTF8(row) {
			table.drop(&RowParseError{Line: line, Err: errEncoding}, opts)
			continue
		}

		record := make(Record, width)
		copy(record, row)
		table.Records = append(table.Records, record)
	}

	return table, nil
}

func blank(row []string) bool {
	for _, cell := range row {
		if cell != "" {
			return false
		}
	}
	return true
}
