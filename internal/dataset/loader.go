package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// LoadOptions controls how an input file is tokenized
type LoadOptions struct {
	Delimiter        rune
	Comment          rune
	LazyQuotes       bool
	TrimLeadingSpace bool
	Sheet            string // xlsx only, empty means first sheet
	MaxRows          int    // 0 means unlimited

	// OnDrop is called for every row discarded during ingestion
	OnDrop func(*RowParseError)
}

// DefaultLoadOptions returns comma-separated defaults
func DefaultLoadOptions() LoadOptions {
	return LoadOptions{Delimiter: ','}
}

// IsSpreadsheet reports whether path is read through the xlsx loader
func IsSpreadsheet(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".xlsx")
}

// Load reads a dataset from path, choosing the loader by extension
func Load(path string, opts LoadOptions) (*Table, error) {
	cleanPath := filepath.Clean(path)

	if IsSpreadsheet(cleanPath) {
		return LoadXLSX(cleanPath, opts)
	}

	// #nosec G304 - the path is the user's explicit input
	file, err := os.Open(cleanPath)
	if err != nil {
		return nil, &IngestionError{Path: cleanPath, Err: err}
	}
	defer func() { _ = file.Close() }()

	table, err := LoadCSV(file, opts)
	if err != nil {
		var ingestErr *IngestionError
		if errors.As(err, &ingestErr) {
			ingestErr.Path = cleanPath
		}
		return nil, err
	}
	table.Source = cleanPath
	return table, nil
}

// LoadCSV tokenizes delimited text. The first record is the header; rows
// that fail to parse are dropped and counted.
func LoadCSV(r io.Reader, opts LoadOptions) (*Table, error) {
	reader := csv.NewReader(r)
	if opts.Delimiter != 0 {
		reader.Comma = opts.Delimiter
	}
	reader.Comment = opts.Comment
	reader.LazyQuotes = opts.LazyQuotes
	reader.TrimLeadingSpace = opts.TrimLeadingSpace

	first, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &IngestionError{Err: ErrNoHeader}
		}
		return nil, &IngestionError{Err: fmt.Errorf("failed to read header: %w", err)}
	}

	table := &Table{Header: normalizeHeader(first)}
	// Read sets this from the header, but be explicit about the invariant
	reader.FieldsPerRecord = len(table.Header)

	for opts.MaxRows <= 0 || len(table.Records) < opts.MaxRows {
		fields, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if !errors.As(err, &parseErr) {
				return nil, &IngestionError{Err: err}
			}
			table.drop(&RowParseError{Line: parseErr.StartLine, Err: parseErr.Err}, opts)
			continue
		}

		if !validUTF8(fields) {
			line, _ := reader.FieldPos(0)
			table.drop(&RowParseError{Line: line, Err: errEncoding}, opts)
			continue
		}

		table.Records = append(table.Records, Record(fields))
	}

	return table, nil
}

func (t *Table) drop(rowErr *RowParseError, opts LoadOptions) {
	t.Dropped++
	if opts.OnDrop != nil {
		opts.OnDrop(rowErr)
	}
}

func normalizeHeader(fields []string) Header {
	header := make(Header, len(fields))
	copy(header, fields)
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}
	return header
}

func validUTF8(fields []string) bool {
	for _, f := range fields {
		if !utf8.ValidString(f) {
			return false
		}
	}
	return true
}
