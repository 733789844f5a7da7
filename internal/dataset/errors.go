package dataset

import (
	"errors"
	"fmt"
)

// ErrNoHeader is returned when the input has no header row
var ErrNoHeader = errors.New("missing header row")

// IngestionError reports an input that could not be opened or read.
// It is fatal: nothing is shown when loading fails.
type IngestionError struct {
	Path string
	Err  error
}

func (e *IngestionError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("failed to load dataset: %v", e.Err)
	}
	return fmt.Sprintf("failed to load dataset %s: %v", e.Path, e.Err)
}

func (e *IngestionError) Unwrap() error {
	return e.Err
}

// RowParseError describes a single row dropped during ingestion
type RowParseError struct {
	Line int
	Err  error
}

func (e *RowParseError) Error() string {
	return fmt.Sprintf("row at line %d dropped: %v", e.Line, e.Err)
}

func (e *RowParseError) Unwrap() error {
	return e.Err
}

// errFieldCount and errEncoding classify dropped rows
var (
	errFieldCount = errors.New("wrong number of fields")
	errEncoding   = errors.New("invalid UTF-8")
)
