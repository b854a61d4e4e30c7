package tablerepair

import (
	"errors"
	"fmt"

	"github.com/ukaji3/tablerepair-go/pkg/tablerepair/parser"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the input is neither a docling document nor a workbook.
var ErrInvalidFormat = errors.New("invalid input format")

// ErrNoGrid indicates a table input without any recognizable grid or dataframe.
var ErrNoGrid = parser.ErrNoGrid

// TableError represents the failure of one table in a batch.
type TableError struct {
	Index  int
	Source string
	Err    error
}

func (e *TableError) Error() string {
	if e.Source == "" {
		return fmt.Sprintf("table %d: %v", e.Index, e.Err)
	}
	return fmt.Sprintf("table %d (%s): %v", e.Index, e.Source, e.Err)
}

func (e *TableError) Unwrap() error {
	return e.Err
}

// NewTableError creates a new TableError.
func NewTableError(index int, source string, err error) *TableError {
	return &TableError{
		Index:  index,
		Source: source,
		Err:    err,
	}
}
