package models

// Texter is implemented by raw cells that carry a text field.
type Texter interface {
	CellText() string
}

// GridCell is one cell of a raw grid as emitted by the extraction engine.
// Field names follow the docling TableCell export.
type GridCell struct {
	// Text is the cell text.
	Text string `json:"text"`
	// RowSpan is the number of grid rows covered by the cell.
	RowSpan int `json:"row_span,omitempty"`
	// ColSpan is the number of grid columns covered by the cell.
	ColSpan int `json:"col_span,omitempty"`
	// ColumnHeader is the engine's column header hint.
	ColumnHeader bool `json:"column_header,omitempty"`
	// RowHeader is the engine's row header hint.
	RowHeader bool `json:"row_header,omitempty"`
	// StartRow is the first covered row (0-based).
	StartRow int `json:"start_row_offset_idx"`
	// EndRow is one past the last covered row.
	EndRow int `json:"end_row_offset_idx"`
	// StartCol is the first covered column (0-based).
	StartCol int `json:"start_col_offset_idx"`
	// EndCol is one past the last covered column.
	EndCol int `json:"end_col_offset_idx"`
}

// CellText returns the cell text. It is safe on a nil receiver.
func (c *GridCell) CellText() string {
	if c == nil {
		return ""
	}
	return c.Text
}

// Spans reports whether the cell covers more than one grid position.
func (c *GridCell) Spans() bool {
	return c != nil && (c.RowSpan > 1 || c.ColSpan > 1)
}

// RawGrid is the rows x columns cell matrix produced by the extraction engine.
// A nil cell is an empty grid position.
type RawGrid struct {
	// NumRows is the declared row count.
	NumRows int `json:"num_rows"`
	// NumCols is the declared column count.
	NumCols int `json:"num_cols"`
	// Cells holds the grid, rows outer.
	Cells [][]*GridCell `json:"grid"`
}
