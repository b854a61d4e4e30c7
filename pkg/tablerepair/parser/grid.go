package parser

import (
	"errors"
	"fmt"

	"github.com/ukaji3/tablerepair-go/pkg/tablerepair/models"
)

// ErrNoGrid indicates that a table input carries no usable cell structure.
var ErrNoGrid = errors.New("no table grid found")

// maxGridCells bounds the rows x columns area built from a cell list.
const maxGridCells = 1 << 22

// ResolveGrid builds the raw grid of a table input. It tries, in order, the
// docling grid, the docling cell list, a flattened grid and a dataframe
// export. It returns ErrNoGrid when none is present.
func ResolveGrid(in models.TableInput) (models.RawGrid, error) {
	switch {
	case in.Data != nil && len(in.Data.Grid) > 0:
		return normalizeGrid(in.Data.NumRows, in.Data.NumCols, in.Data.Grid), nil
	case in.Data != nil && len(in.Data.TableCells) > 0:
		return gridFromCells(in.Data.NumRows, in.Data.NumCols, in.Data.TableCells)
	case len(in.Grid) > 0:
		return normalizeGrid(in.NumRows, in.NumCols, in.Grid), nil
	case len(in.Headers) > 0 || len(in.Rows) > 0:
		return gridFromFrame(in.Headers, in.Rows), nil
	}
	return models.RawGrid{}, ErrNoGrid
}

func normalizeGrid(numRows, numCols int, cells [][]*models.GridCell) models.RawGrid {
	if numRows < len(cells) {
		numRows = len(cells)
	}
	for _, row := range cells {
		if len(row) > numCols {
			numCols = len(row)
		}
	}
	return models.RawGrid{NumRows: numRows, NumCols: numCols, Cells: cells}
}

// gridFromCells places every cell at each position it covers. Offsets that
// would make the grid larger than maxGridCells are rejected.
func gridFromCells(numRows, numCols int, cells []models.GridCell) (models.RawGrid, error) {
	placed := make([]*models.GridCell, len(cells))
	for i := range cells {
		c := cells[i]
		if c.RowSpan < 1 {
			c.RowSpan = 1
		}
		if c.ColSpan < 1 {
			c.ColSpan = 1
		}
		if c.EndRow <= c.StartRow {
			c.EndRow = c.StartRow + c.RowSpan
		}
		if c.EndCol <= c.StartCol {
			c.EndCol = c.StartCol + c.ColSpan
		}
		if c.EndRow > numRows {
			numRows = c.EndRow
		}
		if c.EndCol > numCols {
			numCols = c.EndCol
		}
		placed[i] = &c
	}

	numRows, numCols = max(numRows, 0), max(numCols, 0)
	if numRows > maxGridCells || numCols > maxGridCells || numRows*numCols > maxGridCells {
		return models.RawGrid{}, fmt.Errorf("%w: %d x %d cells exceeds %d", ErrNoGrid, numRows, numCols, maxGridCells)
	}

	grid := make([][]*models.GridCell, numRows)
	for r := range grid {
		grid[r] = make([]*models.GridCell, numCols)
	}
	for _, c := range placed {
		for r := max(c.StartRow, 0); r < c.EndRow; r++ {
			for col := max(c.StartCol, 0); col < c.EndCol; col++ {
				grid[r][col] = c
			}
		}
	}

	return models.RawGrid{NumRows: numRows, NumCols: numCols, Cells: grid}, nil
}

// gridFromFrame turns a dataframe export into a grid whose first row is the
// flagged header row.
func gridFromFrame(headers []string, rows [][]interface{}) models.RawGrid {
	var grid [][]*models.GridCell
	numCols := len(headers)

	if len(headers) > 0 {
		row := make([]*models.GridCell, len(headers))
		for j, h := range headers {
			row[j] = frameCell(h, 0, j)
			row[j].ColumnHeader = true
		}
		grid = append(grid, row)
	}

	for _, values := range rows {
		r := len(grid)
		row := make([]*models.GridCell, len(values))
		for j, v := range values {
			if v == nil {
				continue
			}
			row[j] = frameCell(cellText(v), r, j)
			row[j].ColumnHeader = headerHint(v)
		}
		if len(row) > numCols {
			numCols = len(row)
		}
		grid = append(grid, row)
	}

	return models.RawGrid{NumRows: len(grid), NumCols: numCols, Cells: grid}
}

func frameCell(text string, r, c int) *models.GridCell {
	return &models.GridCell{
		Text:     text,
		RowSpan:  1,
		ColSpan:  1,
		StartRow: r,
		EndRow:   r + 1,
		StartCol: c,
		EndCol:   c + 1,
	}
}
