package parser

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/ukaji3/tablerepair-go/pkg/tablerepair/models"
)

// textGrid builds a grid from plain rows; "" becomes a nil cell.
func textGrid(rows ...[]string) models.RawGrid {
	cells := make([][]*models.GridCell, len(rows))
	for i, row := range rows {
		cells[i] = make([]*models.GridCell, len(row))
		for j, text := range row {
			if text != "" {
				cells[i][j] = &models.GridCell{Text: text, RowSpan: 1, ColSpan: 1}
			}
		}
	}
	return models.RawGrid{NumRows: len(rows), NumCols: len(rows[0]), Cells: cells}
}

func rowAt(index int, raw []*models.GridCell) Row {
	cells := make([]models.CellValue, len(raw))
	for i, c := range raw {
		cells[i] = ParseCell(c)
	}
	return Row{Index: index, Cells: cells, Raw: raw}
}

func cellsOf(texts ...string) []*models.GridCell {
	return textGrid(texts).Cells[0]
}

func TestDetectHeader(t *testing.T) {
	p := DefaultParams()

	flagged := cellsOf("1", "2", "3")
	flagged[0].ColumnHeader = true
	flagged[1].ColumnHeader = true

	halfFlagged := cellsOf("1", "2")
	halfFlagged[0].ColumnHeader = true

	spanning := cellsOf("Metals", "", "7")
	spanning[0].ColSpan = 2

	tests := map[string]struct {
		row      Row
		expected HeaderSignals
	}{
		"keywords without flags or spans": {
			row:      rowAt(5, cellsOf("Sample ID", "Date", "Concentration (mg/L)")),
			expected: HeaderSignals{Keyword: true},
		},
		"explicit flags": {
			row:      rowAt(5, flagged),
			expected: HeaderSignals{Flagged: true},
		},
		"half flagged is not enough": {
			row:      rowAt(5, halfFlagged),
			expected: HeaderSignals{},
		},
		"spanning cell": {
			row:      rowAt(5, spanning),
			expected: HeaderSignals{Spanning: true},
		},
		"leading text row": {
			row:      rowAt(0, cellsOf("Foo", "Bar", "12")),
			expected: HeaderSignals{Position: true},
		},
		"text row below the leading rows": {
			row:      rowAt(3, cellsOf("Foo", "Bar", "12")),
			expected: HeaderSignals{},
		},
		"data row": {
			row:      rowAt(1, cellsOf("Lead", "0.046 U", "0.5")),
			expected: HeaderSignals{},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			req := require.New(t)
			signals := DetectHeader(tc.row, p)
			req.Equal(tc.expected, signals)
			req.Equal(tc.expected.Any(), signals.Any())
		})
	}
}

func TestClassifyRows(t *testing.T) {
	req := require.New(t)

	grid := textGrid(
		[]string{"Analyte", "Result", "Limit"},
		[]string{"Lead", "0.046 U", "0.5"},
		[]string{"", "-", ""},
		[]string{"Arsenic", "12.3", "0.5"},
	)

	result := ClassifyRows(ParseRows(grid, DefaultParams()), DefaultParams())

	req.Equal([][]string{{"Analyte", "Result", "Limit"}}, result.Headers)
	req.Len(result.HeaderRows, 1)
	req.Len(result.Data, 2)
	req.Equal("Lead", result.Data[0][0].RawText)
	req.Equal("Arsenic", result.Data[1][0].RawText)
}

func TestClassifyRows_NoHeaders(t *testing.T) {
	req := require.New(t)

	grid := textGrid(
		[]string{"1", "2"},
		[]string{"3", "4"},
	)

	result := ClassifyRows(ParseRows(grid, DefaultParams()), DefaultParams())
	req.Empty(result.Headers)
	req.Len(result.Data, 2)
}

func TestNumericDominant(t *testing.T) {
	q := DefaultParams().Qualifiers
	tests := map[string]bool{
		"0.5":            true,
		"0.046 U":        true,
		"0.5J":           true,
		"27,900":         true,
		"-1.5":           true,
		"U":              false,
		"Lead":           false,
		"27900 1310 262": false,
		"":               false,
	}

	for input, expected := range tests {
		require.Equal(t, expected, numericDominant(input, q), "numericDominant(%q)", input)
	}
}
