package parser

import "github.com/ukaji3/tablerepair-go/pkg/tablerepair/models"

// CleanRows drops rows whose cells are all empty and pads the rest with empty
// cells up to width. Rows wider than width are kept whole.
func CleanRows(rows [][]models.CellValue, width int) [][]models.CellValue {
	cleaned := make([][]models.CellValue, 0, len(rows))
	for _, row := range rows {
		if isEmptyRow(row) {
			continue
		}
		out := make([]models.CellValue, len(row), max(len(row), width))
		copy(out, row)
		for len(out) < width {
			out = append(out, models.EmptyCell())
		}
		cleaned = append(cleaned, out)
	}
	return cleaned
}
