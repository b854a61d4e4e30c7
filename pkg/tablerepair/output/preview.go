package output

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/ukaji3/tablerepair-go/pkg/tablerepair/models"
)

var (
	previewHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")).Padding(0, 1)
	previewCellStyle   = lipgloss.NewStyle().Padding(0, 1)
	previewEmptyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Padding(0, 1)
	previewBorderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// Preview renders a repaired table for the terminal, one column per mapped
// column name. Empty cells are dimmed.
func Preview(ts *models.TableStructure) string {
	rows := make([][]string, len(ts.DataRows))
	for i, row := range ts.DataRows {
		cells := make([]string, len(row))
		for j, c := range row {
			cells[j] = c.RawText
		}
		rows[i] = cells
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(previewBorderStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return previewHeaderStyle
			}
			if row >= 0 && row < len(ts.DataRows) && col < len(ts.DataRows[row]) && ts.DataRows[row][col].IsEmpty {
				return previewEmptyStyle
			}
			return previewCellStyle
		}).
		Headers(ts.ColumnMapping.Names()...).
		Rows(rows...)

	return t.String()
}
