// Package output serializes repaired tables.
package output

import "github.com/ukaji3/tablerepair-go/pkg/tablerepair/models"

// ToDetailed renders the flat cell-list shape of a table.
func ToDetailed(ts *models.TableStructure) models.DetailedTable {
	rows := make([][]models.DetailedCell, len(ts.DataRows))
	for i, row := range ts.DataRows {
		cells := make([]models.DetailedCell, len(row))
		for j, c := range row {
			cells[j] = models.DetailedCell{
				RawText:       c.RawText,
				ParsedValues:  nonNilStrings(c.ParsedValues),
				NumericValues: nonNilFloats(c.NumericValues),
				Qualifiers:    nonNilStrings(c.Qualifiers),
				IsEmpty:       c.IsEmpty,
				CellType:      c.CellType,
			}
		}
		rows[i] = cells
	}

	return models.DetailedTable{
		Headers:       nonNilHeaders(ts.Headers),
		DataRows:      rows,
		ColumnMapping: ts.ColumnMapping,
		Metadata:      ts.Metadata,
	}
}

func nonNilStrings(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func nonNilFloats(f []float64) []float64 {
	if f == nil {
		return []float64{}
	}
	return f
}

func nonNilHeaders(h [][]string) [][]string {
	if h == nil {
		return [][]string{}
	}
	return h
}
