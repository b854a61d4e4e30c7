package output

import (
	"github.com/ukaji3/tablerepair-go/pkg/tablerepair/models"
	"github.com/ukaji3/tablerepair-go/pkg/tablerepair/parser"
)

// QualifierSuffix is appended to a column name to store the qualifiers that
// accompany its numeric value.
const QualifierSuffix = "_qualifiers"

// ToStructuredTable renders data rows as dictionaries keyed by column name.
//
// Numbers win over text: one number is stored bare, several as a list, and
// qualifiers next to numbers go to "<column>_qualifiers". Cells without numbers
// store their parsed values (one unwrapped, several as a list) or the raw text.
// Cells beyond the column mapping are keyed by their synthesized column name.
// Duplicate column names overwrite left to right.
func ToStructuredTable(ts *models.TableStructure) models.StructuredTable {
	rows := make([]map[string]interface{}, 0, len(ts.DataRows))
	for _, row := range ts.DataRows {
		record := make(map[string]interface{}, len(row))
		for i, cell := range row {
			name, ok := ts.ColumnMapping[i]
			if !ok {
				name = parser.ColumnName(i)
			}
			putCell(record, name, cell)
		}
		rows = append(rows, record)
	}

	return models.StructuredTable{
		Headers: nonNilHeaders(ts.Headers),
		Columns: ts.ColumnMapping,
		Rows:    rows,
		Context: ts.Metadata["context"],
	}
}

func putCell(record map[string]interface{}, name string, cell models.CellValue) {
	switch {
	case len(cell.NumericValues) == 1:
		record[name] = cell.NumericValues[0]
	case len(cell.NumericValues) > 1:
		record[name] = append([]float64(nil), cell.NumericValues...)
	case len(cell.ParsedValues) == 1:
		record[name] = cell.ParsedValues[0]
	case len(cell.ParsedValues) > 1:
		record[name] = append([]string(nil), cell.ParsedValues...)
	default:
		record[name] = cell.RawText
	}

	if len(cell.NumericValues) > 0 && len(cell.Qualifiers) > 0 {
		record[name+QualifierSuffix] = append([]string(nil), cell.Qualifiers...)
	}
}
