package models

import "sort"

// ColumnMapping maps a 0-based column index to its column name.
type ColumnMapping map[int]string

// Names returns the column names ordered by index.
func (m ColumnMapping) Names() []string {
	idx := make([]int, 0, len(m))
	for i := range m {
		idx = append(idx, i)
	}
	sort.Ints(idx)

	names := make([]string, len(idx))
	for i, k := range idx {
		names[i] = m[k]
	}
	return names
}

// ColumnGroups holds optional hierarchical hints about the columns.
// Groups never alter the column mapping or the row layout.
type ColumnGroups struct {
	// Semantic maps a semantic group (e.g. "concentrations") to column indices.
	Semantic map[string][]int `json:"semantic,omitempty"`
	// Parents maps a spanning header label to the columns beneath it.
	Parents map[string][]int `json:"parents,omitempty"`
}

// IsEmpty reports whether no grouping was found.
func (g ColumnGroups) IsEmpty() bool {
	return len(g.Semantic) == 0 && len(g.Parents) == 0
}

// TableStructure is the repaired table.
type TableStructure struct {
	// Headers holds the header rows, outermost first.
	Headers [][]string `json:"headers"`
	// DataRows holds the data rows, padded to the column count.
	DataRows [][]CellValue `json:"data_rows"`
	// ColumnMapping names every column.
	ColumnMapping ColumnMapping `json:"column_mapping"`
	// Metadata carries grid dimensions, row counts, column groups and upstream context.
	Metadata map[string]interface{} `json:"metadata"`
}
