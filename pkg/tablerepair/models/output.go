package models

// DetailedCell is the cell dictionary of the detailed output shape.
type DetailedCell struct {
	RawText       string    `json:"raw_text"`
	ParsedValues  []string  `json:"parsed_values"`
	NumericValues []float64 `json:"numeric_values"`
	Qualifiers    []string  `json:"qualifiers"`
	IsEmpty       bool      `json:"is_empty"`
	CellType      CellType  `json:"cell_type"`
}

// DetailedTable is the flat cell-list output shape.
type DetailedTable struct {
	Headers       [][]string             `json:"headers"`
	DataRows      [][]DetailedCell       `json:"data_rows"`
	ColumnMapping ColumnMapping          `json:"column_mapping"`
	Metadata      map[string]interface{} `json:"metadata"`
}

// StructuredTable is the row-dictionary output shape.
type StructuredTable struct {
	// Headers holds the header rows.
	Headers [][]string `json:"headers"`
	// Columns is the column mapping.
	Columns ColumnMapping `json:"columns"`
	// Rows holds one dictionary per data row keyed by column name.
	Rows []map[string]interface{} `json:"rows"`
	// Context is the upstream context, passed through untouched.
	Context interface{} `json:"context,omitempty"`
}
