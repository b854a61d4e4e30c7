// Package models defines data structures for table reconstruction.
package models

// CellType classifies the content of a parsed cell.
type CellType string

const (
	// CellEmpty is a blank cell or a placeholder such as "-" or "N/A".
	CellEmpty CellType = "empty"
	// CellNumeric holds one or more numbers and no qualifiers.
	CellNumeric CellType = "numeric"
	// CellQualifiedNumeric holds numbers together with qualifier letters (e.g. "0.046 U").
	CellQualifiedNumeric CellType = "qualified_numeric"
	// CellQualifier holds only qualifier letters.
	CellQualifier CellType = "qualifier"
	// CellDate holds a D/M/YYYY style date.
	CellDate CellType = "date"
	// CellMatrix holds a sample matrix label (SOIL, WATER, AIR).
	CellMatrix CellType = "matrix"
	// CellText is anything else.
	CellText CellType = "text"
)

// CellValue is the parsed representation of one grid cell.
type CellValue struct {
	// RawText is the trimmed original cell text.
	RawText string `json:"raw_text"`
	// ParsedValues are the distinct sub-values extracted from RawText.
	ParsedValues []string `json:"parsed_values"`
	// NumericValues are the numbers found among ParsedValues.
	NumericValues []float64 `json:"numeric_values"`
	// Qualifiers are the single-letter qualifier codes found among ParsedValues.
	Qualifiers []string `json:"qualifiers"`
	// IsHeader reports whether the extraction engine flagged the cell as a column header.
	IsHeader bool `json:"is_header"`
	// IsEmpty is true exactly when ParsedValues is empty.
	IsEmpty bool `json:"is_empty"`
	// CellType is the content classification.
	CellType CellType `json:"cell_type"`
}

// EmptyCell returns a CellValue representing a missing cell.
func EmptyCell() CellValue {
	return CellValue{
		ParsedValues:  []string{},
		NumericValues: []float64{},
		Qualifiers:    []string{},
		IsEmpty:       true,
		CellType:      CellEmpty,
	}
}
