package models

// TableResult wraps the outcome of parsing one table in a batch.
type TableResult struct {
	// ID is a stable identifier derived from the source and index.
	ID string `json:"id"`
	// Index is the position of the table in the batch.
	Index int `json:"index"`
	// Source identifies the origin of the table.
	Source string `json:"source,omitempty"`
	// ParsingSuccess is false when the table could not be parsed.
	ParsingSuccess bool `json:"parsing_success"`
	// Error holds the failure message when ParsingSuccess is false.
	Error string `json:"error,omitempty"`
	// Raw is the unparsed input, kept for failed tables.
	Raw *TableInput `json:"raw_structure,omitempty"`
	// Table is the repaired table (not serialized directly).
	Table *TableStructure `json:"-"`
	// Detailed is the detailed output shape, when requested.
	Detailed *DetailedTable `json:"table,omitempty"`
	// Structured is the structured output shape, when requested.
	Structured *StructuredTable `json:"structured_table,omitempty"`
}

// DocumentData is the per-document container of table results.
type DocumentData struct {
	// Name is the document or workbook name (no path).
	Name string `json:"name"`
	// Tables holds one result per input table, in input order.
	Tables []TableResult `json:"tables"`
}
