package models

import (
	"bytes"
	"encoding/json"
)

// TableData is the docling TableItem "data" object.
type TableData struct {
	// NumRows is the declared row count.
	NumRows int `json:"num_rows"`
	// NumCols is the declared column count.
	NumCols int `json:"num_cols"`
	// Grid is the expanded cell matrix, if the exporter included it.
	Grid [][]*GridCell `json:"grid,omitempty"`
	// TableCells is the sparse cell list with offset indices.
	TableCells []GridCell `json:"table_cells,omitempty"`
}

// TableInput is one table as handed over by the extraction engine. It accepts a
// docling TableItem ("data" object), a flattened grid ("num_rows", "num_cols",
// "grid") or a dataframe export ("headers" plus "data" as a list of rows).
type TableInput struct {
	// Source identifies the origin of the table (file, sheet, page).
	Source string
	// Data is the docling table data.
	Data *TableData
	// NumRows, NumCols and Grid carry a flattened raw grid.
	NumRows int
	NumCols int
	Grid    [][]*GridCell
	// Headers and Rows carry a dataframe export.
	Headers []string
	Rows    [][]interface{}
	// Context is surrounding text metadata, passed through untouched.
	Context interface{}
}

type tableInputJSON struct {
	Source  string          `json:"source,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
	NumRows int             `json:"num_rows,omitempty"`
	NumCols int             `json:"num_cols,omitempty"`
	Grid    [][]*GridCell   `json:"grid,omitempty"`
	Headers []string        `json:"headers,omitempty"`
	Context interface{}     `json:"context,omitempty"`
}

// UnmarshalJSON decodes "data" either as a docling object or as dataframe rows.
func (t *TableInput) UnmarshalJSON(b []byte) error {
	var aux tableInputJSON
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}

	*t = TableInput{
		Source:  aux.Source,
		NumRows: aux.NumRows,
		NumCols: aux.NumCols,
		Grid:    aux.Grid,
		Headers: aux.Headers,
		Context: aux.Context,
	}

	data := bytes.TrimSpace(aux.Data)
	switch {
	case len(data) == 0 || bytes.Equal(data, []byte("null")):
	case data[0] == '[':
		if err := json.Unmarshal(data, &t.Rows); err != nil {
			return err
		}
	default:
		var td TableData
		if err := json.Unmarshal(data, &td); err != nil {
			return err
		}
		t.Data = &td
	}
	return nil
}

// MarshalJSON is the inverse of UnmarshalJSON.
func (t TableInput) MarshalJSON() ([]byte, error) {
	aux := tableInputJSON{
		Source:  t.Source,
		NumRows: t.NumRows,
		NumCols: t.NumCols,
		Grid:    t.Grid,
		Headers: t.Headers,
		Context: t.Context,
	}

	var err error
	switch {
	case t.Data != nil:
		aux.Data, err = json.Marshal(t.Data)
	case t.Rows != nil:
		aux.Data, err = json.Marshal(t.Rows)
	}
	if err != nil {
		return nil, err
	}
	return json.Marshal(aux)
}

// DocumentInput is a docling document reduced to what table repair needs.
type DocumentInput struct {
	// Name is the document name.
	Name string `json:"name"`
	// Tables lists the document tables in reading order.
	Tables []TableInput `json:"tables"`
}
