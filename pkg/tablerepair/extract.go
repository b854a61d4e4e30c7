package tablerepair

import (
	"github.com/rs/zerolog/log"
	"github.com/ukaji3/tablerepair-go/pkg/tablerepair/models"
	"github.com/ukaji3/tablerepair-go/pkg/tablerepair/parser"
)

// ParseTable repairs one table. The only error is ErrNoGrid; every data
// quality problem is absorbed into the returned structure.
func ParseTable(in models.TableInput, opts Options) (*models.TableStructure, error) {
	grid, err := parser.ResolveGrid(in)
	if err != nil {
		return nil, err
	}
	return ParseGrid(grid, in.Context, opts), nil
}

// ParseGrid runs the repair pipeline over a raw grid. context is copied into
// the metadata untouched when non-nil.
func ParseGrid(grid models.RawGrid, context interface{}, opts Options) *models.TableStructure {
	params := opts.params()

	rows := parser.ParseRows(grid, params)
	classified := parser.ClassifyRows(rows, params)
	mapping := parser.BuildColumnMapping(classified.Headers, classified.Data)
	dataRows := parser.CleanRows(classified.Data, len(mapping))
	groups := parser.GroupColumns(classified.HeaderRows, mapping, params)

	metadata := map[string]interface{}{
		"num_rows":    grid.NumRows,
		"num_cols":    grid.NumCols,
		"header_rows": len(classified.Headers),
		"data_rows":   len(dataRows),
	}
	if !groups.IsEmpty() {
		metadata["column_groups"] = groups
	}
	if context != nil {
		metadata["context"] = context
	}

	log.Debug().
		Int("rows", grid.NumRows).
		Int("cols", grid.NumCols).
		Int("header_rows", len(classified.Headers)).
		Int("data_rows", len(dataRows)).
		Int("columns", len(mapping)).
		Msg("table parsed")

	return &models.TableStructure{
		Headers:       classified.Headers,
		DataRows:      dataRows,
		ColumnMapping: mapping,
		Metadata:      metadata,
	}
}
