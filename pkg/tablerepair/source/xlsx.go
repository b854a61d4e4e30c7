// Package source turns spreadsheets into raw table grids.
package source

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/ukaji3/tablerepair-go/pkg/tablerepair/models"
	"github.com/xuri/excelize/v2"
)

// ReadWorkbook extracts one table input per print area of each sheet, or one
// per sheet covering its dense data region when no print area is defined.
// Merged ranges become spanning grid cells repeated at every covered position.
func ReadWorkbook(path string) (*models.DocumentInput, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return readWorkbook(f, filepath.Base(path))
}

// ReadWorkbookFrom is ReadWorkbook for an in-memory workbook.
func ReadWorkbookFrom(r io.Reader, name string) (*models.DocumentInput, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return readWorkbook(f, name)
}

func readWorkbook(f *excelize.File, name string) (*models.DocumentInput, error) {
	doc := &models.DocumentInput{Name: name}
	printAreas := ExtractPrintAreas(f)

	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil {
			return nil, fmt.Errorf("sheet %q: %w", sheet, err)
		}
		merges, err := f.GetMergeCells(sheet)
		if err != nil {
			log.Warn().Err(err).Str("sheet", sheet).Msg("ignoring merged cells")
			merges = nil
		}

		regions := clipRegions(printAreas[sheet], rows)
		if len(printAreas[sheet]) == 0 {
			region, ok := DetectRegion(rows, DefaultRegionParams())
			if !ok {
				log.Debug().Str("sheet", sheet).Msg("no table region")
				continue
			}
			regions = []models.Region{region}
		}

		for _, region := range regions {
			grid, err := buildGrid(rows, merges, region)
			if err != nil {
				return nil, fmt.Errorf("sheet %q: %w", sheet, err)
			}
			ref, err := regionRef(region)
			if err != nil {
				return nil, err
			}
			doc.Tables = append(doc.Tables, models.TableInput{
				Source:  fmt.Sprintf("%s!%s", sheet, ref),
				NumRows: grid.NumRows,
				NumCols: grid.NumCols,
				Grid:    grid.Cells,
			})
		}
	}

	return doc, nil
}

// clipRegions shrinks print areas to the filled part of the sheet. Areas
// without any value are dropped.
func clipRegions(areas []models.Region, rows [][]string) []models.Region {
	extent, ok := dataExtent(rows)
	if !ok {
		return nil
	}

	var out []models.Region
	for _, area := range areas {
		if clipped, ok := area.Intersect(extent); ok {
			out = append(out, clipped)
		}
	}
	return out
}

// buildGrid cuts region out of rows. Cell offsets are relative to the region.
func buildGrid(rows [][]string, merges []excelize.MergeCell, region models.Region) (models.RawGrid, error) {
	numRows := region.R2 - region.R1 + 1
	numCols := region.C2 - region.C1 + 1

	cells := make([][]*models.GridCell, numRows)
	for r := range cells {
		cells[r] = make([]*models.GridCell, numCols)
		rowIdx := region.R1 - 1 + r
		if rowIdx >= len(rows) {
			continue
		}
		for c := range cells[r] {
			colIdx := region.C1 - 1 + c
			if colIdx >= len(rows[rowIdx]) || rows[rowIdx][colIdx] == "" {
				continue
			}
			cells[r][c] = &models.GridCell{
				Text:     rows[rowIdx][colIdx],
				RowSpan:  1,
				ColSpan:  1,
				StartRow: r,
				EndRow:   r + 1,
				StartCol: c,
				EndCol:   c + 1,
			}
		}
	}

	for _, mc := range merges {
		startCol, startRow, err := excelize.CellNameToCoordinates(mc.GetStartAxis())
		if err != nil {
			return models.RawGrid{}, err
		}
		endCol, endRow, err := excelize.CellNameToCoordinates(mc.GetEndAxis())
		if err != nil {
			return models.RawGrid{}, err
		}
		if !region.Contains(startRow, startCol) {
			continue
		}

		span := &models.GridCell{
			Text:     mc.GetCellValue(),
			RowSpan:  endRow - startRow + 1,
			ColSpan:  endCol - startCol + 1,
			StartRow: startRow - region.R1,
			EndRow:   endRow - region.R1 + 1,
			StartCol: startCol - region.C1,
			EndCol:   endCol - region.C1 + 1,
		}
		for r := span.StartRow; r < span.EndRow && r < numRows; r++ {
			for c := span.StartCol; c < span.EndCol && c < numCols; c++ {
				cells[r][c] = span
			}
		}
	}

	return models.RawGrid{NumRows: numRows, NumCols: numCols, Cells: cells}, nil
}

func regionRef(region models.Region) (string, error) {
	from, err := excelize.CoordinatesToCellName(region.C1, region.R1)
	if err != nil {
		return "", err
	}
	to, err := excelize.CoordinatesToCellName(region.C2, region.R2)
	if err != nil {
		return "", err
	}
	return from + ":" + to, nil
}
