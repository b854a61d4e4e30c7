package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/ukaji3/tablerepair-go/pkg/tablerepair/models"
	"github.com/xuri/excelize/v2"
)

// WriteXLSX writes every successfully parsed table of doc to its own sheet.
// Header rows come first; runs of identical header labels, as produced by
// spanning cells, are merged.
func WriteXLSX(w io.Writer, doc *models.DocumentData) error {
	f := excelize.NewFile()
	defer f.Close()

	defaultSheet := f.GetSheetName(0)
	written := 0
	for _, res := range doc.Tables {
		if !res.ParsingSuccess || res.Table == nil {
			continue
		}

		sheet := fmt.Sprintf("Table %d", res.Index+1)
		if written == 0 {
			if err := f.SetSheetName(defaultSheet, sheet); err != nil {
				return err
			}
		} else if _, err := f.NewSheet(sheet); err != nil {
			return err
		}

		if err := writeTable(f, sheet, res.Table); err != nil {
			return fmt.Errorf("failed to write %s: %w", sheet, err)
		}
		written++
	}

	return f.Write(w)
}

func writeTable(f *excelize.File, sheet string, ts *models.TableStructure) error {
	rowNum := 1

	for _, header := range ts.Headers {
		values := make([]interface{}, len(header))
		for i, h := range header {
			values[i] = h
		}
		if err := setRow(f, sheet, rowNum, values); err != nil {
			return err
		}
		if err := mergeRuns(f, sheet, rowNum, header); err != nil {
			return err
		}
		rowNum++
	}

	for _, row := range ts.DataRows {
		values := make([]interface{}, len(row))
		for i, c := range row {
			values[i] = sheetValue(c)
		}
		if err := setRow(f, sheet, rowNum, values); err != nil {
			return err
		}
		rowNum++
	}

	return nil
}

func setRow(f *excelize.File, sheet string, rowNum int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cell, &values)
}

// mergeRuns merges horizontally repeated non-blank labels of one header row.
func mergeRuns(f *excelize.File, sheet string, rowNum int, header []string) error {
	for start := 0; start < len(header); {
		end := start
		label := strings.TrimSpace(header[start])
		for end+1 < len(header) && label != "" && strings.TrimSpace(header[end+1]) == label {
			end++
		}
		if end > start {
			from, err := excelize.CoordinatesToCellName(start+1, rowNum)
			if err != nil {
				return err
			}
			to, err := excelize.CoordinatesToCellName(end+1, rowNum)
			if err != nil {
				return err
			}
			if err := f.MergeCell(sheet, from, to); err != nil {
				return err
			}
		}
		start = end + 1
	}
	return nil
}

// sheetValue keeps plain numbers numeric and everything else as raw text.
func sheetValue(c models.CellValue) interface{} {
	if c.CellType == models.CellNumeric && len(c.NumericValues) == 1 {
		return c.NumericValues[0]
	}
	return c.RawText
}
