package source

import (
	"path/filepath"
	"testing"

	"github.com/ukaji3/tablerepair-go/pkg/tablerepair"
	"github.com/ukaji3/tablerepair-go/pkg/tablerepair/models"
	"github.com/xuri/excelize/v2"
)

// writeResultsSheet saves a two-level header table with merged cells.
func writeResultsSheet(t *testing.T) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"
	f.SetCellValue(sheetName, "A1", "Analyte")
	f.SetCellValue(sheetName, "B1", "Concentration")
	f.SetCellValue(sheetName, "B2", "Result")
	f.SetCellValue(sheetName, "C2", "RL")
	f.SetSheetRow(sheetName, "A3", &[]interface{}{"Lead", "0.046 U", 0.5})
	f.SetSheetRow(sheetName, "A4", &[]interface{}{"Arsenic", 12.3, 0.5})
	if err := f.MergeCell(sheetName, "A1", "A2"); err != nil {
		t.Fatalf("Failed to merge cells: %v", err)
	}
	if err := f.MergeCell(sheetName, "B1", "C1"); err != nil {
		t.Fatalf("Failed to merge cells: %v", err)
	}

	tmpFile := filepath.Join(t.TempDir(), "results.xlsx")
	if err := f.SaveAs(tmpFile); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}
	return tmpFile
}

func TestReadWorkbook(t *testing.T) {
	doc, err := ReadWorkbook(writeResultsSheet(t))
	if err != nil {
		t.Fatalf("ReadWorkbook failed: %v", err)
	}

	if doc.Name != "results.xlsx" {
		t.Errorf("Expected name 'results.xlsx', got %q", doc.Name)
	}
	if len(doc.Tables) != 1 {
		t.Fatalf("Expected 1 table, got %d", len(doc.Tables))
	}

	in := doc.Tables[0]
	if in.Source != "Sheet1!A1:C4" {
		t.Errorf("Expected source 'Sheet1!A1:C4', got %q", in.Source)
	}
	if in.NumRows != 4 || in.NumCols != 3 {
		t.Errorf("Expected 4x3 grid, got %dx%d", in.NumRows, in.NumCols)
	}

	analyte := in.Grid[0][0]
	if analyte == nil || analyte.RowSpan != 2 || in.Grid[1][0] != analyte {
		t.Errorf("Expected A1:A2 to be one spanning cell, got %+v / %+v", analyte, in.Grid[1][0])
	}
	conc := in.Grid[0][1]
	if conc == nil || conc.Text != "Concentration" || conc.ColSpan != 2 || in.Grid[0][2] != conc {
		t.Errorf("Expected B1:C1 to be one spanning cell, got %+v / %+v", conc, in.Grid[0][2])
	}
	if conc != nil && (conc.StartCol != 1 || conc.EndCol != 3) {
		t.Errorf("Expected column offsets [1,3), got [%d,%d)", conc.StartCol, conc.EndCol)
	}
}

func TestReadWorkbook_Repair(t *testing.T) {
	doc, err := ReadWorkbook(writeResultsSheet(t))
	if err != nil {
		t.Fatalf("ReadWorkbook failed: %v", err)
	}

	ts, err := tablerepair.ParseTable(doc.Tables[0], tablerepair.DefaultOptions())
	if err != nil {
		t.Fatalf("ParseTable failed: %v", err)
	}

	wantMapping := models.ColumnMapping{0: "Analyte", 1: "Result", 2: "RL"}
	for i, name := range wantMapping {
		if ts.ColumnMapping[i] != name {
			t.Errorf("Expected column %d to be %q, got %q", i, name, ts.ColumnMapping[i])
		}
	}
	if len(ts.Headers) != 2 {
		t.Errorf("Expected 2 header rows, got %d", len(ts.Headers))
	}
	if len(ts.DataRows) != 2 {
		t.Fatalf("Expected 2 data rows, got %d", len(ts.DataRows))
	}

	result := ts.DataRows[0][1]
	if result.CellType != models.CellQualifiedNumeric {
		t.Errorf("Expected qualified_numeric, got %s", result.CellType)
	}

	groups, ok := ts.Metadata["column_groups"].(models.ColumnGroups)
	if !ok {
		t.Fatalf("Expected column groups, got %T", ts.Metadata["column_groups"])
	}
	if got := groups.Parents["Concentration"]; len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Errorf("Expected Concentration over [1 2], got %v", got)
	}
	if got := groups.Semantic["reporting_limits"]; len(got) != 1 || got[0] != 2 {
		t.Errorf("Expected reporting_limits [2], got %v", got)
	}
}

func TestReadWorkbook_PrintAreas(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"
	f.SetSheetRow(sheetName, "A1", &[]interface{}{"Analyte", "Result"})
	f.SetSheetRow(sheetName, "A2", &[]interface{}{"Lead", 0.046})
	f.SetSheetRow(sheetName, "E1", &[]interface{}{"Sample", "Depth"})
	f.SetSheetRow(sheetName, "E2", &[]interface{}{"MW-1", 5})
	if err := f.SetDefinedName(&excelize.DefinedName{
		Name:     "_xlnm.Print_Area",
		RefersTo: "Sheet1!$A$1:$B$2,Sheet1!$E$1:$F$2",
		Scope:    sheetName,
	}); err != nil {
		t.Fatalf("Failed to set print area: %v", err)
	}

	tmpFile := filepath.Join(t.TempDir(), "areas.xlsx")
	if err := f.SaveAs(tmpFile); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}

	doc, err := ReadWorkbook(tmpFile)
	if err != nil {
		t.Fatalf("ReadWorkbook failed: %v", err)
	}
	if len(doc.Tables) != 2 {
		t.Fatalf("Expected 2 tables, got %d", len(doc.Tables))
	}
	if doc.Tables[0].Source != "Sheet1!A1:B2" || doc.Tables[1].Source != "Sheet1!E1:F2" {
		t.Errorf("Unexpected sources %q, %q", doc.Tables[0].Source, doc.Tables[1].Source)
	}
	if got := doc.Tables[1].Grid[1][0].CellText(); got != "MW-1" {
		t.Errorf("Expected 'MW-1', got %q", got)
	}
}

func TestReadWorkbook_PrintAreaClippedToData(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"
	f.SetSheetRow(sheetName, "A1", &[]interface{}{"Analyte", "Result"})
	f.SetSheetRow(sheetName, "A2", &[]interface{}{"Lead", 0.046})
	if err := f.SetDefinedName(&excelize.DefinedName{
		Name:     "_xlnm.Print_Area",
		RefersTo: "Sheet1!$A$1:$XFD$1048576,Sheet1!$H$10:$J$12",
		Scope:    sheetName,
	}); err != nil {
		t.Fatalf("Failed to set print area: %v", err)
	}

	tmpFile := filepath.Join(t.TempDir(), "whole.xlsx")
	if err := f.SaveAs(tmpFile); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}

	doc, err := ReadWorkbook(tmpFile)
	if err != nil {
		t.Fatalf("ReadWorkbook failed: %v", err)
	}
	if len(doc.Tables) != 1 {
		t.Fatalf("Expected 1 table, got %d", len(doc.Tables))
	}
	in := doc.Tables[0]
	if in.Source != "Sheet1!A1:B2" {
		t.Errorf("Expected source 'Sheet1!A1:B2', got %q", in.Source)
	}
	if in.NumRows != 2 || in.NumCols != 2 {
		t.Errorf("Expected 2x2 grid, got %dx%d", in.NumRows, in.NumCols)
	}
}

func TestReadWorkbook_NotFound(t *testing.T) {
	if _, err := ReadWorkbook(filepath.Join(t.TempDir(), "missing.xlsx")); err == nil {
		t.Error("Expected error for missing workbook")
	}
}
