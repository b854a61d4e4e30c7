package source

import (
	"strings"

	"github.com/ukaji3/tablerepair-go/pkg/tablerepair/models"
	"github.com/xuri/excelize/v2"
)

// ExtractPrintAreas returns the user-defined print areas per sheet. Each print
// area is treated as one table.
func ExtractPrintAreas(f *excelize.File) map[string][]models.Region {
	result := make(map[string][]models.Region)

	for _, dn := range f.GetDefinedName() {
		if !strings.EqualFold(dn.Name, "_xlnm.Print_Area") {
			continue
		}
		sheetName, areas := parsePrintAreaReference(dn.RefersTo)
		if sheetName != "" && len(areas) > 0 {
			result[sheetName] = append(result[sheetName], areas...)
		}
	}

	return result
}

// parsePrintAreaReference parses 'Sheet Name'!$A$1:$D$10 or
// Sheet1!$A$1:$D$10,Sheet1!$F$1:$H$4.
func parsePrintAreaReference(ref string) (string, []models.Region) {
	var (
		sheetName string
		areas     []models.Region
	)

	for _, part := range strings.Split(ref, ",") {
		part = strings.TrimSpace(part)
		idx := strings.LastIndex(part, "!")
		if idx < 0 {
			continue
		}

		sheet := strings.Trim(part[:idx], "'")
		if sheetName == "" {
			sheetName = sheet
		}
		if area, ok := parseRange(part[idx+1:]); ok {
			areas = append(areas, area)
		}
	}

	return sheetName, areas
}

// parseRange parses a range such as $A$1:$D$10.
func parseRange(rangeStr string) (models.Region, bool) {
	parts := strings.Split(strings.ReplaceAll(rangeStr, "$", ""), ":")
	if len(parts) != 2 {
		return models.Region{}, false
	}

	startCol, startRow, err := excelize.CellNameToCoordinates(parts[0])
	if err != nil {
		return models.Region{}, false
	}
	endCol, endRow, err := excelize.CellNameToCoordinates(parts[1])
	if err != nil {
		return models.Region{}, false
	}

	return models.Region{R1: startRow, C1: startCol, R2: endRow, C2: endCol}, true
}
