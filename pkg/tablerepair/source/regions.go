package source

import "github.com/ukaji3/tablerepair-go/pkg/tablerepair/models"

// RegionParams holds parameters for table region detection.
type RegionParams struct {
	DensityMin       float64
	MinNonemptyCells int
}

// DefaultRegionParams returns default region detection parameters.
func DefaultRegionParams() RegionParams {
	return RegionParams{
		DensityMin:       0.04,
		MinNonemptyCells: 3,
	}
}

// DetectRegion returns the bounding box of the non-empty cells of a sheet when
// it is dense enough to be a table.
func DetectRegion(rows [][]string, params RegionParams) (models.Region, bool) {
	extent, ok := dataExtent(rows)
	if !ok {
		return models.Region{}, false
	}

	filled := filledCells(rows, extent)
	if filled < params.MinNonemptyCells {
		return models.Region{}, false
	}
	if float64(filled)/float64(extent.Area()) < params.DensityMin {
		return models.Region{}, false
	}
	return extent, true
}

// dataExtent returns the 1-based rectangle spanned by the outermost non-empty
// cells. A sheet holds one table grid here, so the whole extent is the
// candidate, not a list of separate ranges.
func dataExtent(rows [][]string) (models.Region, bool) {
	var r models.Region
	found := false

	for i, row := range rows {
		for j, cell := range row {
			if cell == "" {
				continue
			}
			row1, col1 := i+1, j+1
			if !found {
				r = models.Region{R1: row1, C1: col1, R2: row1, C2: col1}
				found = true
				continue
			}
			r.R1, r.R2 = min(r.R1, row1), max(r.R2, row1)
			r.C1, r.C2 = min(r.C1, col1), max(r.C2, col1)
		}
	}

	return r, found
}

// filledCells counts the non-empty cells inside the 1-based region r.
func filledCells(rows [][]string, r models.Region) int {
	count := 0
	for i := r.R1 - 1; i < r.R2 && i < len(rows); i++ {
		row := rows[i]
		for j := r.C1 - 1; j < r.C2 && j < len(row); j++ {
			if row[j] != "" {
				count++
			}
		}
	}
	return count
}
