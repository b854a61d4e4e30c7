package models

// Region represents cell coordinate bounds of a table inside a worksheet.
type Region struct {
	// R1 is the start row (1-based).
	R1 int `json:"r1"`
	// C1 is the start column (1-based).
	C1 int `json:"c1"`
	// R2 is the end row (1-based, inclusive).
	R2 int `json:"r2"`
	// C2 is the end column (1-based, inclusive).
	C2 int `json:"c2"`
}

// Contains reports whether the 1-based cell coordinate lies inside the region.
func (r Region) Contains(row, col int) bool {
	return row >= r.R1 && row <= r.R2 && col >= r.C1 && col <= r.C2
}

// Area returns the number of cells covered by the region.
func (r Region) Area() int {
	return (r.R2 - r.R1 + 1) * (r.C2 - r.C1 + 1)
}

// Intersect returns the overlap of r and o. ok is false when they are disjoint.
func (r Region) Intersect(o Region) (Region, bool) {
	out := Region{
		R1: max(r.R1, o.R1),
		C1: max(r.C1, o.C1),
		R2: min(r.R2, o.R2),
		C2: min(r.C2, o.C2),
	}
	if out.R1 > out.R2 || out.C1 > out.C2 {
		return Region{}, false
	}
	return out, true
}
