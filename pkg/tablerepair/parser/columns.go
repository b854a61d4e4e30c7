package parser

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ukaji3/tablerepair-go/pkg/tablerepair/models"
)

// ColumnName returns the synthesized name of an unnamed column.
func ColumnName(i int) string {
	return fmt.Sprintf("Column_%d", i)
}

// BuildColumnMapping names columns from the last header row, which is the most
// granular level of a spanned header hierarchy. Blank labels and columns
// beyond the header (but present in data rows) get synthesized names.
func BuildColumnMapping(headers [][]string, data [][]models.CellValue) models.ColumnMapping {
	mapping := models.ColumnMapping{}

	if len(headers) > 0 {
		for i, label := range headers[len(headers)-1] {
			if label = strings.TrimSpace(label); label != "" {
				mapping[i] = label
				continue
			}
			mapping[i] = ColumnName(i)
		}
	}

	width := len(mapping)
	for _, row := range data {
		if len(row) > width {
			width = len(row)
		}
	}
	for i := len(mapping); i < width; i++ {
		mapping[i] = ColumnName(i)
	}

	return mapping
}

// GroupColumns derives semantic and parent groupings from the header rows.
func GroupColumns(headerRows []Row, mapping models.ColumnMapping, p Params) models.ColumnGroups {
	groups := models.ColumnGroups{
		Semantic: map[string][]int{},
		Parents:  map[string][]int{},
	}

	for i := 0; i < len(mapping); i++ {
		label := deepestLabel(headerRows, i)
		if label == "" {
			continue
		}
		if g := matchGroup(label, p.GroupRules); g != "" {
			groups.Semantic[g] = append(groups.Semantic[g], i)
		}
	}

	for _, row := range headerRows {
		addParentGroups(groups.Parents, row)
	}
	for k, cols := range groups.Parents {
		groups.Parents[k] = uniqueSorted(cols)
	}

	return groups
}

// deepestLabel returns the lowest non-blank header label of column i.
func deepestLabel(headerRows []Row, i int) string {
	for r := len(headerRows) - 1; r >= 0; r-- {
		cells := headerRows[r].Cells
		if i < len(cells) {
			if label := strings.TrimSpace(cells[i].RawText); label != "" {
				return label
			}
		}
	}
	return ""
}

func matchGroup(label string, rules []GroupRule) string {
	lower := strings.ToLower(strings.TrimSpace(label))
	for _, rule := range rules {
		for _, e := range rule.Exact {
			if lower == strings.ToLower(e) {
				return rule.Group
			}
		}
		for _, sub := range rule.Contains {
			if sub != "" && strings.Contains(lower, strings.ToLower(sub)) {
				return rule.Group
			}
		}
	}
	return ""
}

// addParentGroups records the columns covered by each spanning header cell.
// Engines either repeat a spanning cell at every covered position or emit it
// once; both layouts produce the same range.
func addParentGroups(parents map[string][]int, row Row) {
	coveredUntil := -1
	var current *models.GridCell

	for j, raw := range row.Raw {
		if raw == nil || raw.ColSpan <= 1 {
			continue
		}
		label := strings.TrimSpace(raw.Text)
		if label == "" {
			continue
		}
		if j < coveredUntil && current != nil && sameSpan(current, raw) {
			continue
		}

		current = raw
		coveredUntil = j + raw.ColSpan
		for c := j; c < coveredUntil; c++ {
			parents[label] = append(parents[label], c)
		}
	}
}

func sameSpan(a, b *models.GridCell) bool {
	return a == b || (a.Text == b.Text && a.ColSpan == b.ColSpan)
}

func uniqueSorted(cols []int) []int {
	seen := make(map[int]struct{}, len(cols))
	out := make([]int, 0, len(cols))
	for _, c := range cols {
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	sort.Ints(out)
	return out
}
