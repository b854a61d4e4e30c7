package parser

import (
	"strconv"
	"strings"

	"github.com/ukaji3/tablerepair-go/pkg/tablerepair/models"
)

// Row is one grid row after cell parsing.
type Row struct {
	// Index is the row position in the raw grid.
	Index int
	// Cells holds the parsed cells, one per grid position.
	Cells []models.CellValue
	// Raw holds the grid cells, aligned with Cells. Entries may be nil.
	Raw []*models.GridCell
}

// Classification is the header/data partition of a table.
type Classification struct {
	// Headers holds the header rows as plain text.
	Headers [][]string
	// HeaderRows holds the header rows with their grid cells.
	HeaderRows []Row
	// Data holds the data rows.
	Data [][]models.CellValue
}

// HeaderSignals records which header heuristics fired for a row.
type HeaderSignals struct {
	Flagged  bool
	Spanning bool
	Keyword  bool
	Position bool
}

// Any reports whether at least one signal fired.
func (s HeaderSignals) Any() bool {
	return s.Flagged || s.Spanning || s.Keyword || s.Position
}

// ParseRows parses every cell of the grid.
func ParseRows(grid models.RawGrid, p Params) []Row {
	rows := make([]Row, 0, len(grid.Cells))
	for i, raw := range grid.Cells {
		cells := make([]models.CellValue, len(raw))
		for j, c := range raw {
			cells[j] = parseCell(c, !p.DisableLiteralEval)
		}
		rows = append(rows, Row{Index: i, Cells: cells, Raw: raw})
	}
	return rows
}

// ClassifyRows partitions rows into header rows and data rows. Rows without
// any non-empty cell are dropped.
func ClassifyRows(rows []Row, p Params) Classification {
	result := Classification{
		Headers: [][]string{},
		Data:    [][]models.CellValue{},
	}

	for _, row := range rows {
		if isEmptyRow(row.Cells) {
			continue
		}
		if DetectHeader(row, p).Any() {
			texts := make([]string, len(row.Cells))
			for i, c := range row.Cells {
				texts[i] = c.RawText
			}
			result.Headers = append(result.Headers, texts)
			result.HeaderRows = append(result.HeaderRows, row)
			continue
		}
		result.Data = append(result.Data, row.Cells)
	}

	return result
}

// DetectHeader evaluates the header signals of a row:
//   - explicit header flags on more than HeaderFlagRatio of non-empty cells
//   - any cell spanning more than one row or column
//   - header keywords in at least KeywordRatio of non-empty cells
//   - a leading row (Index < PositionRows) with more than TextRatio non-numeric cells
func DetectHeader(row Row, p Params) HeaderSignals {
	var signals HeaderSignals
	var nonEmpty, flagged, keyword, textual int

	for i, c := range row.Cells {
		if i < len(row.Raw) && row.Raw[i].Spans() {
			signals.Spanning = true
		}
		if c.IsEmpty {
			continue
		}
		nonEmpty++
		if c.IsHeader {
			flagged++
		}
		if containsKeyword(c.RawText, p.HeaderKeywords) {
			keyword++
		}
		if !numericDominant(c.RawText, p.Qualifiers) {
			textual++
		}
	}

	if nonEmpty == 0 {
		return signals
	}

	total := float64(nonEmpty)
	signals.Flagged = float64(flagged)/total > p.HeaderFlagRatio
	signals.Keyword = float64(keyword)/total >= p.KeywordRatio
	signals.Position = row.Index < p.PositionRows && float64(textual)/total > p.TextRatio
	return signals
}

func isEmptyRow(cells []models.CellValue) bool {
	for _, c := range cells {
		if !c.IsEmpty {
			return false
		}
	}
	return true
}

func containsKeyword(text string, keywords []string) bool {
	lower := strings.ToLower(text)
	for _, kw := range keywords {
		if kw != "" && strings.Contains(lower, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}

// numericDominant reports whether text is a number once qualifier tokens and
// trailing qualifier letters are removed.
func numericDominant(text string, qualifiers []string) bool {
	known := make(map[string]bool, len(qualifiers))
	letters := ""
	for _, q := range qualifiers {
		known[q] = true
		letters += q
	}

	var kept []string
	for _, tok := range strings.Fields(text) {
		if !known[tok] {
			kept = append(kept, tok)
		}
	}

	rest := strings.TrimRight(strings.Join(kept, " "), letters)
	rest = strings.ReplaceAll(strings.TrimSpace(rest), ",", "")
	if rest == "" {
		return false
	}
	_, err := strconv.ParseFloat(rest, 64)
	return err == nil
}
