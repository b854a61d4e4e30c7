package parser

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/ukaji3/tablerepair-go/pkg/tablerepair/models"
)

var (
	// numberPattern matches unsigned decimals, with optional thousands
	// separators and exponent.
	numberPattern = regexp.MustCompile(`(?:\d{1,3}(?:,\d{3})+(?:\.\d+)?|\d+(?:\.\d+)?|\.\d+)(?:[eE][-+]?\d+)?`)
	datePattern   = regexp.MustCompile(`^\d{1,2}/\d{1,2}/\d{4}$`)
)

// emptyTokens are placeholders that count as an empty cell.
var emptyTokens = map[string]bool{
	"-":   true,
	"NA":  true,
	"N/A": true,
}

var matrixLabels = []string{"SOIL", "WATER", "AIR"}

// ParseCell parses one raw cell into a CellValue.
// v may be nil, a string, a models.Texter, a map carrying a "text" entry, or any
// other value, which is formatted. ParseCell never fails: unusable input yields
// an empty cell.
func ParseCell(v interface{}) models.CellValue {
	return parseCell(v, true)
}

func parseCell(v interface{}, literalEval bool) models.CellValue {
	text := strings.TrimSpace(cellText(v))

	cell := models.EmptyCell()
	cell.RawText = text
	cell.IsHeader = headerHint(v)

	if text == "" || emptyTokens[text] {
		return cell
	}

	var values []string
	if isArrayLiteral(text) {
		values = splitArrayLiteral(text, literalEval)
	} else {
		values = splitMultiValue(text)
	}
	if len(values) == 0 {
		return cell
	}

	cell.ParsedValues = values
	cell.IsEmpty = false
	cell.NumericValues, cell.Qualifiers = deriveValues(values)
	cell.CellType = classifyCell(values, cell.NumericValues, cell.Qualifiers)
	return cell
}

// cellText resolves the text of a raw cell.
func cellText(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case models.Texter:
		return t.CellText()
	case models.GridCell:
		return t.Text
	case map[string]interface{}:
		if text, ok := t["text"]; ok {
			return cellText(text)
		}
		b, err := json.Marshal(t)
		if err != nil {
			return fmt.Sprint(t)
		}
		return string(b)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32)
	case bool:
		return strconv.FormatBool(t)
	case fmt.Stringer:
		return t.String()
	default:
		return fmt.Sprint(t)
	}
}

func headerHint(v interface{}) bool {
	switch t := v.(type) {
	case *models.GridCell:
		return t != nil && t.ColumnHeader
	case models.GridCell:
		return t.ColumnHeader
	case map[string]interface{}:
		flag, _ := t["column_header"].(bool)
		return flag
	}
	return false
}

// splitMultiValue splits text holding several numbers into number/qualifier
// groups, otherwise into whitespace tokens.
//
// Numbers and qualifiers are paired by position. When there are fewer
// qualifiers than numbers the trailing numbers stand alone; surplus qualifiers
// are dropped.
func splitMultiValue(text string) []string {
	if datePattern.MatchString(text) {
		return []string{text}
	}

	numbers := findNumbers(text)
	if countDistinct(numbers) > 1 {
		qualifiers := findQualifiers(text)
		values := make([]string, 0, len(numbers))
		for i, n := range numbers {
			if i < len(qualifiers) {
				values = append(values, n+" "+qualifiers[i])
				continue
			}
			values = append(values, n)
		}
		return values
	}

	if fields := strings.Fields(text); len(fields) > 0 {
		return fields
	}
	return []string{text}
}

// deriveValues collects numbers and qualifiers across all parsed values.
// Date values contribute neither.
func deriveValues(values []string) ([]float64, []string) {
	numbers := []float64{}
	qualifiers := []string{}
	for _, v := range values {
		if datePattern.MatchString(v) {
			continue
		}
		for _, n := range findNumbers(v) {
			if f, err := parseNumber(n); err == nil {
				numbers = append(numbers, f)
			}
		}
		qualifiers = append(qualifiers, findQualifiers(v)...)
	}
	return numbers, qualifiers
}

func classifyCell(values []string, numbers []float64, qualifiers []string) models.CellType {
	joined := strings.Join(values, " ")
	switch {
	case len(values) == 0:
		return models.CellEmpty
	case len(numbers) > 0 && len(qualifiers) > 0:
		return models.CellQualifiedNumeric
	case len(numbers) > 0:
		return models.CellNumeric
	case len(qualifiers) > 0 && onlyQualifiers(values):
		return models.CellQualifier
	case datePattern.MatchString(joined):
		return models.CellDate
	case isMatrixLabel(joined):
		return models.CellMatrix
	}
	return models.CellText
}

// findNumbers returns the numeric substrings of s in order. A leading minus
// sign is kept unless it joins two words, as in "MW-1".
func findNumbers(s string) []string {
	var out []string
	for _, loc := range numberPattern.FindAllStringIndex(s, -1) {
		start, end := loc[0], loc[1]
		m := s[start:end]
		if start > 0 && s[start-1] == '-' && (start < 2 || !isAlnum(s[start-2])) {
			m = "-" + m
		}
		out = append(out, m)
	}
	return out
}

// findQualifiers returns uppercase ASCII letters that stand alone, i.e. are
// not adjacent to another letter. "0.5U" and "U" both yield "U". The E of an
// exponent ("1.2E-3") is part of the number.
func findQualifiers(s string) []string {
	var out []string
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < 'A' || c > 'Z' || isExponent(s, i) {
			continue
		}
		if i > 0 && isLetter(s[i-1]) {
			continue
		}
		if i+1 < len(s) && isLetter(s[i+1]) {
			continue
		}
		out = append(out, string(c))
	}
	return out
}

func parseNumber(s string) (float64, error) {
	return strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64)
}

func countDistinct(values []string) int {
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		seen[v] = struct{}{}
	}
	return len(seen)
}

func onlyQualifiers(values []string) bool {
	for _, v := range values {
		for _, tok := range strings.Fields(v) {
			if len(tok) != 1 || tok[0] < 'A' || tok[0] > 'Z' {
				return false
			}
		}
	}
	return true
}

func isMatrixLabel(s string) bool {
	for _, label := range matrixLabels {
		if strings.EqualFold(s, label) {
			return true
		}
	}
	return false
}

// isLetter treats every non-ASCII byte as a letter so multi-byte words are
// never split into qualifiers.
func isLetter(c byte) bool {
	return c >= 0x80 || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isExponent(s string, i int) bool {
	if s[i] != 'E' || i == 0 || !isDigit(s[i-1]) {
		return false
	}
	j := i + 1
	if j < len(s) && (s[j] == '-' || s[j] == '+') {
		j++
	}
	return j < len(s) && isDigit(s[j])
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlnum(c byte) bool {
	return isLetter(c) || (c >= '0' && c <= '9')
}
