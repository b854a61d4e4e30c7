package parser

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var errNotListLiteral = errors.New("not a list literal")

// isArrayLiteral reports whether text looks like a serialized list of strings,
// e.g. "['SAMPLE ID: ', 'MW-1']".
func isArrayLiteral(text string) bool {
	return strings.HasPrefix(text, "[") &&
		strings.HasSuffix(text, "]") &&
		strings.ContainsAny(text, `'"`)
}

// splitArrayLiteral extracts the elements of an array literal. The strict
// literal reader runs first when enabled; malformed input falls back to a
// quote-aware comma split. Elements are trimmed and blanks dropped.
func splitArrayLiteral(text string, literalEval bool) []string {
	if literalEval {
		if items, err := evalListLiteral(text); err == nil {
			return cleanItems(items)
		}
	}
	return cleanItems(splitListManually(text))
}

func cleanItems(items []string) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		if it = strings.TrimSpace(it); it != "" {
			out = append(out, it)
		}
	}
	return out
}

// splitListManually strips the brackets and splits on commas outside quotes.
func splitListManually(text string) []string {
	inner := strings.TrimSpace(text)
	inner = strings.TrimPrefix(inner, "[")
	inner = strings.TrimSuffix(inner, "]")

	var (
		items []string
		cur   strings.Builder
		quote byte
	)
	for i := 0; i < len(inner); i++ {
		c := inner[i]
		switch {
		case quote != 0:
			if c == quote {
				quote = 0
			}
			cur.WriteByte(c)
		case c == '\'' || c == '"':
			quote = c
			cur.WriteByte(c)
		case c == ',':
			items = append(items, cur.String())
			cur.Reset()
		default:
			cur.WriteByte(c)
		}
	}
	items = append(items, cur.String())

	for i, it := range items {
		items[i] = strings.Trim(strings.TrimSpace(it), `'"`)
	}
	return items
}

// evalListLiteral reads a list literal of quoted strings, numbers and the
// bare words None, True and False. Anything else is an error.
func evalListLiteral(text string) ([]string, error) {
	sc := &literalScanner{s: text}
	sc.skipSpace()
	if !sc.consume('[') {
		return nil, errNotListLiteral
	}

	items := []string{}
	for {
		sc.skipSpace()
		if sc.consume(']') {
			break
		}
		item, err := sc.scanItem()
		if err != nil {
			return nil, err
		}
		items = append(items, item)

		sc.skipSpace()
		if sc.consume(',') {
			continue
		}
		if sc.consume(']') {
			break
		}
		return nil, fmt.Errorf("%w: expected ',' or ']' at offset %d", errNotListLiteral, sc.pos)
	}

	sc.skipSpace()
	if sc.pos != len(sc.s) {
		return nil, fmt.Errorf("%w: trailing text at offset %d", errNotListLiteral, sc.pos)
	}
	return items, nil
}

type literalScanner struct {
	s   string
	pos int
}

func (sc *literalScanner) skipSpace() {
	for sc.pos < len(sc.s) && strings.IndexByte(" \t\r\n", sc.s[sc.pos]) >= 0 {
		sc.pos++
	}
}

func (sc *literalScanner) consume(c byte) bool {
	if sc.pos < len(sc.s) && sc.s[sc.pos] == c {
		sc.pos++
		return true
	}
	return false
}

func (sc *literalScanner) scanItem() (string, error) {
	if sc.pos >= len(sc.s) {
		return "", fmt.Errorf("%w: unexpected end", errNotListLiteral)
	}
	if q := sc.s[sc.pos]; q == '\'' || q == '"' {
		return sc.scanString(q)
	}

	start := sc.pos
	for sc.pos < len(sc.s) && strings.IndexByte(", \t\r\n]", sc.s[sc.pos]) < 0 {
		sc.pos++
	}
	word := sc.s[start:sc.pos]
	switch word {
	case "None":
		return "", nil
	case "True", "False":
		return word, nil
	}
	if _, err := strconv.ParseFloat(word, 64); err != nil {
		return "", fmt.Errorf("%w: bare word %q", errNotListLiteral, word)
	}
	return word, nil
}

func (sc *literalScanner) scanString(quote byte) (string, error) {
	sc.pos++
	var b strings.Builder
	for sc.pos < len(sc.s) {
		c := sc.s[sc.pos]
		sc.pos++
		switch c {
		case quote:
			return b.String(), nil
		case '\\':
			if sc.pos >= len(sc.s) {
				return "", fmt.Errorf("%w: dangling escape", errNotListLiteral)
			}
			e := sc.s[sc.pos]
			sc.pos++
			switch e {
			case 'n':
				b.WriteByte('\n')
			case 't':
				b.WriteByte('\t')
			case 'r':
				b.WriteByte('\r')
			case '\\', '\'', '"':
				b.WriteByte(e)
			default:
				b.WriteByte('\\')
				b.WriteByte(e)
			}
		default:
			b.WriteByte(c)
		}
	}
	return "", fmt.Errorf("%w: unterminated string", errNotListLiteral)
}
