package parser

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/dersesut/equipimport/pkg/ingest/models"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// fold lower-cases s, strips diacritics and collapses runs of whitespace.
func fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return strings.Join(strings.Fields(strings.ToLower(out)), " ")
}

// cellString renders a raw cell as trimmed text.
func cellString(c models.Cell) string {
	switch v := c.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case int:
		return strconv.Itoa(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return ""
	}
}

// isNumber reports whether s reads as a plain decimal number.
func isNumber(s string) bool {
	if strings.ContainsAny(s, "eEnNiI") {
		return false
	}
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}

func isEmptyCell(c models.Cell) bool {
	return cellString(c) == ""
}

// cellInt reads an integral value from a cell. Integral floats are accepted.
func cellInt(c models.Cell) (int, bool) {
	switch v := c.(type) {
	case int64:
		return int(v), true
	case int:
		return v, true
	case float64:
		if v == float64(int64(v)) {
			return int(v), true
		}
	case string:
		s := strings.TrimSpace(v)
		if i, err := strconv.Atoi(s); err == nil {
			return i, true
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil && f == float64(int64(f)) {
			return int(f), true
		}
	}
	return 0, false
}
