package reader

import (
	"strings"

	"github.com/dersesut/equipimport/pkg/ingest/models"
)

// toCells converts a row of cell text into raw cells.
// Text is trimmed but otherwise kept as written, so serials and sizes such as
// "08.0" or "99999999999999999999" survive. Empty text becomes nil and
// trailing empty cells are dropped.
func toCells(row []string) []models.Cell {
	last := len(row) - 1
	for last >= 0 && strings.TrimSpace(row[last]) == "" {
		last--
	}
	if last < 0 {
		return nil
	}

	cells := make([]models.Cell, last+1)
	for i := 0; i <= last; i++ {
		if s := strings.TrimSpace(row[i]); s != "" {
			cells[i] = s
		}
	}
	return cells
}
