package parser

import "github.com/dersesut/equipimport/pkg/ingest/models"

// dataBounds spans the rows holding data and the leftmost column used,
// 0-based and inclusive.
type dataBounds struct {
	minRow, maxRow int
	minCol         int
}

// findDataBounds locates the non-empty cells.
// ok is false when the grid holds no data at all.
func findDataBounds(rows [][]models.Cell) (b dataBounds, ok bool) {
	b = dataBounds{minRow: -1, maxRow: -1, minCol: -1}

	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if isEmptyCell(cell) {
				continue
			}
			if b.minRow < 0 || rowIdx < b.minRow {
				b.minRow = rowIdx
			}
			if b.maxRow < 0 || rowIdx > b.maxRow {
				b.maxRow = rowIdx
			}
			if b.minCol < 0 || colIdx < b.minCol {
				b.minCol = colIdx
			}
		}
	}

	return b, b.minRow >= 0
}

// rowFrom returns row with its first col cells dropped.
func rowFrom(row []models.Cell, col int) []models.Cell {
	if col >= len(row) {
		return nil
	}
	return row[col:]
}

// countNonEmpty counts non-empty cells in a row.
func countNonEmpty(row []models.Cell) int {
	count := 0
	for _, c := range row {
		if !isEmptyCell(c) {
			count++
		}
	}
	return count
}
