// Package models defines data structures for equipment ingestion.
package models

// Cell is a raw cell value as decoded from a workbook.
// Readers produce nil for an empty cell and trimmed text otherwise.
// The parser also accepts int64, int and float64 values.
type Cell = any

// RawSheet represents a decoded sheet as a grid of raw cell values.
type RawSheet struct {
	// Name is the sheet name as it appears in the workbook.
	Name string `json:"name"`
	// Rows holds the cells of every row, top to bottom. Trailing empty cells are trimmed.
	Rows [][]Cell `json:"rows"`
}

// RawKeyedRow is a sheet row interpreted through the sheet's header row.
type RawKeyedRow struct {
	// R is the row index within the sheet (1-based).
	R int `json:"r"`
	// Headers lists the sheet headers in column order.
	Headers []string `json:"headers"`
	// Values maps raw header text to the cell found under it.
	Values map[string]Cell `json:"values"`
}

// PositionalRow is a sheet row kept as an ordered array of cells.
type PositionalRow struct {
	// R is the row index within the sheet (1-based).
	R int `json:"r"`
	// C holds the cells in column order.
	C []Cell `json:"c"`
}
