package parser

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dersesut/equipimport/pkg/ingest/models"
)

// Structural reasons a sheet cannot be read as keyed rows.
var (
	ErrNoHeaderRow   = errors.New("sheet has no recognizable header row")
	ErrSectionLayout = errors.New("sheet uses section markers")
	ErrRaggedRows    = errors.New("row extends past the header row")
)

// minHeaderCells is the least number of text cells a header row must have.
const minHeaderCells = 2

// KeyedSheet is a sheet read through its header row.
type KeyedSheet struct {
	Headers []string
	Rows    []models.RawKeyedRow
}

// ExtractKeyed interprets the first non-empty row of sheet as headers and every
// following non-blank row as a keyed row.
func ExtractKeyed(sheet models.RawSheet) (KeyedSheet, error) {
	b, ok := findDataBounds(sheet.Rows)
	if !ok {
		return KeyedSheet{}, ErrNoHeaderRow
	}

	for r := b.minRow; r <= b.maxRow; r++ {
		row := rowFrom(sheet.Rows[r], b.minCol)
		if len(row) > 0 && IsSectionMarker(row[0]) {
			return KeyedSheet{}, fmt.Errorf("%w (row %d)", ErrSectionLayout, r+1)
		}
	}

	headerRow := rowFrom(sheet.Rows[b.minRow], b.minCol)
	headers := make([]string, len(headerRow))
	textCells := 0
	for i, c := range headerRow {
		headers[i] = cellString(c)
		if headers[i] != "" && !isNumber(headers[i]) {
			textCells++
		}
	}
	if textCells < minHeaderCells || !recognizable(headers) {
		return KeyedSheet{}, ErrNoHeaderRow
	}

	ks := KeyedSheet{Headers: headers}
	for r := b.minRow + 1; r <= b.maxRow; r++ {
		row := rowFrom(sheet.Rows[r], b.minCol)
		if countNonEmpty(row) == 0 {
			continue
		}
		values := make(map[string]models.Cell, len(headers))
		for i, c := range row {
			if i >= len(headers) {
				if !isEmptyCell(c) {
					return KeyedSheet{}, fmt.Errorf("%w (row %d)", ErrRaggedRows, r+1)
				}
				continue
			}
			h := headers[i]
			if h == "" {
				continue
			}
			// Repeated headers keep the first non-empty value.
			if prev, seen := values[h]; seen && !isEmptyCell(prev) {
				continue
			}
			values[h] = c
		}
		ks.Rows = append(ks.Rows, models.RawKeyedRow{R: r + 1, Headers: headers, Values: values})
	}
	return ks, nil
}

// recognizable reports whether headers bind at least one descriptive field
// (anything besides item and department) of either record kind.
func recognizable(headers []string) bool {
	for _, table := range []AliasTable{CPUAliases, MonitorAliases} {
		binding := BindHeaders(table, headers)
		for _, fa := range table {
			if fa.Field == models.FieldItem || fa.Field == models.FieldDepartment {
				continue
			}
			if binding.Bound(fa.Field) {
				return true
			}
		}
	}
	return false
}

// ExtractPositional keeps every row of sheet as an ordered cell array, with
// leading blank columns removed.
func ExtractPositional(sheet models.RawSheet) []models.PositionalRow {
	b, ok := findDataBounds(sheet.Rows)
	if !ok {
		return nil
	}
	rows := make([]models.PositionalRow, 0, b.maxRow-b.minRow+1)
	for r := b.minRow; r <= b.maxRow; r++ {
		rows = append(rows, models.PositionalRow{R: r + 1, C: rowFrom(sheet.Rows[r], b.minCol)})
	}
	return rows
}

// DecideKind picks the record kind of a keyed sheet by counting the
// kind-specific fields its headers bind. The sheet name counts as one more
// vote. Ties go to CPU.
func DecideKind(headers []string, sheetName string) models.Kind {
	cpuBinding := BindHeaders(CPUAliases, headers)
	monitorBinding := BindHeaders(MonitorAliases, headers)

	cpuScore, monitorScore := 0, 0
	for _, f := range cpuOnlyFields {
		if cpuBinding.Bound(f) {
			cpuScore++
		}
	}
	for _, f := range monitorOnlyFields {
		if monitorBinding.Bound(f) {
			monitorScore++
		}
	}

	name := fold(sheetName)
	if strings.Contains(name, "monitor") {
		monitorScore++
	}
	if strings.Contains(name, "cpu") {
		cpuScore++
	}

	if monitorScore > cpuScore {
		return models.KindMonitor
	}
	return models.KindCPU
}
