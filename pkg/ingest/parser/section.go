package parser

import (
	"strings"

	"github.com/dersesut/equipimport/pkg/ingest/models"
)

// Section markers of the legacy layout, matched against the upper-cased first cell.
var (
	cpuStartMarkers     = []string{"CPU'S - DER-", "CPUS - DER-"}
	monitorStartMarkers = []string{"MONITORES - DER-", "MONITORS - DER-"}
	endMarkers          = []string{"FIM", "END"}
)

const (
	totalPrefix = "TOTAL"
	headerLabel = "ITEM"
	cpuWord     = "CPU'S"
	monitorWord = "MONITORES"
)

var apostrophes = strings.NewReplacer("’", "'", "‘", "'", "´", "'", "`", "'")

// ScanState is the section tracker state for one sheet. The zero value is
// "outside any section".
type ScanState struct {
	Department string
	Kind       models.Kind
}

// InSection reports whether a CPU or monitor section is open.
func (s ScanState) InSection() bool {
	return s.Kind != models.KindNone
}

// RowType classifies a row seen by the section tracker.
type RowType int

const (
	// RowBlank has an empty first cell.
	RowBlank RowType = iota
	// RowSectionStart opened a CPU or monitor section.
	RowSectionStart
	// RowSectionEnd closed the current section.
	RowSectionEnd
	// RowOutside is a non-marker row seen outside any section.
	RowOutside
	// RowHeader is the column-header row inside a section.
	RowHeader
	// RowData is a record row inside a section.
	RowData
	// RowSkipped is an in-section row whose first cell is not an item number.
	RowSkipped
)

func (t RowType) String() string {
	switch t {
	case RowBlank:
		return "blank"
	case RowSectionStart:
		return "section_start"
	case RowSectionEnd:
		return "section_end"
	case RowOutside:
		return "outside"
	case RowHeader:
		return "header"
	case RowData:
		return "data"
	case RowSkipped:
		return "skipped"
	default:
		return "unknown"
	}
}

// Emission is what the tracker reports for a single row.
type Emission struct {
	Type RowType
	// Kind, Department and Item are set for RowData.
	Kind       models.Kind
	Department string
	Item       int
}

// Step advances the section state machine by one row.
func Step(state ScanState, row []models.Cell) (ScanState, Emission) {
	var first models.Cell
	if len(row) > 0 {
		first = row[0]
	}
	marker := normalizeMarker(cellString(first))
	if marker == "" {
		return state, Emission{Type: RowBlank}
	}

	if kind, dept, ok := startMarker(marker); ok {
		return ScanState{Department: dept, Kind: kind}, Emission{Type: RowSectionStart}
	}
	if isEndMarker(marker, state.Kind) {
		return ScanState{}, Emission{Type: RowSectionEnd}
	}
	if !state.InSection() {
		return state, Emission{Type: RowOutside}
	}
	if marker == headerLabel {
		return state, Emission{Type: RowHeader}
	}
	if item, ok := positiveInt(first); ok {
		return state, Emission{Type: RowData, Kind: state.Kind, Department: state.Department, Item: item}
	}
	return state, Emission{Type: RowSkipped}
}

func normalizeMarker(s string) string {
	s = apostrophes.Replace(strings.ToUpper(s))
	return strings.Join(strings.Fields(s), " ")
}

// startMarker finds a section start marker. When both kinds appear the one
// further right wins, since it is the section being opened.
func startMarker(marker string) (models.Kind, string, bool) {
	kind, pos, prefixLen := models.KindNone, -1, 0
	try := func(k models.Kind, prefixes []string) {
		for _, p := range prefixes {
			if i := strings.Index(marker, p); i >= 0 && i > pos {
				kind, pos, prefixLen = k, i, len(p)
			}
		}
	}
	try(models.KindCPU, cpuStartMarkers)
	try(models.KindMonitor, monitorStartMarkers)
	if kind == models.KindNone {
		return kind, "", false
	}
	return kind, strings.TrimSpace(marker[pos+prefixLen:]), true
}

func isEndMarker(marker string, current models.Kind) bool {
	if strings.HasPrefix(marker, totalPrefix) {
		return true
	}
	for _, m := range endMarkers {
		if marker == m {
			return true
		}
	}
	switch current {
	case models.KindCPU:
		return strings.Contains(marker, monitorWord)
	case models.KindMonitor:
		return strings.Contains(marker, cpuWord)
	}
	return false
}

// positiveInt accepts the item ordinal of a data row.
func positiveInt(c models.Cell) (int, bool) {
	n, ok := cellInt(c)
	if !ok || n <= 0 {
		return 0, false
	}
	return n, true
}

// IsSectionMarker reports whether a cell announces the start of a legacy section.
func IsSectionMarker(c models.Cell) bool {
	_, _, ok := startMarker(normalizeMarker(cellString(c)))
	return ok
}
