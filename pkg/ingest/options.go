// Package ingest recovers CPU and monitor records from human-authored workbooks.
package ingest

import (
	"io"

	"github.com/dersesut/equipimport/pkg/ingest/parser"
	"github.com/sirupsen/logrus"
)

// Shape selects how sheets are interpreted.
type Shape = parser.ShapeMode

const (
	// ShapeAuto tries keyed rows first and falls back to the legacy positional layout, per sheet.
	ShapeAuto Shape = parser.ShapeAuto
	// ShapeKeyed reads every sheet through its header row.
	ShapeKeyed Shape = parser.ShapeKeyedOnly
	// ShapePositional reads every sheet with the legacy section layout.
	ShapePositional Shape = parser.ShapePositionalOnly
)

// Options configures ingestion behavior.
type Options struct {
	// Shape specifies the sheet interpretation (auto, keyed, positional).
	Shape Shape
	// IncludeDiagnostics specifies whether skipped rows, rejected rows, unmapped
	// fields and shape fallbacks are reported. If nil, defaults to false.
	IncludeDiagnostics *bool
	// IncludeSheetReports specifies whether per-sheet summaries are returned.
	// If nil, follows IncludeDiagnostics.
	IncludeSheetReports *bool
	// Logger receives debug entries about sheet classification. Nil discards them.
	Logger logrus.FieldLogger
	// NewID supplies the unique part of record identifiers. Nil uses random UUIDs.
	NewID func() string
}

// DefaultOptions returns default ingestion options.
func DefaultOptions() Options {
	return Options{
		Shape: ShapeAuto,
	}
}

// ParseShape converts a textual shape name. Empty means auto.
func ParseShape(s string) (Shape, bool) {
	switch Shape(s) {
	case "", ShapeAuto:
		return ShapeAuto, true
	case ShapeKeyed, ShapePositional:
		return Shape(s), true
	default:
		return ShapeAuto, false
	}
}

// ShouldIncludeDiagnostics returns whether to report recovered anomalies.
func (o Options) ShouldIncludeDiagnostics() bool {
	if o.IncludeDiagnostics != nil {
		return *o.IncludeDiagnostics
	}
	return false
}

// ShouldIncludeSheetReports returns whether to report per-sheet summaries.
func (o Options) ShouldIncludeSheetReports() bool {
	if o.IncludeSheetReports != nil {
		return *o.IncludeSheetReports
	}
	return o.ShouldIncludeDiagnostics()
}

func (o Options) logger() logrus.FieldLogger {
	if o.Logger != nil {
		return o.Logger
	}
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func (o Options) shape() Shape {
	if o.Shape == "" {
		return ShapeAuto
	}
	return o.Shape
}
