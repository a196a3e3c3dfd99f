package models

// DiagnosticCode classifies a recovered anomaly.
type DiagnosticCode string

const (
	// DiagShapeFallback means keyed extraction failed and the sheet was read positionally.
	DiagShapeFallback DiagnosticCode = "shape_fallback"
	// DiagRowRejected means a candidate record carried no substantive data.
	DiagRowRejected DiagnosticCode = "row_rejected"
	// DiagFieldUnmapped means no header of a keyed sheet matched a field.
	DiagFieldUnmapped DiagnosticCode = "field_unmapped"
	// DiagRowSkipped means a positional row was neither a marker, a header nor a data row.
	DiagRowSkipped DiagnosticCode = "row_skipped"
)

// Diagnostic describes one anomaly the engine recovered from.
type Diagnostic struct {
	Sheet string `json:"sheet"`
	// Row is the 1-based sheet row, or 0 for sheet-level entries.
	Row    int            `json:"row,omitempty"`
	Code   DiagnosticCode `json:"code"`
	Detail string         `json:"detail,omitempty"`
}

// Shape names how a sheet was interpreted.
type Shape string

const (
	// ShapeKeyed means rows were read through a header row.
	ShapeKeyed Shape = "keyed"
	// ShapePositional means rows were read by fixed column index.
	ShapePositional Shape = "positional"
)

// SheetReport summarizes the outcome for a single sheet.
type SheetReport struct {
	Name        string `json:"name"`
	Shape       Shape  `json:"shape"`
	Kind        Kind   `json:"kind,omitempty"`
	RowsScanned int    `json:"rowsScanned"`
	CPUs        int    `json:"cpus"`
	Monitors    int    `json:"monitors"`
}
