// Package parser turns raw sheets into equipment records, reading either
// header-row sheets or the legacy section layout.
package parser

import (
	"fmt"

	"github.com/dersesut/equipimport/pkg/ingest/models"
	"github.com/sirupsen/logrus"
)

// ShapeMode selects how sheets are interpreted.
type ShapeMode string

const (
	// ShapeAuto tries keyed rows first and falls back to positional rows.
	ShapeAuto ShapeMode = "auto"
	// ShapeKeyedOnly reads every sheet through its header row.
	ShapeKeyedOnly ShapeMode = "keyed"
	// ShapePositionalOnly reads every sheet with the legacy section layout.
	ShapePositionalOnly ShapeMode = "positional"
)

// Config controls sheet parsing.
type Config struct {
	Shape  ShapeMode
	NewID  func() string
	Logger logrus.FieldLogger
}

// SheetResult holds the accepted records and the anomalies of one sheet.
type SheetResult struct {
	CPUs        []models.CPU
	Monitors    []models.Monitor
	Diagnostics []models.Diagnostic
	Report      models.SheetReport
}

// ParseSheet recovers equipment records from a single sheet.
func ParseSheet(sheet models.RawSheet, cfg Config) SheetResult {
	log := cfg.Logger
	if log == nil {
		log = logrus.New()
	}
	log = log.WithField("sheet", sheet.Name)

	res := SheetResult{Report: models.SheetReport{Name: sheet.Name}}

	if cfg.Shape != ShapePositionalOnly {
		keyed, err := ExtractKeyed(sheet)
		if err == nil && len(keyed.Rows) > 0 {
			parseKeyed(sheet.Name, keyed, cfg, &res)
			log.WithFields(logrus.Fields{
				"shape": res.Report.Shape, "kind": res.Report.Kind,
				"cpus": res.Report.CPUs, "monitors": res.Report.Monitors,
			}).Debug("sheet parsed")
			return res
		}
		reason := "no data rows under header"
		if err != nil {
			reason = err.Error()
		}
		if cfg.Shape == ShapeKeyedOnly {
			res.Report.Shape = models.ShapeKeyed
			log.WithField("reason", reason).Debug("keyed extraction produced nothing")
			return res
		}
		res.Diagnostics = append(res.Diagnostics, models.Diagnostic{
			Sheet: sheet.Name, Code: models.DiagShapeFallback, Detail: reason,
		})
		log.WithField("reason", reason).Debug("falling back to positional rows")
	}

	parsePositional(sheet.Name, ExtractPositional(sheet), cfg, log, &res)
	log.WithFields(logrus.Fields{
		"shape": res.Report.Shape, "cpus": res.Report.CPUs, "monitors": res.Report.Monitors,
	}).Debug("sheet parsed")
	return res
}

func parseKeyed(sheetName string, keyed KeyedSheet, cfg Config, res *SheetResult) {
	kind := DecideKind(keyed.Headers, sheetName)
	binding := BindHeaders(AliasesFor(kind), keyed.Headers)

	res.Report.Shape = models.ShapeKeyed
	res.Report.Kind = kind
	res.Report.RowsScanned = len(keyed.Rows)

	for _, field := range binding.Unbound() {
		res.Diagnostics = append(res.Diagnostics, models.Diagnostic{
			Sheet: sheetName, Code: models.DiagFieldUnmapped, Detail: string(field),
		})
	}

	for _, row := range keyed.Rows {
		ctx := RowContext{Sheet: sheetName, Row: row.R, NewID: cfg.NewID}
		res.add(kind, binding.MapKeyed(row), ctx)
	}
}

func parsePositional(sheetName string, rows []models.PositionalRow, cfg Config, log logrus.FieldLogger, res *SheetResult) {
	res.Report.Shape = models.ShapePositional
	res.Report.RowsScanned = len(rows)

	var state ScanState
	for _, row := range rows {
		var em Emission
		state, em = Step(state, row.C)
		log.WithFields(logrus.Fields{"row": row.R, "type": em.Type.String()}).Debug("classified row")
		switch em.Type {
		case RowData:
			ctx := RowContext{Sheet: sheetName, Row: row.R, Department: em.Department, NewID: cfg.NewID}
			res.add(em.Kind, MapPositional(em.Kind, row.C), ctx)
		case RowSkipped:
			res.Diagnostics = append(res.Diagnostics, models.Diagnostic{
				Sheet: sheetName, Row: row.R, Code: models.DiagRowSkipped,
				Detail: fmt.Sprintf("first cell %q is not an item number", cellString(row.C[0])),
			})
		}
	}
}

// add builds, validates and keeps one candidate record.
func (res *SheetResult) add(kind models.Kind, values models.FieldValues, ctx RowContext) {
	switch kind {
	case models.KindMonitor:
		m := BuildMonitor(values, ctx)
		if !AcceptMonitor(m) {
			res.reject(ctx, "monitor has neither model nor asset tag")
			return
		}
		res.Monitors = append(res.Monitors, m)
		res.Report.Monitors++
	default:
		cpu := BuildCPU(values, ctx)
		if !AcceptCPU(cpu) {
			res.reject(ctx, "cpu has no substantive field")
			return
		}
		res.CPUs = append(res.CPUs, cpu)
		res.Report.CPUs++
	}
}

func (res *SheetResult) reject(ctx RowContext, detail string) {
	res.Diagnostics = append(res.Diagnostics, models.Diagnostic{
		Sheet: ctx.Sheet, Row: ctx.Row, Code: models.DiagRowRejected, Detail: detail,
	})
}
