package ingest

import (
	"context"
	"fmt"
	"os"

	"github.com/dersesut/equipimport/pkg/ingest/models"
	"github.com/dersesut/equipimport/pkg/ingest/parser"
	"github.com/dersesut/equipimport/pkg/ingest/reader"
	"github.com/sirupsen/logrus"
)

// Result is the outcome of one ingestion call. It marshals as
// {"cpus": [...], "monitors": [...]} plus the optional reports.
type Result struct {
	models.EquipmentData
	Diagnostics []models.Diagnostic  `json:"diagnostics,omitempty"`
	Sheets      []models.SheetReport `json:"sheets,omitempty"`
}

// Parse recovers equipment records from workbook bytes.
// It fails only when data is not a spreadsheet container; every other anomaly
// results in fewer records.
func Parse(data []byte, opts Options) (*Result, error) {
	log := opts.logger()

	sheets, format, err := reader.Read(data)
	if err != nil {
		return nil, NewDecodeError(format, err)
	}
	log.WithFields(logrus.Fields{"format": format, "sheets": len(sheets)}).Debug("workbook decoded")

	cfg := parser.Config{Shape: opts.shape(), NewID: opts.NewID, Logger: log}
	res := &Result{EquipmentData: models.EquipmentData{CPUs: []models.CPU{}, Monitors: []models.Monitor{}}}
	for _, sheet := range sheets {
		res.collect(parser.ParseSheet(sheet, cfg), opts)
	}

	log.WithFields(logrus.Fields{"cpus": len(res.CPUs), "monitors": len(res.Monitors)}).Debug("workbook parsed")
	return res, nil
}

// ParseContext is Parse for callers that may have given up before the bytes
// arrived. Parsing itself is not interruptible.
func ParseContext(ctx context.Context, data []byte, opts Options) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return Parse(data, opts)
}

// ParseFile reads and parses the workbook at path.
func ParseFile(path string, opts Options) (*Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, err
	}
	return Parse(data, opts)
}

// collect appends one sheet's accepted records in scan order. No deduplication
// is done.
func (r *Result) collect(sr parser.SheetResult, opts Options) {
	r.CPUs = append(r.CPUs, sr.CPUs...)
	r.Monitors = append(r.Monitors, sr.Monitors...)
	if opts.ShouldIncludeDiagnostics() {
		r.Diagnostics = append(r.Diagnostics, sr.Diagnostics...)
	}
	if opts.ShouldIncludeSheetReports() {
		r.Sheets = append(r.Sheets, sr.Report)
	}
}
