// Package export writes equipment records back into keyed-row workbooks that
// the ingest package reads without loss.
package export

import (
	"fmt"

	"github.com/dersesut/equipimport/pkg/ingest/models"
	"github.com/xuri/excelize/v2"
)

// Sheet names used by exported workbooks.
const (
	CPUSheet     = "CPUs"
	MonitorSheet = "Monitores"
	SummarySheet = "Resumo"
)

// Column is one exported column: its header text and display width.
type Column struct {
	Header string
	Width  float64
}

// CPUColumns are the CPU sheet headers, in order. Each header is an exact alias
// of its field.
var CPUColumns = []Column{
	{"Item", 8},
	{"Nomenclatura", 20},
	{"Tombamento", 15},
	{"E-estado", 12},
	{"Marca/Modelo", 25},
	{"Processador", 20},
	{"Memória RAM", 12},
	{"HD", 15},
	{"SSD", 15},
	{"Sistema Operacional", 20},
	{"No Domínio", 15},
	{"Data Formatação", 15},
	{"Responsável", 20},
	{"Desfazimento", 15},
	{"Departamento", 15},
}

// MonitorColumns are the monitor sheet headers, in order.
var MonitorColumns = []Column{
	{"Item", 8},
	{"Tombamento", 15},
	{"Número Série", 18},
	{"E-estado", 12},
	{"Modelo", 25},
	{"Polegadas", 10},
	{"Observação", 25},
	{"Data Verificação", 15},
	{"Responsável", 20},
	{"Desfazimento", 15},
	{"Departamento", 15},
}

func cpuRow(c models.CPU) []interface{} {
	return []interface{}{
		c.Item, c.Nomenclature, c.AssetTag, c.Status, c.BrandModel, c.Processor, c.RAMSize,
		deref(c.HardDisk), deref(c.SolidStateDisk), c.OperatingSystem, c.OnDomain,
		deref(c.FormatDate), c.Owner, deref(c.DisposalNote), c.Department,
	}
}

func monitorRow(m models.Monitor) []interface{} {
	return []interface{}{
		m.Item, m.AssetTag, m.SerialNumber, m.Status, m.Model, m.ScreenSize,
		deref(m.Note), m.CheckDate, m.Owner, deref(m.DisposalNote), m.Department,
	}
}

func deref(s *string) interface{} {
	if s == nil {
		return nil
	}
	return *s
}

// WriteWorkbook renders data as an xlsx workbook with one keyed sheet per
// non-empty record kind and a summary sheet.
func WriteWorkbook(data models.EquipmentData) ([]byte, error) {
	w := newWriter()
	defer w.f.Close()

	if len(data.CPUs) > 0 {
		rows := make([][]interface{}, len(data.CPUs))
		for i, c := range data.CPUs {
			rows[i] = cpuRow(c)
		}
		if err := w.table(CPUSheet, CPUColumns, rows); err != nil {
			return nil, err
		}
	}
	if len(data.Monitors) > 0 {
		rows := make([][]interface{}, len(data.Monitors))
		for i, m := range data.Monitors {
			rows[i] = monitorRow(m)
		}
		if err := w.table(MonitorSheet, MonitorColumns, rows); err != nil {
			return nil, err
		}
	}
	if err := w.table(SummarySheet, []Column{{"Categoria", 25}, {"Quantidade", 12}}, summaryRows(data)); err != nil {
		return nil, err
	}
	return w.bytes()
}

func summaryRows(data models.EquipmentData) [][]interface{} {
	rows := [][]interface{}{
		{"Total de CPUs", len(data.CPUs)},
		{"Total de Monitores", len(data.Monitors)},
	}
	for _, dept := range data.Departments() {
		sub := data.ByDepartment(dept)
		rows = append(rows, []interface{}{dept, len(sub.CPUs) + len(sub.Monitors)})
	}
	return rows
}

// writer wraps a new workbook whose default sheet is renamed on first use.
type writer struct {
	f      *excelize.File
	sheets int
	header int
}

func newWriter() *writer {
	return &writer{f: excelize.NewFile(), header: -1}
}

func (w *writer) sheet(name string) error {
	if w.sheets == 0 {
		if err := w.f.SetSheetName(w.f.GetSheetName(0), name); err != nil {
			return fmt.Errorf("rename sheet %q: %w", name, err)
		}
	} else if _, err := w.f.NewSheet(name); err != nil {
		return fmt.Errorf("create sheet %q: %w", name, err)
	}
	w.sheets++
	return nil
}

func (w *writer) headerStyle() (int, error) {
	if w.header >= 0 {
		return w.header, nil
	}
	id, err := w.f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return 0, fmt.Errorf("create header style: %w", err)
	}
	w.header = id
	return id, nil
}

// table writes a header row followed by rows, starting at A1.
func (w *writer) table(name string, cols []Column, rows [][]interface{}) error {
	if err := w.sheet(name); err != nil {
		return err
	}

	header := make([]interface{}, len(cols))
	for i, c := range cols {
		header[i] = c.Header
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := w.f.SetColWidth(name, col, col, c.Width); err != nil {
			return fmt.Errorf("set width of %s!%s: %w", name, col, err)
		}
	}
	if err := w.f.SetSheetRow(name, "A1", &header); err != nil {
		return fmt.Errorf("write header of %s: %w", name, err)
	}
	style, err := w.headerStyle()
	if err != nil {
		return err
	}
	last, err := excelize.CoordinatesToCellName(len(cols), 1)
	if err != nil {
		return err
	}
	if err := w.f.SetCellStyle(name, "A1", last, style); err != nil {
		return fmt.Errorf("style header of %s: %w", name, err)
	}

	for r, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, r+2)
		if err != nil {
			return err
		}
		row := row
		if err := w.f.SetSheetRow(name, cell, &row); err != nil {
			return fmt.Errorf("write %s row %d: %w", name, r+2, err)
		}
	}
	return nil
}

func (w *writer) bytes() ([]byte, error) {
	buf, err := w.f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("encode workbook: %w", err)
	}
	return buf.Bytes(), nil
}
