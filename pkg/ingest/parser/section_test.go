package parser

import (
	"testing"

	"github.com/dersesut/equipimport/pkg/ingest/models"
	"github.com/stretchr/testify/assert"
)

func TestStep(t *testing.T) {
	cpuGTI := ScanState{Department: "GTI", Kind: models.KindCPU}
	monitorGTI := ScanState{Department: "GTI", Kind: models.KindMonitor}

	tests := []struct {
		name      string
		state     ScanState
		row       []models.Cell
		wantState ScanState
		wantType  RowType
	}{
		{"blank row keeps state", cpuGTI, nil, cpuGTI, RowBlank},
		{"cpu marker opens section", ScanState{}, []models.Cell{"CPU'S - DER-GTI"}, cpuGTI, RowSectionStart},
		{"lowercase typographic marker", ScanState{}, []models.Cell{"cpu’s - der-gti"}, cpuGTI, RowSectionStart},
		{"monitor marker opens section", ScanState{}, []models.Cell{"MONITORES - DER-GTI"}, monitorGTI, RowSectionStart},
		{"monitor marker switches directly", cpuGTI, []models.Cell{"MONITORES - DER-ADM"}, ScanState{Department: "ADM", Kind: models.KindMonitor}, RowSectionStart},
		{"cpu marker switches directly", monitorGTI, []models.Cell{"CPU'S - DER-ADM"}, ScanState{Department: "ADM", Kind: models.KindCPU}, RowSectionStart},
		{"total closes section", cpuGTI, []models.Cell{"TOTAL DE MÁQUINAS:", int64(12)}, ScanState{}, RowSectionEnd},
		{"monitor word closes cpu section", cpuGTI, []models.Cell{"MONITORES"}, ScanState{}, RowSectionEnd},
		{"header row", cpuGTI, []models.Cell{"Item", "NOMENCLATURA"}, cpuGTI, RowHeader},
		{"data row", cpuGTI, []models.Cell{int64(1), "DER-GTI018"}, cpuGTI, RowData},
		{"zero is not an item", cpuGTI, []models.Cell{int64(0), "x"}, cpuGTI, RowSkipped},
		{"text is skipped", cpuGTI, []models.Cell{"observações gerais"}, cpuGTI, RowSkipped},
		{"data outside section", ScanState{}, []models.Cell{int64(1), "DER-GTI018"}, ScanState{}, RowOutside},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state, em := Step(tt.state, tt.row)
			assert.Equal(t, tt.wantState, state)
			assert.Equal(t, tt.wantType, em.Type, "got %s", em.Type)
		})
	}
}

func TestStepDataEmission(t *testing.T) {
	state := ScanState{Department: "GTI", Kind: models.KindMonitor}
	_, em := Step(state, []models.Cell{4.0, "12018"})
	assert.Equal(t, Emission{Type: RowData, Kind: models.KindMonitor, Department: "GTI", Item: 4}, em)
}

func TestIsSectionMarker(t *testing.T) {
	assert.True(t, IsSectionMarker("CPU'S - DER-GTI"))
	assert.True(t, IsSectionMarker("  Monitores - DER-SESUT "))
	assert.False(t, IsSectionMarker("Nomenclatura"))
	assert.False(t, IsSectionMarker(int64(1)))
	assert.False(t, IsSectionMarker(nil))
}
