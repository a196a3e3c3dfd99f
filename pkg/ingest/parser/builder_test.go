package parser

import (
	"testing"

	"github.com/dersesut/equipimport/pkg/ingest/models"
	"github.com/stretchr/testify/assert"
)

func fixedID() string { return "fixed" }

func TestBuildCPU(t *testing.T) {
	values := models.FieldValues{
		models.FieldItem:           int64(1),
		models.FieldNomenclature:   " DER-GTI018 ",
		models.FieldAssetTag:       int64(12018),
		models.FieldProcessor:      "Intel Core I5-6500",
		models.FieldHardDisk:       "1TB",
		models.FieldSolidStateDisk: "  ",
	}
	cpu := BuildCPU(values, RowContext{Sheet: "DeptA", Row: 3, Department: "GTI", NewID: fixedID})

	assert.Equal(t, "gti-1-fixed", cpu.ID)
	assert.Equal(t, 1, cpu.Item)
	assert.Equal(t, "DER-GTI018", cpu.Nomenclature)
	assert.Equal(t, "12018", cpu.AssetTag)
	assert.Equal(t, "GTI", cpu.Department)
	assert.Equal(t, DefaultOnDomain, cpu.OnDomain)
	assert.Equal(t, DefaultStatus, cpu.Status)
	if assert.NotNil(t, cpu.HardDisk) {
		assert.Equal(t, "1TB", *cpu.HardDisk)
	}
	assert.Nil(t, cpu.SolidStateDisk)
	assert.Nil(t, cpu.FormatDate)
	assert.Nil(t, cpu.DisposalNote)
}

func TestBuildItemFallsBackToRow(t *testing.T) {
	cpu := BuildCPU(models.FieldValues{models.FieldItem: "n/a"}, RowContext{Sheet: "CPUs", Row: 7, NewID: fixedID})
	assert.Equal(t, 7, cpu.Item)

	m := BuildMonitor(models.FieldValues{}, RowContext{Sheet: "Monitores", Row: 9, NewID: fixedID})
	assert.Equal(t, 9, m.Item)
	assert.Equal(t, "monitor-monitores-9-fixed", m.ID)
}

func TestBuildDepartmentPrecedence(t *testing.T) {
	withColumn := models.FieldValues{models.FieldDepartment: "Administração"}
	assert.Equal(t, "Administração", BuildCPU(withColumn, RowContext{Sheet: "S", Department: "GTI"}).Department)
	assert.Equal(t, "GTI", BuildCPU(models.FieldValues{}, RowContext{Sheet: "S", Department: "GTI"}).Department)
	assert.Equal(t, "S", BuildCPU(models.FieldValues{}, RowContext{Sheet: "S"}).Department)
	assert.Equal(t, DefaultDepartment, BuildCPU(models.FieldValues{}, RowContext{}).Department)
}

func TestBuildMonitor(t *testing.T) {
	values := models.FieldValues{
		models.FieldSerialNumber: "BR-OMNV2T",
		models.FieldModel:        "DELL P2319Hc",
		models.FieldScreenSize:   int64(23),
		models.FieldNote:         "",
		models.FieldCheckDate:    "24/09/2025",
	}
	m := BuildMonitor(values, RowContext{Sheet: "GTI", Row: 4, NewID: fixedID})

	assert.Equal(t, "23", m.ScreenSize)
	assert.Equal(t, "DELL P2319Hc", m.Model)
	assert.Equal(t, "", m.AssetTag)
	assert.Nil(t, m.Note)
	assert.Equal(t, "GTI", m.Department)
}

func TestRecordIDIsUnique(t *testing.T) {
	a := BuildCPU(models.FieldValues{}, RowContext{Sheet: "GTI", Row: 1})
	b := BuildCPU(models.FieldValues{}, RowContext{Sheet: "GTI", Row: 1})
	assert.NotEmpty(t, a.ID)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestSlug(t *testing.T) {
	assert.Equal(t, "administracao", slug("Administração"))
	assert.Equal(t, "der-gti", slug(" DER / GTI "))
	assert.Equal(t, DefaultDepartment, slug("***"))
}

func TestAccept(t *testing.T) {
	assert.False(t, AcceptCPU(models.CPU{Item: 1, OnDomain: "SIM", Department: "GTI"}))
	assert.True(t, AcceptCPU(models.CPU{Owner: "Diego"}))
	assert.True(t, AcceptCPU(models.CPU{AssetTag: "12018"}))
	assert.False(t, AcceptMonitor(models.Monitor{SerialNumber: "X1", Department: "GTI"}))
	assert.True(t, AcceptMonitor(models.Monitor{Model: "DELL P2319Hc"}))
}
