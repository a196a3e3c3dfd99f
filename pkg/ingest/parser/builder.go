package parser

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/dersesut/equipimport/pkg/ingest/models"
	"github.com/google/uuid"
)

// Defaults applied when a sheet gives no value.
const (
	DefaultDepartment = "unassigned"
	DefaultStatus     = ""
	DefaultOnDomain   = "SIM"
)

const monitorIDPrefix = "monitor-"

// RowContext carries what the builder knows about a row besides its fields.
type RowContext struct {
	// Sheet is the sheet name, used as a department fallback.
	Sheet string
	// Row is the 1-based row position in the sheet, used when item is unreadable.
	Row int
	// Department is the department announced by a section marker, if any.
	Department string
	// NewID supplies the uniqueness part of record identifiers.
	NewID func() string
}

// BuildCPU turns mapped fields into a CPU record.
func BuildCPU(values models.FieldValues, ctx RowContext) models.CPU {
	cpu := models.CPU{
		Item:            item(values, ctx),
		Nomenclature:    text(values, models.FieldNomenclature),
		AssetTag:        text(values, models.FieldAssetTag),
		Status:          orDefault(text(values, models.FieldStatus), DefaultStatus),
		BrandModel:      text(values, models.FieldBrandModel),
		Processor:       text(values, models.FieldProcessor),
		RAMSize:         text(values, models.FieldRAMSize),
		HardDisk:        nullable(values, models.FieldHardDisk),
		SolidStateDisk:  nullable(values, models.FieldSolidStateDisk),
		OperatingSystem: text(values, models.FieldOperatingSystem),
		OnDomain:        orDefault(text(values, models.FieldOnDomain), DefaultOnDomain),
		FormatDate:      nullable(values, models.FieldFormatDate),
		Owner:           text(values, models.FieldOwner),
		DisposalNote:    nullable(values, models.FieldDisposalNote),
		Department:      department(values, ctx),
	}
	cpu.ID = recordID("", cpu.Department, cpu.Item, ctx.NewID)
	return cpu
}

// BuildMonitor turns mapped fields into a Monitor record.
func BuildMonitor(values models.FieldValues, ctx RowContext) models.Monitor {
	m := models.Monitor{
		Item:         item(values, ctx),
		AssetTag:     text(values, models.FieldAssetTag),
		SerialNumber: text(values, models.FieldSerialNumber),
		Status:       orDefault(text(values, models.FieldStatus), DefaultStatus),
		Model:        text(values, models.FieldModel),
		ScreenSize:   text(values, models.FieldScreenSize),
		Note:         nullable(values, models.FieldNote),
		CheckDate:    text(values, models.FieldCheckDate),
		Owner:        text(values, models.FieldOwner),
		DisposalNote: nullable(values, models.FieldDisposalNote),
		Department:   department(values, ctx),
	}
	m.ID = recordID(monitorIDPrefix, m.Department, m.Item, ctx.NewID)
	return m
}

func text(values models.FieldValues, field models.Field) string {
	return cellString(values[field])
}

func nullable(values models.FieldValues, field models.Field) *string {
	s := text(values, field)
	if s == "" {
		return nil
	}
	return &s
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

func item(values models.FieldValues, ctx RowContext) int {
	if n, ok := cellInt(values[models.FieldItem]); ok {
		return n
	}
	return ctx.Row
}

func department(values models.FieldValues, ctx RowContext) string {
	for _, candidate := range []string{
		text(values, models.FieldDepartment),
		strings.TrimSpace(ctx.Department),
		strings.TrimSpace(ctx.Sheet),
	} {
		if candidate != "" {
			return candidate
		}
	}
	return DefaultDepartment
}

func recordID(prefix, dept string, item int, newID func() string) string {
	if newID == nil {
		newID = uuid.NewString
	}
	return fmt.Sprintf("%s%s-%d-%s", prefix, slug(dept), item, newID())
}

// slug reduces a department name to lower-case ASCII letters, digits and dashes.
func slug(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range fold(s) {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}
	out := strings.TrimSuffix(b.String(), "-")
	if out == "" {
		return DefaultDepartment
	}
	return out
}
