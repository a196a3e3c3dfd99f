package parser

import "github.com/dersesut/equipimport/pkg/ingest/models"

// FieldAliases lists the header spellings accepted for one canonical field,
// most specific first.
type FieldAliases struct {
	Field   models.Field
	Aliases []string
}

// AliasTable is the ordered alias list for one record kind.
type AliasTable []FieldAliases

var (
	itemAliases         = []string{"Item", "Nº", "N°", "No.", "#", "Ordem"}
	assetTagAliases     = []string{"Tombamento", "Nº Tombamento", "Tombo", "Patrimônio", "Asset Tag"}
	statusAliases       = []string{"E-estado", "E Estado", "Estado", "Status", "Situação"}
	ownerAliases        = []string{"Responsável", "Resp", "Usuário", "Owner"}
	disposalNoteAliases = []string{"Desfazimento", "Baixa"}
	departmentAliases   = []string{"Departamento", "Depto", "Setor", "Lotação", "Department"}
)

// CPUAliases is the alias table for CPU sheets.
var CPUAliases = AliasTable{
	{models.FieldItem, itemAliases},
	{models.FieldNomenclature, []string{"Nomenclatura", "Nome", "Hostname", "Nome da Máquina", "Identificação"}},
	{models.FieldAssetTag, assetTagAliases},
	{models.FieldStatus, statusAliases},
	{models.FieldBrandModel, []string{"Marca/Modelo", "Marca", "Modelo", "Fabricante"}},
	{models.FieldProcessor, []string{"Processador", "CPU", "Processor"}},
	{models.FieldRAMSize, []string{"Memória RAM", "Memoria RAM", "RAM", "Memória"}},
	{models.FieldHardDisk, []string{"HD", "Disco Rígido", "Hard Disk"}},
	{models.FieldSolidStateDisk, []string{"SSD", "Disco SSD"}},
	{models.FieldOperatingSystem, []string{"Sistema Operacional", "SO", "S.O.", "Windows", "OS"}},
	{models.FieldOnDomain, []string{"No Domínio", "Domínio"}},
	{models.FieldFormatDate, []string{"Data Formatação", "Data de Formatação", "Formatação"}},
	{models.FieldOwner, ownerAliases},
	{models.FieldDisposalNote, disposalNoteAliases},
	{models.FieldDepartment, departmentAliases},
}

// MonitorAliases is the alias table for monitor sheets.
var MonitorAliases = AliasTable{
	{models.FieldItem, itemAliases},
	{models.FieldAssetTag, assetTagAliases},
	{models.FieldSerialNumber, []string{"Número Série", "Número de Série", "Nº Série", "Serial", "Série", "S/N"}},
	{models.FieldStatus, statusAliases},
	{models.FieldModel, []string{"Modelo", "Marca/Modelo", "Marca"}},
	{models.FieldScreenSize, []string{"Polegadas", "Tamanho", "Tela"}},
	{models.FieldNote, []string{"Observação", "Observações", "Obs"}},
	{models.FieldCheckDate, []string{"Data Verificação", "Data de Verificação", "Verificação"}},
	{models.FieldOwner, ownerAliases},
	{models.FieldDisposalNote, disposalNoteAliases},
	{models.FieldDepartment, departmentAliases},
}

// Fields distinctive enough to tell a CPU sheet from a monitor sheet.
var (
	cpuOnlyFields = []models.Field{
		models.FieldNomenclature, models.FieldProcessor, models.FieldRAMSize, models.FieldHardDisk,
		models.FieldSolidStateDisk, models.FieldOperatingSystem, models.FieldOnDomain, models.FieldFormatDate,
	}
	monitorOnlyFields = []models.Field{
		models.FieldSerialNumber, models.FieldScreenSize, models.FieldNote, models.FieldCheckDate,
	}
)

// AliasesFor returns the alias table for kind. Unknown kinds get the CPU table.
func AliasesFor(kind models.Kind) AliasTable {
	if kind == models.KindMonitor {
		return MonitorAliases
	}
	return CPUAliases
}
