package models

// Field is a canonical equipment attribute.
type Field string

// Fields shared by both record kinds.
const (
	FieldItem         Field = "item"
	FieldAssetTag     Field = "assetTag"
	FieldStatus       Field = "status"
	FieldOwner        Field = "owner"
	FieldDisposalNote Field = "disposalNote"
	FieldDepartment   Field = "department"
)

// CPU fields.
const (
	FieldNomenclature    Field = "nomenclature"
	FieldBrandModel      Field = "brandModel"
	FieldProcessor       Field = "processor"
	FieldRAMSize         Field = "ramSize"
	FieldHardDisk        Field = "hardDisk"
	FieldSolidStateDisk  Field = "solidStateDisk"
	FieldOperatingSystem Field = "operatingSystem"
	FieldOnDomain        Field = "onDomain"
	FieldFormatDate      Field = "formatDate"
)

// Monitor fields.
const (
	FieldSerialNumber Field = "serialNumber"
	FieldModel        Field = "model"
	FieldScreenSize   Field = "screenSize"
	FieldNote         Field = "note"
	FieldCheckDate    Field = "checkDate"
)

// FieldValues maps canonical fields to the raw cells found for them.
// A field absent from the map is unmapped.
type FieldValues map[Field]Cell
