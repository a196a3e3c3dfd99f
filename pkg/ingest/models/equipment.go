package models

// Kind identifies the record family a row belongs to.
type Kind string

const (
	// KindNone means no record kind has been established.
	KindNone Kind = ""
	// KindCPU identifies desktop computers.
	KindCPU Kind = "cpu"
	// KindMonitor identifies displays.
	KindMonitor Kind = "monitor"
)

// CPU is the canonical record for a desktop computer.
type CPU struct {
	// ID is generated per import and never derived from sheet content.
	ID              string  `json:"id" db:"id"`
	Item            int     `json:"item" db:"item"`
	Nomenclature    string  `json:"nomenclature" db:"nomenclature"`
	AssetTag        string  `json:"assetTag" db:"asset_tag"`
	Status          string  `json:"status" db:"status"`
	BrandModel      string  `json:"brandModel" db:"brand_model"`
	Processor       string  `json:"processor" db:"processor"`
	RAMSize         string  `json:"ramSize" db:"ram_size"`
	HardDisk        *string `json:"hardDisk" db:"hard_disk"`
	SolidStateDisk  *string `json:"solidStateDisk" db:"solid_state_disk"`
	OperatingSystem string  `json:"operatingSystem" db:"operating_system"`
	OnDomain        string  `json:"onDomain" db:"on_domain"`
	FormatDate      *string `json:"formatDate" db:"format_date"`
	Owner           string  `json:"owner" db:"owner"`
	DisposalNote    *string `json:"disposalNote" db:"disposal_note"`
	Department      string  `json:"department" db:"department"`
}

// Monitor is the canonical record for a display.
type Monitor struct {
	ID           string  `json:"id" db:"id"`
	Item         int     `json:"item" db:"item"`
	AssetTag     string  `json:"assetTag" db:"asset_tag"`
	SerialNumber string  `json:"serialNumber" db:"serial_number"`
	Status       string  `json:"status" db:"status"`
	Model        string  `json:"model" db:"model"`
	ScreenSize   string  `json:"screenSize" db:"screen_size"`
	Note         *string `json:"note" db:"note"`
	CheckDate    string  `json:"checkDate" db:"check_date"`
	Owner        string  `json:"owner" db:"owner"`
	DisposalNote *string `json:"disposalNote" db:"disposal_note"`
	Department   string  `json:"department" db:"department"`
}

// EquipmentData is the output of one ingestion call.
type EquipmentData struct {
	CPUs     []CPU     `json:"cpus"`
	Monitors []Monitor `json:"monitors"`
}

// Departments returns the distinct departments in first-seen order, CPUs first.
func (d EquipmentData) Departments() []string {
	seen := make(map[string]bool)
	var out []string
	add := func(dept string) {
		if !seen[dept] {
			seen[dept] = true
			out = append(out, dept)
		}
	}
	for _, c := range d.CPUs {
		add(c.Department)
	}
	for _, m := range d.Monitors {
		add(m.Department)
	}
	return out
}

// ByDepartment returns the subset of records assigned to dept.
func (d EquipmentData) ByDepartment(dept string) EquipmentData {
	out := EquipmentData{CPUs: []CPU{}, Monitors: []Monitor{}}
	for _, c := range d.CPUs {
		if c.Department == dept {
			out.CPUs = append(out.CPUs, c)
		}
	}
	for _, m := range d.Monitors {
		if m.Department == dept {
			out.Monitors = append(out.Monitors, m)
		}
	}
	return out
}
