// Package output serializes ingestion results.
package output

import (
	"encoding/json"
	"fmt"
	"strings"
	"unicode"

	"github.com/dersesut/equipimport/pkg/ingest/models"
)

// ToJSON encodes v, indented when pretty is set.
func ToJSON(v interface{}, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}

// DepartmentFile is one per-department output document.
type DepartmentFile struct {
	Name string
	Data []byte
}

// DepartmentsToJSON encodes the records of each department separately, in
// first-seen department order. File names are derived from department names.
func DepartmentsToJSON(data models.EquipmentData, pretty bool) ([]DepartmentFile, error) {
	depts := data.Departments()
	files := make([]DepartmentFile, 0, len(depts))
	used := make(map[string]int, len(depts))
	for _, dept := range depts {
		b, err := ToJSON(data.ByDepartment(dept), pretty)
		if err != nil {
			return nil, fmt.Errorf("encode department %q: %w", dept, err)
		}
		name := FileName(dept)
		if n := used[name]; n > 0 {
			name = fmt.Sprintf("%s_%d", name, n+1)
		}
		used[FileName(dept)]++
		files = append(files, DepartmentFile{Name: name + ".json", Data: b})
	}
	return files, nil
}

// FileName turns a department name into a safe file base name.
func FileName(dept string) string {
	name := strings.Map(func(r rune) rune {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r), r == '-', r == '_':
			return r
		case unicode.IsSpace(r), r == '.':
			return '_'
		default:
			return -1
		}
	}, strings.TrimSpace(dept))
	if name == "" {
		return "department"
	}
	return name
}
