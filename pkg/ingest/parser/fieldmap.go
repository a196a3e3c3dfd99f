package parser

import (
	"sort"
	"strings"
	"unicode"

	"github.com/dersesut/equipimport/pkg/ingest/models"
)

// Match tiers, most specific first.
const (
	TierNone      = 0
	TierSubstring = 1
	TierFolded    = 2
	TierExact     = 3
)

// Needles shorter than this only match whole words in the substring tier.
const shortNeedle = 4

// Candidate is one header column that may supply a field value.
type Candidate struct {
	Header string
	Col    int
	Tier   int
	Alias  int
}

// Binding resolves canonical fields to ranked header candidates for one header row.
// It depends only on the headers, so mapping any row through it is deterministic.
type Binding struct {
	table      AliasTable
	candidates map[models.Field][]Candidate
}

// BindHeaders scores every header against table.
//
// Exact and folded (case and accent insensitive) matches rank above substring
// matches. A header claimed by an exact or folded match is not offered to other
// fields as a substring match, and a header that substring-matches several fields
// goes to the one whose matched text is longest.
func BindHeaders(table AliasTable, headers []string) Binding {
	b := Binding{table: table, candidates: make(map[models.Field][]Candidate)}

	folded := make([]string, len(headers))
	for i, h := range headers {
		folded[i] = fold(h)
	}
	foldedAliases := make([][]string, len(table))
	for i, fa := range table {
		foldedAliases[i] = make([]string, len(fa.Aliases))
		for j, a := range fa.Aliases {
			foldedAliases[i][j] = fold(a)
		}
	}

	claimed := make([]bool, len(headers))
	for col, h := range headers {
		if folded[col] == "" {
			continue
		}
		for fi, fa := range table {
			for ai, alias := range fa.Aliases {
				tier := TierNone
				switch {
				case strings.TrimSpace(h) == alias:
					tier = TierExact
				case folded[col] == foldedAliases[fi][ai]:
					tier = TierFolded
				}
				if tier == TierNone {
					continue
				}
				b.candidates[fa.Field] = append(b.candidates[fa.Field], Candidate{Header: h, Col: col, Tier: tier, Alias: ai})
				claimed[col] = true
				break
			}
		}
	}

	for col, h := range headers {
		if claimed[col] || folded[col] == "" {
			continue
		}
		bestScore, bestField, bestAlias := 0, -1, -1
		for fi, fa := range table {
			for ai := range fa.Aliases {
				score := substringScore(folded[col], foldedAliases[fi][ai])
				if score > bestScore {
					bestScore, bestField, bestAlias = score, fi, ai
				}
			}
		}
		if bestField >= 0 {
			field := table[bestField].Field
			b.candidates[field] = append(b.candidates[field], Candidate{Header: h, Col: col, Tier: TierSubstring, Alias: bestAlias})
		}
	}

	for field, cands := range b.candidates {
		sort.SliceStable(cands, func(i, j int) bool {
			if cands[i].Tier != cands[j].Tier {
				return cands[i].Tier > cands[j].Tier
			}
			if cands[i].Alias != cands[j].Alias {
				return cands[i].Alias < cands[j].Alias
			}
			return cands[i].Col < cands[j].Col
		})
		b.candidates[field] = cands
	}
	return b
}

// substringScore returns the length of the shorter string when one contains the
// other, and 0 otherwise. Short needles must match whole words.
func substringScore(header, alias string) int {
	if header == "" || alias == "" {
		return 0
	}
	hay, needle := header, alias
	if len(alias) > len(header) {
		hay, needle = alias, header
	}
	if len([]rune(needle)) < shortNeedle {
		if containsWords(hay, needle) {
			return len(needle)
		}
		return 0
	}
	if strings.Contains(hay, needle) {
		return len(needle)
	}
	return 0
}

// containsWords reports whether the words of needle appear contiguously in hay.
func containsWords(hay, needle string) bool {
	split := func(s string) []string {
		return strings.FieldsFunc(s, func(r rune) bool { return !unicode.IsLetter(r) && !unicode.IsDigit(r) })
	}
	h, n := split(hay), split(needle)
	if len(n) == 0 {
		return false
	}
	for i := 0; i+len(n) <= len(h); i++ {
		match := true
		for j := range n {
			if h[i+j] != n[j] {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}

// Candidates returns the ranked candidates bound to field.
func (b Binding) Candidates(field models.Field) []Candidate {
	return b.candidates[field]
}

// Bound reports whether any header was bound to field.
func (b Binding) Bound(field models.Field) bool {
	return len(b.candidates[field]) > 0
}

// Unbound lists the table's fields that no header matched, in table order.
func (b Binding) Unbound() []models.Field {
	var out []models.Field
	for _, fa := range b.table {
		if !b.Bound(fa.Field) {
			out = append(out, fa.Field)
		}
	}
	return out
}

// MapKeyed maps a keyed row onto canonical fields. For each field the first
// ranked candidate holding a non-empty value wins; fields with no such
// candidate are left out of the result.
func (b Binding) MapKeyed(row models.RawKeyedRow) models.FieldValues {
	out := make(models.FieldValues)
	for _, fa := range b.table {
		for _, c := range b.candidates[fa.Field] {
			if v, ok := row.Values[c.Header]; ok && !isEmptyCell(v) {
				out[fa.Field] = v
				break
			}
		}
	}
	return out
}

// Column tables for the legacy positional layout, by 0-based column index.
var (
	CPUColumns = map[models.Field]int{
		models.FieldItem:            0,
		models.FieldNomenclature:    1,
		models.FieldAssetTag:        2,
		models.FieldStatus:          3,
		models.FieldBrandModel:      4,
		models.FieldProcessor:       5,
		models.FieldRAMSize:         6,
		models.FieldHardDisk:        7,
		models.FieldSolidStateDisk:  8,
		models.FieldOperatingSystem: 9,
		models.FieldOnDomain:        10,
		models.FieldFormatDate:      11,
		models.FieldOwner:           12,
		models.FieldDisposalNote:    13,
	}
	MonitorColumns = map[models.Field]int{
		models.FieldItem:         0,
		models.FieldAssetTag:     1,
		models.FieldSerialNumber: 2,
		models.FieldStatus:       3,
		models.FieldModel:        4,
		models.FieldScreenSize:   5,
		models.FieldNote:         6,
		models.FieldCheckDate:    11,
		models.FieldOwner:        12,
		models.FieldDisposalNote: 13,
	}
)

// MapPositional maps a positional row onto canonical fields by fixed column index.
func MapPositional(kind models.Kind, row []models.Cell) models.FieldValues {
	columns := CPUColumns
	if kind == models.KindMonitor {
		columns = MonitorColumns
	}
	out := make(models.FieldValues, len(columns))
	for field, idx := range columns {
		if idx < len(row) && row[idx] != nil {
			out[field] = row[idx]
		}
	}
	return out
}
