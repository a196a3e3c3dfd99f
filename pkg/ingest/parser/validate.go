package parser

import (
	"strings"

	"github.com/dersesut/equipimport/pkg/ingest/models"
)

// AcceptCPU reports whether a candidate CPU carries real data: at least one of
// nomenclature, brand/model, processor, asset tag or owner is non-empty.
func AcceptCPU(c models.CPU) bool {
	return anyNonEmpty(c.Nomenclature, c.BrandModel, c.Processor, c.AssetTag, c.Owner)
}

// AcceptMonitor reports whether a candidate monitor has a model or an asset tag.
func AcceptMonitor(m models.Monitor) bool {
	return anyNonEmpty(m.Model, m.AssetTag)
}

func anyNonEmpty(values ...string) bool {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return true
		}
	}
	return false
}
