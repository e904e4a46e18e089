package request

import (
	"strings"

	"cane-market/internal/domain/catalog"
)

// SearchVarietiesQuery binds repeated query parameters, e.g.
// /varieties?soil_type=loam&pest=aphid&pest=borer&name=khon
type SearchVarietiesQuery struct {
	SoilTypes []string `form:"soil_type"`
	Pests     []string `form:"pest"`
	Diseases  []string `form:"disease"`
	Name      string   `form:"name"`
}

func (q SearchVarietiesQuery) ToFilter() catalog.SearchFilter {
	return catalog.SearchFilter{
		SoilTypes: trimNonEmpty(q.SoilTypes),
		Pests:     trimNonEmpty(q.Pests),
		Diseases:  trimNonEmpty(q.Diseases),
		Name:      strings.TrimSpace(q.Name),
	}
}

func trimNonEmpty(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if trimmed := strings.TrimSpace(v); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
