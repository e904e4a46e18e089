package catalog

import "strings"

// SearchFilter holds the set-membership predicates of a catalog
// search. Nil/empty slices impose no constraint; present filters are
// ANDed together.
type SearchFilter struct {
	SoilTypes []string
	Pests     []string
	Diseases  []string
	Name      string
}

func (f SearchFilter) IsEmpty() bool {
	return len(f.SoilTypes) == 0 && len(f.Pests) == 0 && len(f.Diseases) == 0 && f.Name == ""
}

// Matches reports whether the variety satisfies every present
// predicate: soil_type is an exact list-contains check (a variety has
// one soil type), pests/diseases match when the attribute list
// intersects the filter set, name is a case-insensitive substring.
func (f SearchFilter) Matches(v Variety) bool {
	if len(f.SoilTypes) > 0 && !contains(f.SoilTypes, v.SoilType) {
		return false
	}
	if len(f.Pests) > 0 && !intersects(v.Pests, f.Pests) {
		return false
	}
	if len(f.Diseases) > 0 && !intersects(v.Diseases, f.Diseases) {
		return false
	}
	if f.Name != "" && !strings.Contains(strings.ToLower(v.Name), strings.ToLower(f.Name)) {
		return false
	}
	return true
}

func contains(set []string, s string) bool {
	for _, m := range set {
		if m == s {
			return true
		}
	}
	return false
}

func intersects(attrs, set []string) bool {
	for _, a := range attrs {
		if contains(set, a) {
			return true
		}
	}
	return false
}
