//go:build unit

package catalog_test

import (
	"testing"

	"cane-market/internal/domain/catalog"
	"cane-market/tests/common/builder"

	"github.com/stretchr/testify/assert"
)

func TestSearchFilterMatches(t *testing.T) {
	variety := builder.NewVarietyBuilder().
		WithName("Khon Kaen 3").
		WithSoilType("loam").
		WithPests("stem borer", "white grub").
		WithDiseases("red rot").
		BuildDomain()

	testCases := []struct {
		name   string
		filter catalog.SearchFilter
		want   bool
	}{
		{
			name:   "empty filter matches everything",
			filter: catalog.SearchFilter{},
			want:   true,
		},
		{
			name:   "soil type exact match",
			filter: catalog.SearchFilter{SoilTypes: []string{"loam"}},
			want:   true,
		},
		{
			name:   "soil type is not a substring match",
			filter: catalog.SearchFilter{SoilTypes: []string{"loa"}},
			want:   false,
		},
		{
			name:   "any of several soil types",
			filter: catalog.SearchFilter{SoilTypes: []string{"clay", "loam"}},
			want:   true,
		},
		{
			name:   "pest overlap on one of two",
			filter: catalog.SearchFilter{Pests: []string{"aphid", "white grub"}},
			want:   true,
		},
		{
			name:   "no pest overlap",
			filter: catalog.SearchFilter{Pests: []string{"aphid"}},
			want:   false,
		},
		{
			name:   "disease overlap",
			filter: catalog.SearchFilter{Diseases: []string{"red rot", "smut"}},
			want:   true,
		},
		{
			name:   "name substring is case-insensitive",
			filter: catalog.SearchFilter{Name: "khon"},
			want:   true,
		},
		{
			name:   "name substring absent",
			filter: catalog.SearchFilter{Name: "suphan"},
			want:   false,
		},
		{
			name: "all predicates AND together",
			filter: catalog.SearchFilter{
				SoilTypes: []string{"loam"},
				Pests:     []string{"stem borer"},
				Diseases:  []string{"red rot"},
				Name:      "kaen",
			},
			want: true,
		},
		{
			name: "one failing predicate fails the whole filter",
			filter: catalog.SearchFilter{
				SoilTypes: []string{"loam"},
				Pests:     []string{"aphid"},
			},
			want: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.filter.Matches(variety))
		})
	}
}

func TestSearchFilterMatchesThaiScript(t *testing.T) {
	variety := builder.NewVarietyBuilder().
		WithName("อู่ทอง 12").
		WithSoilType("ดินร่วน").
		WithPests("หนอนกออ้อย").
		WithDiseases("โรคแส้ดำ").
		BuildDomain()

	testCases := []struct {
		name   string
		filter catalog.SearchFilter
		want   bool
	}{
		{
			name:   "soil type exact match",
			filter: catalog.SearchFilter{SoilTypes: []string{"ดินร่วน"}},
			want:   true,
		},
		{
			name:   "pest overlap on one of two",
			filter: catalog.SearchFilter{Pests: []string{"เพลี้ย", "หนอนกออ้อย"}},
			want:   true,
		},
		{
			name:   "disease overlap",
			filter: catalog.SearchFilter{Diseases: []string{"โรคแส้ดำ"}},
			want:   true,
		},
		{
			name:   "name substring",
			filter: catalog.SearchFilter{Name: "อู่ทอง"},
			want:   true,
		},
		{
			name:   "different soil type does not match",
			filter: catalog.SearchFilter{SoilTypes: []string{"ดินเหนียว"}},
			want:   false,
		},
		{
			name:   "truncated cluster is not a soil type match",
			filter: catalog.SearchFilter{SoilTypes: []string{"ดินร่ว"}},
			want:   false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.filter.Matches(variety))
		})
	}
}

func TestSearchFilterIsEmpty(t *testing.T) {
	assert.True(t, catalog.SearchFilter{}.IsEmpty())
	assert.False(t, catalog.SearchFilter{Name: "x"}.IsEmpty())
	assert.False(t, catalog.SearchFilter{Pests: []string{"aphid"}}.IsEmpty())
}
