//go:build unit || e2e

package builder

import (
	"time"

	"cane-market/internal/domain/catalog"
	"cane-market/internal/usecase/queries"

	"github.com/google/uuid"
)

type VarietyBuilder struct {
	ID       uuid.UUID
	Name     string
	SoilType string
	Pests    []string
	Diseases []string
	ImageURL *string
}

func NewVarietyBuilder() *VarietyBuilder {
	return &VarietyBuilder{
		ID:       uuid.New(),
		Name:     "Khon Kaen 3",
		SoilType: "loam",
		Pests:    []string{"stem borer", "white grub"},
		Diseases: []string{"red rot"},
	}
}

func (b *VarietyBuilder) WithName(name string) *VarietyBuilder {
	b.Name = name
	return b
}

func (b *VarietyBuilder) WithSoilType(soilType string) *VarietyBuilder {
	b.SoilType = soilType
	return b
}

func (b *VarietyBuilder) WithPests(pests ...string) *VarietyBuilder {
	b.Pests = pests
	return b
}

func (b *VarietyBuilder) WithDiseases(diseases ...string) *VarietyBuilder {
	b.Diseases = diseases
	return b
}

func (b *VarietyBuilder) BuildDomain() catalog.Variety {
	now := time.Now()
	return catalog.Variety{
		ID:        b.ID,
		Name:      b.Name,
		SoilType:  b.SoilType,
		Pests:     b.Pests,
		Diseases:  b.Diseases,
		ImageURL:  b.ImageURL,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (b *VarietyBuilder) BuildView() *queries.VarietyView {
	now := time.Now()
	return &queries.VarietyView{
		ID:        b.ID,
		Name:      b.Name,
		SoilType:  b.SoilType,
		Pests:     b.Pests,
		Diseases:  b.Diseases,
		ImageURL:  b.ImageURL,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
