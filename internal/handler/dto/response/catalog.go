package response

import (
	"time"

	"cane-market/internal/usecase/queries"

	"github.com/google/uuid"
)

type VarietyResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	SoilType  string    `json:"soilType"`
	Pests     []string  `json:"pests"`
	Diseases  []string  `json:"diseases"`
	ImageURL  *string   `json:"imageUrl,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func FromVarietyView(rm *queries.VarietyView) *VarietyResponse {
	return &VarietyResponse{
		ID:        rm.ID,
		Name:      rm.Name,
		SoilType:  rm.SoilType,
		Pests:     rm.Pests,
		Diseases:  rm.Diseases,
		ImageURL:  rm.ImageURL,
		CreatedAt: rm.CreatedAt,
		UpdatedAt: rm.UpdatedAt,
	}
}

func FromVarietyViews(rms []*queries.VarietyView) []*VarietyResponse {
	out := make([]*VarietyResponse, len(rms))
	for i, rm := range rms {
		out[i] = FromVarietyView(rm)
	}
	return out
}
