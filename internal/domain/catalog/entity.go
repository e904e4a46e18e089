package catalog

import (
	"time"

	"github.com/google/uuid"
)

// Variety is a sugarcane cultivar record. The catalog is owned by a
// separate management subsystem; this core only reads it, so the type
// is a plain snapshot rather than a guarded aggregate.
type Variety struct {
	ID        uuid.UUID
	Name      string
	SoilType  string
	Pests     []string
	Diseases  []string
	ImageURL  *string
	CreatedAt time.Time
	UpdatedAt time.Time
}
