package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateRackRequest entrada para crear una estantería bajo una sección.
type CreateRackRequest struct {
	SectionID string          `json:"section_id" validate:"required"`
	RackName  string          `json:"rack_name" validate:"required,min=1,max=200"`
	MaxWeight decimal.Decimal `json:"max_weight" validate:"required"`
	MaxLevels int             `json:"max_levels" validate:"required,min=1"`
}

// UpdateRackRequest entrada para redimensionar una estantería.
type UpdateRackRequest struct {
	RackName  *string          `json:"rack_name" validate:"omitempty,min=1,max=200"`
	MaxWeight *decimal.Decimal `json:"max_weight"`
	MaxLevels *int             `json:"max_levels" validate:"omitempty,min=1"`
}

// RackResponse salida de una estantería con sus contadores.
type RackResponse struct {
	ID              string          `json:"id"`
	SectionID       string          `json:"section_id"`
	RackName        string          `json:"rack_name"`
	MaxWeight       decimal.Decimal `json:"max_weight"`
	AvailableWeight decimal.Decimal `json:"available_weight"`
	OccupiedWeight  decimal.Decimal `json:"occupied_weight"`
	ReservedWeight  decimal.Decimal `json:"reserved_weight"`
	WeightToReserve decimal.Decimal `json:"weight_to_reserve"`
	MaxLevels       int             `json:"max_levels"`
	AvailableLevels int             `json:"available_levels"`
	OccupiedLevels  int             `json:"occupied_levels"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// RackListResponse lista paginada de estanterías.
type RackListResponse struct {
	Items []RackResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
