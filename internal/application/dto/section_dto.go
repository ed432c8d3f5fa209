package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateSectionRequest entrada para crear una sección bajo el almacén.
type CreateSectionRequest struct {
	SectionName string          `json:"section_name" validate:"required,min=1,max=200"`
	MaxWeight   decimal.Decimal `json:"max_weight" validate:"required"`
	MaxRacks    int             `json:"max_racks" validate:"required,min=1"`
}

// UpdateSectionRequest entrada para redimensionar una sección.
type UpdateSectionRequest struct {
	SectionName *string          `json:"section_name" validate:"omitempty,min=1,max=200"`
	MaxWeight   *decimal.Decimal `json:"max_weight"`
	MaxRacks    *int             `json:"max_racks" validate:"omitempty,min=1"`
}

// SectionResponse salida de una sección con sus contadores.
type SectionResponse struct {
	ID              string          `json:"id"`
	WarehouseID     string          `json:"warehouse_id"`
	SectionName     string          `json:"section_name"`
	MaxWeight       decimal.Decimal `json:"max_weight"`
	AvailableWeight decimal.Decimal `json:"available_weight"`
	OccupiedWeight  decimal.Decimal `json:"occupied_weight"`
	ReservedWeight  decimal.Decimal `json:"reserved_weight"`
	WeightToReserve decimal.Decimal `json:"weight_to_reserve"`
	MaxRacks        int             `json:"max_racks"`
	AvailableRacks  int             `json:"available_racks"`
	OccupiedRacks   int             `json:"occupied_racks"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// SectionListResponse lista paginada de secciones.
type SectionListResponse struct {
	Items []SectionResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
