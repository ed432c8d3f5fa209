package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateRackLevelRequest entrada para crear un nivel numerado bajo una estantería.
// Las casillas 1..MaxSlots se generan automáticamente al crear el nivel.
type CreateRackLevelRequest struct {
	RackID          string          `json:"rack_id" validate:"required"`
	RackLevelNumber int             `json:"rack_level_number" validate:"required,min=1"`
	Description     string          `json:"description"`
	MaxWeight       decimal.Decimal `json:"max_weight" validate:"required"`
	MaxSlots        int             `json:"max_slots" validate:"required,min=1"`
}

// UpdateRackLevelRequest entrada para redimensionar un nivel.
// Reducir MaxSlots exige que las casillas sobrantes estén inactivas y sean
// las últimas del nivel, sin huecos.
type UpdateRackLevelRequest struct {
	Description *string          `json:"description"`
	MaxWeight   *decimal.Decimal `json:"max_weight"`
	MaxSlots    *int             `json:"max_slots" validate:"omitempty,min=1"`
}

// RackLevelResponse salida de un nivel con sus contadores.
type RackLevelResponse struct {
	ID              string          `json:"id"`
	RackID          string          `json:"rack_id"`
	RackLevelNumber int             `json:"rack_level_number"`
	Description     string          `json:"description"`
	MaxWeight       decimal.Decimal `json:"max_weight"`
	AvailableWeight decimal.Decimal `json:"available_weight"`
	OccupiedWeight  decimal.Decimal `json:"occupied_weight"`
	MaxSlots        int             `json:"max_slots"`
	AvailableSlots  int             `json:"available_slots"`
	OccupiedSlots   int             `json:"occupied_slots"`
	ActiveSlots     int             `json:"active_slots"`
	InactiveSlots   int             `json:"inactive_slots"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// RackLevelListResponse lista paginada de niveles.
type RackLevelListResponse struct {
	Items []RackLevelResponse `json:"items"`
	Page  PageResponse        `json:"page"`
}

// RackLevelSlotResponse salida de una casilla.
type RackLevelSlotResponse struct {
	ID          string    `json:"id"`
	RackLevelID string    `json:"rack_level_id"`
	SlotNumber  int       `json:"slot_number"`
	Description string    `json:"description"`
	IsActive    bool      `json:"is_active"`
	StockID     *string   `json:"stock_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// UpdateRackLevelSlotRequest entrada para editar la descripción de una casilla.
type UpdateRackLevelSlotRequest struct {
	Description *string `json:"description"`
}

// RackLevelSlotListResponse lista paginada de casillas.
type RackLevelSlotListResponse struct {
	Items []RackLevelSlotResponse `json:"items"`
	Page  PageResponse            `json:"page"`
}
