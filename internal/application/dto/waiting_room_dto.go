package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateWaitingRoomRequest entrada para crear una sala de espera.
type CreateWaitingRoomRequest struct {
	Name      string          `json:"name" validate:"required,min=1,max=200"`
	MaxWeight decimal.Decimal `json:"max_weight" validate:"required"`
	MaxStocks int             `json:"max_stocks" validate:"required,min=1"`
}

// UpdateWaitingRoomRequest entrada para redimensionar una sala de espera.
type UpdateWaitingRoomRequest struct {
	Name      *string          `json:"name" validate:"omitempty,min=1,max=200"`
	MaxWeight *decimal.Decimal `json:"max_weight"`
	MaxStocks *int             `json:"max_stocks" validate:"omitempty,min=1"`
}

// WaitingRoomResponse salida de una sala de espera con sus contadores.
type WaitingRoomResponse struct {
	ID                   string          `json:"id"`
	WarehouseID          string          `json:"warehouse_id"`
	Name                 string          `json:"name"`
	MaxWeight            decimal.Decimal `json:"max_weight"`
	AvailableStockWeight decimal.Decimal `json:"available_stock_weight"`
	OccupiedStockWeight  decimal.Decimal `json:"occupied_stock_weight"`
	MaxStocks            int             `json:"max_stocks"`
	AvailableSlots       int             `json:"available_slots"`
	OccupiedSlots        int             `json:"occupied_slots"`
	CreatedAt            time.Time       `json:"created_at"`
	UpdatedAt            time.Time       `json:"updated_at"`
}

// WaitingRoomListResponse lista paginada de salas de espera.
type WaitingRoomListResponse struct {
	Items []WaitingRoomResponse `json:"items"`
	Page  PageResponse          `json:"page"`
}
