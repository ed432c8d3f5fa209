package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// StoragePlaceHint destino opcional para colocar un stock. A lo sumo uno de
// los tres campos puede venir informado; con todos vacíos el motor elige la
// primera sala de espera con capacidad.
type StoragePlaceHint struct {
	WaitingRoomID   string `json:"waiting_room_id,omitempty"`
	RackLevelSlotID string `json:"rack_level_slot_id,omitempty"`
	RackLevelID     string `json:"rack_level_id,omitempty"`
}

// ReceptionItem un producto y cantidad a recepcionar, con su destino opcional.
type ReceptionItem struct {
	ProductID    string           `json:"product_id" validate:"required"`
	ProductCount int              `json:"product_count" validate:"required,min=1"`
	Destination  StoragePlaceHint `json:"destination"`
}

// CreateReceptionRequest entrada para registrar la llegada de mercancía.
// La recepción es todo-o-nada: si un solo ítem no cabe, nada se persiste.
type CreateReceptionRequest struct {
	Description string          `json:"description"`
	Items       []ReceptionItem `json:"items" validate:"required,min=1"`
}

// ReceptionResponse salida de una recepción con los stocks creados.
type ReceptionResponse struct {
	ID          string          `json:"id"`
	UserID      string          `json:"user_id"`
	Description string          `json:"description"`
	Stocks      []StockResponse `json:"stocks"`
	CreatedAt   time.Time       `json:"created_at"`
}

// CreateIssueRequest entrada para emitir stocks fuera del sistema.
type CreateIssueRequest struct {
	Description string   `json:"description"`
	StockIDs    []string `json:"stock_ids" validate:"required,min=1"`
}

// IssueResponse salida de una emisión.
type IssueResponse struct {
	ID          string   `json:"id"`
	UserID      string   `json:"user_id"`
	Description string   `json:"description"`
	StockIDs    []string `json:"stock_ids"`
	CreatedAt   time.Time `json:"created_at"`
}

// MoveStockRequest entrada para un movimiento interno de stock.
type MoveStockRequest struct {
	Destination StoragePlaceHint `json:"destination"`
}

// StockResponse salida de un stock.
type StockResponse struct {
	ID              string          `json:"id"`
	ProductID       string          `json:"product_id"`
	Weight          decimal.Decimal `json:"weight"`
	ProductCount    int             `json:"product_count"`
	WaitingRoomID   *string         `json:"waiting_room_id,omitempty"`
	RackLevelSlotID *string         `json:"rack_level_slot_id,omitempty"`
	IsIssued        bool            `json:"is_issued"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// StockListResponse lista paginada de stocks.
type StockListResponse struct {
	Items []StockResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}

// StockMovementResponse fila del historial de movimientos.
type StockMovementResponse struct {
	ID                  string    `json:"id"`
	UserID              string    `json:"user_id"`
	StockID             string    `json:"stock_id"`
	FromWaitingRoomID   *string   `json:"from_waiting_room_id,omitempty"`
	ToWaitingRoomID     *string   `json:"to_waiting_room_id,omitempty"`
	FromRackLevelSlotID *string   `json:"from_rack_level_slot_id,omitempty"`
	ToRackLevelSlotID   *string   `json:"to_rack_level_slot_id,omitempty"`
	ReceptionID         *string   `json:"reception_id,omitempty"`
	IssueID             *string   `json:"issue_id,omitempty"`
	CreatedAt           time.Time `json:"created_at"`
}

// StockMovementListResponse lista paginada del historial.
type StockMovementListResponse struct {
	Items []StockMovementResponse `json:"items"`
	Page  PageResponse            `json:"page"`
}
