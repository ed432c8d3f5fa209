package entity

import "time"

// StockMovement es la fila inmutable de auditoría que liga usuario, stock y
// contenedores origen/destino de una relocalización. Una fila por evento;
// solo se inserta, nunca se actualiza.
type StockMovement struct {
	ID                  string
	UserID              string
	StockID             string
	FromWaitingRoomID   *string
	ToWaitingRoomID     *string
	FromRackLevelSlotID *string
	ToRackLevelSlotID   *string
	ReceptionID         *string
	IssueID             *string
	CreatedAt           time.Time
}
