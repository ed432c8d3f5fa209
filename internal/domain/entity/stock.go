package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Stock representa una unidad física de un producto dentro del almacén.
// En todo momento reside en exactamente un lugar: una sala de espera, una
// casilla de nivel, o "emitido" (terminal, sin contenedor). IsIssued es
// irreversible; el stock emitido se conserva como registro histórico pero
// queda excluido de las consultas de stock disponible.
type Stock struct {
	ID              string
	ProductID       string
	Weight          decimal.Decimal // peso unitario * ProductCount
	ProductCount    int
	WaitingRoomID   *string
	RackLevelSlotID *string
	IsIssued        bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// InWaitingRoom indica si el stock reside en una sala de espera.
func (s *Stock) InWaitingRoom() bool { return s.WaitingRoomID != nil }

// InRackLevelSlot indica si el stock reside en una casilla.
func (s *Stock) InRackLevelSlot() bool { return s.RackLevelSlotID != nil }
