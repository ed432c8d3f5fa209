package entity

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/almacen-api/internal/domain/capacity"
)

// WaitingRoom representa una sala de espera: almacenamiento temporal de stocks
// recién recepcionados antes de asignarles casilla definitiva.
type WaitingRoom struct {
	ID          string
	WarehouseID string
	Name        string
	Weight      capacity.WeightUsage
	Slots       capacity.UnitUsage // un slot por stock almacenado
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CanAccommodate indica si la sala tiene peso disponible y al menos un slot
// libre para un stock del peso indicado.
func (w *WaitingRoom) CanAccommodate(stockWeight decimal.Decimal) bool {
	return w.Slots.Available > 0 && w.Weight.Available.GreaterThanOrEqual(stockWeight)
}

// IsEmpty indica si la sala no contiene stocks.
func (w *WaitingRoom) IsEmpty() bool {
	return w.Slots.Occupied == 0 && w.Weight.Occupied.IsZero()
}
