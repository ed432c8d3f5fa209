package entity

import (
	"time"

	"github.com/jhoicas/almacen-api/internal/domain/capacity"
)

// Section representa una sección del almacén: agrupa estanterías y administra
// el peso que éstas reservan al crearse (independiente del llenado real).
type Section struct {
	ID          string
	WarehouseID string
	SectionName string
	Weight      capacity.WeightUsage       // peso de stock realmente almacenado
	Reservation capacity.ReservationUsage  // peso comprometido por las estanterías hijas
	Racks       capacity.UnitUsage
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsEmpty indica si la sección no tiene estanterías ni peso ocupado o reservado.
func (s *Section) IsEmpty() bool {
	return s.Racks.Occupied == 0 && s.Weight.Occupied.IsZero() && s.Reservation.Reserved.IsZero()
}
