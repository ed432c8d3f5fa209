package entity

import (
	"time"

	"github.com/jhoicas/almacen-api/internal/domain/capacity"
)

// RackLevel representa un nivel numerado de una estantería. Al crearse se
// generan automáticamente sus casillas 1..MaxSlots, todas activas y vacías.
// Invariante de casillas: Available + Occupied + Inactive = Max.
type RackLevel struct {
	ID              string
	RackID          string
	RackLevelNumber int
	Description     string
	Weight          capacity.WeightUsage
	Slots           capacity.UnitUsage // Available = libres y activas, Occupied = con stock
	InactiveSlots   int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// ActiveSlots casillas en servicio (libres u ocupadas).
func (l *RackLevel) ActiveSlots() int {
	return l.Slots.Max - l.InactiveSlots
}

// IsEmpty indica si el nivel no contiene stock.
func (l *RackLevel) IsEmpty() bool {
	return l.Slots.Occupied == 0 && l.Weight.Occupied.IsZero()
}
