package entity

import (
	"time"

	"github.com/jhoicas/almacen-api/internal/domain/capacity"
)

// Rack representa una estantería dentro de una sección. Su peso máximo queda
// reservado en la sección al crearse; a su vez reserva peso para sus niveles.
type Rack struct {
	ID          string
	SectionID   string
	RackName    string
	Weight      capacity.WeightUsage
	Reservation capacity.ReservationUsage
	Levels      capacity.UnitUsage
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsEmpty indica si la estantería no tiene niveles ni peso ocupado o reservado.
func (r *Rack) IsEmpty() bool {
	return r.Levels.Occupied == 0 && r.Weight.Occupied.IsZero() && r.Reservation.Reserved.IsZero()
}
