package entity

import (
	"time"

	"github.com/jhoicas/almacen-api/internal/domain/capacity"
)

// Warehouse representa el almacén físico. El sistema admite exactamente uno:
// la unicidad se valida al crear (chequeo de existencia en la misma transacción),
// no con un singleton en memoria.
type Warehouse struct {
	ID           string
	Name         string
	Sections     capacity.UnitUsage // secciones creadas bajo el almacén
	WaitingRooms capacity.UnitUsage // salas de espera creadas bajo el almacén
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsEmpty indica si el almacén no tiene secciones ni salas de espera.
func (w *Warehouse) IsEmpty() bool {
	return w.Sections.Occupied == 0 && w.WaitingRooms.Occupied == 0
}
