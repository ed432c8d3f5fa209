package capacity

import "github.com/shopspring/decimal"

// Direction indica el sentido de un ajuste de capacidad.
type Direction int

const (
	// Consume reduce lo disponible y aumenta lo ocupado.
	Consume Direction = iota
	// Release devuelve lo ocupado a disponible.
	Release
)

// WeightUsage contadores de peso de un contenedor.
// Invariante: Available = Max - Occupied.
type WeightUsage struct {
	Max       decimal.Decimal
	Available decimal.Decimal
	Occupied  decimal.Decimal
}

// NewWeightUsage inicializa los contadores de peso de un contenedor vacío.
func NewWeightUsage(max decimal.Decimal) WeightUsage {
	return WeightUsage{Max: max, Available: max, Occupied: decimal.Zero}
}

// ReservationUsage contadores de reserva de peso (solo Section y Rack).
// El peso se reserva al crear un contenedor hijo, no al llenarse de stock.
// Invariante: ToReserve = Max - Reserved (sobre el Max de peso del contenedor).
type ReservationUsage struct {
	Reserved  decimal.Decimal
	ToReserve decimal.Decimal
}

// NewReservationUsage inicializa la reserva de un contenedor sin hijos.
func NewReservationUsage(max decimal.Decimal) ReservationUsage {
	return ReservationUsage{Reserved: decimal.Zero, ToReserve: max}
}

// UnitUsage contadores de unidades (hijos o casillas) de un contenedor.
// Invariante: Available + Occupied (+ Inactive si aplica) = Max.
type UnitUsage struct {
	Max       int
	Available int
	Occupied  int
}

// NewUnitUsage inicializa los contadores de unidades de un contenedor vacío.
func NewUnitUsage(max int) UnitUsage {
	return UnitUsage{Max: max, Available: max, Occupied: 0}
}
