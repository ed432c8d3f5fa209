package capacity

import "github.com/shopspring/decimal"

// Funciones puras de contabilidad de capacidad (servicio de dominio).
// No validan: el caller comprueba la capacidad ANTES de llamar, de modo que
// estas funciones son aritmética sobre el valor recibido y nada más.
// Pasar un delta que dejaría contadores negativos es un error de programación
// del caller, no un error de usuario.

// ApplyWeight aplica un delta de peso sobre los contadores.
// Consume: Available -= amount, Occupied += amount. Release: lo inverso.
func ApplyWeight(u *WeightUsage, amount decimal.Decimal, dir Direction) {
	if dir == Consume {
		u.Available = u.Available.Sub(amount)
		u.Occupied = u.Occupied.Add(amount)
		return
	}
	u.Available = u.Available.Add(amount)
	u.Occupied = u.Occupied.Sub(amount)
}

// ApplyUnits aplica un delta de unidades (hijos o casillas) sobre los contadores.
func ApplyUnits(u *UnitUsage, n int, dir Direction) {
	if dir == Consume {
		u.Available -= n
		u.Occupied += n
		return
	}
	u.Available += n
	u.Occupied -= n
}

// ApplyReservation mueve peso entre ToReserve y Reserved.
// Consume: reservar peso para un hijo nuevo. Release: devolverlo al eliminar el hijo.
func ApplyReservation(r *ReservationUsage, amount decimal.Decimal, dir Direction) {
	if dir == Consume {
		r.ToReserve = r.ToReserve.Sub(amount)
		r.Reserved = r.Reserved.Add(amount)
		return
	}
	r.ToReserve = r.ToReserve.Add(amount)
	r.Reserved = r.Reserved.Sub(amount)
}

// ResizeWeight cambia el peso máximo recomputando lo disponible a partir de lo ocupado.
func ResizeWeight(u *WeightUsage, newMax decimal.Decimal) {
	u.Max = newMax
	u.Available = newMax.Sub(u.Occupied)
}

// ResizeUnits cambia el máximo de unidades recomputando lo disponible.
// inactive descuenta las unidades fuera de servicio (casillas inactivas).
func ResizeUnits(u *UnitUsage, newMax, inactive int) {
	u.Max = newMax
	u.Available = newMax - u.Occupied - inactive
}

// ShiftReservation ajusta la reserva cuando cambia el peso máximo del propio
// contenedor: el delta respecto al máximo anterior va íntegro a ToReserve,
// porque lo ya reservado por los hijos no cambia.
func ShiftReservation(r *ReservationUsage, oldMax, newMax decimal.Decimal) {
	r.ToReserve = r.ToReserve.Add(newMax.Sub(oldMax))
}
