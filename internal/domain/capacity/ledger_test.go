package capacity_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/almacen-api/internal/domain/capacity"
)

func kg(n int64) decimal.Decimal {
	return decimal.NewFromInt(n)
}

// assertEq compara decimales por valor (Equal), no por representación.
func assertEq(t *testing.T, expected int64, got decimal.Decimal, msg string) {
	t.Helper()
	assert.True(t, got.Equal(kg(expected)), "%s: esperado %d, obtenido %s", msg, expected, got)
}

// ──────────────────────────────────────────────────────────────────────────────
// Peso
// ──────────────────────────────────────────────────────────────────────────────

func TestApplyWeight_ConsumeYRelease(t *testing.T) {
	u := capacity.NewWeightUsage(kg(100))
	assertEq(t, 100, u.Available, "un contenedor nuevo tiene todo el peso disponible")
	assertEq(t, 0, u.Occupied, "un contenedor nuevo no tiene peso ocupado")

	capacity.ApplyWeight(&u, kg(30), capacity.Consume)
	assertEq(t, 70, u.Available, "consumir 30 deja 70 disponibles")
	assertEq(t, 30, u.Occupied, "consumir 30 ocupa 30")
	assert.True(t, u.Available.Add(u.Occupied).Equal(u.Max),
		"Available + Occupied debe igualar Max tras consumir")

	capacity.ApplyWeight(&u, kg(30), capacity.Release)
	assertEq(t, 100, u.Available, "liberar lo consumido restaura lo disponible")
	assertEq(t, 0, u.Occupied, "liberar lo consumido deja cero ocupado")
}

func TestResizeWeight_RecalculaDisponibleDesdeOcupado(t *testing.T) {
	u := capacity.NewWeightUsage(kg(100))
	capacity.ApplyWeight(&u, kg(40), capacity.Consume)

	capacity.ResizeWeight(&u, kg(60))
	assertEq(t, 60, u.Max, "el máximo cambia al nuevo valor")
	assertEq(t, 40, u.Occupied, "redimensionar no toca lo ocupado")
	assertEq(t, 20, u.Available, "lo disponible se recalcula como Max - Occupied")

	capacity.ResizeWeight(&u, kg(200))
	assertEq(t, 160, u.Available, "ampliar el máximo amplía lo disponible")
}

// ──────────────────────────────────────────────────────────────────────────────
// Unidades
// ──────────────────────────────────────────────────────────────────────────────

func TestApplyUnits_ConsumeYRelease(t *testing.T) {
	u := capacity.NewUnitUsage(5)

	capacity.ApplyUnits(&u, 2, capacity.Consume)
	assert.Equal(t, 3, u.Available, "consumir 2 unidades deja 3 disponibles")
	assert.Equal(t, 2, u.Occupied, "consumir 2 unidades ocupa 2")

	capacity.ApplyUnits(&u, 1, capacity.Release)
	assert.Equal(t, 4, u.Available, "liberar 1 unidad la devuelve a disponibles")
	assert.Equal(t, 1, u.Occupied, "liberar 1 unidad la quita de ocupadas")
	assert.Equal(t, u.Max, u.Available+u.Occupied, "Available + Occupied debe igualar Max")
}

func TestResizeUnits_DescuentaInactivas(t *testing.T) {
	u := capacity.NewUnitUsage(10)
	capacity.ApplyUnits(&u, 4, capacity.Consume)

	capacity.ResizeUnits(&u, 8, 2)
	assert.Equal(t, 8, u.Max, "el máximo cambia al nuevo valor")
	assert.Equal(t, 4, u.Occupied, "redimensionar no toca lo ocupado")
	assert.Equal(t, 2, u.Available, "disponible = Max - Occupied - inactivas")
}

// ──────────────────────────────────────────────────────────────────────────────
// Reserva
// ──────────────────────────────────────────────────────────────────────────────

func TestApplyReservation_ConsumeYRelease(t *testing.T) {
	r := capacity.NewReservationUsage(kg(100))
	assertEq(t, 100, r.ToReserve, "sin hijos, todo el peso queda por reservar")
	assertEq(t, 0, r.Reserved, "sin hijos no hay nada reservado")

	capacity.ApplyReservation(&r, kg(35), capacity.Consume)
	assertEq(t, 65, r.ToReserve, "crear un hijo de 35 deja 65 por reservar")
	assertEq(t, 35, r.Reserved, "crear un hijo de 35 reserva 35")

	capacity.ApplyReservation(&r, kg(35), capacity.Release)
	assertEq(t, 100, r.ToReserve, "eliminar el hijo devuelve el peso por reservar")
	assertEq(t, 0, r.Reserved, "eliminar el hijo libera su reserva")
}

func TestShiftReservation_DeltaVaIntegroAToReserve(t *testing.T) {
	r := capacity.NewReservationUsage(kg(100))
	capacity.ApplyReservation(&r, kg(30), capacity.Consume)

	// ampliar el máximo propio de 100 a 120: lo ya reservado no cambia
	capacity.ShiftReservation(&r, kg(100), kg(120))
	assertEq(t, 90, r.ToReserve, "el delta de ampliación va entero a ToReserve")
	assertEq(t, 30, r.Reserved, "lo reservado por los hijos no cambia")

	// reducir de 120 a 110
	capacity.ShiftReservation(&r, kg(120), kg(110))
	assertEq(t, 80, r.ToReserve, "el delta de reducción sale entero de ToReserve")
	assertEq(t, 30, r.Reserved, "lo reservado sigue intacto al reducir")
}
