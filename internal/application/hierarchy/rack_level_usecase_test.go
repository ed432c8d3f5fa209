package hierarchy_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almacen-api/internal/application/apptest"
	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/hierarchy"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

func newRackLevelUC(s *apptest.Store) *hierarchy.RackLevelUseCase {
	atomic := s.Atomic()
	return hierarchy.NewRackLevelUseCase(s.Runner(), atomic.RackLevels, atomic.Slots)
}

// seedLevelFixture deja un nivel de 5 casillas bajo almacén/sección/estantería.
func seedLevelFixture(s *apptest.Store) (*entity.Rack, *entity.RackLevel) {
	w := s.SeedWarehouse(2, 1)
	sec := s.SeedSection(w, "Norte", apptest.Kg(500), 3)
	rack := s.SeedRack(sec, "R1", apptest.Kg(300), 4)
	level := s.SeedRackLevel(rack, 1, apptest.Kg(100), 5)
	return rack, level
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestRackLevelCreate_AutogeneraCasillas(t *testing.T) {
	s := apptest.NewStore()
	w := s.SeedWarehouse(2, 1)
	sec := s.SeedSection(w, "Norte", apptest.Kg(500), 3)
	rack := s.SeedRack(sec, "R1", apptest.Kg(300), 4)
	uc := newRackLevelUC(s)

	resp, err := uc.Create(context.Background(), dto.CreateRackLevelRequest{
		RackID: rack.ID, RackLevelNumber: 1, MaxWeight: apptest.Kg(120), MaxSlots: 5,
	})
	require.NoError(t, err)

	assert.Equal(t, 5, resp.MaxSlots)
	assert.Equal(t, 5, resp.AvailableSlots, "todas las casillas nacen libres y activas")
	assert.Equal(t, 5, resp.ActiveSlots)

	require.Len(t, s.Slots, 5, "deben generarse exactamente MaxSlots casillas")
	for n := 1; n <= 5; n++ {
		slot := s.SlotByNumber(resp.ID, n)
		require.NotNil(t, slot, "debe existir la casilla %d", n)
		assert.True(t, slot.IsActive, "la casilla %d nace activa", n)
		assert.Nil(t, slot.StockID, "la casilla %d nace libre", n)
	}

	assert.Equal(t, 1, rack.Levels.Occupied, "crear el nivel consume una unidad de la estantería")
	assert.True(t, rack.Reservation.Reserved.Equal(apptest.Kg(120)),
		"el peso del nivel queda reservado en la estantería")
}

func TestRackLevelCreate_NumeroDuplicado(t *testing.T) {
	s := apptest.NewStore()
	rack, _ := seedLevelFixture(s)
	uc := newRackLevelUC(s)

	_, err := uc.Create(context.Background(), dto.CreateRackLevelRequest{
		RackID: rack.ID, RackLevelNumber: 1, MaxWeight: apptest.Kg(50), MaxSlots: 3,
	})
	assert.ErrorIs(t, err, domain.ErrAlreadyExists,
		"el número de nivel es único dentro de la estantería")
}

func TestRackLevelCreate_SinRecursosEnLaEstanteria(t *testing.T) {
	s := apptest.NewStore()
	rack, _ := seedLevelFixture(s)
	uc := newRackLevelUC(s)

	// la estantería reserva 100 de 300: pedir 250 no cabe
	_, err := uc.Create(context.Background(), dto.CreateRackLevelRequest{
		RackID: rack.ID, RackLevelNumber: 2, MaxWeight: apptest.Kg(250), MaxSlots: 3,
	})
	assert.ErrorIs(t, err, domain.ErrNotEnoughRackResources)
}

// ──────────────────────────────────────────────────────────────────────────────
// Update: crecer y reducir casillas
// ──────────────────────────────────────────────────────────────────────────────

func TestRackLevelUpdate_CrecerAgregaCasillasAlFinal(t *testing.T) {
	s := apptest.NewStore()
	_, level := seedLevelFixture(s)
	uc := newRackLevelUC(s)

	resp, err := uc.Update(context.Background(), level.ID, dto.UpdateRackLevelRequest{MaxSlots: intPtr(8)})
	require.NoError(t, err)
	assert.Equal(t, 8, resp.MaxSlots)
	assert.Equal(t, 8, resp.AvailableSlots)
	require.Len(t, s.Slots, 8)
	for n := 6; n <= 8; n++ {
		slot := s.SlotByNumber(level.ID, n)
		require.NotNil(t, slot, "la casilla nueva %d debe continuar la numeración", n)
		assert.True(t, slot.IsActive)
	}
}

func TestRackLevelUpdate_ReducirExigeInactivasSuficientes(t *testing.T) {
	s := apptest.NewStore()
	_, level := seedLevelFixture(s)
	uc := newRackLevelUC(s)

	_, err := uc.Update(context.Background(), level.ID, dto.UpdateRackLevelRequest{MaxSlots: intPtr(3)})
	assert.ErrorIs(t, err, domain.ErrTooSmallInactiveSlotsQuantity,
		"sin casillas inactivas no se puede reducir el máximo")
}

func TestRackLevelUpdate_ReducirConHuecoEntreInactivas(t *testing.T) {
	s := apptest.NewStore()
	_, level := seedLevelFixture(s)
	// inactiva la casilla 3: la sobrante (5) sigue activa
	s.DeactivateSlot(s.SlotByNumber(level.ID, 3), level)
	uc := newRackLevelUC(s)

	_, err := uc.Update(context.Background(), level.ID, dto.UpdateRackLevelRequest{MaxSlots: intPtr(4)})
	assert.ErrorIs(t, err, domain.ErrExistingGapBetweenInactiveSlotsToDelete,
		"solo se eliminan casillas inactivas contiguas al final del nivel")
}

func TestRackLevelUpdate_ReducirEliminaLasInactivasFinales(t *testing.T) {
	s := apptest.NewStore()
	_, level := seedLevelFixture(s)
	s.DeactivateSlot(s.SlotByNumber(level.ID, 5), level)
	s.DeactivateSlot(s.SlotByNumber(level.ID, 4), level)
	uc := newRackLevelUC(s)

	resp, err := uc.Update(context.Background(), level.ID, dto.UpdateRackLevelRequest{MaxSlots: intPtr(3)})
	require.NoError(t, err)
	assert.Equal(t, 3, resp.MaxSlots)
	assert.Equal(t, 0, resp.InactiveSlots, "las inactivas eliminadas salen del contador")
	assert.Equal(t, 3, resp.AvailableSlots)
	assert.Len(t, s.Slots, 3, "las casillas 4 y 5 deben desaparecer")
	assert.Nil(t, s.SlotByNumber(level.ID, 4))
	assert.Nil(t, s.SlotByNumber(level.ID, 5))
}

func TestRackLevelUpdate_AmpliarPesoConsumeReservaDeLaEstanteria(t *testing.T) {
	s := apptest.NewStore()
	rack, level := seedLevelFixture(s)
	uc := newRackLevelUC(s)

	_, err := uc.Update(context.Background(), level.ID, dto.UpdateRackLevelRequest{MaxWeight: decPtr(150)})
	require.NoError(t, err)
	assert.True(t, rack.Reservation.Reserved.Equal(apptest.Kg(150)))
	assert.True(t, rack.Reservation.ToReserve.Equal(apptest.Kg(150)))

	// ampliar más de lo que la estantería puede reservar
	_, err = uc.Update(context.Background(), level.ID, dto.UpdateRackLevelRequest{MaxWeight: decPtr(350)})
	assert.ErrorIs(t, err, domain.ErrWeightLimitExceeded)
}

// ──────────────────────────────────────────────────────────────────────────────
// Delete
// ──────────────────────────────────────────────────────────────────────────────

func TestRackLevelDelete_EliminaCasillasYDevuelveReserva(t *testing.T) {
	s := apptest.NewStore()
	rack, level := seedLevelFixture(s)
	uc := newRackLevelUC(s)

	require.NoError(t, uc.Delete(context.Background(), level.ID))
	assert.Equal(t, 0, rack.Levels.Occupied)
	assert.True(t, rack.Reservation.Reserved.IsZero(),
		"eliminar el nivel devuelve su reserva a la estantería")
	assert.Empty(t, s.Slots, "las casillas mueren con el nivel")
	assert.Empty(t, s.RackLevels)
}

func TestRackLevelDelete_NoVacio(t *testing.T) {
	s := apptest.NewStore()
	w := s.SeedWarehouse(2, 1)
	sec := s.SeedSection(w, "Norte", apptest.Kg(500), 3)
	rack := s.SeedRack(sec, "R1", apptest.Kg(300), 4)
	level := s.SeedRackLevel(rack, 1, apptest.Kg(100), 5)
	p := s.SeedProduct("Tuercas", apptest.Kg(2), false)
	s.SeedStockInSlot(p, 3, s.SlotByNumber(level.ID, 1), level, rack, sec)
	uc := newRackLevelUC(s)

	err := uc.Delete(context.Background(), level.ID)
	assert.ErrorIs(t, err, domain.ErrRackLevelIsNotEmpty,
		"un nivel con stock no se puede eliminar")
}
