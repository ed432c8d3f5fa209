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
)

func newSlotUC(s *apptest.Store) *hierarchy.RackLevelSlotUseCase {
	return hierarchy.NewRackLevelSlotUseCase(s.Runner(), s.Atomic().Slots)
}

func TestSlotDeactivate_CasillaLibre(t *testing.T) {
	s := apptest.NewStore()
	_, level := seedLevelFixture(s)
	uc := newSlotUC(s)

	resp, err := uc.Deactivate(context.Background(), s.SlotByNumber(level.ID, 5).ID)
	require.NoError(t, err)
	assert.False(t, resp.IsActive)
	assert.Equal(t, 1, level.InactiveSlots, "desactivar suma al contador de inactivas")
	assert.Equal(t, 4, level.Slots.Available, "desactivar resta de disponibles")
}

func TestSlotDeactivate_CasillaOcupada(t *testing.T) {
	s := apptest.NewStore()
	w := s.SeedWarehouse(2, 1)
	sec := s.SeedSection(w, "Norte", apptest.Kg(500), 3)
	rack := s.SeedRack(sec, "R1", apptest.Kg(300), 4)
	level := s.SeedRackLevel(rack, 1, apptest.Kg(100), 5)
	p := s.SeedProduct("Tuercas", apptest.Kg(2), false)
	slot := s.SlotByNumber(level.ID, 1)
	s.SeedStockInSlot(p, 3, slot, level, rack, sec)
	uc := newSlotUC(s)

	_, err := uc.Deactivate(context.Background(), slot.ID)
	assert.ErrorIs(t, err, domain.ErrCantDeactivateRackLevelSlot,
		"una casilla con stock no se puede desactivar")
}

func TestSlotActivate_ReponeLaCasilla(t *testing.T) {
	s := apptest.NewStore()
	_, level := seedLevelFixture(s)
	slot := s.SlotByNumber(level.ID, 5)
	s.DeactivateSlot(slot, level)
	uc := newSlotUC(s)

	resp, err := uc.Activate(context.Background(), slot.ID)
	require.NoError(t, err)
	assert.True(t, resp.IsActive)
	assert.Equal(t, 0, level.InactiveSlots)
	assert.Equal(t, 5, level.Slots.Available, "activar devuelve la casilla a disponibles")

	// activar una casilla ya activa es una transición ilegal
	_, err = uc.Activate(context.Background(), slot.ID)
	assert.ErrorIs(t, err, domain.ErrCantActivateRackLevelSlot)
}

func TestSlotUpdate_Descripcion(t *testing.T) {
	s := apptest.NewStore()
	_, level := seedLevelFixture(s)
	uc := newSlotUC(s)

	resp, err := uc.Update(context.Background(), s.SlotByNumber(level.ID, 2).ID,
		dto.UpdateRackLevelSlotRequest{Description: strPtr("junto al pasillo")})
	require.NoError(t, err)
	assert.Equal(t, "junto al pasillo", resp.Description)
}

func TestSlotGetByID_NoExiste(t *testing.T) {
	s := apptest.NewStore()
	uc := newSlotUC(s)

	_, err := uc.GetByID("no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
