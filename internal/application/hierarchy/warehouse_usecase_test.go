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

func intPtr(n int) *int { return &n }

func strPtr(s string) *string { return &s }

func newWarehouseUC(s *apptest.Store) *hierarchy.WarehouseUseCase {
	return hierarchy.NewWarehouseUseCase(s.Runner(), s.Atomic().Warehouses)
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestWarehouseCreate_SoloPuedeExistirUno(t *testing.T) {
	s := apptest.NewStore()
	uc := newWarehouseUC(s)

	first, err := uc.Create(context.Background(), dto.CreateWarehouseRequest{
		Name: "Central", MaxSections: 3, MaxWaitingRooms: 2,
	})
	require.NoError(t, err, "el primer almacén debe crearse sin error")
	assert.Equal(t, 3, first.MaxSections)
	assert.Equal(t, 3, first.AvailableSections, "un almacén nuevo tiene todas las secciones disponibles")
	assert.Equal(t, 0, first.OccupiedSections)

	_, err = uc.Create(context.Background(), dto.CreateWarehouseRequest{
		Name: "Otro", MaxSections: 1, MaxWaitingRooms: 1,
	})
	assert.ErrorIs(t, err, domain.ErrWarehouseAlreadyExists,
		"el segundo almacén debe rechazarse")
	assert.Len(t, s.Warehouses, 1, "solo debe quedar persistido un almacén")
}

// ──────────────────────────────────────────────────────────────────────────────
// Update
// ──────────────────────────────────────────────────────────────────────────────

func TestWarehouseUpdate_NoReduceBajoLoOcupado(t *testing.T) {
	s := apptest.NewStore()
	w := s.SeedWarehouse(5, 3)
	s.SeedSection(w, "A", apptest.Kg(100), 2)
	s.SeedSection(w, "B", apptest.Kg(100), 2)
	uc := newWarehouseUC(s)

	_, err := uc.Update(context.Background(), w.ID, dto.UpdateWarehouseRequest{MaxSections: intPtr(1)})
	assert.ErrorIs(t, err, domain.ErrTooLittleSectionsAmount,
		"no se puede bajar el máximo de secciones por debajo de las existentes")

	s.SeedWaitingRoom(w, "Espera 1", apptest.Kg(50), 10)
	_, err = uc.Update(context.Background(), w.ID, dto.UpdateWarehouseRequest{MaxWaitingRooms: intPtr(0)})
	assert.ErrorIs(t, err, domain.ErrTooLittleWaitingRoomsAmount,
		"no se puede bajar el máximo de salas por debajo de las existentes")
}

func TestWarehouseUpdate_RedimensionaContadores(t *testing.T) {
	s := apptest.NewStore()
	w := s.SeedWarehouse(5, 3)
	s.SeedSection(w, "A", apptest.Kg(100), 2)
	uc := newWarehouseUC(s)

	resp, err := uc.Update(context.Background(), w.ID, dto.UpdateWarehouseRequest{
		Name:        strPtr("Central ampliado"),
		MaxSections: intPtr(8),
	})
	require.NoError(t, err)
	assert.Equal(t, "Central ampliado", resp.Name)
	assert.Equal(t, 8, resp.MaxSections)
	assert.Equal(t, 1, resp.OccupiedSections, "la sección existente sigue contada")
	assert.Equal(t, 7, resp.AvailableSections, "disponible = nuevo máximo - ocupadas")
}

func TestWarehouseUpdate_NoExiste(t *testing.T) {
	s := apptest.NewStore()
	uc := newWarehouseUC(s)

	_, err := uc.Update(context.Background(), "no-existe", dto.UpdateWarehouseRequest{MaxSections: intPtr(2)})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Delete
// ──────────────────────────────────────────────────────────────────────────────

func TestWarehouseDelete_SoloSiEstaVacio(t *testing.T) {
	s := apptest.NewStore()
	w := s.SeedWarehouse(5, 3)
	sec := s.SeedSection(w, "A", apptest.Kg(100), 2)
	uc := newWarehouseUC(s)

	err := uc.Delete(context.Background(), w.ID)
	assert.ErrorIs(t, err, domain.ErrWarehouseIsNotEmpty,
		"un almacén con secciones no se puede eliminar")

	// vaciarlo: devolver la unidad de la sección
	secUC := hierarchy.NewSectionUseCase(s.Runner(), s.Atomic().Sections)
	require.NoError(t, secUC.Delete(context.Background(), sec.ID))

	require.NoError(t, uc.Delete(context.Background(), w.ID),
		"un almacén vacío debe poder eliminarse")
	_, err = uc.Get()
	assert.ErrorIs(t, err, domain.ErrNotFound, "tras eliminar no debe haber almacén")
}
