package hierarchy_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almacen-api/internal/application/apptest"
	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/hierarchy"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/capacity"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// vanishingWarehouseRunner simula que el almacén desaparece entre la lectura
// inicial y el bloqueo de la fila (ventana de READ COMMITTED).
type vanishingWarehouseRunner struct{ s *apptest.Store }

func (r vanishingWarehouseRunner) Run(ctx context.Context, fn func(repos *repository.Atomic) error) error {
	repos := r.s.Atomic()
	repos.Warehouses = vanishingWarehouseRepo{repos.Warehouses}
	return fn(repos)
}

type vanishingWarehouseRepo struct{ repository.WarehouseRepository }

func (vanishingWarehouseRepo) GetForUpdate(string) (*entity.Warehouse, error) { return nil, nil }

func decPtr(n int64) *decimal.Decimal {
	d := apptest.Kg(n)
	return &d
}

func newSectionUC(s *apptest.Store) *hierarchy.SectionUseCase {
	return hierarchy.NewSectionUseCase(s.Runner(), s.Atomic().Sections)
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestSectionCreate_ConsumeUnidadDelAlmacen(t *testing.T) {
	s := apptest.NewStore()
	w := s.SeedWarehouse(3, 1)
	uc := newSectionUC(s)

	resp, err := uc.Create(context.Background(), dto.CreateSectionRequest{
		SectionName: "Norte", MaxWeight: apptest.Kg(500), MaxRacks: 4,
	})
	require.NoError(t, err)

	assert.Equal(t, w.ID, resp.WarehouseID)
	assert.True(t, resp.WeightToReserve.Equal(apptest.Kg(500)),
		"una sección nueva tiene todo su peso por reservar")
	assert.Equal(t, 4, resp.AvailableRacks)

	assert.Equal(t, 1, w.Sections.Occupied, "crear la sección consume una unidad del almacén")
	assert.Equal(t, 2, w.Sections.Available)
}

func TestSectionCreate_SinUnidadesDisponibles(t *testing.T) {
	s := apptest.NewStore()
	w := s.SeedWarehouse(1, 1)
	s.SeedSection(w, "Norte", apptest.Kg(100), 2)
	uc := newSectionUC(s)

	_, err := uc.Create(context.Background(), dto.CreateSectionRequest{
		SectionName: "Sur", MaxWeight: apptest.Kg(100), MaxRacks: 2,
	})
	assert.ErrorIs(t, err, domain.ErrNotEnoughWarehouseResources,
		"sin unidades de sección libres la creación debe fallar")
}

func TestSectionCreate_NombreDuplicado(t *testing.T) {
	s := apptest.NewStore()
	w := s.SeedWarehouse(3, 1)
	s.SeedSection(w, "Norte", apptest.Kg(100), 2)
	uc := newSectionUC(s)

	_, err := uc.Create(context.Background(), dto.CreateSectionRequest{
		SectionName: "Norte", MaxWeight: apptest.Kg(100), MaxRacks: 2,
	})
	assert.ErrorIs(t, err, domain.ErrAlreadyExists,
		"el nombre de sección es único dentro del almacén")
}

func TestSectionCreate_SinAlmacen(t *testing.T) {
	s := apptest.NewStore()
	uc := newSectionUC(s)

	_, err := uc.Create(context.Background(), dto.CreateSectionRequest{
		SectionName: "Norte", MaxWeight: apptest.Kg(100), MaxRacks: 2,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound, "sin almacén no hay dónde crear la sección")
}

func TestSectionCreate_AlmacenBorradoAntesDelBloqueo(t *testing.T) {
	s := apptest.NewStore()
	s.SeedWarehouse(3, 1)
	uc := hierarchy.NewSectionUseCase(vanishingWarehouseRunner{s}, s.Atomic().Sections)

	assert.NotPanics(t, func() {
		_, err := uc.Create(context.Background(), dto.CreateSectionRequest{
			SectionName: "Norte", MaxWeight: apptest.Kg(500), MaxRacks: 4,
		})
		assert.ErrorIs(t, err, domain.ErrNotFound,
			"si el almacén desaparece antes del bloqueo se responde not found")
	})
}

// ──────────────────────────────────────────────────────────────────────────────
// Update
// ──────────────────────────────────────────────────────────────────────────────

func TestSectionUpdate_PisosDeRedimensionado(t *testing.T) {
	s := apptest.NewStore()
	w := s.SeedWarehouse(3, 1)
	sec := s.SeedSection(w, "Norte", apptest.Kg(500), 4)
	s.SeedRack(sec, "R1", apptest.Kg(200), 3)
	uc := newSectionUC(s)

	// por debajo de lo reservado por la estantería
	_, err := uc.Update(context.Background(), sec.ID, dto.UpdateSectionRequest{MaxWeight: decPtr(150)})
	assert.ErrorIs(t, err, domain.ErrTooLittleWeightAmount,
		"el nuevo máximo no puede quedar bajo el peso reservado")

	// por debajo de las estanterías existentes
	zero := 0
	_, err = uc.Update(context.Background(), sec.ID, dto.UpdateSectionRequest{MaxRacks: &zero})
	assert.ErrorIs(t, err, domain.ErrTooLittleRacksAmount,
		"el nuevo máximo de estanterías no puede quedar bajo las existentes")

	// por debajo del peso de stock realmente almacenado
	capacity.ApplyWeight(&sec.Weight, apptest.Kg(180), capacity.Consume)
	_, err = uc.Update(context.Background(), sec.ID, dto.UpdateSectionRequest{MaxWeight: decPtr(170)})
	assert.ErrorIs(t, err, domain.ErrTooLittleWeightAmount,
		"el nuevo máximo no puede quedar bajo el peso ocupado")
}

func TestSectionUpdate_AmpliarPesoAjustaReserva(t *testing.T) {
	s := apptest.NewStore()
	w := s.SeedWarehouse(3, 1)
	sec := s.SeedSection(w, "Norte", apptest.Kg(500), 4)
	s.SeedRack(sec, "R1", apptest.Kg(200), 3)
	uc := newSectionUC(s)

	resp, err := uc.Update(context.Background(), sec.ID, dto.UpdateSectionRequest{MaxWeight: decPtr(600)})
	require.NoError(t, err)
	assert.True(t, resp.MaxWeight.Equal(apptest.Kg(600)))
	assert.True(t, resp.ReservedWeight.Equal(apptest.Kg(200)),
		"lo reservado por la estantería no cambia al ampliar la sección")
	assert.True(t, resp.WeightToReserve.Equal(apptest.Kg(400)),
		"el delta de ampliación va entero al pool por reservar")
}

// ──────────────────────────────────────────────────────────────────────────────
// Delete
// ──────────────────────────────────────────────────────────────────────────────

func TestSectionDelete_DevuelveLaUnidadAlAlmacen(t *testing.T) {
	s := apptest.NewStore()
	w := s.SeedWarehouse(3, 1)
	sec := s.SeedSection(w, "Norte", apptest.Kg(500), 4)
	uc := newSectionUC(s)

	require.NoError(t, uc.Delete(context.Background(), sec.ID))
	assert.Equal(t, 0, w.Sections.Occupied, "eliminar la sección libera su unidad")
	assert.Equal(t, 3, w.Sections.Available)
	assert.Empty(t, s.Sections, "la sección no debe seguir persistida")
}

func TestSectionDelete_NoVacia(t *testing.T) {
	s := apptest.NewStore()
	w := s.SeedWarehouse(3, 1)
	sec := s.SeedSection(w, "Norte", apptest.Kg(500), 4)
	s.SeedRack(sec, "R1", apptest.Kg(200), 3)
	uc := newSectionUC(s)

	err := uc.Delete(context.Background(), sec.ID)
	assert.ErrorIs(t, err, domain.ErrSectionIsNotEmpty,
		"una sección con estanterías no se puede eliminar")
	assert.Len(t, s.Sections, 1, "la sección debe seguir persistida")
}
