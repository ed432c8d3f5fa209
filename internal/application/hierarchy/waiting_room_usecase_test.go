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

func newWaitingRoomUC(s *apptest.Store) *hierarchy.WaitingRoomUseCase {
	return hierarchy.NewWaitingRoomUseCase(s.Runner(), s.Atomic().WaitingRooms)
}

func TestWaitingRoomCreate_ConsumeUnidadDelAlmacen(t *testing.T) {
	s := apptest.NewStore()
	w := s.SeedWarehouse(1, 2)
	uc := newWaitingRoomUC(s)

	resp, err := uc.Create(context.Background(), dto.CreateWaitingRoomRequest{
		Name: "Espera 1", MaxWeight: apptest.Kg(200), MaxStocks: 10,
	})
	require.NoError(t, err)
	assert.Equal(t, w.ID, resp.WarehouseID)
	assert.Equal(t, 10, resp.AvailableSlots)
	assert.Equal(t, 1, w.WaitingRooms.Occupied, "crear la sala consume una unidad del almacén")
	assert.Equal(t, 1, w.WaitingRooms.Available)
}

func TestWaitingRoomCreate_SinUnidadesNiNombreLibre(t *testing.T) {
	s := apptest.NewStore()
	w := s.SeedWarehouse(1, 1)
	s.SeedWaitingRoom(w, "Espera 1", apptest.Kg(100), 5)
	uc := newWaitingRoomUC(s)

	_, err := uc.Create(context.Background(), dto.CreateWaitingRoomRequest{
		Name: "Espera 2", MaxWeight: apptest.Kg(100), MaxStocks: 5,
	})
	assert.ErrorIs(t, err, domain.ErrNotEnoughWarehouseResources,
		"sin unidades de sala libres la creación debe fallar")

	// con unidad libre pero nombre repetido
	w.WaitingRooms.Max = 2
	w.WaitingRooms.Available = 1
	_, err = uc.Create(context.Background(), dto.CreateWaitingRoomRequest{
		Name: "Espera 1", MaxWeight: apptest.Kg(100), MaxStocks: 5,
	})
	assert.ErrorIs(t, err, domain.ErrAlreadyExists,
		"el nombre de sala es único dentro del almacén")
}

func TestWaitingRoomCreate_AlmacenBorradoAntesDelBloqueo(t *testing.T) {
	s := apptest.NewStore()
	s.SeedWarehouse(1, 2)
	uc := hierarchy.NewWaitingRoomUseCase(vanishingWarehouseRunner{s}, s.Atomic().WaitingRooms)

	assert.NotPanics(t, func() {
		_, err := uc.Create(context.Background(), dto.CreateWaitingRoomRequest{
			Name: "Espera 1", MaxWeight: apptest.Kg(100), MaxStocks: 5,
		})
		assert.ErrorIs(t, err, domain.ErrNotFound,
			"si el almacén desaparece antes del bloqueo se responde not found")
	})
}

func TestWaitingRoomUpdate_PisosDeRedimensionado(t *testing.T) {
	s := apptest.NewStore()
	w := s.SeedWarehouse(1, 1)
	room := s.SeedWaitingRoom(w, "Espera 1", apptest.Kg(100), 5)
	p := s.SeedProduct("Cajas", apptest.Kg(20), false)
	s.SeedStockInRoom(p, 2, room) // 40 kg, 1 slot
	uc := newWaitingRoomUC(s)

	_, err := uc.Update(context.Background(), room.ID, dto.UpdateWaitingRoomRequest{MaxWeight: decPtr(30)})
	assert.ErrorIs(t, err, domain.ErrTooLittleWeightAmount,
		"el nuevo peso máximo no puede quedar bajo el ocupado")

	zero := 0
	_, err = uc.Update(context.Background(), room.ID, dto.UpdateWaitingRoomRequest{MaxStocks: &zero})
	assert.ErrorIs(t, err, domain.ErrTooLittleStocksAmount,
		"el nuevo máximo de stocks no puede quedar bajo los almacenados")

	resp, err := uc.Update(context.Background(), room.ID, dto.UpdateWaitingRoomRequest{MaxWeight: decPtr(80)})
	require.NoError(t, err)
	assert.True(t, resp.AvailableStockWeight.Equal(apptest.Kg(40)),
		"disponible = nuevo máximo - ocupado")
}

func TestWaitingRoomDelete_SoloSiEstaVacia(t *testing.T) {
	s := apptest.NewStore()
	w := s.SeedWarehouse(1, 1)
	room := s.SeedWaitingRoom(w, "Espera 1", apptest.Kg(100), 5)
	p := s.SeedProduct("Cajas", apptest.Kg(20), false)
	stock := s.SeedStockInRoom(p, 1, room)
	uc := newWaitingRoomUC(s)

	err := uc.Delete(context.Background(), room.ID)
	assert.ErrorIs(t, err, domain.ErrWaitingRoomIsNotEmpty,
		"una sala con stocks no se puede eliminar")

	// vaciarla a mano y reintentar
	room.Weight.Occupied = apptest.Kg(0)
	room.Weight.Available = room.Weight.Max
	room.Slots.Occupied = 0
	room.Slots.Available = room.Slots.Max
	stock.WaitingRoomID = nil

	require.NoError(t, uc.Delete(context.Background(), room.ID))
	assert.Equal(t, 0, w.WaitingRooms.Occupied, "eliminar la sala devuelve su unidad")
	assert.Empty(t, s.WaitingRooms)
}
