package stock_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almacen-api/internal/application/apptest"
	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/placement"
	"github.com/jhoicas/almacen-api/internal/application/stock"
	"github.com/jhoicas/almacen-api/internal/domain"
)

const testUserID = "00000000-0000-0000-0000-000000000001"

func newReceptionUC(s *apptest.Store) *stock.ReceptionUseCase {
	return stock.NewReceptionUseCase(s.Runner(), placement.NewEngine(), s.Atomic().Receptions)
}

func newIssueUC(s *apptest.Store) *stock.IssueUseCase {
	return stock.NewIssueUseCase(s.Runner(), placement.NewEngine(), s.Atomic().Issues)
}

func newMoveUC(s *apptest.Store) *stock.MoveStockUseCase {
	atomic := s.Atomic()
	return stock.NewMoveStockUseCase(s.Runner(), placement.NewEngine(), atomic.Stocks, atomic.Movements)
}

// ──────────────────────────────────────────────────────────────────────────────
// Recepción
// ──────────────────────────────────────────────────────────────────────────────

func TestReception_CreaYColocaLosStocks(t *testing.T) {
	s := apptest.NewStore()
	w := s.SeedWarehouse(1, 1)
	room := s.SeedWaitingRoom(w, "Espera 1", apptest.Kg(100), 5)
	p := s.SeedProduct("Tornillos", apptest.Kg(2), false)
	uc := newReceptionUC(s)

	resp, err := uc.Create(context.Background(), testUserID, dto.CreateReceptionRequest{
		Description: "camión de la mañana",
		Items:       []dto.ReceptionItem{{ProductID: p.ID, ProductCount: 4}},
	})
	require.NoError(t, err)

	require.Len(t, resp.Stocks, 1)
	created := resp.Stocks[0]
	assert.True(t, created.Weight.Equal(apptest.Kg(8)),
		"el peso del stock es peso unitario * cantidad")
	assert.Equal(t, 4, created.ProductCount)
	require.NotNil(t, created.WaitingRoomID)
	assert.Equal(t, room.ID, *created.WaitingRoomID,
		"sin destino explícito el stock cae en la sala de espera")

	assert.True(t, room.Weight.Occupied.Equal(apptest.Kg(8)))
	assert.Equal(t, 1, room.Slots.Occupied)

	require.Len(t, s.Receptions, 1, "debe persistirse la recepción")
	require.Len(t, s.Movements, 1, "cada stock colocado registra su movimiento")
	require.NotNil(t, s.Movements[0].ReceptionID)
	assert.Equal(t, resp.ID, *s.Movements[0].ReceptionID)
}

func TestReception_ProductoLegacy(t *testing.T) {
	s := apptest.NewStore()
	w := s.SeedWarehouse(1, 1)
	s.SeedWaitingRoom(w, "Espera 1", apptest.Kg(100), 5)
	p := s.SeedProduct("Repuesto retirado", apptest.Kg(2), true)
	uc := newReceptionUC(s)

	_, err := uc.Create(context.Background(), testUserID, dto.CreateReceptionRequest{
		Items: []dto.ReceptionItem{{ProductID: p.ID, ProductCount: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrCannotReceiveLegacyProduct,
		"un producto legacy no admite nuevo stock")
}

func TestReception_EntradaIncompleta(t *testing.T) {
	s := apptest.NewStore()
	uc := newReceptionUC(s)

	_, err := uc.Create(context.Background(), testUserID, dto.CreateReceptionRequest{})
	assert.ErrorIs(t, err, domain.ErrMissingProductData, "sin ítems no hay recepción")

	_, err = uc.Create(context.Background(), testUserID, dto.CreateReceptionRequest{
		Items: []dto.ReceptionItem{{ProductID: "p", ProductCount: 0}},
	})
	assert.ErrorIs(t, err, domain.ErrMissingProductData, "la cantidad debe ser al menos 1")
}

func TestReception_ProductoInexistente(t *testing.T) {
	s := apptest.NewStore()
	w := s.SeedWarehouse(1, 1)
	s.SeedWaitingRoom(w, "Espera 1", apptest.Kg(100), 5)
	uc := newReceptionUC(s)

	_, err := uc.Create(context.Background(), testUserID, dto.CreateReceptionRequest{
		Items: []dto.ReceptionItem{{ProductID: "no-existe", ProductCount: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Emisión
// ──────────────────────────────────────────────────────────────────────────────

func TestIssue_MarcaYLiberaLosStocks(t *testing.T) {
	s := apptest.NewStore()
	w := s.SeedWarehouse(1, 1)
	room := s.SeedWaitingRoom(w, "Espera 1", apptest.Kg(100), 5)
	p := s.SeedProduct("Cajas", apptest.Kg(10), false)
	st := s.SeedStockInRoom(p, 1, room)
	uc := newIssueUC(s)

	resp, err := uc.Create(context.Background(), testUserID, dto.CreateIssueRequest{
		Description: "pedido 42",
		StockIDs:    []string{st.ID},
	})
	require.NoError(t, err)

	assert.True(t, st.IsIssued, "el stock queda marcado como emitido")
	assert.Nil(t, st.WaitingRoomID, "el stock emitido no tiene contenedor")
	assert.True(t, room.Weight.Occupied.IsZero(), "la sala libera el peso del stock")
	assert.Equal(t, 0, room.Slots.Occupied)

	require.Len(t, s.Issues, 1)
	require.Len(t, s.Movements, 1)
	m := s.Movements[0]
	require.NotNil(t, m.IssueID)
	assert.Equal(t, resp.ID, *m.IssueID)
	require.NotNil(t, m.FromWaitingRoomID)
	assert.Equal(t, room.ID, *m.FromWaitingRoomID)
	assert.Nil(t, m.ToWaitingRoomID, "la emisión no tiene destino")
}

func TestIssue_IDFaltanteOYaEmitido(t *testing.T) {
	s := apptest.NewStore()
	w := s.SeedWarehouse(1, 1)
	room := s.SeedWaitingRoom(w, "Espera 1", apptest.Kg(100), 5)
	p := s.SeedProduct("Cajas", apptest.Kg(10), false)
	st := s.SeedStockInRoom(p, 1, room)
	uc := newIssueUC(s)

	_, err := uc.Create(context.Background(), testUserID, dto.CreateIssueRequest{
		StockIDs: []string{st.ID, "no-existe"},
	})
	assert.ErrorIs(t, err, domain.ErrServiceConflict,
		"pedir N stocks y encontrar menos de N es un conflicto")

	// emitirlo y reintentar con el mismo ID
	_, err = uc.Create(context.Background(), testUserID, dto.CreateIssueRequest{StockIDs: []string{st.ID}})
	require.NoError(t, err)
	_, err = uc.Create(context.Background(), testUserID, dto.CreateIssueRequest{StockIDs: []string{st.ID}})
	assert.ErrorIs(t, err, domain.ErrServiceConflict,
		"un stock ya emitido no puede volver a emitirse")
}

func TestIssue_SinIDs(t *testing.T) {
	s := apptest.NewStore()
	uc := newIssueUC(s)

	_, err := uc.Create(context.Background(), testUserID, dto.CreateIssueRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Movimiento interno
// ──────────────────────────────────────────────────────────────────────────────

func TestMove_DeSalaANivel(t *testing.T) {
	s := apptest.NewStore()
	w := s.SeedWarehouse(1, 1)
	sec := s.SeedSection(w, "Norte", apptest.Kg(500), 2)
	rack := s.SeedRack(sec, "R1", apptest.Kg(300), 2)
	level := s.SeedRackLevel(rack, 1, apptest.Kg(100), 3)
	room := s.SeedWaitingRoom(w, "Espera 1", apptest.Kg(100), 5)
	p := s.SeedProduct("Cajas", apptest.Kg(10), false)
	st := s.SeedStockInRoom(p, 1, room)
	uc := newMoveUC(s)

	resp, err := uc.Move(context.Background(), testUserID, st.ID, dto.MoveStockRequest{
		Destination: dto.StoragePlaceHint{RackLevelID: level.ID},
	})
	require.NoError(t, err)

	assert.Nil(t, resp.WaitingRoomID)
	require.NotNil(t, resp.RackLevelSlotID)
	assert.Equal(t, s.SlotByNumber(level.ID, 1).ID, *resp.RackLevelSlotID,
		"el nivel asigna su primera casilla libre")
	assert.True(t, room.Weight.Occupied.IsZero())
	assert.True(t, level.Weight.Occupied.Equal(apptest.Kg(10)))
}

func TestMove_StockEmitido(t *testing.T) {
	s := apptest.NewStore()
	w := s.SeedWarehouse(1, 1)
	room := s.SeedWaitingRoom(w, "Espera 1", apptest.Kg(100), 5)
	p := s.SeedProduct("Cajas", apptest.Kg(10), false)
	st := s.SeedStockInRoom(p, 1, room)
	st.IsIssued = true
	uc := newMoveUC(s)

	_, err := uc.Move(context.Background(), testUserID, st.ID, dto.MoveStockRequest{})
	assert.ErrorIs(t, err, domain.ErrCannotMoveIssuedStock)
}

func TestMove_StockInexistente(t *testing.T) {
	s := apptest.NewStore()
	uc := newMoveUC(s)

	_, err := uc.Move(context.Background(), testUserID, "no-existe", dto.MoveStockRequest{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestHistory_ListaLosMovimientosDelStock(t *testing.T) {
	s := apptest.NewStore()
	w := s.SeedWarehouse(1, 1)
	sec := s.SeedSection(w, "Norte", apptest.Kg(500), 2)
	rack := s.SeedRack(sec, "R1", apptest.Kg(300), 2)
	level := s.SeedRackLevel(rack, 1, apptest.Kg(100), 3)
	room := s.SeedWaitingRoom(w, "Espera 1", apptest.Kg(100), 5)
	p := s.SeedProduct("Cajas", apptest.Kg(10), false)
	st := s.SeedStockInRoom(p, 1, room)
	uc := newMoveUC(s)

	_, err := uc.Move(context.Background(), testUserID, st.ID, dto.MoveStockRequest{
		Destination: dto.StoragePlaceHint{RackLevelID: level.ID},
	})
	require.NoError(t, err)

	history, err := uc.History(st.ID, 20, 0)
	require.NoError(t, err)
	require.Len(t, history.Items, 1)
	assert.Equal(t, st.ID, history.Items[0].StockID)
	assert.Equal(t, testUserID, history.Items[0].UserID)
}

// ──────────────────────────────────────────────────────────────────────────────
// Conservación de peso
// ──────────────────────────────────────────────────────────────────────────────

// A lo largo de recepción → movimiento → emisión, el peso total recibido
// tiene que repartirse exacto entre salas, niveles y stocks emitidos.
func TestStock_ElPesoTotalSeConserva(t *testing.T) {
	s := apptest.NewStore()
	w := s.SeedWarehouse(1, 1)
	sec := s.SeedSection(w, "Norte", apptest.Kg(500), 2)
	rack := s.SeedRack(sec, "R1", apptest.Kg(300), 2)
	level := s.SeedRackLevel(rack, 1, apptest.Kg(100), 3)
	room := s.SeedWaitingRoom(w, "Espera 1", apptest.Kg(100), 5)
	p := s.SeedProduct("Tornillos", apptest.Kg(2), false)

	almacenado := func() decimal.Decimal {
		total := room.Weight.Occupied.Add(level.Weight.Occupied)
		for _, st := range s.Stocks {
			if st.IsIssued {
				total = total.Add(st.Weight)
			}
		}
		return total
	}

	resp, err := newReceptionUC(s).Create(context.Background(), testUserID, dto.CreateReceptionRequest{
		Description: "camión de la mañana",
		Items: []dto.ReceptionItem{
			{ProductID: p.ID, ProductCount: 4},
			{ProductID: p.ID, ProductCount: 3},
		},
	})
	require.NoError(t, err)
	require.Len(t, resp.Stocks, 2)
	total := apptest.Kg(14)
	assert.True(t, almacenado().Equal(total), "tras la recepción todo el peso está en la sala")

	_, err = newMoveUC(s).Move(context.Background(), testUserID, resp.Stocks[0].ID, dto.MoveStockRequest{
		Destination: dto.StoragePlaceHint{RackLevelID: level.ID},
	})
	require.NoError(t, err)
	assert.True(t, room.Weight.Occupied.Equal(apptest.Kg(6)))
	assert.True(t, level.Weight.Occupied.Equal(apptest.Kg(8)))
	assert.True(t, almacenado().Equal(total), "mover no crea ni destruye peso")

	_, err = newIssueUC(s).Create(context.Background(), testUserID, dto.CreateIssueRequest{
		Description: "pedido 42",
		StockIDs:    []string{resp.Stocks[1].ID},
	})
	require.NoError(t, err)
	assert.True(t, room.Weight.Occupied.IsZero(), "la sala queda liberada al emitir")
	assert.True(t, almacenado().Equal(total), "lo emitido sigue contando en el total")
}
