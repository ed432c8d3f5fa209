package apptest

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/almacen-api/internal/domain/capacity"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// Constructores de fixtures. Cada seed deja los contadores del padre como los
// dejarían los casos de uso: sembrar una sección consume una unidad del
// almacén, sembrar una estantería reserva su peso en la sección, etcétera.

// Kg construye un decimal a partir de un entero, para pesos en los tests.
func Kg(n int64) decimal.Decimal {
	return decimal.NewFromInt(n)
}

// SeedWarehouse siembra el almacén único.
func (s *Store) SeedWarehouse(maxSections, maxWaitingRooms int) *entity.Warehouse {
	now := time.Now()
	w := &entity.Warehouse{
		ID:           uuid.New().String(),
		Name:         "Almacén Central",
		Sections:     capacity.NewUnitUsage(maxSections),
		WaitingRooms: capacity.NewUnitUsage(maxWaitingRooms),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	s.Warehouses = append(s.Warehouses, w)
	return w
}

// SeedSection siembra una sección bajo el almacén, consumiendo su unidad.
func (s *Store) SeedSection(w *entity.Warehouse, name string, maxWeight decimal.Decimal, maxRacks int) *entity.Section {
	now := time.Now()
	sec := &entity.Section{
		ID:          uuid.New().String(),
		WarehouseID: w.ID,
		SectionName: name,
		Weight:      capacity.NewWeightUsage(maxWeight),
		Reservation: capacity.NewReservationUsage(maxWeight),
		Racks:       capacity.NewUnitUsage(maxRacks),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	capacity.ApplyUnits(&w.Sections, 1, capacity.Consume)
	s.Sections = append(s.Sections, sec)
	return sec
}

// SeedRack siembra una estantería, consumiendo unidad y reserva de la sección.
func (s *Store) SeedRack(sec *entity.Section, name string, maxWeight decimal.Decimal, maxLevels int) *entity.Rack {
	now := time.Now()
	rack := &entity.Rack{
		ID:          uuid.New().String(),
		SectionID:   sec.ID,
		RackName:    name,
		Weight:      capacity.NewWeightUsage(maxWeight),
		Reservation: capacity.NewReservationUsage(maxWeight),
		Levels:      capacity.NewUnitUsage(maxLevels),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	capacity.ApplyUnits(&sec.Racks, 1, capacity.Consume)
	capacity.ApplyReservation(&sec.Reservation, maxWeight, capacity.Consume)
	s.Racks = append(s.Racks, rack)
	return rack
}

// SeedRackLevel siembra un nivel con sus casillas 1..maxSlots, todas activas.
func (s *Store) SeedRackLevel(rack *entity.Rack, number int, maxWeight decimal.Decimal, maxSlots int) *entity.RackLevel {
	now := time.Now()
	level := &entity.RackLevel{
		ID:              uuid.New().String(),
		RackID:          rack.ID,
		RackLevelNumber: number,
		Weight:          capacity.NewWeightUsage(maxWeight),
		Slots:           capacity.NewUnitUsage(maxSlots),
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	capacity.ApplyUnits(&rack.Levels, 1, capacity.Consume)
	capacity.ApplyReservation(&rack.Reservation, maxWeight, capacity.Consume)
	s.RackLevels = append(s.RackLevels, level)
	for n := 1; n <= maxSlots; n++ {
		s.Slots = append(s.Slots, &entity.RackLevelSlot{
			ID:          uuid.New().String(),
			RackLevelID: level.ID,
			SlotNumber:  n,
			IsActive:    true,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
	}
	return level
}

// SeedWaitingRoom siembra una sala de espera, consumiendo su unidad del almacén.
func (s *Store) SeedWaitingRoom(w *entity.Warehouse, name string, maxWeight decimal.Decimal, maxStocks int) *entity.WaitingRoom {
	now := time.Now()
	room := &entity.WaitingRoom{
		ID:          uuid.New().String(),
		WarehouseID: w.ID,
		Name:        name,
		Weight:      capacity.NewWeightUsage(maxWeight),
		Slots:       capacity.NewUnitUsage(maxStocks),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	capacity.ApplyUnits(&w.WaitingRooms, 1, capacity.Consume)
	s.WaitingRooms = append(s.WaitingRooms, room)
	return room
}

// SeedProduct siembra un producto con el peso unitario indicado.
func (s *Store) SeedProduct(name string, unitWeight decimal.Decimal, legacy bool) *entity.Product {
	now := time.Now()
	p := &entity.Product{
		ID:        uuid.New().String(),
		Name:      name,
		Weight:    unitWeight,
		IsLegacy:  legacy,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.Products = append(s.Products, p)
	return p
}

// SeedStockInRoom siembra un stock ya colocado en una sala de espera,
// consumiendo peso y slot de la sala.
func (s *Store) SeedStockInRoom(p *entity.Product, count int, room *entity.WaitingRoom) *entity.Stock {
	now := time.Now()
	stock := &entity.Stock{
		ID:            uuid.New().String(),
		ProductID:     p.ID,
		Weight:        p.Weight.Mul(decimal.NewFromInt(int64(count))),
		ProductCount:  count,
		WaitingRoomID: &room.ID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	capacity.ApplyWeight(&room.Weight, stock.Weight, capacity.Consume)
	capacity.ApplyUnits(&room.Slots, 1, capacity.Consume)
	s.Stocks = append(s.Stocks, stock)
	return stock
}

// SeedStockInSlot siembra un stock ya colocado en una casilla, consumiendo
// peso y slot del nivel y propagando el peso a estantería y sección.
func (s *Store) SeedStockInSlot(p *entity.Product, count int, slot *entity.RackLevelSlot, level *entity.RackLevel, rack *entity.Rack, sec *entity.Section) *entity.Stock {
	now := time.Now()
	stock := &entity.Stock{
		ID:              uuid.New().String(),
		ProductID:       p.ID,
		Weight:          p.Weight.Mul(decimal.NewFromInt(int64(count))),
		ProductCount:    count,
		RackLevelSlotID: &slot.ID,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	slot.StockID = &stock.ID
	capacity.ApplyWeight(&level.Weight, stock.Weight, capacity.Consume)
	capacity.ApplyUnits(&level.Slots, 1, capacity.Consume)
	capacity.ApplyWeight(&rack.Weight, stock.Weight, capacity.Consume)
	capacity.ApplyWeight(&sec.Weight, stock.Weight, capacity.Consume)
	s.Stocks = append(s.Stocks, stock)
	return stock
}

// DeactivateSlot marca una casilla sembrada como inactiva, ajustando los
// contadores del nivel igual que el caso de uso de desactivación.
func (s *Store) DeactivateSlot(slot *entity.RackLevelSlot, level *entity.RackLevel) {
	slot.IsActive = false
	level.InactiveSlots++
	level.Slots.Available--
}

// SlotByNumber busca una casilla sembrada por nivel y número.
func (s *Store) SlotByNumber(rackLevelID string, number int) *entity.RackLevelSlot {
	for _, slot := range s.Slots {
		if slot.RackLevelID == rackLevelID && slot.SlotNumber == number {
			return slot
		}
	}
	return nil
}
