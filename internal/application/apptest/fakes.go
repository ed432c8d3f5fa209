// Package apptest provee repositorios en memoria y un TxRunner sin base de
// datos para probar los casos de uso de la aplicación.
//
// Los fakes comparten punteros con el caso de uso y no implementan rollback:
// los tests de caminos de error verifican el error devuelto, y los tests de
// caminos felices verifican el estado resultante del Store.
package apptest

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/almacen-api/internal/application/ports"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// Store guarda las entidades en memoria, en orden de inserción (que en los
// tests coincide con el orden de creación).
type Store struct {
	Warehouses   []*entity.Warehouse
	Sections     []*entity.Section
	Racks        []*entity.Rack
	RackLevels   []*entity.RackLevel
	Slots        []*entity.RackLevelSlot
	WaitingRooms []*entity.WaitingRoom
	Products     []*entity.Product
	Stocks       []*entity.Stock
	Movements    []*entity.StockMovement
	Receptions   []*entity.Reception
	Issues       []*entity.Issue
	Users        []*entity.User
}

// NewStore crea un store vacío.
func NewStore() *Store {
	return &Store{}
}

// Atomic construye el juego completo de repositorios sobre el store.
func (s *Store) Atomic() *repository.Atomic {
	return &repository.Atomic{
		Warehouses:   &warehouseRepo{s},
		Sections:     &sectionRepo{s},
		Racks:        &rackRepo{s},
		RackLevels:   &rackLevelRepo{s},
		Slots:        &slotRepo{s},
		WaitingRooms: &waitingRoomRepo{s},
		Products:     &productRepo{s},
		Stocks:       &stockRepo{s},
		Movements:    &movementRepo{s},
		Receptions:   &receptionRepo{s},
		Issues:       &issueRepo{s},
	}
}

// Runner devuelve un TxRunner que ejecuta fn directamente sobre el store.
func (s *Store) Runner() ports.TxRunner {
	return runner{s}
}

// UserRepo devuelve el repositorio de usuarios (fuera de Atomic, igual que en
// producción: auth no participa de las transacciones de la jerarquía).
func (s *Store) UserRepo() repository.UserRepository {
	return &userRepo{s}
}

type runner struct{ s *Store }

func (r runner) Run(_ context.Context, fn func(repos *repository.Atomic) error) error {
	return fn(r.s.Atomic())
}

func page[T any](list []T, limit, offset int) []T {
	if offset >= len(list) {
		return nil
	}
	list = list[offset:]
	if limit > 0 && limit < len(list) {
		list = list[:limit]
	}
	return list
}

// ─────────────────────────────────────────────────────────────────────────────
// Warehouse
// ─────────────────────────────────────────────────────────────────────────────

type warehouseRepo struct{ s *Store }

func (r *warehouseRepo) Create(w *entity.Warehouse) error {
	r.s.Warehouses = append(r.s.Warehouses, w)
	return nil
}

func (r *warehouseRepo) GetSingle() (*entity.Warehouse, error) {
	if len(r.s.Warehouses) == 0 {
		return nil, nil
	}
	return r.s.Warehouses[0], nil
}

func (r *warehouseRepo) GetByID(id string) (*entity.Warehouse, error) {
	for _, w := range r.s.Warehouses {
		if w.ID == id {
			return w, nil
		}
	}
	return nil, nil
}

func (r *warehouseRepo) GetForUpdate(id string) (*entity.Warehouse, error) {
	return r.GetByID(id)
}

func (r *warehouseRepo) Update(*entity.Warehouse) error { return nil }

func (r *warehouseRepo) Delete(id string) error {
	for i, w := range r.s.Warehouses {
		if w.ID == id {
			r.s.Warehouses = append(r.s.Warehouses[:i], r.s.Warehouses[i+1:]...)
			return nil
		}
	}
	return nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Section
// ─────────────────────────────────────────────────────────────────────────────

type sectionRepo struct{ s *Store }

func (r *sectionRepo) Create(sec *entity.Section) error {
	r.s.Sections = append(r.s.Sections, sec)
	return nil
}

func (r *sectionRepo) GetByID(id string) (*entity.Section, error) {
	for _, sec := range r.s.Sections {
		if sec.ID == id {
			return sec, nil
		}
	}
	return nil, nil
}

func (r *sectionRepo) GetForUpdate(id string) (*entity.Section, error) {
	return r.GetByID(id)
}

func (r *sectionRepo) ExistsByName(warehouseID, name string) (bool, error) {
	for _, sec := range r.s.Sections {
		if sec.WarehouseID == warehouseID && sec.SectionName == name {
			return true, nil
		}
	}
	return false, nil
}

func (r *sectionRepo) List(limit, offset int) ([]*entity.Section, error) {
	return page(r.s.Sections, limit, offset), nil
}

func (r *sectionRepo) Update(*entity.Section) error { return nil }

func (r *sectionRepo) Delete(id string) error {
	for i, sec := range r.s.Sections {
		if sec.ID == id {
			r.s.Sections = append(r.s.Sections[:i], r.s.Sections[i+1:]...)
			return nil
		}
	}
	return nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Rack
// ─────────────────────────────────────────────────────────────────────────────

type rackRepo struct{ s *Store }

func (r *rackRepo) Create(rack *entity.Rack) error {
	r.s.Racks = append(r.s.Racks, rack)
	return nil
}

func (r *rackRepo) GetByID(id string) (*entity.Rack, error) {
	for _, rack := range r.s.Racks {
		if rack.ID == id {
			return rack, nil
		}
	}
	return nil, nil
}

func (r *rackRepo) GetForUpdate(id string) (*entity.Rack, error) {
	return r.GetByID(id)
}

func (r *rackRepo) ExistsByName(sectionID, name string) (bool, error) {
	for _, rack := range r.s.Racks {
		if rack.SectionID == sectionID && rack.RackName == name {
			return true, nil
		}
	}
	return false, nil
}

func (r *rackRepo) ListBySection(sectionID string, limit, offset int) ([]*entity.Rack, error) {
	var out []*entity.Rack
	for _, rack := range r.s.Racks {
		if rack.SectionID == sectionID {
			out = append(out, rack)
		}
	}
	return page(out, limit, offset), nil
}

func (r *rackRepo) Update(*entity.Rack) error { return nil }

func (r *rackRepo) Delete(id string) error {
	for i, rack := range r.s.Racks {
		if rack.ID == id {
			r.s.Racks = append(r.s.Racks[:i], r.s.Racks[i+1:]...)
			return nil
		}
	}
	return nil
}

// ─────────────────────────────────────────────────────────────────────────────
// RackLevel
// ─────────────────────────────────────────────────────────────────────────────

type rackLevelRepo struct{ s *Store }

func (r *rackLevelRepo) Create(level *entity.RackLevel) error {
	r.s.RackLevels = append(r.s.RackLevels, level)
	return nil
}

func (r *rackLevelRepo) GetByID(id string) (*entity.RackLevel, error) {
	for _, level := range r.s.RackLevels {
		if level.ID == id {
			return level, nil
		}
	}
	return nil, nil
}

func (r *rackLevelRepo) GetForUpdate(id string) (*entity.RackLevel, error) {
	return r.GetByID(id)
}

func (r *rackLevelRepo) ExistsByNumber(rackID string, number int) (bool, error) {
	for _, level := range r.s.RackLevels {
		if level.RackID == rackID && level.RackLevelNumber == number {
			return true, nil
		}
	}
	return false, nil
}

func (r *rackLevelRepo) ListByRack(rackID string, limit, offset int) ([]*entity.RackLevel, error) {
	var out []*entity.RackLevel
	for _, level := range r.s.RackLevels {
		if level.RackID == rackID {
			out = append(out, level)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].RackLevelNumber < out[j].RackLevelNumber })
	return page(out, limit, offset), nil
}

func (r *rackLevelRepo) Update(*entity.RackLevel) error { return nil }

func (r *rackLevelRepo) Delete(id string) error {
	for i, level := range r.s.RackLevels {
		if level.ID == id {
			r.s.RackLevels = append(r.s.RackLevels[:i], r.s.RackLevels[i+1:]...)
			return nil
		}
	}
	return nil
}

// ─────────────────────────────────────────────────────────────────────────────
// RackLevelSlot
// ─────────────────────────────────────────────────────────────────────────────

type slotRepo struct{ s *Store }

func (r *slotRepo) Create(slot *entity.RackLevelSlot) error {
	r.s.Slots = append(r.s.Slots, slot)
	return nil
}

func (r *slotRepo) CreateBatch(slots []*entity.RackLevelSlot) error {
	r.s.Slots = append(r.s.Slots, slots...)
	return nil
}

func (r *slotRepo) GetByID(id string) (*entity.RackLevelSlot, error) {
	for _, slot := range r.s.Slots {
		if slot.ID == id {
			return slot, nil
		}
	}
	return nil, nil
}

func (r *slotRepo) GetForUpdate(id string) (*entity.RackLevelSlot, error) {
	return r.GetByID(id)
}

func (r *slotRepo) FindFirstFree(rackLevelID string) (*entity.RackLevelSlot, error) {
	var found *entity.RackLevelSlot
	for _, slot := range r.s.Slots {
		if slot.RackLevelID != rackLevelID || !slot.IsFree() {
			continue
		}
		if found == nil || slot.SlotNumber < found.SlotNumber {
			found = slot
		}
	}
	return found, nil
}

func (r *slotRepo) ListTrailing(rackLevelID string, fromNumber int) ([]*entity.RackLevelSlot, error) {
	var out []*entity.RackLevelSlot
	for _, slot := range r.s.Slots {
		if slot.RackLevelID == rackLevelID && slot.SlotNumber > fromNumber {
			out = append(out, slot)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SlotNumber < out[j].SlotNumber })
	return out, nil
}

func (r *slotRepo) ListByLevel(rackLevelID string, limit, offset int) ([]*entity.RackLevelSlot, error) {
	all, _ := r.ListTrailing(rackLevelID, 0)
	return page(all, limit, offset), nil
}

func (r *slotRepo) Update(*entity.RackLevelSlot) error { return nil }

func (r *slotRepo) Delete(id string) error {
	for i, slot := range r.s.Slots {
		if slot.ID == id {
			r.s.Slots = append(r.s.Slots[:i], r.s.Slots[i+1:]...)
			return nil
		}
	}
	return nil
}

// ─────────────────────────────────────────────────────────────────────────────
// WaitingRoom
// ─────────────────────────────────────────────────────────────────────────────

type waitingRoomRepo struct{ s *Store }

func (r *waitingRoomRepo) Create(room *entity.WaitingRoom) error {
	r.s.WaitingRooms = append(r.s.WaitingRooms, room)
	return nil
}

func (r *waitingRoomRepo) GetByID(id string) (*entity.WaitingRoom, error) {
	for _, room := range r.s.WaitingRooms {
		if room.ID == id {
			return room, nil
		}
	}
	return nil, nil
}

func (r *waitingRoomRepo) GetForUpdate(id string) (*entity.WaitingRoom, error) {
	return r.GetByID(id)
}

func (r *waitingRoomRepo) FindAvailableForUpdate(stockWeight decimal.Decimal) (*entity.WaitingRoom, error) {
	for _, room := range r.s.WaitingRooms {
		if room.CanAccommodate(stockWeight) {
			return room, nil
		}
	}
	return nil, nil
}

func (r *waitingRoomRepo) ExistsByName(warehouseID, name string) (bool, error) {
	for _, room := range r.s.WaitingRooms {
		if room.WarehouseID == warehouseID && room.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (r *waitingRoomRepo) List(limit, offset int) ([]*entity.WaitingRoom, error) {
	return page(r.s.WaitingRooms, limit, offset), nil
}

func (r *waitingRoomRepo) Update(*entity.WaitingRoom) error { return nil }

func (r *waitingRoomRepo) Delete(id string) error {
	for i, room := range r.s.WaitingRooms {
		if room.ID == id {
			r.s.WaitingRooms = append(r.s.WaitingRooms[:i], r.s.WaitingRooms[i+1:]...)
			return nil
		}
	}
	return nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Product
// ─────────────────────────────────────────────────────────────────────────────

type productRepo struct{ s *Store }

func (r *productRepo) Create(p *entity.Product) error {
	r.s.Products = append(r.s.Products, p)
	return nil
}

func (r *productRepo) GetByID(id string) (*entity.Product, error) {
	for _, p := range r.s.Products {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (r *productRepo) ExistsByName(name string) (bool, error) {
	for _, p := range r.s.Products {
		if p.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (r *productRepo) List(legacy *bool, limit, offset int) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.s.Products {
		if legacy != nil && p.IsLegacy != *legacy {
			continue
		}
		out = append(out, p)
	}
	return page(out, limit, offset), nil
}

func (r *productRepo) Update(*entity.Product) error { return nil }

// ─────────────────────────────────────────────────────────────────────────────
// Stock
// ─────────────────────────────────────────────────────────────────────────────

type stockRepo struct{ s *Store }

func (r *stockRepo) Create(stock *entity.Stock) error {
	r.s.Stocks = append(r.s.Stocks, stock)
	return nil
}

func (r *stockRepo) GetByID(id string) (*entity.Stock, error) {
	for _, stock := range r.s.Stocks {
		if stock.ID == id {
			return stock, nil
		}
	}
	return nil, nil
}

func (r *stockRepo) GetForUpdate(id string) (*entity.Stock, error) {
	return r.GetByID(id)
}

func (r *stockRepo) ListForIssueForUpdate(ids []string) ([]*entity.Stock, error) {
	wanted := make(map[string]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}
	var out []*entity.Stock
	for _, stock := range r.s.Stocks {
		if wanted[stock.ID] && !stock.IsIssued {
			out = append(out, stock)
		}
	}
	return out, nil
}

func (r *stockRepo) List(issued bool, limit, offset int) ([]*entity.Stock, error) {
	var out []*entity.Stock
	for _, stock := range r.s.Stocks {
		if !issued && stock.IsIssued {
			continue
		}
		out = append(out, stock)
	}
	return page(out, limit, offset), nil
}

func (r *stockRepo) Update(*entity.Stock) error { return nil }

// ─────────────────────────────────────────────────────────────────────────────
// StockMovement / Reception / Issue
// ─────────────────────────────────────────────────────────────────────────────

type movementRepo struct{ s *Store }

func (r *movementRepo) Create(m *entity.StockMovement) error {
	r.s.Movements = append(r.s.Movements, m)
	return nil
}

func (r *movementRepo) ListByStock(stockID string, limit, offset int) ([]*entity.StockMovement, error) {
	var out []*entity.StockMovement
	for _, m := range r.s.Movements {
		if m.StockID == stockID {
			out = append(out, m)
		}
	}
	return page(out, limit, offset), nil
}

func (r *movementRepo) ListByUser(userID string, limit, offset int) ([]*entity.StockMovement, error) {
	var out []*entity.StockMovement
	for _, m := range r.s.Movements {
		if m.UserID == userID {
			out = append(out, m)
		}
	}
	return page(out, limit, offset), nil
}

func (r *movementRepo) List(limit, offset int) ([]*entity.StockMovement, error) {
	return page(r.s.Movements, limit, offset), nil
}

type receptionRepo struct{ s *Store }

func (r *receptionRepo) Create(rec *entity.Reception) error {
	r.s.Receptions = append(r.s.Receptions, rec)
	return nil
}

func (r *receptionRepo) GetByID(id string) (*entity.Reception, error) {
	for _, rec := range r.s.Receptions {
		if rec.ID == id {
			return rec, nil
		}
	}
	return nil, nil
}

func (r *receptionRepo) List(limit, offset int) ([]*entity.Reception, error) {
	return page(r.s.Receptions, limit, offset), nil
}

type issueRepo struct{ s *Store }

func (r *issueRepo) Create(issue *entity.Issue) error {
	r.s.Issues = append(r.s.Issues, issue)
	return nil
}

func (r *issueRepo) GetByID(id string) (*entity.Issue, error) {
	for _, issue := range r.s.Issues {
		if issue.ID == id {
			return issue, nil
		}
	}
	return nil, nil
}

func (r *issueRepo) List(limit, offset int) ([]*entity.Issue, error) {
	return page(r.s.Issues, limit, offset), nil
}

// ─────────────────────────────────────────────────────────────────────────────
// User
// ─────────────────────────────────────────────────────────────────────────────

type userRepo struct{ s *Store }

func (r *userRepo) Create(u *entity.User) error {
	for _, existing := range r.s.Users {
		if existing.Email == u.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	r.s.Users = append(r.s.Users, u)
	return nil
}

func (r *userRepo) GetByID(id string) (*entity.User, error) {
	for _, u := range r.s.Users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (r *userRepo) FindByEmail(email string) (*entity.User, error) {
	for _, u := range r.s.Users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *userRepo) List(limit, offset int) ([]*entity.User, error) {
	return page(r.s.Users, limit, offset), nil
}

func (r *userRepo) Update(*entity.User) error { return nil }
