package placement

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/capacity"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// Engine es el motor de asignación de casillas: dado un stock y un destino
// opcional, valida capacidad, ejecuta la colocación sobre los repositorios de
// la transacción en curso y registra la fila de auditoría del movimiento.
// Quien llama es responsable de abrir y confirmar la transacción.
type Engine struct{}

// NewEngine construye el motor.
func NewEngine() *Engine {
	return &Engine{}
}

// Origin referencia el contenedor del que salió un stock, para la fila de auditoría.
type Origin struct {
	WaitingRoomID   *string
	RackLevelSlotID *string
}

// Place coloca un stock recién creado según el hint de destino y registra el
// movimiento asociado a la recepción. A lo sumo un campo del hint puede venir
// informado; sin hint se elige la primera sala de espera con capacidad.
func (e *Engine) Place(repos *repository.Atomic, userID string, stock *entity.Stock, hint dto.StoragePlaceHint, receptionID *string) error {
	return e.place(repos, userID, stock, hint, Origin{}, receptionID, nil)
}

// Relocate mueve un stock ya colocado a un nuevo destino: libera primero los
// recursos del contenedor actual y después ejecuta la colocación.
func (e *Engine) Relocate(repos *repository.Atomic, userID string, stock *entity.Stock, hint dto.StoragePlaceHint) error {
	if stock.IsIssued {
		return domain.ErrCannotMoveIssuedStock
	}
	if err := validateHint(hint); err != nil {
		return err
	}
	if err := e.checkNotSameDestination(repos, stock, hint); err != nil {
		return err
	}
	from, err := e.ReleaseCurrent(repos, stock)
	if err != nil {
		return err
	}
	return e.place(repos, userID, stock, hint, from, nil, nil)
}

// ReleaseCurrent libera los recursos del contenedor actual del stock (sala de
// espera o casilla con su cascada nivel→estantería→sección) y limpia la
// referencia en el stock. Devuelve el origen para la fila de auditoría.
func (e *Engine) ReleaseCurrent(repos *repository.Atomic, stock *entity.Stock) (Origin, error) {
	now := time.Now()
	switch {
	case stock.WaitingRoomID != nil:
		roomID := *stock.WaitingRoomID
		room, err := repos.WaitingRooms.GetForUpdate(roomID)
		if err != nil {
			return Origin{}, err
		}
		if room == nil {
			return Origin{}, domain.ErrNotFound
		}
		capacity.ApplyWeight(&room.Weight, stock.Weight, capacity.Release)
		capacity.ApplyUnits(&room.Slots, 1, capacity.Release)
		room.UpdatedAt = now
		if err := repos.WaitingRooms.Update(room); err != nil {
			return Origin{}, err
		}
		stock.WaitingRoomID = nil
		return Origin{WaitingRoomID: &roomID}, nil

	case stock.RackLevelSlotID != nil:
		slotID := *stock.RackLevelSlotID
		slot, err := repos.Slots.GetForUpdate(slotID)
		if err != nil {
			return Origin{}, err
		}
		if slot == nil {
			return Origin{}, domain.ErrNotFound
		}
		slot.StockID = nil
		slot.UpdatedAt = now
		if err := repos.Slots.Update(slot); err != nil {
			return Origin{}, err
		}
		if err := e.cascadeWeight(repos, slot.RackLevelID, stock, capacity.Release); err != nil {
			return Origin{}, err
		}
		stock.RackLevelSlotID = nil
		return Origin{RackLevelSlotID: &slotID}, nil
	}
	// stock sin contenedor (recién creado): nada que liberar
	return Origin{}, nil
}

func (e *Engine) place(repos *repository.Atomic, userID string, stock *entity.Stock, hint dto.StoragePlaceHint, from Origin, receptionID, issueID *string) error {
	if err := validateHint(hint); err != nil {
		return err
	}
	now := time.Now()
	movement := &entity.StockMovement{
		ID:                  uuid.New().String(),
		UserID:              userID,
		StockID:             stock.ID,
		FromWaitingRoomID:   from.WaitingRoomID,
		FromRackLevelSlotID: from.RackLevelSlotID,
		ReceptionID:         receptionID,
		IssueID:             issueID,
		CreatedAt:           now,
	}

	switch {
	case hint.WaitingRoomID != "":
		room, err := repos.WaitingRooms.GetForUpdate(hint.WaitingRoomID)
		if err != nil {
			return err
		}
		if room == nil {
			return domain.ErrNotFound
		}
		if !room.CanAccommodate(stock.Weight) {
			return domain.ErrNotEnoughWaitingRoomResources
		}
		if err := e.intoWaitingRoom(repos, stock, room, now); err != nil {
			return err
		}
		movement.ToWaitingRoomID = &room.ID

	case hint.RackLevelSlotID != "":
		slot, err := repos.Slots.GetForUpdate(hint.RackLevelSlotID)
		if err != nil {
			return err
		}
		if slot == nil {
			return domain.ErrNotFound
		}
		if slot.StockID != nil {
			return domain.ErrRackLevelSlotIsOccupied
		}
		if !slot.IsActive {
			return domain.ErrRackLevelSlotIsInactive
		}
		if err := e.intoSlot(repos, stock, slot, now); err != nil {
			return err
		}
		movement.ToRackLevelSlotID = &slot.ID

	case hint.RackLevelID != "":
		level, err := repos.RackLevels.GetForUpdate(hint.RackLevelID)
		if err != nil {
			return err
		}
		if level == nil {
			return domain.ErrNotFound
		}
		if level.Slots.Available < 1 || level.Weight.Available.LessThan(stock.Weight) {
			return domain.ErrNotEnoughRackLevelResources
		}
		slot, err := repos.Slots.FindFirstFree(level.ID)
		if err != nil {
			return err
		}
		// el contador decía que había casilla libre; si no aparece, los
		// contadores y la realidad divergen y hay que abortar
		if slot == nil {
			return domain.ErrNoAvailableRackLevelSlot
		}
		if err := e.intoSlot(repos, stock, slot, now); err != nil {
			return err
		}
		movement.ToRackLevelSlotID = &slot.ID

	default:
		room, err := repos.WaitingRooms.FindAvailableForUpdate(stock.Weight)
		if err != nil {
			return err
		}
		if room == nil {
			return domain.ErrNoAvailableWaitingRooms
		}
		if err := e.intoWaitingRoom(repos, stock, room, now); err != nil {
			return err
		}
		movement.ToWaitingRoomID = &room.ID
	}

	stock.UpdatedAt = now
	if err := repos.Stocks.Update(stock); err != nil {
		return err
	}
	return repos.Movements.Create(movement)
}

// intoWaitingRoom consume un slot y el peso del stock en la sala.
func (e *Engine) intoWaitingRoom(repos *repository.Atomic, stock *entity.Stock, room *entity.WaitingRoom, now time.Time) error {
	capacity.ApplyWeight(&room.Weight, stock.Weight, capacity.Consume)
	capacity.ApplyUnits(&room.Slots, 1, capacity.Consume)
	room.UpdatedAt = now
	if err := repos.WaitingRooms.Update(room); err != nil {
		return err
	}
	stock.WaitingRoomID = &room.ID
	return nil
}

// intoSlot marca la casilla como ocupada y consume peso y slot en el nivel,
// con cascada de peso a estantería y sección.
func (e *Engine) intoSlot(repos *repository.Atomic, stock *entity.Stock, slot *entity.RackLevelSlot, now time.Time) error {
	level, err := repos.RackLevels.GetForUpdate(slot.RackLevelID)
	if err != nil {
		return err
	}
	if level == nil {
		return domain.ErrNotFound
	}
	if level.Weight.Available.LessThan(stock.Weight) {
		return domain.ErrNotEnoughRackLevelResources
	}
	slot.StockID = &stock.ID
	slot.UpdatedAt = now
	if err := repos.Slots.Update(slot); err != nil {
		return err
	}
	if err := e.applyLevelDelta(repos, level, stock, capacity.Consume, now); err != nil {
		return err
	}
	stock.RackLevelSlotID = &slot.ID
	return nil
}

// cascadeWeight aplica un delta de peso al nivel indicado y a sus ancestros,
// ajustando también el slot ocupado/liberado del nivel.
func (e *Engine) cascadeWeight(repos *repository.Atomic, rackLevelID string, stock *entity.Stock, dir capacity.Direction) error {
	level, err := repos.RackLevels.GetForUpdate(rackLevelID)
	if err != nil {
		return err
	}
	if level == nil {
		return domain.ErrNotFound
	}
	return e.applyLevelDelta(repos, level, stock, dir, time.Now())
}

func (e *Engine) applyLevelDelta(repos *repository.Atomic, level *entity.RackLevel, stock *entity.Stock, dir capacity.Direction, now time.Time) error {
	capacity.ApplyWeight(&level.Weight, stock.Weight, dir)
	capacity.ApplyUnits(&level.Slots, 1, dir)
	level.UpdatedAt = now
	if err := repos.RackLevels.Update(level); err != nil {
		return err
	}
	rack, err := repos.Racks.GetForUpdate(level.RackID)
	if err != nil {
		return err
	}
	if rack == nil {
		return domain.ErrNotFound
	}
	capacity.ApplyWeight(&rack.Weight, stock.Weight, dir)
	rack.UpdatedAt = now
	if err := repos.Racks.Update(rack); err != nil {
		return err
	}
	section, err := repos.Sections.GetForUpdate(rack.SectionID)
	if err != nil {
		return err
	}
	if section == nil {
		return domain.ErrNotFound
	}
	capacity.ApplyWeight(&section.Weight, stock.Weight, dir)
	section.UpdatedAt = now
	return repos.Sections.Update(section)
}

// checkNotSameDestination rechaza mover un stock a su contenedor actual.
func (e *Engine) checkNotSameDestination(repos *repository.Atomic, stock *entity.Stock, hint dto.StoragePlaceHint) error {
	if hint.WaitingRoomID != "" && stock.WaitingRoomID != nil && *stock.WaitingRoomID == hint.WaitingRoomID {
		return domain.ErrStockAlreadyInWaitingRoom
	}
	if stock.RackLevelSlotID != nil {
		if hint.RackLevelSlotID != "" && *stock.RackLevelSlotID == hint.RackLevelSlotID {
			return domain.ErrStockAlreadyInRackLevel
		}
		if hint.RackLevelID != "" {
			current, err := repos.Slots.GetByID(*stock.RackLevelSlotID)
			if err != nil {
				return err
			}
			if current != nil && current.RackLevelID == hint.RackLevelID {
				return domain.ErrStockAlreadyInRackLevel
			}
		}
	}
	return nil
}

// validateHint exige que a lo sumo un destino venga informado.
func validateHint(hint dto.StoragePlaceHint) error {
	count := 0
	if hint.WaitingRoomID != "" {
		count++
	}
	if hint.RackLevelSlotID != "" {
		count++
	}
	if hint.RackLevelID != "" {
		count++
	}
	if count > 1 {
		return domain.ErrAmbiguousStockStoragePlace
	}
	return nil
}
