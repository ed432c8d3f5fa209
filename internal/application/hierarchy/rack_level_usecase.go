package hierarchy

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/ports"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/capacity"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// RackLevelUseCase gestiona niveles de estantería. Crear un nivel consume una
// unidad de niveles de la estantería, reserva su peso máximo y genera las
// casillas 1..MaxSlots automáticamente. Reducir MaxSlots solo elimina casillas
// inactivas contiguas al final del nivel.
type RackLevelUseCase struct {
	txRunner  ports.TxRunner
	levelRepo repository.RackLevelRepository
	slotRepo  repository.RackLevelSlotRepository
}

// NewRackLevelUseCase construye el caso de uso.
func NewRackLevelUseCase(txRunner ports.TxRunner, levelRepo repository.RackLevelRepository, slotRepo repository.RackLevelSlotRepository) *RackLevelUseCase {
	return &RackLevelUseCase{txRunner: txRunner, levelRepo: levelRepo, slotRepo: slotRepo}
}

// Create crea un nivel numerado bajo una estantería y autogenera sus casillas.
func (uc *RackLevelUseCase) Create(ctx context.Context, in dto.CreateRackLevelRequest) (*dto.RackLevelResponse, error) {
	var created *entity.RackLevel
	err := uc.txRunner.Run(ctx, func(repos *repository.Atomic) error {
		rack, err := repos.Racks.GetForUpdate(in.RackID)
		if err != nil {
			return err
		}
		if rack == nil {
			return domain.ErrNotFound
		}
		if rack.Levels.Available < 1 || rack.Reservation.ToReserve.LessThan(in.MaxWeight) {
			return domain.ErrNotEnoughRackResources
		}
		taken, err := repos.RackLevels.ExistsByNumber(rack.ID, in.RackLevelNumber)
		if err != nil {
			return err
		}
		if taken {
			return domain.ErrAlreadyExists
		}

		now := time.Now()
		level := &entity.RackLevel{
			ID:              uuid.New().String(),
			RackID:          rack.ID,
			RackLevelNumber: in.RackLevelNumber,
			Description:     in.Description,
			Weight:          capacity.NewWeightUsage(in.MaxWeight),
			Slots:           capacity.NewUnitUsage(in.MaxSlots),
			InactiveSlots:   0,
			CreatedAt:       now,
			UpdatedAt:       now,
		}
		capacity.ApplyUnits(&rack.Levels, 1, capacity.Consume)
		capacity.ApplyReservation(&rack.Reservation, in.MaxWeight, capacity.Consume)
		rack.UpdatedAt = now
		if err := repos.Racks.Update(rack); err != nil {
			return err
		}
		if err := repos.RackLevels.Create(level); err != nil {
			return err
		}
		slots := make([]*entity.RackLevelSlot, 0, in.MaxSlots)
		for n := 1; n <= in.MaxSlots; n++ {
			slots = append(slots, &entity.RackLevelSlot{
				ID:          uuid.New().String(),
				RackLevelID: level.ID,
				SlotNumber:  n,
				IsActive:    true,
				CreatedAt:   now,
				UpdatedAt:   now,
			})
		}
		if err := repos.Slots.CreateBatch(slots); err != nil {
			return err
		}
		created = level
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toRackLevelResponse(created), nil
}

// GetByID devuelve un nivel con sus contadores actuales.
func (uc *RackLevelUseCase) GetByID(id string) (*dto.RackLevelResponse, error) {
	level, err := uc.levelRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if level == nil {
		return nil, domain.ErrNotFound
	}
	return toRackLevelResponse(level), nil
}

// ListByRack lista los niveles de una estantería con paginación.
func (uc *RackLevelUseCase) ListByRack(rackID string, limit, offset int) (*dto.RackLevelListResponse, error) {
	list, err := uc.levelRepo.ListByRack(rackID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.RackLevelResponse, 0, len(list))
	for _, l := range list {
		items = append(items, *toRackLevelResponse(l))
	}
	return &dto.RackLevelListResponse{Items: items, Page: dto.PageResponse{Limit: limit, Offset: offset}}, nil
}

// Update redimensiona un nivel. El delta de peso se ajusta en la reserva de la
// estantería; el cambio de MaxSlots crea casillas al final o elimina las
// inactivas finales (ver resizeSlots).
func (uc *RackLevelUseCase) Update(ctx context.Context, id string, in dto.UpdateRackLevelRequest) (*dto.RackLevelResponse, error) {
	var updated *entity.RackLevel
	err := uc.txRunner.Run(ctx, func(repos *repository.Atomic) error {
		level, err := repos.RackLevels.GetForUpdate(id)
		if err != nil {
			return err
		}
		if level == nil {
			return domain.ErrNotFound
		}
		if in.Description != nil {
			level.Description = *in.Description
		}
		if in.MaxWeight != nil {
			newMax := *in.MaxWeight
			if newMax.LessThan(level.Weight.Occupied) {
				return domain.ErrTooLittleWeightAmount
			}
			rack, err := repos.Racks.GetForUpdate(level.RackID)
			if err != nil {
				return err
			}
			if rack == nil {
				return domain.ErrNotFound
			}
			delta := newMax.Sub(level.Weight.Max)
			if delta.GreaterThan(rack.Reservation.ToReserve) {
				return domain.ErrWeightLimitExceeded
			}
			if delta.IsPositive() {
				capacity.ApplyReservation(&rack.Reservation, delta, capacity.Consume)
			} else if delta.IsNegative() {
				capacity.ApplyReservation(&rack.Reservation, delta.Neg(), capacity.Release)
			}
			capacity.ResizeWeight(&level.Weight, newMax)
			rack.UpdatedAt = time.Now()
			if err := repos.Racks.Update(rack); err != nil {
				return err
			}
		}
		if in.MaxSlots != nil {
			if err := uc.resizeSlots(repos, level, *in.MaxSlots); err != nil {
				return err
			}
		}
		level.UpdatedAt = time.Now()
		if err := repos.RackLevels.Update(level); err != nil {
			return err
		}
		updated = level
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toRackLevelResponse(updated), nil
}

// resizeSlots aplica un cambio de MaxSlots: al crecer añade casillas numeradas
// a continuación de la última; al decrecer exige que las casillas sobrantes
// estén inactivas y sean exactamente las últimas del nivel (se desactiva desde
// el número más alto hacia abajo, sin huecos).
func (uc *RackLevelUseCase) resizeSlots(repos *repository.Atomic, level *entity.RackLevel, newMax int) error {
	oldMax := level.Slots.Max
	if newMax == oldMax {
		return nil
	}
	now := time.Now()
	if newMax > oldMax {
		slots := make([]*entity.RackLevelSlot, 0, newMax-oldMax)
		for n := oldMax + 1; n <= newMax; n++ {
			slots = append(slots, &entity.RackLevelSlot{
				ID:          uuid.New().String(),
				RackLevelID: level.ID,
				SlotNumber:  n,
				IsActive:    true,
				CreatedAt:   now,
				UpdatedAt:   now,
			})
		}
		if err := repos.Slots.CreateBatch(slots); err != nil {
			return err
		}
		capacity.ResizeUnits(&level.Slots, newMax, level.InactiveSlots)
		return nil
	}

	toDelete := oldMax - newMax
	if newMax < level.Slots.Occupied {
		return domain.ErrTooLittleStocksAmount
	}
	if level.InactiveSlots < toDelete {
		return domain.ErrTooSmallInactiveSlotsQuantity
	}
	trailing, err := repos.Slots.ListTrailing(level.ID, newMax)
	if err != nil {
		return err
	}
	for _, slot := range trailing {
		// una casilla final activa implica un hueco entre las inactivas
		if slot.IsActive {
			return domain.ErrExistingGapBetweenInactiveSlotsToDelete
		}
	}
	for _, slot := range trailing {
		if err := repos.Slots.Delete(slot.ID); err != nil {
			return err
		}
	}
	level.InactiveSlots -= toDelete
	capacity.ResizeUnits(&level.Slots, newMax, level.InactiveSlots)
	return nil
}

// Delete elimina un nivel vacío junto con sus casillas y devuelve a la
// estantería la unidad y el peso reservado.
func (uc *RackLevelUseCase) Delete(ctx context.Context, id string) error {
	return uc.txRunner.Run(ctx, func(repos *repository.Atomic) error {
		level, err := repos.RackLevels.GetForUpdate(id)
		if err != nil {
			return err
		}
		if level == nil {
			return domain.ErrNotFound
		}
		if !level.IsEmpty() {
			return domain.ErrRackLevelIsNotEmpty
		}
		rack, err := repos.Racks.GetForUpdate(level.RackID)
		if err != nil {
			return err
		}
		if rack == nil {
			return domain.ErrNotFound
		}
		slots, err := repos.Slots.ListTrailing(level.ID, 0)
		if err != nil {
			return err
		}
		for _, slot := range slots {
			if err := repos.Slots.Delete(slot.ID); err != nil {
				return err
			}
		}
		capacity.ApplyUnits(&rack.Levels, 1, capacity.Release)
		capacity.ApplyReservation(&rack.Reservation, level.Weight.Max, capacity.Release)
		rack.UpdatedAt = time.Now()
		if err := repos.Racks.Update(rack); err != nil {
			return err
		}
		return repos.RackLevels.Delete(id)
	})
}

func toRackLevelResponse(l *entity.RackLevel) *dto.RackLevelResponse {
	if l == nil {
		return nil
	}
	return &dto.RackLevelResponse{
		ID:              l.ID,
		RackID:          l.RackID,
		RackLevelNumber: l.RackLevelNumber,
		Description:     l.Description,
		MaxWeight:       l.Weight.Max,
		AvailableWeight: l.Weight.Available,
		OccupiedWeight:  l.Weight.Occupied,
		MaxSlots:        l.Slots.Max,
		AvailableSlots:  l.Slots.Available,
		OccupiedSlots:   l.Slots.Occupied,
		ActiveSlots:     l.ActiveSlots(),
		InactiveSlots:   l.InactiveSlots,
		CreatedAt:       l.CreatedAt,
		UpdatedAt:       l.UpdatedAt,
	}
}
