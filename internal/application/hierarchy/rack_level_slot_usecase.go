package hierarchy

import (
	"context"
	"time"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/ports"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// RackLevelSlotUseCase gestiona casillas individuales: descripción y
// activación/desactivación. Una casilla ocupada no se puede desactivar.
type RackLevelSlotUseCase struct {
	txRunner ports.TxRunner
	slotRepo repository.RackLevelSlotRepository
}

// NewRackLevelSlotUseCase construye el caso de uso.
func NewRackLevelSlotUseCase(txRunner ports.TxRunner, slotRepo repository.RackLevelSlotRepository) *RackLevelSlotUseCase {
	return &RackLevelSlotUseCase{txRunner: txRunner, slotRepo: slotRepo}
}

// GetByID devuelve una casilla.
func (uc *RackLevelSlotUseCase) GetByID(id string) (*dto.RackLevelSlotResponse, error) {
	slot, err := uc.slotRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if slot == nil {
		return nil, domain.ErrNotFound
	}
	return toSlotResponse(slot), nil
}

// ListByLevel lista las casillas de un nivel con paginación.
func (uc *RackLevelSlotUseCase) ListByLevel(rackLevelID string, limit, offset int) (*dto.RackLevelSlotListResponse, error) {
	list, err := uc.slotRepo.ListByLevel(rackLevelID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.RackLevelSlotResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toSlotResponse(s))
	}
	return &dto.RackLevelSlotListResponse{Items: items, Page: dto.PageResponse{Limit: limit, Offset: offset}}, nil
}

// Update edita la descripción de una casilla.
func (uc *RackLevelSlotUseCase) Update(ctx context.Context, id string, in dto.UpdateRackLevelSlotRequest) (*dto.RackLevelSlotResponse, error) {
	var updated *entity.RackLevelSlot
	err := uc.txRunner.Run(ctx, func(repos *repository.Atomic) error {
		slot, err := repos.Slots.GetForUpdate(id)
		if err != nil {
			return err
		}
		if slot == nil {
			return domain.ErrNotFound
		}
		if in.Description != nil {
			slot.Description = *in.Description
		}
		slot.UpdatedAt = time.Now()
		if err := repos.Slots.Update(slot); err != nil {
			return err
		}
		updated = slot
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toSlotResponse(updated), nil
}

// Activate pone una casilla inactiva de nuevo en servicio y la suma al
// contador de disponibles del nivel.
func (uc *RackLevelSlotUseCase) Activate(ctx context.Context, id string) (*dto.RackLevelSlotResponse, error) {
	return uc.setActive(ctx, id, true)
}

// Deactivate saca de servicio una casilla libre. Las casillas se desactivan
// para poder reducir MaxSlots del nivel desde el número más alto hacia abajo.
func (uc *RackLevelSlotUseCase) Deactivate(ctx context.Context, id string) (*dto.RackLevelSlotResponse, error) {
	return uc.setActive(ctx, id, false)
}

func (uc *RackLevelSlotUseCase) setActive(ctx context.Context, id string, active bool) (*dto.RackLevelSlotResponse, error) {
	var updated *entity.RackLevelSlot
	err := uc.txRunner.Run(ctx, func(repos *repository.Atomic) error {
		slot, err := repos.Slots.GetForUpdate(id)
		if err != nil {
			return err
		}
		if slot == nil {
			return domain.ErrNotFound
		}
		if active {
			if slot.IsActive {
				return domain.ErrCantActivateRackLevelSlot
			}
		} else {
			if !slot.IsActive || slot.StockID != nil {
				return domain.ErrCantDeactivateRackLevelSlot
			}
		}
		level, err := repos.RackLevels.GetForUpdate(slot.RackLevelID)
		if err != nil {
			return err
		}
		if level == nil {
			return domain.ErrNotFound
		}
		now := time.Now()
		slot.IsActive = active
		slot.UpdatedAt = now
		// activación: inactiva -> disponible; desactivación: disponible -> inactiva
		if active {
			level.InactiveSlots--
			level.Slots.Available++
		} else {
			level.InactiveSlots++
			level.Slots.Available--
		}
		level.UpdatedAt = now
		if err := repos.RackLevels.Update(level); err != nil {
			return err
		}
		if err := repos.Slots.Update(slot); err != nil {
			return err
		}
		updated = slot
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toSlotResponse(updated), nil
}

func toSlotResponse(s *entity.RackLevelSlot) *dto.RackLevelSlotResponse {
	if s == nil {
		return nil
	}
	return &dto.RackLevelSlotResponse{
		ID:          s.ID,
		RackLevelID: s.RackLevelID,
		SlotNumber:  s.SlotNumber,
		Description: s.Description,
		IsActive:    s.IsActive,
		StockID:     s.StockID,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}
