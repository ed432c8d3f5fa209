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

// WaitingRoomUseCase gestiona salas de espera: crear consume una unidad del
// contador de salas del almacén; eliminar la devuelve.
type WaitingRoomUseCase struct {
	txRunner ports.TxRunner
	roomRepo repository.WaitingRoomRepository
}

// NewWaitingRoomUseCase construye el caso de uso.
func NewWaitingRoomUseCase(txRunner ports.TxRunner, roomRepo repository.WaitingRoomRepository) *WaitingRoomUseCase {
	return &WaitingRoomUseCase{txRunner: txRunner, roomRepo: roomRepo}
}

// Create crea una sala de espera bajo el almacén.
func (uc *WaitingRoomUseCase) Create(ctx context.Context, in dto.CreateWaitingRoomRequest) (*dto.WaitingRoomResponse, error) {
	var created *entity.WaitingRoom
	err := uc.txRunner.Run(ctx, func(repos *repository.Atomic) error {
		warehouse, err := repos.Warehouses.GetSingle()
		if err != nil {
			return err
		}
		if warehouse == nil {
			return domain.ErrNotFound
		}
		warehouse, err = repos.Warehouses.GetForUpdate(warehouse.ID)
		if err != nil {
			return err
		}
		if warehouse == nil {
			return domain.ErrNotFound
		}
		if warehouse.WaitingRooms.Available < 1 {
			return domain.ErrNotEnoughWarehouseResources
		}
		taken, err := repos.WaitingRooms.ExistsByName(warehouse.ID, in.Name)
		if err != nil {
			return err
		}
		if taken {
			return domain.ErrAlreadyExists
		}

		now := time.Now()
		room := &entity.WaitingRoom{
			ID:          uuid.New().String(),
			WarehouseID: warehouse.ID,
			Name:        in.Name,
			Weight:      capacity.NewWeightUsage(in.MaxWeight),
			Slots:       capacity.NewUnitUsage(in.MaxStocks),
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		capacity.ApplyUnits(&warehouse.WaitingRooms, 1, capacity.Consume)
		warehouse.UpdatedAt = now
		if err := repos.Warehouses.Update(warehouse); err != nil {
			return err
		}
		if err := repos.WaitingRooms.Create(room); err != nil {
			return err
		}
		created = room
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toWaitingRoomResponse(created), nil
}

// GetByID devuelve una sala de espera con sus contadores actuales.
func (uc *WaitingRoomUseCase) GetByID(id string) (*dto.WaitingRoomResponse, error) {
	room, err := uc.roomRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if room == nil {
		return nil, domain.ErrNotFound
	}
	return toWaitingRoomResponse(room), nil
}

// List lista salas de espera con paginación.
func (uc *WaitingRoomUseCase) List(limit, offset int) (*dto.WaitingRoomListResponse, error) {
	list, err := uc.roomRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.WaitingRoomResponse, 0, len(list))
	for _, r := range list {
		items = append(items, *toWaitingRoomResponse(r))
	}
	return &dto.WaitingRoomListResponse{Items: items, Page: dto.PageResponse{Limit: limit, Offset: offset}}, nil
}

// Update redimensiona una sala de espera.
func (uc *WaitingRoomUseCase) Update(ctx context.Context, id string, in dto.UpdateWaitingRoomRequest) (*dto.WaitingRoomResponse, error) {
	var updated *entity.WaitingRoom
	err := uc.txRunner.Run(ctx, func(repos *repository.Atomic) error {
		room, err := repos.WaitingRooms.GetForUpdate(id)
		if err != nil {
			return err
		}
		if room == nil {
			return domain.ErrNotFound
		}
		if in.Name != nil && *in.Name != room.Name {
			taken, err := repos.WaitingRooms.ExistsByName(room.WarehouseID, *in.Name)
			if err != nil {
				return err
			}
			if taken {
				return domain.ErrAlreadyExists
			}
			room.Name = *in.Name
		}
		if in.MaxWeight != nil {
			if in.MaxWeight.LessThan(room.Weight.Occupied) {
				return domain.ErrTooLittleWeightAmount
			}
			capacity.ResizeWeight(&room.Weight, *in.MaxWeight)
		}
		if in.MaxStocks != nil {
			if *in.MaxStocks < room.Slots.Occupied {
				return domain.ErrTooLittleStocksAmount
			}
			capacity.ResizeUnits(&room.Slots, *in.MaxStocks, 0)
		}
		room.UpdatedAt = time.Now()
		if err := repos.WaitingRooms.Update(room); err != nil {
			return err
		}
		updated = room
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toWaitingRoomResponse(updated), nil
}

// Delete elimina una sala vacía y devuelve su unidad al almacén.
func (uc *WaitingRoomUseCase) Delete(ctx context.Context, id string) error {
	return uc.txRunner.Run(ctx, func(repos *repository.Atomic) error {
		room, err := repos.WaitingRooms.GetForUpdate(id)
		if err != nil {
			return err
		}
		if room == nil {
			return domain.ErrNotFound
		}
		if !room.IsEmpty() {
			return domain.ErrWaitingRoomIsNotEmpty
		}
		warehouse, err := repos.Warehouses.GetForUpdate(room.WarehouseID)
		if err != nil {
			return err
		}
		if warehouse == nil {
			return domain.ErrNotFound
		}
		capacity.ApplyUnits(&warehouse.WaitingRooms, 1, capacity.Release)
		warehouse.UpdatedAt = time.Now()
		if err := repos.Warehouses.Update(warehouse); err != nil {
			return err
		}
		return repos.WaitingRooms.Delete(id)
	})
}

func toWaitingRoomResponse(r *entity.WaitingRoom) *dto.WaitingRoomResponse {
	if r == nil {
		return nil
	}
	return &dto.WaitingRoomResponse{
		ID:                   r.ID,
		WarehouseID:          r.WarehouseID,
		Name:                 r.Name,
		MaxWeight:            r.Weight.Max,
		AvailableStockWeight: r.Weight.Available,
		OccupiedStockWeight:  r.Weight.Occupied,
		MaxStocks:            r.Slots.Max,
		AvailableSlots:       r.Slots.Available,
		OccupiedSlots:        r.Slots.Occupied,
		CreatedAt:            r.CreatedAt,
		UpdatedAt:            r.UpdatedAt,
	}
}
