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

// WarehouseUseCase gestiona el almacén: creación (única), redimensionado y
// eliminación. Todas las mutaciones corren dentro de una transacción.
type WarehouseUseCase struct {
	txRunner      ports.TxRunner
	warehouseRepo repository.WarehouseRepository
}

// NewWarehouseUseCase construye el caso de uso.
func NewWarehouseUseCase(txRunner ports.TxRunner, warehouseRepo repository.WarehouseRepository) *WarehouseUseCase {
	return &WarehouseUseCase{txRunner: txRunner, warehouseRepo: warehouseRepo}
}

// Create crea el almacén. El sistema admite exactamente uno: si ya existe una
// fila, falla con ErrWarehouseAlreadyExists (chequeo dentro de la misma tx).
func (uc *WarehouseUseCase) Create(ctx context.Context, in dto.CreateWarehouseRequest) (*dto.WarehouseResponse, error) {
	now := time.Now()
	warehouse := &entity.Warehouse{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Sections:     capacity.NewUnitUsage(in.MaxSections),
		WaitingRooms: capacity.NewUnitUsage(in.MaxWaitingRooms),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	err := uc.txRunner.Run(ctx, func(repos *repository.Atomic) error {
		existing, err := repos.Warehouses.GetSingle()
		if err != nil {
			return err
		}
		if existing != nil {
			return domain.ErrWarehouseAlreadyExists
		}
		return repos.Warehouses.Create(warehouse)
	})
	if err != nil {
		return nil, err
	}
	return toWarehouseResponse(warehouse), nil
}

// Get devuelve el almacén con sus contadores actuales.
func (uc *WarehouseUseCase) Get() (*dto.WarehouseResponse, error) {
	warehouse, err := uc.warehouseRepo.GetSingle()
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
		return nil, domain.ErrNotFound
	}
	return toWarehouseResponse(warehouse), nil
}

// Update redimensiona el almacén. Los nuevos máximos no pueden quedar por
// debajo de lo ya ocupado.
func (uc *WarehouseUseCase) Update(ctx context.Context, id string, in dto.UpdateWarehouseRequest) (*dto.WarehouseResponse, error) {
	var updated *entity.Warehouse
	err := uc.txRunner.Run(ctx, func(repos *repository.Atomic) error {
		warehouse, err := repos.Warehouses.GetForUpdate(id)
		if err != nil {
			return err
		}
		if warehouse == nil {
			return domain.ErrNotFound
		}
		if in.Name != nil {
			warehouse.Name = *in.Name
		}
		if in.MaxSections != nil {
			if *in.MaxSections < warehouse.Sections.Occupied {
				return domain.ErrTooLittleSectionsAmount
			}
			capacity.ResizeUnits(&warehouse.Sections, *in.MaxSections, 0)
		}
		if in.MaxWaitingRooms != nil {
			if *in.MaxWaitingRooms < warehouse.WaitingRooms.Occupied {
				return domain.ErrTooLittleWaitingRoomsAmount
			}
			capacity.ResizeUnits(&warehouse.WaitingRooms, *in.MaxWaitingRooms, 0)
		}
		warehouse.UpdatedAt = time.Now()
		if err := repos.Warehouses.Update(warehouse); err != nil {
			return err
		}
		updated = warehouse
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toWarehouseResponse(updated), nil
}

// Delete elimina el almacén solo si no tiene secciones ni salas de espera.
func (uc *WarehouseUseCase) Delete(ctx context.Context, id string) error {
	return uc.txRunner.Run(ctx, func(repos *repository.Atomic) error {
		warehouse, err := repos.Warehouses.GetForUpdate(id)
		if err != nil {
			return err
		}
		if warehouse == nil {
			return domain.ErrNotFound
		}
		if !warehouse.IsEmpty() {
			return domain.ErrWarehouseIsNotEmpty
		}
		return repos.Warehouses.Delete(id)
	})
}

func toWarehouseResponse(w *entity.Warehouse) *dto.WarehouseResponse {
	if w == nil {
		return nil
	}
	return &dto.WarehouseResponse{
		ID:                    w.ID,
		Name:                  w.Name,
		MaxSections:           w.Sections.Max,
		AvailableSections:     w.Sections.Available,
		OccupiedSections:      w.Sections.Occupied,
		MaxWaitingRooms:       w.WaitingRooms.Max,
		AvailableWaitingRooms: w.WaitingRooms.Available,
		OccupiedWaitingRooms:  w.WaitingRooms.Occupied,
		CreatedAt:             w.CreatedAt,
		UpdatedAt:             w.UpdatedAt,
	}
}
