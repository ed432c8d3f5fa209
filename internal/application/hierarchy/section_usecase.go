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

// SectionUseCase gestiona secciones: crear consume una unidad de sección del
// almacén; eliminar la devuelve. El peso de la sección no se reserva en el
// almacén (éste solo cuenta secciones).
type SectionUseCase struct {
	txRunner    ports.TxRunner
	sectionRepo repository.SectionRepository
}

// NewSectionUseCase construye el caso de uso.
func NewSectionUseCase(txRunner ports.TxRunner, sectionRepo repository.SectionRepository) *SectionUseCase {
	return &SectionUseCase{txRunner: txRunner, sectionRepo: sectionRepo}
}

// Create crea una sección bajo el almacén, consumiendo una unidad de su
// contador de secciones dentro de la misma transacción.
func (uc *SectionUseCase) Create(ctx context.Context, in dto.CreateSectionRequest) (*dto.SectionResponse, error) {
	var created *entity.Section
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
		if warehouse.Sections.Available < 1 {
			return domain.ErrNotEnoughWarehouseResources
		}
		taken, err := repos.Sections.ExistsByName(warehouse.ID, in.SectionName)
		if err != nil {
			return err
		}
		if taken {
			return domain.ErrAlreadyExists
		}

		now := time.Now()
		section := &entity.Section{
			ID:          uuid.New().String(),
			WarehouseID: warehouse.ID,
			SectionName: in.SectionName,
			Weight:      capacity.NewWeightUsage(in.MaxWeight),
			Reservation: capacity.NewReservationUsage(in.MaxWeight),
			Racks:       capacity.NewUnitUsage(in.MaxRacks),
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		capacity.ApplyUnits(&warehouse.Sections, 1, capacity.Consume)
		warehouse.UpdatedAt = now
		if err := repos.Warehouses.Update(warehouse); err != nil {
			return err
		}
		if err := repos.Sections.Create(section); err != nil {
			return err
		}
		created = section
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toSectionResponse(created), nil
}

// GetByID devuelve una sección con sus contadores actuales.
func (uc *SectionUseCase) GetByID(id string) (*dto.SectionResponse, error) {
	section, err := uc.sectionRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if section == nil {
		return nil, domain.ErrNotFound
	}
	return toSectionResponse(section), nil
}

// List lista secciones con paginación.
func (uc *SectionUseCase) List(limit, offset int) (*dto.SectionListResponse, error) {
	list, err := uc.sectionRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SectionResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toSectionResponse(s))
	}
	return &dto.SectionListResponse{Items: items, Page: dto.PageResponse{Limit: limit, Offset: offset}}, nil
}

// Update redimensiona una sección. El nuevo peso máximo no puede quedar por
// debajo ni del peso ocupado ni del ya reservado por sus estanterías.
func (uc *SectionUseCase) Update(ctx context.Context, id string, in dto.UpdateSectionRequest) (*dto.SectionResponse, error) {
	var updated *entity.Section
	err := uc.txRunner.Run(ctx, func(repos *repository.Atomic) error {
		section, err := repos.Sections.GetForUpdate(id)
		if err != nil {
			return err
		}
		if section == nil {
			return domain.ErrNotFound
		}
		if in.SectionName != nil && *in.SectionName != section.SectionName {
			taken, err := repos.Sections.ExistsByName(section.WarehouseID, *in.SectionName)
			if err != nil {
				return err
			}
			if taken {
				return domain.ErrAlreadyExists
			}
			section.SectionName = *in.SectionName
		}
		if in.MaxWeight != nil {
			newMax := *in.MaxWeight
			if newMax.LessThan(section.Weight.Occupied) || newMax.LessThan(section.Reservation.Reserved) {
				return domain.ErrTooLittleWeightAmount
			}
			oldMax := section.Weight.Max
			capacity.ResizeWeight(&section.Weight, newMax)
			capacity.ShiftReservation(&section.Reservation, oldMax, newMax)
		}
		if in.MaxRacks != nil {
			if *in.MaxRacks < section.Racks.Occupied {
				return domain.ErrTooLittleRacksAmount
			}
			capacity.ResizeUnits(&section.Racks, *in.MaxRacks, 0)
		}
		section.UpdatedAt = time.Now()
		if err := repos.Sections.Update(section); err != nil {
			return err
		}
		updated = section
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toSectionResponse(updated), nil
}

// Delete elimina una sección vacía y devuelve su unidad al almacén.
func (uc *SectionUseCase) Delete(ctx context.Context, id string) error {
	return uc.txRunner.Run(ctx, func(repos *repository.Atomic) error {
		section, err := repos.Sections.GetForUpdate(id)
		if err != nil {
			return err
		}
		if section == nil {
			return domain.ErrNotFound
		}
		if !section.IsEmpty() {
			return domain.ErrSectionIsNotEmpty
		}
		warehouse, err := repos.Warehouses.GetForUpdate(section.WarehouseID)
		if err != nil {
			return err
		}
		if warehouse == nil {
			return domain.ErrNotFound
		}
		capacity.ApplyUnits(&warehouse.Sections, 1, capacity.Release)
		warehouse.UpdatedAt = time.Now()
		if err := repos.Warehouses.Update(warehouse); err != nil {
			return err
		}
		return repos.Sections.Delete(id)
	})
}

func toSectionResponse(s *entity.Section) *dto.SectionResponse {
	if s == nil {
		return nil
	}
	return &dto.SectionResponse{
		ID:              s.ID,
		WarehouseID:     s.WarehouseID,
		SectionName:     s.SectionName,
		MaxWeight:       s.Weight.Max,
		AvailableWeight: s.Weight.Available,
		OccupiedWeight:  s.Weight.Occupied,
		ReservedWeight:  s.Reservation.Reserved,
		WeightToReserve: s.Reservation.ToReserve,
		MaxRacks:        s.Racks.Max,
		AvailableRacks:  s.Racks.Available,
		OccupiedRacks:   s.Racks.Occupied,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
}
