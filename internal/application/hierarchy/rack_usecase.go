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

// RackUseCase gestiona estanterías. Crear una estantería reserva su peso
// máximo en la sección de inmediato (el espacio físico se compromete al
// construir, no al llenar); eliminarla lo devuelve. Siempre la misma
// dirección: crear consume el pool a-reservar del padre, eliminar lo repone.
type RackUseCase struct {
	txRunner ports.TxRunner
	rackRepo repository.RackRepository
}

// NewRackUseCase construye el caso de uso.
func NewRackUseCase(txRunner ports.TxRunner, rackRepo repository.RackRepository) *RackUseCase {
	return &RackUseCase{txRunner: txRunner, rackRepo: rackRepo}
}

// Create crea una estantería bajo una sección: consume una unidad del contador
// de estanterías y reserva MaxWeight del pool a-reservar de la sección.
func (uc *RackUseCase) Create(ctx context.Context, in dto.CreateRackRequest) (*dto.RackResponse, error) {
	var created *entity.Rack
	err := uc.txRunner.Run(ctx, func(repos *repository.Atomic) error {
		section, err := repos.Sections.GetForUpdate(in.SectionID)
		if err != nil {
			return err
		}
		if section == nil {
			return domain.ErrNotFound
		}
		if section.Racks.Available < 1 || section.Reservation.ToReserve.LessThan(in.MaxWeight) {
			return domain.ErrNotEnoughSectionResources
		}
		taken, err := repos.Racks.ExistsByName(section.ID, in.RackName)
		if err != nil {
			return err
		}
		if taken {
			return domain.ErrAlreadyExists
		}

		now := time.Now()
		rack := &entity.Rack{
			ID:          uuid.New().String(),
			SectionID:   section.ID,
			RackName:    in.RackName,
			Weight:      capacity.NewWeightUsage(in.MaxWeight),
			Reservation: capacity.NewReservationUsage(in.MaxWeight),
			Levels:      capacity.NewUnitUsage(in.MaxLevels),
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		capacity.ApplyUnits(&section.Racks, 1, capacity.Consume)
		capacity.ApplyReservation(&section.Reservation, in.MaxWeight, capacity.Consume)
		section.UpdatedAt = now
		if err := repos.Sections.Update(section); err != nil {
			return err
		}
		if err := repos.Racks.Create(rack); err != nil {
			return err
		}
		created = rack
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toRackResponse(created), nil
}

// GetByID devuelve una estantería con sus contadores actuales.
func (uc *RackUseCase) GetByID(id string) (*dto.RackResponse, error) {
	rack, err := uc.rackRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if rack == nil {
		return nil, domain.ErrNotFound
	}
	return toRackResponse(rack), nil
}

// ListBySection lista estanterías de una sección con paginación.
func (uc *RackUseCase) ListBySection(sectionID string, limit, offset int) (*dto.RackListResponse, error) {
	list, err := uc.rackRepo.ListBySection(sectionID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.RackResponse, 0, len(list))
	for _, r := range list {
		items = append(items, *toRackResponse(r))
	}
	return &dto.RackListResponse{Items: items, Page: dto.PageResponse{Limit: limit, Offset: offset}}, nil
}

// Update redimensiona una estantería. Un cambio de peso máximo ajusta la
// reserva en la sección por el delta, dentro de la misma transacción; ampliar
// más de lo que la sección puede reservar falla con ErrWeightLimitExceeded.
func (uc *RackUseCase) Update(ctx context.Context, id string, in dto.UpdateRackRequest) (*dto.RackResponse, error) {
	var updated *entity.Rack
	err := uc.txRunner.Run(ctx, func(repos *repository.Atomic) error {
		rack, err := repos.Racks.GetForUpdate(id)
		if err != nil {
			return err
		}
		if rack == nil {
			return domain.ErrNotFound
		}
		if in.RackName != nil && *in.RackName != rack.RackName {
			taken, err := repos.Racks.ExistsByName(rack.SectionID, *in.RackName)
			if err != nil {
				return err
			}
			if taken {
				return domain.ErrAlreadyExists
			}
			rack.RackName = *in.RackName
		}
		if in.MaxWeight != nil {
			newMax := *in.MaxWeight
			if newMax.LessThan(rack.Weight.Occupied) || newMax.LessThan(rack.Reservation.Reserved) {
				return domain.ErrTooLittleWeightAmount
			}
			section, err := repos.Sections.GetForUpdate(rack.SectionID)
			if err != nil {
				return err
			}
			if section == nil {
				return domain.ErrNotFound
			}
			oldMax := rack.Weight.Max
			delta := newMax.Sub(oldMax)
			if delta.GreaterThan(section.Reservation.ToReserve) {
				return domain.ErrWeightLimitExceeded
			}
			if delta.IsPositive() {
				capacity.ApplyReservation(&section.Reservation, delta, capacity.Consume)
			} else if delta.IsNegative() {
				capacity.ApplyReservation(&section.Reservation, delta.Neg(), capacity.Release)
			}
			capacity.ResizeWeight(&rack.Weight, newMax)
			capacity.ShiftReservation(&rack.Reservation, oldMax, newMax)
			section.UpdatedAt = time.Now()
			if err := repos.Sections.Update(section); err != nil {
				return err
			}
		}
		if in.MaxLevels != nil {
			if *in.MaxLevels < rack.Levels.Occupied {
				return domain.ErrTooLittleRackLevelsAmount
			}
			capacity.ResizeUnits(&rack.Levels, *in.MaxLevels, 0)
		}
		rack.UpdatedAt = time.Now()
		if err := repos.Racks.Update(rack); err != nil {
			return err
		}
		updated = rack
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toRackResponse(updated), nil
}

// Delete elimina una estantería vacía y devuelve a la sección la unidad y el
// peso reservado, atómicamente.
func (uc *RackUseCase) Delete(ctx context.Context, id string) error {
	return uc.txRunner.Run(ctx, func(repos *repository.Atomic) error {
		rack, err := repos.Racks.GetForUpdate(id)
		if err != nil {
			return err
		}
		if rack == nil {
			return domain.ErrNotFound
		}
		if !rack.IsEmpty() {
			return domain.ErrRackIsNotEmpty
		}
		section, err := repos.Sections.GetForUpdate(rack.SectionID)
		if err != nil {
			return err
		}
		if section == nil {
			return domain.ErrNotFound
		}
		capacity.ApplyUnits(&section.Racks, 1, capacity.Release)
		capacity.ApplyReservation(&section.Reservation, rack.Weight.Max, capacity.Release)
		section.UpdatedAt = time.Now()
		if err := repos.Sections.Update(section); err != nil {
			return err
		}
		return repos.Racks.Delete(id)
	})
}

func toRackResponse(r *entity.Rack) *dto.RackResponse {
	if r == nil {
		return nil
	}
	return &dto.RackResponse{
		ID:              r.ID,
		SectionID:       r.SectionID,
		RackName:        r.RackName,
		MaxWeight:       r.Weight.Max,
		AvailableWeight: r.Weight.Available,
		OccupiedWeight:  r.Weight.Occupied,
		ReservedWeight:  r.Reservation.Reserved,
		WeightToReserve: r.Reservation.ToReserve,
		MaxLevels:       r.Levels.Max,
		AvailableLevels: r.Levels.Available,
		OccupiedLevels:  r.Levels.Occupied,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}
