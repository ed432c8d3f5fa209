package dto

import "time"

// CreateWarehouseRequest entrada para crear el almacén (único en el sistema).
type CreateWarehouseRequest struct {
	Name            string `json:"name" validate:"required,min=1,max=200"`
	MaxSections     int    `json:"max_sections" validate:"required,min=1"`
	MaxWaitingRooms int    `json:"max_waiting_rooms" validate:"required,min=1"`
}

// UpdateWarehouseRequest entrada para redimensionar el almacén.
type UpdateWarehouseRequest struct {
	Name            *string `json:"name" validate:"omitempty,min=1,max=200"`
	MaxSections     *int    `json:"max_sections" validate:"omitempty,min=1"`
	MaxWaitingRooms *int    `json:"max_waiting_rooms" validate:"omitempty,min=1"`
}

// WarehouseResponse salida del almacén con sus contadores de capacidad.
type WarehouseResponse struct {
	ID                    string    `json:"id"`
	Name                  string    `json:"name"`
	MaxSections           int       `json:"max_sections"`
	AvailableSections     int       `json:"available_sections"`
	OccupiedSections      int       `json:"occupied_sections"`
	MaxWaitingRooms       int       `json:"max_waiting_rooms"`
	AvailableWaitingRooms int       `json:"available_waiting_rooms"`
	OccupiedWaitingRooms  int       `json:"occupied_waiting_rooms"`
	CreatedAt             time.Time `json:"created_at"`
	UpdatedAt             time.Time `json:"updated_at"`
}
