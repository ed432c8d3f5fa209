package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
// Las categorías se comparan con errors.Is en los handlers para mapear a HTTP;
// los errores específicos envuelven su categoría con %w.
var (
	ErrNotFound         = errors.New("recurso no encontrado")
	ErrUserNotFound     = errors.New("usuario no encontrado")
	ErrAlreadyExists    = errors.New("el recurso ya existe")
	ErrCapacityExceeded = errors.New("capacidad insuficiente")
	ErrInvalidInput     = errors.New("entrada inválida")
	ErrIllegalState     = errors.New("operación inválida para el estado actual")
	ErrConflict         = errors.New("conflicto con el estado actual")
	ErrUnauthorized     = errors.New("no autorizado")
	ErrForbidden        = errors.New("acceso denegado")
)

var ErrEmailAlreadyExists = fmt.Errorf("%w: el email ya está registrado", ErrAlreadyExists)

// Singleton de almacén: solo puede existir un Warehouse.
var ErrWarehouseAlreadyExists = fmt.Errorf("%w: ya existe un almacén registrado", ErrAlreadyExists)

// Capacidad insuficiente en el contenedor padre (conteo o peso a reservar).
var (
	ErrNotEnoughWarehouseResources   = fmt.Errorf("%w: el almacén no tiene recursos disponibles", ErrCapacityExceeded)
	ErrNotEnoughSectionResources     = fmt.Errorf("%w: la sección no tiene recursos disponibles", ErrCapacityExceeded)
	ErrNotEnoughRackResources        = fmt.Errorf("%w: la estantería no tiene recursos disponibles", ErrCapacityExceeded)
	ErrNotEnoughRackLevelResources   = fmt.Errorf("%w: el nivel no tiene recursos disponibles", ErrCapacityExceeded)
	ErrNotEnoughWaitingRoomResources = fmt.Errorf("%w: la sala de espera no tiene capacidad suficiente", ErrCapacityExceeded)
	ErrNoAvailableWaitingRooms       = fmt.Errorf("%w: no hay salas de espera con capacidad suficiente", ErrCapacityExceeded)
	ErrNoAvailableRackLevelSlot      = fmt.Errorf("%w: el nivel no tiene casillas libres", ErrCapacityExceeded)
	ErrWeightLimitExceeded           = fmt.Errorf("%w: el nuevo peso máximo excede lo que el padre puede reservar", ErrCapacityExceeded)
)

// Redimensionar por debajo de lo ya ocupado.
var (
	ErrTooLittleWeightAmount       = fmt.Errorf("%w: el nuevo peso máximo es menor que el peso ocupado", ErrCapacityExceeded)
	ErrTooLittleSectionsAmount     = fmt.Errorf("%w: la nueva cantidad de secciones es menor que las existentes", ErrCapacityExceeded)
	ErrTooLittleWaitingRoomsAmount = fmt.Errorf("%w: la nueva cantidad de salas de espera es menor que las existentes", ErrCapacityExceeded)
	ErrTooLittleRacksAmount        = fmt.Errorf("%w: la nueva cantidad de estanterías es menor que las existentes", ErrCapacityExceeded)
	ErrTooLittleRackLevelsAmount   = fmt.Errorf("%w: la nueva cantidad de niveles es menor que los existentes", ErrCapacityExceeded)
	ErrTooLittleStocksAmount       = fmt.Errorf("%w: la nueva cantidad de casillas es menor que las ocupadas", ErrCapacityExceeded)
)

// Reglas al reducir max_slots: se desactiva desde el número más alto hacia abajo, sin huecos.
var (
	ErrTooSmallInactiveSlotsQuantity           = fmt.Errorf("%w: no hay suficientes casillas inactivas al final del nivel", ErrInvalidInput)
	ErrExistingGapBetweenInactiveSlotsToDelete = fmt.Errorf("%w: hay huecos entre las casillas inactivas a eliminar", ErrInvalidInput)
)

// Conflictos de ocupación y unicidad.
var (
	ErrRackLevelSlotIsOccupied   = fmt.Errorf("%w: la casilla ya contiene un stock", ErrConflict)
	ErrRackLevelSlotIsInactive   = fmt.Errorf("%w: la casilla está desactivada", ErrConflict)
	ErrStockAlreadyInRackLevel   = fmt.Errorf("%w: el stock ya está en ese nivel", ErrConflict)
	ErrStockAlreadyInWaitingRoom = fmt.Errorf("%w: el stock ya está en esa sala de espera", ErrConflict)
	ErrServiceConflict           = fmt.Errorf("%w: estado inconsistente para la operación solicitada", ErrConflict)
)

// Contenedores no vacíos (no se pueden eliminar).
var (
	ErrWarehouseIsNotEmpty   = fmt.Errorf("%w: el almacén no está vacío", ErrConflict)
	ErrSectionIsNotEmpty     = fmt.Errorf("%w: la sección no está vacía", ErrConflict)
	ErrRackIsNotEmpty        = fmt.Errorf("%w: la estantería no está vacía", ErrConflict)
	ErrRackLevelIsNotEmpty   = fmt.Errorf("%w: el nivel no está vacío", ErrConflict)
	ErrWaitingRoomIsNotEmpty = fmt.Errorf("%w: la sala de espera no está vacía", ErrConflict)
)

// Forma de la petición irresoluble.
var (
	ErrAmbiguousStockStoragePlace = fmt.Errorf("%w: se indicó más de un destino para el stock", ErrInvalidInput)
	ErrMissingProductData         = fmt.Errorf("%w: faltan datos del producto a recepcionar", ErrInvalidInput)
)

// Transiciones de estado ilegales.
var (
	ErrCannotMoveIssuedStock       = fmt.Errorf("%w: el stock ya fue emitido", ErrIllegalState)
	ErrCantActivateRackLevelSlot   = fmt.Errorf("%w: la casilla no se puede activar", ErrIllegalState)
	ErrCantDeactivateRackLevelSlot = fmt.Errorf("%w: la casilla no se puede desactivar", ErrIllegalState)
	ErrProductIsAlreadyLegacy      = fmt.Errorf("%w: el producto ya está marcado como legacy", ErrIllegalState)
	ErrCannotReceiveLegacyProduct  = fmt.Errorf("%w: no se puede recepcionar stock de un producto legacy", ErrIllegalState)
)
