package repository

// Atomic agrupa los puertos atados a una misma transacción de base de datos.
// El TxRunner construye una instancia por transacción y la pasa al callback;
// toda mutación hecha a través de ella se confirma o revierte en bloque.
type Atomic struct {
	Warehouses   WarehouseRepository
	Sections     SectionRepository
	Racks        RackRepository
	RackLevels   RackLevelRepository
	Slots        RackLevelSlotRepository
	WaitingRooms WaitingRoomRepository
	Products     ProductRepository
	Stocks       StockRepository
	Movements    StockMovementRepository
	Receptions   ReceptionRepository
	Issues       IssueRepository
}
