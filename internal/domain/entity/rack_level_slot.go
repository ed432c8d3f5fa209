package entity

import "time"

// RackLevelSlot representa la casilla mínima de almacenamiento: contiene a lo
// sumo un stock no emitido. StockID nil = casilla libre.
type RackLevelSlot struct {
	ID          string
	RackLevelID string
	SlotNumber  int
	Description string
	IsActive    bool
	StockID     *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsFree indica si la casilla está activa y sin stock.
func (s *RackLevelSlot) IsFree() bool {
	return s.IsActive && s.StockID == nil
}
