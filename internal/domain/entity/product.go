package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto almacenable. Weight es el peso unitario;
// el peso de un stock es Weight * ProductCount.
// IsLegacy marca el producto como retirado: no admite nuevo stock y queda
// de solo lectura (los stocks existentes conservan su ciclo de vida).
type Product struct {
	ID          string
	Name        string
	Description string
	Weight      decimal.Decimal
	IsLegacy    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
