package entity

import "time"

// User representa a un operario o encargado del almacén.
// IsStaff habilita la gestión de contenedores; CanMoveStocks autoriza
// movimientos internos de stock.
type User struct {
	ID            string
	Email         string
	PasswordHash  string
	Name          string
	IsStaff       bool
	CanMoveStocks bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
