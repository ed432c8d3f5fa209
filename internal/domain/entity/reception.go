package entity

import "time"

// Reception representa la llegada de mercancía: crea stocks y los coloca.
type Reception struct {
	ID          string
	UserID      string
	Description string
	CreatedAt   time.Time
}

// Issue representa la salida definitiva de stocks del sistema.
type Issue struct {
	ID          string
	UserID      string
	Description string
	CreatedAt   time.Time
}
