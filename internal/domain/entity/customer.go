package entity

import "time"

// Customer cliente al que se asignan VNOTrunks.
type Customer struct {
	ID        int64
	Name      string
	Email     string  // único
	Phone     *string // opcional
	CreatedAt time.Time
}
