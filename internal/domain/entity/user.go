package entity

import "time"

// Roles válidos para User. Cualquier valor distinto de RoleAdmin es no-admin.
const (
	RoleAdmin    = "admin"
	RoleOperator = "operator"
)

// AdminUsername identidad de la cuenta sembrada al arrancar.
const AdminUsername = "admin"

// User representa un usuario del sistema.
type User struct {
	ID           int64
	Username     string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Role         string
	CreatedAt    time.Time
}

