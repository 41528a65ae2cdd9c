package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin      = "admin"
	RoleTechnician = "technician"
)

// User representa un usuario del sistema.
type User struct {
	ID           string
	Username     string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Role         string // admin, technician
	CreatedAt    time.Time
}
