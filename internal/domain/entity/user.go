package entity

import "time"

// Roles de la aplicación.
const (
	RoleAdmin    = "admin"
	RoleEmpleado = "empleado"
)

// User representa un empleado o administrador del sistema.
type User struct {
	ID           string
	Email        string
	Username     string
	PasswordHash string
	Role         string // admin | empleado
	Status       string // active | disabled
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
