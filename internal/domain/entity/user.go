package entity

import "time"

// Roles válidos para User.
const (
	RoleAdministrador = "Administrador"
	RoleDocente       = "Docente"
)

// Estados válidos para User y las entidades de catálogo.
const (
	StatusActivo   = "Activo"
	StatusInactivo = "Inactivo"
)

// User representa un usuario del sistema. El email es único.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string // bcrypt; la contraseña en claro nunca se persiste
	Status       string // Activo, Inactivo
	Role         string // Administrador, Docente
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAdmin indica si el usuario tiene el rol administrativo.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdministrador
}
