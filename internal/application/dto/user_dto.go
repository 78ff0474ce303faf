package dto

import "time"

// CreateUserRequest entrada para crear un usuario (password en texto, se hashea en el use case).
type CreateUserRequest struct {
	Name     string `json:"nombre" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,maxbytes=72"`
	Role     string `json:"rol" validate:"oneof=Administrador Docente"`
	Status   string `json:"estado" validate:"oneof=Activo Inactivo"`
}

// UpdateUserRequest campos editables de un usuario. Password vacío conserva el hash actual.
type UpdateUserRequest struct {
	Name     string `json:"nombre" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"omitempty,maxbytes=72"`
	Role     string `json:"rol" validate:"oneof=Administrador Docente"`
	Status   string `json:"estado" validate:"oneof=Activo Inactivo"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID        string    `json:"_id"`
	Name      string    `json:"nombre"`
	Email     string    `json:"email"`
	Status    string    `json:"estado"`
	Role      string    `json:"rol"`
	CreatedAt time.Time `json:"fechaCreacion"`
	UpdatedAt time.Time `json:"fechaActualizacion"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse salida del login con el token de acceso.
type LoginResponse struct {
	ID          string `json:"_id"`
	Name        string `json:"nombre"`
	Role        string `json:"rol"`
	Email       string `json:"email"`
	AccessToken string `json:"access_token"`
}
