package dto

import "github.com/jhoicas/inventario-equipos/internal/domain"

// MessageResponse cuerpo de los errores de autenticación y autorización.
type MessageResponse struct {
	Mensaje string `json:"mensaje"`
}

// ValidationErrorResponse cuerpo de un error de validación (HTTP 400).
type ValidationErrorResponse struct {
	Errores []domain.FieldError `json:"errores"`
}
