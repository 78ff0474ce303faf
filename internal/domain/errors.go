package domain

import (
	"errors"
	"strings"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrConflict           = errors.New("conflicto con un registro existente")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrInvalidCredentials = errors.New("credenciales inválidas")
	ErrUnauthenticated    = errors.New("no autenticado")
	ErrForbidden          = errors.New("acceso denegado")
)

// FieldError describe un campo inválido. La forma JSON es la de express-validator,
// que es la que esperan los clientes existentes.
type FieldError struct {
	Type     string `json:"type"`
	Value    any    `json:"value"`
	Msg      string `json:"msg"`
	Path     string `json:"path"`
	Location string `json:"location"`
}

// NewFieldError construye el error de un campo del cuerpo con mensaje "invalid.<campo>".
func NewFieldError(path string, value any) FieldError {
	return FieldError{Type: "field", Value: value, Msg: "invalid." + path, Path: path, Location: "body"}
}

// ValidationError agrupa los errores de campo de una petición.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	paths := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		paths = append(paths, f.Path)
	}
	return "campos inválidos: " + strings.Join(paths, ", ")
}

func (e *ValidationError) Is(target error) bool { return target == ErrInvalidInput }

// NotFoundError indica que la entidad objetivo o referenciada no existe.
// Entity es el nombre visible ("marca", "Usuario", ...).
type NotFoundError struct {
	Entity string
}

// NewNotFound construye un NotFoundError para la entidad indicada.
func NewNotFound(entity string) *NotFoundError {
	return &NotFoundError{Entity: entity}
}

func (e *NotFoundError) Error() string { return e.Entity + " no existe" }

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// ConflictError indica la colisión de una clave única (email, serial).
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string { return e.Message }

func (e *ConflictError) Is(target error) bool { return target == ErrConflict }

// Errores de conflicto con el texto que reciben los clientes.
var (
	ErrEmailAlreadyExists  = &ConflictError{Message: "Email ya existe"}
	ErrSerialAlreadyExists = &ConflictError{Message: "serial ya existe para otro equipo"}
)
