package dto

import "time"

// CatalogRequest entrada para crear o actualizar una marca, tipo o estado de equipo.
type CatalogRequest struct {
	Name   string `json:"nombre" validate:"required"`
	Status string `json:"estado" validate:"oneof=Activo Inactivo"`
}

// CatalogResponse salida de una entidad de catálogo.
type CatalogResponse struct {
	ID        string    `json:"_id"`
	Name      string    `json:"nombre"`
	Status    string    `json:"estado"`
	CreatedAt time.Time `json:"fechaCreacion"`
	UpdatedAt time.Time `json:"fechaActualizacion"`
}
