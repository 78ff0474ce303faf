package entity

import "time"

// CatalogKind identifica una de las entidades de referencia con forma nombre/estado.
type CatalogKind string

// Entidades de catálogo referenciadas por InventoryItem.
const (
	KindMarca        CatalogKind = "marca"
	KindTipoEquipo   CatalogKind = "tipo-equipo"
	KindEstadoEquipo CatalogKind = "estado-equipo"
)

// Label devuelve el nombre visible de la entidad, usado en mensajes "no existe".
func (k CatalogKind) Label() string {
	switch k {
	case KindMarca:
		return "Marca"
	case KindTipoEquipo:
		return "Tipo equipo"
	case KindEstadoEquipo:
		return "Estado equipo"
	default:
		return string(k)
	}
}

// Valid indica si k es una de las entidades de catálogo conocidas.
func (k CatalogKind) Valid() bool {
	switch k {
	case KindMarca, KindTipoEquipo, KindEstadoEquipo:
		return true
	}
	return false
}

// Catalog es una Marca, TipoEquipo o EstadoEquipo. Sin referencias a otras entidades.
type Catalog struct {
	ID        string
	Kind      CatalogKind
	Name      string
	Status    string // Activo, Inactivo
	CreatedAt time.Time
	UpdatedAt time.Time
}
