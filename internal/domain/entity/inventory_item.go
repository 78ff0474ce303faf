package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryItem es un equipo inventariado. Guarda solo los ids de sus cuatro referencias;
// la expansión a objetos se hace al leer.
type InventoryItem struct {
	ID           string
	Serial       string // único
	Model        string
	Description  string
	Color        string
	Photo        string // URL o referencia a la foto
	PurchaseDate time.Time
	Price        decimal.Decimal // >= 0
	UserID       string
	BrandID      string
	TypeID       string
	StatusID     string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ReferenceKind identifica cada una de las cuatro referencias de un InventoryItem.
type ReferenceKind string

const (
	RefUsuario      ReferenceKind = "usuario"
	RefMarca        ReferenceKind = "marca"
	RefTipoEquipo   ReferenceKind = "tipoEquipo"
	RefEstadoEquipo ReferenceKind = "estadoEquipo"
)

// Reference par (tipo, id) de una referencia del inventario.
type Reference struct {
	Kind ReferenceKind
	ID   string
}

// References devuelve las referencias del ítem en orden fijo: usuario, marca, tipo, estado.
func (i *InventoryItem) References() []Reference {
	return []Reference{
		{Kind: RefUsuario, ID: i.UserID},
		{Kind: RefMarca, ID: i.BrandID},
		{Kind: RefTipoEquipo, ID: i.TypeID},
		{Kind: RefEstadoEquipo, ID: i.StatusID},
	}
}

// CatalogKind devuelve la entidad de catálogo a la que apunta la referencia.
// Para RefUsuario devuelve "" y false.
func (k ReferenceKind) CatalogKind() (CatalogKind, bool) {
	switch k {
	case RefMarca:
		return KindMarca, true
	case RefTipoEquipo:
		return KindTipoEquipo, true
	case RefEstadoEquipo:
		return KindEstadoEquipo, true
	}
	return "", false
}
