package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-equipos/internal/domain"
)

// RefID id de una referencia del inventario. Acepta en JSON un string o un objeto
// con "_id" (los clientes envían el objeto poblado que recibieron del listado).
type RefID string

// UnmarshalJSON implementa json.Unmarshaler.
func (r *RefID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*r = ""
		return nil
	}
	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*r = RefID(s)
		return nil
	case '{':
		var obj struct {
			ID    string `json:"_id"`
			AltID string `json:"id"`
		}
		if err := json.Unmarshal(data, &obj); err != nil {
			return err
		}
		if obj.ID == "" {
			obj.ID = obj.AltID
		}
		*r = RefID(obj.ID)
		return nil
	default:
		return fmt.Errorf("referencia inválida: %s", data)
	}
}

// InventoryRequest entrada para crear o actualizar un equipo del inventario.
type InventoryRequest struct {
	Serial       string           `json:"serial" validate:"required"`
	Model        string           `json:"modelo" validate:"required"`
	Description  string           `json:"descripcion" validate:"required"`
	Color        string           `json:"color" validate:"required"`
	Photo        string           `json:"foto" validate:"required"`
	PurchaseDate string           `json:"fechaCompra" validate:"required"`
	Price        *decimal.Decimal `json:"precio"`
	User         RefID            `json:"usuario" validate:"required"`
	Brand        RefID            `json:"marca" validate:"required"`
	Type         RefID            `json:"tipoEquipo" validate:"required"`
	Status       RefID            `json:"estadoEquipo" validate:"required"`
}

// maxPrice cota exclusiva de precio; la columna es numeric(14,2).
var maxPrice = decimal.New(1, 12)

// checkFields valida fechaCompra parseable y precio presente, no negativo, con a lo
// sumo dos decimales y dentro del rango de la columna.
func (r *InventoryRequest) checkFields() []domain.FieldError {
	var fields []domain.FieldError
	if r.PurchaseDate != "" {
		if _, err := ParseDate(r.PurchaseDate); err != nil {
			fields = append(fields, domain.NewFieldError("fechaCompra", r.PurchaseDate))
		}
	}
	switch {
	case r.Price == nil:
		fields = append(fields, domain.NewFieldError("precio", nil))
	case r.Price.IsNegative(),
		!r.Price.Equal(r.Price.Round(2)),
		r.Price.GreaterThanOrEqual(maxPrice):
		fields = append(fields, domain.NewFieldError("precio", r.Price.String()))
	}
	return fields
}

// InventoryResponse salida de un equipo tal como está almacenado (referencias como ids).
type InventoryResponse struct {
	ID           string          `json:"_id"`
	Serial       string          `json:"serial"`
	Model        string          `json:"modelo"`
	Description  string          `json:"descripcion"`
	Color        string          `json:"color"`
	Photo        string          `json:"foto"`
	PurchaseDate time.Time       `json:"fechaCompra"`
	Price        decimal.Decimal `json:"precio"`
	User         string          `json:"usuario"`
	Brand        string          `json:"marca"`
	Type         string          `json:"tipoEquipo"`
	Status       string          `json:"estadoEquipo"`
	CreatedAt    time.Time       `json:"fechaCreacion"`
	UpdatedAt    time.Time       `json:"fechaActualizacion"`
}

// UserRef proyección del dueño de un equipo.
type UserRef struct {
	ID     string `json:"_id"`
	Name   string `json:"nombre"`
	Email  string `json:"email"`
	Status string `json:"estado"`
}

// CatalogRef proyección de una marca, tipo o estado de equipo.
type CatalogRef struct {
	ID     string `json:"_id"`
	Name   string `json:"nombre"`
	Status string `json:"estado"`
}

// InventoryDetailResponse equipo con sus referencias expandidas. Una referencia
// cuya entidad ya no existe se serializa como null.
type InventoryDetailResponse struct {
	ID           string          `json:"_id"`
	Serial       string          `json:"serial"`
	Model        string          `json:"modelo"`
	Description  string          `json:"descripcion"`
	Color        string          `json:"color"`
	Photo        string          `json:"foto"`
	PurchaseDate time.Time       `json:"fechaCompra"`
	Price        decimal.Decimal `json:"precio"`
	User         *UserRef        `json:"usuario"`
	Brand        *CatalogRef     `json:"marca"`
	Type         *CatalogRef     `json:"tipoEquipo"`
	Status       *CatalogRef     `json:"estadoEquipo"`
	CreatedAt    time.Time       `json:"fechaCreacion"`
	UpdatedAt    time.Time       `json:"fechaActualizacion"`
}
