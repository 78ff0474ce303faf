package repository

import (
	"context"

	"github.com/jhoicas/inventario-equipos/internal/domain/entity"
)

// CatalogRepository define el puerto de persistencia de una entidad de catálogo
// (Marca, TipoEquipo o EstadoEquipo). Cada instancia está atada a un CatalogKind.
type CatalogRepository interface {
	Kind() entity.CatalogKind
	Create(ctx context.Context, c *entity.Catalog) error
	GetByID(ctx context.Context, id string) (*entity.Catalog, error)
	GetByIDs(ctx context.Context, ids []string) ([]*entity.Catalog, error)
	List(ctx context.Context) ([]*entity.Catalog, error)
	Update(ctx context.Context, c *entity.Catalog) error
	Delete(ctx context.Context, id string) (*entity.Catalog, error)
}
