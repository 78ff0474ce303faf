package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/inventario-equipos/internal/domain"
	"github.com/jhoicas/inventario-equipos/internal/domain/entity"
	"github.com/jhoicas/inventario-equipos/internal/domain/repository"
)

var _ repository.CatalogRepository = (*CatalogRepo)(nil)

// catalogTables es la lista cerrada de tablas de catálogo; el nombre de tabla
// se interpola en el SQL solo desde aquí.
var catalogTables = map[entity.CatalogKind]string{
	entity.KindMarca:        "marcas",
	entity.KindTipoEquipo:   "tipos_equipo",
	entity.KindEstadoEquipo: "estados_equipo",
}

const catalogColumns = `id, nombre, estado, fecha_creacion, fecha_actualizacion`

// CatalogRepo implementación única de CatalogRepository para las tres tablas de catálogo.
type CatalogRepo struct {
	q     Querier
	kind  entity.CatalogKind
	table string
}

// NewCatalogRepository construye el repositorio de la entidad kind. Pasar pool o tx.
func NewCatalogRepository(q Querier, kind entity.CatalogKind) (*CatalogRepo, error) {
	table, ok := catalogTables[kind]
	if !ok {
		return nil, fmt.Errorf("catálogo desconocido: %q", kind)
	}
	return &CatalogRepo{q: q, kind: kind, table: table}, nil
}

// Kind devuelve la entidad de catálogo del repositorio.
func (r *CatalogRepo) Kind() entity.CatalogKind { return r.kind }

func (r *CatalogRepo) Create(ctx context.Context, c *entity.Catalog) error {
	query := `INSERT INTO ` + r.table + ` (` + catalogColumns + `) VALUES ($1, $2, $3, $4, $5)`
	if _, err := r.q.Exec(ctx, query, c.ID, c.Name, c.Status, c.CreatedAt, c.UpdatedAt); err != nil {
		return fmt.Errorf("insert %s: %w", r.kind, err)
	}
	return nil
}

func (r *CatalogRepo) GetByID(ctx context.Context, id string) (*entity.Catalog, error) {
	if !isValidID(id) {
		return nil, nil
	}
	return queryOne(ctx, r.q, r.scan, "get "+string(r.kind),
		`SELECT `+catalogColumns+` FROM `+r.table+` WHERE id = $1`, id)
}

func (r *CatalogRepo) GetByIDs(ctx context.Context, ids []string) ([]*entity.Catalog, error) {
	ids = validIDs(ids)
	if len(ids) == 0 {
		return nil, nil
	}
	return queryAll(ctx, r.q, r.scan, "get "+string(r.kind)+" by ids",
		`SELECT `+catalogColumns+` FROM `+r.table+` WHERE id = ANY($1)`, ids)
}

func (r *CatalogRepo) List(ctx context.Context) ([]*entity.Catalog, error) {
	return queryAll(ctx, r.q, r.scan, "list "+string(r.kind),
		`SELECT `+catalogColumns+` FROM `+r.table+` ORDER BY fecha_creacion, id`)
}

func (r *CatalogRepo) Update(ctx context.Context, c *entity.Catalog) error {
	query := `UPDATE ` + r.table + ` SET nombre = $2, estado = $3, fecha_actualizacion = $4 WHERE id = $1`
	tag, err := r.q.Exec(ctx, query, c.ID, c.Name, c.Status, c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update %s: %w", r.kind, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.NewNotFound(r.kind.Label())
	}
	return nil
}

// Delete borra sin revisar si hay equipos que lo referencian.
func (r *CatalogRepo) Delete(ctx context.Context, id string) (*entity.Catalog, error) {
	if !isValidID(id) {
		return nil, nil
	}
	return queryOne(ctx, r.q, r.scan, "delete "+string(r.kind),
		`DELETE FROM `+r.table+` WHERE id = $1 RETURNING `+catalogColumns, id)
}

func (r *CatalogRepo) scan(row scanner) (*entity.Catalog, error) {
	c := entity.Catalog{Kind: r.kind}
	if err := row.Scan(&c.ID, &c.Name, &c.Status, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}
