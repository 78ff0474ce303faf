package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/inventario-equipos/internal/domain"
	"github.com/jhoicas/inventario-equipos/internal/domain/entity"
	"github.com/jhoicas/inventario-equipos/internal/domain/repository"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

const inventoryColumns = `id, serial, modelo, descripcion, color, foto, fecha_compra, precio,
	usuario_id, marca_id, tipo_equipo_id, estado_equipo_id, fecha_creacion, fecha_actualizacion`

// InventoryRepo implementación de InventoryRepository sobre PostgreSQL (usable con pool o tx).
// Las referencias se guardan como ids sin llave foránea.
type InventoryRepo struct {
	q Querier
}

// NewInventoryRepository construye el adaptador de equipos. Pasar pool o tx (Querier).
func NewInventoryRepository(q Querier) *InventoryRepo {
	return &InventoryRepo{q: q}
}

// Create persiste un equipo. Un serial repetido devuelve ErrSerialAlreadyExists.
func (r *InventoryRepo) Create(ctx context.Context, i *entity.InventoryItem) error {
	query := `
		INSERT INTO inventarios (` + inventoryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(ctx, query,
		i.ID, i.Serial, i.Model, i.Description, i.Color, i.Photo, i.PurchaseDate, i.Price,
		i.UserID, i.BrandID, i.TypeID, i.StatusID, i.CreatedAt, i.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrSerialAlreadyExists
		}
		return fmt.Errorf("insert inventario: %w", err)
	}
	return nil
}

// GetByID obtiene un equipo por ID.
func (r *InventoryRepo) GetByID(ctx context.Context, id string) (*entity.InventoryItem, error) {
	if !isValidID(id) {
		return nil, nil
	}
	return queryOne(ctx, r.q, scanInventory, "get inventario",
		`SELECT `+inventoryColumns+` FROM inventarios WHERE id = $1`, id)
}

// GetBySerial obtiene un equipo por serial.
func (r *InventoryRepo) GetBySerial(ctx context.Context, serial string) (*entity.InventoryItem, error) {
	return queryOne(ctx, r.q, scanInventory, "get inventario by serial",
		`SELECT `+inventoryColumns+` FROM inventarios WHERE serial = $1`, serial)
}

// List devuelve todos los equipos en orden de creación, sin expandir referencias.
func (r *InventoryRepo) List(ctx context.Context) ([]*entity.InventoryItem, error) {
	return queryAll(ctx, r.q, scanInventory, "list inventario",
		`SELECT `+inventoryColumns+` FROM inventarios ORDER BY fecha_creacion, id`)
}

// Update sobrescribe todos los campos editables del equipo.
func (r *InventoryRepo) Update(ctx context.Context, i *entity.InventoryItem) error {
	query := `
		UPDATE inventarios
		SET serial = $2, modelo = $3, descripcion = $4, color = $5, foto = $6, fecha_compra = $7,
		    precio = $8, usuario_id = $9, marca_id = $10, tipo_equipo_id = $11, estado_equipo_id = $12,
		    fecha_actualizacion = $13
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		i.ID, i.Serial, i.Model, i.Description, i.Color, i.Photo, i.PurchaseDate,
		i.Price, i.UserID, i.BrandID, i.TypeID, i.StatusID, i.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrSerialAlreadyExists
		}
		return fmt.Errorf("update inventario: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.NewNotFound("Inventario")
	}
	return nil
}

// Delete elimina el equipo y devuelve la fila borrada; (nil, nil) si no existía.
func (r *InventoryRepo) Delete(ctx context.Context, id string) (*entity.InventoryItem, error) {
	if !isValidID(id) {
		return nil, nil
	}
	return queryOne(ctx, r.q, scanInventory, "delete inventario",
		`DELETE FROM inventarios WHERE id = $1 RETURNING `+inventoryColumns, id)
}

func scanInventory(row scanner) (*entity.InventoryItem, error) {
	var i entity.InventoryItem
	err := row.Scan(
		&i.ID, &i.Serial, &i.Model, &i.Description, &i.Color, &i.Photo, &i.PurchaseDate, &i.Price,
		&i.UserID, &i.BrandID, &i.TypeID, &i.StatusID, &i.CreatedAt, &i.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &i, nil
}
