package repository

import (
	"context"

	"github.com/jhoicas/inventario-equipos/internal/domain/entity"
)

// InventoryRepository define el puerto de persistencia para InventoryItem.
type InventoryRepository interface {
	Create(ctx context.Context, item *entity.InventoryItem) error
	GetByID(ctx context.Context, id string) (*entity.InventoryItem, error)
	GetBySerial(ctx context.Context, serial string) (*entity.InventoryItem, error)
	List(ctx context.Context) ([]*entity.InventoryItem, error)
	Update(ctx context.Context, item *entity.InventoryItem) error
	Delete(ctx context.Context, id string) (*entity.InventoryItem, error)
}

// ReferenceLocker comprueba que una referencia del inventario existe y la bloquea
// en modo compartido hasta el fin de la transacción, para que no pueda borrarse
// entre la validación y la escritura.
type ReferenceLocker interface {
	LockReference(ctx context.Context, ref entity.Reference) (bool, error)
}
