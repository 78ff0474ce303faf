package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/inventario-equipos/internal/domain/entity"
	"github.com/jhoicas/inventario-equipos/internal/domain/repository"
)

var _ repository.ReferenceLocker = (*ReferenceLocker)(nil)

// ReferenceLocker comprueba referencias con SELECT ... FOR SHARE. Dentro de una tx la fila
// queda bloqueada contra DELETE/UPDATE hasta el Commit; fuera de una tx solo comprueba existencia.
type ReferenceLocker struct {
	q Querier
}

// NewReferenceLocker construye el locker. Pasar la tx de la escritura.
func NewReferenceLocker(q Querier) *ReferenceLocker {
	return &ReferenceLocker{q: q}
}

// LockReference devuelve true si la entidad referenciada existe.
func (l *ReferenceLocker) LockReference(ctx context.Context, ref entity.Reference) (bool, error) {
	table, err := referenceTable(ref.Kind)
	if err != nil {
		return false, err
	}
	if !isValidID(ref.ID) {
		return false, nil
	}
	var one int
	err = l.q.QueryRow(ctx, `SELECT 1 FROM `+table+` WHERE id = $1 FOR SHARE`, ref.ID).Scan(&one)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("lock %s: %w", ref.Kind, err)
	}
	return true, nil
}

func referenceTable(kind entity.ReferenceKind) (string, error) {
	if kind == entity.RefUsuario {
		return "usuarios", nil
	}
	if ck, ok := kind.CatalogKind(); ok {
		return catalogTables[ck], nil
	}
	return "", fmt.Errorf("referencia desconocida: %q", kind)
}
