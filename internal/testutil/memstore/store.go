// Package memstore implementa los puertos de persistencia en memoria para los tests
// de casos de uso y handlers. Respeta el contrato de los repositorios postgres:
// búsquedas sin resultado devuelven (nil, nil) y List respeta el orden de inserción.
package memstore

import (
	"context"
	"errors"
	"sync"

	"github.com/jhoicas/inventario-equipos/internal/domain/entity"
	"github.com/jhoicas/inventario-equipos/internal/domain/repository"
)

// ErrInjected se devuelve cuando un test fuerza la falla de una operación.
var ErrInjected = errors.New("memstore: falla inyectada")

type table[T any] struct {
	order []string
	rows  map[string]T
}

func newTable[T any]() *table[T] {
	return &table[T]{rows: map[string]T{}}
}

func (t *table[T]) get(id string) (T, bool) {
	v, ok := t.rows[id]
	return v, ok
}

func (t *table[T]) put(id string, v T) {
	if _, ok := t.rows[id]; !ok {
		t.order = append(t.order, id)
	}
	t.rows[id] = v
}

func (t *table[T]) remove(id string) (T, bool) {
	v, ok := t.rows[id]
	if !ok {
		return v, false
	}
	delete(t.rows, id)
	for i, x := range t.order {
		if x == id {
			t.order = append(t.order[:i:i], t.order[i+1:]...)
			break
		}
	}
	return v, true
}

func (t *table[T]) all() []T {
	out := make([]T, 0, len(t.order))
	for _, id := range t.order {
		out = append(out, t.rows[id])
	}
	return out
}

func (t *table[T]) clone() *table[T] {
	c := &table[T]{order: append([]string(nil), t.order...), rows: make(map[string]T, len(t.rows))}
	for k, v := range t.rows {
		c.rows[k] = v
	}
	return c
}

// Store agrupa todas las tablas. Es seguro para uso concurrente.
type Store struct {
	mu        sync.Mutex
	txMu      sync.Mutex
	users     *table[entity.User]
	catalogs  map[entity.CatalogKind]*table[entity.Catalog]
	inventory *table[entity.InventoryItem]

	// FailOn hace fallar la operación con ese nombre ("inventory.Create", "users.List", ...).
	FailOn map[string]error
}

// New construye un Store vacío.
func New() *Store {
	return &Store{
		users: newTable[entity.User](),
		catalogs: map[entity.CatalogKind]*table[entity.Catalog]{
			entity.KindMarca:        newTable[entity.Catalog](),
			entity.KindTipoEquipo:   newTable[entity.Catalog](),
			entity.KindEstadoEquipo: newTable[entity.Catalog](),
		},
		inventory: newTable[entity.InventoryItem](),
		FailOn:    map[string]error{},
	}
}

// Fail configura la operación op para devolver ErrInjected.
func (s *Store) Fail(op string) { s.FailOn[op] = ErrInjected }

func (s *Store) failure(op string) error {
	return s.FailOn[op]
}

// Users devuelve el repositorio de usuarios.
func (s *Store) Users() *UserRepository { return &UserRepository{s: s} }

// Catalog devuelve el repositorio de la entidad de catálogo kind.
func (s *Store) Catalog(kind entity.CatalogKind) *CatalogRepository {
	return &CatalogRepository{s: s, kind: kind}
}

// Inventory devuelve el repositorio de equipos.
func (s *Store) Inventory() *InventoryRepository { return &InventoryRepository{s: s} }

// RunInventory ejecuta fn de forma serializada. Si fn falla, el estado vuelve al anterior.
func (s *Store) RunInventory(ctx context.Context, fn func(
	items repository.InventoryRepository,
	refs repository.ReferenceLocker,
) error) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()

	s.mu.Lock()
	users := s.users.clone()
	catalogs := make(map[entity.CatalogKind]*table[entity.Catalog], len(s.catalogs))
	for k, t := range s.catalogs {
		catalogs[k] = t.clone()
	}
	inventory := s.inventory.clone()
	s.mu.Unlock()

	if err := fn(s.Inventory(), s); err != nil {
		s.mu.Lock()
		s.users, s.catalogs, s.inventory = users, catalogs, inventory
		s.mu.Unlock()
		return err
	}
	return nil
}

// LockReference implementa repository.ReferenceLocker comprobando existencia.
func (s *Store) LockReference(_ context.Context, ref entity.Reference) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.failure("refs.Lock"); err != nil {
		return false, err
	}
	if kind, ok := ref.Kind.CatalogKind(); ok {
		_, found := s.catalogs[kind].get(ref.ID)
		return found, nil
	}
	_, found := s.users.get(ref.ID)
	return found, nil
}
