package memstore

import (
	"context"

	"github.com/jhoicas/inventario-equipos/internal/domain"
	"github.com/jhoicas/inventario-equipos/internal/domain/entity"
)

// UserRepository implementa repository.UserRepository.
type UserRepository struct{ s *Store }

func (r *UserRepository) Create(_ context.Context, u *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failure("users.Create"); err != nil {
		return err
	}
	for _, other := range r.s.users.rows {
		if other.Email == u.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	r.s.users.put(u.ID, *u)
	return nil
}

func (r *UserRepository) GetByID(_ context.Context, id string) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if u, ok := r.s.users.get(id); ok {
		return &u, nil
	}
	return nil, nil
}

func (r *UserRepository) GetByIDs(_ context.Context, ids []string) ([]*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failure("users.GetByIDs"); err != nil {
		return nil, err
	}
	var out []*entity.User
	for _, id := range ids {
		if u, ok := r.s.users.get(id); ok {
			out = append(out, &u)
		}
	}
	return out, nil
}

func (r *UserRepository) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failure("users.GetByEmail"); err != nil {
		return nil, err
	}
	for _, u := range r.s.users.all() {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, nil
}

func (r *UserRepository) List(_ context.Context) ([]*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failure("users.List"); err != nil {
		return nil, err
	}
	rows := r.s.users.all()
	out := make([]*entity.User, 0, len(rows))
	for i := range rows {
		out = append(out, &rows[i])
	}
	return out, nil
}

func (r *UserRepository) Update(_ context.Context, u *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.users.put(u.ID, *u)
	return nil
}

func (r *UserRepository) Delete(_ context.Context, id string) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if u, ok := r.s.users.remove(id); ok {
		return &u, nil
	}
	return nil, nil
}

// CatalogRepository implementa repository.CatalogRepository para un CatalogKind.
type CatalogRepository struct {
	s    *Store
	kind entity.CatalogKind
}

func (r *CatalogRepository) Kind() entity.CatalogKind { return r.kind }

func (r *CatalogRepository) Create(_ context.Context, c *entity.Catalog) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failure(string(r.kind) + ".Create"); err != nil {
		return err
	}
	r.s.catalogs[r.kind].put(c.ID, *c)
	return nil
}

func (r *CatalogRepository) GetByID(_ context.Context, id string) (*entity.Catalog, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if c, ok := r.s.catalogs[r.kind].get(id); ok {
		return &c, nil
	}
	return nil, nil
}

func (r *CatalogRepository) GetByIDs(_ context.Context, ids []string) ([]*entity.Catalog, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.Catalog
	for _, id := range ids {
		if c, ok := r.s.catalogs[r.kind].get(id); ok {
			out = append(out, &c)
		}
	}
	return out, nil
}

func (r *CatalogRepository) List(_ context.Context) ([]*entity.Catalog, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failure(string(r.kind) + ".List"); err != nil {
		return nil, err
	}
	rows := r.s.catalogs[r.kind].all()
	out := make([]*entity.Catalog, 0, len(rows))
	for i := range rows {
		out = append(out, &rows[i])
	}
	return out, nil
}

func (r *CatalogRepository) Update(_ context.Context, c *entity.Catalog) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.catalogs[r.kind].put(c.ID, *c)
	return nil
}

func (r *CatalogRepository) Delete(_ context.Context, id string) (*entity.Catalog, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if c, ok := r.s.catalogs[r.kind].remove(id); ok {
		return &c, nil
	}
	return nil, nil
}

// InventoryRepository implementa repository.InventoryRepository.
type InventoryRepository struct{ s *Store }

func (r *InventoryRepository) Create(_ context.Context, i *entity.InventoryItem) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failure("inventory.Create"); err != nil {
		return err
	}
	r.s.inventory.put(i.ID, *i)
	return nil
}

func (r *InventoryRepository) GetByID(_ context.Context, id string) (*entity.InventoryItem, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if i, ok := r.s.inventory.get(id); ok {
		return &i, nil
	}
	return nil, nil
}

func (r *InventoryRepository) GetBySerial(_ context.Context, serial string) (*entity.InventoryItem, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, i := range r.s.inventory.all() {
		if i.Serial == serial {
			return &i, nil
		}
	}
	return nil, nil
}

func (r *InventoryRepository) List(_ context.Context) ([]*entity.InventoryItem, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failure("inventory.List"); err != nil {
		return nil, err
	}
	rows := r.s.inventory.all()
	out := make([]*entity.InventoryItem, 0, len(rows))
	for i := range rows {
		out = append(out, &rows[i])
	}
	return out, nil
}

func (r *InventoryRepository) Update(_ context.Context, i *entity.InventoryItem) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failure("inventory.Update"); err != nil {
		return err
	}
	r.s.inventory.put(i.ID, *i)
	return nil
}

func (r *InventoryRepository) Delete(_ context.Context, id string) (*entity.InventoryItem, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if i, ok := r.s.inventory.remove(id); ok {
		return &i, nil
	}
	return nil, nil
}
