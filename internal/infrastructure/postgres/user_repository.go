package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/inventario-equipos/internal/domain"
	"github.com/jhoicas/inventario-equipos/internal/domain/entity"
	"github.com/jhoicas/inventario-equipos/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

const userColumns = `id, nombre, email, password_hash, estado, rol, fecha_creacion, fecha_actualizacion`

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador de persistencia para usuarios. Pasar pool o tx.
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

// Create persiste un nuevo usuario.
func (r *UserRepo) Create(ctx context.Context, user *entity.User) error {
	query := `
		INSERT INTO usuarios (` + userColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		user.ID, user.Name, user.Email, user.PasswordHash, user.Status, user.Role,
		user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID.
func (r *UserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	if !isValidID(id) {
		return nil, nil
	}
	return queryOne(ctx, r.q, scanUser, "get user by id",
		`SELECT `+userColumns+` FROM usuarios WHERE id = $1`, id)
}

// GetByIDs obtiene los usuarios existentes entre ids. Los ausentes simplemente no aparecen.
func (r *UserRepo) GetByIDs(ctx context.Context, ids []string) ([]*entity.User, error) {
	ids = validIDs(ids)
	if len(ids) == 0 {
		return nil, nil
	}
	return queryAll(ctx, r.q, scanUser, "get users by ids",
		`SELECT `+userColumns+` FROM usuarios WHERE id = ANY($1)`, ids)
}

// GetByEmail obtiene un usuario por email ya normalizado.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return queryOne(ctx, r.q, scanUser, "get user by email",
		`SELECT `+userColumns+` FROM usuarios WHERE email = $1`, email)
}

// List devuelve todos los usuarios en orden de creación.
func (r *UserRepo) List(ctx context.Context) ([]*entity.User, error) {
	return queryAll(ctx, r.q, scanUser, "list users",
		`SELECT `+userColumns+` FROM usuarios ORDER BY fecha_creacion, id`)
}

// Update actualiza los campos editables del usuario.
func (r *UserRepo) Update(ctx context.Context, user *entity.User) error {
	query := `
		UPDATE usuarios
		SET nombre = $2, email = $3, password_hash = $4, estado = $5, rol = $6, fecha_actualizacion = $7
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		user.ID, user.Name, user.Email, user.PasswordHash, user.Status, user.Role, user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("update user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.NewNotFound("Usuario")
	}
	return nil
}

// Delete elimina el usuario y devuelve la fila borrada; (nil, nil) si no existía.
func (r *UserRepo) Delete(ctx context.Context, id string) (*entity.User, error) {
	if !isValidID(id) {
		return nil, nil
	}
	return queryOne(ctx, r.q, scanUser, "delete user",
		`DELETE FROM usuarios WHERE id = $1 RETURNING `+userColumns, id)
}

func scanUser(row scanner) (*entity.User, error) {
	var u entity.User
	err := row.Scan(
		&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Status, &u.Role,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}
