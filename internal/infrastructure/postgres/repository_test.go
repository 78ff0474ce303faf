package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-equipos/internal/domain"
	"github.com/jhoicas/inventario-equipos/internal/domain/entity"
)

const validID = "8d7b5c2e-6f4a-4c1e-9b1a-0f3e2d1c4b5a"

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, isUniqueViolation(&pgconn.PgError{Code: "23505"}))
	assert.False(t, isUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, isUniqueViolation(errors.New("conexión cerrada")))
}

func TestLockReference(t *testing.T) {
	ctx := context.Background()

	t.Run("existe y bloquea", func(t *testing.T) {
		q := &fakeQuerier{row: fakeRow{vals: []any{1}}}
		ok, err := NewReferenceLocker(q).LockReference(ctx, entity.Reference{Kind: entity.RefMarca, ID: validID})
		require.NoError(t, err)
		assert.True(t, ok)
		require.Len(t, q.sql, 1)
		assert.Contains(t, q.sql[0], "FROM marcas")
		assert.Contains(t, q.sql[0], "FOR SHARE")
		assert.Equal(t, []any{validID}, q.args[0])
	})

	t.Run("usuario inexistente", func(t *testing.T) {
		q := &fakeQuerier{row: fakeRow{err: pgx.ErrNoRows}}
		ok, err := NewReferenceLocker(q).LockReference(ctx, entity.Reference{Kind: entity.RefUsuario, ID: validID})
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Contains(t, q.sql[0], "FROM usuarios")
	})

	t.Run("id con formato inválido no consulta", func(t *testing.T) {
		q := &fakeQuerier{}
		ok, err := NewReferenceLocker(q).LockReference(ctx, entity.Reference{Kind: entity.RefTipoEquipo, ID: "abc"})
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Empty(t, q.sql)
	})

	t.Run("error de DB", func(t *testing.T) {
		q := &fakeQuerier{row: fakeRow{err: errors.New("timeout")}}
		_, err := NewReferenceLocker(q).LockReference(ctx, entity.Reference{Kind: entity.RefEstadoEquipo, ID: validID})
		assert.ErrorContains(t, err, "timeout")
		assert.Contains(t, q.sql[0], "FROM estados_equipo")
	})

	t.Run("tipo desconocido", func(t *testing.T) {
		_, err := NewReferenceLocker(&fakeQuerier{}).LockReference(ctx, entity.Reference{Kind: "bodega", ID: validID})
		assert.Error(t, err)
	})
}

func TestUserRepo_CreateEmailDuplicado(t *testing.T) {
	q := &fakeQuerier{execErr: &pgconn.PgError{Code: "23505"}}
	err := NewUserRepository(q).Create(context.Background(), &entity.User{ID: validID, Email: "a@b.co"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestUserRepo_GetByID(t *testing.T) {
	now := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	q := &fakeQuerier{row: fakeRow{vals: []any{
		validID, "Ana", "ana@iue.edu.co", "$2a$hash", "Activo", "Docente", now, now,
	}}}

	u, err := NewUserRepository(q).GetByID(context.Background(), validID)
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, "Ana", u.Name)
	assert.Equal(t, "Docente", u.Role)
	assert.Equal(t, now, u.CreatedAt)
}

func TestUserRepo_GetByIDNoExiste(t *testing.T) {
	q := &fakeQuerier{row: fakeRow{err: pgx.ErrNoRows}}
	u, err := NewUserRepository(q).GetByID(context.Background(), validID)
	require.NoError(t, err)
	assert.Nil(t, u)

	u, err = NewUserRepository(q).GetByID(context.Background(), "no-uuid")
	require.NoError(t, err)
	assert.Nil(t, u)
	assert.Len(t, q.sql, 1)
}

func TestUserRepo_GetByIDsSinIDsValidos(t *testing.T) {
	q := &fakeQuerier{}
	list, err := NewUserRepository(q).GetByIDs(context.Background(), []string{"x", ""})
	require.NoError(t, err)
	assert.Empty(t, list)
	assert.Empty(t, q.sql)
}

func TestCatalogRepo(t *testing.T) {
	_, err := NewCatalogRepository(&fakeQuerier{}, "bodega")
	assert.Error(t, err)

	q := &fakeQuerier{execTag: pgconn.NewCommandTag("UPDATE 0")}
	repo, err := NewCatalogRepository(q, entity.KindTipoEquipo)
	require.NoError(t, err)
	assert.Equal(t, entity.KindTipoEquipo, repo.Kind())

	err = repo.Update(context.Background(), &entity.Catalog{ID: validID, Name: "Portátil", Status: "Activo"})
	assert.EqualError(t, err, "Tipo equipo no existe")
	assert.Contains(t, q.sql[0], "UPDATE tipos_equipo")
}

func TestCatalogRepo_DeleteDevuelveFila(t *testing.T) {
	now := time.Now()
	q := &fakeQuerier{row: fakeRow{vals: []any{validID, "HP", "Activo", now, now}}}
	repo, err := NewCatalogRepository(q, entity.KindMarca)
	require.NoError(t, err)

	c, err := repo.Delete(context.Background(), validID)
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.Equal(t, entity.KindMarca, c.Kind)
	assert.Equal(t, "HP", c.Name)
	assert.Contains(t, q.sql[0], "DELETE FROM marcas")
	assert.Contains(t, q.sql[0], "RETURNING")
}

func TestInventoryRepo_SerialDuplicado(t *testing.T) {
	q := &fakeQuerier{execErr: &pgconn.PgError{Code: "23505"}}
	repo := NewInventoryRepository(q)
	item := &entity.InventoryItem{ID: validID, Serial: "SN-1", Price: decimal.NewFromInt(10)}

	assert.ErrorIs(t, repo.Create(context.Background(), item), domain.ErrSerialAlreadyExists)
	assert.ErrorIs(t, repo.Update(context.Background(), item), domain.ErrSerialAlreadyExists)
}

func TestInventoryRepo_UpdateNoExiste(t *testing.T) {
	q := &fakeQuerier{execTag: pgconn.NewCommandTag("UPDATE 0")}
	err := NewInventoryRepository(q).Update(context.Background(), &entity.InventoryItem{ID: validID})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.EqualError(t, err, "Inventario no existe")
}

func TestInventoryRepo_GetBySerial(t *testing.T) {
	now := time.Now()
	price := decimal.RequireFromString("1999.99")
	q := &fakeQuerier{row: fakeRow{vals: []any{
		validID, "SN-1", "Latitude", "Portátil", "Negro", "foto.png", now, price,
		"u", "m", "t", "s", now, now,
	}}}

	item, err := NewInventoryRepository(q).GetBySerial(context.Background(), "SN-1")
	require.NoError(t, err)
	require.NotNil(t, item)
	assert.True(t, item.Price.Equal(price))
	assert.Equal(t, "m", item.BrandID)
	assert.Equal(t, []any{"SN-1"}, q.args[0])
}

func TestQueryAll_ErrorDeConsulta(t *testing.T) {
	q := &fakeQuerier{rowsErr: errors.New("relation does not exist")}
	_, err := NewInventoryRepository(q).List(context.Background())
	assert.ErrorContains(t, err, "list inventario")
	assert.Contains(t, q.sql[0], "ORDER BY fecha_creacion, id")
}
