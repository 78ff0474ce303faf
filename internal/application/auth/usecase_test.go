package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/inventario-equipos/internal/application/auth"
	"github.com/jhoicas/inventario-equipos/internal/application/dto"
	"github.com/jhoicas/inventario-equipos/internal/domain"
	"github.com/jhoicas/inventario-equipos/internal/domain/entity"
	"github.com/jhoicas/inventario-equipos/internal/testutil/memstore"
	"github.com/jhoicas/inventario-equipos/pkg/jwt"
	"github.com/jhoicas/inventario-equipos/pkg/password"
)

func setup(t *testing.T, status string) (*auth.AuthUseCase, *jwt.Manager) {
	t.Helper()
	store := memstore.New()
	hasher := password.NewBcrypt(bcrypt.MinCost)
	hash, err := hasher.Hash("secreta")
	require.NoError(t, err)
	require.NoError(t, store.Users().Create(context.Background(), &entity.User{
		ID: "u-1", Name: "Ana", Email: "ana@iue.edu.co", PasswordHash: hash,
		Status: status, Role: entity.RoleAdministrador,
	}))
	tokens, err := jwt.New("secreto-de-prueba", time.Hour, "test")
	require.NoError(t, err)
	return auth.NewAuthUseCase(store.Users(), hasher, tokens), tokens
}

func TestLogin_OK(t *testing.T) {
	uc, tokens := setup(t, entity.StatusActivo)

	out, err := uc.Login(context.Background(), dto.LoginRequest{Email: "Ana@iue.edu.co", Password: "secreta"})
	require.NoError(t, err)
	assert.Equal(t, "u-1", out.ID)
	assert.Equal(t, "Ana", out.Name)
	assert.Equal(t, "Administrador", out.Role)

	sub, err := tokens.Verify(out.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, jwt.Subject{UserID: "u-1", Role: "Administrador"}, sub)
}

func TestLogin_CredencialesInvalidas(t *testing.T) {
	uc, _ := setup(t, entity.StatusActivo)

	_, err := uc.Login(context.Background(), dto.LoginRequest{Email: "ana@iue.edu.co", Password: "otra"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = uc.Login(context.Background(), dto.LoginRequest{Email: "nadie@iue.edu.co", Password: "secreta"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLogin_UsuarioInactivoPuedeEntrar(t *testing.T) {
	uc, _ := setup(t, entity.StatusInactivo)
	_, err := uc.Login(context.Background(), dto.LoginRequest{Email: "ana@iue.edu.co", Password: "secreta"})
	assert.NoError(t, err)
}

func TestLogin_EntradaInvalida(t *testing.T) {
	uc, _ := setup(t, entity.StatusActivo)
	_, err := uc.Login(context.Background(), dto.LoginRequest{Email: "no-es-email"})
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Fields, 2)
}

func TestLogin_EmailConEspacios(t *testing.T) {
	uc, _ := setup(t, entity.StatusActivo)

	out, err := uc.Login(context.Background(), dto.LoginRequest{Email: "  ANA@iue.edu.co ", Password: "secreta"})
	require.NoError(t, err)
	assert.Equal(t, "u-1", out.ID)
}
