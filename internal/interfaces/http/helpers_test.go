package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/inventario-equipos/internal/application/auth"
	"github.com/jhoicas/inventario-equipos/internal/application/dto"
	"github.com/jhoicas/inventario-equipos/internal/application/inventory"
	"github.com/jhoicas/inventario-equipos/internal/application/usecase"
	"github.com/jhoicas/inventario-equipos/internal/domain/entity"
	apphttp "github.com/jhoicas/inventario-equipos/internal/interfaces/http"
	"github.com/jhoicas/inventario-equipos/internal/testutil/memstore"
	pkgjwt "github.com/jhoicas/inventario-equipos/pkg/jwt"
	"github.com/jhoicas/inventario-equipos/pkg/logger"
	"github.com/jhoicas/inventario-equipos/pkg/password"
)

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testIssuer    = "inventario-equipos-test"
	adminID       = "00000000-0000-0000-0000-000000000001"
	docenteID     = "00000000-0000-0000-0000-000000000002"
)

type stubReport struct{}

func (stubReport) GenerateInventoryReport(_ context.Context, items []dto.InventoryDetailResponse) ([]byte, error) {
	return []byte("%PDF-1.3 equipos"), nil
}

type testServer struct {
	app    *fiber.App
	store  *memstore.Store
	tokens *pkgjwt.Manager
}

// newTestServer monta el router completo sobre el almacenamiento en memoria con
// un administrador y un docente ya creados (password "secreta").
func newTestServer(t *testing.T) *testServer {
	t.Helper()
	store := memstore.New()
	hasher := password.NewBcrypt(bcrypt.MinCost)
	tokens, err := pkgjwt.New(testJWTSecret, time.Hour, testIssuer)
	require.NoError(t, err)

	hash, err := hasher.Hash("secreta")
	require.NoError(t, err)
	ctx := context.Background()
	now := time.Now()
	require.NoError(t, store.Users().Create(ctx, &entity.User{
		ID: adminID, Name: "Admin", Email: "admin@iue.edu.co", PasswordHash: hash,
		Status: entity.StatusActivo, Role: entity.RoleAdministrador, CreatedAt: now, UpdatedAt: now,
	}))
	require.NoError(t, store.Users().Create(ctx, &entity.User{
		ID: docenteID, Name: "Docente", Email: "docente@iue.edu.co", PasswordHash: hash,
		Status: entity.StatusActivo, Role: entity.RoleDocente, CreatedAt: now, UpdatedAt: now,
	}))

	var catalogUCs []*usecase.CatalogUseCase
	for _, kind := range []entity.CatalogKind{entity.KindMarca, entity.KindTipoEquipo, entity.KindEstadoEquipo} {
		catalogUCs = append(catalogUCs, usecase.NewCatalogUseCase(store.Catalog(kind)))
	}
	inventoryUC := inventory.NewInventoryUseCase(store, store.Inventory(), store.Users(),
		store.Catalog(entity.KindMarca), store.Catalog(entity.KindTipoEquipo), store.Catalog(entity.KindEstadoEquipo))

	app := fiber.New(fiber.Config{ErrorHandler: apphttp.ErrorHandler(logger.Nop())})
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:      auth.NewAuthUseCase(store.Users(), hasher, tokens),
		UserUC:      usecase.NewUserUseCase(store.Users(), hasher),
		CatalogUCs:  catalogUCs,
		InventoryUC: inventoryUC,
		ReportUC:    inventory.NewReportUseCase(inventoryUC, stubReport{}),
		Tokens:      tokens,
		Log:         logger.Nop(),
	})
	return &testServer{app: app, store: store, tokens: tokens}
}

func (s *testServer) token(t *testing.T, userID, role string) string {
	t.Helper()
	tok, err := s.tokens.Issue(pkgjwt.Subject{UserID: userID, Role: role})
	require.NoError(t, err)
	return tok
}

func (s *testServer) adminToken(t *testing.T) string {
	return s.token(t, adminID, entity.RoleAdministrador)
}

func (s *testServer) docenteToken(t *testing.T) string {
	return s.token(t, docenteID, entity.RoleDocente)
}

// do lanza la petición; body se serializa a JSON salvo que ya sea string.
func (s *testServer) do(t *testing.T, method, path, token string, body any) *http.Response {
	t.Helper()
	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	resp, err := s.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(raw)
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}
