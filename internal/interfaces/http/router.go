package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-equipos/internal/application/auth"
	"github.com/jhoicas/inventario-equipos/internal/application/inventory"
	"github.com/jhoicas/inventario-equipos/internal/application/ports"
	"github.com/jhoicas/inventario-equipos/internal/application/usecase"
	"github.com/jhoicas/inventario-equipos/internal/domain/entity"
	"github.com/jhoicas/inventario-equipos/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	UserUC      *usecase.UserUseCase
	CatalogUCs  []*usecase.CatalogUseCase // uno por entidad de catálogo
	InventoryUC *inventory.InventoryUseCase
	ReportUC    *inventory.ReportUseCase
	Tokens      ports.TokenVerifier
	Log         *logger.Logger
}

// Router registra las rutas de la API. Las escrituras administrativas encadenan
// RequireAuth y RequireRole; el listado y el reporte de inventario solo exigen token.
func Router(app *fiber.App, deps RouterDeps) {
	authn := RequireAuth(deps.Tokens, deps.Log)
	admin := RequireRole(entity.RoleAdministrador)

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC, deps.Log)
	app.Post("/auth", authHandler.Login)

	// Usuarios: alta pública, el resto administrativo
	users := app.Group("/usuario")
	userHandler := NewUserHandler(deps.UserUC, deps.Log)
	users.Post("/", userHandler.Create)
	users.Get("/", authn, admin, userHandler.List)
	users.Put("/:id", authn, admin, userHandler.Update)
	users.Delete("/:id", authn, admin, userHandler.Delete)

	// Catálogos (marca, tipo-equipo, estado-equipo)
	for _, uc := range deps.CatalogUCs {
		catalog := app.Group("/"+string(uc.Kind()), authn, admin)
		h := NewCatalogHandler(uc, deps.Log)
		catalog.Post("/", h.Create)
		catalog.Get("/", h.List)
		catalog.Put("/:id", h.Update)
		catalog.Delete("/:id", h.Delete)
	}

	// Inventario
	inv := app.Group("/inventario", authn)
	invHandler := NewInventoryHandler(deps.InventoryUC, deps.ReportUC, deps.Log)
	inv.Get("/", invHandler.List)
	if deps.ReportUC != nil {
		inv.Get("/reporte", invHandler.Report)
	}
	inv.Post("/", admin, invHandler.Create)
	inv.Put("/:id", admin, invHandler.Update)
	inv.Delete("/:id", admin, invHandler.Delete)
}
