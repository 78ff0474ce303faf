package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/inventario-equipos/docs"
	"github.com/jhoicas/inventario-equipos/internal/application/auth"
	"github.com/jhoicas/inventario-equipos/internal/application/inventory"
	"github.com/jhoicas/inventario-equipos/internal/application/usecase"
	"github.com/jhoicas/inventario-equipos/internal/domain/entity"
	"github.com/jhoicas/inventario-equipos/internal/domain/repository"
	infrapdf "github.com/jhoicas/inventario-equipos/internal/infrastructure/pdf"
	"github.com/jhoicas/inventario-equipos/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/inventario-equipos/internal/interfaces/http"
	"github.com/jhoicas/inventario-equipos/pkg/config"
	"github.com/jhoicas/inventario-equipos/pkg/jwt"
	"github.com/jhoicas/inventario-equipos/pkg/logger"
	"github.com/jhoicas/inventario-equipos/pkg/password"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if cfg.DB.AutoMigrate {
		if err := postgres.MigratePool(ctx, pool); err != nil {
			log.Fatal().Err(err).Msg("migraciones")
		}
		log.Info().Msg("migraciones aplicadas")
	}

	userRepo := postgres.NewUserRepository(pool)
	inventoryRepo := postgres.NewInventoryRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	var (
		catalogRepos []repository.CatalogRepository
		catalogUCs   []*usecase.CatalogUseCase
	)
	for _, kind := range []entity.CatalogKind{entity.KindMarca, entity.KindTipoEquipo, entity.KindEstadoEquipo} {
		repo, err := postgres.NewCatalogRepository(pool, kind)
		if err != nil {
			log.Fatal().Err(err).Str("kind", string(kind)).Msg("repositorio de catálogo")
		}
		catalogRepos = append(catalogRepos, repo)
		catalogUCs = append(catalogUCs, usecase.NewCatalogUseCase(repo))
	}

	tokens, err := jwt.New(cfg.JWT.Secret, cfg.JWT.TTL(), cfg.JWT.Issuer)
	if err != nil {
		log.Fatal().Err(err).Msg("emisor de tokens")
	}
	hasher := password.NewBcrypt(cfg.Security.BcryptCost)

	inventoryUC := inventory.NewInventoryUseCase(txRunner, inventoryRepo, userRepo, catalogRepos...)
	reportUC := inventory.NewReportUseCase(inventoryUC, infrapdf.NewMarotoReportGenerator(""))

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: httpRouter.ErrorHandler(log),
	})
	app.Use(recover.New())
	app.Use(cors.New())
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat(cfg.App.SwaggerPath); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: cfg.App.SwaggerPath,
			Path:     "docs",
			Title:    "Inventario de equipos API",
		}))
	} else {
		log.Warn().Str("path", cfg.App.SwaggerPath).Msg("swagger.json no encontrado, /docs deshabilitado")
	}
	app.Get("/openapi.json", func(c *fiber.Ctx) error {
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSONCharsetUTF8)
		return c.Send(docs.JSON())
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      auth.NewAuthUseCase(userRepo, hasher, tokens),
		UserUC:      usecase.NewUserUseCase(userRepo, hasher),
		CatalogUCs:  catalogUCs,
		InventoryUC: inventoryUC,
		ReportUC:    reportUC,
		Tokens:      tokens,
		Log:         log,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
