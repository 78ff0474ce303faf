// seed carga catálogos (marca, tipo-equipo, estado-equipo) desde un CSV y
// opcionalmente crea el usuario administrador inicial.
//
// Uso: go run ./cmd/seed -file catalogos.csv [-latin1] [-admin-email a@b.co -admin-password x]
// Formato del CSV: tipo;nombre;estado (estado por defecto Activo).
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/jhoicas/inventario-equipos/internal/application/usecase"
	"github.com/jhoicas/inventario-equipos/internal/domain/entity"
	"github.com/jhoicas/inventario-equipos/internal/infrastructure/postgres"
	"github.com/jhoicas/inventario-equipos/pkg/config"
	"github.com/jhoicas/inventario-equipos/pkg/logger"
	"github.com/jhoicas/inventario-equipos/pkg/password"
)

func main() {
	file := flag.String("file", "", "CSV con tipo;nombre;estado")
	latin1 := flag.Bool("latin1", false, "el CSV está codificado en ISO-8859-1")
	adminName := flag.String("admin-name", "Administrador", "nombre del administrador")
	adminEmail := flag.String("admin-email", "", "email del administrador a crear")
	adminPassword := flag.String("admin-password", "", "password del administrador")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()
	if err := postgres.MigratePool(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}

	var catalogUCs []*usecase.CatalogUseCase
	for _, kind := range []entity.CatalogKind{entity.KindMarca, entity.KindTipoEquipo, entity.KindEstadoEquipo} {
		repo, err := postgres.NewCatalogRepository(pool, kind)
		if err != nil {
			log.Fatal().Err(err).Msg("repositorio de catálogo")
		}
		catalogUCs = append(catalogUCs, usecase.NewCatalogUseCase(repo))
	}
	userUC := usecase.NewUserUseCase(postgres.NewUserRepository(pool), password.NewBcrypt(cfg.Security.BcryptCost))
	s := newSeeder(userUC, log, catalogUCs...)

	if *file != "" {
		f, err := os.Open(*file)
		if err != nil {
			log.Fatal().Err(err).Msg("abrir CSV")
		}
		rows, err := parseCSV(f, *latin1)
		f.Close()
		if err != nil {
			log.Fatal().Err(err).Msg("CSV inválido")
		}
		n, err := s.seedCatalogs(ctx, rows)
		if err != nil {
			log.Fatal().Err(err).Int("creados", n).Msg("cargar catálogos")
		}
		log.Info().Int("leidos", len(rows)).Int("creados", n).Msg("catálogos cargados")
	}

	if *adminEmail != "" {
		created, err := s.seedAdmin(ctx, adminSeed{Name: *adminName, Email: *adminEmail, Password: *adminPassword})
		if err != nil {
			log.Fatal().Err(err).Msg("administrador")
		}
		if created {
			log.Info().Str("email", *adminEmail).Msg("administrador creado")
		}
	}
}
