package main

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/inventario-equipos/internal/application/dto"
	"github.com/jhoicas/inventario-equipos/internal/application/usecase"
	"github.com/jhoicas/inventario-equipos/internal/domain"
	"github.com/jhoicas/inventario-equipos/internal/domain/entity"
	"github.com/jhoicas/inventario-equipos/pkg/logger"
)

// seedRow una línea del CSV: tipo;nombre;estado.
type seedRow struct {
	Kind   entity.CatalogKind
	Name   string
	Status string
}

// parseCSV lee las filas de catálogo. Las líneas vacías y las que empiezan con '#'
// se ignoran; una primera fila "tipo;nombre;estado" se toma como encabezado.
func parseCSV(r io.Reader, latin1 bool) ([]seedRow, error) {
	if latin1 {
		r = transform.NewReader(r, charmap.ISO8859_1.NewDecoder())
	}
	cr := csv.NewReader(r)
	cr.Comma = ';'
	cr.Comment = '#'
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	var rows []seedRow
	for line := 1; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("leer CSV: %w", err)
		}
		if line == 1 && strings.EqualFold(strings.TrimSpace(rec[0]), "tipo") {
			continue
		}
		if len(rec) < 2 {
			return nil, fmt.Errorf("línea %d: se esperaban tipo;nombre[;estado]", line)
		}
		kind := entity.CatalogKind(strings.ToLower(strings.TrimSpace(rec[0])))
		if !kind.Valid() {
			return nil, fmt.Errorf("línea %d: tipo desconocido %q", line, rec[0])
		}
		status := entity.StatusActivo
		if len(rec) > 2 && strings.TrimSpace(rec[2]) != "" {
			status = strings.TrimSpace(rec[2])
		}
		rows = append(rows, seedRow{Kind: kind, Name: strings.TrimSpace(rec[1]), Status: status})
	}
	return rows, nil
}

type adminSeed struct {
	Name     string
	Email    string
	Password string
}

// seeder crea catálogos y el administrador inicial a través de los casos de uso.
type seeder struct {
	catalogs map[entity.CatalogKind]*usecase.CatalogUseCase
	users    *usecase.UserUseCase
	log      *logger.Logger
}

func newSeeder(users *usecase.UserUseCase, log *logger.Logger, catalogs ...*usecase.CatalogUseCase) *seeder {
	byKind := make(map[entity.CatalogKind]*usecase.CatalogUseCase, len(catalogs))
	for _, uc := range catalogs {
		byKind[uc.Kind()] = uc
	}
	return &seeder{catalogs: byKind, users: users, log: log}
}

// seedCatalogs crea las filas que no existan aún por nombre y devuelve cuántas creó.
func (s *seeder) seedCatalogs(ctx context.Context, rows []seedRow) (int, error) {
	existing := make(map[entity.CatalogKind]map[string]bool, len(s.catalogs))
	created := 0
	for _, row := range rows {
		uc, ok := s.catalogs[row.Kind]
		if !ok {
			return created, fmt.Errorf("sin caso de uso para %s", row.Kind)
		}
		names, ok := existing[row.Kind]
		if !ok {
			list, err := uc.List(ctx)
			if err != nil {
				return created, fmt.Errorf("listar %s: %w", row.Kind, err)
			}
			names = make(map[string]bool, len(list))
			for _, c := range list {
				names[strings.ToLower(c.Name)] = true
			}
			existing[row.Kind] = names
		}
		if names[strings.ToLower(row.Name)] {
			s.log.Debug().Str("kind", string(row.Kind)).Str("nombre", row.Name).Msg("ya existe, se omite")
			continue
		}
		if _, err := uc.Create(ctx, dto.CatalogRequest{Name: row.Name, Status: row.Status}); err != nil {
			return created, fmt.Errorf("crear %s %q: %w", row.Kind, row.Name, err)
		}
		names[strings.ToLower(row.Name)] = true
		created++
	}
	return created, nil
}

// seedAdmin crea el administrador. Un email ya registrado no es error.
func (s *seeder) seedAdmin(ctx context.Context, in adminSeed) (bool, error) {
	_, err := s.users.Create(ctx, dto.CreateUserRequest{
		Name:     in.Name,
		Email:    in.Email,
		Password: in.Password,
		Role:     entity.RoleAdministrador,
		Status:   entity.StatusActivo,
	})
	if errors.Is(err, domain.ErrConflict) {
		s.log.Info().Str("email", in.Email).Msg("administrador ya existe")
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("crear administrador: %w", err)
	}
	return true, nil
}
