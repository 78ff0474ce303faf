package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/inventario-equipos/internal/application/dto"
	"github.com/jhoicas/inventario-equipos/internal/domain"
	"github.com/jhoicas/inventario-equipos/internal/domain/entity"
	"github.com/jhoicas/inventario-equipos/internal/domain/repository"
)

// CatalogUseCase CRUD de una entidad de catálogo. Marca, TipoEquipo y EstadoEquipo
// comparten este caso de uso; el repositorio decide la entidad.
type CatalogUseCase struct {
	repo repository.CatalogRepository
}

// NewCatalogUseCase construye el caso de uso para el catálogo del repositorio.
func NewCatalogUseCase(repo repository.CatalogRepository) *CatalogUseCase {
	return &CatalogUseCase{repo: repo}
}

// Kind devuelve la entidad de catálogo que administra este caso de uso.
func (uc *CatalogUseCase) Kind() entity.CatalogKind {
	return uc.repo.Kind()
}

// Create valida y persiste un nuevo registro.
func (uc *CatalogUseCase) Create(ctx context.Context, in dto.CatalogRequest) (*dto.CatalogResponse, error) {
	if err := dto.Validate(&in); err != nil {
		return nil, err
	}
	now := time.Now()
	c := &entity.Catalog{
		ID:        uuid.New().String(),
		Kind:      uc.repo.Kind(),
		Name:      in.Name,
		Status:    in.Status,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return toCatalogResponse(c), nil
}

// List devuelve todos los registros en orden de almacenamiento.
func (uc *CatalogUseCase) List(ctx context.Context) ([]dto.CatalogResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CatalogResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCatalogResponse(c))
	}
	return items, nil
}

// Update sobrescribe nombre y estado.
func (uc *CatalogUseCase) Update(ctx context.Context, id string, in dto.CatalogRequest) (*dto.CatalogResponse, error) {
	if err := dto.Validate(&in); err != nil {
		return nil, err
	}
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.NewNotFound(uc.repo.Kind().Label())
	}
	c.Name = in.Name
	c.Status = in.Status
	c.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return toCatalogResponse(c), nil
}

// Delete elimina el registro aunque haya equipos que lo referencien; el listado
// de inventario mostrará esa referencia como null.
func (uc *CatalogUseCase) Delete(ctx context.Context, id string) (*dto.CatalogResponse, error) {
	c, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.NewNotFound(uc.repo.Kind().Label())
	}
	return toCatalogResponse(c), nil
}

func toCatalogResponse(c *entity.Catalog) *dto.CatalogResponse {
	if c == nil {
		return nil
	}
	return &dto.CatalogResponse{
		ID:        c.ID,
		Name:      c.Name,
		Status:    c.Status,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
