package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/inventario-equipos/internal/application/dto"
	"github.com/jhoicas/inventario-equipos/internal/domain"
	"github.com/jhoicas/inventario-equipos/internal/domain/entity"
	"github.com/jhoicas/inventario-equipos/internal/domain/repository"
)

const inventoryLabel = "Inventario"

// InventoryUseCase mantiene la consistencia de los equipos con sus cuatro referencias
// (usuario, marca, tipoEquipo, estadoEquipo): las valida al escribir y las expande al leer.
type InventoryUseCase struct {
	txRunner TxRunner
	items    repository.InventoryRepository
	users    repository.UserRepository
	catalogs map[entity.CatalogKind]repository.CatalogRepository
}

// NewInventoryUseCase construye el caso de uso. catalogs debe incluir un repositorio
// por cada CatalogKind (marca, tipo-equipo, estado-equipo).
func NewInventoryUseCase(
	txRunner TxRunner,
	items repository.InventoryRepository,
	users repository.UserRepository,
	catalogs ...repository.CatalogRepository,
) *InventoryUseCase {
	byKind := make(map[entity.CatalogKind]repository.CatalogRepository, len(catalogs))
	for _, c := range catalogs {
		byKind[c.Kind()] = c
	}
	return &InventoryUseCase{
		txRunner: txRunner,
		items:    items,
		users:    users,
		catalogs: byKind,
	}
}

// Create valida la entrada y, dentro de una transacción, comprueba serial único,
// bloquea las cuatro referencias y persiste. Cualquier fallo deja el almacenamiento intacto.
func (uc *InventoryUseCase) Create(ctx context.Context, in dto.InventoryRequest) (*dto.InventoryResponse, error) {
	if err := dto.Validate(&in); err != nil {
		return nil, err
	}
	now := time.Now()
	item := &entity.InventoryItem{ID: uuid.New().String(), CreatedAt: now}
	if err := applyRequest(item, in, now); err != nil {
		return nil, err
	}

	err := uc.txRunner.RunInventory(ctx, func(items repository.InventoryRepository, refs repository.ReferenceLocker) error {
		if err := checkSerial(ctx, items, item); err != nil {
			return err
		}
		if err := lockReferences(ctx, refs, item); err != nil {
			return err
		}
		return items.Create(ctx, item)
	})
	if err != nil {
		return nil, err
	}
	return toInventoryResponse(item), nil
}

// Update sobrescribe los campos del equipo id con las mismas reglas de Create.
// El serial puede conservarse; solo colisiona con otro equipo.
func (uc *InventoryUseCase) Update(ctx context.Context, id string, in dto.InventoryRequest) (*dto.InventoryResponse, error) {
	if err := dto.Validate(&in); err != nil {
		return nil, err
	}
	var out *entity.InventoryItem
	err := uc.txRunner.RunInventory(ctx, func(items repository.InventoryRepository, refs repository.ReferenceLocker) error {
		item, err := items.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.NewNotFound(inventoryLabel)
		}
		if err := applyRequest(item, in, time.Now()); err != nil {
			return err
		}
		if err := checkSerial(ctx, items, item); err != nil {
			return err
		}
		if err := lockReferences(ctx, refs, item); err != nil {
			return err
		}
		if err := items.Update(ctx, item); err != nil {
			return err
		}
		out = item
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toInventoryResponse(out), nil
}

// Delete elimina el equipo y lo devuelve.
func (uc *InventoryUseCase) Delete(ctx context.Context, id string) (*dto.InventoryResponse, error) {
	item, err := uc.items.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.NewNotFound(inventoryLabel)
	}
	return toInventoryResponse(item), nil
}

// List devuelve todos los equipos con sus referencias expandidas. Cada entidad referenciada
// se carga una sola vez por tipo; una referencia a una entidad borrada queda en null.
func (uc *InventoryUseCase) List(ctx context.Context) ([]dto.InventoryDetailResponse, error) {
	list, err := uc.items.List(ctx)
	if err != nil {
		return nil, err
	}

	userIDs := make([]string, 0, len(list))
	catalogIDs := make(map[entity.CatalogKind][]string, len(uc.catalogs))
	for _, item := range list {
		for _, ref := range item.References() {
			if kind, ok := ref.Kind.CatalogKind(); ok {
				catalogIDs[kind] = appendUnique(catalogIDs[kind], ref.ID)
				continue
			}
			userIDs = appendUnique(userIDs, ref.ID)
		}
	}

	users := map[string]*dto.UserRef{}
	if len(userIDs) > 0 {
		found, err := uc.users.GetByIDs(ctx, userIDs)
		if err != nil {
			return nil, fmt.Errorf("inventario: cargar usuarios: %w", err)
		}
		for _, u := range found {
			users[u.ID] = &dto.UserRef{ID: u.ID, Name: u.Name, Email: u.Email, Status: u.Status}
		}
	}

	catalogs := make(map[entity.CatalogKind]map[string]*dto.CatalogRef, len(uc.catalogs))
	for kind, ids := range catalogIDs {
		repo, ok := uc.catalogs[kind]
		if !ok {
			return nil, fmt.Errorf("inventario: sin repositorio para %s", kind)
		}
		found, err := repo.GetByIDs(ctx, ids)
		if err != nil {
			return nil, fmt.Errorf("inventario: cargar %s: %w", kind, err)
		}
		byID := make(map[string]*dto.CatalogRef, len(found))
		for _, c := range found {
			byID[c.ID] = &dto.CatalogRef{ID: c.ID, Name: c.Name, Status: c.Status}
		}
		catalogs[kind] = byID
	}

	out := make([]dto.InventoryDetailResponse, 0, len(list))
	for _, item := range list {
		out = append(out, dto.InventoryDetailResponse{
			ID:           item.ID,
			Serial:       item.Serial,
			Model:        item.Model,
			Description:  item.Description,
			Color:        item.Color,
			Photo:        item.Photo,
			PurchaseDate: item.PurchaseDate,
			Price:        item.Price,
			User:         users[item.UserID],
			Brand:        catalogs[entity.KindMarca][item.BrandID],
			Type:         catalogs[entity.KindTipoEquipo][item.TypeID],
			Status:       catalogs[entity.KindEstadoEquipo][item.StatusID],
			CreatedAt:    item.CreatedAt,
			UpdatedAt:    item.UpdatedAt,
		})
	}
	return out, nil
}

// applyRequest copia la entrada ya validada sobre item.
func applyRequest(item *entity.InventoryItem, in dto.InventoryRequest, now time.Time) error {
	purchased, err := dto.ParseDate(in.PurchaseDate)
	if err != nil {
		return &domain.ValidationError{Fields: []domain.FieldError{domain.NewFieldError("fechaCompra", in.PurchaseDate)}}
	}
	item.Serial = in.Serial
	item.Model = in.Model
	item.Description = in.Description
	item.Color = in.Color
	item.Photo = in.Photo
	item.PurchaseDate = purchased
	item.Price = *in.Price
	item.UserID = string(in.User)
	item.BrandID = string(in.Brand)
	item.TypeID = string(in.Type)
	item.StatusID = string(in.Status)
	item.UpdatedAt = now
	return nil
}

func checkSerial(ctx context.Context, items repository.InventoryRepository, item *entity.InventoryItem) error {
	existing, err := items.GetBySerial(ctx, item.Serial)
	if err != nil {
		return err
	}
	if existing != nil && existing.ID != item.ID {
		return domain.ErrSerialAlreadyExists
	}
	return nil
}

// lockReferences reporta la primera referencia inexistente en el orden de References.
func lockReferences(ctx context.Context, refs repository.ReferenceLocker, item *entity.InventoryItem) error {
	for _, ref := range item.References() {
		ok, err := refs.LockReference(ctx, ref)
		if err != nil {
			return fmt.Errorf("inventario: validar %s: %w", ref.Kind, err)
		}
		if !ok {
			return domain.NewNotFound(string(ref.Kind))
		}
	}
	return nil
}

func appendUnique(ids []string, id string) []string {
	for _, x := range ids {
		if x == id {
			return ids
		}
	}
	return append(ids, id)
}

func toInventoryResponse(i *entity.InventoryItem) *dto.InventoryResponse {
	return &dto.InventoryResponse{
		ID:           i.ID,
		Serial:       i.Serial,
		Model:        i.Model,
		Description:  i.Description,
		Color:        i.Color,
		Photo:        i.Photo,
		PurchaseDate: i.PurchaseDate,
		Price:        i.Price,
		User:         i.UserID,
		Brand:        i.BrandID,
		Type:         i.TypeID,
		Status:       i.StatusID,
		CreatedAt:    i.CreatedAt,
		UpdatedAt:    i.UpdatedAt,
	}
}
