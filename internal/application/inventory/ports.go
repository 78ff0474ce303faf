package inventory

import (
	"context"

	"github.com/jhoicas/inventario-equipos/internal/application/dto"
	"github.com/jhoicas/inventario-equipos/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios atados a esa tx.
// Si fn devuelve error se hace Rollback; si no, Commit.
type TxRunner interface {
	RunInventory(ctx context.Context, fn func(
		items repository.InventoryRepository,
		refs repository.ReferenceLocker,
	) error) error
}

// ReportPDFGenerator genera el reporte imprimible del inventario con referencias expandidas.
type ReportPDFGenerator interface {
	GenerateInventoryReport(ctx context.Context, items []dto.InventoryDetailResponse) ([]byte, error)
}
