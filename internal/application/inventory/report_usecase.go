package inventory

import (
	"context"
	"fmt"
	"time"
)

// ReportUseCase genera el reporte PDF del inventario a partir del listado expandido.
type ReportUseCase struct {
	inventory *InventoryUseCase
	generator ReportPDFGenerator
	now       func() time.Time
}

// NewReportUseCase construye el caso de uso del reporte.
func NewReportUseCase(inventory *InventoryUseCase, generator ReportPDFGenerator) *ReportUseCase {
	return &ReportUseCase{inventory: inventory, generator: generator, now: time.Now}
}

// Generate devuelve los bytes del PDF y el nombre de archivo sugerido.
func (uc *ReportUseCase) Generate(ctx context.Context) (pdfBytes []byte, filename string, err error) {
	items, err := uc.inventory.List(ctx)
	if err != nil {
		return nil, "", err
	}
	pdfBytes, err = uc.generator.GenerateInventoryReport(ctx, items)
	if err != nil {
		return nil, "", fmt.Errorf("reporte: generar pdf: %w", err)
	}
	return pdfBytes, "inventario-" + uc.now().Format("20060102") + ".pdf", nil
}
