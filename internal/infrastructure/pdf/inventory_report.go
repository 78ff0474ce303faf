// Package pdf genera el reporte imprimible del inventario de equipos.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + institución  │  Fecha de generación        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Serial | Modelo | Marca | Tipo | Estado | Resp. | $  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: cantidad de equipos / valor total                  │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-equipos/internal/application/dto"
	appinventory "github.com/jhoicas/inventario-equipos/internal/application/inventory"
)

var _ appinventory.ReportPDFGenerator = (*MarotoReportGenerator)(nil)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// MarotoReportGenerator implementa inventory.ReportPDFGenerator usando Maroto v2.
type MarotoReportGenerator struct {
	title string
	now   func() time.Time
}

// NewMarotoReportGenerator construye el generador. title encabeza cada reporte.
func NewMarotoReportGenerator(title string) *MarotoReportGenerator {
	if title == "" {
		title = "Inventario de equipos"
	}
	return &MarotoReportGenerator{title: title, now: time.Now}
}

// GenerateInventoryReport genera el PDF y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateInventoryReport(ctx context.Context, items []dto.InventoryDetailResponse) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 8}).
		WithTitle(g.title, true).
		Build()

	m := maroto.New(cfg)
	m.AddRows(g.headerRow())
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())

	total := decimal.Zero
	for _, it := range items {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		m.AddRows(itemRow(it))
		total = total.Add(it.Price)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(len(items), total))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

func (g *MarotoReportGenerator) headerRow() core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New(g.title, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(4).Add(
			text.New("Generado: "+g.now().Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 3, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 2,
		}))
	}
	return row.New(8).Add(
		h("Serial", 2, align.Left),
		h("Modelo", 2, align.Left),
		h("Marca", 1, align.Left),
		h("Tipo", 2, align.Left),
		h("Estado", 1, align.Left),
		h("Responsable", 2, align.Left),
		h("Precio", 2, align.Right),
	)
}

func itemRow(it dto.InventoryDetailResponse) core.Row {
	cell := func(s string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(s, props.Text{Size: 7, Align: a, Top: 1}))
	}
	return row.New(6).Add(
		cell(it.Serial, 2, align.Left),
		cell(it.Model, 2, align.Left),
		cell(catalogName(it.Brand), 1, align.Left),
		cell(catalogName(it.Type), 2, align.Left),
		cell(catalogName(it.Status), 1, align.Left),
		cell(userName(it.User), 2, align.Left),
		cell("$"+formatMoney(it.Price.StringFixed(0)), 2, align.Right),
	)
}

func totalsRow(count int, total decimal.Decimal) core.Row {
	return row.New(10).Add(
		col.New(6).Add(text.New("Equipos: "+strconv.Itoa(count), props.Text{
			Style: fontstyle.Bold, Size: 9, Top: 2,
		})),
		col.New(6).Add(text.New("Valor total: $"+formatMoney(total.StringFixed(0)), props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Color: colorPrimary, Top: 2,
		})),
	)
}

// catalogName muestra "-" cuando la referencia ya no existe.
func catalogName(c *dto.CatalogRef) string {
	if c == nil {
		return "-"
	}
	return c.Name
}

func userName(u *dto.UserRef) string {
	if u == nil {
		return "-"
	}
	return u.Name
}

// formatMoney inserta puntos de miles en un string numérico sin decimales.
// Ej: "25000" → "25.000", "-1000000" → "-1.000.000"
func formatMoney(s string) string {
	sign := ""
	if len(s) > 0 && s[0] == '-' {
		sign, s = "-", s[1:]
	}
	n := len(s)
	if n <= 3 {
		return sign + s
	}
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(s) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	return sign + string(buf)
}
