package pdf

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-equipos/internal/application/dto"
)

func TestFormatMoney(t *testing.T) {
	cases := map[string]string{
		"0":        "0",
		"999":      "999",
		"25000":    "25.000",
		"1000000":  "1.000.000",
		"-1500000": "-1.500.000",
	}
	for in, want := range cases {
		assert.Equal(t, want, formatMoney(in), in)
	}
}

func TestNombresDeReferenciasFaltantes(t *testing.T) {
	assert.Equal(t, "-", catalogName(nil))
	assert.Equal(t, "-", userName(nil))
	assert.Equal(t, "HP", catalogName(&dto.CatalogRef{Name: "HP"}))
	assert.Equal(t, "Ana", userName(&dto.UserRef{Name: "Ana"}))
}

func TestGenerateInventoryReport(t *testing.T) {
	g := NewMarotoReportGenerator("")
	g.now = func() time.Time { return time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC) }

	items := []dto.InventoryDetailResponse{
		{
			Serial: "SN-1", Model: "Latitude", Price: decimal.NewFromInt(2500000),
			User:  &dto.UserRef{Name: "Ana"},
			Brand: &dto.CatalogRef{Name: "Dell"},
			Type:  &dto.CatalogRef{Name: "Portátil"},
		},
		{Serial: "SN-2", Model: "ThinkPad", Price: decimal.NewFromInt(1800000)},
	}

	out, err := g.GenerateInventoryReport(context.Background(), items)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestGenerateInventoryReport_ContextoCancelado(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewMarotoReportGenerator("Reporte").GenerateInventoryReport(ctx, []dto.InventoryDetailResponse{{Serial: "SN-1"}})
	assert.ErrorIs(t, err, context.Canceled)
}
