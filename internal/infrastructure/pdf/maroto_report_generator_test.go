package pdf

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Dulceria-api/internal/infrastructure/seed"
)

func TestSummarize_CatalogoSembrado(t *testing.T) {
	s := Summarize(seed.Sweets())
	assert.Equal(t, 4, s.Items)
	assert.Equal(t, 85, s.Units)
	// 50*2.50 + 20*12.00 + 0*3.99 + 15*8.50
	assert.Equal(t, "492.50", s.Value.StringFixed(2))
	assert.Equal(t, 1, s.OutOfStock)
	assert.Equal(t, 0, s.LowStock)
}

func TestStockStatus(t *testing.T) {
	sweets := seed.Sweets()
	label, _ := stockStatus(sweets[2])
	assert.Equal(t, "AGOTADO", label)

	sweets[0].Quantity = 4
	label, _ = stockStatus(sweets[0])
	assert.Equal(t, "POCO STOCK", label)

	label, _ = stockStatus(sweets[1])
	assert.Equal(t, "OK", label)
}

func TestGenerateInventoryReport_ProducePDF(t *testing.T) {
	out, err := NewMarotoReportGenerator("Dulcería").GenerateInventoryReport(context.Background(), seed.Sweets())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestGenerateInventoryReport_ContextoCancelado(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewMarotoReportGenerator("Dulcería").GenerateInventoryReport(ctx, nil)
	assert.ErrorIs(t, err, context.Canceled)
}
