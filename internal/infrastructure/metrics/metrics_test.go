package metrics_test

import (
	"fmt"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Dulceria-api/internal/domain"
	"github.com/jhoicas/Dulceria-api/internal/infrastructure/metrics"
)

func TestResult(t *testing.T) {
	assert.Equal(t, "ok", metrics.Result(nil))
	assert.Equal(t, "insufficient_stock", metrics.Result(domain.ErrInsufficientStock))
	assert.Equal(t, "not_found", metrics.Result(fmt.Errorf("purchase: %w", domain.ErrNotFound)))
	assert.Equal(t, "invalid", metrics.Result(domain.ErrInvalidInput))
	assert.Equal(t, "error", metrics.Result(fmt.Errorf("boom")))
}

func TestStockOperationsTotal_Incrementa(t *testing.T) {
	c := metrics.StockOperationsTotal.WithLabelValues("purchase", "ok")
	before := testutil.ToFloat64(c)
	c.Inc()
	assert.Equal(t, before+1, testutil.ToFloat64(c))
}
