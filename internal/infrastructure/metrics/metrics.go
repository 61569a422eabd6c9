// Package metrics define y registra las métricas Prometheus de la tienda.
// Todas se registran en el registry por defecto al importar el paquete.
package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/jhoicas/Dulceria-api/internal/domain"
)

const namespace = "dulceria"

// ── Stock ─────────────────────────────────────────────────────────────────────

// StockOperationsTotal cuenta compras y reposiciones.
// Labels:
//   - op: "purchase" o "restock"
//   - result: "ok", "insufficient_stock", "not_found", "invalid", "conflict" o "error"
var StockOperationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "stock_operations_total",
		Help:      "Total de operaciones de stock por tipo y resultado.",
	},
	[]string{"op", "result"},
)

// UnitsMovedTotal unidades vendidas (op=purchase) o repuestas (op=restock).
var UnitsMovedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "stock_units_total",
		Help:      "Unidades vendidas o repuestas.",
	},
	[]string{"op"},
)

// StockOperationDuration duración de una operación de stock, incluida la espera del lock por dulce.
var StockOperationDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "stock_operation_duration_seconds",
		Help:      "Duración de compras y reposiciones.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"op"},
)

// ── Auth ──────────────────────────────────────────────────────────────────────

// AuthAttemptsTotal intentos de login/registro por resultado.
var AuthAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_attempts_total",
		Help:      "Intentos de login y registro por resultado.",
	},
	[]string{"op", "result"},
)

// Result clasifica un error de dominio para la etiqueta result.
func Result(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, domain.ErrInsufficientStock):
		return "insufficient_stock"
	case errors.Is(err, domain.ErrNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrInvalidInput):
		return "invalid"
	case errors.Is(err, domain.ErrInvalidCredentials):
		return "invalid_credentials"
	case errors.Is(err, domain.ErrDuplicateUsername):
		return "duplicate"
	case errors.Is(err, domain.ErrConflict):
		return "conflict"
	default:
		return "error"
	}
}
