package inventory

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Dulceria-api/internal/domain"
)

// MaxQuantity tope de unidades por dulce. Coincide con INTEGER de PostgreSQL
// para que todos los backends acepten los mismos valores.
const MaxQuantity = math.MaxInt32

// PriceDecimals decimales admitidos en un precio (columna NUMERIC(12,2)).
const PriceDecimals = 2

// maxPrice primer valor que ya no cabe en NUMERIC(12,2).
var maxPrice = decimal.New(1, 10)

// Decrement aplica una compra sobre el stock disponible (servicio de dominio).
// El stock nunca queda negativo: si la cantidad solicitada supera lo disponible
// devuelve ErrInsufficientStock y el stock no cambia.
func Decrement(available, requested int) (int, error) {
	if requested <= 0 {
		return available, domain.ErrInvalidInput
	}
	if requested > available {
		return available, domain.ErrInsufficientStock
	}
	return available - requested, nil
}

// Increment aplica una reposición. El resultado no puede pasar de MaxQuantity.
func Increment(available, added int) (int, error) {
	if added <= 0 {
		return available, domain.ErrInvalidInput
	}
	if added > MaxQuantity-available {
		return available, fmt.Errorf("%w: el stock superaría %d unidades", domain.ErrInvalidInput, MaxQuantity)
	}
	return available + added, nil
}

// ValidQuantity indica si q es un stock almacenable.
func ValidQuantity(q int) bool {
	return q >= 0 && q <= MaxQuantity
}

// ValidPrice exige precio no negativo, con a lo sumo dos decimales y dentro de NUMERIC(12,2).
func ValidPrice(p decimal.Decimal) bool {
	if p.IsNegative() || !p.LessThan(maxPrice) {
		return false
	}
	return p.Equal(p.Truncate(PriceDecimals))
}
