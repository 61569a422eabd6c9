// Package seed contiene el catálogo y las cuentas iniciales de la tienda.
package seed

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Dulceria-api/internal/domain/entity"
)

// DefaultVersion versión de la semilla. Cambiarla fuerza una nueva carga (p. ej. al cambiar imágenes).
const DefaultVersion = "v2"

// Account cuenta inicial; el password se hashea al sembrar.
type Account struct {
	ID       string
	Username string
	Password string
	Role     string
}

// Sweets devuelve una copia nueva del catálogo inicial.
func Sweets() []*entity.Sweet {
	return []*entity.Sweet{
		{
			ID:          "1",
			Name:        "Rainbow Lollipops",
			Category:    "Hard Candy",
			Price:       decimal.RequireFromString("2.50"),
			Quantity:    50,
			Description: "Swirly, colorful, and long-lasting fruit flavor.",
			Image:       "https://images.unsplash.com/photo-1575224300306-1b8da9b66eeb?auto=format&fit=crop&w=500&q=80",
		},
		{
			ID:          "2",
			Name:        "Dark Truffles",
			Category:    "Chocolate",
			Price:       decimal.RequireFromString("12.00"),
			Quantity:    20,
			Description: "80% cocoa dark chocolate ganache truffles.",
			Image:       "https://images.unsplash.com/photo-1606312619070-d48b4c652a52?auto=format&fit=crop&w=500&q=80",
		},
		{
			ID:          "3",
			Name:        "Sour Gummy Worms",
			Category:    "Gummies",
			Price:       decimal.RequireFromString("3.99"),
			Quantity:    0,
			Description: "Super sour neon worms. Warning: Addictive.",
			Image:       "https://images.unsplash.com/photo-1582058091505-f87a2e55a40f?auto=format&fit=crop&w=500&q=80",
		},
		{
			ID:          "4",
			Name:        "Peppermint Bark",
			Category:    "Seasonal",
			Price:       decimal.RequireFromString("8.50"),
			Quantity:    15,
			Description: "White and dark chocolate layered with crushed candy cane.",
			Image:       "https://images.unsplash.com/photo-1632685714777-2c96c56db36d?auto=format&fit=crop&w=500&q=80",
		},
	}
}

// Accounts cuentas de demostración: un administrador y un comprador.
func Accounts() []Account {
	return []Account{
		{ID: "admin1", Username: "admin", Password: "password123", Role: entity.RoleAdmin},
		{ID: "user1", Username: "user", Password: "password123", Role: entity.RoleUser},
	}
}
