package entity

import "github.com/shopspring/decimal"

// LowStockThreshold cantidad por debajo de la cual un dulce se marca con poco stock.
const LowStockThreshold = 10

// Sweet representa un producto del catálogo con su stock disponible.
// Invariantes: Quantity >= 0 y Price >= 0.
type Sweet struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`
	Description string          `json:"description"`
	Image       string          `json:"image,omitempty"`
}

// SweetInput datos de un dulce nuevo (sin ID, lo asigna el caso de uso).
type SweetInput struct {
	Name        string
	Category    string
	Price       decimal.Decimal
	Quantity    int
	Description string
	Image       string
}

// SweetPatch actualización parcial: solo se aplican los campos no nil.
type SweetPatch struct {
	Name        *string
	Category    *string
	Price       *decimal.Decimal
	Quantity    *int
	Description *string
	Image       *string
}

// NewSweet construye un Sweet a partir del input y el ID asignado.
func NewSweet(id string, in SweetInput) *Sweet {
	return &Sweet{
		ID:          id,
		Name:        in.Name,
		Category:    in.Category,
		Price:       in.Price,
		Quantity:    in.Quantity,
		Description: in.Description,
		Image:       in.Image,
	}
}

// Apply fusiona el patch sobre el dulce (último en escribir gana).
func (s *Sweet) Apply(p SweetPatch) {
	if p.Name != nil {
		s.Name = *p.Name
	}
	if p.Category != nil {
		s.Category = *p.Category
	}
	if p.Price != nil {
		s.Price = *p.Price
	}
	if p.Quantity != nil {
		s.Quantity = *p.Quantity
	}
	if p.Description != nil {
		s.Description = *p.Description
	}
	if p.Image != nil {
		s.Image = *p.Image
	}
}

// OutOfStock indica que no quedan unidades.
func (s *Sweet) OutOfStock() bool {
	return s.Quantity == 0
}

// LowStock indica stock positivo pero por debajo del umbral.
func (s *Sweet) LowStock() bool {
	return s.Quantity > 0 && s.Quantity < LowStockThreshold
}

// IsEmpty indica si el patch no trae cambios.
func (p SweetPatch) IsEmpty() bool {
	return p.Name == nil && p.Category == nil && p.Price == nil &&
		p.Quantity == nil && p.Description == nil && p.Image == nil
}
