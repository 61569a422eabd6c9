package dto

import "github.com/shopspring/decimal"

// CreateSweetRequest entrada para crear un dulce (sin ID).
type CreateSweetRequest struct {
	Name        string          `json:"name" validate:"required,min=1,max=120"`
	Category    string          `json:"category" validate:"max=60"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity" validate:"gte=0,lte=2147483647"`
	Description string          `json:"description" validate:"max=1000"`
	Image       string          `json:"image" validate:"omitempty,url"`
}

// UpdateSweetRequest actualización parcial: solo se modifican los campos presentes.
type UpdateSweetRequest struct {
	Name        *string          `json:"name"`
	Category    *string          `json:"category"`
	Price       *decimal.Decimal `json:"price"`
	Quantity    *int             `json:"quantity" validate:"omitempty,gte=0,lte=2147483647"`
	Description *string          `json:"description"`
	Image       *string          `json:"image"`
}

// StockRequest cantidad para compra o reposición.
type StockRequest struct {
	Quantity int `json:"quantity" validate:"gt=0,lte=2147483647"`
}

// CatalogQuery filtros del catálogo: texto libre y categoría ("All" o vacío = todas).
type CatalogQuery struct {
	Search   string `query:"search"`
	Category string `query:"category"`
}

// SweetResponse salida de un dulce.
type SweetResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`
	Description string          `json:"description"`
	Image       string          `json:"image,omitempty"`
	OutOfStock  bool            `json:"out_of_stock"`
	LowStock    bool            `json:"low_stock"`
}

// SweetListResponse lista del catálogo.
type SweetListResponse struct {
	Items []SweetResponse `json:"items"`
	Total int             `json:"total"`
}
