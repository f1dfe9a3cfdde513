package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest body para POST /api/products.
type CreateProductRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Quantity    int64           `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	SupplierID  *string         `json:"supplier_id,omitempty"`
}

// UpdateProductRequest body para PUT /api/products/:id (campos opcionales).
type UpdateProductRequest struct {
	Name        *string          `json:"name,omitempty"`
	Description *string          `json:"description,omitempty"`
	Price       *decimal.Decimal `json:"price,omitempty"`
}

// AttachSupplierRequest body para POST /api/products/:id/supplier.
type AttachSupplierRequest struct {
	SupplierID string `json:"supplier_id"`
}

// ProductResponse representación de un producto en respuestas.
type ProductResponse struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	Description      string          `json:"description"`
	Quantity         int64           `json:"quantity"`
	Price            decimal.Decimal `json:"price"`
	SupplierID       *string         `json:"supplier_id,omitempty"`
	AwaitingApproval bool            `json:"awaiting_approval"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// ProductListResponse listado paginado de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
