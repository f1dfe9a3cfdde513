package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SubmitItemsRequest body para POST /api/orders y POST /api/requisitions:
// mapa product_id -> cantidad solicitada. Cantidades cero o ausentes se ignoran.
type SubmitItemsRequest struct {
	Items map[string]int64 `json:"items"`
}

// OrderResponse representación de una orden de compra en respuestas.
type OrderResponse struct {
	ID          string          `json:"id"`
	Employee    string          `json:"employee"`
	ProductName string          `json:"product_name"`
	Quantity    int64           `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
	Status      string          `json:"status"`
	CreatedAt   time.Time       `json:"created_at"`
}

// DecisionResponse resultado de aprobar o rechazar una orden o requisición.
// Warning se llena con condiciones no fatales (ej. producto inexistente al
// aprobar una orden: el cambio de estado se confirma igual).
type DecisionResponse struct {
	ID      string `json:"id"`
	Status  string `json:"status"`
	Warning string `json:"warning,omitempty"`
}
