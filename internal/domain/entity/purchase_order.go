package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PurchaseOrder es una orden de compra creada desde el carrito de un empleado.
// Guarda una instantánea del producto (nombre, precio, descripción) al momento
// de crearse; el stock solo se ajusta cuando un administrador la aprueba
// (una orden aprobada representa mercancía entrante).
type PurchaseOrder struct {
	ID          string
	Employee    string // username del empleado solicitante
	ProductName string
	Quantity    int64
	Price       decimal.Decimal
	Description string
	Status      Status
	CreatedAt   time.Time
}
