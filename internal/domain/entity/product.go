package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo con su stock actual.
// Quantity y Price se almacenan siempre no negativos: los valores negativos
// se corrigen a su valor absoluto al escribir (ver Normalize).
// AwaitingApproval marca que el producto está referenciado por al menos
// una requisición pendiente de revisión.
type Product struct {
	ID               string
	Name             string
	Description      string
	Quantity         int64
	Price            decimal.Decimal
	SupplierID       *string // opcional
	AwaitingApproval bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Normalize corrige cantidad y precio negativos a su valor absoluto.
// Se aplica en cada escritura del catálogo.
func (p *Product) Normalize() {
	if p.Quantity < 0 {
		p.Quantity = -p.Quantity
	}
	if p.Price.IsNegative() {
		p.Price = p.Price.Abs()
	}
}
