package entity

import "time"

// Supplier representa un proveedor. Referenciado opcionalmente por Product.
type Supplier struct {
	ID        string
	Name      string
	Address   string
	Phone     string
	CreatedAt time.Time
}
