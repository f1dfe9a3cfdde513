package repository

import "github.com/jhoicas/Compras-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
// AdjustQuantity debe ser un incremento atómico (quantity = quantity + delta)
// para que dos aprobaciones concurrentes sobre el mismo producto no pierdan
// actualizaciones.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	// GetByIDForUpdate bloquea la fila del producto dentro de la transacción
	// actual (SELECT FOR UPDATE). Fuera de transacción equivale a GetByID.
	GetByIDForUpdate(id string) (*entity.Product, error)
	// GetByName busca por nombre exacto (las órdenes guardan el nombre como
	// instantánea, no el ID). Devuelve nil, nil si no existe.
	GetByName(name string) (*entity.Product, error)
	Update(product *entity.Product) error
	AdjustQuantity(id string, delta int64) error
	SetAwaitingApproval(id string, awaiting bool) error
	AttachSupplier(productID, supplierID string) error
	List(limit, offset int) ([]*entity.Product, error)
	// Delete elimina el producto; las requisiciones dependientes caen en
	// cascada (FK ON DELETE CASCADE en el esquema).
	Delete(id string) error
}
