package repository

import "github.com/jhoicas/Compras-api/internal/domain/entity"

// PurchaseOrderRepository define el puerto de persistencia para PurchaseOrder.
type PurchaseOrderRepository interface {
	Create(order *entity.PurchaseOrder) error
	GetByID(id string) (*entity.PurchaseOrder, error)
	// GetByIDForUpdate bloquea la fila de la orden dentro de la transacción
	// actual; el motor de aprobación verifica el estado Pending sobre la fila
	// bloqueada para impedir una doble aprobación concurrente.
	GetByIDForUpdate(id string) (*entity.PurchaseOrder, error)
	UpdateStatus(id string, status entity.Status) error
	ListByStatus(status entity.Status) ([]*entity.PurchaseOrder, error)
	ListByEmployee(employee string) ([]*entity.PurchaseOrder, error)
	Delete(id string) error
}
