package repository

import "github.com/jhoicas/Compras-api/internal/domain/entity"

// RequisitionRepository define el puerto de persistencia para Requisition y su
// RequestedProduct. Los métodos de lectura devuelven la requisición con el
// detalle Requested ya cargado (join).
type RequisitionRepository interface {
	// CreateRequested y Create se invocan dentro de la misma transacción que
	// la reserva de stock: las tres escrituras de un ítem son una unidad.
	CreateRequested(rp *entity.RequestedProduct) error
	Create(req *entity.Requisition) error
	GetByID(id string) (*entity.Requisition, error)
	GetByIDForUpdate(id string) (*entity.Requisition, error)
	UpdateStatus(id string, status entity.Status) error
	ListByStatus(status entity.Status) ([]*entity.Requisition, error)
	ListAll(limit, offset int) ([]*entity.Requisition, error)
}
