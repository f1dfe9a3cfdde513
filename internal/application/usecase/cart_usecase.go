package usecase

import (
	"github.com/jhoicas/Compras-api/internal/application/approval"
	"github.com/jhoicas/Compras-api/internal/application/dto"
	"github.com/jhoicas/Compras-api/internal/domain"
	"github.com/jhoicas/Compras-api/internal/domain/entity"
	"github.com/jhoicas/Compras-api/internal/domain/repository"
)

// CartUseCase consultas del lado del empleado: sus órdenes de compra (el
// carrito), el listado general de requisiciones y el retiro de una orden
// propia que siga pendiente.
type CartUseCase struct {
	orderRepo repository.PurchaseOrderRepository
	reqRepo   repository.RequisitionRepository
}

// NewCartUseCase construye el caso de uso.
func NewCartUseCase(orderRepo repository.PurchaseOrderRepository, reqRepo repository.RequisitionRepository) *CartUseCase {
	return &CartUseCase{orderRepo: orderRepo, reqRepo: reqRepo}
}

// MyOrders lista las órdenes de compra del empleado.
func (uc *CartUseCase) MyOrders(employee string) ([]dto.OrderResponse, error) {
	if employee == "" {
		return nil, domain.ErrUnauthorized
	}
	list, err := uc.orderRepo.ListByEmployee(employee)
	if err != nil {
		return nil, err
	}
	out := make([]dto.OrderResponse, 0, len(list))
	for _, o := range list {
		out = append(out, approval.ToOrderResponse(o))
	}
	return out, nil
}

// RemoveOrder retira del carrito una orden propia. Solo se permite mientras
// la orden siga Pending; una orden ajena devuelve ErrForbidden.
func (uc *CartUseCase) RemoveOrder(employee, orderID string) error {
	order, err := uc.orderRepo.GetByID(orderID)
	if err != nil {
		return err
	}
	if order == nil {
		return domain.ErrNotFound
	}
	if order.Employee != employee {
		return domain.ErrForbidden
	}
	if order.Status != entity.StatusPending {
		return domain.ErrAlreadyFinalized
	}
	return uc.orderRepo.Delete(orderID)
}

// ListRequisitions lista requisiciones con paginación (todas, como la vista
// de requisiciones del almacén).
func (uc *CartUseCase) ListRequisitions(limit, offset int) ([]dto.RequisitionResponse, error) {
	list, err := uc.reqRepo.ListAll(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.RequisitionResponse, 0, len(list))
	for _, r := range list {
		out = append(out, approval.ToRequisitionResponse(r))
	}
	return out, nil
}
