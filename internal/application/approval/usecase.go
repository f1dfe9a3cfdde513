package approval

import (
	"context"
	"fmt"

	"github.com/jhoicas/Compras-api/internal/application/dto"
	"github.com/jhoicas/Compras-api/internal/domain"
	"github.com/jhoicas/Compras-api/internal/domain/entity"
	"github.com/jhoicas/Compras-api/internal/domain/repository"
)

// ApprovalUseCase es el motor de aprobación: transiciona órdenes y
// requisiciones de Pending a Approved/Rejected y concilia el inventario.
//
// Máquina de estados (idéntica para orden y requisición):
//
//	Pending -> Approved | Rejected
//
// Approved y Rejected son terminales; un intento de transicionar una solicitud
// ya finalizada devuelve ErrAlreadyFinalized. La verificación del estado se
// hace sobre la fila bloqueada (FOR UPDATE) dentro de la misma transacción que
// aplica la transición, de modo que dos aprobaciones concurrentes del mismo
// registro nunca apliquen el ajuste de inventario dos veces.
type ApprovalUseCase struct {
	txRunner TxRunner
}

// NewApprovalUseCase construye el motor de aprobación.
func NewApprovalUseCase(txRunner TxRunner) *ApprovalUseCase {
	return &ApprovalUseCase{txRunner: txRunner}
}

// ApproveOrder aprueba una orden de compra pendiente y aumenta el stock del
// producto en la cantidad ordenada (la orden aprobada representa mercancía
// entrante). El producto se busca por el nombre guardado como instantánea; si
// ya no existe, el cambio de estado se confirma igual y se devuelve una
// advertencia no fatal en DecisionResponse.Warning.
func (uc *ApprovalUseCase) ApproveOrder(ctx context.Context, orderID string) (*dto.DecisionResponse, error) {
	var warning string
	err := uc.txRunner.Run(ctx, func(
		orders repository.PurchaseOrderRepository,
		_ repository.RequisitionRepository,
		products repository.ProductRepository,
	) error {
		order, err := orders.GetByIDForUpdate(orderID)
		if err != nil {
			return err
		}
		if order == nil {
			return domain.ErrNotFound
		}
		if order.Status != entity.StatusPending {
			return domain.ErrAlreadyFinalized
		}
		if err := orders.UpdateStatus(orderID, entity.StatusApproved); err != nil {
			return err
		}
		product, err := products.GetByName(order.ProductName)
		if err != nil {
			return err
		}
		if product == nil {
			warning = fmt.Sprintf("el producto %q no existe; la orden se aprueba sin ajustar inventario", order.ProductName)
			return nil
		}
		return products.AdjustQuantity(product.ID, order.Quantity)
	})
	if err != nil {
		return nil, err
	}
	return &dto.DecisionResponse{ID: orderID, Status: string(entity.StatusApproved), Warning: warning}, nil
}

// RejectOrder rechaza una orden de compra pendiente. Sin efecto sobre el
// inventario: las órdenes nunca descontaron stock al crearse.
func (uc *ApprovalUseCase) RejectOrder(ctx context.Context, orderID string) (*dto.DecisionResponse, error) {
	err := uc.txRunner.Run(ctx, func(
		orders repository.PurchaseOrderRepository,
		_ repository.RequisitionRepository,
		_ repository.ProductRepository,
	) error {
		order, err := orders.GetByIDForUpdate(orderID)
		if err != nil {
			return err
		}
		if order == nil {
			return domain.ErrNotFound
		}
		if order.Status != entity.StatusPending {
			return domain.ErrAlreadyFinalized
		}
		return orders.UpdateStatus(orderID, entity.StatusRejected)
	})
	if err != nil {
		return nil, err
	}
	return &dto.DecisionResponse{ID: orderID, Status: string(entity.StatusRejected)}, nil
}

// ApproveRequisition aprueba una requisición pendiente y limpia la marca
// awaiting_approval del producto. No toca el inventario: la reserva
// especulativa hecha en el intake ya refleja el estado aprobado.
func (uc *ApprovalUseCase) ApproveRequisition(ctx context.Context, reqID string) (*dto.DecisionResponse, error) {
	err := uc.txRunner.Run(ctx, func(
		_ repository.PurchaseOrderRepository,
		reqs repository.RequisitionRepository,
		products repository.ProductRepository,
	) error {
		req, err := reqs.GetByIDForUpdate(reqID)
		if err != nil {
			return err
		}
		if req == nil {
			return domain.ErrNotFound
		}
		if req.Status != entity.StatusPending {
			return domain.ErrAlreadyFinalized
		}
		if err := reqs.UpdateStatus(reqID, entity.StatusApproved); err != nil {
			return err
		}
		return products.SetAwaitingApproval(req.Requested.ProductID, false)
	})
	if err != nil {
		return nil, err
	}
	return &dto.DecisionResponse{ID: reqID, Status: string(entity.StatusApproved)}, nil
}

// RejectRequisition rechaza una requisición pendiente: limpia la marca
// awaiting_approval y restaura la cantidad reservada al stock (acción
// compensatoria de la reserva especulativa del intake; sin ella, una
// requisición nunca atendida perdería stock de forma permanente).
func (uc *ApprovalUseCase) RejectRequisition(ctx context.Context, reqID string) (*dto.DecisionResponse, error) {
	err := uc.txRunner.Run(ctx, func(
		_ repository.PurchaseOrderRepository,
		reqs repository.RequisitionRepository,
		products repository.ProductRepository,
	) error {
		req, err := reqs.GetByIDForUpdate(reqID)
		if err != nil {
			return err
		}
		if req == nil {
			return domain.ErrNotFound
		}
		if req.Status != entity.StatusPending {
			return domain.ErrAlreadyFinalized
		}
		if err := products.SetAwaitingApproval(req.Requested.ProductID, false); err != nil {
			return err
		}
		if err := products.AdjustQuantity(req.Requested.ProductID, req.Requested.Quantity); err != nil {
			return err
		}
		return reqs.UpdateStatus(reqID, entity.StatusRejected)
	})
	if err != nil {
		return nil, err
	}
	return &dto.DecisionResponse{ID: reqID, Status: string(entity.StatusRejected)}, nil
}

// ListPendingOrders devuelve las órdenes pendientes de revisión.
func (uc *ApprovalUseCase) ListPendingOrders(ctx context.Context) ([]dto.OrderResponse, error) {
	var list []*entity.PurchaseOrder
	err := uc.txRunner.Run(ctx, func(
		orders repository.PurchaseOrderRepository,
		_ repository.RequisitionRepository,
		_ repository.ProductRepository,
	) error {
		var err error
		list, err = orders.ListByStatus(entity.StatusPending)
		return err
	})
	if err != nil {
		return nil, err
	}
	out := make([]dto.OrderResponse, 0, len(list))
	for _, o := range list {
		out = append(out, ToOrderResponse(o))
	}
	return out, nil
}

// ListPendingRequisitions devuelve las requisiciones pendientes y, en la misma
// transacción, marca awaiting_approval en cada producto referenciado: poner
// una requisición en la cola de revisión señala su producto.
func (uc *ApprovalUseCase) ListPendingRequisitions(ctx context.Context) ([]dto.RequisitionResponse, error) {
	var list []*entity.Requisition
	err := uc.txRunner.Run(ctx, func(
		_ repository.PurchaseOrderRepository,
		reqs repository.RequisitionRepository,
		products repository.ProductRepository,
	) error {
		var err error
		list, err = reqs.ListByStatus(entity.StatusPending)
		if err != nil {
			return err
		}
		for _, req := range list {
			if err := products.SetAwaitingApproval(req.Requested.ProductID, true); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	out := make([]dto.RequisitionResponse, 0, len(list))
	for _, r := range list {
		out = append(out, ToRequisitionResponse(r))
	}
	return out, nil
}

// ToOrderResponse mapea la entidad a su DTO de respuesta.
func ToOrderResponse(o *entity.PurchaseOrder) dto.OrderResponse {
	return dto.OrderResponse{
		ID:          o.ID,
		Employee:    o.Employee,
		ProductName: o.ProductName,
		Quantity:    o.Quantity,
		Price:       o.Price,
		Description: o.Description,
		Status:      string(o.Status),
		CreatedAt:   o.CreatedAt,
	}
}

// ToRequisitionResponse mapea la entidad a su DTO de respuesta.
func ToRequisitionResponse(r *entity.Requisition) dto.RequisitionResponse {
	return dto.RequisitionResponse{
		ID:          r.ID,
		Name:        r.Name,
		Quantity:    r.Quantity,
		Description: r.Description,
		EmployeeID:  r.EmployeeID,
		Status:      string(r.Status),
		ProductID:   r.Requested.ProductID,
		CreatedAt:   r.CreatedAt,
	}
}
