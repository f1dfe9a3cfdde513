package intake

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Compras-api/internal/application/dto"
	"github.com/jhoicas/Compras-api/internal/domain"
	"github.com/jhoicas/Compras-api/internal/domain/entity"
	"github.com/jhoicas/Compras-api/internal/domain/repository"
)

// IntakeUseCase convierte las cantidades seleccionadas por un empleado en
// órdenes de compra (carrito) o requisiciones de stock, ambas en estado
// Pending. El fallo de un ítem se registra y no aborta el resto del lote.
type IntakeUseCase struct {
	txRunner    TxRunner
	productRepo repository.ProductRepository
	orderRepo   repository.PurchaseOrderRepository
}

// NewIntakeUseCase construye el caso de uso de intake.
func NewIntakeUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	orderRepo repository.PurchaseOrderRepository,
) *IntakeUseCase {
	return &IntakeUseCase{txRunner: txRunner, productRepo: productRepo, orderRepo: orderRepo}
}

// SubmitOrder crea una orden de compra Pending por cada ítem con cantidad > 0,
// con una instantánea del producto (nombre, precio, descripción). Sin efecto
// sobre el inventario: el stock solo se ajusta al aprobar. Un producto
// inexistente genera un error por ítem y el lote continúa.
func (uc *IntakeUseCase) SubmitOrder(ctx context.Context, employee string, in dto.SubmitItemsRequest) (*dto.BatchResult, error) {
	if employee == "" {
		return nil, domain.ErrUnauthorized
	}
	result := &dto.BatchResult{Errors: []string{}}
	for _, productID := range sortedItemIDs(in.Items) {
		qty := in.Items[productID]
		if qty <= 0 {
			continue
		}
		product, err := uc.productRepo.GetByID(productID)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("producto %s: %v", productID, err))
			continue
		}
		if product == nil {
			result.Errors = append(result.Errors, fmt.Sprintf("el producto con ID %s no existe", productID))
			continue
		}
		order := &entity.PurchaseOrder{
			ID:          uuid.New().String(),
			Employee:    employee,
			ProductName: product.Name,
			Quantity:    qty,
			Price:       product.Price,
			Description: product.Description,
			Status:      entity.StatusPending,
			CreatedAt:   time.Now(),
		}
		if err := uc.orderRepo.Create(order); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("producto %s: %v", productID, err))
			continue
		}
		result.Added++
	}
	return result, nil
}

// SubmitRequisition crea, por cada ítem con cantidad > 0, un RequestedProduct
// y una Requisition Pending, y descuenta la cantidad del stock como reserva
// especulativa. Las tres escrituras de un ítem van en una sola transacción con
// la fila del producto bloqueada. Un ítem cuya cantidad supere el stock actual
// se rechaza con error de stock insuficiente: el inventario nunca queda en
// negativo. El fallo de un ítem no aborta los demás.
func (uc *IntakeUseCase) SubmitRequisition(ctx context.Context, employeeID string, in dto.SubmitItemsRequest) (*dto.BatchResult, error) {
	if employeeID == "" {
		return nil, domain.ErrUnauthorized
	}
	result := &dto.BatchResult{Errors: []string{}}
	for _, productID := range sortedItemIDs(in.Items) {
		qty := in.Items[productID]
		if qty <= 0 {
			continue
		}
		err := uc.txRunner.Run(ctx, func(
			_ repository.PurchaseOrderRepository,
			reqs repository.RequisitionRepository,
			products repository.ProductRepository,
		) error {
			product, err := products.GetByIDForUpdate(productID)
			if err != nil {
				return err
			}
			if product == nil {
				return domain.ErrNotFound
			}
			if product.Quantity < qty {
				return domain.ErrInsufficientStock
			}
			now := time.Now()
			requested := &entity.RequestedProduct{
				ID:          uuid.New().String(),
				ProductID:   product.ID,
				ProductName: product.Name,
				Quantity:    qty,
				CreatedAt:   now,
			}
			if err := reqs.CreateRequested(requested); err != nil {
				return err
			}
			req := &entity.Requisition{
				ID:          uuid.New().String(),
				Name:        product.Name,
				Quantity:    qty,
				Description: product.Description,
				EmployeeID:  employeeID,
				Status:      entity.StatusPending,
				Requested:   *requested,
				CreatedAt:   now,
			}
			if err := reqs.Create(req); err != nil {
				return err
			}
			return products.AdjustQuantity(product.ID, -qty)
		})
		if err != nil {
			switch err {
			case domain.ErrNotFound:
				result.Errors = append(result.Errors, fmt.Sprintf("el producto con ID %s no existe", productID))
			case domain.ErrInsufficientStock:
				result.Errors = append(result.Errors, fmt.Sprintf("stock insuficiente para el producto %s", productID))
			default:
				result.Errors = append(result.Errors, fmt.Sprintf("producto %s: %v", productID, err))
			}
			continue
		}
		result.Added++
	}
	return result, nil
}

// sortedItemIDs devuelve los IDs del lote en orden estable, para que los
// errores por ítem salgan siempre en el mismo orden.
func sortedItemIDs(items map[string]int64) []string {
	ids := make([]string, 0, len(items))
	for id := range items {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
