package approval

import (
	"context"

	"github.com/jhoicas/Compras-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que el cambio de estado y el ajuste
// de inventario de cada operación del motor de aprobación confirmen juntos
// o no confirmen en absoluto.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		orderRepo repository.PurchaseOrderRepository,
		reqRepo repository.RequisitionRepository,
		productRepo repository.ProductRepository,
	) error) error
}
