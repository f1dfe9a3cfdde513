package intake

import (
	"context"

	"github.com/jhoicas/Compras-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD. El intake de
// requisiciones lo usa por ítem: detalle, requisición y reserva de stock se
// escriben como una unidad; si algo falla, ninguna de las tres toma efecto.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		orderRepo repository.PurchaseOrderRepository,
		reqRepo repository.RequisitionRepository,
		productRepo repository.ProductRepository,
	) error) error
}
