package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/Compras-api/internal/application/approval"
	"github.com/jhoicas/Compras-api/internal/application/intake"
	"github.com/jhoicas/Compras-api/internal/domain/repository"
)

// Ensure TxRunner implements approval.TxRunner and intake.TxRunner.
var _ approval.TxRunner = (*TxRunner)(nil)
var _ intake.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta el callback contra los repositorios en memoria, serializando
// las "transacciones" con un mutex. No hay rollback: los casos de uso validan
// antes de escribir, así que un error del callback ocurre sin efectos aplicados.
// Pensado para tests y desarrollo local, no para producción.
type TxRunner struct {
	mu       sync.Mutex
	orders   *PurchaseOrderRepository
	reqs     *RequisitionRepository
	products *ProductRepository
}

// NewTxRunner construye el runner sobre los repositorios en memoria.
func NewTxRunner(orders *PurchaseOrderRepository, reqs *RequisitionRepository, products *ProductRepository) *TxRunner {
	return &TxRunner{orders: orders, reqs: reqs, products: products}
}

// Run ejecuta fn con los repositorios compartidos bajo el lock del runner.
func (r *TxRunner) Run(_ context.Context, fn func(
	orderRepo repository.PurchaseOrderRepository,
	reqRepo repository.RequisitionRepository,
	productRepo repository.ProductRepository,
) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return fn(r.orders, r.reqs, r.products)
}
