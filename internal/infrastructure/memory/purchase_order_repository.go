package memory

import (
	"sort"
	"sync"

	"github.com/jhoicas/Compras-api/internal/domain"
	"github.com/jhoicas/Compras-api/internal/domain/entity"
	"github.com/jhoicas/Compras-api/internal/domain/repository"
)

// Verify interface compliance
var _ repository.PurchaseOrderRepository = (*PurchaseOrderRepository)(nil)

// PurchaseOrderRepository implementación en memoria de PurchaseOrderRepository.
type PurchaseOrderRepository struct {
	mu     sync.Mutex
	orders map[string]*entity.PurchaseOrder
}

// NewPurchaseOrderRepository crea el repositorio en memoria.
func NewPurchaseOrderRepository() *PurchaseOrderRepository {
	return &PurchaseOrderRepository{orders: make(map[string]*entity.PurchaseOrder)}
}

// Create guarda una nueva orden.
func (r *PurchaseOrderRepository) Create(order *entity.PurchaseOrder) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.orders[order.ID]; ok {
		return domain.ErrDuplicate
	}
	clone := *order
	r.orders[order.ID] = &clone
	return nil
}

// GetByID devuelve una copia de la orden, o nil, nil si no existe.
func (r *PurchaseOrderRepository) GetByID(id string) (*entity.PurchaseOrder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.orders[id]
	if !ok {
		return nil, nil
	}
	clone := *o
	return &clone, nil
}

// GetByIDForUpdate en memoria equivale a GetByID (el TxRunner ya serializa).
func (r *PurchaseOrderRepository) GetByIDForUpdate(id string) (*entity.PurchaseOrder, error) {
	return r.GetByID(id)
}

// UpdateStatus transiciona el estado de la orden.
func (r *PurchaseOrderRepository) UpdateStatus(id string, status entity.Status) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.orders[id]
	if !ok {
		return domain.ErrNotFound
	}
	o.Status = status
	return nil
}

// ListByStatus lista órdenes por estado, de la más antigua a la más reciente.
func (r *PurchaseOrderRepository) ListByStatus(status entity.Status) ([]*entity.PurchaseOrder, error) {
	return r.filter(func(o *entity.PurchaseOrder) bool { return o.Status == status }), nil
}

// ListByEmployee lista las órdenes de un empleado.
func (r *PurchaseOrderRepository) ListByEmployee(employee string) ([]*entity.PurchaseOrder, error) {
	return r.filter(func(o *entity.PurchaseOrder) bool { return o.Employee == employee }), nil
}

func (r *PurchaseOrderRepository) filter(keep func(*entity.PurchaseOrder) bool) []*entity.PurchaseOrder {
	r.mu.Lock()
	defer r.mu.Unlock()
	var list []*entity.PurchaseOrder
	for _, o := range r.orders {
		if keep(o) {
			clone := *o
			list = append(list, &clone)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].CreatedAt.Before(list[j].CreatedAt) })
	return list
}

// Delete elimina la orden.
func (r *PurchaseOrderRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.orders, id)
	return nil
}
