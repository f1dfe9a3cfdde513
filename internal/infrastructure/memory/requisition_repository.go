package memory

import (
	"sort"
	"sync"

	"github.com/jhoicas/Compras-api/internal/domain"
	"github.com/jhoicas/Compras-api/internal/domain/entity"
	"github.com/jhoicas/Compras-api/internal/domain/repository"
)

// Verify interface compliance
var _ repository.RequisitionRepository = (*RequisitionRepository)(nil)

// RequisitionRepository implementación en memoria de RequisitionRepository.
type RequisitionRepository struct {
	mu        sync.Mutex
	requested map[string]*entity.RequestedProduct
	reqs      map[string]*entity.Requisition
}

// NewRequisitionRepository crea el repositorio en memoria.
func NewRequisitionRepository() *RequisitionRepository {
	return &RequisitionRepository{
		requested: make(map[string]*entity.RequestedProduct),
		reqs:      make(map[string]*entity.Requisition),
	}
}

// CreateRequested guarda el detalle de producto de una requisición.
func (r *RequisitionRepository) CreateRequested(rp *entity.RequestedProduct) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *rp
	r.requested[rp.ID] = &clone
	return nil
}

// Create guarda una nueva requisición.
func (r *RequisitionRepository) Create(req *entity.Requisition) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.reqs[req.ID]; ok {
		return domain.ErrDuplicate
	}
	clone := *req
	r.reqs[req.ID] = &clone
	return nil
}

// GetByID devuelve una copia de la requisición, o nil, nil si no existe.
func (r *RequisitionRepository) GetByID(id string) (*entity.Requisition, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	req, ok := r.reqs[id]
	if !ok {
		return nil, nil
	}
	clone := *req
	return &clone, nil
}

// GetByIDForUpdate en memoria equivale a GetByID (el TxRunner ya serializa).
func (r *RequisitionRepository) GetByIDForUpdate(id string) (*entity.Requisition, error) {
	return r.GetByID(id)
}

// UpdateStatus transiciona el estado de la requisición.
func (r *RequisitionRepository) UpdateStatus(id string, status entity.Status) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	req, ok := r.reqs[id]
	if !ok {
		return domain.ErrNotFound
	}
	req.Status = status
	return nil
}

// ListByStatus lista requisiciones por estado, de la más antigua a la más reciente.
func (r *RequisitionRepository) ListByStatus(status entity.Status) ([]*entity.Requisition, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var list []*entity.Requisition
	for _, req := range r.reqs {
		if req.Status == status {
			clone := *req
			list = append(list, &clone)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].CreatedAt.Before(list[j].CreatedAt) })
	return list, nil
}

// ListAll lista requisiciones con paginación, de la más reciente a la más antigua.
func (r *RequisitionRepository) ListAll(limit, offset int) ([]*entity.Requisition, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var list []*entity.Requisition
	for _, req := range r.reqs {
		clone := *req
		list = append(list, &clone)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].CreatedAt.After(list[j].CreatedAt) })
	return paginate(list, limit, offset), nil
}

// DeleteByProduct elimina requisiciones y detalles que referencien al producto
// (emula el ON DELETE CASCADE del esquema relacional).
func (r *RequisitionRepository) DeleteByProduct(productID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, req := range r.reqs {
		if req.Requested.ProductID == productID {
			delete(r.reqs, id)
			delete(r.requested, req.Requested.ID)
		}
	}
}
