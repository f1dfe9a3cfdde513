package memory

import (
	"sort"
	"sync"

	"github.com/jhoicas/Compras-api/internal/domain"
	"github.com/jhoicas/Compras-api/internal/domain/entity"
	"github.com/jhoicas/Compras-api/internal/domain/repository"
)

// Verify interface compliance
var _ repository.SupplierRepository = (*SupplierRepository)(nil)

// SupplierRepository implementación en memoria de SupplierRepository.
type SupplierRepository struct {
	mu        sync.Mutex
	suppliers map[string]*entity.Supplier
}

// NewSupplierRepository crea el repositorio en memoria.
func NewSupplierRepository() *SupplierRepository {
	return &SupplierRepository{suppliers: make(map[string]*entity.Supplier)}
}

// Create guarda un nuevo proveedor.
func (r *SupplierRepository) Create(supplier *entity.Supplier) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.suppliers[supplier.ID]; ok {
		return domain.ErrDuplicate
	}
	clone := *supplier
	r.suppliers[supplier.ID] = &clone
	return nil
}

// GetByID devuelve una copia del proveedor, o nil, nil si no existe.
func (r *SupplierRepository) GetByID(id string) (*entity.Supplier, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.suppliers[id]
	if !ok {
		return nil, nil
	}
	clone := *s
	return &clone, nil
}

// List devuelve los proveedores ordenados por nombre, con paginación.
func (r *SupplierRepository) List(limit, offset int) ([]*entity.Supplier, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var list []*entity.Supplier
	for _, s := range r.suppliers {
		clone := *s
		list = append(list, &clone)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return paginate(list, limit, offset), nil
}
