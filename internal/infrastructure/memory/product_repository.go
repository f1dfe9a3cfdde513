package memory

import (
	"sort"
	"sync"

	"github.com/jhoicas/Compras-api/internal/domain"
	"github.com/jhoicas/Compras-api/internal/domain/entity"
	"github.com/jhoicas/Compras-api/internal/domain/repository"
)

// Verify interface compliance
var _ repository.ProductRepository = (*ProductRepository)(nil)

// ProductRepository implementación en memoria de ProductRepository, para tests
// y desarrollo local. Las lecturas devuelven copias para evitar aliasing.
type ProductRepository struct {
	mu       sync.Mutex
	products map[string]*entity.Product
}

// NewProductRepository crea el repositorio en memoria.
func NewProductRepository() *ProductRepository {
	return &ProductRepository{products: make(map[string]*entity.Product)}
}

// Create guarda un nuevo producto.
func (r *ProductRepository) Create(product *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.products[product.ID]; ok {
		return domain.ErrDuplicate
	}
	clone := *product
	r.products[product.ID] = &clone
	return nil
}

// GetByID devuelve una copia del producto, o nil, nil si no existe.
func (r *ProductRepository) GetByID(id string) (*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	clone := *p
	return &clone, nil
}

// GetByIDForUpdate en memoria equivale a GetByID (el TxRunner ya serializa).
func (r *ProductRepository) GetByIDForUpdate(id string) (*entity.Product, error) {
	return r.GetByID(id)
}

// GetByName busca por nombre exacto. Devuelve nil, nil si no existe.
func (r *ProductRepository) GetByName(name string) (*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.products {
		if p.Name == name {
			clone := *p
			return &clone, nil
		}
	}
	return nil, nil
}

// Update reemplaza los campos editables del producto.
func (r *ProductRepository) Update(product *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.products[product.ID]
	if !ok {
		return domain.ErrNotFound
	}
	existing.Name = product.Name
	existing.Description = product.Description
	existing.Price = product.Price
	existing.UpdatedAt = product.UpdatedAt
	return nil
}

// AdjustQuantity aplica un incremento al stock.
func (r *ProductRepository) AdjustQuantity(id string, delta int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.products[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.Quantity += delta
	return nil
}

// SetAwaitingApproval marca o limpia la bandera de requisición en vuelo.
func (r *ProductRepository) SetAwaitingApproval(id string, awaiting bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.products[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.AwaitingApproval = awaiting
	return nil
}

// AttachSupplier asocia un proveedor al producto.
func (r *ProductRepository) AttachSupplier(productID, supplierID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.products[productID]
	if !ok {
		return domain.ErrNotFound
	}
	sid := supplierID
	p.SupplierID = &sid
	return nil
}

// List devuelve los productos ordenados por nombre, con paginación.
func (r *ProductRepository) List(limit, offset int) ([]*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var list []*entity.Product
	for _, p := range r.products {
		clone := *p
		list = append(list, &clone)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return paginate(list, limit, offset), nil
}

// Delete elimina el producto.
func (r *ProductRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.products, id)
	return nil
}

// paginate aplica limit/offset a un slice ya ordenado.
func paginate[T any](list []T, limit, offset int) []T {
	if offset >= len(list) {
		return nil
	}
	list = list[offset:]
	if limit > 0 && limit < len(list) {
		list = list[:limit]
	}
	return list
}
