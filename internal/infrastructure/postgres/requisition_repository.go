package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Compras-api/internal/domain/entity"
	"github.com/jhoicas/Compras-api/internal/domain/repository"
)

var _ repository.RequisitionRepository = (*RequisitionRepo)(nil)

const requisitionColumns = `
	r.id, r.name, r.quantity, r.description, r.employee_id, r.status, r.created_at,
	rp.id, rp.product_id, rp.product_name, rp.quantity, rp.created_at`

const requisitionFrom = `
	FROM requisitions r
	JOIN requested_products rp ON rp.id = r.requested_product_id`

// RequisitionRepo implementación del puerto RequisitionRepository sobre PostgreSQL.
// Las lecturas traen el RequestedProduct asociado en un join.
type RequisitionRepo struct {
	q Querier
}

// NewRequisitionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewRequisitionRepository(q Querier) *RequisitionRepo {
	return &RequisitionRepo{q: q}
}

// CreateRequested persiste el detalle de producto de una requisición.
func (r *RequisitionRepo) CreateRequested(rp *entity.RequestedProduct) error {
	query := `
		INSERT INTO requested_products (id, product_id, product_name, quantity, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		rp.ID, rp.ProductID, rp.ProductName, rp.Quantity, rp.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert requested product: %w", err)
	}
	return nil
}

// Create persiste una nueva requisición referenciando su RequestedProduct.
func (r *RequisitionRepo) Create(req *entity.Requisition) error {
	query := `
		INSERT INTO requisitions (id, name, quantity, description, employee_id, status, requested_product_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		req.ID, req.Name, req.Quantity, req.Description, req.EmployeeID,
		req.Status, req.Requested.ID, req.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert requisition: %w", err)
	}
	return nil
}

// GetByID obtiene una requisición con su detalle. Devuelve nil, nil si no existe.
func (r *RequisitionRepo) GetByID(id string) (*entity.Requisition, error) {
	query := `SELECT ` + requisitionColumns + requisitionFrom + ` WHERE r.id = $1`
	return r.get(query, id)
}

// GetByIDForUpdate obtiene la requisición y bloquea su fila (FOR UPDATE OF r).
func (r *RequisitionRepo) GetByIDForUpdate(id string) (*entity.Requisition, error) {
	query := `SELECT ` + requisitionColumns + requisitionFrom + ` WHERE r.id = $1 FOR UPDATE OF r`
	return r.get(query, id)
}

func (r *RequisitionRepo) get(query, id string) (*entity.Requisition, error) {
	var req entity.Requisition
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&req.ID, &req.Name, &req.Quantity, &req.Description, &req.EmployeeID, &req.Status, &req.CreatedAt,
		&req.Requested.ID, &req.Requested.ProductID, &req.Requested.ProductName,
		&req.Requested.Quantity, &req.Requested.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get requisition: %w", err)
	}
	return &req, nil
}

// UpdateStatus transiciona el estado de la requisición.
func (r *RequisitionRepo) UpdateStatus(id string, status entity.Status) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE requisitions SET status = $2 WHERE id = $1`,
		id, status,
	)
	if err != nil {
		return fmt.Errorf("update requisition status: %w", err)
	}
	return nil
}

// ListByStatus lista requisiciones filtrando por estado (cola de revisión).
func (r *RequisitionRepo) ListByStatus(status entity.Status) ([]*entity.Requisition, error) {
	query := `SELECT ` + requisitionColumns + requisitionFrom + ` WHERE r.status = $1 ORDER BY r.created_at`
	return r.list(query, status)
}

// ListAll lista requisiciones con paginación.
func (r *RequisitionRepo) ListAll(limit, offset int) ([]*entity.Requisition, error) {
	query := `SELECT ` + requisitionColumns + requisitionFrom + ` ORDER BY r.created_at DESC LIMIT $1 OFFSET $2`
	return r.list(query, limit, offset)
}

func (r *RequisitionRepo) list(query string, args ...any) ([]*entity.Requisition, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list requisitions: %w", err)
	}
	defer rows.Close()
	var list []*entity.Requisition
	for rows.Next() {
		var req entity.Requisition
		if err := rows.Scan(
			&req.ID, &req.Name, &req.Quantity, &req.Description, &req.EmployeeID, &req.Status, &req.CreatedAt,
			&req.Requested.ID, &req.Requested.ProductID, &req.Requested.ProductName,
			&req.Requested.Quantity, &req.Requested.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan requisition: %w", err)
		}
		list = append(list, &req)
	}
	return list, rows.Err()
}
