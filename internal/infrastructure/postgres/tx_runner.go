package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/Compras-api/internal/application/approval"
	"github.com/jhoicas/Compras-api/internal/application/intake"
	"github.com/jhoicas/Compras-api/internal/domain/repository"
)

// Ensure TxRunner implements approval.TxRunner and intake.TxRunner.
var _ approval.TxRunner = (*TxRunner)(nil)
var _ intake.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(
	orderRepo repository.PurchaseOrderRepository,
	reqRepo repository.RequisitionRepository,
	productRepo repository.ProductRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	orderRepo := NewPurchaseOrderRepository(tx)
	reqRepo := NewRequisitionRepository(tx)
	productRepo := NewProductRepository(tx)

	if err := fn(orderRepo, reqRepo, productRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
