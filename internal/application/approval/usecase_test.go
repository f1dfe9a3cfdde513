package approval_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Compras-api/internal/application/approval"
	"github.com/jhoicas/Compras-api/internal/domain"
	"github.com/jhoicas/Compras-api/internal/domain/entity"
	"github.com/jhoicas/Compras-api/internal/infrastructure/memory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

type testEnv struct {
	products *memory.ProductRepository
	orders   *memory.PurchaseOrderRepository
	reqs     *memory.RequisitionRepository
	uc       *approval.ApprovalUseCase
}

func newTestEnv() *testEnv {
	products := memory.NewProductRepository()
	orders := memory.NewPurchaseOrderRepository()
	reqs := memory.NewRequisitionRepository()
	txRunner := memory.NewTxRunner(orders, reqs, products)
	return &testEnv{
		products: products,
		orders:   orders,
		reqs:     reqs,
		uc:       approval.NewApprovalUseCase(txRunner),
	}
}

func (e *testEnv) seedProduct(t *testing.T, id, name string, qty int64) {
	t.Helper()
	now := time.Now()
	require.NoError(t, e.products.Create(&entity.Product{
		ID:        id,
		Name:      name,
		Quantity:  qty,
		Price:     decimal.NewFromInt(100),
		CreatedAt: now,
		UpdatedAt: now,
	}))
}

func (e *testEnv) seedOrder(t *testing.T, id, productName string, qty int64, status entity.Status) {
	t.Helper()
	require.NoError(t, e.orders.Create(&entity.PurchaseOrder{
		ID:          id,
		Employee:    "empleado.prueba",
		ProductName: productName,
		Quantity:    qty,
		Price:       decimal.NewFromInt(100),
		Status:      status,
		CreatedAt:   time.Now(),
	}))
}

func (e *testEnv) seedRequisition(t *testing.T, id, productID, productName string, qty int64, status entity.Status) {
	t.Helper()
	now := time.Now()
	requested := entity.RequestedProduct{
		ID:          id + "-detalle",
		ProductID:   productID,
		ProductName: productName,
		Quantity:    qty,
		CreatedAt:   now,
	}
	require.NoError(t, e.reqs.CreateRequested(&requested))
	require.NoError(t, e.reqs.Create(&entity.Requisition{
		ID:         id,
		Name:       productName,
		Quantity:   qty,
		EmployeeID: "emp-1",
		Status:     status,
		Requested:  requested,
		CreatedAt:  now,
	}))
}

func (e *testEnv) productQty(t *testing.T, id string) int64 {
	t.Helper()
	p, err := e.products.GetByID(id)
	require.NoError(t, err)
	require.NotNil(t, p)
	return p.Quantity
}

// ──────────────────────────────────────────────────────────────────────────────
// Órdenes de compra
// ──────────────────────────────────────────────────────────────────────────────

// Aprobar una orden pendiente aumenta el stock del producto en la cantidad ordenada.
func TestApproveOrder_AumentaStock(t *testing.T) {
	env := newTestEnv()
	env.seedProduct(t, "p1", "Tornillos", 10)
	env.seedOrder(t, "o1", "Tornillos", 5, entity.StatusPending)

	out, err := env.uc.ApproveOrder(context.Background(), "o1")
	require.NoError(t, err)

	assert.Equal(t, "o1", out.ID)
	assert.Equal(t, string(entity.StatusApproved), out.Status)
	assert.Empty(t, out.Warning)
	assert.Equal(t, int64(15), env.productQty(t, "p1"),
		"el stock debe aumentar en la cantidad ordenada")

	order, err := env.orders.GetByID("o1")
	require.NoError(t, err)
	assert.Equal(t, entity.StatusApproved, order.Status)
}

// Si el producto de la orden ya no existe, la aprobación se confirma igual y
// devuelve una advertencia no fatal.
func TestApproveOrder_ProductoInexistente_ApruebaConAdvertencia(t *testing.T) {
	env := newTestEnv()
	env.seedOrder(t, "o1", "Producto Borrado", 5, entity.StatusPending)

	out, err := env.uc.ApproveOrder(context.Background(), "o1")
	require.NoError(t, err)

	assert.Equal(t, string(entity.StatusApproved), out.Status)
	assert.NotEmpty(t, out.Warning, "debe reportar que no se ajustó inventario")

	order, err := env.orders.GetByID("o1")
	require.NoError(t, err)
	assert.Equal(t, entity.StatusApproved, order.Status,
		"el cambio de estado se confirma aunque el producto no exista")
}

// Una orden ya finalizada no puede volver a transicionar; el stock se ajusta
// una sola vez.
func TestApproveOrder_DobleAprobacion_ErrAlreadyFinalized(t *testing.T) {
	env := newTestEnv()
	env.seedProduct(t, "p1", "Tornillos", 10)
	env.seedOrder(t, "o1", "Tornillos", 5, entity.StatusPending)

	_, err := env.uc.ApproveOrder(context.Background(), "o1")
	require.NoError(t, err)

	_, err = env.uc.ApproveOrder(context.Background(), "o1")
	assert.ErrorIs(t, err, domain.ErrAlreadyFinalized)
	assert.Equal(t, int64(15), env.productQty(t, "p1"),
		"el ajuste de inventario no debe aplicarse dos veces")
}

// Rechazar una orden rechazada previamente también es ErrAlreadyFinalized: los
// estados finales son terminales en ambas direcciones.
func TestRejectOrder_SobreOrdenAprobada_ErrAlreadyFinalized(t *testing.T) {
	env := newTestEnv()
	env.seedProduct(t, "p1", "Tornillos", 10)
	env.seedOrder(t, "o1", "Tornillos", 5, entity.StatusApproved)

	_, err := env.uc.RejectOrder(context.Background(), "o1")
	assert.ErrorIs(t, err, domain.ErrAlreadyFinalized)
}

// Rechazar una orden pendiente no toca el inventario.
func TestRejectOrder_SinEfectoEnInventario(t *testing.T) {
	env := newTestEnv()
	env.seedProduct(t, "p1", "Tornillos", 10)
	env.seedOrder(t, "o1", "Tornillos", 5, entity.StatusPending)

	out, err := env.uc.RejectOrder(context.Background(), "o1")
	require.NoError(t, err)

	assert.Equal(t, string(entity.StatusRejected), out.Status)
	assert.Equal(t, int64(10), env.productQty(t, "p1"))
}

func TestApproveOrder_OrdenInexistente_ErrNotFound(t *testing.T) {
	env := newTestEnv()
	_, err := env.uc.ApproveOrder(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Requisiciones
// ──────────────────────────────────────────────────────────────────────────────

// Aprobar una requisición no modifica el inventario: la reserva hecha en el
// intake ya refleja el estado aprobado. Solo limpia awaiting_approval.
func TestApproveRequisition_SinEfectoEnInventario(t *testing.T) {
	env := newTestEnv()
	env.seedProduct(t, "p1", "Cajas", 7) // 7 = stock tras reservar 3 de 10
	env.seedRequisition(t, "r1", "p1", "Cajas", 3, entity.StatusPending)
	require.NoError(t, env.products.SetAwaitingApproval("p1", true))

	out, err := env.uc.ApproveRequisition(context.Background(), "r1")
	require.NoError(t, err)

	assert.Equal(t, string(entity.StatusApproved), out.Status)
	assert.Equal(t, int64(7), env.productQty(t, "p1"),
		"la aprobación no debe mover stock: la reserva del intake ya lo descontó")

	p, err := env.products.GetByID("p1")
	require.NoError(t, err)
	assert.False(t, p.AwaitingApproval, "la marca de revisión debe limpiarse")
}

// Rechazar una requisición restaura al stock la cantidad reservada.
func TestRejectRequisition_RestauraStock(t *testing.T) {
	env := newTestEnv()
	env.seedProduct(t, "p1", "Cajas", 7)
	env.seedRequisition(t, "r1", "p1", "Cajas", 3, entity.StatusPending)
	require.NoError(t, env.products.SetAwaitingApproval("p1", true))

	out, err := env.uc.RejectRequisition(context.Background(), "r1")
	require.NoError(t, err)

	assert.Equal(t, string(entity.StatusRejected), out.Status)
	assert.Equal(t, int64(10), env.productQty(t, "p1"),
		"el rechazo debe devolver la cantidad reservada al stock")

	p, err := env.products.GetByID("p1")
	require.NoError(t, err)
	assert.False(t, p.AwaitingApproval)
}

// Un doble rechazo no restaura stock dos veces.
func TestRejectRequisition_DobleRechazo_ErrAlreadyFinalized(t *testing.T) {
	env := newTestEnv()
	env.seedProduct(t, "p1", "Cajas", 7)
	env.seedRequisition(t, "r1", "p1", "Cajas", 3, entity.StatusPending)

	_, err := env.uc.RejectRequisition(context.Background(), "r1")
	require.NoError(t, err)

	_, err = env.uc.RejectRequisition(context.Background(), "r1")
	assert.ErrorIs(t, err, domain.ErrAlreadyFinalized)
	assert.Equal(t, int64(10), env.productQty(t, "p1"),
		"la restauración debe aplicarse una sola vez")
}

func TestApproveRequisition_Inexistente_ErrNotFound(t *testing.T) {
	env := newTestEnv()
	_, err := env.uc.ApproveRequisition(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Colas de revisión
// ──────────────────────────────────────────────────────────────────────────────

func TestListPendingOrders_SoloPendientes(t *testing.T) {
	env := newTestEnv()
	env.seedOrder(t, "o1", "Tornillos", 5, entity.StatusPending)
	env.seedOrder(t, "o2", "Cajas", 2, entity.StatusApproved)
	env.seedOrder(t, "o3", "Cinta", 1, entity.StatusPending)

	out, err := env.uc.ListPendingOrders(context.Background())
	require.NoError(t, err)

	require.Len(t, out, 2)
	for _, o := range out {
		assert.Equal(t, string(entity.StatusPending), o.Status)
	}
}

// Listar las requisiciones pendientes marca awaiting_approval en cada producto
// referenciado: entrar a la cola de revisión señala el producto.
func TestListPendingRequisitions_MarcaAwaitingApproval(t *testing.T) {
	env := newTestEnv()
	env.seedProduct(t, "p1", "Cajas", 7)
	env.seedProduct(t, "p2", "Cinta", 4)
	env.seedRequisition(t, "r1", "p1", "Cajas", 3, entity.StatusPending)
	env.seedRequisition(t, "r2", "p2", "Cinta", 1, entity.StatusRejected)

	out, err := env.uc.ListPendingRequisitions(context.Background())
	require.NoError(t, err)

	require.Len(t, out, 1)
	assert.Equal(t, "r1", out[0].ID)

	p1, err := env.products.GetByID("p1")
	require.NoError(t, err)
	assert.True(t, p1.AwaitingApproval, "el producto de la requisición pendiente debe marcarse")

	p2, err := env.products.GetByID("p2")
	require.NoError(t, err)
	assert.False(t, p2.AwaitingApproval, "las requisiciones finalizadas no marcan producto")
}
