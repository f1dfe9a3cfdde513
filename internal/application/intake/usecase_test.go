package intake_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Compras-api/internal/application/dto"
	"github.com/jhoicas/Compras-api/internal/application/intake"
	"github.com/jhoicas/Compras-api/internal/domain"
	"github.com/jhoicas/Compras-api/internal/domain/entity"
	"github.com/jhoicas/Compras-api/internal/infrastructure/memory"
)

type testEnv struct {
	products *memory.ProductRepository
	orders   *memory.PurchaseOrderRepository
	reqs     *memory.RequisitionRepository
	uc       *intake.IntakeUseCase
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
		uc:       intake.NewIntakeUseCase(txRunner, products, orders),
	}
}

func (e *testEnv) seedProduct(t *testing.T, id, name string, qty int64, price int64) {
	t.Helper()
	now := time.Now()
	require.NoError(t, e.products.Create(&entity.Product{
		ID:          id,
		Name:        name,
		Description: "desc " + name,
		Quantity:    qty,
		Price:       decimal.NewFromInt(price),
		CreatedAt:   now,
		UpdatedAt:   now,
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
// SubmitOrder — carrito de órdenes de compra
// ──────────────────────────────────────────────────────────────────────────────

// Cada ítem con cantidad > 0 genera una orden Pending con instantánea del
// producto. El inventario no se toca.
func TestSubmitOrder_CreaOrdenesPendientes(t *testing.T) {
	env := newTestEnv()
	env.seedProduct(t, "p1", "Tornillos", 10, 150)

	out, err := env.uc.SubmitOrder(context.Background(), "empleado.prueba", dto.SubmitItemsRequest{
		Items: map[string]int64{"p1": 4},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, out.Added)
	assert.Empty(t, out.Errors)
	assert.Equal(t, int64(10), env.productQty(t, "p1"),
		"enviar una orden no debe mover stock")

	orders, err := env.orders.ListByEmployee("empleado.prueba")
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "Tornillos", orders[0].ProductName)
	assert.Equal(t, int64(4), orders[0].Quantity)
	assert.True(t, decimal.NewFromInt(150).Equal(orders[0].Price),
		"la orden guarda el precio como instantánea")
	assert.Equal(t, entity.StatusPending, orders[0].Status)
}

// Un producto inexistente genera un error por ítem y el lote continúa.
func TestSubmitOrder_ProductoInexistente_FalloParcial(t *testing.T) {
	env := newTestEnv()
	env.seedProduct(t, "p1", "Tornillos", 10, 150)

	out, err := env.uc.SubmitOrder(context.Background(), "empleado.prueba", dto.SubmitItemsRequest{
		Items: map[string]int64{"p1": 2, "zz-no-existe": 3},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, out.Added)
	require.Len(t, out.Errors, 1)
	assert.Contains(t, out.Errors[0], "zz-no-existe")
}

// Cantidades cero o negativas se ignoran sin contar como error.
func TestSubmitOrder_CantidadesNoPositivas_SeIgnoran(t *testing.T) {
	env := newTestEnv()
	env.seedProduct(t, "p1", "Tornillos", 10, 150)

	out, err := env.uc.SubmitOrder(context.Background(), "empleado.prueba", dto.SubmitItemsRequest{
		Items: map[string]int64{"p1": 0, "otro": -5},
	})
	require.NoError(t, err)

	assert.Equal(t, 0, out.Added)
	assert.Empty(t, out.Errors)
}

func TestSubmitOrder_SinEmpleado_ErrUnauthorized(t *testing.T) {
	env := newTestEnv()
	_, err := env.uc.SubmitOrder(context.Background(), "", dto.SubmitItemsRequest{
		Items: map[string]int64{"p1": 1},
	})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

// ──────────────────────────────────────────────────────────────────────────────
// SubmitRequisition — reserva especulativa de stock
// ──────────────────────────────────────────────────────────────────────────────

// Enviar una requisición descuenta la cantidad del stock como reserva y crea
// la requisición Pending con su detalle.
func TestSubmitRequisition_DescuentaStock(t *testing.T) {
	env := newTestEnv()
	env.seedProduct(t, "p1", "Cajas", 10, 80)

	out, err := env.uc.SubmitRequisition(context.Background(), "emp-1", dto.SubmitItemsRequest{
		Items: map[string]int64{"p1": 3},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, out.Added)
	assert.Empty(t, out.Errors)
	assert.Equal(t, int64(7), env.productQty(t, "p1"),
		"el intake reserva stock descontándolo de inmediato")

	reqs, err := env.reqs.ListByStatus(entity.StatusPending)
	require.NoError(t, err)
	require.Len(t, reqs, 1)
	assert.Equal(t, "Cajas", reqs[0].Name)
	assert.Equal(t, int64(3), reqs[0].Quantity)
	assert.Equal(t, "emp-1", reqs[0].EmployeeID)
	assert.Equal(t, "p1", reqs[0].Requested.ProductID)
}

// Un ítem que supere el stock disponible se rechaza con error de stock
// insuficiente; el inventario nunca queda en negativo.
func TestSubmitRequisition_StockInsuficiente_NoQuedaNegativo(t *testing.T) {
	env := newTestEnv()
	env.seedProduct(t, "p1", "Cajas", 2, 80)

	out, err := env.uc.SubmitRequisition(context.Background(), "emp-1", dto.SubmitItemsRequest{
		Items: map[string]int64{"p1": 5},
	})
	require.NoError(t, err)

	assert.Equal(t, 0, out.Added)
	require.Len(t, out.Errors, 1)
	assert.Contains(t, out.Errors[0], "stock insuficiente")
	assert.Equal(t, int64(2), env.productQty(t, "p1"),
		"un ítem rechazado no debe mover stock")

	reqs, err := env.reqs.ListAll(100, 0)
	require.NoError(t, err)
	assert.Empty(t, reqs, "no debe crearse requisición para el ítem rechazado")
}

// El fallo de un ítem no aborta el resto del lote.
func TestSubmitRequisition_FalloParcialDelLote(t *testing.T) {
	env := newTestEnv()
	env.seedProduct(t, "a-cajas", "Cajas", 10, 80)
	env.seedProduct(t, "b-cinta", "Cinta", 1, 20)

	out, err := env.uc.SubmitRequisition(context.Background(), "emp-1", dto.SubmitItemsRequest{
		Items: map[string]int64{
			"a-cajas":     4,
			"b-cinta":     5, // supera el stock
			"c-no-existe": 1,
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, out.Added)
	require.Len(t, out.Errors, 2)
	// Los errores salen en orden estable por ID de producto.
	assert.Contains(t, out.Errors[0], "stock insuficiente")
	assert.Contains(t, out.Errors[0], "b-cinta")
	assert.Contains(t, out.Errors[1], "c-no-existe")

	assert.Equal(t, int64(6), env.productQty(t, "a-cajas"))
	assert.Equal(t, int64(1), env.productQty(t, "b-cinta"))
}

// Pedir exactamente el stock disponible es válido y deja el stock en cero.
func TestSubmitRequisition_StockExacto_QuedaEnCero(t *testing.T) {
	env := newTestEnv()
	env.seedProduct(t, "p1", "Cajas", 3, 80)

	out, err := env.uc.SubmitRequisition(context.Background(), "emp-1", dto.SubmitItemsRequest{
		Items: map[string]int64{"p1": 3},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, out.Added)
	assert.Equal(t, int64(0), env.productQty(t, "p1"))
}

func TestSubmitRequisition_SinEmpleado_ErrUnauthorized(t *testing.T) {
	env := newTestEnv()
	_, err := env.uc.SubmitRequisition(context.Background(), "", dto.SubmitItemsRequest{
		Items: map[string]int64{"p1": 1},
	})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
