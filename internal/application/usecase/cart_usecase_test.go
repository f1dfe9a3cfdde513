package usecase_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Compras-api/internal/application/usecase"
	"github.com/jhoicas/Compras-api/internal/domain"
	"github.com/jhoicas/Compras-api/internal/domain/entity"
	"github.com/jhoicas/Compras-api/internal/infrastructure/memory"
)

func newCartUC(t *testing.T) (*usecase.CartUseCase, *memory.PurchaseOrderRepository) {
	t.Helper()
	orders := memory.NewPurchaseOrderRepository()
	reqs := memory.NewRequisitionRepository()
	return usecase.NewCartUseCase(orders, reqs), orders
}

func seedOrder(t *testing.T, orders *memory.PurchaseOrderRepository, id, employee string, status entity.Status) {
	t.Helper()
	require.NoError(t, orders.Create(&entity.PurchaseOrder{
		ID:          id,
		Employee:    employee,
		ProductName: "Tornillos",
		Quantity:    2,
		Price:       decimal.NewFromInt(100),
		Status:      status,
		CreatedAt:   time.Now(),
	}))
}

func TestMyOrders_SoloLasDelEmpleado(t *testing.T) {
	uc, orders := newCartUC(t)
	seedOrder(t, orders, "o1", "ana", entity.StatusPending)
	seedOrder(t, orders, "o2", "luis", entity.StatusPending)

	out, err := uc.MyOrders("ana")
	require.NoError(t, err)

	require.Len(t, out, 1)
	assert.Equal(t, "o1", out[0].ID)
}

func TestMyOrders_SinEmpleado_ErrUnauthorized(t *testing.T) {
	uc, _ := newCartUC(t)
	_, err := uc.MyOrders("")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestRemoveOrder_PropiaPendiente_OK(t *testing.T) {
	uc, orders := newCartUC(t)
	seedOrder(t, orders, "o1", "ana", entity.StatusPending)

	require.NoError(t, uc.RemoveOrder("ana", "o1"))

	o, err := orders.GetByID("o1")
	require.NoError(t, err)
	assert.Nil(t, o)
}

func TestRemoveOrder_Ajena_ErrForbidden(t *testing.T) {
	uc, orders := newCartUC(t)
	seedOrder(t, orders, "o1", "luis", entity.StatusPending)

	err := uc.RemoveOrder("ana", "o1")
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

// Una orden ya revisada no puede retirarse del carrito.
func TestRemoveOrder_YaFinalizada_ErrAlreadyFinalized(t *testing.T) {
	uc, orders := newCartUC(t)
	seedOrder(t, orders, "o1", "ana", entity.StatusApproved)

	err := uc.RemoveOrder("ana", "o1")
	assert.ErrorIs(t, err, domain.ErrAlreadyFinalized)
}

func TestRemoveOrder_Inexistente_ErrNotFound(t *testing.T) {
	uc, _ := newCartUC(t)
	err := uc.RemoveOrder("ana", "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
