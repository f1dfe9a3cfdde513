package usecase_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Compras-api/internal/application/dto"
	"github.com/jhoicas/Compras-api/internal/application/usecase"
	"github.com/jhoicas/Compras-api/internal/domain"
	"github.com/jhoicas/Compras-api/internal/domain/entity"
	"github.com/jhoicas/Compras-api/internal/infrastructure/memory"
)

func newProductUC() (*usecase.ProductUseCase, *memory.ProductRepository, *memory.SupplierRepository) {
	products := memory.NewProductRepository()
	suppliers := memory.NewSupplierRepository()
	return usecase.NewProductUseCase(products, suppliers), products, suppliers
}

func TestProductCreate_Basico(t *testing.T) {
	uc, _, _ := newProductUC()

	out, err := uc.Create(dto.CreateProductRequest{
		Name:     "Tornillos",
		Quantity: 10,
		Price:    decimal.NewFromInt(150),
	})
	require.NoError(t, err)

	assert.NotEmpty(t, out.ID)
	assert.Equal(t, "Tornillos", out.Name)
	assert.Equal(t, int64(10), out.Quantity)
	assert.False(t, out.AwaitingApproval)
}

// Cantidad y precio negativos se corrigen a su valor absoluto al crear.
func TestProductCreate_NegativosSeCorrigenAAbsoluto(t *testing.T) {
	uc, _, _ := newProductUC()

	out, err := uc.Create(dto.CreateProductRequest{
		Name:     "Cajas",
		Quantity: -5,
		Price:    decimal.NewFromFloat(-12.50),
	})
	require.NoError(t, err)

	assert.Equal(t, int64(5), out.Quantity)
	assert.True(t, decimal.NewFromFloat(12.50).Equal(out.Price),
		"el precio negativo debe guardarse como su valor absoluto")
}

func TestProductCreate_SinNombre_ErrInvalidInput(t *testing.T) {
	uc, _, _ := newProductUC()
	_, err := uc.Create(dto.CreateProductRequest{Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductCreate_ProveedorInexistente_ErrNotFound(t *testing.T) {
	uc, _, _ := newProductUC()
	sid := "no-existe"
	_, err := uc.Create(dto.CreateProductRequest{Name: "Cajas", SupplierID: &sid})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Actualizar con precio negativo también corrige a absoluto.
func TestProductUpdate_PrecioNegativoSeCorrige(t *testing.T) {
	uc, _, _ := newProductUC()
	created, err := uc.Create(dto.CreateProductRequest{Name: "Cinta", Price: decimal.NewFromInt(10)})
	require.NoError(t, err)

	neg := decimal.NewFromInt(-20)
	out, err := uc.Update(created.ID, dto.UpdateProductRequest{Price: &neg})
	require.NoError(t, err)

	assert.True(t, decimal.NewFromInt(20).Equal(out.Price))
}

func TestProductUpdate_Inexistente_DevuelveNil(t *testing.T) {
	uc, _, _ := newProductUC()
	out, err := uc.Update("no-existe", dto.UpdateProductRequest{})
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestProductAttachSupplier(t *testing.T) {
	uc, products, suppliers := newProductUC()
	require.NoError(t, suppliers.Create(&entity.Supplier{
		ID: "s1", Name: "Ferretería Central", CreatedAt: time.Now(),
	}))
	created, err := uc.Create(dto.CreateProductRequest{Name: "Tornillos"})
	require.NoError(t, err)

	require.NoError(t, uc.AttachSupplier(created.ID, "s1"))

	p, err := products.GetByID(created.ID)
	require.NoError(t, err)
	require.NotNil(t, p.SupplierID)
	assert.Equal(t, "s1", *p.SupplierID)
}

func TestProductList_Paginado(t *testing.T) {
	uc, _, _ := newProductUC()
	for _, name := range []string{"A", "B", "C"} {
		_, err := uc.Create(dto.CreateProductRequest{Name: name})
		require.NoError(t, err)
	}

	out, err := uc.List(2, 0)
	require.NoError(t, err)
	assert.Len(t, out.Items, 2)
	assert.Equal(t, 2, out.Page.Limit)

	out, err = uc.List(2, 2)
	require.NoError(t, err)
	assert.Len(t, out.Items, 1)
}
