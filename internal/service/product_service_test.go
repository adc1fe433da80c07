package service

import (
	"context"
	"testing"

	"github.com/RoyceAzure/lab/ecommerce/internal/domain/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func newTestProductService() (*ProductService, *fakeProductRepo, *fakeCategoryRepo) {
	productRepo := newFakeProductRepo()
	categoryRepo := newFakeCategoryRepo(&model.Category{CategoryID: 1, Name: "peripherals"})
	return NewProductService(productRepo, categoryRepo), productRepo, categoryRepo
}

func TestCreateProduct(t *testing.T) {
	svc, _, _ := newTestProductService()

	created, err := svc.CreateProduct(context.Background(), &model.Product{
		Name:       "keyboard",
		Price:      decimal.RequireFromString("100"),
		CategoryID: 1,
	})
	require.NoError(t, err)
	require.NotZero(t, created.ProductID)
	require.True(t, created.IsAvailable)
}

func TestCreateProductDuplicateName(t *testing.T) {
	svc, _, _ := newTestProductService()

	_, err := svc.CreateProduct(context.Background(), &model.Product{Name: "keyboard", CategoryID: 1})
	require.NoError(t, err)

	_, err = svc.CreateProduct(context.Background(), &model.Product{Name: "keyboard", CategoryID: 1})
	require.ErrorIs(t, err, ErrProductNameUsed)
}

func TestCreateProductUnknownCategory(t *testing.T) {
	svc, _, _ := newTestProductService()

	_, err := svc.CreateProduct(context.Background(), &model.Product{Name: "keyboard", CategoryID: 999})
	require.ErrorIs(t, err, ErrCategoryNotFound)
}

func TestGetProductNotFound(t *testing.T) {
	svc, _, _ := newTestProductService()

	_, err := svc.GetProduct(context.Background(), 999)
	require.ErrorIs(t, err, ErrProductNotFound)
}

func TestUpdateProductNameConflict(t *testing.T) {
	svc, _, _ := newTestProductService()

	first, err := svc.CreateProduct(context.Background(), &model.Product{Name: "keyboard", CategoryID: 1})
	require.NoError(t, err)
	second, err := svc.CreateProduct(context.Background(), &model.Product{Name: "mouse", CategoryID: 1})
	require.NoError(t, err)

	second.Name = first.Name
	_, err = svc.UpdateProduct(context.Background(), second)
	require.ErrorIs(t, err, ErrProductNameUsed)
}

func TestUpdateStockNotFound(t *testing.T) {
	svc, _, _ := newTestProductService()

	err := svc.UpdateStock(context.Background(), 999, 10)
	require.ErrorIs(t, err, ErrProductNotFound)
}
