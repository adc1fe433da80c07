package service

import (
	"context"
	"testing"

	"github.com/RoyceAzure/lab/ecommerce/internal/domain/model"
	"github.com/RoyceAzure/lab/ecommerce/internal/domain/model/event"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func newTestProduct(id uint, name, price, discountPct string, stock uint) *model.Product {
	return &model.Product{
		ProductID:          id,
		Name:               name,
		Price:              decimal.RequireFromString(price),
		StockQuantity:      stock,
		DiscountPercentage: decimal.RequireFromString(discountPct),
		IsAvailable:        true,
		CategoryID:         1,
	}
}

func newTestCartService(products ...*model.Product) (*CartService, *fakeCartRepo, *fakeProductRepo, *fakeCartEventProducer) {
	cartRepo := newFakeCartRepo()
	productRepo := newFakeProductRepo(products...)
	eventProducer := &fakeCartEventProducer{}
	return NewCartService(cartRepo, productRepo, eventProducer), cartRepo, productRepo, eventProducer
}

func TestGetActiveCartWithoutCart(t *testing.T) {
	svc, _, _, _ := newTestCartService()

	cart, err := svc.GetActiveCart(context.Background(), 1)
	require.NoError(t, err)
	require.NotNil(t, cart)
	require.Equal(t, uint(0), cart.CartID)
	require.Equal(t, uint(1), cart.CustomerID)
	require.Empty(t, cart.Items)
	require.False(t, cart.IsCheckedOut)
}

func TestAddItemCreatesCartOnFirstAdd(t *testing.T) {
	svc, _, _, eventProducer := newTestCartService(
		newTestProduct(10, "keyboard", "100", "10", 10),
	)

	cart, err := svc.AddItem(context.Background(), 1, 10, 3)
	require.NoError(t, err)
	require.NotZero(t, cart.CartID)
	require.Len(t, cart.Items, 1)

	item := cart.Items[0]
	require.Equal(t, uint(10), item.ProductID)
	require.Equal(t, uint(3), item.Quantity)
	require.True(t, item.UnitPrice.Equal(decimal.RequireFromString("100")))
	require.True(t, item.Discount.Equal(decimal.RequireFromString("10")))
	require.True(t, item.TotalPrice.Equal(decimal.RequireFromString("270")), "got %s", item.TotalPrice)

	agg := CalculateCartAggregates(cart.Items)
	require.True(t, agg.TotalBasePrice.Equal(decimal.RequireFromString("300")))
	require.True(t, agg.TotalDiscount.Equal(decimal.RequireFromString("30")))
	require.True(t, agg.TotalAmount.Equal(decimal.RequireFromString("270")))

	require.Equal(t, []event.EventType{event.CartCreatedEventName}, eventProducer.producedTypes())
}

func TestAddItemMergesExistingLine(t *testing.T) {
	product := newTestProduct(10, "keyboard", "100", "10", 10)
	svc, _, productRepo, eventProducer := newTestCartService(product)

	_, err := svc.AddItem(context.Background(), 1, 10, 2)
	require.NoError(t, err)

	// 商品漲價，既有line item的快照不受影響
	product.Price = decimal.RequireFromString("150")
	require.NoError(t, productRepo.UpdateProduct(context.Background(), product))

	cart, err := svc.AddItem(context.Background(), 1, 10, 3)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)

	item := cart.Items[0]
	require.Equal(t, uint(5), item.Quantity)
	require.True(t, item.UnitPrice.Equal(decimal.RequireFromString("100")), "unit price re-snapshotted: %s", item.UnitPrice)
	require.True(t, item.Discount.Equal(decimal.RequireFromString("10")))
	require.True(t, item.TotalPrice.Equal(decimal.RequireFromString("450")), "got %s", item.TotalPrice)

	require.Equal(t, []event.EventType{event.CartCreatedEventName, event.CartUpdatedEventName}, eventProducer.producedTypes())
}

func TestAddItemSeparateLinesPerProduct(t *testing.T) {
	svc, _, _, _ := newTestCartService(
		newTestProduct(10, "keyboard", "100", "10", 10),
		newTestProduct(20, "mouse", "19.99", "0", 10),
	)

	_, err := svc.AddItem(context.Background(), 1, 10, 1)
	require.NoError(t, err)
	cart, err := svc.AddItem(context.Background(), 1, 20, 2)
	require.NoError(t, err)
	require.Len(t, cart.Items, 2)
}

func TestAddItemInsufficientStock(t *testing.T) {
	svc, _, _, _ := newTestCartService(
		newTestProduct(10, "keyboard", "100", "0", 5),
	)

	_, err := svc.AddItem(context.Background(), 1, 10, 3)
	require.NoError(t, err)

	// merge後超過庫存，整筆失敗且cart不變
	_, err = svc.AddItem(context.Background(), 1, 10, 3)
	var stockErr *InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	require.Equal(t, "keyboard", stockErr.ProductName)
	require.Equal(t, uint(5), stockErr.Available)
	require.Equal(t, uint(6), stockErr.Requested)

	cart, err := svc.GetActiveCart(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	require.Equal(t, uint(3), cart.Items[0].Quantity)
}

func TestAddItemExactStockBoundary(t *testing.T) {
	svc, _, _, _ := newTestCartService(
		newTestProduct(10, "keyboard", "100", "0", 5),
	)

	// 剛好等於庫存可以過
	cart, err := svc.AddItem(context.Background(), 1, 10, 5)
	require.NoError(t, err)
	require.Equal(t, uint(5), cart.Items[0].Quantity)

	_, err = svc.AddItem(context.Background(), 1, 10, 1)
	var stockErr *InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
}

func TestAddItemValidation(t *testing.T) {
	svc, _, _, _ := newTestCartService(
		newTestProduct(10, "keyboard", "100", "0", 5),
	)

	_, err := svc.AddItem(context.Background(), 1, 10, 0)
	require.ErrorIs(t, err, ErrInvalidQuantity)

	_, err = svc.AddItem(context.Background(), 1, 10, -1)
	require.ErrorIs(t, err, ErrInvalidQuantity)

	_, err = svc.AddItem(context.Background(), 1, 999, 1)
	require.ErrorIs(t, err, ErrProductNotFound)
}

func TestAddItemUnavailableProduct(t *testing.T) {
	product := newTestProduct(10, "keyboard", "100", "0", 5)
	product.IsAvailable = false
	svc, _, _, _ := newTestCartService(product)

	_, err := svc.AddItem(context.Background(), 1, 10, 1)
	require.ErrorIs(t, err, ErrProductUnavailable)
}

func TestUpdateItemQuantity(t *testing.T) {
	product := newTestProduct(10, "keyboard", "100", "10", 10)
	svc, _, productRepo, _ := newTestCartService(product)

	cart, err := svc.AddItem(context.Background(), 1, 10, 2)
	require.NoError(t, err)
	itemID := cart.Items[0].CartItemID

	// 改數量時用既有快照重算，不拿商品現價
	product.Price = decimal.RequireFromString("200")
	require.NoError(t, productRepo.UpdateProduct(context.Background(), product))

	cart, err = svc.UpdateItemQuantity(context.Background(), 1, itemID, 4)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	require.Equal(t, uint(4), cart.Items[0].Quantity)
	require.True(t, cart.Items[0].UnitPrice.Equal(decimal.RequireFromString("100")))
	require.True(t, cart.Items[0].TotalPrice.Equal(decimal.RequireFromString("360")), "got %s", cart.Items[0].TotalPrice)
}

func TestUpdateItemQuantityErrors(t *testing.T) {
	svc, _, _, _ := newTestCartService(
		newTestProduct(10, "keyboard", "100", "0", 5),
	)

	_, err := svc.UpdateItemQuantity(context.Background(), 1, 1, 0)
	require.ErrorIs(t, err, ErrInvalidQuantity)

	// 還沒有cart
	_, err = svc.UpdateItemQuantity(context.Background(), 1, 1, 2)
	require.ErrorIs(t, err, ErrCartNotFound)

	cart, err := svc.AddItem(context.Background(), 1, 10, 2)
	require.NoError(t, err)

	_, err = svc.UpdateItemQuantity(context.Background(), 1, 999, 2)
	require.ErrorIs(t, err, ErrCartItemNotFound)

	// 超過庫存
	_, err = svc.UpdateItemQuantity(context.Background(), 1, cart.Items[0].CartItemID, 6)
	var stockErr *InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	require.Equal(t, uint(6), stockErr.Requested)
}

func TestRemoveItemKeepsEmptyCart(t *testing.T) {
	svc, _, _, _ := newTestCartService(
		newTestProduct(10, "keyboard", "100", "0", 5),
	)

	cart, err := svc.AddItem(context.Background(), 1, 10, 2)
	require.NoError(t, err)
	cartID := cart.CartID

	// 移除最後一個item後cart row保留
	cart, err = svc.RemoveItem(context.Background(), 1, cart.Items[0].CartItemID)
	require.NoError(t, err)
	require.Equal(t, cartID, cart.CartID)
	require.Empty(t, cart.Items)
}

func TestRemoveItemErrors(t *testing.T) {
	svc, _, _, _ := newTestCartService(
		newTestProduct(10, "keyboard", "100", "0", 5),
	)

	_, err := svc.RemoveItem(context.Background(), 1, 1)
	require.ErrorIs(t, err, ErrCartNotFound)

	_, err = svc.AddItem(context.Background(), 1, 10, 2)
	require.NoError(t, err)

	_, err = svc.RemoveItem(context.Background(), 1, 999)
	require.ErrorIs(t, err, ErrCartItemNotFound)
}

func TestClearCart(t *testing.T) {
	svc, _, _, eventProducer := newTestCartService(
		newTestProduct(10, "keyboard", "100", "0", 5),
		newTestProduct(20, "mouse", "19.99", "0", 5),
	)

	_, err := svc.AddItem(context.Background(), 1, 10, 1)
	require.NoError(t, err)
	cart, err := svc.AddItem(context.Background(), 1, 20, 1)
	require.NoError(t, err)
	cartID := cart.CartID

	cart, err = svc.ClearCart(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, cartID, cart.CartID)
	require.Empty(t, cart.Items)

	// 重複清空為no-op，不會錯
	cart, err = svc.ClearCart(context.Background(), 1)
	require.NoError(t, err)
	require.Empty(t, cart.Items)

	types := eventProducer.producedTypes()
	require.Equal(t, event.CartClearedEventName, types[len(types)-1])
}

func TestClearCartWithoutCart(t *testing.T) {
	svc, _, _, _ := newTestCartService()

	_, err := svc.ClearCart(context.Background(), 1)
	require.ErrorIs(t, err, ErrCartNotFound)
}

func TestMutationSucceedsWhenEventProduceFails(t *testing.T) {
	svc, _, _, eventProducer := newTestCartService(
		newTestProduct(10, "keyboard", "100", "0", 5),
	)
	eventProducer.err = context.DeadlineExceeded

	// event發送失敗不影響結果
	cart, err := svc.AddItem(context.Background(), 1, 10, 2)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
}

func TestConcurrentCartCreateConflict(t *testing.T) {
	svc, cartRepo, _, _ := newTestCartService(
		newTestProduct(10, "keyboard", "100", "0", 5),
	)

	_, err := svc.AddItem(context.Background(), 1, 10, 1)
	require.NoError(t, err)

	// 模擬lock沒看到cart但create時撞unique index的併發情境
	cartRepo.raceOnLock = true
	_, err = svc.AddItem(context.Background(), 1, 10, 1)
	require.ErrorIs(t, err, ErrCartConflict)
}
