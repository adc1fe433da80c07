package service

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidQuantity    = errors.New("quantity must be greater than zero")
	ErrProductNotFound    = errors.New("product not found")
	ErrProductUnavailable = errors.New("product is not available")
	ErrCartNotFound       = errors.New("active cart not found")
	ErrCartItemNotFound   = errors.New("cart item not found")
	// ErrCartConflict 並發修改同一customer的cart，呼叫端重試整個操作
	ErrCartConflict = errors.New("cart was modified concurrently")

	ErrCustomerNotFound  = errors.New("customer is not exist")
	ErrEmailAlreadyUsed  = errors.New("email is already in use")
	ErrAddressNotFound   = errors.New("address is not exist")
	ErrCategoryNotFound  = errors.New("category is not exist")
	ErrCategoryNameUsed  = errors.New("category name already exists")
	ErrProductNameUsed   = errors.New("product name already exists")
	ErrCustomerNotActive = errors.New("customer is not active")
)

// InsufficientStockError 回應需要帶可用庫存與商品名稱給前端顯示
type InsufficientStockError struct {
	ProductName string
	Available   uint
	Requested   uint
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("only %d units of %s are available", e.Available, e.ProductName)
}
