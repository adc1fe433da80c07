package event

import (
	"fmt"

	"github.com/RoyceAzure/lab/ecommerce/internal/domain/model"
	"github.com/shopspring/decimal"
)

// CartItemData 事件用的line item快照
type CartItemData struct {
	ProductID  uint            `json:"product_id"`
	Quantity   uint            `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	Discount   decimal.Decimal `json:"discount"`
	TotalPrice decimal.Decimal `json:"total_price"`
}

func NewCartItemData(items []model.CartItem) []CartItemData {
	datas := make([]CartItemData, 0, len(items))
	for _, item := range items {
		datas = append(datas, CartItemData{
			ProductID:  item.ProductID,
			Quantity:   item.Quantity,
			UnitPrice:  item.UnitPrice,
			Discount:   item.Discount,
			TotalPrice: item.TotalPrice,
		})
	}
	return datas
}

type CartCreatedEvent struct {
	BaseEvent
	CustomerID uint           `json:"customer_id"`
	CartID     uint           `json:"cart_id"`
	Items      []CartItemData `json:"items"`
}

func NewCartCreatedEvent(customerID, cartID uint, items []model.CartItem) *CartCreatedEvent {
	return &CartCreatedEvent{
		BaseEvent:  *NewBaseEvent(cartAggregateID(cartID), CartCreatedEventName),
		CustomerID: customerID,
		CartID:     cartID,
		Items:      NewCartItemData(items),
	}
}

func (e *CartCreatedEvent) Type() EventType {
	return CartCreatedEventName
}

type CartUpdatedEvent struct {
	BaseEvent
	CustomerID uint           `json:"customer_id"`
	CartID     uint           `json:"cart_id"`
	Items      []CartItemData `json:"items"`
}

func NewCartUpdatedEvent(customerID, cartID uint, items []model.CartItem) *CartUpdatedEvent {
	return &CartUpdatedEvent{
		BaseEvent:  *NewBaseEvent(cartAggregateID(cartID), CartUpdatedEventName),
		CustomerID: customerID,
		CartID:     cartID,
		Items:      NewCartItemData(items),
	}
}

func (e *CartUpdatedEvent) Type() EventType {
	return CartUpdatedEventName
}

type CartClearedEvent struct {
	BaseEvent
	CustomerID uint `json:"customer_id"`
	CartID     uint `json:"cart_id"`
}

func NewCartClearedEvent(customerID, cartID uint) *CartClearedEvent {
	return &CartClearedEvent{
		BaseEvent:  *NewBaseEvent(cartAggregateID(cartID), CartClearedEventName),
		CustomerID: customerID,
		CartID:     cartID,
	}
}

func (e *CartClearedEvent) Type() EventType {
	return CartClearedEventName
}

func cartAggregateID(cartID uint) string {
	return fmt.Sprintf("cart-%d", cartID)
}
