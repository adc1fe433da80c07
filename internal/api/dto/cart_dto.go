package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type AddToCartDTO struct {
	ProductID uint `json:"ProductId"`
	Quantity  int  `json:"Quantity"`
}

type UpdateCartItemDTO struct {
	Quantity int `json:"Quantity"`
}

type CartItemResponseDTO struct {
	Id          uint            `json:"Id"`
	ProductId   uint            `json:"ProductId"`
	ProductName string          `json:"ProductName"`
	Quantity    uint            `json:"Quantity"`
	UnitPrice   decimal.Decimal `json:"UnitPrice"`
	Discount    decimal.Decimal `json:"Discount"`
	TotalPrice  decimal.Decimal `json:"TotalPrice"`
}

type CartResponseDTO struct {
	Id             uint                  `json:"Id"`
	CustomerId     uint                  `json:"CustomerId"`
	IsCheckedOut   bool                  `json:"IsCheckedOut"`
	CreatedAt      time.Time             `json:"CreatedAt"`
	UpdatedAt      time.Time             `json:"UpdatedAt"`
	CartItems      []CartItemResponseDTO `json:"CartItems"`
	TotalBasePrice decimal.Decimal       `json:"TotalBasePrice"`
	TotalDiscount  decimal.Decimal       `json:"TotalDiscount"`
	TotalAmount    decimal.Decimal       `json:"TotalAmount"`
}
