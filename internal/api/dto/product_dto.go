package dto

import "github.com/shopspring/decimal"

type ProductCreateDTO struct {
	Name               string          `json:"Name"`
	Description        string          `json:"Description"`
	Price              decimal.Decimal `json:"Price"`
	StockQuantity      uint            `json:"StockQuantity"`
	DiscountPercentage decimal.Decimal `json:"DiscountPercentage"`
	ImageUrl           string          `json:"ImageUrl"`
	CategoryId         uint            `json:"CategoryId"`
}

type ProductUpdateDTO struct {
	Name               string          `json:"Name"`
	Description        string          `json:"Description"`
	Price              decimal.Decimal `json:"Price"`
	StockQuantity      uint            `json:"StockQuantity"`
	DiscountPercentage decimal.Decimal `json:"DiscountPercentage"`
	ImageUrl           string          `json:"ImageUrl"`
	CategoryId         uint            `json:"CategoryId"`
}

type ProductAvailabilityDTO struct {
	IsAvailable bool `json:"IsAvailable"`
}

type ProductResponseDTO struct {
	Id                 uint            `json:"Id"`
	Name               string          `json:"Name"`
	Description        string          `json:"Description"`
	Price              decimal.Decimal `json:"Price"`
	StockQuantity      uint            `json:"StockQuantity"`
	DiscountPercentage decimal.Decimal `json:"DiscountPercentage"`
	ImageUrl           string          `json:"ImageUrl"`
	IsAvailable        bool            `json:"IsAvailable"`
	CategoryId         uint            `json:"CategoryId"`
}
