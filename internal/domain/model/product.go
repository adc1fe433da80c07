package model

import (
	"github.com/shopspring/decimal"
)

type Category struct {
	CategoryID  uint      `gorm:"primaryKey"`
	Name        string    `gorm:"not null;type:varchar(100);unique"`
	Description string    `gorm:"type:text"`
	Products    []Product `gorm:"foreignKey:CategoryID"` // 一對多
	BaseModel
}

type Product struct {
	ProductID          uint            `gorm:"primaryKey"`
	Name               string          `gorm:"not null;type:varchar(100);unique"`
	Description        string          `gorm:"not null;type:text"`
	Price              decimal.Decimal `gorm:"not null;type:decimal(10,2)"`
	StockQuantity      uint            `gorm:"not null;type:int"`
	DiscountPercentage decimal.Decimal `gorm:"not null;type:decimal(5,2);default:0"`
	ImageUrl           string          `gorm:"type:varchar(255)"`
	IsAvailable        bool            `gorm:"not null;default:true"`
	CategoryID         uint            `gorm:"not null;index"` // 外鍵，關聯到 Category
	BaseModel
}
