package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Cart 一個customer同時只能有一張active cart (is_checked_out = false)
// 由partial unique index強制，並發建立時其中一方會吃到duplicated key
type Cart struct {
	CartID       uint       `gorm:"primaryKey"`
	CustomerID   uint       `gorm:"not null;uniqueIndex:udx_customer_active_cart,where:is_checked_out = false"`
	IsCheckedOut bool       `gorm:"not null;default:false"`
	Items        []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE"` // 一對多，級聯刪除
	BaseModel
}

// CartItem 單價/折扣於第一次加入時快照，之後不隨商品異動
// TotalPrice為衍生值 == (UnitPrice - Discount) * Quantity
type CartItem struct {
	CartItemID uint            `gorm:"primaryKey"`
	CartID     uint            `gorm:"not null;index;uniqueIndex:udx_cart_product"`
	ProductID  uint            `gorm:"not null;uniqueIndex:udx_cart_product"`
	Product    *Product        `gorm:"foreignKey:ProductID;references:ProductID"`
	Quantity   uint            `gorm:"not null"`
	UnitPrice  decimal.Decimal `gorm:"not null;type:decimal(10,2)"`
	Discount   decimal.Decimal `gorm:"not null;type:decimal(10,2)"`
	TotalPrice decimal.Decimal `gorm:"not null;type:decimal(12,2)"`
	CreatedAt  time.Time       `gorm:"not null;default:now()"`
	UpdatedAt  time.Time       `gorm:"null"`
}

// FindItemByProduct 回傳該商品的line item，不存在回傳nil
func (c *Cart) FindItemByProduct(productID uint) *CartItem {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			return &c.Items[i]
		}
	}
	return nil
}

// FindItemByID 回傳指定的line item，不存在回傳nil
func (c *Cart) FindItemByID(cartItemID uint) *CartItem {
	for i := range c.Items {
		if c.Items[i].CartItemID == cartItemID {
			return &c.Items[i]
		}
	}
	return nil
}

// ItemIDs 回傳所有line item的主鍵
func (c *Cart) ItemIDs() []uint {
	ids := make([]uint, 0, len(c.Items))
	for _, item := range c.Items {
		ids = append(ids, item.CartItemID)
	}
	return ids
}
