package service

import (
	"github.com/RoyceAzure/lab/ecommerce/internal/domain/model"
	"github.com/shopspring/decimal"
)

// 金額一律用decimal計算
// rounding只發生在per-item層級，cart層aggregate是已rounding的line值直接相加
// 兩邊才不會因為rounding順序對不起來

// PerUnitDiscount 單件折扣金額 = price * discountPercentage / 100
// 四捨五入到分，對齊decimal(10,2)欄位
func PerUnitDiscount(price, discountPercentage decimal.Decimal) decimal.Decimal {
	if discountPercentage.IsZero() {
		return decimal.Zero
	}
	return price.Mul(discountPercentage).Div(decimal.NewFromInt(100)).Round(2)
}

// LineTotal 單一line item總額 = (unitPrice - discount) * quantity
func LineTotal(unitPrice, discount decimal.Decimal, quantity uint) decimal.Decimal {
	return unitPrice.Sub(discount).Mul(decimal.NewFromInt(int64(quantity)))
}

type CartAggregates struct {
	TotalBasePrice decimal.Decimal
	TotalDiscount  decimal.Decimal
	TotalAmount    decimal.Decimal
}

// CalculateCartAggregates 不落地，每次讀取時重算
// 恆等式: TotalAmount == TotalBasePrice - TotalDiscount
func CalculateCartAggregates(items []model.CartItem) CartAggregates {
	agg := CartAggregates{
		TotalBasePrice: decimal.Zero,
		TotalDiscount:  decimal.Zero,
		TotalAmount:    decimal.Zero,
	}
	for _, item := range items {
		qty := decimal.NewFromInt(int64(item.Quantity))
		agg.TotalBasePrice = agg.TotalBasePrice.Add(item.UnitPrice.Mul(qty))
		agg.TotalDiscount = agg.TotalDiscount.Add(item.Discount.Mul(qty))
		agg.TotalAmount = agg.TotalAmount.Add(item.TotalPrice)
	}
	return agg
}
