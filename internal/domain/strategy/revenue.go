package strategy

import "github.com/inheeen/sales-bonus/internal/domain/entity"

// RevenueStrategy computes the revenue of a single line item.
type RevenueStrategy interface {
	Revenue(item entity.LineItem, product entity.Product) float64
}

// RevenueFunc adapts a plain function to RevenueStrategy.
type RevenueFunc func(item entity.LineItem, product entity.Product) float64

// Revenue calls f(item, product).
func (f RevenueFunc) Revenue(item entity.LineItem, product entity.Product) float64 {
	return f(item, product)
}

// SimpleRevenue is the default formula: sale_price * quantity * (1 - discount/100).
// The discount is not range-checked, so values outside [0,100] pass through.
func SimpleRevenue(item entity.LineItem, _ entity.Product) float64 {
	discount := 1 - item.Discount/100
	return item.SalePrice * float64(item.Quantity) * discount
}

// GrossRevenue ignora o desconto: sale_price * quantity.
func GrossRevenue(item entity.LineItem, _ entity.Product) float64 {
	return item.SalePrice * float64(item.Quantity)
}
