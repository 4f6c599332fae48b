package entity

import "sort"

// TopProductsLimit is the maximum number of entries in a seller's top list.
const TopProductsLimit = 10

// SellerAggregate holds the running totals of one seller during an analysis
// pass. It is owned by the analyzer and discarded once the report is built.
type SellerAggregate struct {
	ID           string
	Name         string
	Revenue      float64
	Profit       float64
	SalesCount   int
	ProductsSold map[string]int

	// ordem em que cada SKU foi vendido pela primeira vez
	soldOrder []string
}

// NewSellerAggregate cria um agregado zerado para o vendedor.
func NewSellerAggregate(seller Seller) *SellerAggregate {
	return &SellerAggregate{
		ID:           seller.ID,
		Name:         seller.FullName(),
		ProductsSold: make(map[string]int),
	}
}

// AddSold adds quantity units of sku to the seller's cumulative counter.
func (a *SellerAggregate) AddSold(sku string, quantity int) {
	if a.ProductsSold == nil {
		a.ProductsSold = make(map[string]int)
	}
	if _, ok := a.ProductsSold[sku]; !ok {
		a.soldOrder = append(a.soldOrder, sku)
	}
	a.ProductsSold[sku] += quantity
}

// TopProducts returns up to limit skus ordered by cumulative quantity,
// highest first. Equal quantities keep first-sale order.
func (a *SellerAggregate) TopProducts(limit int) []TopProduct {
	order := a.soldOrder
	if len(order) != len(a.ProductsSold) {
		// ProductsSold was filled directly; fall back to sku order
		order = make([]string, 0, len(a.ProductsSold))
		for sku := range a.ProductsSold {
			order = append(order, sku)
		}
		sort.Strings(order)
	}

	top := make([]TopProduct, 0, len(order))
	for _, sku := range order {
		top = append(top, TopProduct{SKU: sku, Quantity: a.ProductsSold[sku]})
	}
	sort.SliceStable(top, func(i, j int) bool {
		return top[i].Quantity > top[j].Quantity
	})

	if limit >= 0 && len(top) > limit {
		top = top[:limit]
	}
	return top
}
