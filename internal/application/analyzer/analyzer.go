// Package analyzer turns a sales dataset into the ranked per-seller report.
package analyzer

import (
	"fmt"
	"sort"

	"github.com/inheeen/sales-bonus/internal/domain/entity"
	"github.com/inheeen/sales-bonus/internal/domain/money"
	"github.com/inheeen/sales-bonus/internal/domain/strategy"
	"github.com/inheeen/sales-bonus/internal/shared/types"
)

// SalesAnalyzer folds purchase records into per-seller aggregates, ranks the
// sellers by profit and derives bonus and top products.
type SalesAnalyzer struct {
	revenue     strategy.RevenueStrategy
	bonus       strategy.BonusStrategy
	diagnostics Diagnostics
}

// Option configura o SalesAnalyzer.
type Option func(*SalesAnalyzer)

// WithDiagnostics routes non-fatal events to d.
func WithDiagnostics(d Diagnostics) Option {
	return func(a *SalesAnalyzer) {
		if d != nil {
			a.diagnostics = d
		}
	}
}

// NewSalesAnalyzer cria um novo analisador. Both strategies are required.
func NewSalesAnalyzer(revenue strategy.RevenueStrategy, bonus strategy.BonusStrategy, opts ...Option) (*SalesAnalyzer, error) {
	if revenue == nil || bonus == nil {
		return nil, fmt.Errorf("%w: revenue and bonus strategies must be provided", types.ErrInvalidConfiguration)
	}
	if f, ok := revenue.(strategy.RevenueFunc); ok && f == nil {
		return nil, fmt.Errorf("%w: revenue strategy is a nil function", types.ErrInvalidConfiguration)
	}
	if f, ok := bonus.(strategy.BonusFunc); ok && f == nil {
		return nil, fmt.Errorf("%w: bonus strategy is a nil function", types.ErrInvalidConfiguration)
	}

	a := &SalesAnalyzer{
		revenue:     revenue,
		bonus:       bonus,
		diagnostics: nopDiagnostics{},
	}
	for _, opt := range opts {
		opt(a)
	}
	return a, nil
}

// Analyze builds the report for ds, sorted by profit descending. Sellers with
// equal profit are ordered by id ascending.
func (a *SalesAnalyzer) Analyze(ds *entity.Dataset) ([]entity.ReportEntry, error) {
	if ds == nil || len(ds.Sellers) == 0 || len(ds.Products) == 0 || len(ds.PurchaseRecords) == 0 {
		return nil, fmt.Errorf("%w: sellers, products and purchase records must be non-empty lists", types.ErrMissingData)
	}

	a.diagnostics.DatasetSummary(len(ds.Sellers), len(ds.Products), len(ds.PurchaseRecords))

	aggregates := make([]*entity.SellerAggregate, 0, len(ds.Sellers))
	sellerIndex := make(map[string]*entity.SellerAggregate, len(ds.Sellers))
	for _, seller := range ds.Sellers {
		agg := entity.NewSellerAggregate(seller)
		aggregates = append(aggregates, agg)
		if _, dup := sellerIndex[seller.ID]; !dup {
			sellerIndex[seller.ID] = agg
		}
	}

	productIndex := make(map[string]entity.Product, len(ds.Products))
	for _, product := range ds.Products {
		productIndex[product.SKU] = product
	}

	for _, record := range ds.PurchaseRecords {
		agg, ok := sellerIndex[record.SellerID]
		if !ok {
			a.diagnostics.SellerNotFound(record.SellerID)
			continue
		}
		agg.SalesCount++

		for _, item := range record.Items {
			product, ok := productIndex[item.SKU]
			if !ok {
				a.diagnostics.ProductNotFound(record.SellerID, item.SKU)
				continue
			}
			a.accumulate(agg, item, product)
		}
	}

	sort.SliceStable(aggregates, func(i, j int) bool {
		if aggregates[i].Profit != aggregates[j].Profit {
			return aggregates[i].Profit > aggregates[j].Profit
		}
		return aggregates[i].ID < aggregates[j].ID
	})

	report := make([]entity.ReportEntry, 0, len(aggregates))
	for rank, agg := range aggregates {
		bonus := a.bonus.Bonus(rank, len(aggregates), *agg)
		report = append(report, entity.ReportEntry{
			SellerID:    agg.ID,
			Name:        agg.Name,
			Revenue:     money.RoundReport(agg.Revenue),
			Profit:      money.RoundReport(agg.Profit),
			SalesCount:  agg.SalesCount,
			TopProducts: agg.TopProducts(entity.TopProductsLimit),
			Bonus:       money.RoundReport(bonus),
		})
	}

	return report, nil
}

// accumulate adds one line item to agg, rounding revenue and profit to cents
// after each step.
func (a *SalesAnalyzer) accumulate(agg *entity.SellerAggregate, item entity.LineItem, product entity.Product) {
	revenue := a.revenue.Revenue(item, product)
	// explicit conversion keeps cost from being fused into the subtraction
	cost := float64(product.PurchasePrice * float64(item.Quantity))
	profit := revenue - cost

	agg.Revenue = money.RoundCents(agg.Revenue + revenue)
	agg.Profit = money.RoundCents(agg.Profit + profit)
	agg.AddSold(item.SKU, item.Quantity)
}
