package strategy

import (
	"math"

	"github.com/inheeen/sales-bonus/internal/domain/entity"
)

// FallbackBonusBase replaces a zero profit when sizing a bonus.
const FallbackBonusBase = 1000.0

// BonusStrategy computes the bonus of the seller at position rank (0 is the
// highest profit) among total sellers.
type BonusStrategy interface {
	Bonus(rank, total int, seller entity.SellerAggregate) float64
}

// BonusFunc adapts a plain function to BonusStrategy.
type BonusFunc func(rank, total int, seller entity.SellerAggregate) float64

// Bonus calls f(rank, total, seller).
func (f BonusFunc) Bonus(rank, total int, seller entity.SellerAggregate) float64 {
	return f(rank, total, seller)
}

// BonusByProfit is the default tiered policy: 15% for the top seller, 10% for
// the next two, nothing for the last one and 5% for everybody else.
//
// A profit of exactly zero (or NaN) is replaced by FallbackBonusBase before
// applying the percentage, so a seller without profit can still receive a
// bonus. This conflates "no profit" with a fixed base and is kept as is.
func BonusByProfit(rank, total int, seller entity.SellerAggregate) float64 {
	base := seller.Profit
	if base == 0 || math.IsNaN(base) {
		base = FallbackBonusBase
	}

	switch {
	case rank == 0:
		return base * 0.15
	case rank == 1 || rank == 2:
		return base * 0.10
	case rank == total-1:
		return 0
	default:
		return base * 0.05
	}
}
