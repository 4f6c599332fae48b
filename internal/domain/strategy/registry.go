package strategy

import (
	"fmt"
	"sort"
	"strings"

	"github.com/inheeen/sales-bonus/internal/shared/types"
)

// Nomes das estratégias disponíveis.
const (
	RevenueSimple = "simple"
	RevenueGross  = "gross"
	BonusProfit   = "profit"
)

var revenueStrategies = map[string]RevenueStrategy{
	RevenueSimple: RevenueFunc(SimpleRevenue),
	RevenueGross:  RevenueFunc(GrossRevenue),
}

var bonusStrategies = map[string]BonusStrategy{
	BonusProfit: BonusFunc(BonusByProfit),
}

// Revenue returns the revenue strategy registered under name. An empty name
// selects the default.
func Revenue(name string) (RevenueStrategy, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		name = RevenueSimple
	}
	s, ok := revenueStrategies[name]
	if !ok {
		return nil, fmt.Errorf("%w: unknown revenue strategy %q (available: %s)",
			types.ErrInvalidConfiguration, name, strings.Join(RevenueNames(), ", "))
	}
	return s, nil
}

// Bonus returns the bonus strategy registered under name. An empty name
// selects the default.
func Bonus(name string) (BonusStrategy, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		name = BonusProfit
	}
	s, ok := bonusStrategies[name]
	if !ok {
		return nil, fmt.Errorf("%w: unknown bonus strategy %q (available: %s)",
			types.ErrInvalidConfiguration, name, strings.Join(BonusNames(), ", "))
	}
	return s, nil
}

// RevenueNames lists the registered revenue strategies.
func RevenueNames() []string {
	return sortedKeys(revenueStrategies)
}

// BonusNames lists the registered bonus strategies.
func BonusNames() []string {
	return sortedKeys(bonusStrategies)
}

func sortedKeys[T any](m map[string]T) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
