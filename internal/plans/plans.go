package plans

import (
	"errors"

	"github.com/shopspring/decimal"
)

// Definition maps a deposit tier to the profit credited per completed round.
type Definition struct {
	TierAmount  int
	DailyProfit decimal.Decimal
}

var ErrPlanNotFound = errors.New("plan not found")

// catalog must match the tiers advertised by the frontend.
var catalog = []Definition{
	{TierAmount: 50, DailyProfit: decimal.NewFromInt(2)},
	{TierAmount: 100, DailyProfit: decimal.NewFromInt(4)},
	{TierAmount: 150, DailyProfit: decimal.NewFromInt(6)},
	{TierAmount: 250, DailyProfit: decimal.NewFromInt(10)},
	{TierAmount: 500, DailyProfit: decimal.NewFromInt(20)},
	{TierAmount: 1000, DailyProfit: decimal.NewFromInt(40)},
	{TierAmount: 1500, DailyProfit: decimal.NewFromInt(60)},
	{TierAmount: 2500, DailyProfit: decimal.NewFromInt(100)},
}

// Lookup resolves a tier amount to its plan definition. The tier must match
// exactly: arbitrary amounts (e.g. 75) have no plan and never accrue profit.
func Lookup(tierAmount int) (Definition, error) {
	for _, def := range catalog {
		if def.TierAmount == tierAmount {
			return def, nil
		}
	}
	return Definition{}, ErrPlanNotFound
}

// All returns the catalog in ascending tier order.
func All() []Definition {
	out := make([]Definition, len(catalog))
	copy(out, catalog)
	return out
}
