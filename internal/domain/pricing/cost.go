package pricing

import (
	"github.com/coreflow/backend/internal/domain/shared/valueobject"
)

// LineItem is the cost contribution of one bundle
type LineItem struct {
	BundleID string
	FlatCost valueobject.Money
	SeatCost valueobject.Money
	Total    valueobject.Money
}

// CostBreakdown is the undiscounted cost of a validated selection
type CostBreakdown struct {
	Lines    []LineItem
	Subtotal valueobject.Money
}

// AggregateCost sums the monthly cost of the given bundles at the given
// seat count. Amounts stay at full decimal precision; rounding happens
// once, when the quote total is assembled.
func AggregateCost(defs []*BundleDefinition, seats int) CostBreakdown {
	breakdown := CostBreakdown{
		Lines:    make([]LineItem, 0, len(defs)),
		Subtotal: valueobject.ZeroUSD(),
	}
	for _, def := range defs {
		seatCost := def.PerSeatPrice.MultiplyByInt(int64(seats))
		line := LineItem{
			BundleID: def.ID,
			FlatCost: def.BasePrice,
			SeatCost: seatCost,
			Total:    def.BasePrice.MustAdd(seatCost),
		}
		breakdown.Lines = append(breakdown.Lines, line)
		breakdown.Subtotal = breakdown.Subtotal.MustAdd(line.Total)
	}
	return breakdown
}
