package pricing

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/coreflow/backend/internal/domain/shared/valueobject"
)

// Quote is the complete outcome of a pricing run
type Quote struct {
	ID                 uuid.UUID
	Region             Region
	Seats              int
	Businesses         int
	Annual             bool
	Breakdown          []LineItem
	Subtotal           valueobject.Money
	Discounts          map[string]decimal.Decimal
	CompoundedRate     decimal.Decimal
	Total              valueobject.Money
	Recommendations    []string
	CalculatedAt       time.Time
	ValidUntil         time.Time
	BundlesAnalyzed    int
	CompatibilityScore float64
}

type recommendationRule struct {
	applies func(req *PricingRequest, schedule *DiscountSchedule) bool
	message func(req *PricingRequest, schedule *DiscountSchedule) string
}

// Rules fire independently; each inspects the request and schedule and
// never another rule's outcome.
var recommendationRules = []recommendationRule{
	{
		applies: func(req *PricingRequest, s *DiscountSchedule) bool {
			return !req.Annual
		},
		message: func(req *PricingRequest, s *DiscountSchedule) string {
			return fmt.Sprintf("Switch to annual billing to save %s%% on your subscription",
				s.AnnualRate.Mul(decimal.NewFromInt(100)).String())
		},
	},
	{
		applies: func(req *PricingRequest, s *DiscountSchedule) bool {
			next, ok := s.Volume.nextThreshold(req.Seats)
			return ok && next-req.Seats <= 5
		},
		message: func(req *PricingRequest, s *DiscountSchedule) string {
			next, _ := s.Volume.nextThreshold(req.Seats)
			return fmt.Sprintf("Add %d more users to unlock the next volume discount tier", next-req.Seats)
		},
	},
	{
		applies: func(req *PricingRequest, s *DiscountSchedule) bool {
			return req.Businesses == 1
		},
		message: func(req *PricingRequest, s *DiscountSchedule) string {
			return "Manage multiple businesses on one account to qualify for multi-business discounts"
		},
	},
}

// nextThreshold returns the lowest tier threshold strictly above value
func (t TierTable) nextThreshold(value int) (int, bool) {
	for _, tier := range t {
		if tier.Threshold > value {
			return tier.Threshold, true
		}
	}
	return 0, false
}

// AssembleQuote combines a cost breakdown and resolved discounts into a
// final quote. This is the single place the pipeline rounds: the total is
// subtotal times the retained fraction, rounded half-up to cents.
func AssembleQuote(req *PricingRequest, breakdown CostBreakdown, discounts ResolvedDiscounts, schedule *DiscountSchedule, validity time.Duration, now time.Time) *Quote {
	total := breakdown.Subtotal.ApplyDiscountRate(discounts.CompoundedRate).Round(2)

	var recs []string
	for _, rule := range recommendationRules {
		if rule.applies(req, schedule) {
			recs = append(recs, rule.message(req, schedule))
		}
	}

	return &Quote{
		ID:                 uuid.New(),
		Region:             req.Region,
		Seats:              req.Seats,
		Businesses:         req.Businesses,
		Annual:             req.Annual,
		Breakdown:          breakdown.Lines,
		Subtotal:           breakdown.Subtotal,
		Discounts:          discounts.Rates,
		CompoundedRate:     discounts.CompoundedRate,
		Total:              total,
		Recommendations:    recs,
		CalculatedAt:       now,
		ValidUntil:         now.Add(validity),
		BundlesAnalyzed:    len(breakdown.Lines),
		CompatibilityScore: 1.0,
	}
}
