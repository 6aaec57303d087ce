package pricing

import (
	"github.com/shopspring/decimal"
)

// Discount program identifiers. Every resolved quote reports all four,
// with a zero rate for programs that did not trigger.
const (
	ProgramCompatibility = "compatibility"
	ProgramVolume        = "volume"
	ProgramMultiBusiness = "multi_business"
	ProgramAnnual        = "annual"
)

// Tier maps a threshold to a fractional discount rate
type Tier struct {
	Threshold int             `json:"threshold"`
	Rate      decimal.Decimal `json:"rate"`
}

// TierTable is an ordered ladder of discount tiers. Lookup selects the
// tier with the greatest threshold not exceeding the input, so the top
// tier doubles as the program's cap.
type TierTable []Tier

// RateFor returns the rate of the highest tier whose threshold is at
// most value, or zero when no tier qualifies.
func (t TierTable) RateFor(value int) decimal.Decimal {
	rate := decimal.Zero
	for _, tier := range t {
		if value >= tier.Threshold {
			rate = tier.Rate
		}
	}
	return rate
}

func rate(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// DiscountSchedule holds the tier tables for every discount program.
// The schedule is data: changing a boundary or rate is a schedule edit,
// not a resolver change.
type DiscountSchedule struct {
	Compatibility TierTable       `json:"compatibility"`
	Volume        TierTable       `json:"volume"`
	MultiBusiness TierTable       `json:"multi_business"`
	AnnualRate    decimal.Decimal `json:"annual_rate"`
}

// DefaultDiscountSchedule returns the published CoreFlow discount ladder
func DefaultDiscountSchedule() *DiscountSchedule {
	return &DiscountSchedule{
		Compatibility: TierTable{
			{Threshold: 2, Rate: rate("0.05")},
			{Threshold: 3, Rate: rate("0.10")},
			{Threshold: 4, Rate: rate("0.15")},
			{Threshold: 5, Rate: rate("0.20")},
		},
		Volume: TierTable{
			{Threshold: 10, Rate: rate("0.05")},
			{Threshold: 25, Rate: rate("0.10")},
			{Threshold: 50, Rate: rate("0.15")},
			{Threshold: 100, Rate: rate("0.20")},
		},
		MultiBusiness: TierTable{
			{Threshold: 2, Rate: rate("0.20")},
			{Threshold: 3, Rate: rate("0.35")},
			{Threshold: 5, Rate: rate("0.50")},
		},
		AnnualRate: rate("0.15"),
	}
}

// ResolvedDiscounts is the outcome of discount resolution for one quote
type ResolvedDiscounts struct {
	Rates          map[string]decimal.Decimal
	CompoundedRate decimal.Decimal
}

// Resolve evaluates every discount program independently and compounds
// the triggered rates multiplicatively: compounded = 1 - prod(1 - r_i).
// Programs never stack additively, so the compounded rate stays below 1
// for any rates below 1.
func (s *DiscountSchedule) Resolve(bundleCount, seats, businesses int, annual bool) ResolvedDiscounts {
	annualRate := decimal.Zero
	if annual {
		annualRate = s.AnnualRate
	}
	rates := map[string]decimal.Decimal{
		ProgramCompatibility: s.Compatibility.RateFor(bundleCount),
		ProgramVolume:        s.Volume.RateFor(seats),
		ProgramMultiBusiness: s.MultiBusiness.RateFor(businesses),
		ProgramAnnual:        annualRate,
	}

	one := decimal.NewFromInt(1)
	retained := one
	for _, r := range rates {
		retained = retained.Mul(one.Sub(r))
	}
	return ResolvedDiscounts{
		Rates:          rates,
		CompoundedRate: one.Sub(retained),
	}
}
