package handler

import (
	"time"

	domain "github.com/coreflow/backend/internal/domain/pricing"
)

// QuoteRequest represents a request to price a bundle selection
type QuoteRequest struct {
	Bundles    []string `json:"bundles" binding:"required,min=1"`
	Users      int      `json:"users"`
	Annual     bool     `json:"annual"`
	Businesses int      `json:"businesses"`
	Region     string   `json:"region"`
}

// toDomain converts the wire request into a pricing request. Semantic
// checks (positive counts, known region, non-empty IDs) happen in the
// domain so the contract messages come from one place.
func (r *QuoteRequest) toDomain() *domain.PricingRequest {
	return &domain.PricingRequest{
		BundleIDs:  r.Bundles,
		Seats:      r.Users,
		Annual:     r.Annual,
		Businesses: r.Businesses,
		Region:     domain.Region(r.Region),
	}
}

// QuoteLineItem is one bundle's share of the pre-discount subtotal
type QuoteLineItem struct {
	BundleID string  `json:"bundle_id"`
	FlatCost float64 `json:"flat_cost"`
	SeatCost float64 `json:"seat_cost"`
	Total    float64 `json:"total"`
}

// QuoteResponse represents a priced quote
type QuoteResponse struct {
	QuoteID            string             `json:"quote_id"`
	Region             string             `json:"region"`
	Users              int                `json:"users"`
	Businesses         int                `json:"businesses"`
	Annual             bool               `json:"annual"`
	Breakdown          []QuoteLineItem    `json:"breakdown"`
	Subtotal           float64            `json:"subtotal"`
	DiscountsApplied   map[string]float64 `json:"discounts_applied"`
	TotalDiscountRate  float64            `json:"total_discount_rate"`
	FinalMonthlyTotal  float64            `json:"final_monthly_total"`
	Recommendations    []string           `json:"recommendations"`
	CalculatedAt       time.Time          `json:"calculated_at"`
	ValidUntil         time.Time          `json:"valid_until"`
	BundlesAnalyzed    int                `json:"bundles_analyzed"`
	CompatibilityScore float64            `json:"compatibility_score"`
}

// toQuoteResponse converts a domain quote to its wire representation
func toQuoteResponse(q *domain.Quote) QuoteResponse {
	breakdown := make([]QuoteLineItem, 0, len(q.Breakdown))
	for _, line := range q.Breakdown {
		breakdown = append(breakdown, QuoteLineItem{
			BundleID: line.BundleID,
			FlatCost: line.FlatCost.Float64(),
			SeatCost: line.SeatCost.Float64(),
			Total:    line.Total.Float64(),
		})
	}

	discounts := make(map[string]float64, len(q.Discounts))
	for program, rate := range q.Discounts {
		discounts[program] = rate.InexactFloat64()
	}

	recommendations := q.Recommendations
	if recommendations == nil {
		recommendations = []string{}
	}

	return QuoteResponse{
		QuoteID:            q.ID.String(),
		Region:             string(q.Region),
		Users:              q.Seats,
		Businesses:         q.Businesses,
		Annual:             q.Annual,
		Breakdown:          breakdown,
		Subtotal:           q.Subtotal.Float64(),
		DiscountsApplied:   discounts,
		TotalDiscountRate:  q.CompoundedRate.InexactFloat64(),
		FinalMonthlyTotal:  q.Total.Float64(),
		Recommendations:    recommendations,
		CalculatedAt:       q.CalculatedAt,
		ValidUntil:         q.ValidUntil,
		BundlesAnalyzed:    q.BundlesAnalyzed,
		CompatibilityScore: q.CompatibilityScore,
	}
}

// BundleResponse represents a catalog bundle
type BundleResponse struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Category     string   `json:"category"`
	BasePrice    float64  `json:"base_price"`
	PerSeatPrice float64  `json:"per_seat_price"`
	MinUsers     int      `json:"min_users"`
	Dependencies []string `json:"dependencies"`
	Description  string   `json:"description"`
}

// toBundleResponse converts a bundle definition to its wire representation
func toBundleResponse(b *domain.BundleDefinition) BundleResponse {
	deps := b.Dependencies
	if deps == nil {
		deps = []string{}
	}
	return BundleResponse{
		ID:           b.ID,
		Name:         b.Name,
		Category:     string(b.Category),
		BasePrice:    b.BasePrice.Float64(),
		PerSeatPrice: b.PerSeatPrice.Float64(),
		MinUsers:     b.MinSeats,
		Dependencies: deps,
		Description:  b.Description,
	}
}

// DiscountTierResponse is one threshold/rate pair of a discount program
type DiscountTierResponse struct {
	Threshold int     `json:"threshold"`
	Rate      float64 `json:"rate"`
}

// DiscountScheduleResponse represents the active discount programs
type DiscountScheduleResponse struct {
	Compatibility []DiscountTierResponse `json:"compatibility"`
	Volume        []DiscountTierResponse `json:"volume"`
	MultiBusiness []DiscountTierResponse `json:"multi_business"`
	AnnualRate    float64                `json:"annual_rate"`
}

func toTierResponses(table domain.TierTable) []DiscountTierResponse {
	tiers := make([]DiscountTierResponse, 0, len(table))
	for _, tier := range table {
		tiers = append(tiers, DiscountTierResponse{
			Threshold: tier.Threshold,
			Rate:      tier.Rate.InexactFloat64(),
		})
	}
	return tiers
}

// toDiscountScheduleResponse converts a discount schedule to its wire
// representation
func toDiscountScheduleResponse(s *domain.DiscountSchedule) DiscountScheduleResponse {
	return DiscountScheduleResponse{
		Compatibility: toTierResponses(s.Compatibility),
		Volume:        toTierResponses(s.Volume),
		MultiBusiness: toTierResponses(s.MultiBusiness),
		AnnualRate:    s.AnnualRate.InexactFloat64(),
	}
}
