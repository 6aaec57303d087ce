package pricing

import (
	"fmt"

	"github.com/coreflow/backend/internal/domain/shared"
)

// Region tags a quote for downstream tax and compliance systems.
// Regions never change the computed price.
type Region string

const (
	RegionUS Region = "US"
	RegionEU Region = "EU"
	RegionUK Region = "UK"
	RegionIN Region = "IN"
	RegionCA Region = "CA"
	RegionAU Region = "AU"
)

// DefaultRegion is applied when a request omits the region
const DefaultRegion = RegionUS

var validRegions = map[Region]bool{
	RegionUS: true,
	RegionEU: true,
	RegionUK: true,
	RegionIN: true,
	RegionCA: true,
	RegionAU: true,
}

// PricingRequest is the normalized input to a pricing run
type PricingRequest struct {
	BundleIDs  []string
	Seats      int
	Annual     bool
	Businesses int
	Region     Region
}

// Normalize validates the request shape, applies defaults, and
// deduplicates bundle IDs preserving first occurrence. Shape problems
// are reported before any catalog lookup happens.
func (r *PricingRequest) Normalize() error {
	if len(r.BundleIDs) == 0 {
		return shared.NewDomainError(shared.CodeMalformedRequest, "At least one bundle must be selected")
	}
	if r.Seats <= 0 {
		return shared.NewDomainError(shared.CodeMalformedRequest, "User count must be positive")
	}
	if r.Businesses == 0 {
		r.Businesses = 1
	}
	if r.Businesses < 0 {
		return shared.NewDomainError(shared.CodeMalformedRequest, "Business count must be positive")
	}
	if r.Region == "" {
		r.Region = DefaultRegion
	}
	if !validRegions[r.Region] {
		return shared.NewDomainError(shared.CodeMalformedRequest, fmt.Sprintf("Unsupported region: %s", r.Region))
	}

	seen := make(map[string]bool, len(r.BundleIDs))
	deduped := r.BundleIDs[:0]
	for _, id := range r.BundleIDs {
		if id == "" {
			return shared.NewDomainError(shared.CodeMalformedRequest, "Bundle IDs cannot be empty")
		}
		if seen[id] {
			continue
		}
		seen[id] = true
		deduped = append(deduped, id)
	}
	r.BundleIDs = deduped
	return nil
}
