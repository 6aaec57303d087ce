package pricing

import (
	"github.com/coreflow/backend/internal/domain/shared/valueobject"
)

// Category groups bundles by product line
type Category string

const (
	CategoryFinanceAI        Category = "finance_ai"
	CategoryERP              Category = "erp"
	CategoryAIInfrastructure Category = "ai_infrastructure"
)

// BundleDefinition describes a sellable module bundle. Definitions are
// immutable once registered in a Catalog; pricing runs only read them.
type BundleDefinition struct {
	ID           string
	Name         string
	Category     Category
	BasePrice    valueobject.Money // flat monthly component
	PerSeatPrice valueobject.Money // per-user monthly component
	MinSeats     int
	Dependencies []string
	Description  string
}

// MonthlyCost returns the undiscounted monthly cost of this bundle for
// the given seat count: base price plus per-seat price times seats.
// No rounding is applied.
func (b *BundleDefinition) MonthlyCost(seats int) valueobject.Money {
	return b.BasePrice.MustAdd(b.PerSeatPrice.MultiplyByInt(int64(seats)))
}

// RequiresSeats reports whether the bundle's seat floor is unmet
func (b *BundleDefinition) RequiresSeats(seats int) bool {
	return seats < b.MinSeats
}
