package pricing

import (
	"fmt"

	"github.com/coreflow/backend/internal/domain/shared/valueobject"
)

// Catalog is a read-only registry of bundle definitions. It is built once
// at startup and shared by all pricing runs; construction validates the
// definitions so malformed catalog data fails the process, never a request.
type Catalog struct {
	byID  map[string]*BundleDefinition
	order []string
}

// NewCatalog builds a catalog from the given definitions.
// It rejects duplicate IDs, self-dependencies, and dependencies that
// reference bundles absent from the catalog.
func NewCatalog(defs []BundleDefinition) (*Catalog, error) {
	c := &Catalog{
		byID:  make(map[string]*BundleDefinition, len(defs)),
		order: make([]string, 0, len(defs)),
	}
	for i := range defs {
		def := defs[i]
		if def.ID == "" {
			return nil, fmt.Errorf("bundle definition %q has empty ID", def.Name)
		}
		if def.MinSeats < 1 {
			return nil, fmt.Errorf("bundle %s: min seats must be at least 1", def.ID)
		}
		if _, exists := c.byID[def.ID]; exists {
			return nil, fmt.Errorf("duplicate bundle ID %s", def.ID)
		}
		c.byID[def.ID] = &def
		c.order = append(c.order, def.ID)
	}
	for _, def := range c.byID {
		for _, dep := range def.Dependencies {
			if dep == def.ID {
				return nil, fmt.Errorf("bundle %s depends on itself", def.ID)
			}
			if _, ok := c.byID[dep]; !ok {
				return nil, fmt.Errorf("bundle %s depends on unknown bundle %s", def.ID, dep)
			}
		}
	}
	return c, nil
}

// MustNewCatalog builds a catalog and panics on invalid definitions.
// Intended for the built-in catalog data, which is fixed at compile time.
func MustNewCatalog(defs []BundleDefinition) *Catalog {
	c, err := NewCatalog(defs)
	if err != nil {
		panic(err)
	}
	return c
}

// Get returns the definition for the given bundle ID, or false if absent
func (c *Catalog) Get(id string) (*BundleDefinition, bool) {
	def, ok := c.byID[id]
	return def, ok
}

// All returns every definition in registration order
func (c *Catalog) All() []*BundleDefinition {
	out := make([]*BundleDefinition, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.byID[id])
	}
	return out
}

// Count returns the number of registered bundles
func (c *Catalog) Count() int {
	return len(c.order)
}

func usd(s string) valueobject.Money {
	m, err := valueobject.NewMoneyUSDFromString(s)
	if err != nil {
		panic(err)
	}
	return m
}

// DefaultCatalog returns the built-in CoreFlow bundle catalog
func DefaultCatalog() *Catalog {
	return MustNewCatalog([]BundleDefinition{
		{
			ID:           "finance_ai_fingpt",
			Name:         "FinGPT Financial AI",
			Category:     CategoryFinanceAI,
			BasePrice:    usd("0"),
			PerSeatPrice: usd("15"),
			MinSeats:     1,
			Description:  "Sentiment analysis, market forecasting, and anomaly detection",
		},
		{
			ID:           "finance_ai_finrobot",
			Name:         "FinRobot Agent Workflows",
			Category:     CategoryFinanceAI,
			BasePrice:    usd("50"),
			PerSeatPrice: usd("12"),
			MinSeats:     5,
			Dependencies: []string{"finance_ai_fingpt"},
			Description:  "Multi-agent financial analysis and report generation",
		},
		{
			ID:           "erp_advanced_idurar",
			Name:         "Advanced ERP",
			Category:     CategoryERP,
			BasePrice:    usd("25"),
			PerSeatPrice: usd("8"),
			MinSeats:     1,
			Description:  "Invoicing, quotes, and payment tracking",
		},
		{
			ID:           "erp_hr_payroll_next",
			Name:         "HR & Payroll",
			Category:     CategoryERP,
			BasePrice:    usd("40"),
			PerSeatPrice: usd("10"),
			MinSeats:     10,
			Dependencies: []string{"erp_advanced_idurar"},
			Description:  "Employee records, payroll runs, and leave management",
		},
		{
			ID:           "ai_orchestration_crewai",
			Name:         "AI Orchestration",
			Category:     CategoryAIInfrastructure,
			BasePrice:    usd("100"),
			PerSeatPrice: usd("20"),
			MinSeats:     5,
			Dependencies: []string{"finance_ai_fingpt"},
			Description:  "Cross-module AI task orchestration",
		},
	})
}
