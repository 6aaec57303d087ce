package pricing

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/coreflow/backend/internal/domain/pricing"
)

// EngineStatus reports the pricing engine's operational state
type EngineStatus struct {
	Status        string `json:"status"`
	BundlesLoaded int    `json:"bundles_loaded"`
	EngineVersion string `json:"engine_version"`
}

// QuoteService orchestrates the pricing pipeline: validation, cost
// aggregation, discount resolution, and quote assembly. It holds no
// mutable state; the catalog and schedule are fixed at construction.
type QuoteService struct {
	catalog       *pricing.Catalog
	schedule      *pricing.DiscountSchedule
	quoteValidity time.Duration
	engineVersion string
	logger        *zap.Logger
	now           func() time.Time
}

// QuoteServiceConfig contains configuration for QuoteService
type QuoteServiceConfig struct {
	QuoteValidity time.Duration
	EngineVersion string
}

// NewQuoteService creates a QuoteService over the given catalog and
// discount schedule
func NewQuoteService(catalog *pricing.Catalog, schedule *pricing.DiscountSchedule, cfg QuoteServiceConfig, logger *zap.Logger) *QuoteService {
	if cfg.QuoteValidity <= 0 {
		cfg.QuoteValidity = 24 * time.Hour
	}
	if cfg.EngineVersion == "" {
		cfg.EngineVersion = "dev"
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &QuoteService{
		catalog:       catalog,
		schedule:      schedule,
		quoteValidity: cfg.QuoteValidity,
		engineVersion: cfg.EngineVersion,
		logger:        logger,
		now:           func() time.Time { return time.Now().UTC() },
	}
}

// CalculateQuote runs the full pricing pipeline for the given request.
// The request is normalized in place. Validation failures return a
// domain error; a successful run returns the assembled quote.
func (s *QuoteService) CalculateQuote(ctx context.Context, req *pricing.PricingRequest) (*pricing.Quote, error) {
	if err := req.Normalize(); err != nil {
		s.logger.Debug("pricing request rejected during normalization",
			zap.Error(err))
		return nil, err
	}

	defs, err := pricing.Validate(s.catalog, req)
	if err != nil {
		s.logger.Info("pricing request failed validation",
			zap.Strings("bundles", req.BundleIDs),
			zap.Int("seats", req.Seats),
			zap.Error(err))
		return nil, err
	}

	breakdown := pricing.AggregateCost(defs, req.Seats)
	discounts := s.schedule.Resolve(len(defs), req.Seats, req.Businesses, req.Annual)
	quote := pricing.AssembleQuote(req, breakdown, discounts, s.schedule, s.quoteValidity, s.now())

	s.logger.Info("quote calculated",
		zap.String("quote_id", quote.ID.String()),
		zap.Strings("bundles", req.BundleIDs),
		zap.Int("seats", req.Seats),
		zap.Int("businesses", req.Businesses),
		zap.Bool("annual", req.Annual),
		zap.String("subtotal", quote.Subtotal.StringFixed(2)),
		zap.String("total", quote.Total.StringFixed(2)),
		zap.String("compounded_rate", quote.CompoundedRate.String()))

	return quote, nil
}

// ListBundles returns every bundle in the catalog
func (s *QuoteService) ListBundles() []*pricing.BundleDefinition {
	return s.catalog.All()
}

// GetBundle returns a single bundle definition by ID
func (s *QuoteService) GetBundle(id string) (*pricing.BundleDefinition, bool) {
	return s.catalog.Get(id)
}

// DiscountSchedule returns the active discount schedule
func (s *QuoteService) DiscountSchedule() *pricing.DiscountSchedule {
	return s.schedule
}

// Status reports engine health for the health endpoint
func (s *QuoteService) Status() EngineStatus {
	return EngineStatus{
		Status:        "healthy",
		BundlesLoaded: s.catalog.Count(),
		EngineVersion: s.engineVersion,
	}
}
