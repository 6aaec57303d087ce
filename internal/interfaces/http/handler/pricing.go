package handler

import (
	"errors"
	"net/http"

	pricingapp "github.com/coreflow/backend/internal/application/pricing"
	"github.com/coreflow/backend/internal/interfaces/http/dto"
	"github.com/coreflow/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// PricingHandler handles pricing-related API endpoints
type PricingHandler struct {
	BaseHandler
	quoteService *pricingapp.QuoteService
}

// NewPricingHandler creates a new PricingHandler
func NewPricingHandler(quoteService *pricingapp.QuoteService) *PricingHandler {
	return &PricingHandler{
		quoteService: quoteService,
	}
}

// CalculateQuote prices a bundle selection and returns the quote.
// Malformed bodies return 400 with field details; business rule
// violations return 422 with the domain error code and message.
func (h *PricingHandler) CalculateQuote(c *gin.Context) {
	var req QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			middleware.HandleValidationError(c, err)
			return
		}
		h.Error(c, http.StatusBadRequest, dto.ErrCodeInvalidJSON, "Invalid request body")
		return
	}

	quote, err := h.quoteService.CalculateQuote(c.Request.Context(), req.toDomain())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, toQuoteResponse(quote))
}

// ListBundles returns every bundle in the catalog
func (h *PricingHandler) ListBundles(c *gin.Context) {
	defs := h.quoteService.ListBundles()
	bundles := make([]BundleResponse, 0, len(defs))
	for _, def := range defs {
		bundles = append(bundles, toBundleResponse(def))
	}
	h.Success(c, bundles)
}

// GetBundle returns a single bundle definition by ID
func (h *PricingHandler) GetBundle(c *gin.Context) {
	id := c.Param("id")
	def, ok := h.quoteService.GetBundle(id)
	if !ok {
		h.NotFound(c, "Bundle not found: "+id)
		return
	}
	h.Success(c, toBundleResponse(def))
}

// ListDiscounts returns the active discount programs and their tiers
func (h *PricingHandler) ListDiscounts(c *gin.Context) {
	h.Success(c, toDiscountScheduleResponse(h.quoteService.DiscountSchedule()))
}
