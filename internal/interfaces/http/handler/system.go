package handler

import (
	"net/http"
	"runtime"
	"time"

	pricingapp "github.com/coreflow/backend/internal/application/pricing"
	"github.com/coreflow/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// SystemHandler handles system-related API endpoints
type SystemHandler struct {
	BaseHandler
	quoteService *pricingapp.QuoteService
	appVersion   string
	startTime    time.Time
}

// NewSystemHandler creates a new SystemHandler
func NewSystemHandler(quoteService *pricingapp.QuoteService, appVersion string) *SystemHandler {
	return &SystemHandler{
		quoteService: quoteService,
		appVersion:   appVersion,
		startTime:    time.Now(),
	}
}

// SystemInfoResponse represents the system information response
type SystemInfoResponse struct {
	Name      string `json:"name"`
	Version   string `json:"version"`
	GoVersion string `json:"go_version"`
	Uptime    string `json:"uptime"`
}

// GetSystemInfo returns basic system information including version and uptime
func (h *SystemHandler) GetSystemInfo(c *gin.Context) {
	info := SystemInfoResponse{
		Name:      "CoreFlow Pricing API",
		Version:   h.appVersion,
		GoVersion: runtime.Version(),
		Uptime:    time.Since(h.startTime).Round(time.Second).String(),
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(info))
}

// PingResponse represents the ping response
type PingResponse struct {
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

// Ping checks if the API is responsive
func (h *SystemHandler) Ping(c *gin.Context) {
	response := PingResponse{
		Message:   "pong",
		Timestamp: time.Now().Format(time.RFC3339),
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(response))
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status        string `json:"status"`
	BundlesLoaded int    `json:"bundles_loaded"`
	EngineVersion string `json:"engine_version"`
	Timestamp     string `json:"timestamp"`
}

// Health reports the pricing engine's operational state. Registered at
// the root, outside the versioned API group, for load balancer probes.
func (h *SystemHandler) Health(c *gin.Context) {
	status := h.quoteService.Status()
	c.JSON(http.StatusOK, dto.NewSuccessResponse(HealthResponse{
		Status:        status.Status,
		BundlesLoaded: status.BundlesLoaded,
		EngineVersion: status.EngineVersion,
		Timestamp:     time.Now().UTC().Format(time.RFC3339),
	}))
}
