package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"audio-relay/internal/api/v1/dto"
	"audio-relay/internal/api/v1/services"
)

// HealthHandler answers liveness probes
type HealthHandler struct {
	service services.TranscriptionService
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(service services.TranscriptionService) *HealthHandler {
	return &HealthHandler{service: service}
}

// Get handles GET /health
//
// @Summary Health check
// @Description Reports liveness and the configured providers
// @Tags system
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Router /health [get]
func (h *HealthHandler) Get(c *gin.Context) {
	providers := h.service.Providers()
	if providers == nil {
		providers = []string{}
	}
	c.JSON(http.StatusOK, dto.HealthResponse{
		Status:    "ok",
		Providers: providers,
	})
}
