package routes

import (
	"github.com/gin-gonic/gin"

	"audio-relay/internal/api/v1/handlers"
	"audio-relay/internal/api/v1/services"
)

// ServiceContainer holds all services needed by the routes
type ServiceContainer struct {
	TranscriptionService services.TranscriptionService
}

// RegisterRoutes registers the relay API routes
func RegisterRoutes(router gin.IRouter, container *ServiceContainer) {
	transcribeHandler := handlers.NewTranscribeHandler(container.TranscriptionService)
	transcribe := router.Group("/Transcribe")
	{
		transcribe.POST("/Gemini", transcribeHandler.Gemini)
		transcribe.POST("/Azure", transcribeHandler.Azure)
		transcribe.POST("/OpenAI", transcribeHandler.OpenAI)
	}

	healthHandler := handlers.NewHealthHandler(container.TranscriptionService)
	router.GET("/health", healthHandler.Get)
}
