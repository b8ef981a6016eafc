package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"audio-relay/internal/api/middleware"
	"audio-relay/internal/api/v1/dto"
	"audio-relay/internal/api/v1/services"
	"audio-relay/internal/app/api/provider"
)

// TranscribeHandler serves the /Transcribe/* routes
type TranscribeHandler struct {
	service services.TranscriptionService
}

// NewTranscribeHandler creates a new transcribe handler
func NewTranscribeHandler(service services.TranscriptionService) *TranscribeHandler {
	return &TranscribeHandler{
		service: service,
	}
}

// Gemini handles POST /Transcribe/Gemini
//
// @Summary Summarize audio with Gemini
// @Description Sends the audio inline to the generative model together with the prompt and returns the model's content object
// @Tags transcribe
// @Accept json
// @Produce json
// @Param request body dto.TranscribeRequest true "Base64 audio and prompt"
// @Success 200 {object} dto.SummaryResponse
// @Failure 400 {object} errors.APIError "No audio data received"
// @Failure 500 {object} errors.APIError "Internal server error"
// @Failure 503 {object} errors.APIError "Provider not configured"
// @Router /Transcribe/Gemini [post]
func (h *TranscribeHandler) Gemini(c *gin.Context) {
	h.transcribe(c, provider.Gemini)
}

// Azure handles POST /Transcribe/Azure
//
// @Summary Transcribe audio with an Azure Whisper deployment
// @Description Uploads the audio as multipart to the managed Whisper deployment; mimeType controls the file part (default audio/wav)
// @Tags transcribe
// @Accept json
// @Produce json
// @Param request body dto.TranscribeRequest true "Base64 audio, prompt and MIME type"
// @Success 200 {object} dto.TranscriptionResponse
// @Failure 400 {object} errors.APIError "No audio data received"
// @Failure 500 {object} errors.APIError "Internal server error"
// @Failure 503 {object} errors.APIError "Provider not configured"
// @Router /Transcribe/Azure [post]
func (h *TranscribeHandler) Azure(c *gin.Context) {
	h.transcribe(c, provider.Azure)
}

// OpenAI handles POST /Transcribe/OpenAI
//
// @Summary Transcribe audio with OpenAI Whisper
// @Description Uploads the audio as audio.mp3 to the hosted Whisper endpoint
// @Tags transcribe
// @Accept json
// @Produce json
// @Param request body dto.TranscribeRequest true "Base64 audio and prompt"
// @Success 200 {object} dto.TranscriptionResponse
// @Failure 400 {object} errors.APIError "No audio data received"
// @Failure 500 {object} errors.APIError "Internal server error"
// @Failure 503 {object} errors.APIError "Provider not configured"
// @Router /Transcribe/OpenAI [post]
func (h *TranscribeHandler) OpenAI(c *gin.Context) {
	h.transcribe(c, provider.OpenAI)
}

func (h *TranscribeHandler) transcribe(c *gin.Context, providerName string) {
	var req dto.TranscribeRequest

	if err := middleware.ValidateRequest(c, &req); err != nil {
		middleware.HandleError(c, err)
		return
	}

	result, err := h.service.Transcribe(c.Request.Context(), providerName, &req)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, result.Body())
}
