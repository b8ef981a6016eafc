package dto

import "audio-relay/internal/app/api/provider"

// TranscribeRequest is the body accepted by every /Transcribe route.
// Audio is base64, optionally carrying a "data:audio/...;base64," prefix.
type TranscribeRequest struct {
	Audio    string `json:"audio" binding:"required" example:"data:audio/mp3;base64,SUQzBAAAAAAAI1RTU0UAAAAPAAADTGF2ZjU4Ljc2LjEwMAAAAAAAAAAAAAAA"`
	Prompt   string `json:"prompt" example:"Transcribe this meeting"`
	MimeType string `json:"mimeType,omitempty" example:"audio/wav"`
}

// Validate implements middleware.Validator
func (r *TranscribeRequest) Validate() error {
	return r.ToProviderRequest().Validate()
}

// ToProviderRequest converts the DTO into the provider-neutral request
func (r *TranscribeRequest) ToProviderRequest() *provider.TranscriptionRequest {
	return &provider.TranscriptionRequest{
		Audio:    r.Audio,
		Prompt:   r.Prompt,
		MimeType: r.MimeType,
	}
}

// SummaryResponse is returned by the Gemini route. Summary is the model's
// content object ({"parts": [...], "role": "model"}).
type SummaryResponse struct {
	Summary any `json:"summary" swaggertype:"object"`
}

// TranscriptionResponse is returned by the Whisper-style routes
type TranscriptionResponse struct {
	Transcription string `json:"transcription" example:"Hello and welcome to the meeting."`
}

// HealthResponse reports liveness and which providers are configured
type HealthResponse struct {
	Status    string   `json:"status" example:"ok"`
	Providers []string `json:"providers" example:"azure,gemini,openai"`
}
