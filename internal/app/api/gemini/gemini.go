package gemini

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"google.golang.org/genai"

	"audio-relay/internal/app/api/provider"
)

const (
	// DefaultModel is the multimodal model audio is summarized with
	DefaultModel = "gemini-2.0-flash"
	// InlineMIME is the MIME type declared for inline audio
	InlineMIME = "audio/mp3"

	defaultTimeout = 2 * time.Minute
)

var errNoCandidates = errors.New("response contained no candidates")

// Config holds the Gemini client settings
type Config struct {
	APIKey string
	Model  string
	// BaseURL overrides the Gemini API root, used by tests and proxies
	BaseURL    string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// Provider sends inline audio plus a text prompt to a Gemini model and
// returns the first candidate's content. The result is whatever the model
// generated for the prompt, usually a summary rather than a transcript.
type Provider struct {
	client  *genai.Client
	model   string
	timeout time.Duration
}

// NewProvider creates a Gemini provider
func NewProvider(ctx context.Context, cfg Config) (*Provider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini provider requires an API key")
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}

	cc := &genai.ClientConfig{
		APIKey:     cfg.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: cfg.HTTPClient,
	}
	if cfg.BaseURL != "" {
		cc.HTTPOptions.BaseURL = cfg.BaseURL
	}

	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	return &Provider{
		client:  client,
		model:   cfg.Model,
		timeout: cfg.Timeout,
	}, nil
}

// Name implements provider.Provider
func (p *Provider) Name() string {
	return provider.Gemini
}

// Model returns the model identifier requests are sent to
func (p *Provider) Model() string {
	return p.model
}

// Contents builds the request: the prompt as a text part followed by the
// audio as an inline data part. An empty prompt is left out.
func Contents(prompt string, audio []byte, mimeType string) []*genai.Content {
	parts := make([]*genai.Part, 0, 2)
	if prompt != "" {
		parts = append(parts, genai.NewPartFromText(prompt))
	}
	parts = append(parts, genai.NewPartFromBytes(audio, mimeType))
	return []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}
}

// Transcribe implements provider.Provider
func (p *Provider) Transcribe(ctx context.Context, req *provider.TranscriptionRequest) (*provider.TranscriptionResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	audio, err := provider.DecodeAudio(req.Audio)
	if err != nil {
		return nil, err
	}

	mimeType := InlineMIME
	if req.MimeType != "" {
		mimeType = req.MimeType
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	resp, err := p.client.Models.GenerateContent(ctx, p.model, Contents(req.Prompt, audio, mimeType), nil)
	if err != nil {
		return nil, &provider.UpstreamError{Provider: "Gemini", Err: err}
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, &provider.UpstreamError{Provider: "Gemini", Err: errNoCandidates}
	}

	content := resp.Candidates[0].Content
	return &provider.TranscriptionResult{
		Provider: provider.Gemini,
		Field:    provider.FieldSummary,
		Text:     contentText(content),
		Content:  content,
	}, nil
}

func contentText(content *genai.Content) string {
	var sb strings.Builder
	for _, part := range content.Parts {
		if part != nil {
			sb.WriteString(part.Text)
		}
	}
	return sb.String()
}
