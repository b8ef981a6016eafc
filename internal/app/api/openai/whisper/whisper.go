package whisper

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"

	"audio-relay/internal/app/api/provider"
)

const (
	// HostedBaseURL is the public OpenAI API root
	HostedBaseURL = "https://api.openai.com/v1"

	defaultTimeout = 2 * time.Minute
)

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

// FilenamePolicy picks the multipart filename for the uploaded audio
type FilenamePolicy func(mimeType string) string

// FixedFilename always uses name
func FixedFilename(name string) FilenamePolicy {
	return func(string) string { return name }
}

// SubtypeFilename names the file after the MIME subtype, "audio/wav" → "audio.wav"
func SubtypeFilename(mimeType string) string {
	_, subtype, _ := strings.Cut(mimeType, "/")
	subtype, _, _ = strings.Cut(subtype, ";")
	return "audio." + strings.TrimSpace(subtype)
}

// Config describes one Whisper-style upstream
type Config struct {
	// Name is the registry name, DisplayName is used in error messages
	Name        string
	DisplayName string
	Endpoint    string
	// AuthHeader is the full Authorization header value
	AuthHeader string
	Filename   FilenamePolicy
	// DefaultMIME is the part content type when the request carries none
	DefaultMIME string
	// RequestMIME lets the caller's mimeType override DefaultMIME
	RequestMIME bool
	Timeout     time.Duration
	HTTPClient  *http.Client
}

// Provider posts multipart audio to an OpenAI-compatible
// /audio/transcriptions endpoint and returns the raw text body.
type Provider struct {
	cfg    Config
	client *http.Client
}

// NewProvider creates a Whisper-style provider
func NewProvider(cfg Config) (*Provider, error) {
	if cfg.Name == "" {
		return nil, fmt.Errorf("whisper provider requires a name")
	}
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("%s provider requires an endpoint", cfg.Name)
	}
	if cfg.DisplayName == "" {
		cfg.DisplayName = cfg.Name
	}
	if cfg.Filename == nil {
		cfg.Filename = SubtypeFilename
	}
	if cfg.DefaultMIME == "" {
		cfg.DefaultMIME = "audio/mpeg"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}

	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: cfg.Timeout}
	}

	return &Provider{cfg: cfg, client: client}, nil
}

// NewHosted creates the provider for OpenAI's hosted Whisper.
// baseURL may be empty to use the public API.
func NewHosted(apiKey, baseURL string, timeout time.Duration) (*Provider, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("openai provider requires an API key")
	}
	if baseURL == "" {
		baseURL = HostedBaseURL
	}
	return NewProvider(Config{
		Name:        provider.OpenAI,
		DisplayName: "OpenAI",
		Endpoint:    strings.TrimRight(baseURL, "/") + "/audio/transcriptions",
		AuthHeader:  "Bearer " + apiKey,
		Filename:    FixedFilename("audio.mp3"),
		DefaultMIME: "audio/mpeg",
		Timeout:     timeout,
	})
}

// NewManaged creates the provider for an Azure OpenAI Whisper deployment
func NewManaged(apiKey, endpoint, deploymentName, apiVersion string, timeout time.Duration) (*Provider, error) {
	if apiKey == "" || endpoint == "" || deploymentName == "" || apiVersion == "" {
		return nil, fmt.Errorf("azure provider requires key, endpoint, deployment name and API version")
	}
	return NewProvider(Config{
		Name:        provider.Azure,
		DisplayName: "Azure",
		Endpoint:    ManagedEndpoint(endpoint, deploymentName, apiVersion),
		AuthHeader:  "Bearer " + apiKey,
		Filename:    SubtypeFilename,
		DefaultMIME: "audio/wav",
		RequestMIME: true,
		Timeout:     timeout,
	})
}

// ManagedEndpoint builds the deployment-specific Azure transcription URL
func ManagedEndpoint(endpoint, deploymentName, apiVersion string) string {
	return fmt.Sprintf("%s/openai/deployments/%s/audio/transcriptions?api-version=%s",
		strings.TrimRight(endpoint, "/"), deploymentName, apiVersion)
}

// Name implements provider.Provider
func (p *Provider) Name() string {
	return p.cfg.Name
}

// Endpoint returns the URL audio is posted to
func (p *Provider) Endpoint() string {
	return p.cfg.Endpoint
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

	mimeType := p.cfg.DefaultMIME
	if p.cfg.RequestMIME && req.MimeType != "" {
		mimeType = req.MimeType
	}

	body, contentType, err := BuildForm(audio, p.cfg.Filename(mimeType), mimeType, req.Prompt)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, p.cfg.Timeout)
	defer cancel()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.cfg.Endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", contentType)
	if p.cfg.AuthHeader != "" {
		httpReq.Header.Set("Authorization", p.cfg.AuthHeader)
	}

	resp, err := p.client.Do(httpReq)
	if err != nil {
		return nil, &provider.UpstreamError{Provider: p.cfg.DisplayName, Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &provider.UpstreamError{Provider: p.cfg.DisplayName, Err: fmt.Errorf("read response: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &provider.UpstreamError{
			Provider:   p.cfg.DisplayName,
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Body:       string(respBody),
		}
	}

	text := string(respBody)
	return &provider.TranscriptionResult{
		Provider: p.cfg.Name,
		Field:    provider.FieldTranscription,
		Text:     text,
		Content:  text,
	}, nil
}

// BuildForm encodes the upload body: file, model, response_format, prompt.
// The prompt field is always present, empty when no prompt was given.
func BuildForm(audio []byte, filename, mimeType, prompt string) (*bytes.Buffer, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition",
		fmt.Sprintf(`form-data; name="file"; filename="%s"`, quoteEscaper.Replace(filename)))
	h.Set("Content-Type", mimeType)
	part, err := w.CreatePart(h)
	if err != nil {
		return nil, "", fmt.Errorf("create form file: %w", err)
	}
	if _, err := part.Write(audio); err != nil {
		return nil, "", fmt.Errorf("copy audio data: %w", err)
	}

	fields := [][2]string{
		{"model", openai.Whisper1},
		{"response_format", string(openai.AudioResponseFormatText)},
		{"prompt", prompt},
	}
	for _, f := range fields {
		if err := w.WriteField(f[0], f[1]); err != nil {
			return nil, "", fmt.Errorf("failed to write field %s: %w", f[0], err)
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("failed to close writer: %w", err)
	}
	return &buf, w.FormDataContentType(), nil
}
