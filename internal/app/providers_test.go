package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"audio-relay/internal/config"
	"audio-relay/internal/metrics"
)

func TestBuildRegistry(t *testing.T) {
	tests := []struct {
		name      string
		providers config.ProvidersConfig
		want      []string
	}{
		{
			name: "nothing configured",
			want: []string{},
		},
		{
			name: "openai only",
			providers: config.ProvidersConfig{
				OpenAI: config.ProviderCredentials{APIKey: "sk-test"},
			},
			want: []string{"openai"},
		},
		{
			name: "partial azure is skipped",
			providers: config.ProvidersConfig{
				Azure: config.ProviderCredentials{APIKey: "k", Endpoint: "https://az"},
			},
			want: []string{},
		},
		{
			name: "everything",
			providers: config.ProvidersConfig{
				Gemini: config.ProviderCredentials{APIKey: "google"},
				OpenAI: config.ProviderCredentials{APIKey: "sk-test"},
				Azure: config.ProviderCredentials{
					APIKey:         "k",
					Endpoint:       "https://az.example.com",
					DeploymentName: "whisper",
					APIVersion:     "2024-06-01",
				},
			},
			want: []string{"azure", "gemini", "openai"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{UpstreamTimeout: time.Second, Providers: tt.providers}

			registry, err := BuildRegistry(context.Background(), cfg, metrics.New(), zap.NewNop())
			require.NoError(t, err)
			assert.ElementsMatch(t, tt.want, registry.Names())
		})
	}
}

func TestInitializeServer(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{
		Server:          config.ServerConfig{Host: "127.0.0.1", Port: "0", Environment: "test"},
		UpstreamTimeout: time.Second,
		Providers: config.ProvidersConfig{
			OpenAI: config.ProviderCredentials{APIKey: "sk-test"},
		},
	}

	srv, err := InitializeServer(context.Background(), cfg, zap.NewNop())
	require.NoError(t, err)

	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok","providers":["openai"]}`, w.Body.String())

	// The injected metrics registry is the one served at /metrics
	w = httptest.NewRecorder()
	srv.Router().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "relay_http_requests_total")
}

func TestInitializeRegistry(t *testing.T) {
	cfg := &config.Config{
		UpstreamTimeout: time.Second,
		Providers: config.ProvidersConfig{
			Gemini: config.ProviderCredentials{APIKey: "google"},
		},
	}

	registry, err := InitializeRegistry(context.Background(), cfg, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, []string{"gemini"}, registry.Names())
}
