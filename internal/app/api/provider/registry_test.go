package provider_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"audio-relay/internal/app/api/provider"
	"audio-relay/internal/app/testutil"
)

func TestRegistry(t *testing.T) {
	registry := provider.NewRegistry()

	require.NoError(t, registry.Register(testutil.NewMockProvider(provider.OpenAI)))
	require.NoError(t, registry.Register(testutil.NewMockProvider(provider.Azure)))

	t.Run("lookup is case insensitive", func(t *testing.T) {
		p, err := registry.Get("OpenAI")
		require.NoError(t, err)
		assert.Equal(t, provider.OpenAI, p.Name())
		assert.True(t, registry.Has("AZURE"))
	})

	t.Run("unknown provider is not configured", func(t *testing.T) {
		_, err := registry.Get(provider.Gemini)
		assert.ErrorIs(t, err, provider.ErrNotConfigured)
		assert.False(t, registry.Has(provider.Gemini))
	})

	t.Run("names are sorted", func(t *testing.T) {
		assert.Equal(t, []string{"azure", "openai"}, registry.Names())
	})

	t.Run("duplicate registration", func(t *testing.T) {
		err := registry.Register(testutil.NewMockProvider("openai"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "already registered")
	})

	t.Run("invalid registrations", func(t *testing.T) {
		assert.Error(t, registry.Register(nil))
		assert.Error(t, registry.Register(testutil.NewMockProvider("")))
	})
}
