package provider_test

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"audio-relay/internal/app/api/provider"
	"audio-relay/internal/app/testutil"
)

func TestStripDataURIPrefix(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    string
	}{
		{"no prefix", "QUJD", "QUJD"},
		{"mp3 prefix", "data:audio/mp3;base64,QUJD", "QUJD"},
		{"wav prefix", "data:audio/wav;base64,QUJD", "QUJD"},
		{"prefix with codecs parameter", "data:audio/webm;codecs=opus;base64,QUJD", "QUJD"},
		{"dashed subtype", "data:audio/x-m4a;base64,QUJD", "QUJD"},
		{"non audio prefix is kept", "data:text/plain;base64,QUJD", "data:text/plain;base64,QUJD"},
		{"prefix only at start", "QUJDdata:audio/mp3;base64,", "QUJDdata:audio/mp3;base64,"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, provider.StripDataURIPrefix(tt.payload))
		})
	}
}

func TestStripDataURIPrefix_Idempotent(t *testing.T) {
	once := provider.StripDataURIPrefix(testutil.DataURI("audio/mpeg"))
	assert.Equal(t, once, provider.StripDataURIPrefix(once))
}

func TestDecodeAudio_PrefixIsLossless(t *testing.T) {
	plain, err := provider.DecodeAudio(testutil.SampleAudioBase64)
	require.NoError(t, err)
	assert.Equal(t, testutil.SampleAudio, plain)

	for _, mimeType := range []string{"audio/mp3", "audio/mpeg", "audio/wav", "audio/ogg", "audio/webm"} {
		t.Run(mimeType, func(t *testing.T) {
			prefixed, err := provider.DecodeAudio(testutil.DataURI(mimeType))
			require.NoError(t, err)
			assert.Equal(t, plain, prefixed)
		})
	}
}

func TestDecodeAudio_Encodings(t *testing.T) {
	raw := []byte{0xfb, 0xff, 0xfe, 0x00, 0x01}

	tests := []struct {
		name    string
		payload string
	}{
		{"standard", base64.StdEncoding.EncodeToString(raw)},
		{"unpadded", base64.RawStdEncoding.EncodeToString(raw)},
		{"url safe", base64.URLEncoding.EncodeToString(raw)},
		{"url safe unpadded", base64.RawURLEncoding.EncodeToString(raw)},
		{"wrapped lines", "+//+\nAAE="},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := provider.DecodeAudio(tt.payload)
			require.NoError(t, err)
			assert.Equal(t, raw, got)
		})
	}
}

func TestDecodeAudio_Errors(t *testing.T) {
	_, err := provider.DecodeAudio("")
	assert.ErrorIs(t, err, provider.ErrNoAudio)

	_, err = provider.DecodeAudio("data:audio/mp3;base64,")
	assert.ErrorIs(t, err, provider.ErrNoAudio)

	_, err = provider.DecodeAudio("not*base64!")
	assert.ErrorIs(t, err, provider.ErrInvalidAudio)
	assert.True(t, provider.IsInvalidInput(err))
}

func TestSniffMIME(t *testing.T) {
	assert.Equal(t, "audio/mpeg", provider.SniffMIME(testutil.SampleAudio))
	assert.Equal(t, "application/octet-stream", provider.SniffMIME([]byte{0x00, 0x01, 0x02}))
}

func TestTranscriptionRequest_Validate(t *testing.T) {
	var nilReq *provider.TranscriptionRequest
	assert.ErrorIs(t, nilReq.Validate(), provider.ErrNoAudio)
	assert.ErrorIs(t, (&provider.TranscriptionRequest{Audio: "   "}).Validate(), provider.ErrNoAudio)
	assert.NoError(t, (&provider.TranscriptionRequest{Audio: "QUJD"}).Validate())
}

func TestTranscriptionResult_Body(t *testing.T) {
	result := &provider.TranscriptionResult{Field: provider.FieldTranscription, Content: "hello"}
	assert.Equal(t, map[string]any{"transcription": "hello"}, result.Body())
}
