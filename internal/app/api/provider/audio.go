package provider

import (
	"encoding/base64"
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/gabriel-vasile/mimetype"
)

// Browsers emit e.g. "data:audio/webm;codecs=opus;base64," so parameters
// between the subtype and the base64 marker are allowed.
var dataURIPrefix = regexp.MustCompile(`^data:audio/[\w.+-]+(;[^;,]+)*;base64,`)

var encodings = []*base64.Encoding{
	base64.StdEncoding,
	base64.RawStdEncoding,
	base64.URLEncoding,
	base64.RawURLEncoding,
}

// StripDataURIPrefix removes a leading "data:audio/<subtype>;base64," tag
func StripDataURIPrefix(payload string) string {
	return dataURIPrefix.ReplaceAllString(payload, "")
}

// DecodeAudio strips any data URI prefix and decodes the base64 payload.
// Whitespace is ignored and standard, unpadded and URL-safe alphabets are
// all accepted.
func DecodeAudio(payload string) ([]byte, error) {
	data := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, StripDataURIPrefix(strings.TrimSpace(payload)))

	if data == "" {
		return nil, ErrNoAudio
	}

	var lastErr error
	for _, enc := range encodings {
		decoded, err := enc.DecodeString(data)
		if err == nil {
			return decoded, nil
		}
		lastErr = err
	}
	return nil, fmt.Errorf("%w: %v", ErrInvalidAudio, lastErr)
}

// SniffMIME detects the media type of decoded audio from its magic bytes.
// It is informational only; the relay never rejects audio based on it.
func SniffMIME(audio []byte) string {
	return mimetype.Detect(audio).String()
}
