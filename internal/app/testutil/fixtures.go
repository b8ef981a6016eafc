package testutil

import "encoding/base64"

// SampleAudio is a few bytes that start like an MP3 file with an ID3 tag
var SampleAudio = []byte("ID3\x04\x00\x00\x00\x00\x00\x00fake-mp3-frames")

// SampleAudioBase64 is SampleAudio in standard base64
var SampleAudioBase64 = base64.StdEncoding.EncodeToString(SampleAudio)

// DataURI prefixes SampleAudioBase64 the way browsers do for the given MIME type
func DataURI(mimeType string) string {
	return "data:" + mimeType + ";base64," + SampleAudioBase64
}

// EncodeText base64-encodes s so it can be used as an audio payload
func EncodeText(s string) string {
	return base64.StdEncoding.EncodeToString([]byte(s))
}
