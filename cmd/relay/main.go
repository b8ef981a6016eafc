// @title Audio Relay API
// @version 1.0
// @description Relays base64 audio to Gemini, Azure Whisper or OpenAI Whisper and returns the text result.
// @BasePath /
package main

import (
	"audio-relay/cmd/relay/cmd"
)

func main() {
	cmd.Execute()
}
