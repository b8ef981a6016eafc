package transcribe

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"audio-relay/cmd/relay/cmd/options"
	"audio-relay/internal/app"
	"audio-relay/internal/app/api/provider"
)

var (
	providerName string
	prompt       string
	mimeType     string
)

func init() {
	Cmd.Flags().StringVarP(&providerName, "provider", "P", provider.OpenAI, "provider to use: gemini, azure or openai")
	Cmd.Flags().StringVarP(&prompt, "prompt", "t", "", "prompt sent along with the audio")
	Cmd.Flags().StringVarP(&mimeType, "mime-type", "m", "", "audio MIME type (default: sniffed from the file)")
}

// Cmd represents the transcribe command
var Cmd = &cobra.Command{
	Use:   "transcribe <file>",
	Short: "Send a local audio file through a provider and print the result",
	Long: `Send a local audio file through a provider and print the result

- The file is base64-encoded exactly as the HTTP routes expect
- Output is the same JSON body the matching /Transcribe route returns`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := options.Load()
		if err != nil {
			return err
		}
		defer logger.Sync() //nolint:errcheck

		audio, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read audio file: %w", err)
		}

		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		registry, err := app.InitializeRegistry(ctx, cfg, logger)
		if err != nil {
			return fmt.Errorf("build providers: %w", err)
		}
		p, err := registry.Get(providerName)
		if err != nil {
			return fmt.Errorf("%w (configured: %s)", err, strings.Join(registry.Names(), ", "))
		}

		req := &provider.TranscriptionRequest{
			Audio:    base64.StdEncoding.EncodeToString(audio),
			Prompt:   prompt,
			MimeType: resolveMIME(mimeType, audio),
		}
		logger.Debug("transcribing file",
			zap.String("file", args[0]),
			zap.String("provider", p.Name()),
			zap.String("mime_type", req.MimeType),
			zap.Int("bytes", len(audio)),
		)

		result, err := p.Transcribe(ctx, req)
		if err != nil {
			return err
		}

		out, err := json.MarshalIndent(result.Body(), "", "  ")
		if err != nil {
			return fmt.Errorf("encode result: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	},
}

// resolveMIME prefers an explicit flag and otherwise uses the sniffed type
// when it is audio. An empty result leaves the provider default in place.
func resolveMIME(explicit string, audio []byte) string {
	if explicit != "" {
		return explicit
	}
	sniffed := provider.SniffMIME(audio)
	if strings.HasPrefix(sniffed, "audio/") {
		return sniffed
	}
	return ""
}
