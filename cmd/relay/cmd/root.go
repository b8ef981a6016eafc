package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"audio-relay/cmd/relay/cmd/options"
	"audio-relay/cmd/relay/cmd/serve"
	"audio-relay/cmd/relay/cmd/transcribe"
	"audio-relay/cmd/relay/cmd/version"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "relay",
	Short: "HTTP relay that forwards base64 audio to Gemini, Azure Whisper or OpenAI Whisper",
	Long: `HTTP relay that forwards base64 audio to a transcription provider.

- POST /Transcribe/Gemini, /Transcribe/Azure or /Transcribe/OpenAI with {audio, prompt}
- Credentials come from the environment, a .env file or a YAML config file
- Providers without credentials answer 503`,
	SilenceUsage:     true,
	TraverseChildren: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serve.Cmd)
	rootCmd.AddCommand(transcribe.Cmd)
	rootCmd.AddCommand(version.Cmd)

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&options.Overrides.ConfigFile, "config", "c", "", "YAML config file")
	flags.StringVar(&options.Overrides.EnvFile, "env-file", "", "dotenv file (default: .env, .env.local or ../.env)")
	flags.StringVar(&options.Overrides.LogLevel, "log-level", "", "log level: debug, info, warn, error")
	flags.BoolVarP(&options.Verbose, "verbose", "V", false, "verbose output (same as --log-level debug)")
}
