package main

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	hunter "github.com/obaidrock78/hunter-io-client"
)

var (
	client *hunter.Client
	logger zerolog.Logger

	// Persistent flags
	apiKey  string
	baseURL string
	timeout time.Duration
	debug   bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "hunter",
	Short: "Query the Hunter.io email discovery and verification API",
	Long: `hunter is a CLI for the Hunter.io v2 API. It can search the email
addresses behind a domain or company, find the most likely address for a
person, verify deliverability of an address, and inspect the account tied
to the API key.

The API key is taken from --api-key, the HUNTER_API_KEY environment
variable, or a .env file in the working directory.`,
	SilenceUsage:      true,
	PersistentPreRunE: initializeClient,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiKey, "api-key", "", "Hunter API key (default HUNTER_API_KEY)")
	rootCmd.PersistentFlags().StringVar(&baseURL, "base-url", "", "override the API base URL")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "request timeout")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	_ = viper.BindPFlag("api_key", rootCmd.PersistentFlags().Lookup("api-key"))
	_ = viper.BindPFlag("base_url", rootCmd.PersistentFlags().Lookup("base-url"))
	viper.SetEnvPrefix("HUNTER")
	viper.AutomaticEnv()

	rootCmd.AddCommand(domainSearchCmd)
	rootCmd.AddCommand(emailFinderCmd)
	rootCmd.AddCommand(emailVerifierCmd)
	rootCmd.AddCommand(emailCountCmd)
	rootCmd.AddCommand(accountCmd)
}

// initializeClient builds the shared client from flags and environment.
func initializeClient(cmd *cobra.Command, args []string) error {
	// Load .env if present so HUNTER_API_KEY can live next to the project.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("load .env: %w", err)
	}

	logger = setupLogger(debug)

	opts := []hunter.Option{
		hunter.WithTimeout(timeout),
		hunter.WithLogger(logger),
	}
	if url := viper.GetString("base_url"); url != "" {
		opts = append(opts, hunter.WithBaseURL(url))
	}

	var err error
	client, err = hunter.New(viper.GetString("api_key"), opts...)
	if err != nil {
		return fmt.Errorf("create client: %w", err)
	}
	return nil
}

// setupLogger configures the zerolog console logger.
func setupLogger(debug bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}

	out := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}
