package main

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/spf13/cobra"

	"twitterosint/pkg/config"
	"twitterosint/pkg/logger"
	"twitterosint/pkg/ui"
)

var (
	// Version information
	version   = "1.0.0"
	gitCommit = "unknown"
	buildDate = "unknown"

	// Global flags
	configFile  string
	logLevel    string
	noColor     bool
	bearerToken string
	apiURL      string
	timeout     time.Duration
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "twitterosint",
	Short: "Open-source intelligence queries against the Twitter API",
	Long: `twitterosint runs derived queries against the Twitter v1.1 REST API.

Besides the API's own listings and profile lookups it can:
  - list mutual connections (accounts that follow and are followed back)
  - show the earliest followers of an account with estimated follow dates
  - print the creation time of an account

Action output is written to stdout; logs and errors go to stderr.`,
	Version:       fmt.Sprintf("%s (commit: %s, built: %s)", version, gitCommit, buildDate),
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		ui.PrintError("Error", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "config file (default is ./.twitter-osint.yaml or $HOME/.config/twitter-osint/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error, disabled)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().StringVar(&bearerToken, "bearer-token", "", "Twitter API bearer token")
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "Twitter API base URL")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 0, "HTTP request timeout")

	rootCmd.SetVersionTemplate(`twitterosint {{.Version}}
Go Version: ` + runtime.Version() + `
OS/Arch: ` + runtime.GOOS + `/` + runtime.GOARCH + `
`)

	rootCmd.CompletionOptions.DisableDefaultCmd = true
}

// loadConfig builds the configuration from all sources, passing on only the
// flags that were set explicitly
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	flags := make(map[string]interface{})
	changed := cmd.Flags().Changed

	if changed("bearer-token") {
		flags["bearer-token"] = bearerToken
	}
	if changed("api-url") {
		flags["api-url"] = apiURL
	}
	if changed("timeout") {
		flags["timeout"] = timeout
	}
	if changed("log-level") {
		flags["log-level"] = logLevel
	}
	if changed("no-color") {
		flags["no-color"] = noColor
	}
	if cmd.Flags().Lookup("count") != nil && changed("count") {
		flags["count"] = count
	}

	return config.Load(configFile, flags)
}

// setupLogging initializes the global logger and terminal styling
func setupLogging(cfg *config.Config) (logger.Logger, error) {
	ui.SetNoColor(cfg.Output.NoColor)
	if err := logger.Initialize(&cfg.Logging); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger.GetLogger(), nil
}
