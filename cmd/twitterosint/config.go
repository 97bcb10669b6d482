package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"twitterosint/pkg/auth"
	"twitterosint/pkg/ui"
)

const defaultConfigPath = ".twitter-osint.yaml"

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration files",
	Long: `Manage twitterosint configuration files.

Configuration can be loaded from:
  - Command line flags (highest priority)
  - Environment variables (TWITTER_OSINT_*)
  - .env files
  - Configuration file
  - Default values (lowest priority)`,
}

// initCmd represents the config init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create an example configuration file",
	Long: `Create an example configuration file with all available options.

The file is created in the current directory as '.twitter-osint.yaml'
unless a different path is given with the --config flag.`,
	Args: cobra.NoArgs,
	RunE: runConfigInit,
}

// showCmd represents the config show command
var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	Long: `Show the effective configuration after merging all sources.

The bearer token is masked.`,
	Args: cobra.NoArgs,
	RunE: runConfigShow,
}

// validateCmd represents the config validate command
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfigValidate,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(initCmd)
	configCmd.AddCommand(showCmd)
	configCmd.AddCommand(validateCmd)
}

const exampleConfig = `# twitterosint configuration file
#
# Environment variables prefixed with TWITTER_OSINT_ override these values,
# for example TWITTER_OSINT_BEARER_TOKEN or TWITTER_OSINT_LOG_LEVEL.

twitter:
  # Application bearer token. Prefer 'twitterosint auth login' over storing it here.
  bearer_token: ""

  # Base URL of the v1.1 REST API
  api_url: "https://api.twitter.com/1.1/"

  # Per-request timeout
  timeout: 30s

  user_agent: "twitterosint/1.0"

retry:
  # 1 disables retrying; only network and 5xx failures are retried
  max_attempts: 1
  initial_delay: 1s
  max_delay: 30s
  multiplier: 2.0

osint:
  # Number of followers reported by first_followers
  first_followers: 5

output:
  no_color: false

logging:
  # debug, info, warn, error, disabled
  level: "warn"

  # Log file path; empty logs to stderr
  file: ""
`

func runConfigInit(cmd *cobra.Command, args []string) error {
	ui.SetNoColor(noColor)

	configPath := configFile
	if configPath == "" {
		configPath = defaultConfigPath
	}

	if _, err := os.Stat(configPath); err == nil {
		return fmt.Errorf("configuration file already exists: %s", configPath)
	}

	if err := os.WriteFile(configPath, []byte(exampleConfig), 0600); err != nil {
		return fmt.Errorf("failed to create configuration file: %w", err)
	}

	ui.PrintSuccess("Configuration file created: " + configPath)
	return nil
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	ui.SetNoColor(cfg.Output.NoColor)

	display := *cfg
	if display.Twitter.BearerToken != "" {
		display.Twitter.BearerToken = auth.Mask(display.Twitter.BearerToken)
	}

	data, err := yaml.Marshal(&display)
	if err != nil {
		return fmt.Errorf("failed to format configuration: %w", err)
	}

	fmt.Fprint(cmd.OutOrStdout(), string(data))
	return nil
}

func runConfigValidate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	ui.SetNoColor(cfg.Output.NoColor)

	if cfg.Twitter.BearerToken == "" {
		ui.PrintWarning("No bearer token configured", "the credential store will be used")
	}

	ui.PrintSuccess("Configuration is valid")
	ui.PrintInfo("API URL", cfg.Twitter.APIURL)
	ui.PrintInfo("Timeout", cfg.Twitter.Timeout.String())
	ui.PrintInfo("Retry attempts", fmt.Sprint(cfg.Retry.MaxAttempts))
	ui.PrintInfo("First followers", fmt.Sprint(cfg.OSINT.FirstFollowers))
	ui.PrintInfo("Log level", cfg.Logging.Level)
	return nil
}
