package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration options for twitterosint
type Config struct {
	// Twitter API access
	Twitter TwitterConfig `yaml:"twitter" json:"twitter"`

	// Transport retry policy
	Retry RetryConfig `yaml:"retry" json:"retry"`

	// Composite action settings
	OSINT OSINTConfig `yaml:"osint" json:"osint"`

	// Output settings
	Output OutputConfig `yaml:"output" json:"output"`

	// Logging configuration
	Logging LoggingConfig `yaml:"logging" json:"logging"`
}

// TwitterConfig holds Twitter API configuration
type TwitterConfig struct {
	BearerToken string        `yaml:"bearer_token" json:"bearer_token"`
	APIURL      string        `yaml:"api_url" json:"api_url"`
	Timeout     time.Duration `yaml:"timeout" json:"timeout"`
	UserAgent   string        `yaml:"user_agent" json:"user_agent"`
}

// RetryConfig holds retry configuration for the API transport.
// MaxAttempts of 1 disables retrying.
type RetryConfig struct {
	MaxAttempts  int           `yaml:"max_attempts" json:"max_attempts"`
	InitialDelay time.Duration `yaml:"initial_delay" json:"initial_delay"`
	MaxDelay     time.Duration `yaml:"max_delay" json:"max_delay"`
	Multiplier   float64       `yaml:"multiplier" json:"multiplier"`
}

// OSINTConfig holds settings for the composite actions
type OSINTConfig struct {
	FirstFollowers int `yaml:"first_followers" json:"first_followers"`
}

// OutputConfig holds terminal output configuration
type OutputConfig struct {
	NoColor bool `yaml:"no_color" json:"no_color"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level string `yaml:"level" json:"level"`
	File  string `yaml:"file" json:"file"`
}

// DefaultAPIURL is the base URL of the Twitter v1.1 REST API
const DefaultAPIURL = "https://api.twitter.com/1.1/"

// DefaultConfig returns a Config instance with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Twitter: TwitterConfig{
			APIURL:    DefaultAPIURL,
			Timeout:   30 * time.Second,
			UserAgent: "twitterosint/1.0",
		},
		Retry: RetryConfig{
			MaxAttempts:  1,
			InitialDelay: 1 * time.Second,
			MaxDelay:     30 * time.Second,
			Multiplier:   2.0,
		},
		OSINT: OSINTConfig{
			FirstFollowers: 5,
		},
		Output: OutputConfig{
			NoColor: false,
		},
		Logging: LoggingConfig{
			Level: "warn",
			File:  "",
		},
	}
}

// LoadFromEnv loads configuration from environment variables
func (c *Config) LoadFromEnv() error {
	if token := os.Getenv("TWITTER_OSINT_BEARER_TOKEN"); token != "" {
		c.Twitter.BearerToken = token
	}
	if apiURL := os.Getenv("TWITTER_OSINT_API_URL"); apiURL != "" {
		c.Twitter.APIURL = apiURL
	}
	if timeout := os.Getenv("TWITTER_OSINT_TIMEOUT"); timeout != "" {
		d, err := time.ParseDuration(timeout)
		if err != nil {
			return fmt.Errorf("invalid TWITTER_OSINT_TIMEOUT: %w", err)
		}
		c.Twitter.Timeout = d
	}
	if attempts := os.Getenv("TWITTER_OSINT_RETRY_ATTEMPTS"); attempts != "" {
		val, err := strconv.Atoi(attempts)
		if err != nil {
			return fmt.Errorf("invalid TWITTER_OSINT_RETRY_ATTEMPTS: %w", err)
		}
		c.Retry.MaxAttempts = val
	}
	if count := os.Getenv("TWITTER_OSINT_FIRST_FOLLOWERS"); count != "" {
		val, err := strconv.Atoi(count)
		if err != nil {
			return fmt.Errorf("invalid TWITTER_OSINT_FIRST_FOLLOWERS: %w", err)
		}
		c.OSINT.FirstFollowers = val
	}
	if logLevel := os.Getenv("TWITTER_OSINT_LOG_LEVEL"); logLevel != "" {
		c.Logging.Level = logLevel
	}
	if noColor := os.Getenv("TWITTER_OSINT_NO_COLOR"); noColor != "" {
		c.Output.NoColor = strings.ToLower(noColor) == "true"
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		c.Output.NoColor = true
	}

	return nil
}

// LoadFromFile loads configuration from a YAML file
func (c *Config) LoadFromFile(path string) error {
	// If path is empty, try default locations
	if path == "" {
		path = c.findConfigFile()
		if path == "" {
			return nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}

	return nil
}

// findConfigFile searches for config file in standard locations
func (c *Config) findConfigFile() string {
	home := os.Getenv("HOME")
	locations := []string{
		".twitter-osint.yaml",
		".twitter-osint.yml",
		filepath.Join(home, ".config", "twitter-osint", "config.yaml"),
		filepath.Join(home, ".config", "twitter-osint", "config.yml"),
		filepath.Join(home, ".twitter-osint.yaml"),
		filepath.Join(home, ".twitter-osint.yml"),
	}

	for _, loc := range locations {
		if _, err := os.Stat(loc); err == nil {
			return loc
		}
	}

	return ""
}

// Validate checks if the configuration is valid.
// The bearer token is not checked here; it may still come from the credential store.
func (c *Config) Validate() error {
	var errs []error

	if c.Twitter.APIURL == "" {
		errs = append(errs, errors.New("twitter API URL is required"))
	} else if u, err := url.Parse(c.Twitter.APIURL); err != nil || u.Scheme == "" || u.Host == "" {
		errs = append(errs, fmt.Errorf("invalid twitter API URL: %q", c.Twitter.APIURL))
	}
	if c.Twitter.Timeout <= 0 {
		errs = append(errs, errors.New("request timeout must be positive"))
	}

	if c.Retry.MaxAttempts < 1 {
		errs = append(errs, errors.New("retry max attempts must be at least 1"))
	}
	if c.Retry.Multiplier < 1 {
		errs = append(errs, errors.New("retry multiplier must be at least 1"))
	}
	if c.Retry.InitialDelay < 0 || c.Retry.MaxDelay < 0 {
		errs = append(errs, errors.New("retry delays cannot be negative"))
	}

	if c.OSINT.FirstFollowers < 0 {
		errs = append(errs, errors.New("first followers count cannot be negative"))
	}

	validLogLevels := map[string]bool{
		"debug": true, "info": true, "warn": true, "error": true, "disabled": true,
	}
	if !validLogLevels[strings.ToLower(c.Logging.Level)] {
		errs = append(errs, fmt.Errorf("invalid log level: %q", c.Logging.Level))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	return nil
}

// Save saves the configuration to a file
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// MergeCommandLineFlags merges command line flags into the configuration
func (c *Config) MergeCommandLineFlags(flags map[string]interface{}) {
	if token, ok := flags["bearer-token"].(string); ok && token != "" {
		c.Twitter.BearerToken = token
	}
	if apiURL, ok := flags["api-url"].(string); ok && apiURL != "" {
		c.Twitter.APIURL = apiURL
	}
	if timeout, ok := flags["timeout"].(time.Duration); ok && timeout > 0 {
		c.Twitter.Timeout = timeout
	}
	// an explicit count of 0 is kept; first_followers then reports nobody
	if count, ok := flags["count"].(int); ok && count >= 0 {
		c.OSINT.FirstFollowers = count
	}
	if logLevel, ok := flags["log-level"].(string); ok && logLevel != "" {
		c.Logging.Level = logLevel
	}
	if noColor, ok := flags["no-color"].(bool); ok && noColor {
		c.Output.NoColor = true
	}
}

// Load loads configuration from all sources with proper precedence
// Precedence order: Command line flags > Environment variables > .env file > Config file > Defaults
func Load(configPath string, flags map[string]interface{}) (*Config, error) {
	// Missing .env files are not an error
	_ = godotenv.Load(".env")
	_ = godotenv.Load(filepath.Join(os.Getenv("HOME"), ".twitter-osint.env"))

	config := DefaultConfig()

	if err := config.LoadFromFile(configPath); err != nil {
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}

	if err := config.LoadFromEnv(); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	config.MergeCommandLineFlags(flags)

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}
