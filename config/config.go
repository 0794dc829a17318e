package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Load loads the configuration from file and environment. Every key
// can be overridden through the environment with a BRIGHTCOVE prefix
// (e.g. BRIGHTCOVE_BRIGHTCOVE_CLIENT_SECRET); credentials usually
// arrive that way rather than living in the file.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Set default values
	setDefaults(v)

	v.SetEnvPrefix("BRIGHTCOVE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		// Look for config in standard locations
		v.SetConfigName("config")
		v.SetConfigType("yaml")

		// Check current directory first
		v.AddConfigPath(".")

		// Check home directory
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".brightcove"))
		}

		// Check /etc
		v.AddConfigPath("/etc/brightcove/")
	}

	// A missing config file is fine when everything comes from the
	// environment, but an explicitly named file must exist.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
		if configPath != "" {
			return nil, fmt.Errorf("config file not found: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Validate configuration
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Credentials default to empty; registering the keys lets
	// AutomaticEnv satisfy them when no config file is present.
	v.SetDefault("brightcove.client_id", "")
	v.SetDefault("brightcove.client_secret", "")
	v.SetDefault("brightcove.account_id", "")

	// Vendor API roots
	v.SetDefault("brightcove.cms_base_url", "https://cms.api.brightcove.com/v1/accounts/")
	v.SetDefault("brightcove.syndication_base_url", "https://edge.social.api.brightcove.com/v1/accounts/")
	v.SetDefault("brightcove.analytics_base_url", "https://analytics.api.brightcove.com/v1")
	v.SetDefault("brightcove.ingest_base_url", "https://ingest.api.brightcove.com/v1/accounts/")
	v.SetDefault("brightcove.profiles_base_url", "https://ingestion.api.brightcove.com/v1/")

	// Rate limit defaults: vendor-documented ceilings
	v.SetDefault("rate_limits.default", 10)
	v.SetDefault("rate_limits.profiles", 4)

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.color", true)
}

// validate checks if the configuration is valid
func validate(cfg *Config) error {
	if cfg.Brightcove.ClientID == "" {
		return fmt.Errorf("brightcove.client_id is required")
	}
	if cfg.Brightcove.ClientSecret == "" {
		return fmt.Errorf("brightcove.client_secret is required")
	}

	if cfg.RateLimits.Default <= 0 {
		return fmt.Errorf("rate_limits.default must be positive")
	}
	if cfg.RateLimits.Profiles <= 0 {
		return fmt.Errorf("rate_limits.profiles must be positive")
	}

	// Validate logging level
	validLevels := map[string]bool{
		"trace": true,
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("invalid logging level: %s", cfg.Logging.Level)
	}

	// Validate logging format
	validFormats := map[string]bool{
		"console": true,
		"json":    true,
	}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("invalid logging format: %s", cfg.Logging.Format)
	}

	return nil
}
