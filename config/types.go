package config

// Config represents the complete configuration structure
type Config struct {
	Brightcove BrightcoveConfig `mapstructure:"brightcove"`
	RateLimits RateLimitConfig  `mapstructure:"rate_limits"`
	Logging    LoggingConfig    `mapstructure:"logging"`
}

// BrightcoveConfig holds the OAuth credentials and per-resource API
// roots. The client secret is confidential and must never be logged.
type BrightcoveConfig struct {
	ClientID     string `mapstructure:"client_id"`
	ClientSecret string `mapstructure:"client_secret"`
	AccountID    string `mapstructure:"account_id"`

	CMSBaseURL         string `mapstructure:"cms_base_url"`
	SyndicationBaseURL string `mapstructure:"syndication_base_url"`
	AnalyticsBaseURL   string `mapstructure:"analytics_base_url"`
	IngestBaseURL      string `mapstructure:"ingest_base_url"`
	ProfilesBaseURL    string `mapstructure:"profiles_base_url"`
}

// RateLimitConfig holds per-resource requests-per-second ceilings.
type RateLimitConfig struct {
	Default  int `mapstructure:"default"`
	Profiles int `mapstructure:"profiles"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}
