package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/s0up4200/brightcove-go/brightcove"
	"github.com/s0up4200/brightcove-go/config"
)

var (
	cfgFile string
	cfg     *config.Config
	logger  zerolog.Logger
	client  *brightcove.Client

	// Command flags
	accountID  string
	filterExpr string
	query      string
	limit      int

	appVersion   = "dev"
	appBuildTime = "unknown"
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "brightcove",
	Short: "A CLI for the Brightcove video platform APIs",
	Long: `brightcove is a CLI for the Brightcove video platform: query and
manage videos through the CMS API, pull engagement data from the
Analytics API, manage MRSS syndication feeds, submit Dynamic Ingest
jobs and inspect ingest profiles.

Credentials come from the config file or from BRIGHTCOVE_* environment
variables; requests are authenticated, rate limited and retried by the
shared client.`,
	PersistentPreRunE: initializeApp,
}

// SetVersion records the build metadata shown by --version.
func SetVersion(version, buildTime string) {
	appVersion = version
	appBuildTime = buildTime
	rootCmd.Version = fmt.Sprintf("%s (built %s)", version, buildTime)
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	defer func() {
		if client != nil {
			client.Close()
		}
	}()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().StringVarP(&accountID, "account", "a", "", "Brightcove account ID (overrides config)")
}

// initializeApp initializes the configuration and the shared client
func initializeApp(cmd *cobra.Command, args []string) error {
	// Load configuration
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Setup logger
	logger = setupLogger(cfg.Logging)

	if accountID == "" {
		accountID = cfg.Brightcove.AccountID
	}

	client = brightcove.New(brightcove.Config{
		ClientID:                  cfg.Brightcove.ClientID,
		ClientSecret:              cfg.Brightcove.ClientSecret,
		CMSBaseURL:                cfg.Brightcove.CMSBaseURL,
		SyndicationBaseURL:        cfg.Brightcove.SyndicationBaseURL,
		AnalyticsBaseURL:          cfg.Brightcove.AnalyticsBaseURL,
		IngestBaseURL:             cfg.Brightcove.IngestBaseURL,
		ProfilesBaseURL:           cfg.Brightcove.ProfilesBaseURL,
		RequestsPerSecond:         cfg.RateLimits.Default,
		ProfilesRequestsPerSecond: cfg.RateLimits.Profiles,
		Logger:                    logger,
	})

	return nil
}

// requireAccount errors when no account ID was supplied by flag or config.
func requireAccount() error {
	if accountID == "" {
		return fmt.Errorf("account ID is required: pass --account or set brightcove.account_id")
	}
	return nil
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	// Set log level
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "trace":
		level = zerolog.TraceLevel
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)

	// Configure output format
	if cfg.Format == "json" {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	// Console format; color only on real terminals
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !cfg.Color || !isatty.IsTerminal(os.Stderr.Fd()),
	}

	return zerolog.New(output).With().Timestamp().Logger()
}
