package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server ServerConfig
	Line   LineConfig
	Report ReportConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port        string `mapstructure:"port"`
	Environment string `mapstructure:"environment"`
}

// LineConfig holds LINE Messaging API configuration
type LineConfig struct {
	ChannelAccessToken string `mapstructure:"channel_access_token"`
	ChannelSecret      string `mapstructure:"channel_secret"`
	BaseURL            string `mapstructure:"base_url"`
}

// ReportConfig holds output-size budgets for the report formatter
type ReportConfig struct {
	CharBudget  int `mapstructure:"char_budget"`
	MaxCards    int `mapstructure:"max_cards"`
	HistoryDays int `mapstructure:"history_days"`
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/jonggajang/")

	// Environment variable settings (JGG_LINE_CHANNEL_ACCESS_TOKEN etc.)
	v.SetEnvPrefix("JGG")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Set default values
	setDefaults(v)

	// Read config file (optional - will use env vars if file doesn't exist)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; using environment variables and defaults
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// Validate configuration
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "10000")
	v.SetDefault("server.environment", "development")

	// LINE defaults
	v.SetDefault("line.base_url", "https://api.line.me")

	// Report defaults
	v.SetDefault("report.char_budget", 4500)
	v.SetDefault("report.max_cards", 10)
	v.SetDefault("report.history_days", 7)
}

// validate validates the configuration
func validate(config *Config) error {
	if config.Line.ChannelAccessToken == "" {
		return fmt.Errorf("LINE channel access token is required (set JGG_LINE_CHANNEL_ACCESS_TOKEN)")
	}

	if config.Report.CharBudget <= 0 {
		return fmt.Errorf("report char budget must be positive, got: %d", config.Report.CharBudget)
	}

	if config.Report.HistoryDays <= 0 {
		return fmt.Errorf("report history days must be positive, got: %d", config.Report.HistoryDays)
	}

	return nil
}
