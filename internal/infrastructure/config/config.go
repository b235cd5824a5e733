package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"

	"tally.dev/internal/domain/entity"
)

// Config holds the application configuration
type Config struct {
	Server Server `mapstructure:"server"`
	Ledger Ledger `mapstructure:"ledger"`
}

// Server configuration
type Server struct {
	Port string `mapstructure:"port"`
}

// Ledger configuration. OpeningBalance defaults to 1, matching the original
// contract; Strict toggles the hardened mode (positive amounts only, no
// negative balance).
type Ledger struct {
	OpeningBalance int64 `mapstructure:"openingBalance"`
	Strict         bool  `mapstructure:"strict"`
}

// LoadConfig loads configuration from YAML file
// Uses CONFIG_ENV environment variable to determine which config file to load
func LoadConfig(configDir string) (*Config, error) {
	configEnv := os.Getenv("CONFIG_ENV")
	if configEnv == "" {
		configEnv = "local"
	}

	// Defaults apply when neither file nor env provides a value. The opening
	// balance must default through viper, not a zero-value check: 0 is a
	// legitimate configured opening balance.
	viper.SetDefault("server.port", "8080")
	viper.SetDefault("ledger.openingBalance", entity.DefaultOpeningBalance)
	viper.SetDefault("ledger.strict", false)

	// Load base app-config.yaml as template/defaults (if it exists)
	baseConfigPath := fmt.Sprintf("%s/app-config.yaml", configDir)
	baseConfigExists := false
	if _, err := os.Stat(baseConfigPath); err == nil {
		viper.SetConfigFile(baseConfigPath)
		if err := viper.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read base config file: %w", err)
		}
		baseConfigExists = true
	}

	// Load environment-specific config (e.g., local.yaml when CONFIG_ENV=local)
	envConfigPath := fmt.Sprintf("%s/%s.yaml", configDir, configEnv)
	if _, err := os.Stat(envConfigPath); err == nil {
		if baseConfigExists {
			// Merge environment config on top of base config
			viper.SetConfigFile(envConfigPath)
			if err := viper.MergeInConfig(); err != nil {
				return nil, fmt.Errorf("failed to merge env config file: %w", err)
			}
		} else {
			viper.SetConfigFile(envConfigPath)
			if err := viper.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("failed to read env config file: %w", err)
			}
		}
	}

	// Also read from environment variables (with prefix)
	viper.SetEnvPrefix("TALLY")
	viper.AutomaticEnv()

	viper.BindEnv("server.port", "TALLY_SERVER_PORT", "PORT")
	viper.BindEnv("ledger.openingBalance", "TALLY_LEDGER_OPENING_BALANCE", "OPENING_BALANCE")
	viper.BindEnv("ledger.strict", "TALLY_LEDGER_STRICT", "LEDGER_STRICT")

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}
