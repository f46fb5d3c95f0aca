package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Load loads the configuration from file
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Set default values
	setDefaults(v)

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
			v.AddConfigPath(filepath.Join(home, ".frisbo"))
		}

		// Check /etc
		v.AddConfigPath("/etc/frisbo/")
	}

	// Credentials can come from the environment instead of the file,
	// e.g. FRISBO_FRISBO_PASSWORD
	v.SetEnvPrefix("FRISBO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil, fmt.Errorf("config file not found: %w", err)
		}
		return nil, fmt.Errorf("error reading config: %w", err)
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
	// API defaults
	v.SetDefault("frisbo.base_url", "https://api.frisbo.ro")
	v.SetDefault("frisbo.timeout_seconds", 30)

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.color", true)
}

// validate checks if the configuration is valid
func validate(cfg *Config) error {
	if cfg.Frisbo.BaseURL == "" {
		return fmt.Errorf("frisbo.base_url is required")
	}

	// Either a credential pair or a pre-existing token must be present
	hasCredentials := cfg.Frisbo.Email != "" && cfg.Frisbo.Password != ""
	if !hasCredentials && cfg.Frisbo.AccessToken == "" {
		return fmt.Errorf("frisbo.email and frisbo.password (or frisbo.access_token) must be set")
	}
	if cfg.Frisbo.Email != "" && cfg.Frisbo.Password == "" {
		return fmt.Errorf("frisbo.password is required when frisbo.email is set")
	}

	if cfg.Frisbo.TimeoutSeconds < 0 {
		return fmt.Errorf("frisbo.timeout_seconds cannot be negative")
	}

	// Validate logging level
	validLevels := map[string]bool{
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
