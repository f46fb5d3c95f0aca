package config

// Config represents the complete configuration structure
type Config struct {
	Frisbo  FrisboConfig  `mapstructure:"frisbo"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// FrisboConfig holds Frisbo API connection details and credentials
type FrisboConfig struct {
	BaseURL        string `mapstructure:"base_url"`
	Email          string `mapstructure:"email"`
	Password       string `mapstructure:"password"`
	AccessToken    string `mapstructure:"access_token"`
	Proxy          string `mapstructure:"proxy"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
	OrganizationID int    `mapstructure:"organization_id"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}
