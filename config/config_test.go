package config

import (
	"testing"
)

func validConfig() *Config {
	return &Config{
		Frisbo: FrisboConfig{
			BaseURL:  "https://api.frisbo.ro",
			Email:    "user@example.com",
			Password: "secret",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

func TestValidateCredentials(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *Config)
		wantErr bool
	}{
		{
			name:   "Email and password",
			mutate: func(cfg *Config) {},
		},
		{
			name: "Access token only",
			mutate: func(cfg *Config) {
				cfg.Frisbo.Email = ""
				cfg.Frisbo.Password = ""
				cfg.Frisbo.AccessToken = "token"
			},
		},
		{
			name: "No credentials at all",
			mutate: func(cfg *Config) {
				cfg.Frisbo.Email = ""
				cfg.Frisbo.Password = ""
			},
			wantErr: true,
		},
		{
			name: "Email without password",
			mutate: func(cfg *Config) {
				cfg.Frisbo.Password = ""
				cfg.Frisbo.AccessToken = "token"
			},
			wantErr: true,
		},
		{
			name: "Missing base URL",
			mutate: func(cfg *Config) {
				cfg.Frisbo.BaseURL = ""
			},
			wantErr: true,
		},
		{
			name: "Negative timeout",
			mutate: func(cfg *Config) {
				cfg.Frisbo.TimeoutSeconds = -1
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := validate(cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateLogging(t *testing.T) {
	tests := []struct {
		name    string
		level   string
		format  string
		wantErr bool
	}{
		{name: "Valid console config", level: "debug", format: "console"},
		{name: "Valid json config", level: "error", format: "json"},
		{name: "Invalid level", level: "trace", format: "console", wantErr: true},
		{name: "Invalid format", level: "info", format: "logfmt", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			cfg.Logging.Level = tt.level
			cfg.Logging.Format = tt.format

			err := validate(cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
