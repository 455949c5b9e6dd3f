// Package config loads the studio's settings file and environment
// overrides.
package config

import (
	"os"
	"path/filepath"
)

// Config is the full application configuration.
type Config struct {
	LogLevel  string `yaml:"log_level" validate:"omitempty,oneof=trace debug info warn error"`
	HumanLogs bool   `yaml:"human_logs"`

	DBPath       string `yaml:"db_path" validate:"required"`
	TemplatesDir string `yaml:"templates_dir" validate:"required"`
	ExportDir    string `yaml:"export_dir" validate:"required"`

	Services Services `yaml:"services"`
}

// Services holds the endpoints of the hosted collaborators. Empty
// endpoints disable the matching feature instead of failing startup.
type Services struct {
	AuthURL    string `yaml:"auth_url" validate:"omitempty,service_url"`
	AuthAPIKey string `yaml:"auth_api_key"`

	BillingURL  string `yaml:"billing_url" validate:"omitempty,service_url"`
	GenerateURL string `yaml:"generate_url" validate:"omitempty,service_url"`
	RasterURL   string `yaml:"raster_url" validate:"omitempty,service_url"`
}

// DefaultConfig returns the configuration used when no file exists.
// State lives under ~/.brandforge.
func DefaultConfig() Config {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	root := filepath.Join(home, ".brandforge")

	return Config{
		LogLevel:     "info",
		HumanLogs:    true,
		DBPath:       filepath.Join(root, "brandforge.db"),
		TemplatesDir: filepath.Join(root, "templates"),
		ExportDir:    filepath.Join(root, "exports"),
	}
}

// DefaultPath returns the location of the settings file.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".brandforge", "config.yaml"), nil
}
