package config

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	brandforgeerrors "github.com/forgeline/brandforge/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// Load reads the settings file at path, layers it over the defaults,
// applies environment overrides and validates the result. A missing
// file is not an error; the defaults plus environment apply.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return Config{}, brandforgeerrors.NewParseError(path, 0, err)
		}
	} else if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, brandforgeerrors.NewParseError(path, extractLine(err), err)
	}

	applyEnv(&cfg)

	if err := Validate(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// applyEnv lets BRANDFORGE_* variables override file values. godotenv
// populates these from .env before Load runs.
func applyEnv(cfg *Config) {
	overrides := map[string]*string{
		"BRANDFORGE_LOG_LEVEL":     &cfg.LogLevel,
		"BRANDFORGE_DB_PATH":       &cfg.DBPath,
		"BRANDFORGE_TEMPLATES_DIR": &cfg.TemplatesDir,
		"BRANDFORGE_EXPORT_DIR":    &cfg.ExportDir,
		"BRANDFORGE_AUTH_URL":      &cfg.Services.AuthURL,
		"BRANDFORGE_AUTH_API_KEY":  &cfg.Services.AuthAPIKey,
		"BRANDFORGE_BILLING_URL":   &cfg.Services.BillingURL,
		"BRANDFORGE_GENERATE_URL":  &cfg.Services.GenerateURL,
		"BRANDFORGE_RASTER_URL":    &cfg.Services.RasterURL,
	}
	for name, target := range overrides {
		if value, ok := os.LookupEnv(name); ok && value != "" {
			*target = value
		}
	}
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	if _, scanErr := fmt.Sscanf(matches[1], "%d", &line); scanErr != nil {
		return 0
	}
	return line
}
