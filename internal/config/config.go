// Package config loads optional CLI settings from lyrebird.yml.
package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/viper"
)

// Config holds CLI-wide settings. Every field has a working default,
// so a missing lyrebird.yml is not an error.
type Config struct {
	Plain   bool     // Plain output without styling
	Spinner bool     // Show a spinner during batch runs
	Skip    []string // Demo names excluded from "run all"
}

// Load reads lyrebird.yml from the current directory, falling back to
// defaults when the file is absent. Environment variables with the
// LYREBIRD prefix override both file values and defaults, e.g.
// LYREBIRD_CATALOG_SPINNER=false. Skip entries are validated against
// knownNames.
func Load(knownNames []string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("lyrebird")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetDefault("catalog.plain", false)
	v.SetDefault("catalog.spinner", true)

	// Enable environment variable overrides. The replacer maps nested
	// keys like catalog.spinner to LYREBIRD_CATALOG_SPINNER.
	v.AutomaticEnv()
	v.SetEnvPrefix("LYREBIRD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// A missing file is fine; env overrides and defaults still apply.
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read lyrebird.yml: %w", err)
		}
	}

	cfg := &Config{
		Plain:   v.GetBool("catalog.plain"),
		Spinner: v.GetBool("catalog.spinner"),
		Skip:    v.GetStringSlice("catalog.skip"),
	}

	for _, name := range cfg.Skip {
		if !slices.Contains(knownNames, name) {
			return nil, fmt.Errorf("lyrebird.yml: catalog.skip names unknown pattern '%s'", name)
		}
	}

	return cfg, nil
}
