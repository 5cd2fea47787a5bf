// =============================================================================
// Usage Translator - Configuration Module
// =============================================================================
//
// This module is responsible for loading the run settings and the usage
// table.
//
// CONFIGURATION SOURCES (later sources override earlier ones):
//   1. Built-in defaults
//   2. appsettings.json                 (optional)
//   3. appsettings.<environment>.json   (optional)
//   4. Environment variables prefixed with USAGETRANSLATOR_
//
// The environment name comes from USAGETRANSLATOR_ENVIRONMENT and defaults
// to "Production". A .env file in the configuration directory is loaded into
// the process environment first; variables that are already set win.
//
// EXAMPLE appsettings.json:
//
//   {
//     "ExcludePartnerIds": [26392, 42],
//     "OutputDir": "./out",
//     "UsageTable": "./usage-table.yaml",
//     "Logging": { "Level": "info", "Format": "console" }
//   }
//
// EXAMPLE environment override:
//
//   USAGETRANSLATOR_EXCLUDEPARTNERIDS=26392,42
//   USAGETRANSLATOR_LOGGING_LEVEL=debug
//
// =============================================================================

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/ginjaninja78/usagetranslator/internal/logging"
	"github.com/ginjaninja78/usagetranslator/pkg/utils"
)

// =============================================================================
// CONSTANTS
// =============================================================================

const (
	// EnvPrefix prefixes every environment override.
	EnvPrefix = "USAGETRANSLATOR"

	// EnvironmentVariable selects the environment-specific settings file.
	EnvironmentVariable = EnvPrefix + "_ENVIRONMENT"

	// DefaultEnvironment is used when EnvironmentVariable is unset.
	DefaultEnvironment = "Production"

	// SettingsBaseName is the base name of the settings files.
	SettingsBaseName = "appsettings"
)

// =============================================================================
// SETTINGS STRUCTURE
// =============================================================================

// Settings holds the configuration of one run.
type Settings struct {
	// ExcludePartnerIDs lists the partners whose rows are dropped silently.
	// Default: empty
	ExcludePartnerIDs []int `mapstructure:"ExcludePartnerIds"`

	// OutputDir is the directory the four output files are written to.
	// Default: "."
	OutputDir string `mapstructure:"OutputDir"`

	// UsageTable is an optional path to a YAML usage table. When empty, the
	// built-in table is used.
	UsageTable string `mapstructure:"UsageTable"`

	// Logging configures the structured logger.
	Logging logging.Config `mapstructure:"Logging"`
}

// =============================================================================
// LOADING
// =============================================================================

// Load reads the settings from the files in dir and the environment.
//
// PARAMETERS:
//   - dir: The directory holding appsettings*.json and .env. Empty means
//     the current directory.
//
// RETURNS:
//   - The loaded, validated settings.
//   - An error if a present file cannot be parsed or a value is invalid.
//     Missing files are not errors.
func Load(dir string) (*Settings, error) {
	if dir == "" {
		dir = "."
	}

	if err := godotenv.Load(filepath.Join(dir, ".env")); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	v := viper.New()
	v.SetConfigType("json")
	applyDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Base settings.
	base := filepath.Join(dir, SettingsBaseName+".json")
	if utils.FileExists(base) {
		v.SetConfigFile(base)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", base, err)
		}
	}

	// Environment-specific overrides.
	overlay := filepath.Join(dir, fmt.Sprintf("%s.%s.json", SettingsBaseName, Environment()))
	if utils.FileExists(overlay) {
		v.SetConfigFile(overlay)
		if err := v.MergeInConfig(); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", overlay, err)
		}
	}

	var settings Settings
	if err := v.Unmarshal(&settings); err != nil {
		return nil, fmt.Errorf("failed to decode settings: %w", err)
	}

	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &settings, nil
}

// Environment returns the active environment name.
func Environment() string {
	if env := strings.TrimSpace(os.Getenv(EnvironmentVariable)); env != "" {
		return env
	}
	return DefaultEnvironment
}

// applyDefaults registers every key so that environment overrides are seen
// by Unmarshal.
func applyDefaults(v *viper.Viper) {
	defaults := logging.DefaultConfig()

	v.SetDefault("ExcludePartnerIds", []int{})
	v.SetDefault("OutputDir", ".")
	v.SetDefault("UsageTable", "")
	v.SetDefault("Logging.Level", defaults.Level)
	v.SetDefault("Logging.Format", defaults.Format)
}

// =============================================================================
// VALIDATION
// =============================================================================

// Validate reports every invalid setting at once.
func (s *Settings) Validate() error {
	var result *multierror.Error

	if strings.TrimSpace(s.OutputDir) == "" {
		result = multierror.Append(result, errors.New("OutputDir cannot be empty"))
	}

	switch s.Logging.Format {
	case "", "console", "json":
	default:
		result = multierror.Append(result, fmt.Errorf("Logging.Format must be console or json, got %q", s.Logging.Format))
	}

	switch strings.ToLower(s.Logging.Level) {
	case "", "debug", "info", "warn", "error":
	default:
		result = multierror.Append(result, fmt.Errorf("Logging.Level must be debug, info, warn or error, got %q", s.Logging.Level))
	}

	return result.ErrorOrNil()
}
