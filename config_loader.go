package paramx

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// LoadConfigFromEnvironment loads configuration from environment variables.
//
// This function reads configuration from standard environment variables and
// returns a validated Config struct. It follows the 12-factor app methodology
// where configuration is read from the environment. A .env file in the
// working directory, if present, is loaded first without overriding variables
// already set.
//
// Recognized environment variables (defaults are applied if not set):
//   - PARAMX_DEFAULT_METHOD: serialization entry point (default: tostring)
//   - PARAMX_URL_ENCODE: percent-encode values (default: true)
//   - PARAMX_TIME_LAYOUT: reference-time layout for date parameters (default: RFC 3339)
//   - PARAMX_LOCALE: BCP 47 tag for the format provider (default: invariant)
//
// Example usage:
//
//	// export PARAMX_DEFAULT_METHOD="serialized"
//	// export PARAMX_LOCALE="en"
//
//	cfg, err := paramx.LoadConfigFromEnvironment()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	id := paramx.New("id", 42, paramx.FromConfig(cfg))
func LoadConfigFromEnvironment() (Config, error) {
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			return Config{}, fmt.Errorf("failed to load .env file: %w", err)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// LoadConfigFromFile loads configuration from a YAML file and validates it.
//
// Example file:
//
//	default_method: tostring
//	url_encode: true
//	time_layout: "2006-01-02"
//	locale: de-DE
func LoadConfigFromFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file '%s': %w", path, err)
	}

	cfg := Config{DefaultURLEncode: true}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config file '%s': %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}
