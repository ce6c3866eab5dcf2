// Package config assembles run settings from defaults, an optional TOML
// file, a .env file and GRAFOS_* environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

// ErrInvalid reports a setting that cannot be used.
var ErrInvalid = errors.New("config: invalid setting")

// Environment variables read by Load.
const (
	EnvLogLevel   = "GRAFOS_LOG_LEVEL"
	EnvLogFormat  = "GRAFOS_LOG_FORMAT"
	EnvBruteLimit = "GRAFOS_BRUTE_LIMIT"
	EnvShowLimit  = "GRAFOS_SHOW_LIMIT"
)

// DotEnvFile is the .env file Load reads from the working directory.
const DotEnvFile = ".env"

// Config controls logging and the optional runner features.
type Config struct {
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `toml:"log_level"`

	// LogFormat is console or json.
	LogFormat string `toml:"log_format"`

	// BruteLimit is the largest vertex count the exact colorer accepts.
	BruteLimit int `toml:"brute_limit"`

	// ShowLimit bounds the vertex count for which assignments are printed.
	ShowLimit int `toml:"show_limit"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		LogLevel:   "warn",
		LogFormat:  "console",
		BruteLimit: 12,
		ShowLimit:  10,
	}
}

// Load builds a Config from defaults, the TOML file at path (skipped when
// path is empty), ./.env and the process environment, in that order.
func Load(path string) (*Config, error) {
	return LoadFrom(path, DotEnvFile)
}

// LoadFrom is Load with an explicit .env location. A missing .env file is
// not an error; process variables win over .env entries.
func LoadFrom(path, dotenv string) (*Config, error) {
	cfg := Default()

	if path != "" {
		md, err := toml.DecodeFile(path, cfg)
		if err != nil {
			return nil, errors.Wrapf(err, "config: decode %s", path)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("%w: unknown key %q in %s", ErrInvalid, undecoded[0].String(), path)
		}
	}

	fileEnv, err := readDotEnv(dotenv)
	if err != nil {
		return nil, err
	}
	lookup := func(key string) string {
		if v, ok := os.LookupEnv(key); ok {
			return strings.TrimSpace(v)
		}
		return strings.TrimSpace(fileEnv[key])
	}

	if v := lookup(EnvLogLevel); v != "" {
		cfg.LogLevel = v
	}
	if v := lookup(EnvLogFormat); v != "" {
		cfg.LogFormat = v
	}
	if err := envInt(lookup, EnvBruteLimit, &cfg.BruteLimit); err != nil {
		return nil, err
	}
	if err := envInt(lookup, EnvShowLimit, &cfg.ShowLimit); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate normalizes case and checks every field.
func (c *Config) Validate() error {
	c.LogLevel = strings.ToLower(c.LogLevel)
	c.LogFormat = strings.ToLower(c.LogFormat)

	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log level %q", ErrInvalid, c.LogLevel)
	}
	switch c.LogFormat {
	case "console", "json":
	default:
		return fmt.Errorf("%w: log format %q", ErrInvalid, c.LogFormat)
	}
	if c.BruteLimit < 1 {
		return fmt.Errorf("%w: brute limit %d < 1", ErrInvalid, c.BruteLimit)
	}
	if c.ShowLimit < 0 {
		return fmt.Errorf("%w: show limit %d < 0", ErrInvalid, c.ShowLimit)
	}

	return nil
}

func readDotEnv(path string) (map[string]string, error) {
	if path == "" {
		return nil, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, nil
	}
	values, err := godotenv.Read(path)
	if err != nil {
		return nil, errors.Wrapf(err, "config: read %s", path)
	}

	return values, nil
}

func envInt(lookup func(string) string, key string, dst *int) error {
	value := lookup(key)
	if value == "" {
		return nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("%w: %s=%q is not an integer", ErrInvalid, key, value)
	}
	*dst = parsed

	return nil
}
