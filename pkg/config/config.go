// Package config loads the layered CLI configuration: built-in defaults,
// then an .axquery.toml file, then AXQUERY_* environment variables, each
// layer overriding the one below it. The library packages never read
// configuration; only the CLI does.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	gotoml "github.com/pelletier/go-toml/v2"

	"github.com/e-sung/AxQuery/pkg/errors"
)

// EnvPrefix is the prefix for environment overrides. Nested keys use a
// double underscore: AXQUERY_TREE__SHOW_HIDDEN maps to tree.show_hidden.
const EnvPrefix = "AXQUERY_"

// Config is the fully resolved CLI configuration.
type Config struct {
	Output OutputConfig `koanf:"output" toml:"output"`
	Tree   TreeConfig   `koanf:"tree" toml:"tree"`
	Log    LogConfig    `koanf:"log" toml:"log"`
}

// OutputConfig controls how command results are rendered.
type OutputConfig struct {
	// Format is one of auto, term, plain or json. auto picks term on a
	// TTY and plain otherwise.
	Format string `koanf:"format" toml:"format"`
	Color  bool   `koanf:"color" toml:"color"`
}

// TreeConfig controls the tree command.
type TreeConfig struct {
	// ShowHidden includes nodes that are not exposed to assistive
	// technologies, marked as such.
	ShowHidden bool `koanf:"show_hidden" toml:"show_hidden"`
}

// LogConfig controls diagnostic logging.
type LogConfig struct {
	Verbosity int `koanf:"verbosity" toml:"verbosity"`
}

func defaults() map[string]interface{} {
	return map[string]interface{}{
		"output.format":    "auto",
		"output.color":     true,
		"tree.show_hidden": false,
		"log.verbosity":    0,
	}
}

// Default returns the built-in configuration with no file or environment
// layers applied.
func Default() *Config {
	cfg, err := load("", false)
	if err != nil {
		// Defaults are static and always unmarshal.
		panic(err)
	}
	return cfg
}

// Load resolves the configuration for dir, looking for .axquery.toml or
// axquery.toml there. Failures carry the CONFIG_LOAD code.
func Load(dir string) (*Config, error) {
	return load(dir, true)
}

func load(dir string, withEnv bool) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load default configuration")
	}

	if dir != "" {
		for _, filename := range []string{".axquery.toml", "axquery.toml"} {
			path := filepath.Join(dir, filename)
			if _, err := os.Stat(path); err != nil {
				continue
			}
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, errors.Wrapf(err, errors.ErrConfigLoad,
					"failed to load configuration from %s", path).
					WithDetail("path", path)
			}
			break
		}
	}

	if withEnv {
		err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
			key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
			return strings.ReplaceAll(key, "__", ".")
		}), nil)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment overrides")
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to unmarshal configuration")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks enumerated fields.
func (c *Config) Validate() error {
	switch c.Output.Format {
	case "auto", "term", "plain", "json":
	default:
		return errors.Newf(errors.ErrConfigLoad,
			"invalid output format %q: must be auto, term, plain or json", c.Output.Format).
			WithDetail("format", c.Output.Format)
	}
	if c.Log.Verbosity < 0 {
		return errors.Newf(errors.ErrConfigLoad,
			"invalid log verbosity %d: must not be negative", c.Log.Verbosity)
	}
	return nil
}

// TOML renders the configuration as a TOML document, used to seed a
// config file with the current settings.
func (c *Config) TOML() (string, error) {
	data, err := gotoml.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("failed to marshal configuration: %w", err)
	}
	return string(data), nil
}
