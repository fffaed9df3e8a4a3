// Package config loads quotebox settings from an optional TOML file.
//
// Defaults are applied first, then the file (if any), then command-line
// flags in the cmd package. The result is validated before use.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"

	"github.com/Snider/Quotebox/pkg/quote"
	"github.com/Snider/Quotebox/pkg/widget"
)

// EnvPath names the environment variable consulted when no config path is
// given on the command line.
const EnvPath = "QUOTEBOX_CONFIG"

var validate = validator.New()

// Config is the complete quotebox configuration.
type Config struct {
	Endpoint string        `toml:"endpoint" validate:"required,url"`
	ShareURL string        `toml:"share_url" validate:"required,url"`
	Timeout  time.Duration `toml:"timeout" validate:"gte=0"`

	Serve ServeConfig `toml:"serve"`
	Watch WatchConfig `toml:"watch"`
	Log   LogConfig   `toml:"log"`
}

// ServeConfig configures the HTTP host.
type ServeConfig struct {
	Port string `toml:"port" validate:"required,numeric"`
	Open bool   `toml:"open"`
}

// WatchConfig configures the periodic printer.
type WatchConfig struct {
	Interval time.Duration `toml:"interval" validate:"gte=1s"`
}

// LogConfig configures log output.
type LogConfig struct {
	Format string `toml:"format" validate:"oneof=text json"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Endpoint: quote.DefaultEndpoint,
		ShareURL: widget.ShareURL,
		Serve:    ServeConfig{Port: "8080"},
		Watch:    WatchConfig{Interval: 30 * time.Second},
		Log:      LogConfig{Format: "text"},
	}
}

// Load returns the defaults overlaid with the file at path. An empty path
// falls back to $QUOTEBOX_CONFIG; if that is empty too the defaults are
// returned unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		path = os.Getenv(EnvPath)
	}
	if path == "" {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("config file %s not found", path)
		}
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks every field against its constraints.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			first := verrs[0]
			return fmt.Errorf("invalid config: %s fails %q (got %v)", first.Namespace(), first.Tag(), first.Value())
		}
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
