package config

import (
	"embed"
	"fmt"
	"log/slog"
	"strings"

	"github.com/BurntSushi/toml"
	mandel "github.com/marben/mandelzoom"
	"github.com/marben/mandelzoom/render"
)

//go:embed default
var configFS embed.FS

const (
	MinWindowWidth  = 320
	MinWindowHeight = 240
)

// ErrInvalidSize is shared with render so size errors classify the same
// everywhere.
var ErrInvalidSize = render.ErrInvalidSize

type Config struct {
	Window WindowConfig `toml:"window"`
	View   ViewConfig   `toml:"view"`
	Server ServerConfig `toml:"server"`
	Log    LogConfig    `toml:"log"`
}

type WindowConfig struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
}

type ViewConfig struct {
	Landmark string `toml:"landmark"`
}

type ServerConfig struct {
	Addr string `toml:"addr"`

	// RPCAddr is the irpc listen address. Empty disables the listener.
	RPCAddr string `toml:"rpc_addr"`
}

type LogConfig struct {
	Level string `toml:"level"`
}

// Load decodes data on top of c, so keys missing from data keep their current
// values. Unknown keys are rejected.
func (c *Config) Load(data string) error {
	md, err := toml.Decode(data, c)
	if err != nil {
		return fmt.Errorf("decode config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("unknown config keys: %s", strings.Join(keys, ", "))
	}
	return nil
}

// Validate checks the values that the hosts depend on.
func (c *Config) Validate() error {
	if c.Window.Width < MinWindowWidth || c.Window.Height < MinWindowHeight {
		return fmt.Errorf("%w: window %dx%d is smaller than %dx%d", ErrInvalidSize,
			c.Window.Width, c.Window.Height, MinWindowWidth, MinWindowHeight)
	}
	if _, err := mandel.Landmark(c.View.Landmark); err != nil {
		return fmt.Errorf("view.landmark: %w", err)
	}
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	return nil
}

// Viewport resolves the configured start landmark.
func (c *Config) Viewport() (mandel.Viewport, error) {
	return mandel.Landmark(c.View.Landmark)
}

func (c *Config) LogLevel() (slog.Level, error) {
	var level slog.Level
	if c.Log.Level == "" {
		return slog.LevelInfo, nil
	}
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return 0, fmt.Errorf("log.level: %w", err)
	}
	return level, nil
}

// Overrides carries command line values. Zero fields leave the configuration
// untouched.
type Overrides struct {
	Landmark      string
	Width, Height int
	Addr          string
	RPCAddr       string
	Debug         bool
}

// Apply overlays o onto c and validates the result.
func (c *Config) Apply(o Overrides) error {
	if o.Landmark != "" {
		c.View.Landmark = o.Landmark
	}
	if o.Width != 0 {
		c.Window.Width = o.Width
	}
	if o.Height != 0 {
		c.Window.Height = o.Height
	}
	if o.Addr != "" {
		c.Server.Addr = o.Addr
	}
	if o.RPCAddr != "" {
		c.Server.RPCAddr = o.RPCAddr
	}
	if o.Debug {
		c.Log.Level = "debug"
	}
	return c.Validate()
}
