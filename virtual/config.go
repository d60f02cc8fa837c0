package virtual

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/ancientlore/sitenav/decor"
	"github.com/ancientlore/sitenav/nav"
	"github.com/pelletier/go-toml/v2"
)

// ConfigFile is the name of the site configuration file at the root of the site.
const ConfigFile = "site.cfg"

// Config contains configuration data from the site.cfg file.
type Config struct {
	Expires       Duration          `toml:"expires"`
	StaticExpires Duration          `toml:"staticexpires"`
	Headers       map[string]string `toml:"headers"`
	Sanitize      bool              `toml:"sanitize"` // sanitize rendered Markdown
	Nav           NavConfig         `toml:"nav"`
	Analytics     AnalyticsConfig   `toml:"analytics"`
	Math          MathConfig        `toml:"math"`
}

// NavConfig selects the variant of the navigation menu.
type NavConfig struct {
	Disabled    bool                `toml:"disabled"`    // do not inject the menu
	Overlay     bool                `toml:"overlay"`     // dim the page while the menu is open
	ViewportFix bool                `toml:"viewportfix"` // track the visual viewport height
	Script      *string             `toml:"script"`      // URL of the client script; "" for none
	Filter      *decor.FilterParams `toml:"filter"`      // decorative filter; nil for none
}

// AnalyticsConfig configures the analytics tag.
type AnalyticsConfig struct {
	ID string `toml:"id"` // measurement ID; empty disables analytics
}

// MathConfig configures math typesetting.
type MathConfig struct {
	Enabled bool `toml:"enabled"`
}

// Options returns the menu rendering options for this configuration.
func (c NavConfig) Options() nav.Options {
	opts := nav.Options{
		UseOverlay:           c.Overlay,
		UseViewportHeightFix: c.ViewportFix,
		ScriptPath:           nav.DefaultScriptPath,
	}
	if c.Script != nil {
		opts.ScriptPath = *c.Script
	}
	return opts
}

// Config returns the configuration read from the site.cfg file when the FS was created.
// A site without the file gets the zero Config.
func (vfs *FS) Config() *Config {
	return &vfs.cfg
}

// loadConfig reads the site.cfg file. It is not an error if the file does not exist.
func loadConfig(fsys fs.FS) (Config, error) {
	var cfg Config
	cfgBytes, err := fs.ReadFile(fsys, ConfigFile)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("Cannot read config file: %w", err)
	}
	err = toml.Unmarshal(cfgBytes, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("Cannot parse config file: %w", err)
	}
	return cfg, nil
}
