// Package config loads wireframe settings from a TOML file.
//
// The file is optional. Every key has a default, so an empty file and no
// file at all behave the same. Unknown keys are rejected, which catches
// typos such as "screen_heigth".
//
//	[layout]
//	screen_height = 600
//	screen_padding = 20
//	screen_gap = 40
//	caption_height = 24
//
//	[render]
//	style = "handdrawn"   # simple | handdrawn
//	seed = 7
//	font_scale = 1.0
//	background = "#fafafa"
//	strict = false
//
//	[palette.primary]
//	fill = "#6200ee"
//	text = "#ffffff"
//
//	[cache]
//	backend = "file"      # none | file | redis
//	dir = ""              # defaults to the user cache directory
//	redis_url = "redis://localhost:6379/0"
package config

import (
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/wireframe/pkg/core/layout"
	"github.com/matzehuels/wireframe/pkg/core/render"
	"github.com/matzehuels/wireframe/pkg/errors"
)

// Styles accepted by [render] style.
const (
	StyleSimple    = "simple"
	StyleHanddrawn = "handdrawn"
)

// Cache backends accepted by [cache] backend.
const (
	CacheNone  = "none"
	CacheFile  = "file"
	CacheRedis = "redis"
)

// Config is the decoded configuration file.
type Config struct {
	Layout  Layout                   `toml:"layout"`
	Render  Render                   `toml:"render"`
	Palette map[string]render.Colors `toml:"palette"`
	Cache   Cache                    `toml:"cache"`

	// Path is the file the config was read from, or "" for defaults.
	Path string `toml:"-"`
}

type Layout struct {
	ScreenHeight  float64 `toml:"screen_height"`
	ScreenPadding float64 `toml:"screen_padding"`
	ScreenGap     float64 `toml:"screen_gap"`
	CaptionHeight float64 `toml:"caption_height"`
}

type Render struct {
	Style      string  `toml:"style"`
	Seed       uint64  `toml:"seed"`
	FontScale  float64 `toml:"font_scale"`
	Background string  `toml:"background"`
	Strict     bool    `toml:"strict"`
}

type Cache struct {
	Backend  string `toml:"backend"`
	Dir      string `toml:"dir"`
	RedisURL string `toml:"redis_url"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Layout: Layout{
			ScreenHeight:  layout.DefaultScreenHeight,
			ScreenPadding: layout.DefaultScreenPadding,
			ScreenGap:     layout.DefaultScreenGap,
			CaptionHeight: layout.DefaultCaptionHeight,
		},
		Render: Render{
			Style:     StyleSimple,
			Seed:      42,
			FontScale: 1,
		},
		Cache: Cache{Backend: CacheFile},
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/wireframe/config.toml, falling back
// to the platform user config directory.
func DefaultPath() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "wireframe", "config.toml"), nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "wireframe", "config.toml"), nil
}

// Load reads path over the defaults. An empty path means [DefaultPath],
// which may be absent; an explicit path must exist.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return Default(), nil
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return Default(), nil
		}
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "config %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config %s", path)
	}

	cfg, err := Parse(string(data))
	if err != nil {
		return nil, err
	}
	cfg.Path = path
	return cfg, nil
}

// Parse decodes TOML text over the defaults and validates the result.
func Parse(text string) (*Config, error) {
	cfg := Default()
	md, err := toml.Decode(text, cfg)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode config")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return nil, errors.New(errors.ErrCodeInvalidConfig, "unknown keys: %s", strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks value ranges and enumerations.
func (c *Config) Validate() error {
	l := c.Layout
	for name, v := range map[string]float64{
		"layout.screen_height":  l.ScreenHeight,
		"layout.screen_padding": l.ScreenPadding,
		"layout.screen_gap":     l.ScreenGap,
		"layout.caption_height": l.CaptionHeight,
	} {
		if v < 0 {
			return errors.New(errors.ErrCodeInvalidConfig, "%s must not be negative, got %v", name, v)
		}
	}
	if l.ScreenHeight == 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "layout.screen_height must be positive")
	}
	if !slices.Contains([]string{StyleSimple, StyleHanddrawn}, c.Render.Style) {
		return errors.New(errors.ErrCodeInvalidConfig, "render.style must be %q or %q, got %q",
			StyleSimple, StyleHanddrawn, c.Render.Style)
	}
	if c.Render.FontScale <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "render.font_scale must be positive")
	}
	if !slices.Contains([]string{CacheNone, CacheFile, CacheRedis}, c.Cache.Backend) {
		return errors.New(errors.ErrCodeInvalidConfig, "cache.backend must be none, file or redis, got %q", c.Cache.Backend)
	}
	if c.Cache.Backend == CacheRedis && c.Cache.RedisURL == "" {
		return errors.New(errors.ErrCodeInvalidConfig, "cache.redis_url is required for the redis backend")
	}
	if _, err := c.RenderPalette(); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "palette")
	}
	return nil
}

// LayoutOptions converts the [layout] section.
func (c *Config) LayoutOptions() []layout.Option {
	return []layout.Option{
		layout.WithScreenHeight(c.Layout.ScreenHeight),
		layout.WithScreenPadding(c.Layout.ScreenPadding),
		layout.WithScreenGap(c.Layout.ScreenGap),
		layout.WithCaptionHeight(c.Layout.CaptionHeight),
	}
}

// RenderPalette applies the [palette.*] overrides to the default palette.
func (c *Config) RenderPalette() (render.Palette, error) {
	p := render.DefaultPalette()
	names := make([]string, 0, len(c.Palette))
	for name := range c.Palette {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if err := p.Set(name, c.Palette[name]); err != nil {
			return p, err
		}
	}
	return p, nil
}
