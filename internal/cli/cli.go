// Package cli implements the wireframe command-line interface.
//
// Commands render wireframe source files to SVG and companion formats,
// print layout geometry, check files for diagnostics, browse the node tree
// interactively, and manage the artifact cache. The CLI is built with cobra,
// logs with charmbracelet/log and styles terminal output with lipgloss.
//
// # Commands
//
//   - render: render one or more files to svg, json, layout, dot or structure
//   - layout: print the computed screen and node geometry
//   - check: list parse and layout diagnostics
//   - inspect: browse the node tree and its bounds in a terminal UI
//   - cache: inspect or clear the artifact cache
//
// # Configuration
//
// Settings are read from --config or $XDG_CONFIG_HOME/wireframe/config.toml.
// Command-line flags override the file.
package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/wireframe/pkg/buildinfo"
	"github.com/matzehuels/wireframe/pkg/cache"
	"github.com/matzehuels/wireframe/pkg/config"
	"github.com/matzehuels/wireframe/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for cache scoping and display.
const appName = "wireframe"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Config *config.Config

	configPath string
	verbose    bool
}

// New creates a new CLI instance with a default logger and built-in
// configuration. The config file is loaded before each command runs.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Config: config.Default(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Wireframe turns indented UI sketches into vector drawings",
		Long: `Wireframe reads a small indentation-based language describing screens,
containers and widgets, lays it out with a flex model, and draws it as an SVG
wireframe.`,
		Version:           buildinfo.Read().Short(),
		SilenceUsage:      true,
		SilenceErrors:     true, // main logs the error
		PersistentPreRunE: c.setup,
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default: $XDG_CONFIG_HOME/wireframe/config.toml)")

	root.AddCommand(c.renderCommand())
	root.AddCommand(c.layoutCommand())
	root.AddCommand(c.checkCommand())
	root.AddCommand(c.inspectCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(ctx context.Context, noCache bool) (*pipeline.Runner, error) {
	store, err := c.newCache(ctx, noCache)
	if err != nil {
		return nil, err
	}
	keyer := cache.NewScopedKeyer(nil, appName)
	return pipeline.NewRunner(store, keyer, c.Logger), nil
}

// newCache opens the backend named by the [cache] section. An unreachable
// Redis is not fatal; rendering continues uncached.
func (c *CLI) newCache(ctx context.Context, noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	switch c.Config.Cache.Backend {
	case config.CacheNone:
		return cache.NewNullCache(), nil
	case config.CacheRedis:
		rc, err := cache.NewRedisCache(ctx, c.Config.Cache.RedisURL)
		if err != nil {
			c.Logger.Warn("redis cache unavailable, continuing without cache", "error", err)
			return cache.NewNullCache(), nil
		}
		return rc, nil
	default:
		return c.fileCache()
	}
}

// fileCache opens the file cache in the configured or default directory.
func (c *CLI) fileCache() (*cache.FileCache, error) {
	dir := c.Config.Cache.Dir
	if dir == "" {
		var err error
		if dir, err = cache.DefaultDir(); err != nil {
			return nil, fmt.Errorf("get cache dir: %w", err)
		}
	}
	return cache.NewFileCache(dir)
}

// =============================================================================
// Options Helpers
// =============================================================================

// baseOptions returns pipeline options seeded from the loaded config.
// Command flags are applied on top.
func (c *CLI) baseOptions() (pipeline.Options, error) {
	cfg := c.Config
	palette, err := cfg.RenderPalette()
	if err != nil {
		return pipeline.Options{}, err
	}
	padding, gap, caption := cfg.Layout.ScreenPadding, cfg.Layout.ScreenGap, cfg.Layout.CaptionHeight
	return pipeline.Options{
		Strict: cfg.Render.Strict,
		Layout: pipeline.LayoutSettings{
			ScreenHeight:  cfg.Layout.ScreenHeight,
			ScreenPadding: &padding,
			ScreenGap:     &gap,
			CaptionHeight: &caption,
		},
		Style:      cfg.Render.Style,
		Seed:       cfg.Render.Seed,
		Background: cfg.Render.Background,
		FontScale:  cfg.Render.FontScale,
		Palette:    &palette,
		Logger:     c.Logger,
	}, nil
}

// parseFormats parses a comma-separated format string into a slice.
func parseFormats(s string) []string {
	if s == "" {
		return []string{pipeline.FormatSVG}
	}
	var out []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}
