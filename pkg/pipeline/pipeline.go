// Package pipeline runs wireframe source through parse → layout → render.
//
// The CLI and any embedding host share this package so that defaults,
// validation and caching behave the same everywhere.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Parse: text → [tree.Document], through a [session.Session]
//  2. Layout: document → [layout.Layout] bounds per node
//  3. Render: layout → one artifact per requested format
//
// Parsing and layout are cheap and always run. Rendered artifacts are cached
// per format under a key derived from the source hash and every option that
// can change the output.
//
// # Usage
//
//	runner := pipeline.NewRunner(c, nil, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Source:  src,
//	    Name:    "checkout",
//	    Formats: []string{pipeline.FormatSVG, pipeline.FormatLayout},
//	})
//	if err != nil {
//	    return err
//	}
//	svg := result.Artifacts[pipeline.FormatSVG]
package pipeline

import (
	"encoding/json"
	"io"
	"slices"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/wireframe/pkg/cache"
	"github.com/matzehuels/wireframe/pkg/core/layout"
	"github.com/matzehuels/wireframe/pkg/core/render"
	"github.com/matzehuels/wireframe/pkg/core/tree"
	"github.com/matzehuels/wireframe/pkg/errors"
)

// =============================================================================
// Default Values
// =============================================================================

const (
	// DefaultName names documents read from stdin.
	DefaultName = "wireframe"

	// DefaultSeed drives the hand-drawn wobble.
	DefaultSeed = uint64(42)

	DefaultStyle = StyleSimple
)

// Styles.
const (
	StyleSimple    = "simple"
	StyleHanddrawn = "handdrawn"
)

// Output formats.
const (
	FormatSVG       = "svg"       // the wireframe drawing
	FormatJSON      = "json"      // recorded draw commands
	FormatLayout    = "layout"    // node geometry
	FormatDOT       = "dot"       // node tree as Graphviz DOT
	FormatStructure = "structure" // node tree drawn by Graphviz, as SVG
)

// ValidFormats is the set of supported output formats, in display order.
var ValidFormats = []string{FormatSVG, FormatJSON, FormatLayout, FormatDOT, FormatStructure}

// ValidStyles is the set of supported visual styles.
var ValidStyles = []string{StyleSimple, StyleHanddrawn}

// Extension returns the file extension for format.
func Extension(format string) string {
	switch format {
	case FormatSVG:
		return ".svg"
	case FormatJSON:
		return ".draw.json"
	case FormatLayout:
		return ".layout.json"
	case FormatDOT:
		return ".dot"
	case FormatStructure:
		return ".structure.svg"
	}
	return "." + format
}

// =============================================================================
// Options
// =============================================================================

// Options contains all configuration for one pipeline run.
type Options struct {
	// Input
	Source string `json:"source"`
	Name   string `json:"name,omitempty"`
	Strict bool   `json:"strict,omitempty"`

	// Layout
	Viewport string         `json:"viewport,omitempty"` // overrides the header when set
	Layout   LayoutSettings `json:"layout"`

	// Render
	Formats    []string        `json:"formats,omitempty"`
	Style      string          `json:"style,omitempty"`
	Seed       uint64          `json:"seed,omitempty"`
	Background string          `json:"background,omitempty"`
	FontScale  float64         `json:"font_scale,omitempty"`
	Palette    *render.Palette `json:"palette,omitempty"`
	Refresh    bool            `json:"refresh,omitempty"` // bypass cached artifacts

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	validated bool
}

// LayoutSettings are the screen constants; zero fields take the defaults.
// CaptionHeight is a pointer because 0 is a meaningful value for it.
type LayoutSettings struct {
	ScreenHeight  float64  `json:"screen_height,omitempty"`
	ScreenPadding *float64 `json:"screen_padding,omitempty"`
	ScreenGap     *float64 `json:"screen_gap,omitempty"`
	CaptionHeight *float64 `json:"caption_height,omitempty"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	Document   *tree.Document
	Layout     layout.Layout
	SourceHash string

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	Stats     Stats
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	NodeCount       int
	ScreenCount     int
	DiagnosticCount int
	ParseTime       time.Duration
	LayoutTime      time.Duration
	RenderTime      time.Duration
}

// CacheInfo tracks which artifacts came from the cache.
type CacheInfo struct {
	Hits      []string // formats served from cache
	RenderHit bool     // every requested format was cached
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !slices.Contains(ValidFormats, format) {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: svg, json, layout, dot, structure)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateStyle checks that a style is valid.
func ValidateStyle(style string) error {
	if !slices.Contains(ValidStyles, style) {
		return errors.New(errors.ErrCodeInvalidStyle, "invalid style: %q (must be one of: simple, handdrawn)", style)
	}
	return nil
}

// ValidateViewport checks a viewport override; "" means none.
func ValidateViewport(v string) error {
	if v == "" {
		return nil
	}
	if _, ok := tree.ParseViewport(v); !ok {
		return errors.New(errors.ErrCodeInvalidViewport, "invalid viewport: %q (must be one of: mobile, tablet, desktop, default)", v)
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks the options and fills in defaults. It is
// idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := errors.ValidateSource(o.Source); err != nil {
		return err
	}
	if o.Name == "" {
		o.Name = DefaultName
	}
	if err := errors.ValidateDocumentName(o.Name); err != nil {
		return err
	}
	if err := ValidateViewport(o.Viewport); err != nil {
		return err
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	o.Formats = uniq(o.Formats)
	if o.Style == "" {
		o.Style = DefaultStyle
	}
	if err := ValidateStyle(o.Style); err != nil {
		return err
	}
	if o.Seed == 0 {
		o.Seed = DefaultSeed
	}
	if o.FontScale <= 0 {
		o.FontScale = 1
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}

// LayoutOptions converts the layout settings and viewport override.
func (o *Options) LayoutOptions() []layout.Option {
	var opts []layout.Option
	s := o.Layout
	if s.ScreenHeight > 0 {
		opts = append(opts, layout.WithScreenHeight(s.ScreenHeight))
	}
	if s.ScreenPadding != nil {
		opts = append(opts, layout.WithScreenPadding(*s.ScreenPadding))
	}
	if s.ScreenGap != nil {
		opts = append(opts, layout.WithScreenGap(*s.ScreenGap))
	}
	if s.CaptionHeight != nil {
		opts = append(opts, layout.WithCaptionHeight(*s.CaptionHeight))
	}
	if v, ok := tree.ParseViewport(o.Viewport); ok && o.Viewport != "" {
		opts = append(opts, layout.WithViewport(v))
	}
	return opts
}

// RenderOptions converts the palette and font scale.
func (o *Options) RenderOptions() []render.Option {
	opts := []render.Option{render.WithFontScale(o.FontScale)}
	if o.Palette != nil {
		opts = append(opts, render.WithPalette(*o.Palette))
	}
	return opts
}

// LayoutKeyOpts returns cache key options for layout-dependent outputs.
func (o *Options) LayoutKeyOpts() cache.LayoutKeyOpts {
	k := cache.LayoutKeyOpts{
		ScreenHeight: o.Layout.ScreenHeight,
		Strict:       o.Strict,
	}
	if p := o.Layout.ScreenPadding; p != nil {
		k.ScreenPadding = *p
	} else {
		k.ScreenPadding = layout.DefaultScreenPadding
	}
	if g := o.Layout.ScreenGap; g != nil {
		k.ScreenGap = *g
	} else {
		k.ScreenGap = layout.DefaultScreenGap
	}
	if c := o.Layout.CaptionHeight; c != nil {
		k.CaptionHeight = *c
	} else {
		k.CaptionHeight = layout.DefaultCaptionHeight
	}
	if k.ScreenHeight <= 0 {
		k.ScreenHeight = layout.DefaultScreenHeight
	}
	return k
}

// ArtifactKeyOpts returns cache key options for one rendered format.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	k := cache.ArtifactKeyOpts{
		Layout: o.LayoutKeyOpts(),
		Format: format,
		Style:  o.Style,
		Seed:   o.Seed,
	}
	var extra struct {
		Viewport   string          `json:"viewport"`
		Background string          `json:"background"`
		FontScale  float64         `json:"font_scale"`
		Palette    *render.Palette `json:"palette"`
	}
	extra.Viewport, extra.Background, extra.FontScale, extra.Palette = o.Viewport, o.Background, o.FontScale, o.Palette
	data, _ := json.Marshal(extra)
	k.Extra = cache.Hash(data)
	return k
}

func uniq(formats []string) []string {
	out := make([]string, 0, len(formats))
	for _, f := range formats {
		if !slices.Contains(out, f) {
			out = append(out, f)
		}
	}
	return out
}
