package layout

import "github.com/matzehuels/wireframe/pkg/core/tree"

// Default geometry constants, in canvas units.
const (
	DefaultScreenHeight  = 600.0
	DefaultScreenPadding = 20.0
	DefaultScreenGap     = 40.0
	DefaultCaptionHeight = 24.0
)

// Option configures [Build] and [ViewportBox].
type Option func(*config)

type config struct {
	screenHeight  float64
	padding       float64
	gap           float64
	captionHeight float64

	viewport    tree.Viewport
	hasViewport bool
}

func newConfig(opts []Option) config {
	c := config{
		screenHeight:  DefaultScreenHeight,
		padding:       DefaultScreenPadding,
		gap:           DefaultScreenGap,
		captionHeight: DefaultCaptionHeight,
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// WithScreenHeight sets the fixed content height of a screen slot and of the
// viewport box (default 600). Non-positive values are ignored.
func WithScreenHeight(h float64) Option {
	return func(c *config) {
		if h > 0 {
			c.screenHeight = h
		}
	}
}

// WithScreenPadding sets the space around each screen's content (default 20).
func WithScreenPadding(p float64) Option {
	return func(c *config) {
		if p >= 0 {
			c.padding = p
		}
	}
}

// WithScreenGap sets the distance between screen slots (default 40).
func WithScreenGap(g float64) Option {
	return func(c *config) {
		if g >= 0 {
			c.gap = g
		}
	}
}

// WithCaptionHeight sets the band reserved above each screen's content for
// its caption (default 24).
func WithCaptionHeight(h float64) Option {
	return func(c *config) {
		if h >= 0 {
			c.captionHeight = h
		}
	}
}

// WithViewport lays the document out as if its header named v.
func WithViewport(v tree.Viewport) Option {
	return func(c *config) { c.viewport, c.hasViewport = v, true }
}

func (c config) viewportOf(doc *tree.Document) tree.Viewport {
	if c.hasViewport {
		return c.viewport
	}
	return doc.Viewport()
}
