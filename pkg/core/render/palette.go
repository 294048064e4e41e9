package render

import (
	"github.com/matzehuels/wireframe/pkg/core/tree"
	"github.com/matzehuels/wireframe/pkg/errors"
)

// Colors is the fill, stroke and text colour used for one widget state.
type Colors struct {
	Fill   string `toml:"fill" json:"fill"`
	Stroke string `toml:"stroke" json:"stroke"`
	Text   string `toml:"text" json:"text"`
}

// Palette maps widget variants to colours.
type Palette struct {
	Default   Colors
	Primary   Colors
	Secondary Colors
	Danger    Colors
	Success   Colors
	Disabled  Colors
}

// DefaultPalette returns the built-in greyscale-plus-accents palette.
func DefaultPalette() Palette {
	return Palette{
		Default:   Colors{Fill: "#ffffff", Stroke: "#9e9e9e", Text: "#212121"},
		Primary:   Colors{Fill: "#1976d2", Stroke: "#1565c0", Text: "#ffffff"},
		Secondary: Colors{Fill: "#eceff1", Stroke: "#90a4ae", Text: "#37474f"},
		Danger:    Colors{Fill: "#d32f2f", Stroke: "#b71c1c", Text: "#ffffff"},
		Success:   Colors{Fill: "#388e3c", Stroke: "#2e7d32", Text: "#ffffff"},
		Disabled:  Colors{Fill: "#f5f5f5", Stroke: "#e0e0e0", Text: "#bdbdbd"},
	}
}

// For returns the colours of a widget. Disabled wins over any variant.
func (p Palette) For(v tree.Variant, disabled bool) Colors {
	if disabled {
		return p.Disabled
	}
	switch v {
	case tree.VariantPrimary:
		return p.Primary
	case tree.VariantSecondary:
		return p.Secondary
	case tree.VariantDanger:
		return p.Danger
	case tree.VariantSuccess:
		return p.Success
	}
	return p.Default
}

// Set replaces the colours for a named slot: default, primary, secondary,
// danger, success or disabled. Empty fields keep their current value.
func (p *Palette) Set(name string, c Colors) error {
	var slot *Colors
	switch name {
	case "default":
		slot = &p.Default
	case "primary":
		slot = &p.Primary
	case "secondary":
		slot = &p.Secondary
	case "danger":
		slot = &p.Danger
	case "success":
		slot = &p.Success
	case "disabled":
		slot = &p.Disabled
	default:
		return errors.New(errors.ErrCodeInvalidStyle, "unknown palette entry %q", name)
	}
	if c.Fill != "" {
		slot.Fill = c.Fill
	}
	if c.Stroke != "" {
		slot.Stroke = c.Stroke
	}
	if c.Text != "" {
		slot.Text = c.Text
	}
	return nil
}
