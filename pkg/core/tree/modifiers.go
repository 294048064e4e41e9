package tree

// Align is a positioning hint carried by the align and cross modifiers.
type Align uint8

const (
	AlignNone Align = iota
	AlignStart
	AlignCenter
	AlignEnd
	AlignSpaceBetween
)

// ParseAlign maps a modifier value to an Align.
func ParseAlign(s string) (Align, bool) {
	switch s {
	case "start":
		return AlignStart, true
	case "center":
		return AlignCenter, true
	case "end":
		return AlignEnd, true
	case "space-between":
		return AlignSpaceBetween, true
	}
	return AlignNone, false
}

func (a Align) String() string {
	switch a {
	case AlignStart:
		return "start"
	case AlignCenter:
		return "center"
	case AlignEnd:
		return "end"
	case AlignSpaceBetween:
		return "space-between"
	}
	return ""
}

// Variant selects a colour pair for interactive widgets.
type Variant uint8

const (
	VariantNone Variant = iota
	VariantPrimary
	VariantSecondary
	VariantDanger
	VariantSuccess
)

// ParseVariant maps a bare variant keyword to a Variant.
func ParseVariant(s string) (Variant, bool) {
	switch s {
	case "primary":
		return VariantPrimary, true
	case "secondary":
		return VariantSecondary, true
	case "danger":
		return VariantDanger, true
	case "success":
		return VariantSuccess, true
	}
	return VariantNone, false
}

func (v Variant) String() string {
	switch v {
	case VariantPrimary:
		return "primary"
	case VariantSecondary:
		return "secondary"
	case VariantDanger:
		return "danger"
	case VariantSuccess:
		return "success"
	}
	return ""
}

// Modifiers is the closed set of per-node options. Pointer fields are nil
// when the modifier was not written. Fields that make no sense for a node's
// kind are kept and ignored downstream.
type Modifiers struct {
	Flex     int // 0 means not flexible
	Width    *int
	Height   *int
	Padding  *int
	Align    Align
	Cross    Align
	Variant  Variant
	Disabled bool
}

// Fixed returns the explicit size along axis, if one was written.
func (m Modifiers) Fixed(axis Axis) (int, bool) {
	p := m.Height
	if axis == Horizontal {
		p = m.Width
	}
	if p == nil {
		return 0, false
	}
	return *p, true
}

// PaddingOr returns the explicit padding or def.
func (m Modifiers) PaddingOr(def int) int {
	if m.Padding == nil {
		return def
	}
	return *m.Padding
}

// clone copies the pointer fields so callers cannot reach the node's storage.
func (m Modifiers) clone() Modifiers {
	out := m
	out.Width = cloneInt(m.Width)
	out.Height = cloneInt(m.Height)
	out.Padding = cloneInt(m.Padding)
	return out
}

func cloneInt(p *int) *int {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// Int returns a pointer to v, for building Modifiers literals.
func Int(v int) *int { return &v }
