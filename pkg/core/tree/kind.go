package tree

// Kind identifies the widget a node represents. The set is closed: every
// consumer switches over it exhaustively.
type Kind uint8

const (
	KindRow Kind = iota
	KindCol
	KindCard
	KindGrid
	KindScreen
	KindGridHeader
	KindGridRow
	KindText
	KindTitle
	KindButton
	KindInput
	KindCheckbox
	KindRadio
	KindSwitch
	KindDropdown
	KindList
	KindNavMenu
	KindBottomNav
	KindAppBar
	KindFab
	KindAvatar
	KindIcon
	KindImage
	KindSpacer
	KindDivider

	kindCount
)

var kindNames = [kindCount]string{
	KindRow:        "row",
	KindCol:        "col",
	KindCard:       "card",
	KindGrid:       "grid",
	KindScreen:     "screen",
	KindGridHeader: "grid-header",
	KindGridRow:    "grid-row",
	KindText:       "text",
	KindTitle:      "title",
	KindButton:     "button",
	KindInput:      "input",
	KindCheckbox:   "checkbox",
	KindRadio:      "radio",
	KindSwitch:     "switch",
	KindDropdown:   "dropdown",
	KindList:       "list",
	KindNavMenu:    "nav-menu",
	KindBottomNav:  "bottom-nav",
	KindAppBar:     "app-bar",
	KindFab:        "fab",
	KindAvatar:     "avatar",
	KindIcon:       "icon",
	KindImage:      "image",
	KindSpacer:     "spacer",
	KindDivider:    "divider",
}

var kindsByName = func() map[string]Kind {
	m := make(map[string]Kind, kindCount)
	for k, name := range kindNames {
		m[name] = Kind(k)
	}
	return m
}()

// Kinds returns every kind in declaration order.
func Kinds() []Kind {
	out := make([]Kind, kindCount)
	for i := range out {
		out[i] = Kind(i)
	}
	return out
}

// ParseKind maps a DSL keyword to its Kind.
func ParseKind(s string) (Kind, bool) {
	k, ok := kindsByName[s]
	return k, ok
}

// String returns the DSL keyword for k.
func (k Kind) String() string {
	if k >= kindCount {
		return "unknown"
	}
	return kindNames[k]
}

// Valid reports whether k belongs to the closed set.
func (k Kind) Valid() bool { return k < kindCount }

// IsContainer reports whether k lays out its children with the flex algorithm.
func (k Kind) IsContainer() bool {
	switch k {
	case KindRow, KindCol, KindCard, KindScreen:
		return true
	}
	return false
}

// AcceptsLabel reports whether a quoted label may follow the keyword.
func (k Kind) AcceptsLabel() bool {
	switch k {
	case KindRow, KindCol, KindGrid, KindSpacer, KindDivider:
		return false
	}
	return true
}

// IsInteractive reports whether variant and disabled modifiers affect drawing.
func (k Kind) IsInteractive() bool {
	switch k {
	case KindButton, KindInput, KindCheckbox, KindRadio, KindSwitch, KindDropdown, KindFab:
		return true
	}
	return false
}

// Axis is a layout axis.
type Axis uint8

const (
	Horizontal Axis = iota
	Vertical
)

// Cross returns the perpendicular axis.
func (a Axis) Cross() Axis {
	if a == Horizontal {
		return Vertical
	}
	return Horizontal
}

// MainAxis returns the axis along which a container places its children.
// Only row is horizontal; every other container stacks vertically.
func (k Kind) MainAxis() Axis {
	if k == KindRow {
		return Horizontal
	}
	return Vertical
}
