package cli

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/wireframe/pkg/core/layout"
	"github.com/matzehuels/wireframe/pkg/core/tree"
	"github.com/matzehuels/wireframe/pkg/pipeline"
)

// Tree browser styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
	detailBoxStyle    = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorDim).
				Padding(0, 1)
)

// inspectCommand creates the inspect command.
func (c *CLI) inspectCommand() *cobra.Command {
	var viewport string

	cmd := &cobra.Command{
		Use:   "inspect [file]",
		Short: "Browse the node tree and its bounds interactively",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := c.baseOptions()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("viewport") {
				if err := pipeline.ValidateViewport(viewport); err != nil {
					return err
				}
				opts.Viewport = viewport
			}

			sess, doc, err := c.openSession(cmd.InOrStdin(), args[0], opts)
			if err != nil {
				return err
			}
			l, err := sess.Layout()
			if err != nil {
				return fmt.Errorf("compute layout: %w", err)
			}

			model := NewInspectModel(args[0], doc, l)
			_, err = tea.NewProgram(model, tea.WithContext(cmd.Context())).Run()
			return err
		},
	}

	cmd.Flags().StringVar(&viewport, "viewport", "", "override the header viewport")
	registerValueCompletions(cmd)
	return cmd
}

// =============================================================================
// InspectModel - Interactive node browser
// =============================================================================

// inspectRow is one node flattened in source order.
type inspectRow struct {
	ID        tree.NodeID
	Depth     int
	Kind      tree.Kind
	Label     string
	Line      int
	Children  int
	Modifiers string
	Bounds    layout.Rect
	HasBounds bool
}

// InspectModel is the bubbletea model for browsing a laid-out document.
type InspectModel struct {
	Title  string
	Canvas string
	Rows   []inspectRow
	Cursor int
	Height int
	Offset int
}

// NewInspectModel flattens doc with the bounds from l.
func NewInspectModel(title string, doc *tree.Document, l layout.Layout) InspectModel {
	m := InspectModel{
		Title:  title,
		Canvas: fmt.Sprintf("%s × %s · %s %s", num(l.Width), num(l.Height), l.Viewport, l.Direction),
		Height: 15,
	}
	doc.Walk(func(n *tree.Node, depth int) bool {
		label, _ := n.Label()
		r, ok := l.Rect(n.ID())
		m.Rows = append(m.Rows, inspectRow{
			ID:        n.ID(),
			Depth:     depth,
			Kind:      n.Kind(),
			Label:     label,
			Line:      n.Line(),
			Children:  n.ChildCount(),
			Modifiers: describeModifiers(n),
			Bounds:    r,
			HasBounds: ok,
		})
		return true
	})
	return m
}

func (m InspectModel) Init() tea.Cmd {
	return nil
}

func (m InspectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			m.move(-1)
		case "down", "j":
			m.move(1)
		case "pgup":
			m.move(-m.Height)
		case "pgdown":
			m.move(m.Height)
		case "g", "home":
			m.move(-len(m.Rows))
		case "G", "end":
			m.move(len(m.Rows))
		}
	case tea.WindowSizeMsg:
		// title, help, detail box and footer
		m.Height = max(msg.Height-14, 5)
		m.move(0)
	}
	return m, nil
}

// move shifts the cursor by delta, clamped, and scrolls to keep it visible.
func (m *InspectModel) move(delta int) {
	if len(m.Rows) == 0 {
		return
	}
	m.Cursor = min(max(m.Cursor+delta, 0), len(m.Rows)-1)
	if m.Cursor < m.Offset {
		m.Offset = m.Cursor
	}
	if m.Cursor >= m.Offset+m.Height {
		m.Offset = m.Cursor - m.Height + 1
	}
}

func (m InspectModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(m.Title))
	b.WriteString("  ")
	b.WriteString(listDimStyle.Render(m.Canvas))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  g/G top/bottom  q quit"))
	b.WriteString("\n\n")

	if len(m.Rows) == 0 {
		b.WriteString(listDimStyle.Render("  (empty document)"))
		b.WriteString("\n")
		return b.String()
	}

	end := min(m.Offset+m.Height, len(m.Rows))
	for i := m.Offset; i < end; i++ {
		r := m.Rows[i]
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		line := cursor + strings.Repeat("  ", r.Depth) + r.Kind.String()
		if r.Label != "" {
			line += " " + strconv.Quote(r.Label)
		}
		if i == m.Cursor {
			b.WriteString(listSelectedStyle.Render(line))
		} else {
			b.WriteString(listNormalStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(detailBoxStyle.Render(m.details(m.Rows[m.Cursor])))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Rows))))

	return b.String()
}

// details renders the key-value pane for the selected node.
func (m InspectModel) details(r inspectRow) string {
	keyStyle := lipgloss.NewStyle().Foreground(colorGray).Width(10)
	bounds := "not laid out"
	if r.HasBounds {
		bounds = rect(r.Bounds)
	}
	mods := r.Modifiers
	if mods == "" {
		mods = "—"
	}
	lines := [][2]string{
		{"node", fmt.Sprintf("#%d %s", r.ID, r.Kind)},
		{"line", strconv.Itoa(r.Line)},
		{"bounds", bounds},
		{"children", strconv.Itoa(r.Children)},
		{"modifiers", mods},
	}
	out := make([]string, len(lines))
	for i, kv := range lines {
		out[i] = keyStyle.Render(kv[0]) + " " + StyleValue.Render(kv[1])
	}
	return strings.Join(out, "\n")
}

// describeModifiers lists the modifiers written on n in source syntax.
func describeModifiers(n *tree.Node) string {
	m := n.Modifiers()
	var parts []string
	if m.Flex > 0 {
		parts = append(parts, fmt.Sprintf("flex=%d", m.Flex))
	}
	if m.Width != nil {
		parts = append(parts, fmt.Sprintf("width=%d", *m.Width))
	}
	if m.Height != nil {
		parts = append(parts, fmt.Sprintf("height=%d", *m.Height))
	}
	if m.Padding != nil {
		parts = append(parts, fmt.Sprintf("padding=%d", *m.Padding))
	}
	if m.Align != tree.AlignNone {
		parts = append(parts, "align="+m.Align.String())
	}
	if m.Cross != tree.AlignNone {
		parts = append(parts, "cross="+m.Cross.String())
	}
	if v := m.Variant.String(); v != "" {
		parts = append(parts, v)
	}
	if m.Disabled {
		parts = append(parts, "disabled")
	}
	return strings.Join(parts, " ")
}
