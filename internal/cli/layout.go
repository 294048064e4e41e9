package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/wireframe/pkg/core/layout"
	"github.com/matzehuels/wireframe/pkg/core/tree"
	"github.com/matzehuels/wireframe/pkg/pipeline"
	"github.com/matzehuels/wireframe/pkg/session"
)

// layoutCommand creates the layout command for printing computed geometry.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		output   string
		viewport string
		strict   bool
		nodes    bool
		asJSON   bool
	)

	cmd := &cobra.Command{
		Use:   "layout [file]",
		Short: "Print the computed screen and node geometry",
		Long: `Compute the layout of a wireframe file and print it.

By default a summary of the canvas and screen slots is printed. --nodes adds
a table with the bounds of every node, and --json writes the full geometry
(same as 'render -f layout') to stdout or --output.`,
		Args: cobra.ExactArgs(1),
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
			if cmd.Flags().Changed("strict") {
				opts.Strict = strict
			}

			sess, doc, err := c.openSession(cmd.InOrStdin(), args[0], opts)
			if err != nil {
				return err
			}
			l, err := sess.Layout()
			if err != nil {
				return fmt.Errorf("compute layout: %w", err)
			}

			if asJSON {
				data, err := layout.MarshalJSON(doc, l)
				if err != nil {
					return err
				}
				if output != "" {
					if err := writeOutput(output, data); err != nil {
						return err
					}
					printSuccess("Layout written")
					printFile(output)
					return nil
				}
				_, err = cmd.OutOrStdout().Write(append(data, '\n'))
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), layoutSummary(doc, l))
			if nodes {
				fmt.Fprintln(cmd.OutOrStdout(), nodeTable(doc, l))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write --json output to a file")
	cmd.Flags().StringVar(&viewport, "viewport", "", "override the header viewport")
	cmd.Flags().BoolVar(&strict, "strict", false, "fail on unrecognized tokens and indentation jumps")
	cmd.Flags().BoolVar(&nodes, "nodes", false, "print the bounds of every node")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the geometry as JSON")

	registerValueCompletions(cmd)
	return cmd
}

// openSession parses input into a fresh session configured from opts.
func (c *CLI) openSession(stdin io.Reader, input string, opts pipeline.Options) (*session.Session, *tree.Document, error) {
	sessOpts := []session.Option{
		session.WithLogger(c.Logger),
		session.WithLayoutOptions(opts.LayoutOptions()...),
		session.WithRenderOptions(opts.RenderOptions()...),
	}
	if opts.Strict {
		sessOpts = append(sessOpts, session.WithStrict())
	}
	sess := session.New(sessOpts...)

	var (
		doc *tree.Document
		err error
	)
	if input == stdinName {
		var src string
		if src, _, err = readInput(stdin, input); err != nil {
			return nil, nil, err
		}
		doc, err = sess.Parse(src)
	} else {
		doc, err = sess.ParseFile(input)
	}
	if err != nil {
		return nil, nil, err
	}
	c.Logger.Debug("opened session", "id", sess.ID, "nodes", doc.NodeCount())
	return sess, doc, nil
}

// layoutSummary renders the canvas line and, for framed layouts, a table of
// screen slots.
func layoutSummary(doc *tree.Document, l layout.Layout) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", StyleTitle.Render("Canvas"), StyleValue.Render(fmt.Sprintf("%s × %s", num(l.Width), num(l.Height))))
	fmt.Fprintf(&b, "%s\n", StyleDim.Render(fmt.Sprintf("viewport %s (%dpx) · direction %s · %s",
		l.Viewport, l.Viewport.Width(), l.Direction, plural(doc.NodeCount(), "node"))))

	if len(l.Screens) == 0 {
		return b.String()
	}

	rows := make([][]string, 0, len(l.Screens))
	for i, sc := range l.Screens {
		caption := sc.Caption
		if !sc.HasCaption || caption == "" {
			caption = "—"
		}
		kind := "?"
		if n, ok := doc.Node(sc.Root); ok {
			kind = n.Kind().String()
		}
		rows = append(rows, []string{strconv.Itoa(i + 1), kind, caption, rect(sc.Frame), rect(sc.Content)})
	}
	b.WriteString(newTable("#", "Root", "Caption", "Frame", "Content").Rows(rows...).Render())
	b.WriteString("\n")
	return b.String()
}

// nodeTable lists every node in source order with its bounds.
func nodeTable(doc *tree.Document, l layout.Layout) string {
	var rows [][]string
	doc.Walk(func(n *tree.Node, depth int) bool {
		label, _ := n.Label()
		bounds := "—"
		if r, ok := l.Rect(n.ID()); ok {
			bounds = rect(r)
		}
		rows = append(rows, []string{
			strconv.Itoa(int(n.ID())),
			strings.Repeat("  ", depth) + n.Kind().String(),
			label,
			strconv.Itoa(n.Line()),
			bounds,
		})
		return true
	})
	return newTable("ID", "Kind", "Label", "Line", "Bounds").Rows(rows...).Render()
}

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styleTableBorder).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 { // header
				return styleTableHeader.Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})
}

// rect formats bounds as "x,y w×h".
func rect(r layout.Rect) string {
	return fmt.Sprintf("%s,%s %s×%s", num(r.X), num(r.Y), num(r.W), num(r.H))
}

// num formats a coordinate without trailing zeros.
func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
