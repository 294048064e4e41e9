package cli

import (
	"cmp"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/wireframe/pkg/core/dsl"
	"github.com/matzehuels/wireframe/pkg/core/layout"
	"github.com/matzehuels/wireframe/pkg/core/tree"
	"github.com/matzehuels/wireframe/pkg/errors"
)

// severity of a reported problem.
const (
	severityError   = "error"
	severityWarning = "warning"
)

// problem is one line of check output.
type problem struct {
	Line     int
	Code     errors.Code
	Severity string
	Message  string
}

// checkCommand creates the check command.
func (c *CLI) checkCommand() *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "check [file...]",
		Short: "List parse and layout diagnostics",
		Long: `Parse and lay out each file leniently and list everything that was
recovered from: unrecognized tokens, indentation jumps, containers without
children and grid rows without cells.

Only a malformed header fails the check unless --strict is given, in which
case any problem does.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if countStdin(args) > 1 {
				return fmt.Errorf("stdin (%q) can be read only once", stdinName)
			}
			opts, err := c.baseOptions()
			if err != nil {
				return err
			}
			layoutOpts := opts.LayoutOptions()

			failed := 0
			for _, input := range args {
				src, _, err := readInput(cmd.InOrStdin(), input)
				if err != nil {
					return err
				}
				problems := checkSource(src, layoutOpts...)
				c.Logger.Debug("checked", "file", input, "problems", len(problems))
				printProblems(input, problems)
				if failing(problems, strict) {
					failed++
				}
			}
			if failed > 0 {
				return fmt.Errorf("%s failed the check", plural(failed, "file"))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "treat warnings as errors")
	return cmd
}

// checkSource parses src leniently, lays it out and collects every
// diagnostic plus the indentation jumps strict parsing would reject, sorted
// by line.
func checkSource(src string, opts ...layout.Option) []problem {
	res, err := dsl.Scan(src)
	if err != nil {
		return []problem{{
			Line:     errors.GetLine(err),
			Code:     errors.GetCode(err),
			Severity: severityError,
			Message:  strings.TrimPrefix(errors.UserMessage(err), fmt.Sprintf("line %d: ", errors.GetLine(err))),
		}}
	}

	var out []problem
	add := func(d tree.Diagnostic) {
		out = append(out, problem{Line: d.Line, Code: d.Code, Severity: severityWarning, Message: d.Message})
	}
	for _, d := range res.Diagnostics {
		add(d)
	}
	for _, j := range tree.IndentJumps(res.Descriptors) {
		parent := "top level"
		if j.ParentIndent >= 0 {
			parent = fmt.Sprintf("parent at %d", j.ParentIndent)
		}
		out = append(out, problem{
			Line:     j.Line,
			Code:     errors.ErrCodeIndentJump,
			Severity: severityWarning,
			Message:  fmt.Sprintf("indent %d jumps more than one unit (%d) past %s", j.Indent, j.Unit, parent),
		})
	}

	doc := tree.NewDocument(res.Header, res.Descriptors, res.Diagnostics)
	l := layout.Build(doc, layout.ViewportBox(doc, opts...), opts...)
	for _, d := range l.Diagnostics {
		add(d)
	}

	slices.SortStableFunc(out, func(a, b problem) int { return cmp.Compare(a.Line, b.Line) })
	return out
}

func failing(problems []problem, strict bool) bool {
	for _, p := range problems {
		if strict || p.Severity == severityError {
			return true
		}
	}
	return false
}

func printProblems(input string, problems []problem) {
	if len(problems) == 0 {
		printSuccess("%s %s", StyleHighlight.Render(input), StyleDim.Render("no problems"))
		return
	}
	if failing(problems, false) {
		printError("%s", StyleHighlight.Render(input))
	} else {
		printWarning("%s: %s", input, plural(len(problems), "problem"))
	}
	fmt.Println(problemTable(problems))
}

// problemTable renders problems as a bordered table, colouring severities.
func problemTable(problems []problem) string {
	rows := make([][]string, len(problems))
	for i, p := range problems {
		line := "—"
		if p.Line > 0 {
			line = strconv.Itoa(p.Line)
		}
		rows[i] = []string{line, p.Severity, string(p.Code), p.Message}
	}
	t := newTable("Line", "Severity", "Code", "Message").Rows(rows...)
	t.StyleFunc(func(row, col int) lipgloss.Style {
		base := lipgloss.NewStyle().Padding(0, 1)
		switch {
		case row == -1: // header
			return styleTableHeader.Padding(0, 1)
		case col == 1 && problems[row].Severity == severityError:
			return base.Inherit(StyleError)
		case col == 1:
			return base.Inherit(StyleWarning)
		}
		return base
	})
	return t.Render()
}
