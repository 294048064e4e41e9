package dsl

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/matzehuels/wireframe/pkg/core/tree"
	"github.com/matzehuels/wireframe/pkg/errors"
)

// HeaderKeyword is the word every document must start with.
const HeaderKeyword = "wireframe"

// Option configures parsing.
type Option func(*parser)

// WithStrict rejects input that lenient parsing would recover from:
// unrecognized tokens and indentation jumps of more than one indent unit.
func WithStrict() Option {
	return func(p *parser) { p.strict = true }
}

// Result is the flat output of [Scan], before tree construction.
type Result struct {
	Header      tree.Header
	Descriptors []tree.Descriptor
	Diagnostics []tree.Diagnostic
}

// Parse scans src and builds a [tree.Document] from it. On a fatal error no
// document is returned.
func Parse(src string, opts ...Option) (*tree.Document, error) {
	res, err := Scan(src, opts...)
	if err != nil {
		return nil, err
	}
	return tree.NewDocument(res.Header, res.Descriptors, res.Diagnostics), nil
}

// Scan parses src into a header and a flat, source-ordered descriptor list.
func Scan(src string, opts ...Option) (*Result, error) {
	p := &parser{}
	for _, opt := range opts {
		opt(p)
	}
	return p.scan(src)
}

type parser struct {
	strict bool
	res    Result
}

func (p *parser) scan(src string) (*Result, error) {
	src = strings.TrimPrefix(src, "\uFEFF")
	lines := strings.Split(src, "\n")

	headerSeen := false
	for i, raw := range lines {
		lineNo := i + 1
		line := strings.TrimRight(raw, " \t\r")
		indent, body := measureIndent(line)
		if body == "" || strings.HasPrefix(body, "#") {
			continue
		}
		if !headerSeen {
			h, err := parseHeader(body, lineNo)
			if err != nil {
				return nil, err
			}
			p.res.Header = h
			headerSeen = true
			continue
		}
		if err := p.scanNode(lineNo, indent, body); err != nil {
			return nil, err
		}
	}
	if !headerSeen {
		return nil, errors.AtLine(errors.ErrCodeMalformedHeader, 1,
			"missing %q header", HeaderKeyword)
	}

	if p.strict {
		if jumps := tree.IndentJumps(p.res.Descriptors); len(jumps) > 0 {
			j := jumps[0]
			return nil, errors.AtLine(errors.ErrCodeIndentJump, j.Line,
				"indent %d is more than one level (%d) below its parent", j.Indent, j.Unit)
		}
	}
	return &p.res, nil
}

func parseHeader(body string, line int) (tree.Header, error) {
	var h tree.Header
	fields := strings.Fields(body)
	if fields[0] != HeaderKeyword {
		return h, errors.AtLine(errors.ErrCodeMalformedHeader, line,
			"expected %q header, found %q", HeaderKeyword, fields[0])
	}

	var sawViewport, sawDirection bool
	for _, f := range fields[1:] {
		if v, ok := tree.ParseViewport(f); ok && !sawViewport {
			h.Viewport, sawViewport = v, true
			continue
		}
		if d, ok := tree.ParseDirection(f); ok && !sawDirection {
			h.Direction, sawDirection = d, true
			continue
		}
		return h, errors.AtLine(errors.ErrCodeMalformedHeader, line,
			"unexpected header token %q", f)
	}
	return h, nil
}

func (p *parser) scanNode(line, indent int, body string) error {
	toks := lexLine(body)
	head := toks[0]
	kind, ok := tree.ParseKind(head.text)
	if head.quoted || !ok {
		return p.skip(line, "unknown element %q, line ignored", head.text)
	}

	d := tree.Descriptor{Line: line, Indent: indent, Kind: kind}
	for _, tok := range toks[1:] {
		if tok.quoted {
			if err := p.applyLabel(&d, tok); err != nil {
				return err
			}
			continue
		}
		if reason := applyModifier(&d.Modifiers, tok.text); reason != "" {
			if err := p.skip(line, "%s", reason); err != nil {
				return err
			}
		}
	}
	p.res.Descriptors = append(p.res.Descriptors, d)
	return nil
}

func (p *parser) applyLabel(d *tree.Descriptor, tok token) error {
	switch {
	case !d.Kind.AcceptsLabel():
		return p.skip(d.Line, "%s does not take a label", d.Kind)
	case d.HasLabel:
		return p.skip(d.Line, "second label %q ignored", tok.text)
	}
	if tok.unterminated {
		if err := p.skip(d.Line, "unterminated label"); err != nil {
			return err
		}
	}
	d.Label, d.HasLabel = tok.text, true
	return nil
}

// skip records a recovered token, or fails in strict mode.
func (p *parser) skip(line int, format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	if p.strict {
		return errors.AtLine(errors.ErrCodeUnrecognizedToken, line, "%s", msg)
	}
	p.res.Diagnostics = append(p.res.Diagnostics, tree.Diagnostic{
		Code:    errors.ErrCodeUnrecognizedToken,
		Line:    line,
		Message: msg,
	})
	return nil
}

// applyModifier folds one bare token into m. It returns a non-empty reason
// when the token is not a valid modifier. Repeated modifiers overwrite.
func applyModifier(m *tree.Modifiers, word string) string {
	if v, ok := tree.ParseVariant(word); ok {
		m.Variant = v
		return ""
	}
	switch word {
	case "flex":
		m.Flex = 1
		return ""
	case "disabled":
		m.Disabled = true
		return ""
	}

	key, val, ok := strings.Cut(word, "=")
	if !ok {
		return fmt.Sprintf("unknown modifier %q", word)
	}
	switch key {
	case "flex", "width", "height", "padding":
		n, err := strconv.Atoi(val)
		if err != nil || n < 0 || strings.HasPrefix(val, "+") {
			return fmt.Sprintf("%s needs a non-negative integer, got %q", key, val)
		}
		switch key {
		case "flex":
			m.Flex = n
		case "width":
			m.Width = tree.Int(n)
		case "height":
			m.Height = tree.Int(n)
		case "padding":
			m.Padding = tree.Int(n)
		}
	case "align", "cross":
		a, ok := tree.ParseAlign(val)
		if !ok {
			return fmt.Sprintf("%s must be start, center, end or space-between, got %q", key, val)
		}
		if key == "align" {
			m.Align = a
		} else {
			m.Cross = a
		}
	default:
		return fmt.Sprintf("unknown modifier %q", word)
	}
	return ""
}
