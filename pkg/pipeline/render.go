package pipeline

import (
	"context"
	"fmt"

	"github.com/matzehuels/wireframe/pkg/core/layout"
	"github.com/matzehuels/wireframe/pkg/core/render/nodelink"
	"github.com/matzehuels/wireframe/pkg/core/render/sink"
	"github.com/matzehuels/wireframe/pkg/core/tree"
	"github.com/matzehuels/wireframe/pkg/errors"
	"github.com/matzehuels/wireframe/pkg/session"
)

// renderFormat produces one artifact from the session's current document.
func renderFormat(ctx context.Context, sess *session.Session, format string, opts Options) ([]byte, error) {
	switch format {
	case FormatSVG:
		return renderSVG(sess, opts)
	case FormatJSON:
		rec := sink.NewRecorder()
		if err := sess.Render(rec); err != nil {
			return nil, err
		}
		return rec.JSON()
	case FormatLayout:
		doc, l, err := current(sess)
		if err != nil {
			return nil, err
		}
		return layout.MarshalJSON(doc, l)
	case FormatDOT:
		dot, err := structureDOT(sess)
		if err != nil {
			return nil, err
		}
		return []byte(dot), nil
	case FormatStructure:
		dot, err := structureDOT(sess)
		if err != nil {
			return nil, err
		}
		svg, err := nodelink.RenderSVG(ctx, dot)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "graphviz")
		}
		return svg, nil
	}
	return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported format: %s", format)
}

func renderSVG(sess *session.Session, opts Options) ([]byte, error) {
	var svgOpts []sink.SVGOption
	if opts.Style == StyleHanddrawn {
		svgOpts = append(svgOpts, sink.WithHanddrawn(opts.Seed))
	}
	if opts.Background != "" {
		svgOpts = append(svgOpts, sink.WithBackground(opts.Background))
	}
	svg := sink.NewSVG(svgOpts...)
	if err := sess.Render(svg); err != nil {
		return nil, err
	}
	return svg.Bytes(), nil
}

func structureDOT(sess *session.Session) (string, error) {
	doc, l, err := current(sess)
	if err != nil {
		return "", err
	}
	return nodelink.ToDOT(doc, nodelink.Options{Detailed: true, Layout: &l}), nil
}

func current(sess *session.Session) (doc *tree.Document, l layout.Layout, err error) {
	if doc, err = sess.Document(); err != nil {
		return nil, l, err
	}
	if l, err = sess.Layout(); err != nil {
		return nil, l, fmt.Errorf("layout: %w", err)
	}
	return doc, l, nil
}
