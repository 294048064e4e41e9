// Package session holds the current wireframe document between edits.
//
// A [Session] replaces the process-wide "current document" a host would
// otherwise keep in a global. Every [Session.Parse] first clears the current
// document and its layout, then installs the freshly built [tree.Document].
// A failed parse therefore leaves the session empty: Document, Layout and
// Render report NO_DOCUMENT until the next successful parse.
//
// # Usage
//
//	sess := session.New(session.WithLogger(logger))
//	if _, err := sess.Parse(src); err != nil {
//	    return err
//	}
//	svg := sink.NewSVG()
//	if err := sess.Render(svg); err != nil {
//	    return err
//	}
//
// A Session is not safe for concurrent use. Give each goroutine its own.
package session

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/wireframe/pkg/core/dsl"
	"github.com/matzehuels/wireframe/pkg/core/layout"
	"github.com/matzehuels/wireframe/pkg/core/render"
	"github.com/matzehuels/wireframe/pkg/core/tree"
	"github.com/matzehuels/wireframe/pkg/errors"
)

// Session owns at most one current document.
type Session struct {
	ID        string
	CreatedAt time.Time

	logger     *log.Logger
	parseOpts  []dsl.Option
	layoutOpts []layout.Option
	renderOpts []render.Option

	doc      *tree.Document
	revision int
	cached   *layout.Layout
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger for parse, layout and render events.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithStrict makes every Parse reject unrecognized tokens and indent jumps.
func WithStrict() Option {
	return func(s *Session) { s.parseOpts = append(s.parseOpts, dsl.WithStrict()) }
}

// WithLayoutOptions sets the screen constants used by Layout and Render.
func WithLayoutOptions(opts ...layout.Option) Option {
	return func(s *Session) { s.layoutOpts = append(s.layoutOpts, opts...) }
}

// WithRenderOptions sets default renderer options, such as the palette.
func WithRenderOptions(opts ...render.Option) Option {
	return func(s *Session) { s.renderOpts = append(s.renderOpts, opts...) }
}

// New returns an empty session with a fresh random ID.
func New(opts ...Option) *Session {
	s := &Session{
		ID:        uuid.NewString(),
		CreatedAt: time.Now(),
		logger:    log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Parse discards the current document and its layout, then parses src and
// makes the result current. On error the session holds no document.
func (s *Session) Parse(src string) (*tree.Document, error) {
	s.doc, s.cached = nil, nil
	start := time.Now()
	doc, err := dsl.Parse(src, s.parseOpts...)
	if err != nil {
		s.logger.Debug("parse failed", "session", s.ID, "error", err)
		return nil, err
	}
	s.doc = doc
	s.revision++
	s.logger.Debug("parsed document",
		"session", s.ID,
		"revision", s.revision,
		"nodes", doc.NodeCount(),
		"screens", len(doc.Screens()),
		"diagnostics", len(doc.Diagnostics()),
		"duration", time.Since(start))
	return doc, nil
}

// Document returns the current document, or a NO_DOCUMENT error before the
// first successful Parse.
func (s *Session) Document() (*tree.Document, error) {
	if s.doc == nil {
		return nil, errors.New(errors.ErrCodeNoDocument, "no document has been parsed")
	}
	return s.doc, nil
}

// Revision counts successful parses; 0 means no document yet.
func (s *Session) Revision() int { return s.revision }

// Layout computes, or returns the memoised, layout of the current document.
func (s *Session) Layout() (layout.Layout, error) {
	doc, err := s.Document()
	if err != nil {
		return layout.Layout{}, err
	}
	if s.cached != nil {
		return *s.cached, nil
	}
	start := time.Now()
	l := layout.Build(doc, layout.ViewportBox(doc, s.layoutOpts...), s.layoutOpts...)
	s.cached = &l
	s.logger.Debug("computed layout",
		"session", s.ID,
		"width", l.Width,
		"height", l.Height,
		"screens", len(l.Screens),
		"diagnostics", len(l.Diagnostics),
		"duration", time.Since(start))
	return l, nil
}

// Render lays out the current document if needed and draws it onto surface.
// opts are applied after the session's own render options.
func (s *Session) Render(surface render.Surface, opts ...render.Option) error {
	l, err := s.Layout()
	if err != nil {
		return err
	}
	start := time.Now()
	render.Render(s.doc, l, surface, append(append([]render.Option(nil), s.renderOpts...), opts...)...)
	s.logger.Debug("rendered document", "session", s.ID, "duration", time.Since(start))
	return nil
}
