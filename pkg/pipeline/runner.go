package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/wireframe/pkg/cache"
	"github.com/matzehuels/wireframe/pkg/observability"
	"github.com/matzehuels/wireframe/pkg/session"
)

// Runner executes the pipeline with caching.
//
// The Runner is stateless except for the cache and logger: every Execute
// gets its own Session, so one Runner may be shared by goroutines.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner. A nil cache disables caching, a nil keyer
// means the DefaultKeyer, and a nil logger means log.Default().
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs parse → layout → render.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	hooks := observability.Pipeline()

	result := &Result{
		SourceHash: cache.Hash([]byte(opts.Source)),
		Artifacts:  make(map[string][]byte),
	}
	sess := r.newSession(opts)

	// Stage 1: Parse
	hooks.OnParseStart(ctx, opts.Name)
	parseStart := time.Now()
	doc, err := sess.Parse(opts.Source)
	result.Stats.ParseTime = time.Since(parseStart)
	if err != nil {
		hooks.OnParseComplete(ctx, opts.Name, 0, 0, result.Stats.ParseTime, err)
		return nil, fmt.Errorf("parse: %w", err)
	}
	result.Document = doc
	result.Stats.NodeCount = doc.NodeCount()
	hooks.OnParseComplete(ctx, opts.Name, doc.NodeCount(), len(doc.Diagnostics()), result.Stats.ParseTime, nil)

	opts.Logger.Info("parsed document",
		"name", opts.Name,
		"nodes", doc.NodeCount(),
		"screens", len(doc.Screens()),
		"duration", result.Stats.ParseTime)

	// Stage 2: Layout
	hooks.OnLayoutStart(ctx, opts.Name, doc.NodeCount())
	layoutStart := time.Now()
	l, err := sess.Layout()
	result.Stats.LayoutTime = time.Since(layoutStart)
	hooks.OnLayoutComplete(ctx, opts.Name, len(l.Screens), result.Stats.LayoutTime, err)
	if err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}
	result.Layout = l
	result.Stats.ScreenCount = len(l.Screens)
	result.Stats.DiagnosticCount = len(doc.Diagnostics()) + len(l.Diagnostics)

	opts.Logger.Info("computed layout",
		"width", l.Width,
		"height", l.Height,
		"diagnostics", result.Stats.DiagnosticCount,
		"duration", result.Stats.LayoutTime)

	// Stage 3: Render
	hooks.OnRenderStart(ctx, opts.Name, opts.Formats)
	renderStart := time.Now()
	artifacts, hits, err := r.render(ctx, sess, result.SourceHash, opts)
	result.Stats.RenderTime = time.Since(renderStart)
	hooks.OnRenderComplete(ctx, opts.Name, opts.Formats, result.Stats.RenderTime, err)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.CacheInfo.Hits = hits
	result.CacheInfo.RenderHit = len(hits) == len(opts.Formats)

	opts.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"cached", len(hits),
		"duration", result.Stats.RenderTime)

	return result, nil
}

func (r *Runner) newSession(opts Options) *session.Session {
	sessOpts := []session.Option{
		session.WithLogger(opts.Logger),
		session.WithLayoutOptions(opts.LayoutOptions()...),
		session.WithRenderOptions(opts.RenderOptions()...),
	}
	if opts.Strict {
		sessOpts = append(sessOpts, session.WithStrict())
	}
	return session.New(sessOpts...)
}

// render produces every requested format, serving each from the cache when
// possible. It returns the formats that were cache hits.
func (r *Runner) render(ctx context.Context, sess *session.Session, sourceHash string, opts Options) (map[string][]byte, []string, error) {
	cacheHooks := observability.Cache()
	artifacts := make(map[string][]byte, len(opts.Formats))
	var hits []string

	for _, format := range opts.Formats {
		key := r.Keyer.ArtifactKey(sourceHash, opts.ArtifactKeyOpts(format))

		if !opts.Refresh {
			data, hit, err := r.Cache.Get(ctx, key)
			if err != nil {
				opts.Logger.Warn("cache read failed", "format", format, "error", err)
			}
			if err == nil && hit {
				cacheHooks.OnCacheHit(ctx, opts.Name, format)
				artifacts[format] = data
				hits = append(hits, format)
				continue
			}
			cacheHooks.OnCacheMiss(ctx, opts.Name, format)
		}

		data, err := renderFormat(ctx, sess, format, opts)
		if err != nil {
			return nil, nil, fmt.Errorf("%s: %w", format, err)
		}
		artifacts[format] = data

		if err := r.Cache.Set(ctx, key, data, cache.TTLArtifact); err != nil {
			opts.Logger.Warn("cache write failed", "format", format, "error", err)
		} else {
			cacheHooks.OnCacheSet(ctx, opts.Name, format, len(data))
		}
		opts.Logger.Debug("rendered format", "format", format, "bytes", len(data))
	}
	return artifacts, hits, nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}
