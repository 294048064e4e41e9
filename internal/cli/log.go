package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/wireframe/pkg/observability"
)

// newLogger creates a new logger with timestamp formatting.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress tracks the start time of an operation and logs completion with elapsed duration.
// It is safe for sequential use by a single goroutine; concurrent calls to done will race.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time since progress was created,
// e.g. "Rendered 3 files (12ms)".
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

// logHooks writes pipeline and cache events to the debug log. It is
// registered by --verbose.
type logHooks struct {
	logger *log.Logger
}

func (h *logHooks) OnParseStart(_ context.Context, name string) {
	h.logger.Debug("parse start", "doc", name)
}

func (h *logHooks) OnParseComplete(_ context.Context, name string, nodes, diagnostics int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("parse failed", "doc", name, "duration", d, "error", err)
		return
	}
	h.logger.Debug("parse done", "doc", name, "nodes", nodes, "diagnostics", diagnostics, "duration", d)
}

func (h *logHooks) OnLayoutStart(_ context.Context, name string, nodes int) {
	h.logger.Debug("layout start", "doc", name, "nodes", nodes)
}

func (h *logHooks) OnLayoutComplete(_ context.Context, name string, screens int, d time.Duration, err error) {
	h.logger.Debug("layout done", "doc", name, "screens", screens, "duration", d, "error", err)
}

func (h *logHooks) OnRenderStart(_ context.Context, name string, formats []string) {
	h.logger.Debug("render start", "doc", name, "formats", formats)
}

func (h *logHooks) OnRenderComplete(_ context.Context, name string, formats []string, d time.Duration, err error) {
	h.logger.Debug("render done", "doc", name, "formats", formats, "duration", d, "error", err)
}

func (h *logHooks) OnCacheHit(_ context.Context, name, format string) {
	h.logger.Debug("cache hit", "doc", name, "format", format)
}

func (h *logHooks) OnCacheMiss(_ context.Context, name, format string) {
	h.logger.Debug("cache miss", "doc", name, "format", format)
}

func (h *logHooks) OnCacheSet(_ context.Context, name, format string, size int) {
	h.logger.Debug("cache set", "doc", name, "format", format, "bytes", size)
}

var (
	_ observability.PipelineHooks = (*logHooks)(nil)
	_ observability.CacheHooks    = (*logHooks)(nil)
)
