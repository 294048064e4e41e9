// Package observability lets a host listen to pipeline and cache events
// without the libraries depending on any metrics or logging backend.
//
// Libraries report through [Pipeline] and [Cache]; nothing listens until the
// binary registers hooks at startup. The wireframe CLI registers a logger
// under --verbose:
//
//	observability.SetPipelineHooks(hooks)
//	observability.SetCacheHooks(hooks)
//
// Embed [NoopPipelineHooks] or [NoopCacheHooks] to implement only the events
// you care about.
package observability

import (
	"context"
	"sync/atomic"
	"time"
)

// PipelineHooks receives the start and end of each stage of one document's
// parse, layout and render run. name is the document name.
type PipelineHooks interface {
	OnParseStart(ctx context.Context, name string)
	OnParseComplete(ctx context.Context, name string, nodeCount, diagnostics int, duration time.Duration, err error)

	OnLayoutStart(ctx context.Context, name string, nodeCount int)
	OnLayoutComplete(ctx context.Context, name string, screens int, duration time.Duration, err error)

	OnRenderStart(ctx context.Context, name string, formats []string)
	OnRenderComplete(ctx context.Context, name string, formats []string, duration time.Duration, err error)
}

// CacheHooks receives artifact cache traffic for document name in format.
type CacheHooks interface {
	OnCacheHit(ctx context.Context, name, format string)
	OnCacheMiss(ctx context.Context, name, format string)
	OnCacheSet(ctx context.Context, name, format string, size int)
}

// NoopPipelineHooks ignores every event.
type NoopPipelineHooks struct{}

func (NoopPipelineHooks) OnParseStart(context.Context, string) {}
func (NoopPipelineHooks) OnParseComplete(context.Context, string, int, int, time.Duration, error) {
}
func (NoopPipelineHooks) OnLayoutStart(context.Context, string, int)                          {}
func (NoopPipelineHooks) OnLayoutComplete(context.Context, string, int, time.Duration, error) {}
func (NoopPipelineHooks) OnRenderStart(context.Context, string, []string)                     {}
func (NoopPipelineHooks) OnRenderComplete(context.Context, string, []string, time.Duration, error) {
}

// NoopCacheHooks ignores every event.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, string, int) {}

// The registry holds boxed interfaces so a swap is a single atomic store.
type pipelineBox struct{ PipelineHooks }
type cacheBox struct{ CacheHooks }

var (
	pipelineHooks atomic.Pointer[pipelineBox]
	cacheHooks    atomic.Pointer[cacheBox]
)

func init() { Reset() }

// SetPipelineHooks registers h for every later pipeline run. nil is ignored.
func SetPipelineHooks(h PipelineHooks) {
	if h != nil {
		pipelineHooks.Store(&pipelineBox{h})
	}
}

// SetCacheHooks registers h for every later cache lookup. nil is ignored.
func SetCacheHooks(h CacheHooks) {
	if h != nil {
		cacheHooks.Store(&cacheBox{h})
	}
}

// Pipeline returns the registered pipeline hooks.
func Pipeline() PipelineHooks { return pipelineHooks.Load().PipelineHooks }

// Cache returns the registered cache hooks.
func Cache() CacheHooks { return cacheHooks.Load().CacheHooks }

// Reset restores the no-op hooks.
func Reset() {
	pipelineHooks.Store(&pipelineBox{NoopPipelineHooks{}})
	cacheHooks.Store(&cacheBox{NoopCacheHooks{}})
}
