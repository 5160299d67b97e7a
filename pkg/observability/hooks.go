// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. The renderer itself stays pure; the CLI
// reports each render through the registered hooks.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetRenderHooks(&myRenderHooks{})
//	    // ... run application
//	}
//
// Callers emit events around a render:
//
//	observability.Render().OnRenderStart(ctx, n)
//	// ... render ...
//	observability.Render().OnRenderComplete(ctx, n, rows, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// RenderHooks receives events about flag rendering.
type RenderHooks interface {
	// OnRenderStart records the start of a render of size n.
	OnRenderStart(ctx context.Context, n int)

	// OnRenderComplete records a finished render. rows is 0 when err is set.
	OnRenderComplete(ctx context.Context, n, rows int, duration time.Duration, err error)
}

// NoopRenderHooks is a no-op implementation of RenderHooks.
type NoopRenderHooks struct{}

func (NoopRenderHooks) OnRenderStart(context.Context, int)                               {}
func (NoopRenderHooks) OnRenderComplete(context.Context, int, int, time.Duration, error) {}

var (
	renderHooks RenderHooks = NoopRenderHooks{}
	hooksMu     sync.RWMutex
)

// SetRenderHooks registers custom render hooks.
// This should be called once at application startup before any rendering.
func SetRenderHooks(h RenderHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		renderHooks = h
	}
}

// Render returns the registered render hooks.
func Render() RenderHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return renderHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	renderHooks = NoopRenderHooks{}
}
