// Package observability provides hooks for metrics, tracing, and logging.
//
// Consumers register hooks at startup to receive events about inspect runs
// without the core packages depending on a specific backend. The defaults
// are no-ops.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetInspectHooks(&myInspectHooks{})
//	    // ... run application
//	}
//
// Commands call hooks to emit events:
//
//	observability.Inspect().OnLoadStart(ctx, path)
//	// ... parse and index ...
//	observability.Inspect().OnLoadComplete(ctx, path, components, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Inspect Hooks
// =============================================================================

// InspectHooks receives events from the inspect pipeline.
type InspectHooks interface {
	// Load events cover parsing and indexing one input.
	OnLoadStart(ctx context.Context, path string)
	OnLoadComplete(ctx context.Context, path string, components int, duration time.Duration, err error)

	// OnQuery records a lookup by identifier or name.
	OnQuery(ctx context.Context, kind, value string, err error)

	// OnExport records one serialized output. Sink is "stdout" or a file path.
	OnExport(ctx context.Context, shape, format, sink string, err error)
}

// NoopInspectHooks is a no-op implementation of InspectHooks.
type NoopInspectHooks struct{}

func (NoopInspectHooks) OnLoadStart(context.Context, string)                               {}
func (NoopInspectHooks) OnLoadComplete(context.Context, string, int, time.Duration, error) {}
func (NoopInspectHooks) OnQuery(context.Context, string, string, error)                    {}
func (NoopInspectHooks) OnExport(context.Context, string, string, string, error)           {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	inspectHooks InspectHooks = NoopInspectHooks{}
	hooksMu      sync.RWMutex
)

// SetInspectHooks registers custom inspect hooks. A nil value is ignored.
func SetInspectHooks(h InspectHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		inspectHooks = h
	}
}

// Inspect returns the registered inspect hooks.
func Inspect() InspectHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return inspectHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	inspectHooks = NoopInspectHooks{}
}
