// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard
// dependencies on specific observability backends. Consumers register
// hooks at startup to receive events about seeding passes, board store
// operations, and API requests.
//
// The package uses a simple hooks pattern: hook interfaces per event
// category, no-op defaults, and a global registry populated by main.
// Libraries call hooks to emit events:
//
//	observability.Seed().OnSeedStart(ctx, frameID)
//	// ... run the pass ...
//	observability.Seed().OnSeedComplete(ctx, shapes, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Seed Hooks
// =============================================================================

// SeedHooks receives events from the canvas seeding subsystem.
type SeedHooks interface {
	// OnSeedStart records the start of a seeding pass.
	OnSeedStart(ctx context.Context, frameID string)

	// OnSeedSkipped records a silent no-op pass with its skip reason.
	OnSeedSkipped(ctx context.Context, reason string)

	// OnSeedComplete records a pass that reached the commit stage.
	OnSeedComplete(ctx context.Context, shapeCount int, duration time.Duration, err error)
}

// =============================================================================
// Store Hooks
// =============================================================================

// StoreHooks receives events from board and job store operations.
type StoreHooks interface {
	// OnRead records a store read.
	OnRead(ctx context.Context, store, key string)

	// OnWrite records a store write.
	OnWrite(ctx context.Context, store, key string, size int)

	// OnError records a store failure.
	OnError(ctx context.Context, store, key string, err error)
}

// =============================================================================
// HTTP Hooks
// =============================================================================

// HTTPHooks receives events from the API server.
type HTTPHooks interface {
	// OnRequest records an incoming HTTP request.
	OnRequest(ctx context.Context, method, path string)

	// OnResponse records the response for a request.
	OnResponse(ctx context.Context, method, path string, statusCode int, duration time.Duration)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopSeedHooks is a no-op implementation of SeedHooks.
type NoopSeedHooks struct{}

func (NoopSeedHooks) OnSeedStart(context.Context, string)                       {}
func (NoopSeedHooks) OnSeedSkipped(context.Context, string)                     {}
func (NoopSeedHooks) OnSeedComplete(context.Context, int, time.Duration, error) {}

// NoopStoreHooks is a no-op implementation of StoreHooks.
type NoopStoreHooks struct{}

func (NoopStoreHooks) OnRead(context.Context, string, string)         {}
func (NoopStoreHooks) OnWrite(context.Context, string, string, int)   {}
func (NoopStoreHooks) OnError(context.Context, string, string, error) {}

// NoopHTTPHooks is a no-op implementation of HTTPHooks.
type NoopHTTPHooks struct{}

func (NoopHTTPHooks) OnRequest(context.Context, string, string)                      {}
func (NoopHTTPHooks) OnResponse(context.Context, string, string, int, time.Duration) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	seedHooks  SeedHooks  = NoopSeedHooks{}
	storeHooks StoreHooks = NoopStoreHooks{}
	httpHooks  HTTPHooks  = NoopHTTPHooks{}
	hooksMu    sync.RWMutex
)

// SetSeedHooks registers custom seed hooks.
// This should be called once at application startup before any seeding.
func SetSeedHooks(h SeedHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		seedHooks = h
	}
}

// SetStoreHooks registers custom store hooks.
// This should be called once at application startup before any store use.
func SetStoreHooks(h StoreHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		storeHooks = h
	}
}

// SetHTTPHooks registers custom HTTP hooks.
// This should be called once at application startup before serving.
func SetHTTPHooks(h HTTPHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		httpHooks = h
	}
}

// Seed returns the registered seed hooks.
func Seed() SeedHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return seedHooks
}

// Store returns the registered store hooks.
func Store() StoreHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return storeHooks
}

// HTTP returns the registered HTTP hooks.
func HTTP() HTTPHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return httpHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	seedHooks = NoopSeedHooks{}
	storeHooks = NoopStoreHooks{}
	httpHooks = NoopHTTPHooks{}
}
