// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard
// dependencies on specific observability backends. Consumers can register
// hooks at startup to receive events about solver evaluations, uncertainty
// studies, and cache operations.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// This approach:
//   - Avoids import cycles (hooks are registered by main, not by libraries)
//   - Keeps the core library dependency-free from observability frameworks
//   - Allows different backends (OpenTelemetry, Prometheus, DataDog, etc.)
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetSolverHooks(&mySolverHooks{})
//	    observability.SetCacheHooks(&myCacheHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Solver().OnEvaluateStart(ctx, "radial")
//	// ... solve ...
//	observability.Solver().OnEvaluateComplete(ctx, "radial", duration, faultCount)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Solver Hooks
// =============================================================================

// SolverHooks receives events from the build calculators.
type SolverHooks interface {
	// OnEvaluateStart records the start of one solver pass ("radial",
	// "vertical", "port").
	OnEvaluateStart(ctx context.Context, pass string)

	// OnEvaluateComplete records the end of one solver pass with the number
	// of diagnostics it raised.
	OnEvaluateComplete(ctx context.Context, pass string, duration time.Duration, faultCount int)
}

// =============================================================================
// Study Hooks
// =============================================================================

// StudyHooks receives events from uncertainty studies.
type StudyHooks interface {
	// OnStudyStart records the start of a sampling campaign.
	OnStudyStart(ctx context.Context, method string, runCount int)

	// OnRunComplete records one finished evaluation.
	OnRunComplete(ctx context.Context, runID string, failed bool)

	// OnStudyComplete records the end of the campaign.
	OnStudyComplete(ctx context.Context, method string, duration time.Duration, failedCount int)
}

// =============================================================================
// Cache Hooks
// =============================================================================

// CacheHooks receives events from cache operations.
type CacheHooks interface {
	// OnCacheHit records a cache hit.
	OnCacheHit(ctx context.Context, keyType string)

	// OnCacheMiss records a cache miss.
	OnCacheMiss(ctx context.Context, keyType string)

	// OnCacheSet records a cache write.
	OnCacheSet(ctx context.Context, keyType string, size int)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopSolverHooks is a no-op implementation of SolverHooks.
type NoopSolverHooks struct{}

func (NoopSolverHooks) OnEvaluateStart(context.Context, string)                        {}
func (NoopSolverHooks) OnEvaluateComplete(context.Context, string, time.Duration, int) {}

// NoopStudyHooks is a no-op implementation of StudyHooks.
type NoopStudyHooks struct{}

func (NoopStudyHooks) OnStudyStart(context.Context, string, int)                   {}
func (NoopStudyHooks) OnRunComplete(context.Context, string, bool)                 {}
func (NoopStudyHooks) OnStudyComplete(context.Context, string, time.Duration, int) {}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	solverHooks SolverHooks = NoopSolverHooks{}
	studyHooks  StudyHooks  = NoopStudyHooks{}
	cacheHooks  CacheHooks  = NoopCacheHooks{}
	hooksMu     sync.RWMutex
)

// SetSolverHooks registers custom solver hooks.
// This should be called once at application startup before any evaluations.
func SetSolverHooks(h SolverHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		solverHooks = h
	}
}

// SetStudyHooks registers custom study hooks.
// This should be called once at application startup before any studies.
func SetStudyHooks(h StudyHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		studyHooks = h
	}
}

// SetCacheHooks registers custom cache hooks.
// This should be called once at application startup before any cache operations.
func SetCacheHooks(h CacheHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		cacheHooks = h
	}
}

// Solver returns the registered solver hooks.
func Solver() SolverHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return solverHooks
}

// Study returns the registered study hooks.
func Study() StudyHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return studyHooks
}

// Cache returns the registered cache hooks.
func Cache() CacheHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return cacheHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	solverHooks = NoopSolverHooks{}
	studyHooks = NoopStudyHooks{}
	cacheHooks = NoopCacheHooks{}
}
