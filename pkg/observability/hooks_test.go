package observability

import (
	"context"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	// Solver hooks
	s := NoopSolverHooks{}
	s.OnEvaluateStart(ctx, "radial")
	s.OnEvaluateComplete(ctx, "radial", time.Second, 2)

	// Study hooks
	u := NoopStudyHooks{}
	u.OnStudyStart(ctx, "monte_carlo", 100)
	u.OnRunComplete(ctx, "run-1", false)
	u.OnStudyComplete(ctx, "monte_carlo", time.Second, 0)

	// Cache hooks
	c := NoopCacheHooks{}
	c.OnCacheHit(ctx, "record")
	c.OnCacheMiss(ctx, "record")
	c.OnCacheSet(ctx, "record", 1024)
}

func TestGlobalHooksRegistry(t *testing.T) {
	// Reset to known state
	Reset()

	// Verify defaults are noop
	if _, ok := Solver().(NoopSolverHooks); !ok {
		t.Error("Solver() should return NoopSolverHooks by default")
	}
	if _, ok := Study().(NoopStudyHooks); !ok {
		t.Error("Study() should return NoopStudyHooks by default")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Cache() should return NoopCacheHooks by default")
	}

	// Set custom hooks
	customSolver := &testSolverHooks{}
	SetSolverHooks(customSolver)
	if Solver() != customSolver {
		t.Error("SetSolverHooks should set custom hooks")
	}

	customStudy := &testStudyHooks{}
	SetStudyHooks(customStudy)
	if Study() != customStudy {
		t.Error("SetStudyHooks should set custom hooks")
	}

	customCache := &testCacheHooks{}
	SetCacheHooks(customCache)
	if Cache() != customCache {
		t.Error("SetCacheHooks should set custom hooks")
	}

	// Reset and verify
	Reset()
	if _, ok := Solver().(NoopSolverHooks); !ok {
		t.Error("Reset() should restore NoopSolverHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()

	custom := &testSolverHooks{}
	SetSolverHooks(custom)

	// Setting nil should be ignored
	SetSolverHooks(nil)

	if Solver() != custom {
		t.Error("SetSolverHooks(nil) should be ignored")
	}

	Reset()
}

// Test implementations
type testSolverHooks struct{ NoopSolverHooks }
type testStudyHooks struct{ NoopStudyHooks }
type testCacheHooks struct{ NoopCacheHooks }
