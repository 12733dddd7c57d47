// Package observability provides hooks for instrumenting the animation pipeline.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers register hooks at startup to
// receive events about layout computation, per-frame rendering, and encoding.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define a hook interface for pipeline events
//   - Provide a no-op default implementation
//   - Allow registration of a custom implementation at startup
//
// This approach:
//   - Avoids import cycles (hooks are registered by main, not by libraries)
//   - Keeps the animation core dependency-free from logging frameworks
//   - Allows different backends (structured logs, metrics counters, traces)
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetAnimationHooks(&myHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Animation().OnStageEnter(ctx, stage, frame)
package observability

import (
	"context"
	"sync"
	"time"
)

// AnimationHooks receives events from the animation pipeline.
type AnimationHooks interface {
	// Layout events
	OnLayoutStart(ctx context.Context, nodeCount int, seed uint64)
	OnLayoutComplete(ctx context.Context, nodeCount int, duration time.Duration, err error)

	// Frame events. OnStageEnter fires on the first frame of each stage.
	OnStageEnter(ctx context.Context, stage string, frame int)
	OnFrameRendered(ctx context.Context, frame int, stage string, duration time.Duration, err error)

	// Encode events
	OnEncodeComplete(ctx context.Context, format string, frames int, duration time.Duration, err error)
}

// NoopAnimationHooks is a no-op implementation of AnimationHooks.
type NoopAnimationHooks struct{}

func (NoopAnimationHooks) OnLayoutStart(context.Context, int, uint64)                          {}
func (NoopAnimationHooks) OnLayoutComplete(context.Context, int, time.Duration, error)         {}
func (NoopAnimationHooks) OnStageEnter(context.Context, string, int)                           {}
func (NoopAnimationHooks) OnFrameRendered(context.Context, int, string, time.Duration, error)  {}
func (NoopAnimationHooks) OnEncodeComplete(context.Context, string, int, time.Duration, error) {}

var (
	animationHooks AnimationHooks = NoopAnimationHooks{}
	hooksMu        sync.RWMutex
)

// SetAnimationHooks registers custom animation hooks.
// This should be called once at application startup before any rendering.
func SetAnimationHooks(h AnimationHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		animationHooks = h
	}
}

// Animation returns the registered animation hooks.
func Animation() AnimationHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return animationHooks
}

// Reset restores the no-op default hooks.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	animationHooks = NoopAnimationHooks{}
}
