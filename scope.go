package reactive

import "github.com/cellgraph/reactive/internal/engine"

// Option configures a Scope at construction time. The module currently
// defines no scope-wide settings (equality is configured per-signal via
// Options[T]); this slot is reserved for future scope-level
// configuration such as tags or extensions.
type Option func(*scopeConfig)

type scopeConfig struct{}

// Scope is a process-local container owning every node created through
// it, its tracking stack, and its pending digest queue. It is the sole
// constructible entry point into the reactive core: create one with
// New, build signals/derivations/watchers against it, and call Dispose
// when done.
//
// A Scope must be used from a single goroutine, the one that created
// it, and must not be used after Dispose; both are enforced.
type Scope struct {
	eng *engine.Engine
}

// New constructs a Scope bound to the calling goroutine.
func New(opts ...Option) *Scope {
	cfg := &scopeConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	return &Scope{eng: engine.New()}
}

// Dispose marks the scope disposed and invokes every watcher's stored
// cleanup exactly once, in the order the watchers were created. Using
// the scope afterward panics.
func (s *Scope) Dispose() {
	s.eng.Dispose()
}
