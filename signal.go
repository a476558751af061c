package reactive

import "github.com/cellgraph/reactive/internal/engine"

// Signal is a writable reactive cell, a source node exposed as a typed
// struct with Read/Write/Update methods.
type Signal[T any] struct {
	eng  *engine.Engine
	node *engine.Node
}

// NewSignal creates a signal holding initial, using the default
// equality predicate.
func NewSignal[T any](s *Scope, initial T) *Signal[T] {
	return NewSignalWithOptions(s, initial, Options[T]{})
}

// NewSignalWithOptions creates a signal with a custom equality
// predicate. Writes that compare equal under it are silent no-ops,
// though the predicate is still invoked.
func NewSignalWithOptions[T any](s *Scope, initial T, opts Options[T]) *Signal[T] {
	return &Signal[T]{
		eng:  s.eng,
		node: s.eng.NewSource(initial, wrapEquals(opts.Equals)),
	}
}

// Read returns the signal's current value, registering a dependency if
// called from within an evaluating derivation or watcher.
func (sig *Signal[T]) Read() T {
	return as[T](sig.eng.Read(sig.node))
}

// Write replaces the signal's value. If the new value equals the
// current one under the signal's equality predicate the write is a
// silent no-op: no propagation, and the previous value is retained.
func (sig *Signal[T]) Write(v T) {
	sig.eng.WriteSource(sig.node, v)
}

// Update computes the next value from the current one.
func (sig *Signal[T]) Update(fn func(T) T) {
	sig.eng.UpdateSource(sig.node, func(v any) any {
		return fn(as[T](v))
	})
}
