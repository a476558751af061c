package reactive

import "github.com/cellgraph/reactive/internal/engine"

// Derived is a memoized computation over other nodes, a "computed"
// node. It is evaluated immediately at creation and again whenever a
// tracked dependency actually changes; reads in between are O(1) cache
// hits.
type Derived[T any] struct {
	eng  *engine.Engine
	node *engine.Node
}

// NewDerived creates and immediately evaluates compute, establishing
// its initial dependency set and value, using the default equality
// predicate.
func NewDerived[T any](s *Scope, compute func() T) *Derived[T] {
	return NewDerivedWithOptions(s, compute, Options[T]{})
}

// NewDerivedWithOptions is NewDerived with a custom equality predicate.
func NewDerivedWithOptions[T any](s *Scope, compute func() T, opts Options[T]) *Derived[T] {
	return &Derived[T]{
		eng: s.eng,
		node: s.eng.NewComputed(func() any {
			return compute()
		}, wrapEquals(opts.Equals)),
	}
}

// Read returns the derivation's cached value, registering a dependency
// if called from within an evaluating derivation or watcher.
func (d *Derived[T]) Read() T {
	return as[T](d.eng.Read(d.node))
}

// Write overrides the derivation's cached value directly. The override
// persists, compute does not run, until the next digest in which one
// of the derivation's dependencies actually changes, at which point it
// rejoins the normal graph and compute runs again.
func (d *Derived[T]) Write(v T) {
	d.eng.WriteComputed(d.node, v)
}

// Update overrides the derivation using its current cached value:
// Update is just Write(fn(current)).
func (d *Derived[T]) Update(fn func(T) T) {
	d.Write(fn(as[T](d.node.Value())))
}
