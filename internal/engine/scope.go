package engine

import (
	"fmt"

	"github.com/petermattis/goid"
)

// Engine is the untyped runtime behind a single reactive.Scope: it owns
// every node it creates, the tracking stack, the pending digest queue,
// and the disposed flag.
//
// The core is single-threaded and cooperative. An Engine records the
// goroutine that created it and asserts every subsequent call stays on
// that goroutine, turning the implicit single-threaded assumption into
// a checked invariant.
type Engine struct {
	order int
	q     *queue
	ctx   trackingContext

	ownerGID int64
	disposed bool
	running  bool

	effects []*Node // creation order, walked on Dispose
}

// New constructs an Engine bound to the calling goroutine.
func New() *Engine {
	return &Engine{
		q:        newQueue(),
		ownerGID: goid.Get(),
	}
}

func (e *Engine) guard() {
	if e.disposed {
		panic("reactive: scope used after Dispose")
	}
	if gid := goid.Get(); gid != e.ownerGID {
		panic(fmt.Sprintf("reactive: scope used from goroutine %d, owned by goroutine %d", gid, e.ownerGID))
	}
}

func (e *Engine) nextOrder() int {
	o := e.order
	e.order++
	return o
}

// NewSource creates a signal node holding initial, with equals as its
// change predicate.
func (e *Engine) NewSource(initial any, equals func(prev, next any) bool) *Node {
	e.guard()
	n := newNode(KindSource, e.nextOrder(), equals)
	n.value = initial
	return n
}

// NewComputed creates and immediately evaluates a derivation node,
// establishing its initial dependency set and value.
func (e *Engine) NewComputed(compute func() any, equals func(prev, next any) bool) *Node {
	e.guard()
	n := newNode(KindComputed, e.nextOrder(), equals)
	n.compute = compute

	e.ctx.runWithNode(n, func() {
		n.value = n.compute()
	})

	return n
}

// NewEffect creates a watcher node, runs it once immediately, and
// records it for cleanup invocation at Dispose.
func (e *Engine) NewEffect(effect func() any) *Node {
	e.guard()
	n := newNode(KindEffect, e.nextOrder(), nil)
	n.compute = effect

	e.ctx.runWithNode(n, func() {
		if cleanup, ok := n.compute().(func()); ok {
			n.cleanup = cleanup
		}
	})

	e.effects = append(e.effects, n)
	return n
}

// Read returns n's current cached value, registering a dependency if a
// node is currently evaluating. Valid for sources and computed nodes;
// effects have no observable value.
func (e *Engine) Read(n *Node) any {
	e.guard()
	e.ctx.track(n)
	return n.value
}

// WriteSource compares next against the current value via equals and,
// if they differ, replaces the value and drives a digest from this
// node's direct dependents.
func (e *Engine) WriteSource(n *Node, next any) {
	e.guard()
	if n.equals(n.value, next) {
		return
	}
	n.value = next
	e.scheduleFrom(n)
}

// UpdateSource applies an updater function to the signal's current
// value.
func (e *Engine) UpdateSource(n *Node, fn func(any) any) {
	e.guard()
	e.WriteSource(n, fn(n.value))
}

// WriteComputed overrides a computed node directly: marks the node
// overridden unconditionally, then, if the literal value differs from
// the cached one under equals, replaces it and drives a digest
// treating this node as a root.
func (e *Engine) WriteComputed(n *Node, next any) {
	e.guard()
	n.overridden = true
	if n.equals(n.value, next) {
		return
	}
	n.value = next
	e.scheduleFrom(n)
}

// scheduleFrom enqueues n's direct dependents and, if no digest is
// already in flight on this engine, runs one to quiescence. A write
// that happens during an in-flight digest (from inside a computed or
// effect body) only enqueues: dependents ordered after the node being
// processed run later in the current pass, and the rest are picked up
// by the outer runDigest loop as the next pass.
func (e *Engine) scheduleFrom(n *Node) {
	n.forEachSub(func(sub *Node) { e.q.insert(sub) })
	if !e.running {
		e.runDigest()
	}
}

// Dispose marks the engine disposed and invokes every effect's stored
// cleanup exactly once, in creation order.
func (e *Engine) Dispose() {
	e.guard()
	e.disposed = true

	for _, eff := range e.effects {
		if eff.cleanup == nil {
			continue
		}
		cleanup := eff.cleanup
		eff.cleanup = nil
		e.ctx.runUntracked(cleanup)
	}
}
