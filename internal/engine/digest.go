package engine

import "errors"

// maxDigestPasses bounds the re-entrant pass loop: a write inside an
// effect that keeps producing new roots without ever reaching a
// fixpoint panics with a diagnostic instead of looping forever.
const maxDigestPasses = 10000

// runDigest drains the pending queue to quiescence. Each drain is one
// pass. A re-entrant write from an effect body enqueues the written
// node's dependents; those ordered after the current scan position run
// in the same pass, and any left behind it trigger another pass, in
// ascending creation order each time, until a pass leaves nothing
// queued.
//
// A node is only ever enqueued when something it depends on has
// actually changed, so the queue already is the reachable-and-changed
// set, and draining it in ascending order is the propagation: a node's
// dependencies always have a strictly smaller creation order, so by the
// time a node is dequeued, every dependency that could still change in
// this pass has already settled.
func (e *Engine) runDigest() {
	e.running = true
	defer func() { e.running = false }()

	for pass := 0; !e.q.empty(); pass++ {
		if pass >= maxDigestPasses {
			panic(errors.New("reactive: possible infinite update loop detected"))
		}
		e.q.drain(e.process)
	}
}

func (e *Engine) process(n *Node) {
	switch n.kind {
	case KindComputed:
		e.recompute(n)
	case KindEffect:
		e.runEffect(n)
	}
}

// recompute re-evaluates a computed node under tracking and compares
// the result against its previous value via equals. An overridden
// computed rejoins the normal graph here: the flag clears
// unconditionally and evaluation proceeds exactly as the non-overridden
// case. Dependents are only enqueued when the value actually changed;
// this is the bailout that keeps diamonds glitch-free.
func (e *Engine) recompute(n *Node) {
	n.overridden = false

	old := n.value
	n.clearDeps()

	e.ctx.runWithNode(n, func() {
		n.value = n.compute()
	})

	if n.equals(old, n.value) {
		n.value = old
		return
	}

	n.forEachSub(func(sub *Node) { e.q.insert(sub) })
}

// runEffect invokes the watcher's previous cleanup (if any) without a
// tracking frame, rebuilds its dependency set, and re-runs it under
// tracking, storing whatever cleanup function it returns. An effect is
// only ever enqueued when a real dependency change cascaded into it, so
// no further bailout check is needed here.
func (e *Engine) runEffect(n *Node) {
	if n.cleanup != nil {
		cleanup := n.cleanup
		n.cleanup = nil
		e.ctx.runUntracked(cleanup)
	}

	n.clearDeps()

	e.ctx.runWithNode(n, func() {
		if cleanup, ok := n.compute().(func()); ok {
			n.cleanup = cleanup
		}
	})
}
