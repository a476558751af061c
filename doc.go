// Package reactive implements a fine-grained reactive computation core:
// scalar state cells ("signals"), memoized derivations over them
// ("derived" nodes), and imperatively-registered side-effect observers
// ("watchers") that re-run when their transitive inputs change.
//
// Dependencies are discovered automatically by observing which signals
// and derivations are read during evaluation of a derivation or
// watcher. A Scope propagates updates through the resulting dependency
// graph with glitch-free semantics: every dependent runs at most the
// minimum number of times per write, and never observes a partially
// updated combination of its inputs.
//
// The whole surface is four operations on a Scope:
//
//	s := reactive.New()
//	defer s.Dispose()
//
//	count := reactive.NewSignal(s, 0)
//	doubled := reactive.NewDerived(s, func() int { return count.Read() * 2 })
//	reactive.Watch(s, func() {
//		fmt.Println("doubled:", doubled.Read())
//	})
//	count.Write(21)
//
// The engine is synchronous and single-threaded: a write returns only
// after the digest it triggered, including any re-entrant passes from
// writes inside watcher bodies, has fully drained. It does no I/O, no
// persistence, and no asynchronous scheduling.
package reactive
