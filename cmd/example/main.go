// Command example demonstrates the three reactive primitives end to
// end: a signal, a derivation over it, and a watcher with a cleanup.
package main

import (
	"fmt"

	"github.com/cellgraph/reactive"
)

func main() {
	s := reactive.New()
	defer s.Dispose()

	first := reactive.NewSignal(s, "John")
	last := reactive.NewSignal(s, "Doe")

	full := reactive.NewDerived(s, func() string {
		return first.Read() + " " + last.Read()
	})

	reactive.Watch(s, func() func() {
		fmt.Println("name is now:", full.Read())
		return func() {
			fmt.Println("cleaning up watcher for:", full.Read())
		}
	})

	first.Write("Bob")
	last.Update(func(v string) string { return v + " Jr." })
}
