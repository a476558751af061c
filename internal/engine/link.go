package engine

// Link is a single dependency edge, threaded simultaneously into the
// subscriber's dependency list and the dependency's subscriber list so
// both directions can be walked and detached in O(1).
type Link struct {
	dep *Node
	sub *Node

	prevDep, nextDep *Link
	prevSub, nextSub *Link
}
