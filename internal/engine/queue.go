package engine

// queue is a bucket array keyed by a node's creation order, giving O(1)
// dedup-insert and an ascending-order drain. Because order is a global,
// per-scope monotonic counter, each bucket holds at most one node, so
// unlike a height-keyed heap (where many nodes can share a rank) a plain
// slot per order is enough; no intra-bucket list is needed.
type queue struct {
	buckets []*Node
	max     int
	count   int
}

func newQueue() *queue {
	return &queue{buckets: make([]*Node, 64), max: -1}
}

func (q *queue) grow(order int) {
	if order < len(q.buckets) {
		return
	}
	newCap := len(q.buckets) * 2
	for newCap <= order {
		newCap *= 2
	}
	grown := make([]*Node, newCap)
	copy(grown, q.buckets)
	q.buckets = grown
}

// insert enqueues n if it isn't already pending. Safe to call while a
// drain of this same queue is in progress: inserting a node whose order
// is still ahead of the scan position lets it run in the same pass,
// inserting one behind the scan position leaves it for the next pass
// (see digest.go).
func (q *queue) insert(n *Node) {
	if n.inDigest {
		return
	}
	n.inDigest = true
	q.grow(n.order)
	q.buckets[n.order] = n
	q.count++
	if n.order > q.max {
		q.max = n.order
	}
}

func (q *queue) empty() bool { return q.count == 0 }

// drain processes every currently-queued node in ascending order,
// smallest order first. process may insert further nodes (a dependent
// whose dependency just changed); if their order is still ahead of the
// scan position they are picked up within this same call, otherwise
// they remain queued for the caller to drain again in a new pass.
func (q *queue) drain(process func(*Node)) {
	for i := 0; i <= q.max; i++ {
		n := q.buckets[i]
		if n == nil {
			continue
		}
		q.buckets[i] = nil
		n.inDigest = false
		q.count--
		process(n)
	}
	if q.count == 0 {
		q.max = -1
	}
}
