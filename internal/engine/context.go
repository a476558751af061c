package engine

// trackingContext holds the single "currently evaluating node" slot a
// scope uses to capture reads into dependencies.
type trackingContext struct {
	current   *Node
	untracked bool
}

// shouldTrack reports whether a read right now should register a
// dependency on the current node.
func (c *trackingContext) shouldTrack() bool {
	return c.current != nil && !c.untracked
}

// track registers dep as a dependency of the currently evaluating node,
// if tracking is active. Reads outside any tracking frame establish no
// dependency.
func (c *trackingContext) track(dep *Node) {
	if !c.shouldTrack() {
		return
	}
	link(c.current, dep)
}

// runWithNode pushes node onto the tracking stack for the duration of
// fn, then pops it, restoring whatever was previously current.
func (c *trackingContext) runWithNode(node *Node, fn func()) {
	prev := c.current
	c.current = node
	defer func() { c.current = prev }()
	fn()
}

// runUntracked disables dependency registration for the duration of fn
// without disturbing which node is current.
func (c *trackingContext) runUntracked(fn func()) {
	prev := c.untracked
	c.untracked = true
	defer func() { c.untracked = prev }()
	fn()
}
