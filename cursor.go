package leapdb

// Cursor is a stateful position over one tree, supporting forward
// seeks to a bound. Seeks first ascend from the current position while
// the cached subtree summaries prove the answer lies elsewhere, then
// descend; under monotonically increasing seek keys this amortizes to
// O(log N) without restarting from the root each time.
//
// Returned keys alias tree internals; clone before retaining or
// mutating. Any mutation of the tree invalidates the cursor, and the
// next seek panics until Reset is called.
type Cursor struct {
	tree    *Tree
	version uint64
	node    *node
	ix      int
}

// Reset moves the cursor back to the tree root and revalidates it
// against the tree's current version.
func (c *Cursor) Reset() {
	c.node = c.tree.root
	c.ix = 0
	c.version = c.tree.version
}

// SeekGTE positions the cursor at the smallest stored key >= key and
// returns it, or nil if no such key exists.
func (c *Cursor) SeekGTE(key Key) Key {
	return c.seek(key, false)
}

// SeekGT is SeekGTE with strict inequality.
func (c *Cursor) SeekGT(key Key) Key {
	return c.seek(key, true)
}

func (c *Cursor) seek(key Key, strict bool) Key {
	if c.version != c.tree.version {
		panic("leapdb: cursor used after tree mutation without Reset")
	}
	c.tree.checkArity(key)

	// Ascend while the current subtree provably cannot contain the
	// answer: everything here is below the bound, or the bound is
	// below the whole subtree (a smaller match may exist to the left).
	n := c.node
	for n.parent != nil && !c.covers(n, key, strict) {
		n = n.parent
	}

	// Descend. At each internal node the candidate is either inside
	// children[ix] or the separator keys[ix] itself; the child's upper
	// summary decides without entering it.
	for {
		var ix int
		if strict {
			ix = findGT(n.keys, key)
		} else {
			ix = findGTE(n.keys, key)
		}
		c.node, c.ix = n, ix
		if n.leaf() {
			if ix < len(n.keys) {
				return n.keys[ix]
			}
			return nil
		}
		child := n.children[ix]
		if c.exhausted(child, key, strict) {
			if ix < len(n.keys) {
				return n.keys[ix]
			}
			return nil
		}
		n = child
	}
}

// covers reports whether the subtree at n can contain the smallest
// stored key satisfying the seek bound.
func (c *Cursor) covers(n *node, key Key, strict bool) bool {
	if n.upper == nil {
		return false
	}
	if c.exhausted(n, key, strict) {
		return false
	}
	return key.Compare(n.lower) >= 0
}

// exhausted reports whether every key in the subtree at n is below the
// seek bound.
func (c *Cursor) exhausted(n *node, key Key, strict bool) bool {
	cmp := n.upper.Compare(key)
	if strict {
		return cmp <= 0
	}
	return cmp < 0
}
