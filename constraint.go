package leapdb

// Constraint wraps one cursor and exposes the bound-propagation
// primitives the solver drives. All three operations work in place on
// a shared (los, his) pair whose length equals the cursor's key arity;
// the solver shuttles global variable bounds in and out around each
// call.
type Constraint struct {
	cursor *Cursor

	// rightLos is the scratch key SplitRight seeks past; greatest is
	// the arity-matched sentinel written into los when a seek finds
	// nothing, which the solver reads back as failure.
	rightLos Key
	greatest Key
}

// NewConstraint wraps cursor. The constraint owns the cursor; callers
// must not seek it directly while the constraint is in use.
func NewConstraint(cursor *Cursor) *Constraint {
	keyLen := cursor.tree.keyLen
	return &Constraint{
		cursor:   cursor,
		rightLos: make(Key, keyLen),
		greatest: GreatestKey(keyLen),
	}
}

// KeyLen returns the arity of the wrapped cursor's tree.
func (c *Constraint) KeyLen() int { return c.cursor.tree.keyLen }

// Propagate tightens los against the index. The suffix past the first
// unfixed position is first reset to (Least, Greatest): a
// lexicographic index cannot bound suffix positions until the whole
// prefix is pinned. Then the cursor leapfrogs to the smallest stored
// key >= los and the result is copied back into los, stopping after
// the first position that is not pinned against his. A seek past the
// end writes the Greatest sentinel into los.
func (c *Constraint) Propagate(los, his Key) {
	ix := c.firstUnfixed(los, his)
	for i := ix + 1; i < len(los); i++ {
		los[i] = Least
		his[i] = Greatest
	}

	found := c.cursor.SeekGTE(los)
	if found == nil {
		copy(los, c.greatest)
		return
	}
	c.copyTruncated(los, found, his)
}

// SplitLeft pins the first unfixed position to its current low value.
// The left branch explores all solutions where that variable equals
// los[i].
func (c *Constraint) SplitLeft(los, his Key) {
	ix := c.firstUnfixed(los, his)
	if ix == len(los) {
		panic("leapdb: split on a fully fixed constraint")
	}
	his[ix] = los[ix]
}

// SplitRight advances los strictly past the left branch's pinned
// value: it seeks beyond the key that is los up to and including the
// splitter position and Greatest after it, then copies the result back
// the way Propagate does.
func (c *Constraint) SplitRight(los, his Key) {
	ix := c.firstUnfixed(los, his)
	if ix == len(los) {
		panic("leapdb: split on a fully fixed constraint")
	}
	copy(c.rightLos, los[:ix+1])
	for i := ix + 1; i < len(c.rightLos); i++ {
		c.rightLos[i] = Greatest
	}

	found := c.cursor.SeekGT(c.rightLos)
	if found == nil {
		copy(los, c.greatest)
		return
	}
	c.copyTruncated(los, found, his)
}

// firstUnfixed returns the first position where los and his diverge,
// or the arity when every position is pinned.
func (c *Constraint) firstUnfixed(los, his Key) int {
	for i := range los {
		if los[i].Compare(his[i]) != 0 {
			return i
		}
	}
	return len(los)
}

// copyTruncated writes found into los position by position, stopping
// after the first position not pinned against his. Positions past an
// unpinned one cannot be tightened: the index only orders them under a
// fixed prefix.
func (c *Constraint) copyTruncated(los, found, his Key) {
	for i := range los {
		los[i] = found[i]
		if found[i].Compare(his[i]) != 0 {
			return
		}
	}
}
