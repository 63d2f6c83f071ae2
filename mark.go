package arena

// Mark is a lightweight checkpoint: the index of a block in the chain and
// the write cursor that block had when the mark was taken. It does not own
// or pin anything. A mark is valid only while its block is still live;
// nested marks must be released innermost-first, and a mark must not be
// used after a Reset or Destroy has pruned the chain past its block.
type Mark struct {
	block  int
	offset uintptr
}

// Mark captures the arena's current position in O(1) without allocating.
func (a *Arena) Mark() Mark {
	if a.current == nil {
		return Mark{block: -1}
	}
	return Mark{block: len(a.blocks) - 1, offset: a.current.offset}
}

// Release rolls the arena back to m: every block newer than the marked one
// is freed, and the marked block's cursor is restored. All allocations
// made since the mark are invalidated; nothing older is touched.
//
// A mark whose block index exceeds the live chain is stale (the caller
// broke the nesting discipline); Release leaves the arena unchanged rather
// than guessing.
func (a *Arena) Release(m Mark) {
	if m.block >= len(a.blocks) {
		return
	}
	if m.block < 0 {
		// Mark taken on an empty arena: free the whole chain.
		for i := range a.blocks {
			a.reserved -= len(a.blocks[i].buf)
			a.blocks[i] = block{}
		}
		a.blocks = nil
		a.current = nil
		return
	}
	for i := m.block + 1; i < len(a.blocks); i++ {
		a.reserved -= len(a.blocks[i].buf)
		a.blocks[i] = block{}
	}
	a.blocks = a.blocks[:m.block+1]
	b := &a.blocks[m.block]
	if m.offset <= uintptr(len(b.buf)) {
		b.offset = m.offset
	} else {
		b.offset = 0
	}
	a.current = b
}
