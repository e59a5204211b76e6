package blocklist

import (
	"container/list"

	"github.com/binghan1227/bmssp/trace"
)

// BlockList is a bounded, decrease-key priority structure split across two
// block sequences: D0 (prepended batches) and D1 (individually inserted
// keys, kept in ascending block order). Every BlockList belongs to exactly
// one bounded recursion frame and is discarded when that frame returns.
type BlockList struct {
	m       int
	bGlobal float64
	nextID  uint64

	d0 *list.List // of *block; front holds the smallest-keyed batch
	d1 *list.List // of *block; ascending upperBound

	// d1Index is d1's blocks kept in a second, sorted-by-(upperBound,id)
	// slice for binary-search lower_bound queries. Lookup is O(log n);
	// insert/remove are O(n) slice shifts.
	d1Index []*list.Element

	loc map[int]*locEntry

	tracer trace.Tracer
}

// New constructs an empty BlockList. M is clamped to >= 1. One empty D1
// block with upperBound == bGlobal always exists so the first Insert has
// somewhere to land. tracer may be trace.Noop{}.
func New(m int, bGlobal float64, tracer trace.Tracer) *BlockList {
	if m < 1 {
		m = 1
	}

	bl := &BlockList{
		m:       m,
		bGlobal: bGlobal,
		d0:      list.New(),
		d1:      list.New(),
		loc:     make(map[int]*locEntry),
		tracer:  tracer,
	}

	seed := newBlock(bl.nextID, bGlobal)
	bl.nextID++
	node := bl.d1.PushBack(seed)
	bl.d1Index = append(bl.d1Index, node)

	return bl
}

// IsEmpty reports whether the list holds any elements.
func (bl *BlockList) IsEmpty() bool {
	return len(bl.loc) == 0
}

// Insert places (u, d) into the list under decrease-key-only semantics:
// a no-op if d is at or past the global bound, or if u is already
// present with a key <= d.
func (bl *BlockList) Insert(u int, d float64) {
	if d >= bl.bGlobal {
		return
	}
	if existing, ok := bl.loc[u]; ok {
		if bl.keyOf(existing) <= d {
			return
		}
		bl.removeEntry(u, existing)
	}

	node := bl.findD1Target(d)
	blk := node.Value.(*block)
	elemNode := blk.elems.PushBack(&kv{vertex: u, key: d})
	bl.loc[u] = &locEntry{inD0: false, blockNode: node, elemNode: elemNode}

	if blk.elems.Len() > bl.m {
		bl.splitD1(node)
	}

	bl.tracer.BlockListInsert(u, d)
}

// keyOf returns the current key stored at a locator entry.
func (bl *BlockList) keyOf(e *locEntry) float64 {
	return e.elemNode.Value.(*kv).key
}

// findD1Target returns the D1 block with the smallest upperBound >= d,
// falling back to the last D1 block if none qualifies (should not
// happen for any d < bGlobal, since the last block's upperBound is
// always bGlobal).
func (bl *BlockList) findD1Target(d float64) *list.Element {
	lo, hi := 0, len(bl.d1Index)
	for lo < hi {
		mid := (lo + hi) / 2
		if bl.d1Index[mid].Value.(*block).upperBound >= d {
			hi = mid
		} else {
			lo = mid + 1
		}
	}
	if lo == len(bl.d1Index) {
		return bl.d1Index[len(bl.d1Index)-1]
	}

	return bl.d1Index[lo]
}

// d1IndexInsert inserts node into d1Index at its sorted position.
func (bl *BlockList) d1IndexInsert(node *list.Element) {
	blk := node.Value.(*block)
	lo, hi := 0, len(bl.d1Index)
	for lo < hi {
		mid := (lo + hi) / 2
		other := bl.d1Index[mid].Value.(*block)
		if less(other, blk) {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	bl.d1Index = append(bl.d1Index, nil)
	copy(bl.d1Index[lo+1:], bl.d1Index[lo:])
	bl.d1Index[lo] = node
}

// less orders two D1 blocks by (upperBound, id).
func less(a, b *block) bool {
	if a.upperBound != b.upperBound {
		return a.upperBound < b.upperBound
	}

	return a.id < b.id
}

// d1IndexRemove removes node's entry from d1Index by identity scan.
func (bl *BlockList) d1IndexRemove(node *list.Element) {
	for i, n := range bl.d1Index {
		if n == node {
			bl.d1Index = append(bl.d1Index[:i], bl.d1Index[i+1:]...)
			return
		}
	}
}

// splitD1 halves an overflowing D1 block around its median key. The left
// half stays in the original block, whose upperBound drops to the
// maximum key of that half; a new block, carrying the old upperBound,
// holds the right half and is linked immediately after.
func (bl *BlockList) splitD1(node *list.Element) {
	blk := node.Value.(*block)
	oldUpperBound := blk.upperBound
	elems := drain(blk.elems)
	mid := len(elems) / 2
	nthElement(elems, mid)
	left, right := elems[:mid], elems[mid:]

	bl.d1IndexRemove(node)
	blk.upperBound = maxKey(left)
	refill(blk, left, bl.loc, false, node)
	bl.d1IndexInsert(node)

	newBlk := newBlock(bl.nextID, oldUpperBound)
	bl.nextID++
	newNode := bl.d1.InsertAfter(newBlk, node)
	refill(newBlk, right, bl.loc, false, newNode)
	bl.d1IndexInsert(newNode)
}

func maxKey(a []kv) float64 {
	m := a[0].key
	for _, e := range a[1:] {
		if e.key > m {
			m = e.key
		}
	}

	return m
}

// drain empties a block's element list into a plain slice for selection,
// returning the extracted values (not the list nodes, which are
// discarded — refill allocates fresh nodes).
func drain(l *list.List) []kv {
	out := make([]kv, 0, l.Len())
	for e := l.Front(); e != nil; e = e.Next() {
		out = append(out, *e.Value.(*kv))
	}
	l.Init()

	return out
}

// refill rebuilds blk's element list from vals, registering a fresh
// locator entry for each one against blockNode.
func refill(blk *block, vals []kv, loc map[int]*locEntry, inD0 bool, blockNode *list.Element) {
	for i := range vals {
		v := vals[i]
		node := blk.elems.PushBack(&v)
		loc[v.vertex] = &locEntry{inD0: inD0, blockNode: blockNode, elemNode: node}
	}
}

// removeEntry detaches the element named by e from its block and the
// locator, freeing the block (and its D0/D1 membership) if it becomes
// empty. The last D1 block, which carries bGlobal as its upperBound, is
// kept even when empty so Insert always has a target.
func (bl *BlockList) removeEntry(u int, e *locEntry) {
	blk := e.blockNode.Value.(*block)
	blk.elems.Remove(e.elemNode)
	delete(bl.loc, u)

	if blk.elems.Len() > 0 {
		return
	}
	if e.inD0 {
		bl.d0.Remove(e.blockNode)
	} else if e.blockNode != bl.d1.Back() {
		bl.d1IndexRemove(e.blockNode)
		bl.d1.Remove(e.blockNode)
	}
}

// BatchPrepend absorbs a batch of elements known to be smaller than the
// rest of the list's contents. Duplicates are resolved to their smallest
// key; decrease-key-only semantics apply against the current contents.
// Survivors land in one new D0 block (if k <= ceil(M/2)) or several, built
// by recursive median partitioning (if k > ceil(M/2)), pushed to the front
// of D0 in ascending-key order.
func (bl *BlockList) BatchPrepend(elements []Element) {
	best := make(map[int]float64, len(elements))
	for _, e := range elements {
		if cur, ok := best[e.Vertex]; !ok || e.Key < cur {
			best[e.Vertex] = e.Key
		}
	}

	survivors := make([]kv, 0, len(best))
	for v, d := range best {
		if existing, ok := bl.loc[v]; ok {
			if bl.keyOf(existing) <= d {
				continue
			}
			bl.removeEntry(v, existing)
		}
		survivors = append(survivors, kv{vertex: v, key: d})
	}

	if len(survivors) == 0 {
		return
	}

	capD0 := (bl.m + 1) / 2 // ceil(M/2)
	blocks := bl.buildD0Blocks(survivors, capD0)

	// Ascending blocks[0]..blocks[k-1]; push in reverse so blocks[0] ends
	// up at the very front of D0 once all pushes complete.
	for i := len(blocks) - 1; i >= 0; i-- {
		blk := blocks[i]
		node := bl.d0.PushFront(blk)
		for e := blk.elems.Front(); e != nil; e = e.Next() {
			v := e.Value.(*kv).vertex
			bl.loc[v] = &locEntry{inD0: true, blockNode: node, elemNode: e}
		}
	}

	traced := make([]trace.KV, len(elements))
	for i, e := range elements {
		traced[i] = trace.KV{Vertex: e.Vertex, Key: e.Key}
	}
	bl.tracer.BlockListPrepend(traced)
}

// buildD0Blocks recursively halves survivors around the median until
// every chunk fits within capacity, returning the resulting blocks in
// ascending-key order (blocks[i]'s keys are all <= blocks[i+1]'s keys).
// upperBound is unused for D0 blocks (left at 0) — D0 membership is
// ordered only by push order, not by any bound.
func (bl *BlockList) buildD0Blocks(elems []kv, capacity int) []*block {
	if len(elems) <= capacity {
		b := newBlock(bl.nextID, 0)
		bl.nextID++
		for i := range elems {
			v := elems[i]
			b.elems.PushBack(&v)
		}

		return []*block{b}
	}

	mid := len(elems) / 2
	nthElement(elems, mid)
	left := bl.buildD0Blocks(elems[:mid], capacity)
	right := bl.buildD0Blocks(elems[mid:], capacity)

	return append(left, right...)
}

// candidate is a scratch reference into the live structure, gathered
// during Pull.
type candidate struct {
	vertex int
	key    float64
}

// Pull extracts up to M of the smallest-keyed elements, returning them
// together with a separating bound: every returned key is < bound, and
// every key remaining afterward is >= bound.
func (bl *BlockList) Pull() ([]int, float64) {
	if bl.IsEmpty() {
		return nil, bl.bGlobal
	}

	candidates, exhaustive := bl.gatherCandidates()
	k := len(candidates)

	var frontier []candidate
	if k <= bl.m && exhaustive {
		// The scan reached the end of both D0 and D1 without hitting
		// either list's cap, so candidates really is every element left
		// in the structure: nothing remains to separate from, and it is
		// safe to return all of it.
		frontier = candidates
	} else {
		keys := make([]kv, k)
		for i, c := range candidates {
			keys[i] = kv{vertex: c.vertex, key: c.key}
		}
		nthElement(keys, bl.m-1)
		dM := keys[bl.m-1].key

		for _, c := range candidates {
			if c.key < dM {
				frontier = append(frontier, c)
			}
		}
		if len(frontier) == 0 {
			// All tied at dM (or below, impossible post-selection): take M
			// arbitrary candidates to guarantee forward progress.
			n := bl.m
			if n > k {
				n = k
			}
			frontier = candidates[:n]
		}
	}

	out := make([]int, len(frontier))
	for i, c := range frontier {
		out[i] = c.vertex
		if e, ok := bl.loc[c.vertex]; ok {
			bl.removeEntry(c.vertex, e)
		}
	}

	bound := bl.minKeyRemaining()
	bl.tracer.BlockListPull(out, bound)

	return out, bound
}

// gatherCandidates scans up to M elements from the head of D0, then up to
// another M from the head of D1. The returned bool reports whether both
// scans ran to the true end of their list rather than stopping at the M
// cap — false means at least one list still has unscanned elements
// beyond what was gathered, so the result cannot be trusted as "every
// element remaining in the structure".
func (bl *BlockList) gatherCandidates() ([]candidate, bool) {
	var out []candidate
	exhaustive := true
	take := func(l *list.List, limit int) {
		n := 0
		for node := l.Front(); node != nil; node = node.Next() {
			blk := node.Value.(*block)
			for e := blk.elems.Front(); e != nil; e = e.Next() {
				if n == limit {
					exhaustive = false
					return
				}
				el := e.Value.(*kv)
				out = append(out, candidate{vertex: el.vertex, key: el.key})
				n++
			}
		}
	}
	take(bl.d0, bl.m)
	take(bl.d1, bl.m)

	return out, exhaustive
}

// minKeyRemaining returns the smaller of the minimum keys in the first
// non-empty block of D0 and the first non-empty block of D1, or bGlobal
// if nothing remains.
func (bl *BlockList) minKeyRemaining() float64 {
	bound := bl.bGlobal
	if blk := firstNonEmpty(bl.d0); blk != nil {
		bound = minInBlock(blk)
	}
	if blk := firstNonEmpty(bl.d1); blk != nil {
		if m := minInBlock(blk); m < bound {
			bound = m
		}
	}

	return bound
}

func firstNonEmpty(l *list.List) *block {
	for node := l.Front(); node != nil; node = node.Next() {
		if blk := node.Value.(*block); blk.elems.Len() > 0 {
			return blk
		}
	}

	return nil
}

func minInBlock(blk *block) float64 {
	e := blk.elems.Front()
	m := e.Value.(*kv).key
	for e = e.Next(); e != nil; e = e.Next() {
		if k := e.Value.(*kv).key; k < m {
			m = k
		}
	}

	return m
}
