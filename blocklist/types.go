package blocklist

import "container/list"

// Element is a (vertex, key) pair as submitted to BatchPrepend. Insert
// takes the same pair as two scalar arguments instead, since a
// single-element insert never needs the slice form.
type Element struct {
	Vertex int
	Key    float64
}

// kv is the internal working representation used by selection and
// splitting — identical shape to Element, kept distinct so the public
// API (Element) is free to gain fields later without touching the
// selection machinery.
type kv struct {
	vertex int
	key    float64
}

// block is an unordered bag of elements plus an upperBound: every key in
// the block is <= upperBound, and D1's blocks are kept in ascending
// upperBound order. id breaks ties between blocks that transiently share
// an upperBound (e.g. immediately after a split), giving the D1 index a
// total order.
type block struct {
	id         uint64
	upperBound float64
	elems      *list.List // of *kv
}

func newBlock(id uint64, upperBound float64) *block {
	return &block{id: id, upperBound: upperBound, elems: list.New()}
}

// locEntry is the locator: where a vertex currently lives, so decrease-key
// and Pull's bulk removal are O(1) given the vertex.
type locEntry struct {
	inD0      bool
	blockNode *list.Element // node in d0 or d1, Value is *block
	elemNode  *list.Element // node in blockNode's block.elems, Value is *kv
}
