// Package bmssp implements the Bounded Multi-Source Shortest Path
// recursion: a bounded-distance, multi-frontier, multi-level driver that
// substitutes for the outer loop of Dijkstra.
//
// Solve is the entry point. It derives branching parameters (k, t, l) from
// log2(n), seeds a core.Distances array, and descends through
// BMSSPBounded/FindPivots/BaseBMSSP, bottoming out in a bounded Dijkstra at
// recursion level 0. Every frame of the recursion owns its own
// blocklist.BlockList, scoped to that frame and discarded on return; the
// only state shared across frames is the Distances array itself.
//
// Ties in relaxation use <= (not <), and priority-queue ties break on
// vertex index. The recursion is not fully deterministic, however:
// FindPivots reports pivots in map iteration order, BatchPrepend collects
// its survivors from a map, and block-list selection uses random pivots,
// so the frontiers pulled, and the trace, can differ between runs on the
// same input.
package bmssp
