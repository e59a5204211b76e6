// Package blocklist implements the block-based priority structure that
// the BMSSP driver pulls its per-level frontiers from.
//
// A BlockList holds a bounded multiset of (vertex, key) pairs under
// decrease-key-only semantics: inserting a vertex that is already present
// with a better-or-equal key is a no-op. It is not a general-purpose heap
// — it exists to make two operations cheap in the amortized sense the
// BMSSP recursion needs:
//
//   - Pull: extract (up to) the M smallest keys together with a
//     separator bound, in time roughly linear in the number of elements
//     examined, via linear-time selection rather than a full sort.
//   - BatchPrepend: absorb a batch of keys known to be smaller than
//     everything currently held, in time linear in the batch size, by
//     recursively halving it into a handful of blocks rather than
//     inserting one at a time.
//
// Internally the set is partitioned across two ordered sequences of
// Blocks:
//
//   - D0 ("prepend list"): blocks pushed to the front by BatchPrepend.
//     Conceptually "smaller than everything in D1." Traversed first by
//     Pull. Each D0 block holds at most ceil(M/2) elements.
//   - D1 ("insert list"): blocks ordered by ascending UpperBound,
//     partitioning [min_key, B_global). Each D1 block holds at most M
//     elements; Insert finds the block whose UpperBound is the smallest
//     one >= the new key and splits it if it overflows.
//
// A locator map gives O(1) lookup from vertex to its containing block and
// position, so decrease-key (remove old entry, re-insert) and Pull's
// bulk-remove are both cheap. Every element in a block lives in a
// container/list.List node (the same doubly-linked-list choice the
// reference implementation makes with std::list<Element>), so removing
// an element given its node is O(1).
//
// Every operation here is total: there is no error return anywhere in
// this package. Insert with a key at or past the global bound, or a
// decrease-key that does not improve, are both silently ignored — the
// BMSSP driver relies on being able to call Insert on every relaxed edge
// without checking admissibility first.
package blocklist
