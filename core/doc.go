// Package core defines the graph view and distance array shared by every
// recursion level of a BMSSP solve.
//
// Unlike the general-purpose, mutable, string-keyed Graph in lvlath's own
// core package, a solve here works over a fixed vertex count known up
// front (command-line input gives n before any edge), so vertices are
// dense integers in [0, n) and the graph is built once and never mutated
// again. That lets the adjacency structure be a plain slice of slices
// instead of a map of maps — O(1) neighbor lookup by index, no hashing,
// no per-vertex bookkeeping.
//
// Complexity:
//
//	– Space: O(n + m) for the adjacency slice.
//	– AddEdge: O(1) amortized (slice append).
//
// Thread safety:
//
//	– Graph is read-only once built. A single sync.RWMutex guards the
//	  build phase so a caller that wants to finish constructing a graph
//	  from multiple goroutines (e.g. a parallel parser) can do so safely;
//	  Neighbors and the solver's hot path never take the lock.
package core
