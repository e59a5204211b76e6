package dijkstra

import (
	"container/heap"

	"github.com/binghan1227/bmssp/core"
)

// Solve computes shortest distances from source to every vertex reachable
// in g, using a standard lazy-decrease-key Dijkstra. It is the ground-truth
// oracle bmssp.Solve's differential tests diff against, and the
// implementation the CLI's "--algo dijkstra" selects.
//
// Unreachable vertices hold core.Inf in the result, matching bmssp.Solve's
// contract exactly so the two are directly comparable.
func Solve(g *core.Graph, source core.Vertex, opts ...Option) (core.Distances, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if source < 0 || source >= g.N() {
		return nil, ErrSourceOutOfRange
	}

	cfg := defaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	dist := core.NewDistances(g.N(), source)
	visited := make([]bool, g.N())

	pq := make(nodePQ, 0, g.N())
	heap.Push(&pq, &nodeItem{vertex: source, dist: 0})

	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*nodeItem)
		u, d := item.vertex, item.dist

		if visited[u] {
			continue
		}
		visited[u] = true
		cfg.tracer.BasePQPop(u, d)

		for _, e := range g.Neighbors(u) {
			newDist := dist[u] + e.Weight
			if newDist >= dist[e.To] {
				continue
			}
			dist.Improve(e.To, newDist)
			cfg.tracer.BaseRelax(u, e.To, newDist)
			heap.Push(&pq, &nodeItem{vertex: e.To, dist: newDist})
		}
	}

	return dist, nil
}

// nodeItem is a (vertex, dist) pair held in the priority queue.
type nodeItem struct {
	vertex core.Vertex
	dist   float64
}

// nodePQ is a min-heap of *nodeItem ordered by dist ascending, vertex index
// breaking ties so pop order is deterministic across equal distances.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].vertex < pq[j].vertex
}
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
