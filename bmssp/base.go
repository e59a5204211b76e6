package bmssp

import (
	"container/heap"

	"github.com/binghan1227/bmssp/core"
	"github.com/binghan1227/bmssp/trace"
)

// BaseBMSSP is a bounded Dijkstra from a single vertex v, used at
// recursion level 0. It pops at most k+1 distinct vertices, bounding
// exploration by B; edges are only relaxed while both the relaxed-edge
// test and the bound hold.
func BaseBMSSP(dist core.Distances, g *core.Graph, bound float64, v core.Vertex, k int, tracer trace.Tracer) (maxCost float64, settled []core.Vertex) {
	tracer.BaseCase(v, bound)

	pq := make(statePQ, 0, k+1)
	heap.Push(&pq, state{vertex: v, cost: dist[v]})

	var popped []core.Vertex
	visited := make(map[core.Vertex]bool)
	maxCost = dist[v]

	for pq.Len() > 0 && len(popped) < k+1 {
		top := heap.Pop(&pq).(state)
		if visited[top.vertex] {
			continue
		}
		visited[top.vertex] = true
		popped = append(popped, top.vertex)
		if top.cost > maxCost {
			maxCost = top.cost
		}
		tracer.BasePQPop(top.vertex, top.cost)

		for _, e := range g.Neighbors(top.vertex) {
			d := top.cost + e.Weight
			if d > dist[e.To] || d >= bound {
				continue
			}
			dist.Improve(e.To, d)
			tracer.BaseRelax(top.vertex, e.To, d)
			heap.Push(&pq, state{vertex: e.To, cost: d})
		}
	}

	if len(popped) <= k {
		return bound, popped
	}

	filtered := popped[:0:0]
	for _, u := range popped {
		if dist[u] < maxCost {
			filtered = append(filtered, u)
		}
	}

	return maxCost, filtered
}

// state is a (vertex, cost) pair ordered by cost ascending, vertex index
// breaking ties so pop order is deterministic across equal costs.
type state struct {
	vertex core.Vertex
	cost   float64
}

type statePQ []state

func (pq statePQ) Len() int { return len(pq) }
func (pq statePQ) Less(i, j int) bool {
	if pq[i].cost != pq[j].cost {
		return pq[i].cost < pq[j].cost
	}

	return pq[i].vertex < pq[j].vertex
}
func (pq statePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *statePQ) Push(x interface{}) { *pq = append(*pq, x.(state)) }

func (pq *statePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
