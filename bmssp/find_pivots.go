package bmssp

import (
	"github.com/binghan1227/bmssp/core"
	"github.com/binghan1227/bmssp/trace"
)

// FindPivots grows the relaxation tree rooted at frontier by k steps and
// identifies pivots: frontier vertices whose expansion subtree has at
// least k descendants. It also returns every vertex discovered during the
// expansion (allLayers), deduplicated but in discovery order.
//
// dist is mutated in place: every relaxed edge updates dist[v] even when
// the target does not end up in a new layer (d >= bound). The update uses
// <= rather than < deliberately, so a tie still re-seats the back-pointer
// to the most recently discovered equal-distance parent.
func FindPivots(dist core.Distances, g *core.Graph, bound float64, frontier []core.Vertex, k int, tracer trace.Tracer) (pivots, allLayers []core.Vertex) {
	seen := make(map[core.Vertex]bool, len(frontier))
	allLayers = append(allLayers, frontier...)
	for _, v := range frontier {
		seen[v] = true
	}

	lastLayer := frontier
	parent := make(map[core.Vertex]core.Vertex)

	for i := 0; i < k; i++ {
		var newLayer []core.Vertex
		for _, u := range lastLayer {
			for _, e := range g.Neighbors(u) {
				d := dist[u] + e.Weight
				if d > dist[e.To] {
					continue
				}
				dist.Improve(e.To, d)
				if d < bound {
					newLayer = append(newLayer, e.To)
					parent[e.To] = u
				}
			}
		}

		for _, v := range newLayer {
			if !seen[v] {
				seen[v] = true
				allLayers = append(allLayers, v)
			}
		}
		lastLayer = newLayer

		if len(allLayers) > k*len(frontier) {
			pivots = frontier
			traceFindPivots(tracer, dist, bound, pivots, allLayers)

			return pivots, allLayers
		}
	}

	treeSize := make(map[core.Vertex]int)
	pivotSet := make(map[core.Vertex]bool)
	for _, leaf := range lastLayer {
		cur, count := leaf, 0
		for {
			p, ok := parent[cur]
			if !ok {
				break
			}
			cur = p
			count++
		}
		treeSize[cur] += count
		if treeSize[cur] >= k {
			pivotSet[cur] = true
		}
	}
	for v := range pivotSet {
		pivots = append(pivots, v)
	}

	traceFindPivots(tracer, dist, bound, pivots, allLayers)

	return pivots, allLayers
}

func traceFindPivots(tracer trace.Tracer, dist core.Distances, bound float64, pivots, allLayers []core.Vertex) {
	layers := make([]trace.KV, len(allLayers))
	for i, v := range allLayers {
		layers[i] = trace.KV{Vertex: v, Key: dist[v]}
	}
	tracer.FindPivots(bound, pivots, layers)
}
