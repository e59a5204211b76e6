package bmssp

import (
	"github.com/binghan1227/bmssp/blocklist"
	"github.com/binghan1227/bmssp/core"
	"github.com/binghan1227/bmssp/trace"
)

// BMSSPBounded is the recursive driver at level l. At l == 0 it defers to
// BaseBMSSP on the frontier's sole vertex; callers are responsible for
// ensuring len(frontier) == 1 at the base.
func BMSSPBounded(dist core.Distances, g *core.Graph, level int, bound float64, frontier []core.Vertex, k, t int, tracer trace.Tracer) (minUB float64, settled []core.Vertex) {
	tracer.RecursionEnter(level, bound, frontier)
	minUB, settled = bmsspBounded(dist, g, level, bound, frontier, k, t, tracer)
	tracer.RecursionExit(level, bound, settled)

	return minUB, settled
}

func bmsspBounded(dist core.Distances, g *core.Graph, level int, bound float64, frontier []core.Vertex, k, t int, tracer trace.Tracer) (minUB float64, settled []core.Vertex) {
	if level == 0 {
		return BaseBMSSP(dist, g, bound, frontier[0], k, tracer)
	}

	pivots, allLayers := FindPivots(dist, g, bound, frontier, k, tracer)

	m := blockCapacity(t, level)
	bl := blocklist.New(m, bound, tracer)

	minUB = bound
	for _, p := range pivots {
		bl.Insert(p, dist[p])
		if dist[p] < minUB {
			minUB = dist[p]
		}
	}

	var u []core.Vertex
	capU := k * pow2(t*level)

	for len(u) < capU && !bl.IsEmpty() {
		pulledFrontier, pulledBound := bl.Pull()

		subUB, subU := BMSSPBounded(dist, g, level-1, pulledBound, pulledFrontier, k, t, tracer)
		minUB = subUB

		var toPrepend []blocklist.Element
		for _, v := range subU {
			u = append(u, v)
		}
		for _, uu := range subU {
			for _, e := range g.Neighbors(uu) {
				d := dist[uu] + e.Weight
				if d > dist[e.To] {
					continue
				}
				dist.Improve(e.To, d)

				switch {
				case d >= pulledBound && d < bound:
					bl.Insert(e.To, d)
				case d >= subUB && d < pulledBound:
					toPrepend = append(toPrepend, blocklist.Element{Vertex: e.To, Key: d})
				}
			}
		}
		bl.BatchPrepend(toPrepend)
	}

	for _, v := range allLayers {
		if dist[v] < minUB {
			u = append(u, v)
		}
	}

	return minUB, u
}

// pow2 returns 2^exp as an int, clamped at exp < 0 to 1. Mirrors the
// reference implementation's pow(2, t*l) cast to an integer cap.
func pow2(exp int) int {
	if exp < 0 {
		return 1
	}
	if exp >= 62 {
		exp = 62
	}

	return 1 << uint(exp)
}
