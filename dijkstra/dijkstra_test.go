package dijkstra_test

import (
	"math"
	"testing"

	"github.com/binghan1227/bmssp/core"
	"github.com/binghan1227/bmssp/dijkstra"
)

func mustGraph(t *testing.T, n int, edges [][3]float64) *core.Graph {
	t.Helper()
	g, err := core.NewGraph(n)
	if err != nil {
		t.Fatalf("NewGraph: %v", err)
	}
	for _, e := range edges {
		if err := g.AddEdge(int(e[0]), int(e[1]), e[2]); err != nil {
			t.Fatalf("AddEdge: %v", err)
		}
	}

	return g
}

// TestSolve_LinearChain checks a simple 4-vertex path.
func TestSolve_LinearChain(t *testing.T) {
	g := mustGraph(t, 4, [][3]float64{{0, 1, 1}, {1, 2, 2}, {2, 3, 3}})
	dist, err := dijkstra.Solve(g, 0)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}

	want := []float64{0, 1, 3, 6}
	for v, w := range want {
		if dist[v] != w {
			t.Errorf("dist[%d] = %v, want %v", v, dist[v], w)
		}
	}
}

// TestSolve_Triangle checks that the cheaper two-hop route wins over a
// pricier direct edge.
func TestSolve_Triangle(t *testing.T) {
	g := mustGraph(t, 3, [][3]float64{{0, 1, 10}, {0, 2, 1}, {2, 1, 1}})
	dist, err := dijkstra.Solve(g, 0)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}

	want := []float64{0, 2, 1}
	for v, w := range want {
		if dist[v] != w {
			t.Errorf("dist[%d] = %v, want %v", v, dist[v], w)
		}
	}
}

// TestSolve_Disconnected checks that an unreachable vertex stays at Inf.
func TestSolve_Disconnected(t *testing.T) {
	g := mustGraph(t, 3, [][3]float64{{0, 1, 5}})
	dist, err := dijkstra.Solve(g, 0)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}

	if dist[0] != 0 || dist[1] != 5 {
		t.Fatalf("dist = %v, want [0 5 inf]", dist)
	}
	if !math.IsInf(dist[2], 1) {
		t.Fatalf("dist[2] = %v, want +Inf", dist[2])
	}
}

func TestSolve_NilGraph(t *testing.T) {
	if _, err := dijkstra.Solve(nil, 0); err != dijkstra.ErrNilGraph {
		t.Fatalf("err = %v, want ErrNilGraph", err)
	}
}

func TestSolve_SourceOutOfRange(t *testing.T) {
	g := mustGraph(t, 2, nil)
	if _, err := dijkstra.Solve(g, 5); err != dijkstra.ErrSourceOutOfRange {
		t.Fatalf("err = %v, want ErrSourceOutOfRange", err)
	}
	if _, err := dijkstra.Solve(g, -1); err != dijkstra.ErrSourceOutOfRange {
		t.Fatalf("err = %v, want ErrSourceOutOfRange", err)
	}
}

func TestSolve_SelfLoopIsHarmless(t *testing.T) {
	g := mustGraph(t, 2, [][3]float64{{0, 0, 7}, {0, 1, 3}})
	dist, err := dijkstra.Solve(g, 0)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if dist[0] != 0 || dist[1] != 3 {
		t.Fatalf("dist = %v, want [0 3]", dist)
	}
}

func TestSolve_ParallelEdgesTakeTheCheaper(t *testing.T) {
	g := mustGraph(t, 2, [][3]float64{{0, 1, 9}, {0, 1, 2}, {0, 1, 5}})
	dist, err := dijkstra.Solve(g, 0)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if dist[1] != 2 {
		t.Fatalf("dist[1] = %v, want 2", dist[1])
	}
}
