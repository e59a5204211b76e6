package trace

import (
	"encoding/json"
	"io"
	"math"
	"sync"
)

// Tracer is the interface the BMSSP core calls at each stage of a solve:
// recursion entry/exit, pivot selection, base-case relaxation, and every
// block-list mutation. Every method must be safe to call at zero cost
// when tracing is disabled — Noop satisfies that by doing nothing.
type Tracer interface {
	SolveStart(n, k, t, l int)
	RecursionEnter(level int, bound float64, frontier []int)
	RecursionExit(level int, bound float64, uSet []int)
	FindPivots(bound float64, pivots []int, layers []KV)
	BaseCase(v int, bound float64)
	BasePQPop(u int, cost float64)
	BaseRelax(u, v int, newDist float64)
	BlockListInsert(vertex int, key float64)
	BlockListPrepend(elements []KV)
	BlockListPull(frontier []int, bound float64)
}

// Noop is the zero-value, always-available Tracer. The BMSSP driver is
// handed a Noop whenever the caller does not ask for a trace file, so the
// hot recursive path never branches on "is tracing on" — it just always
// calls a Tracer, and Noop's methods compile down to nothing of interest.
type Noop struct{}

func (Noop) SolveStart(n, k, t, l int)                         {}
func (Noop) RecursionEnter(level int, bound float64, frontier []int) {}
func (Noop) RecursionExit(level int, bound float64, uSet []int)      {}
func (Noop) FindPivots(bound float64, pivots []int, layers []KV)     {}
func (Noop) BaseCase(v int, bound float64)                           {}
func (Noop) BasePQPop(u int, cost float64)                           {}
func (Noop) BaseRelax(u, v int, newDist float64)                     {}
func (Noop) BlockListInsert(vertex int, key float64)                 {}
func (Noop) BlockListPrepend(elements []KV)                          {}
func (Noop) BlockListPull(frontier []int, bound float64)             {}

var _ Tracer = Noop{}

// JSONL writes one JSON object per line to w: {"seq":N,"run":"...","event":"...", ...}.
// seq is monotonic across the lifetime of a JSONL instance. run tags every
// line with the solve's UUID so multiple invocations appended to the same
// file stay distinguishable.
type JSONL struct {
	mu  sync.Mutex
	enc *json.Encoder
	seq uint64
	run string
}

// NewJSONL wraps w (expected to be opened for append) as a Tracer.
func NewJSONL(w io.Writer, runID string) *JSONL {
	return &JSONL{enc: json.NewEncoder(w), run: runID}
}

var _ Tracer = (*JSONL)(nil)

// num renders a distance for JSON: the literal "inf" in place of +∞, a
// plain number otherwise — encoding/json has no representation for
// IEEE-754 infinity.
func num(d float64) interface{} {
	if math.IsInf(d, 1) {
		return "inf"
	}

	return d
}

func (j *JSONL) emit(event string, fields map[string]interface{}) {
	j.mu.Lock()
	defer j.mu.Unlock()

	rec := map[string]interface{}{
		"seq":   j.seq,
		"run":   j.run,
		"event": event,
	}
	for k, v := range fields {
		rec[k] = v
	}
	j.seq++
	// Encoding errors on an append-only trace sink are not actionable
	// mid-solve; the trace is a debugging aid, not the source of truth.
	_ = j.enc.Encode(rec)
}

func (j *JSONL) SolveStart(n, k, t, l int) {
	j.emit(EventSolveStart, map[string]interface{}{"n": n, "k": k, "t": t, "l": l})
}

func (j *JSONL) RecursionEnter(level int, bound float64, frontier []int) {
	j.emit(EventRecursionEnter, map[string]interface{}{"l": level, "B": num(bound), "frontier": frontier})
}

func (j *JSONL) RecursionExit(level int, bound float64, uSet []int) {
	j.emit(EventRecursionExit, map[string]interface{}{"l": level, "B": num(bound), "u_set": uSet})
}

func (j *JSONL) FindPivots(bound float64, pivots []int, layers []KV) {
	j.emit(EventFindPivots, map[string]interface{}{"B": num(bound), "pivots": pivots, "layers": layers})
}

func (j *JSONL) BaseCase(v int, bound float64) {
	j.emit(EventBaseCase, map[string]interface{}{"v": v, "B": num(bound)})
}

func (j *JSONL) BasePQPop(u int, cost float64) {
	j.emit(EventBasePQPop, map[string]interface{}{"u": u, "cost": num(cost)})
}

func (j *JSONL) BaseRelax(u, v int, newDist float64) {
	j.emit(EventBaseRelax, map[string]interface{}{"u": u, "v": v, "d": num(newDist)})
}

func (j *JSONL) BlockListInsert(vertex int, key float64) {
	j.emit(EventBlockListInsert, map[string]interface{}{"v": vertex, "d": num(key)})
}

func (j *JSONL) BlockListPrepend(elements []KV) {
	j.emit(EventBlockListPrepend, map[string]interface{}{"elements": elements})
}

func (j *JSONL) BlockListPull(frontier []int, bound float64) {
	j.emit(EventBlockListPull, map[string]interface{}{"frontier": frontier, "bound": num(bound)})
}
