package bmssp

import (
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/binghan1227/bmssp/core"
	"github.com/binghan1227/bmssp/trace"
)

// ErrNilGraph is returned when Solve is given a nil graph.
var ErrNilGraph = errors.New("bmssp: graph is nil")

// ErrSourceOutOfRange is returned when source does not index into g.
var ErrSourceOutOfRange = errors.New("bmssp: source vertex out of range")

// Option configures a Solve call.
type Option func(*options)

type options struct {
	tracer trace.Tracer
	logger *logrus.Logger
}

// WithTracer attaches a trace sink. Omitting this option (or passing nil)
// leaves the solve silently un-traced via trace.Noop{}, which costs
// nothing on the hot path.
func WithTracer(t trace.Tracer) Option {
	return func(o *options) {
		if t != nil {
			o.tracer = t
		}
	}
}

// WithLogger attaches a logrus logger for the one debug-level summary line
// Solve emits on completion. Defaults to logrus.StandardLogger().
func WithLogger(l *logrus.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// Solve computes shortest distances from source to every vertex reachable
// in g via the bounded multi-source shortest path recursion. The
// recursion's own return value is discarded; its side effect on the
// distance array is the answer.
func Solve(g *core.Graph, source core.Vertex, opts ...Option) (core.Distances, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if source < 0 || source >= g.N() {
		return nil, ErrSourceOutOfRange
	}

	cfg := options{tracer: trace.Noop{}, logger: logrus.StandardLogger()}
	for _, opt := range opts {
		opt(&cfg)
	}

	dist := core.NewDistances(g.N(), source)
	k, t, l := Params(g.N())
	cfg.tracer.SolveStart(g.N(), k, t, l)

	BMSSPBounded(dist, g, l, core.Inf, []core.Vertex{source}, k, t, cfg.tracer)

	cfg.logger.WithFields(logrus.Fields{
		"n": g.N(), "source": source, "k": k, "t": t, "l": l,
	}).Debug("bmssp solve completed")

	return dist, nil
}
