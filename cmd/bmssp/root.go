// Package main implements the bmssp CLI: reads a graph and a source
// vertex from stdin, runs either the BMSSP or the reference Dijkstra
// solver, and prints per-vertex distances, matching the reference
// implementation's two-binary contract (bmssp / dijkstra) under one
// --algo flag.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	uuid "github.com/satori/go.uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/binghan1227/bmssp/bmssp"
	"github.com/binghan1227/bmssp/core"
	"github.com/binghan1227/bmssp/dijkstra"
	"github.com/binghan1227/bmssp/trace"
)

var (
	algoFlag    string
	traceFlag   string
	configFlag  string
	verboseFlag bool

	log = logrus.StandardLogger()
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "bmssp",
		Short:        "Compute single-source shortest paths via BMSSP or Dijkstra",
		Args:         cobra.NoArgs,
		RunE:         runSolve,
		SilenceUsage: true,
	}
	cmd.Flags().StringVar(&algoFlag, "algo", "bmssp", `algorithm to run: "bmssp" or "dijkstra"`)
	cmd.Flags().StringVar(&traceFlag, "trace", "", "path to an append-only JSONL trace file (disabled if empty)")
	cmd.Flags().StringVar(&configFlag, "config", "", "path to a YAML config file supplying defaults for the other flags")
	cmd.Flags().BoolVar(&verboseFlag, "verbose", false, "enable debug logging")

	return cmd
}

// Execute runs the bmssp CLI to completion, exiting the process on error.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func runSolve(cmd *cobra.Command, args []string) error {
	if configFlag != "" {
		cfg, err := loadConfig(configFlag)
		if err != nil {
			return fmt.Errorf("bmssp: loading config: %w", err)
		}
		if !cmd.Flags().Changed("algo") && cfg.Algo != "" {
			algoFlag = cfg.Algo
		}
		if !cmd.Flags().Changed("trace") && cfg.Trace != "" {
			traceFlag = cfg.Trace
		}
		if !cmd.Flags().Changed("verbose") && cfg.Verbose {
			verboseFlag = cfg.Verbose
		}
	}

	if verboseFlag {
		log.SetLevel(logrus.DebugLevel)
	}

	runID := uuid.NewV4().String()
	log.WithField("run", runID).Debug("starting solve")

	tracer, closeTracer, err := openTracer(traceFlag, runID)
	if err != nil {
		return fmt.Errorf("bmssp: opening trace file: %w", err)
	}
	defer closeTracer()

	g, source, err := readGraph(cmd.InOrStdin())
	if err != nil {
		return fmt.Errorf("bmssp: reading input: %w", err)
	}

	label, dist, elapsed, err := runAlgo(g, source, tracer)
	if err != nil {
		return fmt.Errorf("bmssp: %w", err)
	}

	writeResult(cmd.OutOrStdout(), label, dist, elapsed)

	return nil
}

func openTracer(path, runID string) (trace.Tracer, func(), error) {
	if path == "" {
		return trace.Noop{}, func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, err
	}

	return trace.NewJSONL(f, runID), func() { _ = f.Close() }, nil
}

func runAlgo(g *core.Graph, source int, tracer trace.Tracer) (label string, dist core.Distances, elapsed time.Duration, err error) {
	start := time.Now()

	switch algoFlag {
	case "dijkstra":
		dist, err = dijkstra.Solve(g, source, dijkstra.WithTracer(tracer))
		label = "Dijkstra"
	default:
		dist, err = bmssp.Solve(g, source, bmssp.WithTracer(tracer))
		label = "BMSSP"
	}

	return label, dist, time.Since(start), err
}

// readGraph parses the CLI's stdin grammar: "n m" on line 1, m lines of
// "u v w", then a trailing source index. Edges referencing an
// out-of-range endpoint are discarded with a warning, not an error.
func readGraph(r io.Reader) (*core.Graph, int, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 1024*1024), 1024*1024)
	tok := newTokenizer(sc)

	n, err := tok.int()
	if err != nil {
		return nil, 0, fmt.Errorf("reading n: %w", err)
	}
	m, err := tok.int()
	if err != nil {
		return nil, 0, fmt.Errorf("reading m: %w", err)
	}

	g, err := core.NewGraph(n)
	if err != nil {
		return nil, 0, err
	}

	for i := 0; i < m; i++ {
		u, errU := tok.int()
		v, errV := tok.int()
		w, errW := tok.float()
		if errU != nil || errV != nil || errW != nil {
			return nil, 0, fmt.Errorf("reading edge %d", i)
		}
		if u < 0 || u >= n || v < 0 || v >= n {
			log.WithFields(logrus.Fields{"u": u, "v": v}).Warn("discarding out-of-range edge")
			continue
		}
		if err := g.AddEdge(u, v, w); err != nil {
			return nil, 0, err
		}
	}

	source, err := tok.int()
	if err != nil {
		return nil, 0, fmt.Errorf("reading source: %w", err)
	}

	return g, source, nil
}

func writeResult(w io.Writer, label string, dist core.Distances, elapsed time.Duration) {
	fmt.Fprintf(w, "%s Time: %s ms\n", label, strconv.FormatFloat(float64(elapsed.Microseconds())/1000.0, 'f', -1, 64))
	fmt.Fprintln(w, strings.Repeat("-", 20))
	for i, d := range dist {
		if d == core.Inf {
			fmt.Fprintf(w, "Node %d: INF\n", i)
			continue
		}
		fmt.Fprintf(w, "Node %d: %s\n", i, strconv.FormatFloat(d, 'g', -1, 64))
	}
}
