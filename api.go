package patternroute

import (
	"context"
	"log/slog"
	"runtime"
	"time"

	"github.com/pdrpinto/patternroute/geom"
	"github.com/pdrpinto/patternroute/obstacle"
	"github.com/pdrpinto/patternroute/pattern"
)

const (
	// DefaultMaxIterations caps the number of nodes one connection search
	// may pop.
	DefaultMaxIterations = 1000
	// DefaultGreedyMultiplier weights the heuristic against the solved
	// length. Above 1 the search trades optimality for speed.
	DefaultGreedyMultiplier = 1.1
	// DefaultTraceWidth is used when neither the options nor the circuit
	// give a width.
	DefaultTraceWidth = 0.1
)

// Result contains the outcome of one connection search
type Result struct {
	Connection string
	State      State
	Iterations int
	// Explored lists arena indices in the order they were popped.
	Explored []int
	// Solved is the arena index of the goal node, or -1.
	Solved int
	// Nodes is the search arena. Nodes[i].Parent indexes into it.
	Nodes []ProjectedPattern
	// Path is the flattened goal path, nil unless State is Solved.
	Path []geom.Point
	// Trace is the routed wire, nil unless State is Solved.
	Trace    *Trace
	Duration time.Duration
}

// Found reports whether the search solved the connection.
func (r Result) Found() bool { return r.State == Solved }

// Report holds one Result per circuit connection, in circuit order.
type Report struct {
	Results []Result
}

// Traces collects the traces of every solved connection, in circuit order.
func (r Report) Traces() []Trace {
	traces := make([]Trace, 0, len(r.Results))
	for _, res := range r.Results {
		if res.Trace != nil {
			traces = append(traces, *res.Trace)
		}
	}
	return traces
}

// Options defines parameters for routing.
type Options struct {
	// NumberOfWorkers bounds how many connections are searched at once.
	NumberOfWorkers  int
	MaxIterations    int
	GreedyMultiplier float64
	Library          pattern.Library
	// TraceWidth overrides the circuit's minTraceWidth when positive.
	TraceWidth float64
	// Logger overrides the package logger when non-nil.
	Logger *slog.Logger
}

// DefaultOptions returns the options used when none are given.
func DefaultOptions() Options {
	return Options{
		NumberOfWorkers:  runtime.NumCPU(),
		MaxIterations:    DefaultMaxIterations,
		GreedyMultiplier: DefaultGreedyMultiplier,
		Library:          pattern.SingleLayer(),
	}
}

// Option is a function that modifies Options.
type Option func(*Options)

// WithWorkers specifies how many worker goroutines route connections.
// WithWorkers(1) routes them one after another.
func WithWorkers(numberOfWorkers int) Option {
	return func(options *Options) {
		if numberOfWorkers > 0 {
			options.NumberOfWorkers = numberOfWorkers
		}
	}
}

// WithMaxIterations sets the per-connection iteration budget.
func WithMaxIterations(n int) Option {
	return func(options *Options) {
		if n > 0 {
			options.MaxIterations = n
		}
	}
}

// WithGreedyMultiplier sets the heuristic weight. 1 is plain A*.
func WithGreedyMultiplier(m float64) Option {
	return func(options *Options) {
		if m > 0 {
			options.GreedyMultiplier = m
		}
	}
}

// WithLibrary sets the patterns substituted into colliding segments.
func WithLibrary(lib pattern.Library) Option {
	return func(options *Options) { options.Library = lib }
}

// WithTraceWidth sets the width written on every route point.
func WithTraceWidth(w float64) Option {
	return func(options *Options) { options.TraceWidth = w }
}

// WithLogger routes log output of one call to l.
func WithLogger(l *slog.Logger) Option {
	return func(options *Options) { options.Logger = l }
}

// Route finds a trace for every connection of the circuit. Connections that
// cannot be solved within budget contribute no trace. Each connection is
// searched against the circuit's obstacles only; traces found for earlier
// connections are not obstacles for later ones.
func Route(ctx context.Context, circuit Circuit, options ...Option) ([]Trace, error) {
	report, err := RouteDetailed(ctx, circuit, options...)
	if err != nil {
		return nil, err
	}
	return report.Traces(), nil
}

// RouteDetailed is Route with the full per-connection search results.
func RouteDetailed(contextObject context.Context, circuit Circuit, options ...Option) (Report, error) {
	// --- Apply options ---
	searchOptions := DefaultOptions()
	for _, option := range options {
		option(&searchOptions)
	}
	logger := searchOptions.Logger
	if logger == nil {
		logger = Logger()
	}

	if err := Validate(circuit); err != nil {
		return Report{}, err
	}

	processed := obstacle.Preprocess(circuit.Obstacles)
	width := searchOptions.TraceWidth
	if width <= 0 {
		width = circuit.MinTraceWidth
	}
	if width <= 0 {
		width = DefaultTraceWidth
	}

	logger.Debug("routing circuit",
		slog.Int("connections", len(circuit.Connections)),
		slog.Int("obstacles", len(processed)),
		slog.Int("workers", searchOptions.NumberOfWorkers))

	results, err := runPool(contextObject, circuit.Connections, searchOptions.NumberOfWorkers, func(ctx context.Context, task routeTask) Result {
		return solveConnection(ctx, task, processed, width, logger, options)
	})
	if err != nil {
		return Report{}, err
	}
	return Report{Results: results}, nil
}

// solveConnection masks the connection's own pads out of the obstacle set,
// steps a search to completion and turns a solved node into a trace.
func solveConnection(
	ctx context.Context,
	task routeTask,
	processed []obstacle.Processed,
	width float64,
	logger *slog.Logger,
	options []Option,
) Result {
	conn := task.Connection
	started := time.Now()
	start, goal := conn.PointsToConnect[0].Point(), conn.PointsToConnect[1].Point()

	stepper := NewStepper(start, goal, processed, obstacle.MaskFor(processed, conn.Name), options...)
	for !stepper.State().Done() {
		if ctx.Err() != nil {
			break
		}
		stepper.Step()
	}

	res := stepper.result()
	res.Connection = conn.Name
	res.Duration = time.Since(started)
	if res.Found() {
		trace := newTrace(conn, res.Path, width)
		res.Trace = &trace
	}
	if res.State.Done() {
		observeResult(res)
	}

	attrs := []any{
		slog.String("connection", conn.Name),
		slog.String("state", res.State.String()),
		slog.Int("iterations", res.Iterations),
		slog.Int("nodes", len(res.Nodes)),
		slog.Duration("duration", res.Duration),
	}
	if res.Found() {
		logger.Debug("connection routed", attrs...)
	} else if res.State.Done() {
		logger.Warn("connection not routed", attrs...)
	}
	return res
}
