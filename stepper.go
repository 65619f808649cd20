package patternroute

import (
	"cmp"
	"container/heap"
	"slices"

	"github.com/pdrpinto/patternroute/geom"
	"github.com/pdrpinto/patternroute/internal"
	"github.com/pdrpinto/patternroute/obstacle"
	"github.com/pdrpinto/patternroute/pattern"
)

// State is the lifecycle of a single connection search.
type State int

const (
	// Running means the frontier is non-empty, no goal has been popped and
	// budget remains.
	Running State = iota
	// Solved means a node without unsolved segments was popped.
	Solved
	// Exhausted means the frontier emptied without a goal.
	Exhausted
	// BudgetExceeded means the iteration cap was reached without a goal.
	BudgetExceeded
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Solved:
		return "solved"
	case Exhausted:
		return "exhausted"
	case BudgetExceeded:
		return "budget_exceeded"
	}
	return "unknown"
}

// Done reports whether the state is terminal.
func (s State) Done() bool { return s != Running }

// StepSnapshot exposes the per-iteration state of the search
type StepSnapshot struct {
	// Current is the arena index of the node popped by this step, or -1
	// when the step popped nothing.
	Current      int
	State        State
	Done         bool
	Found        bool
	Path         []geom.Point
	FrontierSize int
	StepIndex    int
}

// Stepper runs a best-first pattern-substitution search for one connection,
// one expansion at a time. It is not safe for concurrent use; independent
// connections get independent steppers.
type Stepper struct {
	start, goal      geom.Point
	obstacles        []obstacle.Processed
	mask             obstacle.Mask
	library          pattern.Library
	greedyMultiplier float64
	maxIterations    int
	goalDistance     float64

	nodes    []ProjectedPattern
	openSet  priorityQueue
	seq      uint64
	explored []int

	iterations int
	state      State
	solved     int
}

// NewStepper seeds a search from start to goal. obstacles are shared
// read-only; mask selects which of them count for this connection.
func NewStepper(
	start geom.Point,
	goal geom.Point,
	obstacles []obstacle.Processed,
	mask obstacle.Mask,
	options ...Option,
) *Stepper {
	opts := DefaultOptions()
	for _, o := range options {
		o(&opts)
	}

	s := &Stepper{
		start:            start,
		goal:             goal,
		obstacles:        obstacles,
		mask:             mask,
		library:          opts.Library,
		greedyMultiplier: opts.GreedyMultiplier,
		maxIterations:    opts.MaxIterations,
		goalDistance:     geom.Distance(start, goal),
		openSet:          make(priorityQueue, 0),
		solved:           -1,
	}
	heap.Init(&s.openSet)

	// The seed is the straight segment itself. When it is already clear
	// the seed is a goal and the first step finishes the search.
	hit := obstacle.Intersects(start, goal, obstacles, mask)
	seg := newSegment(start, goal, hit, 0, 0)
	seed := ProjectedPattern{
		Parent:             -1,
		ParentSegmentIndex: -1,
		PatternsUsed:       map[string]int{},
	}
	if hit {
		seed.Unsolved = []Segment{seg}
	} else {
		seed.Solved = []Segment{seg}
	}
	s.push(seed)

	return s
}

func (s *Stepper) push(n ProjectedPattern) {
	s.nodes = append(s.nodes, n)
	heap.Push(&s.openSet, &queueItem{Node: len(s.nodes) - 1, FCost: n.F, Seq: s.seq})
	s.seq++
}

// Step advances the search by one node expansion and returns a snapshot.
// Once the search is done Step is a no-op.
func (s *Stepper) Step() StepSnapshot {
	if s.state.Done() {
		return s.snapshot(-1)
	}
	if s.openSet.Len() == 0 {
		s.state = Exhausted
		return s.snapshot(-1)
	}

	s.iterations++
	current := heap.Pop(&s.openSet).(*queueItem).Node
	s.explored = append(s.explored, current)

	if s.nodes[current].IsGoal() {
		s.state = Solved
		s.solved = current
		return s.snapshot(current)
	}

	for _, child := range s.expand(current) {
		s.push(child)
	}

	switch {
	case s.iterations >= s.maxIterations:
		s.state = BudgetExceeded
	case s.openSet.Len() == 0:
		s.state = Exhausted
	}
	return s.snapshot(current)
}

// Solve steps until the search reaches a terminal state and returns it.
func (s *Stepper) Solve() State {
	for !s.state.Done() {
		s.Step()
	}
	return s.state
}

func (s *Stepper) snapshot(current int) StepSnapshot {
	snap := StepSnapshot{
		Current:      current,
		State:        s.state,
		Done:         s.state.Done(),
		Found:        s.state == Solved,
		FrontierSize: s.openSet.Len(),
		StepIndex:    s.iterations,
	}
	if snap.Found {
		snap.Path = s.nodes[s.solved].Path()
	}
	return snap
}

// Snapshot reports the current search state without stepping.
func (s *Stepper) Snapshot() StepSnapshot { return s.snapshot(-1) }

// State returns the current search state.
func (s *Stepper) State() State { return s.state }

// Iterations returns how many nodes have been popped.
func (s *Stepper) Iterations() int { return s.iterations }

// SolvedNode returns the goal node once the search is Solved.
func (s *Stepper) SolvedNode() (*ProjectedPattern, bool) {
	if s.solved < 0 {
		return nil, false
	}
	return &s.nodes[s.solved], true
}

// Node returns the arena node at index i.
func (s *Stepper) Node(i int) *ProjectedPattern { return &s.nodes[i] }

// NodeCount returns the number of nodes created so far.
func (s *Stepper) NodeCount() int { return len(s.nodes) }

// Explored returns the arena indices of every popped node, in pop order.
func (s *Stepper) Explored() []int { return slices.Clone(s.explored) }

// Frontier returns the arena indices still waiting in the frontier,
// cheapest first.
func (s *Stepper) Frontier() []int {
	items := slices.Clone(s.openSet)
	slices.SortFunc(items, func(a, b *queueItem) int {
		return cmp.Or(cmp.Compare(a.FCost, b.FCost), cmp.Compare(a.Seq, b.Seq))
	})
	out := make([]int, len(items))
	for i, it := range items {
		out[i] = it.Node
	}
	return out
}

// Lineage returns the chain of arena indices from the seed to node i.
func (s *Stepper) Lineage(i int) []int {
	return internal.ReconstructPath(func(n int) int { return s.nodes[n].Parent }, i)
}

// Search runs a stepper for start→goal to completion.
func Search(
	start geom.Point,
	goal geom.Point,
	obstacles []obstacle.Processed,
	mask obstacle.Mask,
	options ...Option,
) Result {
	s := NewStepper(start, goal, obstacles, mask, options...)
	s.Solve()
	return s.result()
}

func (s *Stepper) result() Result {
	res := Result{
		State:      s.state,
		Iterations: s.iterations,
		Explored:   slices.Clone(s.explored),
		Solved:     s.solved,
		Nodes:      s.nodes,
	}
	if n, ok := s.SolvedNode(); ok {
		res.Path = n.Path()
	}
	return res
}
