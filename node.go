package patternroute

import (
	"maps"
	"slices"

	"github.com/pdrpinto/patternroute/geom"
)

// Segment is one straight leg of a candidate path.
type Segment struct {
	A            geom.Point `json:"A"`
	B            geom.Point `json:"B"`
	HasCollision bool       `json:"hasCollision"`
	Distance     float64    `json:"distance"`
	// Depth counts how many substitutions produced this segment.
	Depth int `json:"depth"`
	// JumpsFromA is the segment's position along the path, counted from
	// the connection start.
	JumpsFromA int `json:"jumpsFromA"`
}

func newSegment(a, b geom.Point, hasCollision bool, depth, jumps int) Segment {
	return Segment{
		A:            a,
		B:            b,
		HasCollision: hasCollision,
		Distance:     geom.Distance(a, b),
		Depth:        depth,
		JumpsFromA:   jumps,
	}
}

// ProjectedPattern is a search node: a candidate path split into
// collision-free and colliding segments. Nodes live in the Stepper's arena
// and refer to their parent by index.
type ProjectedPattern struct {
	// Parent is the arena index of the node this one was expanded from, or
	// -1 for the seed.
	Parent int `json:"parent"`
	// ParentSegmentIndex is the index in the parent's Unsolved slice of the
	// segment this node replaced, or -1 for the seed.
	ParentSegmentIndex int `json:"parentSegmentIndex"`

	PatternsUsed map[string]int `json:"patternDefinitionsUsed"`

	Solved   []Segment `json:"solvedSegments"`
	Unsolved []Segment `json:"unsolvedSegments"`

	// G is the length of the solved segments.
	G float64 `json:"g"`
	// H estimates what resolving the unsolved segments will cost.
	H float64 `json:"h"`
	// F is G + H weighted by the greedy multiplier.
	F float64 `json:"f"`
}

// IsGoal reports whether no colliding segment remains.
func (n *ProjectedPattern) IsGoal() bool {
	return len(n.Unsolved) == 0
}

// Segments returns every segment of the node in path order.
func (n *ProjectedPattern) Segments() []Segment {
	all := make([]Segment, 0, len(n.Solved)+len(n.Unsolved))
	all = append(all, n.Solved...)
	all = append(all, n.Unsolved...)
	slices.SortFunc(all, func(a, b Segment) int { return a.JumpsFromA - b.JumpsFromA })
	return all
}

// Path flattens the node's segments in path order into the points a wire
// passes through.
func (n *ProjectedPattern) Path() []geom.Point {
	segs := n.Segments()
	if len(segs) == 0 {
		return nil
	}
	pts := make([]geom.Point, 0, len(segs)+1)
	pts = append(pts, segs[0].A)
	for _, s := range segs {
		pts = append(pts, s.B)
	}
	return pts
}

// UsageCount returns how many times the named pattern was substituted on the
// way to this node.
func (n *ProjectedPattern) UsageCount(name string) int {
	return n.PatternsUsed[name]
}

func (n *ProjectedPattern) cloneUsage() map[string]int {
	if n.PatternsUsed == nil {
		return make(map[string]int, 1)
	}
	return maps.Clone(n.PatternsUsed)
}
