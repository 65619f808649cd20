// Package pattern holds the detour shapes substituted for colliding
// segments, the projection that fits them onto a segment, and the immutable
// Library handed to a search.
package pattern

import (
	"github.com/pdrpinto/patternroute/geom"
)

// Pattern produces candidate point chains from a to b. It is implemented by
// Shape and by the parametrized 45° kinds in this package.
type Pattern interface {
	// Name identifies the pattern in usage tallies and library lookups.
	Name() string

	// Apply returns every feasible chain from a to b. Each chain starts at
	// exactly a, ends at exactly b and has no repeated consecutive points.
	// Infeasible variants are left out, so the result may be empty.
	Apply(a, b geom.Point) [][]geom.Point

	isPattern()
}

// Waypoint is a point in the normalized frame, where the segment runs from
// (0,0) to (1,0).
type Waypoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	L int     `json:"l"`
}

// Shape is a static pattern defined by normalized waypoints.
type Shape struct {
	Label  string
	Points []Waypoint
}

// NewShape copies pts into a new shape.
func NewShape(name string, pts ...Waypoint) Shape {
	return Shape{Label: name, Points: append([]Waypoint(nil), pts...)}
}

func (s Shape) Name() string { return s.Label }

func (s Shape) isPattern() {}

// Apply projects the shape onto a→b. A zero-length segment, or a shape that
// collapses to the straight segment, yields nothing.
func (s Shape) Apply(a, b geom.Point) [][]geom.Point {
	if a.X == b.X && a.Y == b.Y {
		return nil
	}
	chain := clean(Project(a, b, s.Points), a, b)
	if chain == nil {
		return nil
	}
	return [][]geom.Point{chain}
}

// Flip mirrors a shape across the segment (negates y) under a new name.
func Flip(s Shape, name string) Shape {
	pts := make([]Waypoint, len(s.Points))
	for i, p := range s.Points {
		pts[i] = Waypoint{X: p.X, Y: -p.Y, L: p.L}
	}
	return Shape{Label: name, Points: pts}
}

// Project scales and rotates normalized waypoints onto a→b. Waypoints at
// (0,0) and (1,0) land exactly on a and b. A zero-length segment has no
// direction, so the result is just [a, b].
func Project(a, b geom.Point, pts []Waypoint) []geom.Point {
	m, ok := projection(a, b)
	if !ok {
		return []geom.Point{a, b}
	}
	out := make([]geom.Point, len(pts))
	for i, w := range pts {
		switch {
		case w.X == 0 && w.Y == 0:
			out[i] = a
		case w.X == 1 && w.Y == 0:
			out[i] = b
		default:
			out[i] = apply(m, geom.Point{X: w.X, Y: w.Y, Layer: w.L})
		}
	}
	return out
}

// clean pins the chain ends to a and b and drops repeated points. Chains
// that reduce to the plain segment are infeasible and return nil.
func clean(chain []geom.Point, a, b geom.Point) []geom.Point {
	if len(chain) < 2 {
		return nil
	}
	chain[0], chain[len(chain)-1] = a, b

	out := chain[:1]
	for _, p := range chain[1:] {
		if geom.ApproxEqual(p, out[len(out)-1]) {
			continue
		}
		out = append(out, p)
	}
	// the chain ends at b, so the last kept point is b or within Epsilon of it
	out[len(out)-1] = b
	if len(out) <= 2 {
		return nil
	}
	return out
}
