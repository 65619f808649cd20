// Package geom provides the point and vector arithmetic used by the router.
package geom

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/spatial/r2"
)

// Epsilon is the absolute tolerance used when comparing coordinates.
const Epsilon = 1e-9

// Point is a routing point. Layer is always 0 while routing is single layer.
type Point struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Layer int     `json:"l"`
}

// Pt builds a point on layer 0.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Vec returns p as a gonum vector.
func (p Point) Vec() r2.Vec {
	return r2.Vec{X: p.X, Y: p.Y}
}

// FromVec converts v back into a point on the given layer.
func FromVec(v r2.Vec, layer int) Point {
	return Point{X: v.X, Y: v.Y, Layer: layer}
}

// Distance returns the Euclidean distance between a and b.
func Distance(a, b Point) float64 {
	return r2.Norm(r2.Sub(b.Vec(), a.Vec()))
}

// Direction returns the unit vector pointing from a to b, its perpendicular
// (rotated +90°) and the length of a→b. For a zero-length segment both
// vectors are zero and ok is false.
func Direction(a, b Point) (unit, ortho r2.Vec, dist float64, ok bool) {
	d := r2.Sub(b.Vec(), a.Vec())
	dist = r2.Norm(d)
	if dist == 0 || math.IsNaN(dist) {
		return r2.Vec{}, r2.Vec{}, 0, false
	}
	unit = r2.Unit(d)
	ortho = r2.Vec{X: -unit.Y, Y: unit.X}
	return unit, ortho, dist, true
}

// ApproxEqual reports whether a and b are the same point within Epsilon.
func ApproxEqual(a, b Point) bool {
	return a.Layer == b.Layer &&
		scalar.EqualWithinAbs(a.X, b.X, Epsilon) &&
		scalar.EqualWithinAbs(a.Y, b.Y, Epsilon)
}

// PathLength sums the lengths of consecutive legs of pts.
func PathLength(pts []Point) float64 {
	var total float64
	for i := 1; i < len(pts); i++ {
		total += Distance(pts[i-1], pts[i])
	}
	return total
}

// Finite reports whether both coordinates are finite numbers.
func (p Point) Finite() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) &&
		!math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}
