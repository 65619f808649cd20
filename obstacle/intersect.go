package obstacle

import (
	"math"

	"github.com/pdrpinto/patternroute/geom"
)

// Intersects reports whether segment a→b touches any relevant obstacle.
//
// Rectangles are closed, so grazing an edge or a corner is a collision. A
// zero-length segment is treated as a point and collides only when it lies
// inside a relevant rectangle.
func Intersects(a, b geom.Point, obstacles []Processed, mask Mask) bool {
	// clip from a fixed endpoint so a→b and b→a round the same way
	if b.X < a.X || (b.X == a.X && b.Y < a.Y) {
		a, b = b, a
	}
	minX, maxX := math.Min(a.X, b.X), math.Max(a.X, b.X)
	minY, maxY := math.Min(a.Y, b.Y), math.Max(a.Y, b.Y)

	for i := range obstacles {
		if !mask.Relevant(i) {
			continue
		}
		obs := &obstacles[i]

		// Quick AABB rejection
		if maxX < obs.Left || minX > obs.Right || maxY < obs.Top || minY > obs.Bottom {
			continue
		}

		if clipSegment(a, b, obs) {
			return true
		}
	}
	return false
}

// IntersectsAny is Intersects with every obstacle relevant.
func IntersectsAny(a, b geom.Point, obstacles []Processed) bool {
	return Intersects(a, b, obstacles, All(len(obstacles)))
}

// clipSegment runs a Liang–Barsky clip of a→b against the rectangle and
// reports whether any part of the segment survives.
func clipSegment(a, b geom.Point, obs *Processed) bool {
	dx, dy := b.X-a.X, b.Y-a.Y
	p := [4]float64{-dx, dx, -dy, dy}
	q := [4]float64{a.X - obs.Left, obs.Right - a.X, a.Y - obs.Top, obs.Bottom - a.Y}

	t0, t1 := 0.0, 1.0
	for i := 0; i < 4; i++ {
		if p[i] == 0 {
			// parallel to this edge: inside its half-plane or never
			if q[i] < 0 {
				return false
			}
			continue
		}
		r := q[i] / p[i]
		if p[i] < 0 {
			if r > t1 {
				return false
			}
			if r > t0 {
				t0 = r
			}
		} else {
			if r < t0 {
				return false
			}
			if r < t1 {
				t1 = r
			}
		}
	}
	return t0 <= t1
}
