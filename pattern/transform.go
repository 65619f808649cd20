package pattern

import (
	"golang.org/x/image/math/f64"

	"github.com/pdrpinto/patternroute/geom"
)

// apply maps p through the affine matrix m. The layer is kept.
func apply(m f64.Aff3, p geom.Point) geom.Point {
	return geom.Point{
		X:     m[0]*p.X + m[1]*p.Y + m[2],
		Y:     m[3]*p.X + m[4]*p.Y + m[5],
		Layer: p.Layer,
	}
}

// projection returns the matrix taking the normalized frame (A at (0,0),
// B at (1,0)) onto segment a→b. ok is false for a zero-length segment.
func projection(a, b geom.Point) (m f64.Aff3, ok bool) {
	unit, ortho, dist, ok := geom.Direction(a, b)
	if !ok {
		return f64.Aff3{}, false
	}
	return f64.Aff3{
		unit.X * dist, ortho.X * dist, a.X,
		unit.Y * dist, ortho.Y * dist, a.Y,
	}, true
}

// frame is an isometry relabeling a segment so that A is the origin and B
// lies in the first octant (dx >= dy >= 0). It only reflects axes and swaps
// them, so toWorld is its exact inverse.
type frame struct {
	toLocal f64.Aff3
	toWorld f64.Aff3
	b       geom.Point // B in local coordinates
}

func canonicalFrame(a, b geom.Point) (frame, bool) {
	dx, dy := b.X-a.X, b.Y-a.Y
	if dx == 0 && dy == 0 {
		return frame{}, false
	}

	sx, sy := 1.0, 1.0
	if dx < 0 {
		sx = -1
	}
	if dy < 0 {
		sy = -1
	}

	// linear part as rows [m00 m01; m10 m11]
	m00, m01, m10, m11 := sx, 0.0, 0.0, sy
	if dy*sy > dx*sx {
		m00, m01, m10, m11 = 0, sy, sx, 0
	}

	var f frame
	f.toLocal = f64.Aff3{
		m00, m01, -(m00*a.X + m01*a.Y),
		m10, m11, -(m10*a.X + m11*a.Y),
	}
	// orthogonal, so the inverse of the linear part is its transpose
	f.toWorld = f64.Aff3{
		m00, m10, a.X,
		m01, m11, a.Y,
	}
	f.b = apply(f.toLocal, b)
	return f, true
}
