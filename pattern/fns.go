package pattern

import (
	"math"

	"github.com/pdrpinto/patternroute/geom"
)

// The parametrized kinds below compute their chain in a canonical frame
// where A is the origin and B = (dx, dy) with dx >= dy >= 0, then map the
// result back. Each kind carries its own typed variants; a variant whose
// geometry does not fit the segment contributes nothing.

// localShape builds a chain in the canonical frame from (0,0) to (dx,dy),
// or returns nil when it does not fit.
type localShape func(dx, dy float64) []geom.Point

func applyLocal(a, b geom.Point, shape localShape) []geom.Point {
	f, ok := canonicalFrame(a, b)
	if !ok {
		return nil
	}
	local := shape(f.b.X, f.b.Y)
	if local == nil {
		return nil
	}
	world := make([]geom.Point, len(local))
	for i, p := range local {
		world[i] = apply(f.toWorld, p)
	}
	return clean(world, a, b)
}

func collect(a, b geom.Point, n int, variant func(i int) localShape) [][]geom.Point {
	var out [][]geom.Point
	for i := 0; i < n; i++ {
		if chain := applyLocal(a, b, variant(i)); chain != nil {
			out = append(out, chain)
		}
	}
	return out
}

// mirrorThroughMidpoint rotates a local chain 180° about the segment
// midpoint and reverses it, so it still runs from (0,0) to (dx,dy) but
// bends to the other side.
func mirrorThroughMidpoint(pts []geom.Point, dx, dy float64) []geom.Point {
	out := make([]geom.Point, len(pts))
	for i, p := range pts {
		out[len(pts)-1-i] = geom.Pt(dx-p.X, dy-p.Y)
	}
	return out
}

// GapAndCorner45Variant sizes the 45° corner as a fraction of the shorter
// side of the segment's bounding box.
type GapAndCorner45Variant struct {
	CornerSizeFraction float64
}

// GapAndCorner45 runs straight along the long axis, then cuts a 45° corner
// up to B's row or column.
type GapAndCorner45 struct {
	Variants []GapAndCorner45Variant
}

// NewGapAndCorner45 returns the kind with its standard variants.
func NewGapAndCorner45() GapAndCorner45 {
	return GapAndCorner45{Variants: []GapAndCorner45Variant{
		{CornerSizeFraction: 1.0 / 2},
		{CornerSizeFraction: 1.0 / 3},
		{CornerSizeFraction: 2.0 / 3},
		{CornerSizeFraction: 9.0 / 10},
	}}
}

func (GapAndCorner45) Name() string { return "gapAndCorner45" }

func (GapAndCorner45) isPattern() {}

func (g GapAndCorner45) Apply(a, b geom.Point) [][]geom.Point {
	return collect(a, b, len(g.Variants), func(i int) localShape {
		v := g.Variants[i]
		return func(dx, dy float64) []geom.Point {
			corner := math.Min(dx, dy) * v.CornerSizeFraction
			if corner <= 0 || corner > dy {
				return nil
			}
			return []geom.Point{
				geom.Pt(0, 0),
				geom.Pt(dx-corner, 0),
				geom.Pt(dx, corner),
				geom.Pt(dx, dy),
			}
		}
	})
}

// Overshoot45 climbs at 45° to half the segment's length, then comes back
// at 45° to B's row and finishes straight.
type Overshoot45 struct{}

func (Overshoot45) Name() string { return "overshoot45" }

func (Overshoot45) isPattern() {}

func (Overshoot45) Apply(a, b geom.Point) [][]geom.Point {
	chain := applyLocal(a, b, func(dx, dy float64) []geom.Point {
		up := dx / 2
		return []geom.Point{
			geom.Pt(0, 0),
			geom.Pt(up, up),
			geom.Pt(up+math.Abs(dy-up), dy),
			geom.Pt(dx, dy),
		}
	})
	if chain == nil {
		return nil
	}
	return [][]geom.Point{chain}
}

// Corner45Variant picks the side of the corner: +1 above the segment in the
// canonical frame, -1 below.
type Corner45Variant struct {
	Dir int
}

// Corner45 replaces the segment by two legs at ±45°.
type Corner45 struct {
	Variants []Corner45Variant
}

// NewCorner45 returns the kind with both directions.
func NewCorner45() Corner45 {
	return Corner45{Variants: []Corner45Variant{{Dir: 1}, {Dir: -1}}}
}

func (Corner45) Name() string { return "corner45" }

func (Corner45) isPattern() {}

func (c Corner45) Apply(a, b geom.Point) [][]geom.Point {
	return collect(a, b, len(c.Variants), func(i int) localShape {
		v := c.Variants[i]
		return func(dx, dy float64) []geom.Point {
			var corner geom.Point
			if v.Dir >= 0 {
				corner = geom.Pt((dx+dy)/2, (dx+dy)/2)
			} else {
				corner = geom.Pt((dx-dy)/2, -(dx-dy)/2)
			}
			return []geom.Point{geom.Pt(0, 0), corner, geom.Pt(dx, dy)}
		}
	})
}

// DoubleBend45Variant picks the side and the plateau length as a fraction
// of the segment's long side.
type DoubleBend45Variant struct {
	Dir              int
	BendSizeFraction float64
}

// DoubleBend45 is a Corner45 with its apex cut flat.
type DoubleBend45 struct {
	Variants []DoubleBend45Variant
}

// NewDoubleBend45 returns the kind with its standard variants.
func NewDoubleBend45() DoubleBend45 {
	return DoubleBend45{Variants: []DoubleBend45Variant{
		{Dir: 1, BendSizeFraction: 1.0 / 2},
		{Dir: -1, BendSizeFraction: 1.0 / 2},
		{Dir: 1, BendSizeFraction: 2.0 / 3},
		{Dir: -1, BendSizeFraction: 2.0 / 3},
		{Dir: 1, BendSizeFraction: 1.0 / 6},
		{Dir: -1, BendSizeFraction: 1.0 / 6},
	}}
}

func (DoubleBend45) Name() string { return "doubleBend45" }

func (DoubleBend45) isPattern() {}

func (d DoubleBend45) Apply(a, b geom.Point) [][]geom.Point {
	return collect(a, b, len(d.Variants), func(i int) localShape {
		v := d.Variants[i]
		return func(dx, dy float64) []geom.Point {
			plateau := v.BendSizeFraction * dx
			// both 45° legs must still move towards B
			if plateau <= 0 || plateau > dx-dy {
				return nil
			}
			half := plateau / 2
			if v.Dir >= 0 {
				cx := (dx + dy) / 2
				y := cx - half
				return []geom.Point{geom.Pt(0, 0), geom.Pt(cx-half, y), geom.Pt(cx+half, y), geom.Pt(dx, dy)}
			}
			cx := (dx - dy) / 2
			y := -cx + half
			return []geom.Point{geom.Pt(0, 0), geom.Pt(cx-half, y), geom.Pt(cx+half, y), geom.Pt(dx, dy)}
		}
	})
}

// SquareCorner45Variant picks the side, the plateau height as a fraction of
// the segment's long side, and the chamfer size as a fraction of that
// height.
type SquareCorner45Variant struct {
	Dir            int
	HeightFraction float64
	CornerFraction float64
}

// SquareCorner45 rises perpendicular from A to a plateau with chamfered
// corners, crosses over and drops onto B.
type SquareCorner45 struct {
	Variants []SquareCorner45Variant
}

// NewSquareCorner45 returns the kind with its standard variants.
func NewSquareCorner45() SquareCorner45 {
	return SquareCorner45{Variants: []SquareCorner45Variant{
		{Dir: 1, HeightFraction: 1.0 / 2, CornerFraction: 1.0 / 4},
		{Dir: -1, HeightFraction: 1.0 / 2, CornerFraction: 1.0 / 4},
		{Dir: 1, HeightFraction: 1.0 / 4, CornerFraction: 1.0 / 4},
		{Dir: -1, HeightFraction: 1.0 / 4, CornerFraction: 1.0 / 4},
		{Dir: 1, HeightFraction: 1.0 / 2, CornerFraction: 1.0 / 2},
		{Dir: -1, HeightFraction: 1.0 / 2, CornerFraction: 1.0 / 2},
		{Dir: 1, HeightFraction: 3.0 / 4, CornerFraction: 1.0 / 2},
		{Dir: -1, HeightFraction: 3.0 / 4, CornerFraction: 1.0 / 2},
	}}
}

func (SquareCorner45) Name() string { return "squareCorner45" }

func (SquareCorner45) isPattern() {}

func (s SquareCorner45) Apply(a, b geom.Point) [][]geom.Point {
	return collect(a, b, len(s.Variants), func(i int) localShape {
		v := s.Variants[i]
		return func(dx, dy float64) []geom.Point {
			height := dx * v.HeightFraction
			corner := height * v.CornerFraction
			if corner <= 0 || dx-corner < corner {
				return nil
			}
			// B inside the chamfer band leaves no room for the last corner
			if dy > height && dy < height+corner {
				return nil
			}
			bCornerDir := 1.0
			if dy > height {
				bCornerDir = -1
			}
			pts := []geom.Point{
				geom.Pt(0, 0),
				geom.Pt(0, height-corner),
				geom.Pt(corner, height),
				geom.Pt(dx-corner, height),
				geom.Pt(dx, height-corner*bCornerDir),
				geom.Pt(dx, dy),
			}
			if v.Dir < 0 {
				return mirrorThroughMidpoint(pts, dx, dy)
			}
			return pts
		}
	})
}
