package pattern

import (
	"math"
	"testing"

	"github.com/pdrpinto/patternroute/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var segments = []struct {
	name string
	a, b geom.Point
}{
	{"east", geom.Pt(0, 0), geom.Pt(4, 0)},
	{"west", geom.Pt(2.5, 0), geom.Pt(-3.5, 0)},
	{"north", geom.Pt(1, -1), geom.Pt(1, 5)},
	{"south", geom.Pt(-2, 3), geom.Pt(-2, -1)},
	{"shallow", geom.Pt(0, 0), geom.Pt(4, 1)},
	{"steep", geom.Pt(0, 0), geom.Pt(1, 3)},
	{"south west", geom.Pt(3, 2), geom.Pt(-1, -0.5)},
	{"north west steep", geom.Pt(3, -2), geom.Pt(2, 4)},
	{"diagonal", geom.Pt(0, 0), geom.Pt(2, 2)},
}

func TestProject_EndpointFidelity(t *testing.T) {
	for _, seg := range segments {
		for _, p := range Extended().Patterns() {
			s := p.(Shape)
			pts := Project(seg.a, seg.b, s.Points)
			require.Len(t, pts, len(s.Points))
			assert.True(t, geom.ApproxEqual(seg.a, pts[0]), "%s/%s start %v", seg.name, s.Label, pts[0])
			assert.True(t, geom.ApproxEqual(seg.b, pts[len(pts)-1]), "%s/%s end %v", seg.name, s.Label, pts[len(pts)-1])
		}
	}
}

func TestProject_ScaleInvariance(t *testing.T) {
	a, b := geom.Pt(1, 2), geom.Pt(4, 6)
	for _, k := range []float64{0.1, 2.5, 17} {
		scaled := geom.Pt(a.X+k*(b.X-a.X), a.Y+k*(b.Y-a.Y))
		for _, p := range Named().Patterns() {
			s := p.(Shape)
			base := Project(a, b, s.Points)
			big := Project(a, scaled, s.Points)
			for i := range base {
				want := k * geom.Distance(a, base[i])
				assert.InDelta(t, want, geom.Distance(a, big[i]), 1e-9*math.Max(1, want), "%s waypoint %d k=%v", s.Label, i, k)
			}
		}
	}
}

func TestProject_Rotation(t *testing.T) {
	// wideArrow onto a westward segment bends to the right of travel
	pts := Project(geom.Pt(2.5, 0), geom.Pt(-3.5, 0), WideArrow().Points)
	require.Len(t, pts, 3)
	assert.InDelta(t, -0.5, pts[1].X, geom.Epsilon)
	assert.InDelta(t, -2.0, pts[1].Y, geom.Epsilon)
}

func TestProject_ZeroLength(t *testing.T) {
	a := geom.Pt(1, 1)
	pts := Project(a, a, WideArrow().Points)
	assert.Equal(t, []geom.Point{a, a}, pts)
	assert.Empty(t, WideArrow().Apply(a, a))
}

func TestApply_ChainsAreWellFormed(t *testing.T) {
	for _, seg := range segments {
		for _, p := range All().Patterns() {
			for _, chain := range p.Apply(seg.a, seg.b) {
				require.GreaterOrEqual(t, len(chain), 3, "%s/%s", seg.name, p.Name())
				assert.Equal(t, seg.a, chain[0], "%s/%s start", seg.name, p.Name())
				assert.Equal(t, seg.b, chain[len(chain)-1], "%s/%s end", seg.name, p.Name())
				for i, pt := range chain {
					assert.True(t, pt.Finite(), "%s/%s point %d", seg.name, p.Name(), i)
					if i > 0 {
						assert.False(t, geom.ApproxEqual(chain[i-1], pt), "%s/%s repeats point %d", seg.name, p.Name(), i)
					}
				}
			}
		}
	}
}

func TestApply_StraightLineIsNeverACandidate(t *testing.T) {
	assert.Empty(t, StraightLine().Apply(geom.Pt(0, 0), geom.Pt(3, 1)))
}

func assert45(t *testing.T, chain []geom.Point) {
	t.Helper()
	for i := 1; i < len(chain); i++ {
		dx := math.Abs(chain[i].X - chain[i-1].X)
		dy := math.Abs(chain[i].Y - chain[i-1].Y)
		assert.InDelta(t, dx, dy, 1e-9, "leg %d of %v is not at 45°", i, chain)
	}
}

func TestCorner45(t *testing.T) {
	chains := NewCorner45().Apply(geom.Pt(0, 0), geom.Pt(4, 2))
	require.Len(t, chains, 2)
	assert.True(t, geom.ApproxEqual(geom.Pt(3, 3), chains[0][1]))
	assert.True(t, geom.ApproxEqual(geom.Pt(1, -1), chains[1][1]))
	for _, c := range chains {
		assert45(t, c)
	}
}

func TestCorner45_AnyOrientation(t *testing.T) {
	for _, seg := range segments {
		for _, c := range NewCorner45().Apply(seg.a, seg.b) {
			assert45(t, c)
		}
	}
}

func TestCorner45_InfeasibleOnDiagonal(t *testing.T) {
	assert.Empty(t, NewCorner45().Apply(geom.Pt(0, 0), geom.Pt(2, 2)))
}

func TestGapAndCorner45_InfeasibleOnAxis(t *testing.T) {
	assert.Empty(t, NewGapAndCorner45().Apply(geom.Pt(0, 0), geom.Pt(5, 0)))
	assert.Empty(t, NewGapAndCorner45().Apply(geom.Pt(0, 0), geom.Pt(0, -5)))
	assert.Len(t, NewGapAndCorner45().Apply(geom.Pt(0, 0), geom.Pt(5, 2)), 4)
}

func TestGapAndCorner45_Shape(t *testing.T) {
	chains := GapAndCorner45{Variants: []GapAndCorner45Variant{{CornerSizeFraction: 0.5}}}.Apply(geom.Pt(0, 0), geom.Pt(6, 2))
	require.Len(t, chains, 1)
	want := []geom.Point{geom.Pt(0, 0), geom.Pt(5, 0), geom.Pt(6, 1), geom.Pt(6, 2)}
	require.Len(t, chains[0], len(want))
	for i := range want {
		assert.True(t, geom.ApproxEqual(want[i], chains[0][i]), "point %d: %v", i, chains[0][i])
	}
}

func TestDoubleBend45_PlateauMustFit(t *testing.T) {
	// dx-dy = 1, so only the 1/6 plateau (0.67) fits, once per direction
	chains := NewDoubleBend45().Apply(geom.Pt(0, 0), geom.Pt(4, 3))
	require.Len(t, chains, 2)
	for _, c := range chains {
		assert.Len(t, c, 4)
		assert.InDelta(t, 4.0/6, math.Abs(c[2].X-c[1].X), 1e-9)
	}
}

func TestSquareCorner45_ChamferBand(t *testing.T) {
	v := SquareCorner45{Variants: []SquareCorner45Variant{{Dir: 1, HeightFraction: 0.5, CornerFraction: 0.5}}}
	// height 4, chamfer 2: dy in (4, 6) has no room for the last corner
	assert.Empty(t, v.Apply(geom.Pt(0, 0), geom.Pt(8, 5)))
	assert.Len(t, v.Apply(geom.Pt(0, 0), geom.Pt(8, 1)), 1)
	assert.Len(t, v.Apply(geom.Pt(0, 0), geom.Pt(8, 7)), 1)
}

func TestSquareCorner45_MirroredVariant(t *testing.T) {
	up := SquareCorner45{Variants: []SquareCorner45Variant{{Dir: 1, HeightFraction: 0.5, CornerFraction: 0.25}}}
	down := SquareCorner45{Variants: []SquareCorner45Variant{{Dir: -1, HeightFraction: 0.5, CornerFraction: 0.25}}}
	a, b := geom.Pt(0, 0), geom.Pt(8, 0)

	u := up.Apply(a, b)
	d := down.Apply(a, b)
	require.Len(t, u, 1)
	require.Len(t, d, 1)
	assert.InDelta(t, 4.0, u[0][3].Y, 1e-9)
	assert.InDelta(t, -4.0, d[0][3].Y, 1e-9)
}

func TestCanonicalFrame_RoundTrip(t *testing.T) {
	probe := geom.Pt(0.7, -1.3)
	for _, seg := range segments {
		f, ok := canonicalFrame(seg.a, seg.b)
		require.True(t, ok)
		assert.GreaterOrEqual(t, f.b.X, f.b.Y, seg.name)
		assert.GreaterOrEqual(t, f.b.Y, 0.0, seg.name)
		assert.True(t, geom.ApproxEqual(probe, apply(f.toWorld, apply(f.toLocal, probe))), seg.name)
		assert.True(t, geom.ApproxEqual(seg.b, apply(f.toWorld, f.b)), seg.name)
		assert.InDelta(t, geom.Distance(seg.a, seg.b), geom.Distance(geom.Pt(0, 0), f.b), 1e-9, seg.name)
	}

	_, ok := canonicalFrame(geom.Pt(1, 1), geom.Pt(1, 1))
	assert.False(t, ok)
}

func TestFlip(t *testing.T) {
	s := flipped(WideArrow())
	assert.Equal(t, "flippedWideArrow", s.Name())
	assert.Equal(t, -1.0/3, s.Points[1].Y)
	assert.Equal(t, 1.0/3, WideArrow().Points[1].Y, "flip must not touch the source shape")
}

func TestLibrary(t *testing.T) {
	lib := SingleLayer()
	assert.Equal(t, []string{
		"wideArrow", "flippedWideArrow",
		"doubleBend", "flippedDoubleBend",
		"ultraWideArrow", "flippedUltraWideArrow",
	}, lib.Names())

	sub, err := lib.Select("doubleBend", "wideArrow")
	require.NoError(t, err)
	assert.Equal(t, []string{"doubleBend", "wideArrow"}, sub.Names())
	assert.Equal(t, 6, lib.Len(), "select must not change the source library")

	_, err = lib.Select("nope")
	assert.ErrorIs(t, err, ErrUnknownPattern)

	p, ok := All().Lookup("squareCorner45")
	require.True(t, ok)
	assert.IsType(t, SquareCorner45{}, p)

	ps := lib.Patterns()
	ps[0] = Overshoot45{}
	assert.Equal(t, "wideArrow", lib.At(0).Name(), "Patterns returns a copy")
}

func TestNamedCatalog(t *testing.T) {
	names := Named().Names()
	assert.Equal(t, "straightLinePattern", names[0])
	assert.Contains(t, names, "flippedArrow4")
	assert.Contains(t, names, "flippedHardLeft")
	assert.Len(t, names, 23)
	assert.Len(t, Extended().Names(), 23+8+6)
}
