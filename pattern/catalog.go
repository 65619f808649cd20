package pattern

import (
	"fmt"
	"strings"
)

func wp(x, y float64) Waypoint { return Waypoint{X: x, Y: y} }

// Every constructor below builds fresh slices, so libraries never share
// mutable state.

// StraightLine is the plain segment from A to B.
func StraightLine() Shape { return NewShape("straightLinePattern", wp(0, 0), wp(1, 0)) }

// WideArrow bends once, a third of the length off the segment at its middle.
func WideArrow() Shape { return NewShape("wideArrow", wp(0, 0), wp(1.0/2, 1.0/3), wp(1, 0)) }

// UltraWideArrow is a shallow WideArrow, an eighth of the length high.
func UltraWideArrow() Shape { return NewShape("ultraWideArrow", wp(0, 0), wp(1.0/2, 1.0/8), wp(1, 0)) }

// AsymmetricSharpArrow peaks early and high, two thirds of the length off
// the segment a third of the way along.
func AsymmetricSharpArrow() Shape {
	return NewShape("asymmetricSharpArrow", wp(0, 0), wp(1.0/3, 2.0/3), wp(1, 0))
}

// DoubleBend steps off the segment, runs parallel to it and steps back.
func DoubleBend() Shape {
	return NewShape("doubleBend", wp(0, 0), wp(1.0/4, 1.0/3), wp(3.0/4, 1.0/3), wp(1, 0))
}

// HardLeft leaves A perpendicular to the segment and cuts back to B.
func HardLeft() Shape { return NewShape("hardLeft", wp(0, 0), wp(0, 1.0/3), wp(1, 0)) }

// Overtake1 runs past B and comes back to it.
func Overtake1() Shape { return NewShape("overtake1", wp(0, 0), wp(1.25, 0.25), wp(1, 0)) }

// Overtake2 is a square detour: up, across and down onto B.
func Overtake2() Shape {
	return NewShape("overtake2", wp(0, 0), wp(0, 0.5), wp(1, 0.5), wp(1, 0))
}

// Arrow1 is a tall arrow, as high as the segment is long.
func Arrow1() Shape { return NewShape("arrow1", wp(0, 0), wp(1.0/2, 1), wp(1, 0)) }

// Arrow2 is a tall arrow that overshoots B before returning.
func Arrow2() Shape {
	return NewShape("arrow2", wp(0, 0), wp(1.0/2, 1), wp(1.5, 0.5), wp(1, 0))
}

// Arrow3 climbs to a plateau past B and drops back onto it.
func Arrow3() Shape {
	return NewShape("arrow3", wp(0, 0), wp(0.5, 1), wp(1.5, 1), wp(1.5, 0.25), wp(1, 0))
}

// Arrow4 loops behind A, over the segment and back down past B.
func Arrow4() Shape {
	return NewShape("arrow4",
		wp(0, 0), wp(-0.5, 0.25), wp(-0.5, 1.5), wp(1.5, 1.5), wp(1.5, 1.5), wp(1.5, 0.25), wp(1, 0))
}

// flipped names a mirror image the way the catalog does: "wideArrow"
// becomes "flippedWideArrow".
func flipped(s Shape) Shape {
	name := s.Label
	if name != "" {
		name = "flipped" + strings.ToUpper(name[:1]) + name[1:]
	}
	return Flip(s, name)
}

// WideArrowVariants are wideArrow at heights 1/16, 1/8, 1/4 and 1/2, with
// their mirror images.
func WideArrowVariants() []Shape {
	var out []Shape
	for _, h := range []struct {
		label string
		y     float64
	}{{"1/16", 1.0 / 16}, {"1/8", 1.0 / 8}, {"1/4", 1.0 / 4}, {"1/2", 1.0 / 2}} {
		s := NewShape(fmt.Sprintf("wideArrow[%s]", h.label), wp(0, 0), wp(1.0/2, h.y), wp(1, 0))
		out = append(out, s, Flip(s, fmt.Sprintf("flippedWideArrow[%s]", h.label)))
	}
	return out
}

// DoubleBendVariants are doubleBend at heights 1/16, 1/8 and 1/4, with their
// mirror images.
func DoubleBendVariants() []Shape {
	var out []Shape
	for _, h := range []struct {
		label string
		y     float64
	}{{"1/16", 1.0 / 16}, {"1/8", 1.0 / 8}, {"1/4", 1.0 / 4}} {
		s := NewShape(fmt.Sprintf("doubleBend[%s]", h.label), wp(0, 0), wp(1.0/4, h.y), wp(3.0/4, h.y), wp(1, 0))
		out = append(out, s, Flip(s, fmt.Sprintf("flippedDoubleBend[%s]", h.label)))
	}
	return out
}

// SingleLayer is the default library: wide arrow, double bend and ultra
// wide arrow, each with its mirror image. The straight line is left out
// because the seed segment already is one.
func SingleLayer() Library {
	wa, db, uwa := WideArrow(), DoubleBend(), UltraWideArrow()
	return NewLibrary(wa, flipped(wa), db, flipped(db), uwa, flipped(uwa))
}

// Named holds every named static shape.
func Named() Library {
	var out []Pattern
	for _, s := range []Shape{
		WideArrow(), UltraWideArrow(), DoubleBend(), HardLeft(), AsymmetricSharpArrow(),
		Overtake1(), Overtake2(), Arrow1(), Arrow2(), Arrow3(), Arrow4(),
	} {
		out = append(out, s, flipped(s))
	}
	return NewLibrary(append([]Pattern{StraightLine()}, out...)...)
}

// Extended is Named plus the wide arrow and double bend height variants.
func Extended() Library {
	lib := Named()
	for _, s := range WideArrowVariants() {
		lib = lib.With(s)
	}
	for _, s := range DoubleBendVariants() {
		lib = lib.With(s)
	}
	return lib
}

// FortyFive holds the parametrized kinds producing 45° routing.
func FortyFive() Library {
	return NewLibrary(NewCorner45(), NewDoubleBend45(), NewSquareCorner45(), NewGapAndCorner45())
}

// All holds every pattern the package defines.
func All() Library {
	return Extended().With(NewCorner45(), NewDoubleBend45(), NewSquareCorner45(), NewGapAndCorner45(), Overshoot45{})
}
