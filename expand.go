package patternroute

import (
	"github.com/pdrpinto/patternroute/geom"
	"github.com/pdrpinto/patternroute/obstacle"
)

// expand substitutes every library pattern into every unsolved segment of
// the node at index parent and returns one child per feasible combination.
// The parent is left untouched.
func (s *Stepper) expand(parent int) []ProjectedPattern {
	pat := &s.nodes[parent]
	var children []ProjectedPattern

	for anchorIndex, anchor := range pat.Unsolved {
		for i := 0; i < s.library.Len(); i++ {
			p := s.library.At(i)
			for _, chain := range p.Apply(anchor.A, anchor.B) {
				child := s.substitute(pat, anchorIndex, chain)
				child.Parent = parent
				child.PatternsUsed[p.Name()]++
				children = append(children, child)
			}
		}
	}
	return children
}

// substitute builds the child of pat where the unsolved segment at
// anchorIndex is replaced by the legs of chain.
func (s *Stepper) substitute(pat *ProjectedPattern, anchorIndex int, chain []geom.Point) ProjectedPattern {
	anchor := pat.Unsolved[anchorIndex]
	legs := len(chain) - 1
	shift := legs - 1

	renumber := func(seg Segment) Segment {
		if seg.JumpsFromA > anchor.JumpsFromA {
			seg.JumpsFromA += shift
		}
		return seg
	}

	solved := make([]Segment, 0, len(pat.Solved)+legs)
	for _, seg := range pat.Solved {
		solved = append(solved, renumber(seg))
	}
	unsolved := make([]Segment, 0, len(pat.Unsolved)-1+legs)
	for i, seg := range pat.Unsolved {
		if i == anchorIndex {
			continue
		}
		unsolved = append(unsolved, renumber(seg))
	}

	for i := 0; i < legs; i++ {
		a, b := chain[i], chain[i+1]
		hit := obstacle.Intersects(a, b, s.obstacles, s.mask)
		seg := newSegment(a, b, hit, anchor.Depth+1, anchor.JumpsFromA+i)
		if hit {
			unsolved = append(unsolved, seg)
		} else {
			solved = append(solved, seg)
		}
	}

	child := ProjectedPattern{
		ParentSegmentIndex: anchorIndex,
		PatternsUsed:       pat.cloneUsage(),
		Solved:             solved,
		Unsolved:           unsolved,
	}
	s.score(&child)
	return child
}

// score fills G, H and F.
//
// G is the solved length. H charges each unsolved segment its own length
// plus the straight-line goal distance scaled up by depth, which steers the
// search away from ever more deeply nested detours.
func (s *Stepper) score(n *ProjectedPattern) {
	var g, h float64
	for _, seg := range n.Solved {
		g += seg.Distance
	}
	for _, seg := range n.Unsolved {
		h += seg.Distance + (1+float64(seg.Depth)/10)*s.goalDistance
	}
	n.G = g
	n.H = h
	n.F = g + h*s.greedyMultiplier
}
