// Package obstacle preprocesses rectangular obstacles and tests segments
// against them.
package obstacle

import (
	"slices"

	"github.com/pdrpinto/patternroute/geom"
)

// Obstacle is a raw rectangle as described by the circuit.
type Obstacle struct {
	Type        string     `json:"type,omitempty"`
	Layers      []string   `json:"layers,omitempty"`
	Center      geom.Point `json:"center"`
	Width       float64    `json:"width"`
	Height      float64    `json:"height"`
	ConnectedTo []string   `json:"connectedTo"`
}

// Processed is the precomputed bounding form of an Obstacle. Top is the
// minimum y and Bottom the maximum y.
type Processed struct {
	Center      geom.Point
	Width       float64
	Height      float64
	HalfWidth   float64
	HalfHeight  float64
	Left        float64
	Right       float64
	Top         float64
	Bottom      float64
	ConnectedTo []string
}

// Preprocess derives the bounding form of every obstacle.
func Preprocess(obstacles []Obstacle) []Processed {
	out := make([]Processed, len(obstacles))
	for i, obs := range obstacles {
		hw, hh := obs.Width/2, obs.Height/2
		out[i] = Processed{
			Center:      geom.Pt(obs.Center.X, obs.Center.Y),
			Width:       obs.Width,
			Height:      obs.Height,
			HalfWidth:   hw,
			HalfHeight:  hh,
			Left:        obs.Center.X - hw,
			Right:       obs.Center.X + hw,
			Top:         obs.Center.Y - hh,
			Bottom:      obs.Center.Y + hh,
			ConnectedTo: obs.ConnectedTo,
		}
	}
	return out
}

// Contains reports whether p lies inside the closed rectangle.
func (o Processed) Contains(p geom.Point) bool {
	return p.X >= o.Left && p.X <= o.Right && p.Y >= o.Top && p.Y <= o.Bottom
}

// Mask marks which processed obstacles are relevant to a search.
type Mask []bool

// MaskFor returns the mask for the named connection: an obstacle is relevant
// unless the connection is listed in its ConnectedTo.
func MaskFor(obstacles []Processed, connection string) Mask {
	mask := make(Mask, len(obstacles))
	for i, obs := range obstacles {
		mask[i] = !slices.Contains(obs.ConnectedTo, connection)
	}
	return mask
}

// All returns a mask with every one of n obstacles relevant.
func All(n int) Mask {
	mask := make(Mask, n)
	for i := range mask {
		mask[i] = true
	}
	return mask
}

// Relevant reports whether obstacle i takes part in collision tests.
// Entries past the end of the mask are irrelevant.
func (m Mask) Relevant(i int) bool {
	return i < len(m) && m[i]
}
