package patternroute

import (
	"math/rand"

	"github.com/pdrpinto/patternroute/geom"
	"github.com/pdrpinto/patternroute/obstacle"
)

// SimpleCircuit is the smallest useful routing problem: four pads on the x
// axis and one connection whose straight line crosses a foreign pad.
func SimpleCircuit() Circuit {
	pad := func(x float64, net string) obstacle.Obstacle {
		return obstacle.Obstacle{
			Type:        "rect",
			Layers:      []string{"top"},
			Center:      geom.Pt(x, 0),
			Width:       0.6,
			Height:      0.6,
			ConnectedTo: []string{net},
		}
	}
	return Circuit{
		LayerCount:    2,
		MinTraceWidth: 0.1,
		Obstacles: []obstacle.Obstacle{
			pad(2.5, "connectivity_net13"),
			pad(3.5, "connectivity_net11"),
			pad(-3.5, "connectivity_net13"),
			pad(-2.5, "connectivity_net12"),
		},
		Connections: []Connection{{
			Name: "connectivity_net13",
			PointsToConnect: []ConnectionPoint{
				{X: 2.5, Y: 0, Layer: "top"},
				{X: -3.5, Y: 0, Layer: "top"},
			},
		}},
		Bounds: Bounds{MinX: -4.8, MaxX: 4.8, MinY: -1.3, MaxY: 1.3},
	}
}

// RandomObstacles scatters n unconnected rectangles inside bounds. Sides
// fall between 2% and 12% of the smaller bounds span.
func RandomObstacles(rng *rand.Rand, n int, bounds Bounds) []obstacle.Obstacle {
	span := min(bounds.MaxX-bounds.MinX, bounds.MaxY-bounds.MinY)
	if n <= 0 || span <= 0 {
		return nil
	}
	side := func() float64 { return span * (0.02 + 0.1*rng.Float64()) }

	out := make([]obstacle.Obstacle, n)
	for i := range out {
		w, h := side(), side()
		out[i] = obstacle.Obstacle{
			Type:   "rect",
			Layers: []string{"top"},
			Center: geom.Pt(
				bounds.MinX+w/2+rng.Float64()*(bounds.MaxX-bounds.MinX-w),
				bounds.MinY+h/2+rng.Float64()*(bounds.MaxY-bounds.MinY-h),
			),
			Width:  w,
			Height: h,
		}
	}
	return out
}
