package patternroute

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/pdrpinto/patternroute/geom"
	"github.com/pdrpinto/patternroute/obstacle"
)

// Circuit is the SimpleRouteJSON description of a routing problem.
type Circuit struct {
	LayerCount    int                 `json:"layerCount"`
	MinTraceWidth float64             `json:"minTraceWidth"`
	Obstacles     []obstacle.Obstacle `json:"obstacles"`
	Connections   []Connection        `json:"connections"`
	// Bounds is carried for renderers. Routing does not read it.
	Bounds Bounds  `json:"bounds"`
	Traces []Trace `json:"traces,omitempty"`
}

// Connection names a net and the points it has to join. Only the first two
// points are routed.
type Connection struct {
	Name            string            `json:"name"`
	PointsToConnect []ConnectionPoint `json:"pointsToConnect"`
}

// ConnectionPoint is one terminal of a connection.
type ConnectionPoint struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Layer  string  `json:"layer,omitempty"`
	PortID string  `json:"pcb_port_id,omitempty"`
}

// Point returns the terminal as a routing point on layer 0.
func (p ConnectionPoint) Point() geom.Point {
	return geom.Pt(p.X, p.Y)
}

// Bounds is the board extent, carried for renderers.
type Bounds struct {
	MinX float64 `json:"minX"`
	MaxX float64 `json:"maxX"`
	MinY float64 `json:"minY"`
	MaxY float64 `json:"maxY"`
}

// Trace is the routed wire of one connection.
type Trace struct {
	Connection string       `json:"connection_name,omitempty"`
	Route      []RoutePoint `json:"route"`
}

// RoutePoint is one vertex of a trace.
type RoutePoint struct {
	RouteType string  `json:"route_type"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	Width     float64 `json:"width"`
	Layer     string  `json:"layer"`
}

// Points returns the trace vertices as routing points.
func (t Trace) Points() []geom.Point {
	pts := make([]geom.Point, len(t.Route))
	for i, rp := range t.Route {
		pts[i] = geom.Pt(rp.X, rp.Y)
	}
	return pts
}

const defaultLayer = "top"

func newTrace(conn Connection, path []geom.Point, width float64) Trace {
	layer := conn.PointsToConnect[0].Layer
	if layer == "" {
		layer = defaultLayer
	}
	route := make([]RoutePoint, len(path))
	for i, p := range path {
		route[i] = RoutePoint{RouteType: "wire", X: p.X, Y: p.Y, Width: width, Layer: layer}
	}
	return Trace{Connection: conn.Name, Route: route}
}

// WithTraces returns a copy of c carrying traces, ready to be written back
// out as SimpleRouteJSON.
func (c Circuit) WithTraces(traces []Trace) Circuit {
	c.Traces = traces
	return c
}

// ParseCircuit decodes a SimpleRouteJSON document.
func ParseCircuit(r io.Reader) (Circuit, error) {
	var c Circuit
	if err := json.NewDecoder(r).Decode(&c); err != nil {
		return Circuit{}, fmt.Errorf("decode circuit: %w", err)
	}
	return c, nil
}

// LoadCircuit reads and decodes the SimpleRouteJSON file at path.
func LoadCircuit(path string) (Circuit, error) {
	f, err := os.Open(path)
	if err != nil {
		return Circuit{}, err
	}
	defer f.Close()
	return ParseCircuit(f)
}

// WriteCircuit encodes c as indented SimpleRouteJSON.
func WriteCircuit(w io.Writer, c Circuit) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(c)
}
