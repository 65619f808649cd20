package patternroute

import (
	"bytes"
	"context"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdrpinto/patternroute/geom"
)

const simpleRouteJSON = `{
  "bounds": {"minX": -4.8, "maxX": 4.8, "minY": -1.3, "maxY": 1.3},
  "obstacles": [
    {"type": "rect", "layers": ["top"], "center": {"x": 2.5, "y": 0},
     "width": 0.6, "height": 0.6, "connectedTo": ["connectivity_net13"]},
    {"type": "rect", "layers": ["top"], "center": {"x": -2.5, "y": 0},
     "width": 0.6, "height": 0.6, "connectedTo": ["connectivity_net12"]}
  ],
  "connections": [
    {"name": "connectivity_net13",
     "pointsToConnect": [{"x": 2.5, "y": 0, "layer": "top"}, {"x": -3.5, "y": 0, "layer": "top"}]}
  ],
  "layerCount": 2,
  "minTraceWidth": 0.1
}`

func TestParseCircuit(t *testing.T) {
	c, err := ParseCircuit(strings.NewReader(simpleRouteJSON))
	require.NoError(t, err)

	assert.Equal(t, 2, c.LayerCount)
	assert.Equal(t, 0.1, c.MinTraceWidth)
	assert.Equal(t, Bounds{MinX: -4.8, MaxX: 4.8, MinY: -1.3, MaxY: 1.3}, c.Bounds)
	require.Len(t, c.Obstacles, 2)
	assert.Equal(t, geom.Pt(-2.5, 0), c.Obstacles[1].Center)
	assert.Equal(t, []string{"connectivity_net12"}, c.Obstacles[1].ConnectedTo)
	require.Len(t, c.Connections, 1)
	assert.Equal(t, "connectivity_net13", c.Connections[0].Name)
	assert.Equal(t, geom.Pt(-3.5, 0), c.Connections[0].PointsToConnect[1].Point())
	assert.Empty(t, c.Traces)
	assert.NoError(t, Validate(c))
}

func TestParseCircuit_Malformed(t *testing.T) {
	_, err := ParseCircuit(strings.NewReader(`{"obstacles": [`))
	assert.Error(t, err)
}

func TestCircuit_WithTracesRoundTrip(t *testing.T) {
	c := SimpleCircuit()
	traces, err := Route(context.Background(), c)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteCircuit(&buf, c.WithTraces(traces)))
	assert.Contains(t, buf.String(), `"route_type": "wire"`)
	assert.Nil(t, c.Traces)

	back, err := ParseCircuit(&buf)
	require.NoError(t, err)
	assert.Equal(t, traces, back.Traces)
	assert.Equal(t, c.Connections, back.Connections)
}

func TestLoadCircuit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "simple.json")
	require.NoError(t, os.WriteFile(path, []byte(simpleRouteJSON), 0o600))

	c, err := LoadCircuit(path)
	require.NoError(t, err)
	assert.Len(t, c.Obstacles, 2)

	_, err = LoadCircuit(filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestRandomObstacles(t *testing.T) {
	bounds := Bounds{MinX: -5, MaxX: 15, MinY: 0, MaxY: 10}
	obs := RandomObstacles(rand.New(rand.NewSource(11)), 40, bounds)
	require.Len(t, obs, 40)
	for _, o := range obs {
		assert.GreaterOrEqual(t, o.Center.X-o.Width/2, bounds.MinX)
		assert.LessOrEqual(t, o.Center.X+o.Width/2, bounds.MaxX)
		assert.GreaterOrEqual(t, o.Center.Y-o.Height/2, bounds.MinY)
		assert.LessOrEqual(t, o.Center.Y+o.Height/2, bounds.MaxY)
		assert.Positive(t, o.Width)
		assert.Positive(t, o.Height)
		assert.Empty(t, o.ConnectedTo)
	}

	again := RandomObstacles(rand.New(rand.NewSource(11)), 40, bounds)
	assert.Equal(t, obs, again)
	assert.Nil(t, RandomObstacles(rand.New(rand.NewSource(11)), 0, bounds))
}
