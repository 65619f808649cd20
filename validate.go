package patternroute

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrMalformedConnection is returned for connections that cannot be
	// routed as given.
	ErrMalformedConnection = errors.New("malformed connection")
	// ErrMalformedObstacle is returned for obstacles without a positive,
	// finite size or position.
	ErrMalformedObstacle = errors.New("malformed obstacle")
)

// Validate checks the circuit before any search starts. The search itself
// assumes well-formed input.
func Validate(c Circuit) error {
	for i, obs := range c.Obstacles {
		if !obs.Center.Finite() {
			return fmt.Errorf("obstacle %d: center (%v, %v) is not finite: %w",
				i, obs.Center.X, obs.Center.Y, ErrMalformedObstacle)
		}
		if !(obs.Width > 0 && obs.Height > 0) || !finite(obs.Width) || !finite(obs.Height) {
			return fmt.Errorf("obstacle %d: size %vx%v: %w", i, obs.Width, obs.Height, ErrMalformedObstacle)
		}
	}

	seen := make(map[string]struct{}, len(c.Connections))
	for i, conn := range c.Connections {
		if conn.Name == "" {
			return fmt.Errorf("connection %d: empty name: %w", i, ErrMalformedConnection)
		}
		if _, dup := seen[conn.Name]; dup {
			return fmt.Errorf("connection %q: duplicate name: %w", conn.Name, ErrMalformedConnection)
		}
		seen[conn.Name] = struct{}{}

		if len(conn.PointsToConnect) < 2 {
			return fmt.Errorf("connection %q: %d points, need 2: %w",
				conn.Name, len(conn.PointsToConnect), ErrMalformedConnection)
		}
		for _, p := range conn.PointsToConnect {
			if !p.Point().Finite() {
				return fmt.Errorf("connection %q: point (%v, %v) is not finite: %w",
					conn.Name, p.X, p.Y, ErrMalformedConnection)
			}
		}
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
