package flock

import "github.com/lao-tseu-is-alive/go-flock-simulation/pkg/geometry"

// AgentView is the read-only state of one agent as seen by its neighbors
// during a force computation pass.
type AgentView struct {
	Position geometry.Vector3D
	Velocity geometry.Vector3D
	Dead     bool
}

// Steering holds the individual terms blended into an agent's force.
type Steering struct {
	Cohesion   geometry.Vector3D
	Separation geometry.Vector3D
	Alignment  geometry.Vector3D
	Center     geometry.Vector3D // pull toward the agents near the world origin
}

// Total is the blended force projected onto the horizontal plane.
func (s Steering) Total() geometry.Vector3D {
	return s.Cohesion.Add(s.Separation).Add(s.Alignment).Add(s.Center).Horizontal()
}

// Steer returns the force of roster[self] for this tick.
func Steer(self int, roster []AgentView, cfg *Config) geometry.Vector3D {
	return ComputeSteering(self, roster, cfg).Total()
}

// ComputeSteering scans the roster once and returns every steering term of
// roster[self]. Dead agents, self included, neither steer nor get counted.
func ComputeSteering(self int, roster []AgentView, cfg *Config) Steering {
	me := roster[self]
	if me.Dead {
		return Steering{}
	}

	// Initialize force accumulators
	var (
		centerOfMass geometry.Vector3D
		originMass   geometry.Vector3D
		away         geometry.Vector3D
		velocitySum  geometry.Vector3D
		neighbors    int
		nearOrigin   int
	)

	for i, other := range roster {
		if i == self || other.Dead {
			continue
		}

		offset := me.Position.Sub(other.Position)
		d := offset.Len()

		// 1. Cohesion
		if d < cfg.AttractRadius {
			centerOfMass = centerOfMass.Add(other.Position)
			neighbors++
		}

		// 2. Separation, coincident agents have no direction to push along
		if d < cfg.RepelRadius && d > geometry.Epsilon {
			away = away.Add(offset.Mul(1 / d))
		}

		// 3. Alignment, averaged with the cohesion count
		if d < cfg.AlignRadius {
			velocitySum = velocitySum.Add(other.Velocity)
		}

		// 4. Global center
		if other.Position.DistanceTo(geometry.Zero) < GlobalCenterRadius {
			originMass = originMass.Add(other.Position)
			nearOrigin++
		}
	}

	var s Steering
	s.Cohesion = seek(me, centerOfMass, neighbors, cfg)
	s.Separation = away.Mul(cfg.SeparationGain)

	avgVelocity := geometry.Zero
	if neighbors > 0 {
		avgVelocity = velocitySum.Mul(1 / float64(neighbors))
	}
	s.Alignment = avgVelocity.Sub(me.Velocity).Mul(cfg.AlignmentGain)

	s.Center = seek(me, originMass, nearOrigin, cfg)
	return s
}

// seek steers me toward the average of sum over count positions at
// CohesionSpeed. No contributors means no force.
func seek(me AgentView, sum geometry.Vector3D, count int, cfg *Config) geometry.Vector3D {
	if count == 0 {
		return geometry.Zero
	}
	center := sum.Mul(1 / float64(count))
	desired := center.Sub(me.Position).WithLen(cfg.CohesionSpeed)
	return desired.Sub(me.Velocity).Mul(cfg.CohesionGain)
}
