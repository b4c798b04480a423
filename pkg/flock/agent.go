package flock

import "github.com/lao-tseu-is-alive/go-flock-simulation/pkg/geometry"

// StruckNotification tells a flock that one of its agents was hit. The
// transition to dead happens at the start of the flock's next force pass.
type StruckNotification struct {
	Agent int
}

// Agent is one member of a flock, bound to exactly one physics body.
type Agent struct {
	body        Body
	force       geometry.Vector3D
	heading     geometry.Vector3D
	orientation geometry.Quaternion
	dead        bool
	struck      bool
}

func newAgent() *Agent {
	return &Agent{
		heading:     geometry.Forward,
		orientation: geometry.Identity,
	}
}

func (a *Agent) Body() Body { return a.body }

func (a *Agent) IsDead() bool { return a.dead }

// IsStruck reports a pending strike not yet turned into death.
func (a *Agent) IsStruck() bool { return a.struck }

// Force is the force computed for the agent and not yet integrated.
func (a *Agent) Force() geometry.Vector3D { return a.force }

// Heading is the last non-zero direction of travel, +Z before the first move.
func (a *Agent) Heading() geometry.Vector3D { return a.heading }

func (a *Agent) Orientation() geometry.Quaternion { return a.orientation }

func (a *Agent) Position() geometry.Vector3D {
	if a.body == nil {
		return geometry.Zero
	}
	return a.body.Position()
}

func (a *Agent) Velocity() geometry.Vector3D {
	if a.body == nil {
		return geometry.Zero
	}
	return a.body.Velocity()
}

func (a *Agent) bind(b Body) {
	a.body = b
	b.SetUseGravity(false)
	b.SetRotation(a.orientation)
}

func (a *Agent) view() AgentView {
	return AgentView{
		Position: a.body.Position(),
		Velocity: a.body.Velocity(),
		Dead:     a.dead,
	}
}

// resolveStrike turns a pending strike into death. It reports whether the
// agent died during this call.
func (a *Agent) resolveStrike(removed geometry.Vector3D) bool {
	if !a.struck {
		return false
	}
	a.struck = false
	if a.dead {
		return false
	}
	a.dead = true
	a.force = geometry.Zero
	a.body.SetUseGravity(false)
	a.body.SetVelocity(geometry.Zero)
	a.body.SetPosition(removed)
	return true
}

// integrate applies force to the body then enforces speed bounds,
// orientation and altitude.
func (a *Agent) integrate(force geometry.Vector3D, dt float64, cfg *Config) {
	if a.dead {
		force = geometry.Zero
	}
	a.body.ApplyForce(force, dt)
	a.force = geometry.Zero

	fallback := a.heading
	if a.dead {
		// a dead agent at rest stays at rest
		fallback = geometry.Zero
	}
	vel, changed := clampSpeed(a.body.Velocity(), fallback, cfg.MinSpeed, cfg.MaxSpeed)
	if changed {
		a.body.SetVelocity(vel)
	}

	if a.dead {
		return
	}

	if dir := vel.Normalize(); !dir.IsZero() {
		a.heading = dir
	}
	a.orientation = geometry.LookRotation(a.heading, geometry.Up)
	a.body.SetRotation(a.orientation)

	if p := a.body.Position(); p.Y < cfg.AltitudeMin || p.Y > cfg.AltitudeMax {
		p.Y = cfg.SpawnAltitude
		a.body.SetPosition(p)
	}
}

// clampSpeed rescales vel so that its magnitude lies in [lo, hi]. A vector
// too short to have a direction is rescaled along fallback.
func clampSpeed(vel, fallback geometry.Vector3D, lo, hi float64) (geometry.Vector3D, bool) {
	speed := vel.Len()
	switch {
	case speed < lo:
		if vel.IsZero() {
			return fallback.WithLen(lo), true
		}
		return vel.WithLen(lo), true
	case speed > hi:
		return vel.WithLen(hi), true
	}
	return vel, false
}
