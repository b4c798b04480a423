package flock

import "github.com/lao-tseu-is-alive/go-flock-simulation/pkg/geometry"

// Body is the physics collaborator bound to one agent. The physics engine
// owns position and velocity; the flock reads and writes them every tick.
//
// Implementations must be comparable (typically pointers): the flock keys
// its body lookup on them.
type Body interface {
	Position() geometry.Vector3D
	SetPosition(p geometry.Vector3D)
	Velocity() geometry.Vector3D
	SetVelocity(v geometry.Vector3D)
	// ApplyForce applies force to the body for a tick lasting dt seconds.
	ApplyForce(force geometry.Vector3D, dt float64)
	SetUseGravity(enabled bool)
	SetRotation(q geometry.Quaternion)
}

// Spawner creates the body (and whatever shape or visual goes with it) of
// one agent at its initial position.
type Spawner interface {
	Spawn(position geometry.Vector3D) Body
}

// SpawnerFunc adapts an ordinary function to the Spawner interface.
type SpawnerFunc func(position geometry.Vector3D) Body

// Spawn calls f(position).
func (f SpawnerFunc) Spawn(position geometry.Vector3D) Body {
	return f(position)
}
