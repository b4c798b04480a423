// Package physics is a small rigid-body world: point masses with sphere
// shapes, optional gravity and contact reporting.
package physics

import (
	"fmt"

	"github.com/lao-tseu-is-alive/go-flock-simulation/pkg/geometry"
)

// Kind tells what a body stands for in the scene.
type Kind uint8

const (
	KindAgent Kind = iota + 1
	KindProjectile
)

func (k Kind) String() string {
	switch k {
	case KindAgent:
		return "agent"
	case KindProjectile:
		return "projectile"
	default:
		return fmt.Sprintf("kind(%d)", k)
	}
}

// RigidBody is a sphere of uniform mass. Its zero value is not usable;
// create bodies through World.NewBody.
type RigidBody struct {
	id       uint64
	kind     Kind
	position geometry.Vector3D
	velocity geometry.Vector3D
	rotation geometry.Quaternion
	mass     float64
	radius   float64

	useGravity     bool
	reportContacts bool
	removed        bool
}

func (b *RigidBody) ID() uint64 { return b.id }

func (b *RigidBody) Kind() Kind { return b.kind }

func (b *RigidBody) Mass() float64 { return b.mass }

func (b *RigidBody) Radius() float64 { return b.radius }

func (b *RigidBody) Position() geometry.Vector3D { return b.position }

func (b *RigidBody) SetPosition(p geometry.Vector3D) { b.position = p }

func (b *RigidBody) Velocity() geometry.Vector3D { return b.velocity }

func (b *RigidBody) SetVelocity(v geometry.Vector3D) { b.velocity = v }

func (b *RigidBody) Rotation() geometry.Quaternion { return b.rotation }

func (b *RigidBody) SetRotation(q geometry.Quaternion) { b.rotation = q }

func (b *RigidBody) UseGravity() bool { return b.useGravity }

func (b *RigidBody) SetUseGravity(enabled bool) { b.useGravity = enabled }

// SetReportContacts makes the world emit a Contact for every body this
// one overlaps during a step.
func (b *RigidBody) SetReportContacts(enabled bool) { b.reportContacts = enabled }

func (b *RigidBody) ReportsContacts() bool { return b.reportContacts }

// Removed reports whether the body was taken out of its world.
func (b *RigidBody) Removed() bool { return b.removed }

// ApplyForce changes the velocity by the impulse force*dt.
func (b *RigidBody) ApplyForce(force geometry.Vector3D, dt float64) {
	b.velocity = b.velocity.Add(force.Mul(dt / b.mass))
}

// Overlaps reports whether the spheres of b and other intersect.
func (b *RigidBody) Overlaps(other *RigidBody) bool {
	reach := b.radius + other.radius
	return b.position.DistanceSquaredTo(other.position) < reach*reach
}

func (b *RigidBody) String() string {
	return fmt.Sprintf("%s#%d at %v", b.kind, b.id, b.position)
}
