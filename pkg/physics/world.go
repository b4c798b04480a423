package physics

import (
	"errors"
	"fmt"

	"github.com/lao-tseu-is-alive/go-flock-simulation/pkg/geometry"
)

// DefaultGravity is the acceleration applied to gravity-enabled bodies.
var DefaultGravity = geometry.Vector3D{X: 0, Y: -9.81, Z: 0}

var ErrInvalidBody = errors.New("invalid body")

// Contact is reported once per step for every overlapping pair in which
// Body has contact reporting on.
type Contact struct {
	Body  *RigidBody
	Other *RigidBody
}

type ContactListener func(c Contact)

// World integrates bodies and reports their contacts. It is not safe for
// concurrent use.
type World struct {
	gravity   geometry.Vector3D
	bodies    []*RigidBody
	listeners []ContactListener
	contacts  []Contact
	nextID    uint64
	steps     uint64
}

type WorldOption func(*World)

func WithGravity(g geometry.Vector3D) WorldOption {
	return func(w *World) { w.gravity = g }
}

func NewWorld(opts ...WorldOption) *World {
	w := &World{gravity: DefaultGravity}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// NewBody creates a body at position and adds it to the world. Bodies
// start without gravity, at rest and facing +Z.
func (w *World) NewBody(kind Kind, position geometry.Vector3D, mass, radius float64) (*RigidBody, error) {
	if !(mass > 0) {
		return nil, fmt.Errorf("%w: mass must be positive, got %v", ErrInvalidBody, mass)
	}
	if !(radius > 0) {
		return nil, fmt.Errorf("%w: radius must be positive, got %v", ErrInvalidBody, radius)
	}
	w.nextID++
	b := &RigidBody{
		id:       w.nextID,
		kind:     kind,
		position: position,
		rotation: geometry.Identity,
		mass:     mass,
		radius:   radius,
	}
	w.bodies = append(w.bodies, b)
	return b, nil
}

// Remove takes b out of the world. Removing twice is a no-op.
func (w *World) Remove(b *RigidBody) {
	if b == nil || b.removed {
		return
	}
	b.removed = true
	for i, other := range w.bodies {
		if other == b {
			w.bodies = append(w.bodies[:i], w.bodies[i+1:]...)
			return
		}
	}
}

// OnContact registers l to be called for every contact found by Step.
func (w *World) OnContact(l ContactListener) {
	w.listeners = append(w.listeners, l)
}

func (w *World) Bodies() []*RigidBody { return w.bodies }

func (w *World) Len() int { return len(w.bodies) }

func (w *World) Steps() uint64 { return w.steps }

func (w *World) Gravity() geometry.Vector3D { return w.gravity }

// Step advances every body by dt seconds then reports contacts. Listeners
// run after all contacts of the step are collected, so they may move or
// remove bodies freely.
func (w *World) Step(dt float64) int {
	w.steps++
	for _, b := range w.bodies {
		if b.useGravity {
			b.velocity = b.velocity.Add(w.gravity.Mul(dt))
		}
		b.position = b.position.Add(b.velocity.Mul(dt))
	}

	// brute force pass, only reporting bodies look for overlaps
	w.contacts = w.contacts[:0]
	for _, b := range w.bodies {
		if !b.reportContacts {
			continue
		}
		for _, other := range w.bodies {
			if other == b {
				continue
			}
			if b.Overlaps(other) {
				w.contacts = append(w.contacts, Contact{Body: b, Other: other})
			}
		}
	}

	for _, c := range w.contacts {
		// an earlier listener may have consumed the reporting body
		if !c.Body.reportContacts || c.Body.removed || c.Other.removed {
			continue
		}
		for _, l := range w.listeners {
			l(c)
		}
	}
	return len(w.contacts)
}
