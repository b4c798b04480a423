package flock

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lao-tseu-is-alive/go-flock-simulation/pkg/geometry"
)

// testBody is a minimal Body: forces change velocity, step moves it.
type testBody struct {
	pos     geometry.Vector3D
	vel     geometry.Vector3D
	rot     geometry.Quaternion
	mass    float64
	gravity bool
}

func newTestBody(pos geometry.Vector3D) *testBody {
	return &testBody{pos: pos, mass: 1, gravity: true, rot: geometry.Identity}
}

func (b *testBody) Position() geometry.Vector3D       { return b.pos }
func (b *testBody) SetPosition(p geometry.Vector3D)   { b.pos = p }
func (b *testBody) Velocity() geometry.Vector3D       { return b.vel }
func (b *testBody) SetVelocity(v geometry.Vector3D)   { b.vel = v }
func (b *testBody) SetUseGravity(enabled bool)        { b.gravity = enabled }
func (b *testBody) SetRotation(q geometry.Quaternion) { b.rot = q }

func (b *testBody) ApplyForce(force geometry.Vector3D, dt float64) {
	b.vel = b.vel.Add(force.Mul(dt / b.mass))
}

func (b *testBody) step(dt float64) {
	b.pos = b.pos.Add(b.vel.Mul(dt))
}

// fixedSpawner places bodies at the given positions in order and ignores
// the random spawn point.
type fixedSpawner struct {
	positions []geometry.Vector3D
	bodies    []*testBody
}

func (s *fixedSpawner) Spawn(geometry.Vector3D) Body {
	b := newTestBody(s.positions[len(s.bodies)])
	s.bodies = append(s.bodies, b)
	return b
}

// recordingSpawner keeps the bodies it creates at the requested positions.
type recordingSpawner struct {
	bodies []*testBody
}

func (s *recordingSpawner) Spawn(pos geometry.Vector3D) Body {
	b := newTestBody(pos)
	s.bodies = append(s.bodies, b)
	return b
}

func seededRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// newFixedFlock builds an initialised flock whose agents start at positions.
func newFixedFlock(t *testing.T, positions ...geometry.Vector3D) (*Flock, *fixedSpawner) {
	t.Helper()
	cfg := DefaultConfig()
	cfg.AgentCount = len(positions)
	f, err := New(cfg, WithID("test"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	s := &fixedSpawner{positions: positions}
	if err := f.Initialise(s); err != nil {
		t.Fatalf("Initialise: %v", err)
	}
	return f, s
}

func assertVector(t *testing.T, want, got geometry.Vector3D, msgAndArgs ...any) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, 1e-9, msgAndArgs...)
	assert.InDelta(t, want.Y, got.Y, 1e-9, msgAndArgs...)
	assert.InDelta(t, want.Z, got.Z, 1e-9, msgAndArgs...)
}
