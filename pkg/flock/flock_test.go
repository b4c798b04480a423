package flock

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lao-tseu-is-alive/go-flock-simulation/pkg/geometry"
)

const tick = 1.0 / 60

func TestNew(t *testing.T) {
	f, err := New(DefaultConfig())
	require.NoError(t, err)
	assert.NotEmpty(t, f.ID())
	assert.Equal(t, 25, f.Len())
	assert.True(t, f.IsActive())
	assert.False(t, f.IsInitialised())
	assert.Nil(t, f.Agent(-1))
	assert.Nil(t, f.Agent(25))

	cfg := DefaultConfig()
	cfg.MaxSpeed = 0
	_, err = New(cfg)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestFlock_Initialise(t *testing.T) {
	cfg := DefaultConfig()
	f, err := New(cfg, WithRand(seededRand(7)))
	require.NoError(t, err)

	s := &recordingSpawner{}
	require.NoError(t, f.Initialise(s))
	require.Len(t, s.bodies, cfg.AgentCount)

	for i, b := range s.bodies {
		assert.GreaterOrEqual(t, b.pos.X, -cfg.SpawnHalfExtent)
		assert.LessOrEqual(t, b.pos.X, cfg.SpawnHalfExtent)
		assert.GreaterOrEqual(t, b.pos.Z, -cfg.SpawnHalfExtent)
		assert.LessOrEqual(t, b.pos.Z, cfg.SpawnHalfExtent)
		assert.Equal(t, cfg.SpawnAltitude, b.pos.Y)
		assert.False(t, b.gravity, "agents fly without gravity")

		idx, ok := f.IndexOf(b)
		assert.True(t, ok)
		assert.Equal(t, i, idx)
		assert.Same(t, b, f.Agent(i).Body())
	}

	err = f.Initialise(s)
	assert.ErrorIs(t, err, ErrAlreadyInitialised)

	_, ok := f.IndexOf(newTestBody(geometry.Zero))
	assert.False(t, ok)
}

func TestFlock_InitialiseErrors(t *testing.T) {
	f, err := New(DefaultConfig())
	require.NoError(t, err)
	assert.ErrorIs(t, f.Initialise(nil), ErrNilSpawner)

	nilBodies := SpawnerFunc(func(geometry.Vector3D) Body { return nil })
	assert.Error(t, f.Initialise(nilBodies))
	assert.False(t, f.IsInitialised())

	shared := newTestBody(geometry.Zero)
	same := SpawnerFunc(func(geometry.Vector3D) Body { return shared })
	assert.Error(t, f.Initialise(same))
	_, ok := f.IndexOf(shared)
	assert.False(t, ok, "failed attempt leaves no lookup behind")
}

func TestFlock_InitialiseRetryAfterFailure(t *testing.T) {
	f, err := New(DefaultConfig(), WithRand(seededRand(3)))
	require.NoError(t, err)

	var partial []*testBody
	failing := SpawnerFunc(func(pos geometry.Vector3D) Body {
		if len(partial) == 3 {
			return nil
		}
		b := newTestBody(pos)
		partial = append(partial, b)
		return b
	})
	require.Error(t, f.Initialise(failing))
	require.Len(t, partial, 3)
	assert.False(t, f.IsInitialised())
	assert.Nil(t, f.Agent(0).Body(), "no agent is bound by a failed attempt")

	s := &recordingSpawner{}
	require.NoError(t, f.Initialise(s))
	for _, old := range partial {
		_, ok := f.IndexOf(old)
		assert.False(t, ok, "stale body from the failed attempt")
	}
	for i, b := range s.bodies {
		idx, ok := f.IndexOf(b)
		require.True(t, ok)
		assert.Equal(t, i, idx)
		assert.Same(t, b, f.Agent(i).Body())
	}
}

func TestFlock_SameSeedSameSpawn(t *testing.T) {
	spawn := func() []*testBody {
		f, err := New(DefaultConfig(), WithRand(seededRand(99)))
		require.NoError(t, err)
		s := &recordingSpawner{}
		require.NoError(t, f.Initialise(s))
		return s.bodies
	}
	a, b := spawn(), spawn()
	for i := range a {
		assert.Equal(t, a[i].pos, b[i].pos)
	}
}

func TestFlock_NotInitialised(t *testing.T) {
	f, err := New(DefaultConfig())
	require.NoError(t, err)

	_, err = f.ComputeForces()
	assert.ErrorIs(t, err, ErrNotInitialised)
	assert.ErrorIs(t, f.Integrate(make([]geometry.Vector3D, f.Len()), tick), ErrNotInitialised)
	assert.ErrorIs(t, f.Update(tick), ErrNotInitialised)

	f.SetActive(false)
	assert.NoError(t, f.Update(tick), "inactive flocks ignore ticks")
}

func TestFlock_IntegrateForceCount(t *testing.T) {
	f, _ := newFixedFlock(t, geometry.Vector3D{Y: 1.5}, geometry.Vector3D{X: 5, Y: 1.5})
	err := f.Integrate([]geometry.Vector3D{geometry.Zero}, tick)
	assert.ErrorIs(t, err, ErrForceCount)
}

func TestFlock_TwoAgentsAttract(t *testing.T) {
	f, s := newFixedFlock(t,
		geometry.Vector3D{X: 0, Y: 1.5, Z: 0},
		geometry.Vector3D{X: 5, Y: 1.5, Z: 0},
	)

	forces, err := f.ComputeForces()
	require.NoError(t, err)
	assertVector(t, geometry.Vector3D{X: 72}, forces[0])
	assertVector(t, geometry.Vector3D{X: -72}, forces[1])

	// computing forces leaves every body untouched
	assert.True(t, s.bodies[0].vel.IsZero())
	assert.True(t, s.bodies[1].vel.IsZero())

	require.NoError(t, f.Integrate(forces, tick))

	// 72 * 1/60 = 1.2, raised to the minimum speed toward the neighbor
	assertVector(t, geometry.Vector3D{X: 10}, s.bodies[0].vel)
	assertVector(t, geometry.Vector3D{X: -10}, s.bodies[1].vel)
	assertVector(t, geometry.Vector3D{X: 1}, f.Agent(0).Heading())
	assertVector(t, geometry.Vector3D{X: 1}, f.Agent(0).Orientation().Rotate(geometry.Forward))
	assert.Equal(t, f.Agent(0).Orientation(), s.bodies[0].rot)
	assert.True(t, f.Agent(0).Force().IsZero(), "force is consumed by integration")
}

func TestFlock_SpeedBounds(t *testing.T) {
	f, s := newFixedFlock(t,
		geometry.Vector3D{X: -80, Y: 1.5, Z: -80},
		geometry.Vector3D{X: 80, Y: 1.5, Z: 80},
		geometry.Vector3D{X: -80, Y: 1.5, Z: 80},
	)
	s.bodies[0].vel = geometry.Vector3D{X: 300, Z: -400}
	s.bodies[1].vel = geometry.Zero
	s.bodies[2].vel = geometry.Vector3D{X: 0.5}

	require.NoError(t, f.Update(tick))

	assert.InDelta(t, 50, s.bodies[0].vel.Len(), 1e-9)
	assertVector(t, geometry.Vector3D{X: 30, Z: -40}, s.bodies[0].vel, "direction is kept")
	// never moved yet: default heading
	assertVector(t, geometry.Vector3D{Z: 10}, s.bodies[1].vel)
	assert.InDelta(t, 10, s.bodies[2].vel.Len(), 1e-9)

	rng := seededRand(3)
	g, err := New(DefaultConfig(), WithRand(rng))
	require.NoError(t, err)
	rs := &recordingSpawner{}
	require.NoError(t, g.Initialise(rs))
	for _, b := range rs.bodies {
		b.vel = geometry.Vector3D{X: rng.Float64()*200 - 100, Z: rng.Float64()*200 - 100}
	}
	for range 120 {
		require.NoError(t, g.Update(tick))
		for i, b := range rs.bodies {
			speed := b.vel.Len()
			assert.GreaterOrEqual(t, speed, 10-1e-9, "agent %d", i)
			assert.LessOrEqual(t, speed, 50+1e-9, "agent %d", i)
			b.step(tick)
		}
	}
}

func TestFlock_AltitudeSnap(t *testing.T) {
	f, s := newFixedFlock(t,
		geometry.Vector3D{X: -60, Y: 3, Z: 0},
		geometry.Vector3D{X: 60, Y: 1.55, Z: 0},
		geometry.Vector3D{X: 0, Y: 1.0, Z: 60},
	)
	require.NoError(t, f.Update(tick))

	assert.Equal(t, 1.5, s.bodies[0].pos.Y)
	assert.Equal(t, 1.55, s.bodies[1].pos.Y, "inside the band")
	assert.Equal(t, 1.5, s.bodies[2].pos.Y)
}

func TestFlock_StrikeLifecycle(t *testing.T) {
	f, s := newFixedFlock(t,
		geometry.Vector3D{X: 0, Y: 1.5, Z: 0},
		geometry.Vector3D{X: 30, Y: 1.5, Z: 0},
		geometry.Vector3D{X: -30, Y: 1.5, Z: 0},
	)
	removed := f.Config().RemovedPosition

	assert.False(t, f.Strike(StruckNotification{Agent: 7}))
	assert.True(t, f.Strike(StruckNotification{Agent: 1}))
	assert.False(t, f.Strike(StruckNotification{Agent: 1}), "already pending")
	assert.True(t, f.Agent(1).IsStruck())
	assert.False(t, f.Agent(1).IsDead(), "death waits for the next tick")
	assert.Equal(t, 3, f.AliveCount())

	require.NoError(t, f.Update(tick))

	dead := f.Agent(1)
	assert.True(t, dead.IsDead())
	assert.False(t, dead.IsStruck())
	assert.Equal(t, removed, s.bodies[1].pos)
	assert.True(t, s.bodies[1].vel.IsZero())
	assert.False(t, s.bodies[1].gravity)
	assert.Equal(t, 2, f.AliveCount())
	assert.False(t, f.Strike(StruckNotification{Agent: 1}), "dead agents cannot be struck")

	for range 5 {
		forces, err := f.ComputeForces()
		require.NoError(t, err)
		assert.True(t, forces[1].IsZero())
		require.NoError(t, f.Integrate(forces, tick))
		for _, b := range s.bodies {
			b.step(tick)
		}
		assert.Equal(t, removed, s.bodies[1].pos)
		assert.True(t, s.bodies[1].vel.IsZero())
		assert.True(t, f.Agent(1).IsDead())
	}
}

func TestFlock_StruckAgentLeavesSnapshot(t *testing.T) {
	// agent 1 sits between the two others; once dead it no longer
	// contributes to their forces during the very tick it dies
	f, _ := newFixedFlock(t,
		geometry.Vector3D{X: -4, Y: 1.5, Z: 20},
		geometry.Vector3D{X: 0, Y: 1.5, Z: 20},
		geometry.Vector3D{X: 4, Y: 1.5, Z: 20},
	)
	g, _ := newFixedFlock(t,
		geometry.Vector3D{X: -4, Y: 1.5, Z: 20},
		geometry.Vector3D{X: 4, Y: 1.5, Z: 20},
	)

	require.True(t, f.Strike(StruckNotification{Agent: 1}))
	withDead, err := f.ComputeForces()
	require.NoError(t, err)
	pair, err := g.ComputeForces()
	require.NoError(t, err)

	assertVector(t, pair[0], withDead[0])
	assertVector(t, pair[1], withDead[2])
	assert.True(t, withDead[1].IsZero())
}

func TestFlock_Inactive(t *testing.T) {
	f, s := newFixedFlock(t,
		geometry.Vector3D{X: 0, Y: 1.5, Z: 0},
		geometry.Vector3D{X: 5, Y: 1.5, Z: 0},
	)
	f.SetActive(false)
	assert.False(t, f.IsActive())

	require.NoError(t, f.Update(tick))
	assert.True(t, s.bodies[0].vel.IsZero())
	assert.True(t, s.bodies[1].vel.IsZero())

	f.SetActive(true)
	require.NoError(t, f.Update(tick))
	assert.False(t, s.bodies[0].vel.IsZero())
}

func TestClampSpeed(t *testing.T) {
	tests := []struct {
		name     string
		vel      geometry.Vector3D
		fallback geometry.Vector3D
		want     geometry.Vector3D
		changed  bool
	}{
		{"in range", geometry.Vector3D{X: 20}, geometry.Forward, geometry.Vector3D{X: 20}, false},
		{"too fast", geometry.Vector3D{Z: -80}, geometry.Forward, geometry.Vector3D{Z: -50}, true},
		{"too slow", geometry.Vector3D{X: 1}, geometry.Forward, geometry.Vector3D{X: 10}, true},
		{"at rest uses fallback", geometry.Zero, geometry.Vector3D{X: -2}, geometry.Vector3D{X: -10}, true},
		{"at rest without fallback", geometry.Zero, geometry.Zero, geometry.Zero, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, changed := clampSpeed(tt.vel, tt.fallback, 10, 50)
			assertVector(t, tt.want, got)
			assert.Equal(t, tt.changed, changed)
		})
	}
}

func BenchmarkFlockUpdate(b *testing.B) {
	cfg := DefaultConfig()
	cfg.AgentCount = 100
	f, err := New(cfg, WithRand(seededRand(1)))
	if err != nil {
		b.Fatal(err)
	}
	if err := f.Initialise(&recordingSpawner{}); err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = f.Update(tick)
	}
}
