// Package flock implements the steering and lifecycle of a group of agents
// moving together on a horizontal plane.
//
// Each tick runs in two phases over the whole flock: ComputeForces resolves
// pending strikes, snapshots every agent and derives each steering force
// from that snapshot only; Integrate then applies the forces through the
// physics bodies. No agent ever observes a neighbor's state from the
// current tick.
package flock

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/google/uuid"
	"github.com/tochemey/goakt/v3/log"

	"github.com/lao-tseu-is-alive/go-flock-simulation/pkg/geometry"
)

var (
	ErrNotInitialised     = errors.New("flock is not initialised")
	ErrAlreadyInitialised = errors.New("flock is already initialised")
	ErrForceCount         = errors.New("force count does not match agent count")
	ErrNilSpawner         = errors.New("spawner is nil")
)

// Flock owns a fixed population of agents and advances them tick by tick.
// A Flock is not safe for concurrent use; the world actor owns it.
type Flock struct {
	id          string
	cfg         Config
	agents      []*Agent
	bodies      map[Body]int
	views       []AgentView
	active      bool
	initialised bool
	logger      log.Logger
	rng         *rand.Rand
}

type Option func(*Flock)

func WithID(id string) Option {
	return func(f *Flock) { f.id = id }
}

func WithLogger(logger log.Logger) Option {
	return func(f *Flock) {
		if logger != nil {
			f.logger = logger
		}
	}
}

// WithRand sets the source used to draw spawn positions.
func WithRand(rng *rand.Rand) Option {
	return func(f *Flock) {
		if rng != nil {
			f.rng = rng
		}
	}
}

// New validates cfg and creates an active flock of cfg.AgentCount unbound
// agents. Call Initialise before the first tick.
func New(cfg Config, opts ...Option) (*Flock, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	f := &Flock{
		id:     uuid.NewString(),
		cfg:    cfg,
		agents: make([]*Agent, cfg.AgentCount),
		bodies: make(map[Body]int, cfg.AgentCount),
		views:  make([]AgentView, cfg.AgentCount),
		active: true,
		logger: log.DiscardLogger,
		rng:    rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
	for i := range f.agents {
		f.agents[i] = newAgent()
	}
	for _, opt := range opts {
		opt(f)
	}
	return f, nil
}

// Initialise spawns one body per agent at a random point of the spawn
// square, at spawn altitude. It may only succeed once; a failed attempt
// binds nothing.
func (f *Flock) Initialise(spawner Spawner) error {
	if f.initialised {
		return fmt.Errorf("flock %s: %w", f.id, ErrAlreadyInitialised)
	}
	if spawner == nil {
		return fmt.Errorf("flock %s: %w", f.id, ErrNilSpawner)
	}

	h := f.cfg.SpawnHalfExtent
	spawned := make([]Body, len(f.agents))
	index := make(map[Body]int, len(f.agents))
	for i := range f.agents {
		pos := geometry.Vector3D{
			X: (f.rng.Float64()*2 - 1) * h,
			Y: f.cfg.SpawnAltitude,
			Z: (f.rng.Float64()*2 - 1) * h,
		}
		b := spawner.Spawn(pos)
		if b == nil {
			return fmt.Errorf("flock %s: spawner returned no body for agent %d", f.id, i)
		}
		if _, dup := index[b]; dup {
			return fmt.Errorf("flock %s: spawner returned the same body twice (agent %d)", f.id, i)
		}
		spawned[i] = b
		index[b] = i
	}

	for i, a := range f.agents {
		a.bind(spawned[i])
	}
	f.bodies = index
	f.initialised = true
	f.logger.Debugf("flock %s: spawned %d agents", f.id, len(f.agents))
	return nil
}

func (f *Flock) ID() string { return f.id }

func (f *Flock) Config() Config { return f.cfg }

func (f *Flock) Len() int { return len(f.agents) }

func (f *Flock) IsInitialised() bool { return f.initialised }

func (f *Flock) IsActive() bool { return f.active }

// SetActive enables or disables ticking. An inactive flock ignores Update.
func (f *Flock) SetActive(active bool) {
	f.active = active
}

// Agent returns the i-th agent or nil when i is out of range.
func (f *Flock) Agent(i int) *Agent {
	if i < 0 || i >= len(f.agents) {
		return nil
	}
	return f.agents[i]
}

// Agents exposes the roster in index order. Callers must not modify it.
func (f *Flock) Agents() []*Agent {
	return f.agents
}

// IndexOf returns the index of the agent bound to b.
func (f *Flock) IndexOf(b Body) (int, bool) {
	i, ok := f.bodies[b]
	return i, ok
}

func (f *Flock) AliveCount() int {
	n := 0
	for _, a := range f.agents {
		if !a.dead {
			n++
		}
	}
	return n
}

// Strike records a hit on an agent. It reports whether a new strike was
// queued: unknown indices, pending strikes and dead agents are ignored.
func (f *Flock) Strike(n StruckNotification) bool {
	a := f.Agent(n.Agent)
	if a == nil || a.dead || a.struck {
		return false
	}
	a.struck = true
	return true
}

// ComputeForces runs the first phase of a tick: it resolves pending
// strikes, snapshots the roster and returns one steering force per agent.
// Dead agents get a zero force.
func (f *Flock) ComputeForces() ([]geometry.Vector3D, error) {
	if !f.initialised {
		return nil, fmt.Errorf("flock %s: %w", f.id, ErrNotInitialised)
	}

	for i, a := range f.agents {
		if a.resolveStrike(f.cfg.RemovedPosition) {
			f.logger.Debugf("flock %s: agent %d struck down", f.id, i)
		}
	}

	for i, a := range f.agents {
		f.views[i] = a.view()
	}

	forces := make([]geometry.Vector3D, len(f.agents))
	for i, a := range f.agents {
		a.force = geometry.Zero
		if !a.dead {
			a.force = Steer(i, f.views, &f.cfg)
		}
		forces[i] = a.force
	}
	return forces, nil
}

// Integrate runs the second phase of a tick: every force is applied for dt
// seconds, then speed, orientation and altitude constraints are enforced.
func (f *Flock) Integrate(forces []geometry.Vector3D, dt float64) error {
	if !f.initialised {
		return fmt.Errorf("flock %s: %w", f.id, ErrNotInitialised)
	}
	if len(forces) != len(f.agents) {
		return fmt.Errorf("flock %s: %w: got %d, want %d", f.id, ErrForceCount, len(forces), len(f.agents))
	}
	for i, a := range f.agents {
		a.integrate(forces[i], dt, &f.cfg)
	}
	return nil
}

// Update advances an active flock by one tick of dt seconds.
func (f *Flock) Update(dt float64) error {
	if !f.active {
		return nil
	}
	forces, err := f.ComputeForces()
	if err != nil {
		return err
	}
	return f.Integrate(forces, dt)
}
