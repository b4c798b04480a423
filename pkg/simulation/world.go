package simulation

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"github.com/tochemey/goakt/v3/actor"
	"github.com/tochemey/goakt/v3/goaktpb"
	"github.com/tochemey/goakt/v3/log"

	"github.com/lao-tseu-is-alive/go-flock-simulation/pb"
	"github.com/lao-tseu-is-alive/go-flock-simulation/pkg/flock"
	"github.com/lao-tseu-is-alive/go-flock-simulation/pkg/geometry"
	"github.com/lao-tseu-is-alive/go-flock-simulation/pkg/physics"
)

var _ flock.Body = (*physics.RigidBody)(nil)

// AllFlocks targets every flock in a SetActive message.
const AllFlocks = -1

// WorldActor owns the flocks, the physics world and the projectiles. Every
// mutation goes through its mailbox, so ticks, strikes and shots never
// interleave.
type WorldActor struct {
	cfg         *Config
	sessionID   string
	flocks      []*flock.Flock
	physics     *physics.World
	owners      map[*physics.RigidBody]int // agent body -> flock index
	projectiles []*physics.Projectile
	tick        uint64
	logger      log.Logger

	// Communication with UI
	snapshotCh chan<- *pb.WorldSnapshot

	// --- Benchmark Stats ---
	tickCount   int
	hitCount    int
	lastLogTime time.Time
}

// NewWorldActor creates the world logic unit. snapshotCh may be nil when
// nobody renders the world.
func NewWorldActor(snapshotCh chan<- *pb.WorldSnapshot, cfg *Config) *WorldActor {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &WorldActor{
		cfg:         cfg,
		sessionID:   uuid.NewString(),
		owners:      make(map[*physics.RigidBody]int),
		snapshotCh:  snapshotCh,
		logger:      log.DiscardLogger,
		lastLogTime: time.Now(),
	}
}

func (w *WorldActor) PreStart(ctx *actor.Context) error {
	w.logger = ctx.ActorSystem().Logger()
	if err := w.cfg.Validate(); err != nil {
		return err
	}
	w.logger.Infof("World %s is spawning %d flocks of %d agents...",
		w.sessionID, w.cfg.FlockCount, w.cfg.Flock.AgentCount)
	return w.populate()
}

func (w *WorldActor) Receive(ctx *actor.ReceiveContext) {
	switch msg := ctx.Message().(type) {
	case *goaktpb.PostStart:
		ctx.Logger().Infof("World started with %d agents", w.agentCount())

	// The main simulation step, driven by the frame loop
	case *pb.Tick:
		dt := msg.GetDeltaTime()
		if !(dt > 0) {
			ctx.Logger().Warnf("ignoring tick with delta time %v", dt)
			return
		}
		if err := w.step(dt); err != nil {
			ctx.Logger().Error(err)
			return
		}
		w.logBenchmarks(ctx)
		w.pushSnapshot()

	case *pb.Strike:
		if !w.strike(int(msg.GetFlock()), int(msg.GetAgent())) {
			ctx.Logger().Debugf("strike on flock %d agent %d ignored", msg.GetFlock(), msg.GetAgent())
		}

	case *pb.SetActive:
		if err := w.setActive(int(msg.GetFlock()), msg.GetActive()); err != nil {
			ctx.Logger().Warn(err)
		}

	case *pb.FireProjectile:
		if err := w.fire(vectorFromProto(msg.GetOrigin()), vectorFromProto(msg.GetDirection())); err != nil {
			ctx.Logger().Debugf("projectile not fired: %v", err)
		}

	case *pb.GetSnapshot:
		ctx.Response(w.buildSnapshot())

	default:
		ctx.Unhandled()
	}
}

func (w *WorldActor) PostStop(ctx *actor.Context) error {
	ctx.ActorSystem().Logger().Infof("World %s is shutdown after %d ticks...", w.sessionID, w.tick)
	return nil
}

// populate builds the physics world and binds one body per agent.
func (w *WorldActor) populate() error {
	w.physics = physics.NewWorld()
	w.physics.OnContact(w.handleContact)

	seed := w.cfg.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}

	w.flocks = make([]*flock.Flock, 0, w.cfg.FlockCount)
	for i := 0; i < w.cfg.FlockCount; i++ {
		f, err := flock.New(w.cfg.Flock,
			flock.WithID(fmt.Sprintf("%s-%d", w.sessionID[:8], i)),
			flock.WithLogger(w.logger),
			flock.WithRand(rand.New(rand.NewPCG(seed, uint64(i)))),
		)
		if err != nil {
			return err
		}
		if err := f.Initialise(w.agentSpawner(i)); err != nil {
			return err
		}
		f.SetActive(w.cfg.StartActive)
		w.flocks = append(w.flocks, f)
	}
	return nil
}

func (w *WorldActor) agentSpawner(flockIndex int) flock.Spawner {
	return flock.SpawnerFunc(func(pos geometry.Vector3D) flock.Body {
		b, err := w.physics.NewBody(physics.KindAgent, pos, w.cfg.AgentMass, w.cfg.AgentRadius)
		if err != nil {
			w.logger.Error(err)
			return nil
		}
		w.owners[b] = flockIndex
		return b
	})
}

// step runs one tick: flocks steer, projectiles fly, physics integrates and
// reports contacts, escaped projectiles are dropped.
func (w *WorldActor) step(dt float64) error {
	w.tick++
	w.tickCount++
	for i, f := range w.flocks {
		if err := f.Update(dt); err != nil {
			return fmt.Errorf("tick %d, flock %d: %w", w.tick, i, err)
		}
	}
	for _, p := range w.projectiles {
		p.Move()
	}
	w.physics.Step(dt)
	w.expireProjectiles()
	return nil
}

// handleContact turns a projectile hitting a live agent into a strike for
// the agent's flock. The projectile is spent on its first victim.
func (w *WorldActor) handleContact(c physics.Contact) {
	if c.Body.Kind() != physics.KindProjectile || c.Other.Kind() != physics.KindAgent {
		return
	}
	fi, ok := w.owners[c.Other]
	if !ok {
		return
	}
	f := w.flocks[fi]
	idx, ok := f.IndexOf(c.Other)
	if !ok || f.Agent(idx).IsDead() {
		return
	}

	c.Other.SetUseGravity(true)
	c.Other.SetVelocity(geometry.Zero)
	if f.Strike(flock.StruckNotification{Agent: idx}) {
		w.hitCount++
	}
	if p := w.projectileOf(c.Body); p != nil {
		p.Neutralize()
	}
}

func (w *WorldActor) projectileOf(b *physics.RigidBody) *physics.Projectile {
	for _, p := range w.projectiles {
		if p.Body() == b {
			return p
		}
	}
	return nil
}

func (w *WorldActor) expireProjectiles() {
	kept := w.projectiles[:0]
	for _, p := range w.projectiles {
		if p.Spent(w.cfg.Projectile.Range) {
			w.physics.Remove(p.Body())
			continue
		}
		kept = append(kept, p)
	}
	clear(w.projectiles[len(kept):])
	w.projectiles = kept
}

func (w *WorldActor) strike(flockIndex, agent int) bool {
	if flockIndex < 0 || flockIndex >= len(w.flocks) {
		return false
	}
	return w.flocks[flockIndex].Strike(flock.StruckNotification{Agent: agent})
}

func (w *WorldActor) setActive(flockIndex int, active bool) error {
	if flockIndex == AllFlocks {
		for _, f := range w.flocks {
			f.SetActive(active)
		}
		return nil
	}
	if flockIndex < 0 || flockIndex >= len(w.flocks) {
		return fmt.Errorf("no flock %d, world has %d", flockIndex, len(w.flocks))
	}
	w.flocks[flockIndex].SetActive(active)
	return nil
}

func (w *WorldActor) fire(origin, direction geometry.Vector3D) error {
	if limit := w.cfg.MaxProjectiles; limit > 0 && len(w.projectiles) >= limit {
		return fmt.Errorf("%d projectiles already in flight", len(w.projectiles))
	}
	p, err := w.physics.FireProjectile(origin, direction, w.cfg.Projectile)
	if err != nil {
		return err
	}
	w.projectiles = append(w.projectiles, p)
	return nil
}

func (w *WorldActor) agentCount() int {
	n := 0
	for _, f := range w.flocks {
		n += f.Len()
	}
	return n
}

func (w *WorldActor) aliveCount() int {
	n := 0
	for _, f := range w.flocks {
		n += f.AliveCount()
	}
	return n
}

func (w *WorldActor) logBenchmarks(ctx *actor.ReceiveContext) {
	if time.Since(w.lastLogTime) >= time.Second {
		ctx.Logger().Infof("📊 TICK RATE: %d/sec | Alive: %d/%d | Projectiles: %d | Hits: %d",
			w.tickCount, w.aliveCount(), w.agentCount(), len(w.projectiles), w.hitCount)
		w.tickCount = 0
		w.hitCount = 0
		w.lastLogTime = time.Now()
	}
}

func (w *WorldActor) pushSnapshot() {
	if w.snapshotCh == nil {
		return
	}
	select {
	case w.snapshotCh <- w.buildSnapshot():
	default:
		// UI busy, skip frame
	}
}
