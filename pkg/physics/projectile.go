package physics

import (
	"errors"

	"github.com/lao-tseu-is-alive/go-flock-simulation/pkg/geometry"
)

// NeutralizedPosition is where a projectile is parked once it has hit
// something, out of reach of every agent.
var NeutralizedPosition = geometry.Vector3D{X: 100, Y: 100, Z: 100}

var ErrNoDirection = errors.New("projectile direction is zero")

type ProjectileConfig struct {
	Speed        float64 `json:"speed"`
	Radius       float64 `json:"radius"`
	Mass         float64 `json:"mass"`
	MuzzleOffset float64 `json:"muzzleOffset"` // spawn distance ahead of the origin
	Range        float64 `json:"range"`        // removed beyond this distance from the world origin
}

func DefaultProjectileConfig() ProjectileConfig {
	return ProjectileConfig{
		Speed:        40,
		Radius:       1,
		Mass:         1,
		MuzzleOffset: 5,
		Range:        60,
	}
}

// Projectile is a gravity-free body flying in a straight line that
// reports the bodies it touches.
type Projectile struct {
	body      *RigidBody
	direction geometry.Vector3D
	speed     float64
	hit       bool
}

// FireProjectile spawns a projectile MuzzleOffset ahead of origin, moving
// along direction at cfg.Speed.
func (w *World) FireProjectile(origin, direction geometry.Vector3D, cfg ProjectileConfig) (*Projectile, error) {
	dir := direction.Normalize()
	if dir.IsZero() {
		return nil, ErrNoDirection
	}
	b, err := w.NewBody(KindProjectile, origin.Add(dir.Mul(cfg.MuzzleOffset)), cfg.Mass, cfg.Radius)
	if err != nil {
		return nil, err
	}
	b.SetReportContacts(true)
	b.SetRotation(geometry.LookRotation(dir, geometry.Up))
	b.SetVelocity(dir.Mul(cfg.Speed))
	return &Projectile{body: b, direction: dir, speed: cfg.Speed}, nil
}

func (p *Projectile) Body() *RigidBody { return p.body }

func (p *Projectile) Direction() geometry.Vector3D { return p.direction }

// Hit reports whether the projectile has already struck a body.
func (p *Projectile) Hit() bool { return p.hit }

// Move keeps the projectile at full speed along its direction until it
// hits something.
func (p *Projectile) Move() {
	if p.hit || p.body.removed {
		return
	}
	p.body.SetVelocity(p.direction.Mul(p.speed))
}

// Neutralize parks the projectile at NeutralizedPosition and stops it.
func (p *Projectile) Neutralize() {
	p.hit = true
	p.body.SetVelocity(geometry.Zero)
	p.body.SetPosition(NeutralizedPosition)
	p.body.SetReportContacts(false)
}

// Escaped reports whether the projectile flew further than maxRange from
// the world origin.
func (p *Projectile) Escaped(maxRange float64) bool {
	return p.body.Position().Len() > maxRange
}

// Spent reports whether the projectile is done flying, either because it
// hit a body or because it escaped maxRange.
func (p *Projectile) Spent(maxRange float64) bool {
	return p.hit || p.Escaped(maxRange)
}
