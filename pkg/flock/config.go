package flock

import (
	"errors"
	"fmt"

	"github.com/lao-tseu-is-alive/go-flock-simulation/pkg/geometry"
)

// GlobalCenterRadius is the distance from the world origin under which an
// agent pulls the rest of its flock toward it. It is not a tunable.
const GlobalCenterRadius = 10.0

// ErrInvalidConfig is wrapped by every error returned from Config.Validate.
var ErrInvalidConfig = errors.New("invalid flock config")

// Config holds the simulation-wide steering parameters shared by every
// agent of a flock.
type Config struct {
	// Population
	AgentCount int `json:"agentCount"`

	// Neighborhood radii
	AttractRadius float64 `json:"attractRadius"` // Cohesion
	RepelRadius   float64 `json:"repelRadius"`   // Separation
	AlignRadius   float64 `json:"alignRadius"`   // Alignment

	// Force blending
	CohesionSpeed  float64 `json:"cohesionSpeed"` // desired speed toward the local center
	CohesionGain   float64 `json:"cohesionGain"`
	SeparationGain float64 `json:"separationGain"`
	AlignmentGain  float64 `json:"alignmentGain"`

	// Kinematic bounds applied after integration
	MinSpeed    float64 `json:"minSpeed"`
	MaxSpeed    float64 `json:"maxSpeed"`
	AltitudeMin float64 `json:"altitudeMin"`
	AltitudeMax float64 `json:"altitudeMax"`

	// Spawning and removal
	SpawnHalfExtent float64           `json:"spawnHalfExtent"` // spawn square is [-h, h] on X and Z
	SpawnAltitude   float64           `json:"spawnAltitude"`   // also the altitude agents snap back to
	RemovedPosition geometry.Vector3D `json:"removedPosition"`
}

func DefaultConfig() Config {
	return Config{
		AgentCount:      25,
		AttractRadius:   60,
		RepelRadius:     40,
		AlignRadius:     10,
		CohesionSpeed:   5,
		CohesionGain:    8,
		SeparationGain:  8,
		AlignmentGain:   4,
		MinSpeed:        10,
		MaxSpeed:        50,
		AltitudeMin:     1.4,
		AltitudeMax:     1.6,
		SpawnHalfExtent: 90,
		SpawnAltitude:   1.5,
		RemovedPosition: geometry.Vector3D{X: 0, Y: -100, Z: 0},
	}
}

// Validate checks the configuration and returns the first violation found.
func (c Config) Validate() error {
	positives := []struct {
		name  string
		value float64
	}{
		{"attractRadius", c.AttractRadius},
		{"repelRadius", c.RepelRadius},
		{"alignRadius", c.AlignRadius},
		{"maxSpeed", c.MaxSpeed},
	}
	nonNegatives := []struct {
		name  string
		value float64
	}{
		{"cohesionSpeed", c.CohesionSpeed},
		{"cohesionGain", c.CohesionGain},
		{"separationGain", c.SeparationGain},
		{"alignmentGain", c.AlignmentGain},
		{"minSpeed", c.MinSpeed},
		{"spawnHalfExtent", c.SpawnHalfExtent},
	}

	if c.AgentCount <= 0 {
		return fmt.Errorf("%w: agentCount must be positive, got %d", ErrInvalidConfig, c.AgentCount)
	}
	for _, p := range positives {
		if !(p.value > 0) {
			return fmt.Errorf("%w: %s must be positive, got %v", ErrInvalidConfig, p.name, p.value)
		}
	}
	for _, p := range nonNegatives {
		if !(p.value >= 0) {
			return fmt.Errorf("%w: %s must not be negative, got %v", ErrInvalidConfig, p.name, p.value)
		}
	}
	if c.MinSpeed > c.MaxSpeed {
		return fmt.Errorf("%w: minSpeed %v exceeds maxSpeed %v", ErrInvalidConfig, c.MinSpeed, c.MaxSpeed)
	}
	if c.AltitudeMin > c.AltitudeMax {
		return fmt.Errorf("%w: altitudeMin %v exceeds altitudeMax %v", ErrInvalidConfig, c.AltitudeMin, c.AltitudeMax)
	}
	if c.SpawnAltitude < c.AltitudeMin || c.SpawnAltitude > c.AltitudeMax {
		return fmt.Errorf("%w: spawnAltitude %v outside altitude band [%v, %v]",
			ErrInvalidConfig, c.SpawnAltitude, c.AltitudeMin, c.AltitudeMax)
	}
	return nil
}
