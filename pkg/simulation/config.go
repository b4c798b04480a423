package simulation

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/lao-tseu-is-alive/go-flock-simulation/pkg/flock"
	"github.com/lao-tseu-is-alive/go-flock-simulation/pkg/physics"
)

//go:embed flock.schema.json
var configSchema string

var ErrInvalidConfig = errors.New("invalid simulation config")

type Config struct {
	// Population
	FlockCount  int    `json:"flockCount"`
	StartActive bool   `json:"startActive"`
	Seed        uint64 `json:"seed"` // 0 picks a random seed

	// Agent bodies
	AgentRadius float64 `json:"agentRadius"`
	AgentMass   float64 `json:"agentMass"`

	// Projectiles in flight at once, 0 means unlimited
	MaxProjectiles int `json:"maxProjectiles"`

	Flock      flock.Config             `json:"flock"`
	Projectile physics.ProjectileConfig `json:"projectile"`
}

func DefaultConfig() *Config {
	return &Config{
		FlockCount:     4,
		StartActive:    true,
		AgentRadius:    0.5,
		AgentMass:      1,
		MaxProjectiles: 1,
		Flock:          flock.DefaultConfig(),
		Projectile:     physics.DefaultProjectileConfig(),
	}
}

// Validate checks the settings the schema cannot express.
func (c *Config) Validate() error {
	if c.FlockCount <= 0 {
		return fmt.Errorf("%w: flockCount must be positive, got %d", ErrInvalidConfig, c.FlockCount)
	}
	if !(c.AgentRadius > 0) || !(c.AgentMass > 0) {
		return fmt.Errorf("%w: agent radius and mass must be positive", ErrInvalidConfig)
	}
	if c.MaxProjectiles < 0 {
		return fmt.Errorf("%w: maxProjectiles must not be negative", ErrInvalidConfig)
	}
	p := c.Projectile
	if !(p.Speed > 0) || !(p.Radius > 0) || !(p.Mass > 0) || !(p.Range > 0) || p.MuzzleOffset < 0 {
		return fmt.Errorf("%w: bad projectile settings %+v", ErrInvalidConfig, p)
	}
	if err := c.Flock.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// Load returns the defaults when configFile is empty, otherwise the file
// validated against schemaFile or, when schemaFile is empty, the embedded schema.
func Load(configFile, schemaFile string) (*Config, error) {
	switch {
	case configFile == "":
		return DefaultConfig(), nil
	case schemaFile == "":
		return LoadConfigEmbedded(configFile)
	default:
		return LoadConfig(configFile, schemaFile)
	}
}

// LoadConfig loads configuration from a JSON file and validates it against the schema.
func LoadConfig(configFile string, schemaFile string) (*Config, error) {
	sch, err := jsonschema.Compile(schemaFile)
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema: %w", err)
	}
	return loadConfig(configFile, sch)
}

// LoadConfigEmbedded is LoadConfig against the schema compiled into the binary.
func LoadConfigEmbedded(configFile string) (*Config, error) {
	sch, err := jsonschema.CompileString("flock.schema.json", configSchema)
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema: %w", err)
	}
	return loadConfig(configFile, sch)
}

func loadConfig(configFile string, sch *jsonschema.Schema) (*Config, error) {
	b, err := os.ReadFile(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}

	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return nil, fmt.Errorf("failed to decode config json: %w", err)
	}
	if err := sch.Validate(v); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	// fields missing from the file keep their default
	cfg := DefaultConfig()
	if err := json.Unmarshal(b, cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
