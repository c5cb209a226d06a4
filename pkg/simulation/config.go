package simulation

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/lao-tseu-is-alive/go-flock-simulation/pkg/flock"
	"github.com/santhosh-tekuri/jsonschema/v5"
	"github.com/shirou/gopsutil/v3/cpu"
)

// Unlimited is the velocity limit value meaning "do not clamp", for the
// command line and for TOML files which cannot express null.
const Unlimited = -1.0

type Config struct {
	// World Dimensions
	WorldWidth  float64 `json:"worldWidth"`
	WorldHeight float64 `json:"worldHeight"`

	// Population
	Population int `json:"population"`

	// VelocityLimit bounds each velocity component. nil or Unlimited disables it.
	VelocityLimit *float64 `json:"velocityLimit"`

	// Flocking rules
	SeparationWeight float64 `json:"separationWeight"`
	CohesionWeight   float64 `json:"cohesionWeight"`
	AlignmentWeight  float64 `json:"alignmentWeight"`
	VisionRadius     float64 `json:"visionRadius"`

	// Runtime
	Seed    *uint64 `json:"seed,omitempty"` // nil means a random placement
	Workers int     `json:"workers"`        // 0 means one per logical CPU

	// Rendering
	ShowUI     bool `json:"showUI"`
	FrameCount int  `json:"frameCount"` // wing-flap animation frames
}

func DefaultConfig() *Config {
	limit := 10.0
	return &Config{
		WorldWidth:       800,
		WorldHeight:      600,
		Population:       1000,
		VelocityLimit:    &limit,
		SeparationWeight: 1.0,
		CohesionWeight:   0.01,
		AlignmentWeight:  0.02,
		VisionRadius:     125,
		ShowUI:           true,
		FrameCount:       8,
	}
}

// LoadConfig loads configuration from a JSON or TOML file and validates it
// against the schema. Keys missing from the file keep their default value.
func LoadConfig(configFile string, schemaFile string) (*Config, error) {
	// 1. Compile Schema
	sch, err := jsonschema.Compile(schemaFile)
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema: %w", err)
	}

	// 2. Read Config File
	b, err := os.ReadFile(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}

	// 3. Decode to a generic document
	var doc map[string]interface{}
	switch strings.ToLower(filepath.Ext(configFile)) {
	case ".toml":
		if _, err := toml.Decode(string(b), &doc); err != nil {
			return nil, fmt.Errorf("failed to decode config toml: %w", err)
		}
		// the validated document is re-encoded so both formats share one unmarshal path
		if b, err = json.Marshal(doc); err != nil {
			return nil, fmt.Errorf("failed to convert config toml: %w", err)
		}
	default:
		if err := json.Unmarshal(b, &doc); err != nil {
			return nil, fmt.Errorf("failed to decode config json: %w", err)
		}
	}

	// 4. Validate
	if err := sch.Validate(doc); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	// 5. Unmarshal over the defaults
	cfg := DefaultConfig()
	if err := json.Unmarshal(b, cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return cfg, nil
}

// Limit converts the configured velocity limit.
func (c *Config) Limit() flock.Limit {
	if c.VelocityLimit == nil {
		return flock.NoLimit()
	}
	return LimitFromFlag(*c.VelocityLimit)
}

// SetLimit stores l back into the configuration.
func (c *Config) SetLimit(l flock.Limit) {
	if v, ok := l.Get(); ok {
		c.VelocityLimit = &v
		return
	}
	c.VelocityLimit = nil
}

// Params returns the flocking parameters described by the configuration.
func (c *Config) Params() flock.Params {
	return flock.Params{
		SeparationWeight: c.SeparationWeight,
		CohesionWeight:   c.CohesionWeight,
		AlignmentWeight:  c.AlignmentWeight,
		VisionRadius:     c.VisionRadius,
		VelocityLimit:    c.Limit(),
	}
}

// WorkerCount resolves Workers: 0 means one goroutine per logical CPU.
func (c *Config) WorkerCount() int {
	if c.Workers > 0 {
		return c.Workers
	}
	if n, err := cpu.Counts(true); err == nil && n > 0 {
		return n
	}
	return runtime.NumCPU()
}

// LimitFromFlag interprets a -vlim style value: Unlimited disables the
// limit, anything else is used as an absolute value.
func LimitFromFlag(v float64) flock.Limit {
	if v == Unlimited {
		return flock.NoLimit()
	}
	return flock.LimitOf(math.Abs(v))
}
