// Package config handles mesh tool configuration loading and management.
package config

import (
	"errors"
	"fmt"

	"github.com/Faultbox/mundimonium/pkg/units"
)

// Mesh layouts.
const (
	LayoutLattice   = "lattice"
	LayoutIcosphere = "icosphere"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("invalid config")

// Config holds all mesh tool settings.
type Config struct {
	Mesh    MeshConfig    `yaml:"mesh"`
	Terrain TerrainConfig `yaml:"terrain"`
	Query   QueryConfig   `yaml:"query"`
	Logging LoggingConfig `yaml:"logging"`

	// Source is the file the config was read from, empty for defaults.
	Source string `yaml:"-"`
}

// MeshConfig selects and sizes the generated tessellation.
type MeshConfig struct {
	Layout       string  `yaml:"layout"`       // lattice or icosphere
	Rows         int     `yaml:"rows"`         // lattice only
	Cols         int     `yaml:"cols"`         // lattice only
	SideLength   float64 `yaml:"side_length"`  // lattice only
	Radius       float64 `yaml:"radius"`       // icosphere only
	Subdivisions int     `yaml:"subdivisions"` // icosphere only
	Unit         string  `yaml:"unit"`         // unit of mesh lengths
}

// TerrainConfig holds the elevation noise settings. Zero amplitude leaves
// the mesh flat.
type TerrainConfig struct {
	Seed      int64   `yaml:"seed"`
	Amplitude float64 `yaml:"amplitude"`
	Frequency float64 `yaml:"frequency"`
	Octaves   int     `yaml:"octaves"`
}

// QueryConfig holds distance and path query settings.
type QueryConfig struct {
	Workers     int     `yaml:"workers"`
	SlopeWeight float64 `yaml:"slope_weight"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Mesh: MeshConfig{
			Layout:       LayoutLattice,
			Rows:         8,
			Cols:         8,
			SideLength:   1,
			Radius:       1,
			Subdivisions: 2,
			Unit:         units.Meter.String(),
		},
		Terrain: TerrainConfig{
			Seed:      1,
			Amplitude: 0,
			Frequency: 1,
			Octaves:   4,
		},
		Query: QueryConfig{
			Workers:     4,
			SlopeWeight: 10,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate reports the first setting that cannot build a mesh.
func (c *Config) Validate() error {
	switch c.Mesh.Layout {
	case LayoutLattice:
		if c.Mesh.Rows < 2 || c.Mesh.Cols < 2 {
			return fmt.Errorf("%w: lattice needs at least 2x2 vertices, got %dx%d", ErrInvalid, c.Mesh.Rows, c.Mesh.Cols)
		}
		if c.Mesh.SideLength <= 0 {
			return fmt.Errorf("%w: side_length must be positive", ErrInvalid)
		}
	case LayoutIcosphere:
		if c.Mesh.Radius <= 0 {
			return fmt.Errorf("%w: radius must be positive", ErrInvalid)
		}
		if c.Mesh.Subdivisions < 0 {
			return fmt.Errorf("%w: subdivisions must not be negative", ErrInvalid)
		}
	default:
		return fmt.Errorf("%w: unknown layout %q", ErrInvalid, c.Mesh.Layout)
	}
	if _, err := units.Parse(c.Mesh.Unit); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if c.Terrain.Octaves < 1 {
		return fmt.Errorf("%w: octaves must be at least 1", ErrInvalid)
	}
	if c.Query.Workers < 1 {
		return fmt.Errorf("%w: workers must be at least 1", ErrInvalid)
	}
	return nil
}

// Unit returns the parsed mesh unit, falling back to meters.
func (c *Config) Unit() units.Unit {
	u, err := units.Parse(c.Mesh.Unit)
	if err != nil {
		return units.Meter
	}
	return u
}
