package main

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/mundimonium/internal/config"
	"github.com/Faultbox/mundimonium/internal/terrain"
	"github.com/Faultbox/mundimonium/pkg/tessellation"
	"github.com/Faultbox/mundimonium/pkg/units"
)

// mesh is a generated tessellation with the settings used to query it.
type mesh struct {
	tess      *tessellation.Tessellation
	heightmap *terrain.Heightmap // nil when flat
	unit      units.Unit
	query     config.QueryConfig
}

func generator(cfg *config.Config) (tessellation.Generator, error) {
	switch cfg.Mesh.Layout {
	case config.LayoutLattice:
		return tessellation.Lattice{
			Rows:       cfg.Mesh.Rows,
			Cols:       cfg.Mesh.Cols,
			SideLength: cfg.Mesh.SideLength,
		}, nil
	case config.LayoutIcosphere:
		return tessellation.Icosphere{
			Radius:       cfg.Mesh.Radius,
			Subdivisions: cfg.Mesh.Subdivisions,
		}, nil
	default:
		return nil, fmt.Errorf("unknown layout %q", cfg.Mesh.Layout)
	}
}

// buildMesh generates the configured tessellation and raises terrain on it
// when an amplitude is set.
func buildMesh(cfg *config.Config, log *zap.Logger) (*mesh, error) {
	gen, err := generator(cfg)
	if err != nil {
		return nil, err
	}
	tess, err := tessellation.Build(gen, tessellation.WithLogger(log))
	if err != nil {
		return nil, err
	}

	m := &mesh{tess: tess, unit: cfg.Unit(), query: cfg.Query}
	if cfg.Terrain.Amplitude != 0 {
		noise := terrain.NewNoise(cfg.Terrain.Seed, cfg.Terrain.Frequency, cfg.Terrain.Octaves)
		m.heightmap = terrain.Build(tess, noise, cfg.Terrain.Amplitude)
		if err := m.heightmap.Apply(tess); err != nil {
			return nil, err
		}
		lo, hi := m.heightmap.Range()
		log.Info("terrain applied",
			zap.Int64("seed", cfg.Terrain.Seed),
			zap.Float64("min", lo),
			zap.Float64("max", hi))
	}
	return m, nil
}
