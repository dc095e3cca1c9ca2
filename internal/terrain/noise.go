package terrain

import (
	"github.com/golang/geo/r3"
	"github.com/ojrac/opensimplex-go"
)

// Sampler returns a scalar field value at a position.
type Sampler interface {
	Sample(pos r3.Vector) float64
}

// Noise is seeded fractal simplex noise in three dimensions. Samples lie in
// [-1, 1].
type Noise struct {
	Frequency   float64
	Octaves     int
	Persistence float64
	Lacunarity  float64

	seed    int64
	simplex opensimplex.Noise
}

// NewNoise returns noise with the default octave falloff.
func NewNoise(seed int64, frequency float64, octaves int) *Noise {
	return &Noise{
		Frequency:   frequency,
		Octaves:     octaves,
		Persistence: 0.51,
		Lacunarity:  3.007,
		seed:        seed,
		simplex:     opensimplex.NewNormalized(seed),
	}
}

// Seed returns the seed the noise was built from.
func (n *Noise) Seed() int64 { return n.seed }

// Sample sums Octaves layers of simplex noise, each at Lacunarity times the
// previous frequency and Persistence times the previous amplitude.
func (n *Noise) Sample(pos r3.Vector) float64 {
	octaves := n.Octaves
	if octaves < 1 {
		octaves = 1
	}
	amp, freq := 1.0, n.Frequency
	var sum, norm float64
	for o := 0; o < octaves; o++ {
		sum += amp * n.value(pos.Mul(freq))
		norm += amp
		amp *= n.Persistence
		freq *= n.Lacunarity
	}
	if norm == 0 {
		return 0
	}
	return sum / norm
}

// value maps one simplex sample from [0, 1) to [-1, 1).
func (n *Noise) value(p r3.Vector) float64 {
	return 2*n.simplex.Eval3(p.X, p.Y, p.Z) - 1
}
