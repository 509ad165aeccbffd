package shower

import (
	"math"
	"math/rand"
)

// Sampler draws the kinematic parameters of a splitting from an explicit
// random source, so runs are reproducible from a seed.
type Sampler struct {
	rng *rand.Rand
}

func NewSampler(seed int64) *Sampler {
	return &Sampler{rng: rand.New(rand.NewSource(seed))}
}

// EnergyFraction draws the energy fraction z of a splitting from (0, 1),
// biased toward small values. A candidate u is accepted with probability
// 1/(1+u); acceptance is at least 1/2 over the support, so the loop
// terminates after two tries on average.
func (s *Sampler) EnergyFraction() float64 {
	for {
		u := s.rng.Float64()
		if s.rng.Float64() <= 1/(1+u) {
			return u
		}
	}
}

// SplitAngle draws the opening half-angle theta from (0, pi/2), biased
// toward small angles, with the same 1/(1+u) rejection scheme.
func (s *Sampler) SplitAngle() float64 {
	for {
		u := s.rng.Float64() * math.Pi / 2
		if s.rng.Float64() <= 1/(1+u) {
			return u
		}
	}
}

// Azimuth draws the azimuthal angle phi uniformly from [0, pi/2).
func (s *Sampler) Azimuth() float64 {
	return s.rng.Float64() * math.Pi / 2
}
