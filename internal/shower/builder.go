package shower

import (
	"fmt"
	"io"
	"math"
)

// Builder grows shower trees to a fixed number of layers, drawing the
// splitting kinematics from its Sampler.
type Builder struct {
	sampler *Sampler
	layers  int
	trace   io.Writer
}

func NewBuilder(sampler *Sampler, layers int) *Builder {
	return &Builder{sampler: sampler, layers: layers}
}

// SetTrace directs a line per splitting (sampled angles and resulting
// momenta) to w. The format is informational only.
func (b *Builder) SetTrace(w io.Writer) {
	b.trace = w
}

// Build grows a shower from initial momentum p0 at in-plane angle theta0.
// The result is a complete binary tree of exactly b.layers layers; a zero
// or negative layer count yields a nil tree.
func (b *Builder) Build(p0 Momentum, theta0 float64) *Parton {
	return b.build(p0, theta0, 0)
}

func (b *Builder) build(p0 Momentum, theta0 float64, depth int) *Parton {
	if depth >= b.layers {
		return nil
	}

	z := b.sampler.EnergyFraction()
	theta := b.sampler.SplitAngle()
	phi := b.sampler.Azimuth()

	pa, pb := Split(p0, z, theta0, theta, phi)
	if b.trace != nil {
		deg := 180 / math.Pi
		fmt.Fprintf(b.trace, "theta_0 = %.2f, theta = %.2f, phi = %.2f\n",
			theta0*deg, theta*deg, phi*deg)
		fmt.Fprintf(b.trace, "split [%.2f %.2f %.2f] into [%.2f %.2f %.2f] and [%.2f %.2f %.2f]\n",
			p0.X, p0.Y, p0.Z, pa.X, pa.Y, pa.Z, pb.X, pb.Y, pb.Z)
	}

	return &Parton{
		P:     p0,
		Left:  b.build(pa, theta0+theta, depth+1),
		Right: b.build(pb, theta0-theta, depth+1),
	}
}
