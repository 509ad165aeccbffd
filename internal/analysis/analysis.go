// Package analysis computes summary observables of built showers: the
// leaf energy spectrum, per-layer momentum sums, and opening angles.
package analysis

import (
	"math"

	"github.com/kinjalh/Physics-Jet-Simulator-3D/internal/shower"
)

// LeafSpectrum returns the magnitudes of the final-state partons in
// depth-first order.
func LeafSpectrum(root *shower.Parton) []float64 {
	leaves := root.Leaves()
	spectrum := make([]float64, len(leaves))
	for i, leaf := range leaves {
		spectrum[i] = leaf.P.Norm()
	}
	return spectrum
}

// LayerMomentumSum returns the vector sum of parton momenta at each depth,
// index 0 being the root. The sums drift away from the root momentum layer
// over layer: the toy splitting projection conserves in-plane magnitude,
// not the vector sum.
func LayerMomentumSum(root *shower.Parton) []shower.Momentum {
	sums := make([]shower.Momentum, root.Depth())
	root.Walk(func(node *shower.Parton, depth int) {
		sums[depth] = sums[depth].Add(node.P)
	})
	return sums
}

// LayerDrift returns, per layer, the distance between that layer's
// momentum sum and the root momentum.
func LayerDrift(root *shower.Parton) []float64 {
	if root == nil {
		return nil
	}
	sums := LayerMomentumSum(root)
	drift := make([]float64, len(sums))
	for i, s := range sums {
		drift[i] = s.Sub(root.P).Norm()
	}
	return drift
}

// OpeningAngles returns, for every splitting, the angle between the two
// daughter momenta, in depth-first order.
func OpeningAngles(root *shower.Parton) []float64 {
	var angles []float64
	root.Walk(func(node *shower.Parton, _ int) {
		if node.Left == nil {
			return
		}
		angles = append(angles, angleBetween(node.Left.P, node.Right.P))
	})
	return angles
}

func angleBetween(a, b shower.Momentum) float64 {
	na, nb := a.Norm(), b.Norm()
	if na == 0 || nb == 0 {
		return 0
	}
	dot := (a.X*b.X + a.Y*b.Y + a.Z*b.Z) / (na * nb)
	if dot > 1 {
		dot = 1
	} else if dot < -1 {
		dot = -1
	}
	return math.Acos(dot)
}

// EnergyFractions recovers the sampled z of every splitting, depth-first.
// The left daughter's in-plane magnitude is exactly |parent|*z under the
// toy projection (its full norm is not, because of the z component).
func EnergyFractions(root *shower.Parton) []float64 {
	var fractions []float64
	root.Walk(func(node *shower.Parton, _ int) {
		if node.Left == nil {
			return
		}
		if mag := node.P.Norm(); mag > 0 {
			fractions = append(fractions, math.Hypot(node.Left.P.X, node.Left.P.Y)/mag)
		}
	})
	return fractions
}
