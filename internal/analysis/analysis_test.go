package analysis

import (
	"math"
	"testing"

	"github.com/kinjalh/Physics-Jet-Simulator-3D/internal/shower"
)

func buildTestShower(t *testing.T, layers int) *shower.Parton {
	t.Helper()
	b := shower.NewBuilder(shower.NewSampler(11), layers)
	return b.Build(shower.Momentum{X: 100, Y: 100, Z: 100}, math.Pi/4)
}

func TestLeafSpectrum(t *testing.T) {
	root := buildTestShower(t, 4)
	spectrum := LeafSpectrum(root)

	if len(spectrum) != 8 {
		t.Fatalf("expected 8 leaves for 4 layers, got %d", len(spectrum))
	}
	for i, e := range spectrum {
		if e <= 0 {
			t.Errorf("leaf %d has non-positive energy %v", i, e)
		}
	}
}

func TestLayerMomentumSum(t *testing.T) {
	root := buildTestShower(t, 5)
	sums := LayerMomentumSum(root)

	if len(sums) != 5 {
		t.Fatalf("expected 5 layers, got %d", len(sums))
	}
	if sums[0] != root.P {
		t.Errorf("layer 0 sum = %+v, want root momentum %+v", sums[0], root.P)
	}
	for depth, sum := range sums {
		if !sum.IsValid() {
			t.Errorf("layer %d sum is not finite: %+v", depth, sum)
		}
	}
}

func TestLayerDrift(t *testing.T) {
	root := buildTestShower(t, 4)
	drift := LayerDrift(root)

	if len(drift) != 4 {
		t.Fatalf("expected 4 layers, got %d", len(drift))
	}
	if drift[0] != 0 {
		t.Errorf("root layer drift = %v, want 0", drift[0])
	}

	if LayerDrift(nil) != nil {
		t.Error("expected nil drift for nil tree")
	}
}

func TestOpeningAngles(t *testing.T) {
	root := buildTestShower(t, 3)
	angles := OpeningAngles(root)

	// 3 splittings happen in a 3-layer tree (root and its two children).
	if len(angles) != 3 {
		t.Fatalf("expected 3 opening angles, got %d", len(angles))
	}
	for i, a := range angles {
		if a < 0 || a > math.Pi {
			t.Errorf("angle %d = %v, outside [0, pi]", i, a)
		}
	}
}

func TestEnergyFractions(t *testing.T) {
	root := buildTestShower(t, 4)
	fractions := EnergyFractions(root)

	if len(fractions) != 7 {
		t.Fatalf("expected 7 splittings, got %d", len(fractions))
	}
	for i, z := range fractions {
		if z <= 0 || z >= 1 {
			t.Errorf("fraction %d = %v, outside (0, 1)", i, z)
		}
	}
}
