package shower

import (
	"bytes"
	"strings"
	"testing"
)

func TestBuild_ZeroLayers(t *testing.T) {
	b := NewBuilder(NewSampler(1), 0)
	if root := b.Build(Momentum{1, 0, 0}, 0); root != nil {
		t.Errorf("expected nil tree for zero layers, got %+v", root)
	}
}

func TestBuild_OneLayer(t *testing.T) {
	b := NewBuilder(NewSampler(1), 1)
	root := b.Build(Momentum{1, 0, 0}, 0)
	if root == nil {
		t.Fatal("expected single node, got nil")
	}
	if root.P != (Momentum{1, 0, 0}) {
		t.Errorf("root momentum = %+v, want {1 0 0}", root.P)
	}
	if root.Left != nil || root.Right != nil {
		t.Error("single-layer tree should have no children")
	}
}

func TestBuild_CompleteTree(t *testing.T) {
	for layers := 0; layers <= 6; layers++ {
		b := NewBuilder(NewSampler(int64(layers)+10), layers)
		root := b.Build(Momentum{100, 100, 100}, 0.5)

		want := 1<<layers - 1
		if got := root.Count(); got != want {
			t.Errorf("layers=%d: count = %d, want %d", layers, got, want)
		}
		if got := root.Depth(); got != layers {
			t.Errorf("layers=%d: depth = %d, want %d", layers, got, layers)
		}

		// Every internal node has both children; leaves sit at max depth.
		root.Walk(func(node *Parton, depth int) {
			if (node.Left == nil) != (node.Right == nil) {
				t.Errorf("layers=%d: single-child node at depth %d", layers, depth)
			}
			if node.Left == nil && depth != layers-1 {
				t.Errorf("layers=%d: leaf at depth %d", layers, depth)
			}
		})
	}
}

func TestBuild_Reproducible(t *testing.T) {
	p0 := Momentum{100, 100, 100}
	a := NewBuilder(NewSampler(7), 5).Build(p0, 0.25)
	b := NewBuilder(NewSampler(7), 5).Build(p0, 0.25)

	var got, want []Momentum
	a.Walk(func(n *Parton, _ int) { got = append(got, n.P) })
	b.Walk(func(n *Parton, _ int) { want = append(want, n.P) })

	if len(got) != len(want) {
		t.Fatalf("tree sizes differ: %d vs %d", len(got), len(want))
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("node %d differs: %+v vs %+v", i, got[i], want[i])
		}
	}
}

func TestBuild_Trace(t *testing.T) {
	var buf bytes.Buffer
	b := NewBuilder(NewSampler(1), 2)
	b.SetTrace(&buf)
	b.Build(Momentum{1, 0, 0}, 0)

	out := buf.String()
	if !strings.Contains(out, "theta_0") || !strings.Contains(out, "split") {
		t.Errorf("trace output missing splitting lines:\n%s", out)
	}
	// Every built node logs one splitting: 3 nodes for 2 layers.
	if got := strings.Count(out, "split ["); got != 3 {
		t.Errorf("expected 3 splittings in trace, got %d", got)
	}
}

func TestBuildEvent_BackToBack(t *testing.T) {
	b := NewBuilder(NewSampler(9), 3)
	ev := BuildEvent(b, Momentum{100, 100, 100}, 0.785, true)

	if len(ev.Jets) != 2 {
		t.Fatalf("expected 2 jets, got %d", len(ev.Jets))
	}
	if want := 2 * (1<<3 - 1); ev.Count() != want {
		t.Errorf("event count = %d, want %d", ev.Count(), want)
	}
	if ev.Jets[1].P != (Momentum{-100, -100, -100}) {
		t.Errorf("recoil jet momentum = %+v, want {-100 -100 -100}", ev.Jets[1].P)
	}
}
