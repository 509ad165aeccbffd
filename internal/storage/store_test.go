package storage

import (
	"testing"

	"github.com/kinjalh/Physics-Jet-Simulator-3D/internal/shower"
)

func TestStoreSaveLoad(t *testing.T) {
	st := New(t.TempDir())

	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	segs := []shower.Segment{
		{Start: shower.Point{X: 0, Y: 0, Z: 0}, End: shower.Point{X: 1, Y: 2, Z: 3}},
		{Start: shower.Point{X: 1, Y: 2, Z: 3}, End: shower.Point{X: 1.5, Y: 2.25, Z: 3.125}},
	}
	meta := RunMetadata{
		Seed:       42,
		Layers:     4,
		Theta0:     0.785,
		BackToBack: true,
		Momentum:   [3]float64{100, 100, 100},
		Partons:    30,
		Leaves:     16,
	}

	runID, err := st.Save(meta, segs)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if runID == "" {
		t.Error("expected non-empty run id")
	}

	loaded, err := st.Load(runID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.Seed != 42 || loaded.Layers != 4 || !loaded.BackToBack {
		t.Errorf("metadata round trip lost fields: %+v", loaded)
	}
	if loaded.ID != runID {
		t.Errorf("expected id %s, got %s", runID, loaded.ID)
	}

	gotSegs, err := st.LoadSegments(runID)
	if err != nil {
		t.Fatalf("load segments failed: %v", err)
	}
	if len(gotSegs) != len(segs) {
		t.Fatalf("expected %d segments, got %d", len(segs), len(gotSegs))
	}
	for i := range segs {
		if gotSegs[i] != segs[i] {
			t.Errorf("segment %d = %+v, want %+v", i, gotSegs[i], segs[i])
		}
	}
}

func TestStoreList(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	runs, err := st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected no runs, got %d", len(runs))
	}

	if _, err := st.Save(RunMetadata{Layers: 2}, nil); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	runs, err = st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 1 {
		t.Errorf("expected 1 run, got %d", len(runs))
	}
}

func TestStoreList_MissingDir(t *testing.T) {
	st := New(t.TempDir() + "/never-created")
	runs, err := st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected no runs, got %d", len(runs))
	}
}

func TestStoreLoad_NotFound(t *testing.T) {
	st := New(t.TempDir())
	if _, err := st.Load("missing"); err == nil {
		t.Error("expected error for missing run")
	}
}
