package config

import (
	"math"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Layers != 4 {
		t.Errorf("expected 4 layers, got %d", cfg.Layers)
	}
	if !cfg.BackToBack {
		t.Error("default event should be back-to-back")
	}
	p := cfg.InitMomentum()
	if p.X != 100 || p.Y != 100 || p.Z != 100 {
		t.Errorf("expected momentum {100 100 100}, got %+v", p)
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("deep")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Layers != 8 {
		t.Errorf("expected 8 layers, got %d", cfg.Layers)
	}

	if GetPreset("nonexistent") != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestGetPreset_ReturnsCopy(t *testing.T) {
	cfg := GetPreset("deep")
	cfg.Layers = 99
	cfg.Momentum.Px = -1

	again := GetPreset("deep")
	if again.Layers != 8 {
		t.Errorf("preset table mutated: layers = %d, want 8", again.Layers)
	}
	if again.Momentum.Px != 100 {
		t.Errorf("preset table mutated: px = %v, want 100", again.Momentum.Px)
	}
}

func TestListPresets(t *testing.T) {
	presets := ListPresets()
	if len(presets) == 0 {
		t.Error("expected presets")
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shower.yaml")

	cfg := DefaultConfig()
	cfg.Layers = 6
	cfg.Seed = 42
	cfg.Theta0 = math.Pi / 3
	cfg.Momentum.Pz = -50

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.Layers != 6 || loaded.Seed != 42 {
		t.Errorf("round trip lost fields: %+v", loaded)
	}
	if math.Abs(loaded.Theta0-math.Pi/3) > 1e-9 {
		t.Errorf("theta0 = %v, want %v", loaded.Theta0, math.Pi/3)
	}
	if loaded.Momentum.Pz != -50 {
		t.Errorf("pz = %v, want -50", loaded.Momentum.Pz)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
