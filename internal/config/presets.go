package config

import "math"

var Presets = map[string]*Config{
	// The classic picture: two back-to-back jets showered four layers deep.
	"dijet": {
		Layers: 4, Theta0: math.Pi / 4, BackToBack: true,
		Momentum: MomentumConfig{Px: 100, Py: 100, Pz: 100},
	},
	"single": {
		Layers: 4, Theta0: math.Pi / 4, BackToBack: false,
		Momentum: MomentumConfig{Px: 100, Py: 100, Pz: 100},
	},
	"deep": {
		Layers: 8, Theta0: math.Pi / 4, BackToBack: true,
		Momentum: MomentumConfig{Px: 100, Py: 100, Pz: 100},
	},
	"pencil": {
		Layers: 6, Theta0: 0, BackToBack: false,
		Momentum: MomentumConfig{Px: 100, Py: 0, Pz: 0},
	},
}

// GetPreset returns a copy, so callers can layer overrides on the result
// without corrupting the preset table.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	c := *cfg
	return &c
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
