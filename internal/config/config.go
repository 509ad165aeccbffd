package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/kinjalh/Physics-Jet-Simulator-3D/internal/shower"
)

const DefaultLayers = shower.DefaultLayers

var (
	// DefaultTheta0 is the in-plane angle of the initial parton.
	DefaultTheta0 = shower.DefaultTheta0

	DefaultPx = shower.DefaultMomentum.X
	DefaultPy = shower.DefaultMomentum.Y
	DefaultPz = shower.DefaultMomentum.Z
)

type Config struct {
	Layers     int            `yaml:"layers"`
	Seed       int64          `yaml:"seed"`
	Theta0     float64        `yaml:"theta0"`
	BackToBack bool           `yaml:"back_to_back"`
	Momentum   MomentumConfig `yaml:"momentum"`
}

type MomentumConfig struct {
	Px float64 `yaml:"px"`
	Py float64 `yaml:"py"`
	Pz float64 `yaml:"pz"`
}

func DefaultConfig() *Config {
	return &Config{
		Layers:     DefaultLayers,
		Theta0:     DefaultTheta0,
		BackToBack: true,
		Momentum: MomentumConfig{
			Px: DefaultPx,
			Py: DefaultPy,
			Pz: DefaultPz,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) InitMomentum() shower.Momentum {
	return shower.Momentum{X: c.Momentum.Px, Y: c.Momentum.Py, Z: c.Momentum.Pz}
}
