package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Syrthax/gravity-sim/internal/engine"
)

// Config is the YAML-facing view of the engine parameters plus the
// randomized starting batch.
type Config struct {
	G               float64 `yaml:"g"`
	Softening       float64 `yaml:"softening"`
	Dt              float64 `yaml:"dt"`
	MaxVelocity     float64 `yaml:"max_velocity"`
	MaxMass         float64 `yaml:"max_mass"`
	MaxRadius       float64 `yaml:"max_radius"`
	Capacity        int     `yaml:"capacity"`
	BaseRadius      float64 `yaml:"base_radius"`
	MassRadiusRatio float64 `yaml:"mass_radius_ratio"`
	ViewportW       float64 `yaml:"viewport_width"`
	ViewportH       float64 `yaml:"viewport_height"`
	DriftMargin     float64 `yaml:"drift_margin"`
	Seed            int64   `yaml:"seed"`

	Init InitConfig `yaml:"init"`
}

// InitConfig shapes the batch created on reset.
type InitConfig struct {
	Count   int     `yaml:"count"`
	MassMin float64 `yaml:"mass_min"`
	MassMax float64 `yaml:"mass_max"`
	Speed   float64 `yaml:"speed"`
}

func DefaultConfig() *Config {
	p := engine.DefaultParams()
	return &Config{
		G:               p.G,
		Softening:       p.Softening,
		Dt:              p.Dt,
		MaxVelocity:     p.MaxVelocity,
		MaxMass:         p.MaxMass,
		MaxRadius:       p.MaxRadius,
		Capacity:        p.Capacity,
		BaseRadius:      p.BaseRadius,
		MassRadiusRatio: p.MassRadiusRatio,
		ViewportW:       p.ViewportW,
		ViewportH:       p.ViewportH,
		DriftMargin:     p.DriftMargin,
		Init: InitConfig{
			Count:   p.InitialBodies,
			MassMin: p.InitMassMin,
			MassMax: p.InitMassMax,
			Speed:   p.InitSpeed,
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

// Params converts the config into engine parameters.
func (c *Config) Params() engine.Params {
	return engine.Params{
		G:               c.G,
		Softening:       c.Softening,
		Dt:              c.Dt,
		MaxVelocity:     c.MaxVelocity,
		MaxMass:         c.MaxMass,
		MaxRadius:       c.MaxRadius,
		Capacity:        c.Capacity,
		BaseRadius:      c.BaseRadius,
		MassRadiusRatio: c.MassRadiusRatio,
		ViewportW:       c.ViewportW,
		ViewportH:       c.ViewportH,
		DriftMargin:     c.DriftMargin,
		InitialBodies:   c.Init.Count,
		InitMassMin:     c.Init.MassMin,
		InitMassMax:     c.Init.MassMax,
		InitSpeed:       c.Init.Speed,
		Seed:            c.Seed,
	}
}
