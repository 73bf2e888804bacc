package config

// Presets are named starting setups reachable from the CLI.
var Presets = map[string]*Config{
	"classic": DefaultConfig(),
	"dense": func() *Config {
		c := DefaultConfig()
		c.Init.Count = 25
		c.Init.MassMin = 80
		c.Init.MassMax = 600
		return c
	}(),
	"heavy": func() *Config {
		c := DefaultConfig()
		c.Init.Count = 8
		c.Init.MassMin = 1000
		c.Init.MassMax = 5000
		c.Init.Speed = 0.5
		return c
	}(),
	"drift": func() *Config {
		c := DefaultConfig()
		c.Init.Count = 12
		c.Init.Speed = 4.0
		return c
	}(),
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
