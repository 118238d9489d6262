package config

import (
	"sort"

	"github.com/san-kum/superball/internal/superball"
)

func preset(mutate func(c *Config)) *Config {
	c := DefaultConfig()
	mutate(c)
	return c
}

var Presets = map[string]*Config{
	"default": DefaultConfig(),
	"hold": preset(func(c *Config) {
		c.Controller = "pid"
		c.Duration = 10.0
	}),
	"soft": preset(func(c *Config) {
		c.Controller = "pid"
		c.ControllerParams.Target = superball.DefaultPretension / 2
	}),
	"taut": preset(func(c *Config) {
		c.Controller = "pid"
		c.ControllerParams.Target = superball.DefaultPretension * 2
	}),
	"logged": preset(func(c *Config) {
		c.Model.History = true
		c.Duration = 1.0
	}),
	// rest length controller era: pretension of 4 * stiffness
	"legacy": preset(func(c *Config) {
		c.Model.Pretension = 4 * superball.DefaultStiffness
	}),
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	c := *p
	return &c
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
