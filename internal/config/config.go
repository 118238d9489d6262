package config

import (
	"fmt"
	"os"

	"github.com/san-kum/superball/internal/core"
	"github.com/san-kum/superball/internal/superball"
	"gopkg.in/yaml.v3"
)

const (
	DefaultDt         = 0.001
	DefaultDuration   = 5.0
	DefaultController = "none"
	DefaultKp         = 0.5
	DefaultKi         = 0.05
	DefaultKd         = 0.0
	DefaultTarget     = superball.DefaultPretension
)

type Config struct {
	Dt               float64          `yaml:"dt"`
	Duration         float64          `yaml:"duration"`
	Controller       string           `yaml:"controller"`
	ControllerParams ControllerConfig `yaml:"controller_params"`
	Model            superball.Config `yaml:"model"`
	World            core.WorldConfig `yaml:"world"`
	Logger           LoggerConfig     `yaml:"logger"`
}

type ControllerConfig struct {
	Kp     float64 `yaml:"kp"`
	Ki     float64 `yaml:"ki"`
	Kd     float64 `yaml:"kd"`
	Target float64 `yaml:"target"`
}

type LoggerConfig struct {
	Level       string `yaml:"level"`
	Format      string `yaml:"format"` // console or json
	LogFile     string `yaml:"log_file"`
	MaxSize     int    `yaml:"max_size"` // megabytes
	MaxBackups  int    `yaml:"max_backups"`
	MaxAge      int    `yaml:"max_age"` // days
	Compress    bool   `yaml:"compress"`
	ServiceName string `yaml:"service_name"`
}

func DefaultConfig() *Config {
	return &Config{
		Dt:         DefaultDt,
		Duration:   DefaultDuration,
		Controller: DefaultController,
		ControllerParams: ControllerConfig{
			Kp:     DefaultKp,
			Ki:     DefaultKi,
			Kd:     DefaultKd,
			Target: DefaultTarget,
		},
		Model: superball.DefaultConfig(),
		World: core.DefaultWorldConfig(),
		Logger: LoggerConfig{
			Level:       "info",
			Format:      "console",
			MaxSize:     10,
			MaxBackups:  3,
			MaxAge:      28,
			ServiceName: "superball",
		},
	}
}

// Load reads a YAML config. Fields missing from the file keep their defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if err := LoadInto(path, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadInto decodes a YAML config on top of cfg, so fields missing from the
// file keep whatever cfg already held, then validates the result.
func LoadInto(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if c.Dt <= 0 {
		return fmt.Errorf("dt must be positive, got %f", c.Dt)
	}
	if c.Duration <= 0 {
		return fmt.Errorf("duration must be positive, got %f", c.Duration)
	}
	switch c.Controller {
	case "none", "pid":
	default:
		return fmt.Errorf("unknown controller: %s", c.Controller)
	}
	return c.Model.Validate()
}

func (c *Config) GetControllerParams() map[string]float64 {
	return map[string]float64{
		"kp":     c.ControllerParams.Kp,
		"ki":     c.ControllerParams.Ki,
		"kd":     c.ControllerParams.Kd,
		"target": c.ControllerParams.Target,
	}
}
