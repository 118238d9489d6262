package superball

import (
	"fmt"
	"sort"

	"github.com/san-kum/superball/internal/core"
)

// Rod is 1.5m long by 3cm radius, 0.00424 m^3. SUPERball v1.5 struts are
// 3.5kg, which comes out to 0.825 kg / dm^3.
const (
	DefaultDensity        = 0.688     // kg / length^3
	DefaultRadius         = 0.127 / 2 // rod diameter / 2
	DefaultMotorRadius    = 0.56 / 2  // motor diameter / 2
	DefaultStiffness      = 613.0     // kg / sec^2
	DefaultDamping        = 200.0 / 3 // kg / sec
	DefaultRodLength      = 6.5       // length
	DefaultRodSpace       = 3.25      // length
	DefaultFriction       = 0.99      // unitless
	DefaultRollFriction   = 0.01      // unitless
	DefaultRestitution    = 0.0       // unitless
	DefaultPretension     = 2100.0    // force
	DefaultHistory        = false     // per-step actuator logging
	DefaultMaxTension     = 100000.0  // force
	DefaultTargetVelocity = 10000.0   // length / sec
)

// Config holds the physical parameters of the robot.
type Config struct {
	Density        float64 `yaml:"density"`
	Radius         float64 `yaml:"radius"`
	MotorRadius    float64 `yaml:"motor_radius"`
	Stiffness      float64 `yaml:"stiffness"`
	Damping        float64 `yaml:"damping"`
	RodLength      float64 `yaml:"rod_length"`
	RodSpace       float64 `yaml:"rod_space"`
	Friction       float64 `yaml:"friction"`
	RollFriction   float64 `yaml:"roll_friction"`
	Restitution    float64 `yaml:"restitution"`
	Pretension     float64 `yaml:"pretension"`
	History        bool    `yaml:"history"`
	MaxTension     float64 `yaml:"max_tension"`
	TargetVelocity float64 `yaml:"target_velocity"`
}

func DefaultConfig() Config {
	return Config{
		Density:        DefaultDensity,
		Radius:         DefaultRadius,
		MotorRadius:    DefaultMotorRadius,
		Stiffness:      DefaultStiffness,
		Damping:        DefaultDamping,
		RodLength:      DefaultRodLength,
		RodSpace:       DefaultRodSpace,
		Friction:       DefaultFriction,
		RollFriction:   DefaultRollFriction,
		Restitution:    DefaultRestitution,
		Pretension:     DefaultPretension,
		History:        DefaultHistory,
		MaxTension:     DefaultMaxTension,
		TargetVelocity: DefaultTargetVelocity,
	}
}

func (c Config) Validate() error {
	if c.RodLength <= 0 {
		return fmt.Errorf("%w: rod length must be positive, got %g", core.ErrInvalidArgument, c.RodLength)
	}
	if c.RodSpace <= 0 {
		return fmt.Errorf("%w: rod space must be positive, got %g", core.ErrInvalidArgument, c.RodSpace)
	}
	if err := c.RodConfig().Validate(); err != nil {
		return err
	}
	if err := c.MotorConfig().Validate(); err != nil {
		return err
	}
	return c.ActuatorConfig().Validate()
}

func (c Config) RodConfig() core.RodConfig {
	return core.RodConfig{
		Radius:       c.Radius,
		Density:      c.Density,
		Friction:     c.Friction,
		RollFriction: c.RollFriction,
		Restitution:  c.Restitution,
	}
}

// MotorConfig is the rod config with the motor housing radius.
func (c Config) MotorConfig() core.RodConfig {
	rc := c.RodConfig()
	rc.Radius = c.MotorRadius
	return rc
}

func (c Config) ActuatorConfig() core.ActuatorConfig {
	return core.ActuatorConfig{
		Stiffness:      c.Stiffness,
		Damping:        c.Damping,
		Pretension:     c.Pretension,
		History:        c.History,
		MaxTension:     c.MaxTension,
		TargetVelocity: c.TargetVelocity,
	}
}

// params maps the tunable scalar fields by name. Damping, friction, rolling
// friction, restitution and rod length never reach a cable tension on fixed
// geometry, so they are settable from YAML only.
func (c *Config) params() map[string]*float64 {
	return map[string]*float64{
		"density":         &c.Density,
		"radius":          &c.Radius,
		"motor_radius":    &c.MotorRadius,
		"stiffness":       &c.Stiffness,
		"rod_space":       &c.RodSpace,
		"pretension":      &c.Pretension,
		"max_tension":     &c.MaxTension,
		"target_velocity": &c.TargetVelocity,
	}
}

// GetParams returns the scalar parameters keyed by their yaml names.
func (c Config) GetParams() map[string]float64 {
	out := make(map[string]float64)
	for k, v := range c.params() {
		out[k] = *v
	}
	return out
}

// ParamNames lists the names accepted by WithParam, sorted.
func ParamNames() []string {
	var c Config
	names := make([]string, 0, len(c.params()))
	for k := range c.params() {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// WithParam returns a copy of c with the named parameter set to value.
func (c Config) WithParam(name string, value float64) (Config, error) {
	p, ok := c.params()[name]
	if !ok {
		return c, fmt.Errorf("%w: unknown parameter %q", core.ErrInvalidArgument, name)
	}
	*p = value
	return c, nil
}
