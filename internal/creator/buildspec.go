package creator

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/san-kum/superball/internal/core"
)

// Builder constructs a model for one pair.
type Builder interface {
	Build(p Pair, from, to mgl64.Vec3) (core.Model, error)
}

// BuildSpec maps tags to builders.
type BuildSpec struct {
	builders map[string]Builder
	order    []string
}

func NewBuildSpec() *BuildSpec {
	return &BuildSpec{builders: make(map[string]Builder)}
}

// AddBuilder registers b for tag. A later registration for the same tag
// replaces the earlier one.
func (s *BuildSpec) AddBuilder(tag string, b Builder) error {
	if tag == "" || b == nil {
		return fmt.Errorf("%w: tag %q", ErrInvalidBuilder, tag)
	}
	if _, ok := s.builders[tag]; !ok {
		s.order = append(s.order, tag)
	}
	s.builders[tag] = b
	return nil
}

// Resolve returns the builder for the first of tags that has one.
func (s *BuildSpec) Resolve(tags core.Tags) (Builder, string, bool) {
	for _, t := range tags {
		if b, ok := s.builders[t]; ok {
			return b, t, true
		}
	}
	return nil, "", false
}

// Tags lists the registered tags in registration order.
func (s *BuildSpec) Tags() []string { return s.order }

// RodInfo builds rigid segments.
type RodInfo struct {
	Config core.RodConfig
}

func NewRodInfo(cfg core.RodConfig) *RodInfo {
	return &RodInfo{Config: cfg}
}

func (ri *RodInfo) Build(p Pair, from, to mgl64.Vec3) (core.Model, error) {
	if err := ri.Config.Validate(); err != nil {
		return nil, err
	}
	if to.Sub(from).Len() == 0 {
		return nil, fmt.Errorf("%w: rod %s", ErrDegeneratePair, p.Name())
	}
	return core.NewRod(p.Name(), ri.Config, from, to, p.Tags), nil
}

// ActuatorInfo builds cable actuators.
type ActuatorInfo struct {
	Config core.ActuatorConfig
}

func NewActuatorInfo(cfg core.ActuatorConfig) *ActuatorInfo {
	return &ActuatorInfo{Config: cfg}
}

func (ai *ActuatorInfo) Build(p Pair, from, to mgl64.Vec3) (core.Model, error) {
	if err := ai.Config.Validate(); err != nil {
		return nil, err
	}
	if to.Sub(from).Len() == 0 {
		return nil, fmt.Errorf("%w: actuator %s", ErrDegeneratePair, p.Name())
	}
	return core.NewBasicActuator(p.Name(), ai.Config, from, to, p.Tags), nil
}
