package core

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// RodConfig holds the material parameters of a rigid segment.
type RodConfig struct {
	Radius       float64 // length
	Density      float64 // kg / length^3
	Friction     float64 // unitless
	RollFriction float64 // unitless
	Restitution  float64
}

func (c RodConfig) Validate() error {
	if c.Radius <= 0 {
		return fmt.Errorf("%w: rod radius must be positive, got %g", ErrInvalidArgument, c.Radius)
	}
	if c.Density < 0 {
		return fmt.Errorf("%w: rod density must be non-negative, got %g", ErrInvalidArgument, c.Density)
	}
	if c.Friction < 0 || c.RollFriction < 0 {
		return fmt.Errorf("%w: friction must be non-negative", ErrInvalidArgument)
	}
	if c.Restitution < 0 || c.Restitution > 1 {
		return fmt.Errorf("%w: restitution must be in [0, 1], got %g", ErrInvalidArgument, c.Restitution)
	}
	return nil
}

// Rod is a cylinder between two nodes.
type Rod struct {
	Base
	name     string
	cfg      RodConfig
	from, to mgl64.Vec3
}

func NewRod(name string, cfg RodConfig, from, to mgl64.Vec3, tags Tags) *Rod {
	return &Rod{
		Base: NewBase(tags),
		name: name,
		cfg:  cfg,
		from: from,
		to:   to,
	}
}

func (r *Rod) Name() string                       { return r.name }
func (r *Rod) Config() RodConfig                  { return r.cfg }
func (r *Rod) Endpoints() (mgl64.Vec3, mgl64.Vec3) { return r.from, r.to }
func (r *Rod) Length() float64                    { return r.to.Sub(r.from).Len() }
func (r *Rod) Center() mgl64.Vec3                 { return r.from.Add(r.to).Mul(0.5) }

func (r *Rod) Volume() float64 {
	return math.Pi * r.cfg.Radius * r.cfg.Radius * r.Length()
}

func (r *Rod) Mass() float64 {
	return r.cfg.Density * r.Volume()
}

func (r *Rod) Accept(v Visitor) {
	v.VisitRod(r)
	r.Base.Accept(v)
}
