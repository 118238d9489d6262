package core

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// ActuatorConfig holds the parameters of a cable actuator.
type ActuatorConfig struct {
	Stiffness      float64 // kg / sec^2
	Damping        float64 // kg / sec
	Pretension     float64 // force at setup
	History        bool    // record a sample every step
	MaxTension     float64
	TargetVelocity float64 // max rest length change, length / sec
	MinRestLength  float64
}

func (c ActuatorConfig) Validate() error {
	if c.Stiffness <= 0 {
		return fmt.Errorf("%w: actuator stiffness must be positive, got %g", ErrInvalidArgument, c.Stiffness)
	}
	if c.Damping < 0 {
		return fmt.Errorf("%w: actuator damping must be non-negative, got %g", ErrInvalidArgument, c.Damping)
	}
	if c.Pretension < 0 {
		return fmt.Errorf("%w: pretension must be non-negative, got %g", ErrInvalidArgument, c.Pretension)
	}
	if c.MaxTension <= 0 {
		return fmt.Errorf("%w: max tension must be positive, got %g", ErrInvalidArgument, c.MaxTension)
	}
	if c.TargetVelocity <= 0 {
		return fmt.Errorf("%w: target velocity must be positive, got %g", ErrInvalidArgument, c.TargetVelocity)
	}
	if c.MinRestLength < 0 {
		return fmt.Errorf("%w: min rest length must be non-negative, got %g", ErrInvalidArgument, c.MinRestLength)
	}
	return nil
}

// Sample is one history entry of an actuator.
type Sample struct {
	RestLength float64
	Tension    float64
}

// BasicActuator is a linear spring-damper cable between two nodes whose rest
// length is driven toward a commanded value.
type BasicActuator struct {
	Base
	name       string
	cfg        ActuatorConfig
	from, to   mgl64.Vec3
	initRest   float64
	restLength float64
	command    float64
	tension    float64
	history    []Sample
}

// NewBasicActuator sizes the rest length so that the static tension at the
// given geometry equals cfg.Pretension.
func NewBasicActuator(name string, cfg ActuatorConfig, from, to mgl64.Vec3, tags Tags) *BasicActuator {
	a := &BasicActuator{
		Base: NewBase(tags),
		name: name,
		cfg:  cfg,
		from: from,
		to:   to,
	}
	rest := a.Length() - cfg.Pretension/cfg.Stiffness
	a.initRest = math.Max(rest, cfg.MinRestLength)
	a.reset()
	return a
}

func (a *BasicActuator) reset() {
	a.restLength = a.initRest
	a.command = a.initRest
	a.tension = a.computeTension()
	a.history = a.history[:0]
}

func (a *BasicActuator) Name() string                       { return a.name }
func (a *BasicActuator) Config() ActuatorConfig             { return a.cfg }
func (a *BasicActuator) Endpoints() (mgl64.Vec3, mgl64.Vec3) { return a.from, a.to }
func (a *BasicActuator) Length() float64                    { return a.to.Sub(a.from).Len() }
func (a *BasicActuator) RestLength() float64                { return a.restLength }
func (a *BasicActuator) Command() float64                   { return a.command }
func (a *BasicActuator) Tension() float64                   { return a.tension }

// History returns the recorded samples; empty unless History is enabled.
func (a *BasicActuator) History() []Sample { return a.history }

// SetControlInput commands a new rest length. The actuator reaches it over
// subsequent steps at no more than TargetVelocity.
func (a *BasicActuator) SetControlInput(restLength float64) error {
	if restLength < 0 || math.IsNaN(restLength) || math.IsInf(restLength, 0) {
		return fmt.Errorf("%w: rest length command %g", ErrInvalidArgument, restLength)
	}
	a.command = math.Max(restLength, a.cfg.MinRestLength)
	return nil
}

func (a *BasicActuator) Setup(w *World) error {
	a.reset()
	return a.Base.Setup(w)
}

func (a *BasicActuator) Step(dt float64) error {
	if dt <= 0 {
		return fmt.Errorf("%w: dt is not positive (%g)", ErrInvalidArgument, dt)
	}

	maxDelta := a.cfg.TargetVelocity * dt
	delta := a.command - a.restLength
	if delta > maxDelta {
		delta = maxDelta
	} else if delta < -maxDelta {
		delta = -maxDelta
	}
	a.restLength = math.Max(a.restLength+delta, a.cfg.MinRestLength)
	a.tension = a.computeTension()

	if a.cfg.History {
		a.history = append(a.history, Sample{RestLength: a.restLength, Tension: a.tension})
	}

	return a.Base.Step(dt)
}

func (a *BasicActuator) Teardown() {
	a.history = nil
	a.Base.Teardown()
}

// computeTension evaluates the cable on fixed geometry: slack cables carry
// no load and the motor saturates at MaxTension.
func (a *BasicActuator) computeTension() float64 {
	stretch := a.Length() - a.restLength
	if stretch <= 0 {
		return 0
	}
	return math.Min(a.cfg.Stiffness*stretch, a.cfg.MaxTension)
}

func (a *BasicActuator) Accept(v Visitor) {
	v.VisitActuator(a)
	a.Base.Accept(v)
}
