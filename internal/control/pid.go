package control

import (
	"fmt"
	"math"

	"github.com/san-kum/superball/internal/superball"
)

// PID holds every actuator at a target tension by adjusting its commanded
// rest length. The output is a force correction, converted to a length
// through the actuator stiffness.
type PID struct {
	Kp     float64
	Ki     float64
	Kd     float64
	Target float64

	integral []float64
	prevErr  []float64
	first    bool
}

func NewPID(kp, ki, kd, target float64) *PID {
	return &PID{
		Kp:     kp,
		Ki:     ki,
		Kd:     kd,
		Target: target,
		first:  true,
	}
}

func (p *PID) OnSetup(m *superball.Model) {
	n := len(m.Actuators())
	p.integral = make([]float64, n)
	p.prevErr = make([]float64, n)
	p.first = true
}

func (p *PID) OnStep(m *superball.Model, dt float64) {
	acts := m.Actuators()
	if len(p.integral) != len(acts) {
		p.OnSetup(m)
	}

	for i, a := range acts {
		err := p.Target - a.Tension()

		u := p.Kp * err
		if !p.first {
			p.integral[i] += err * dt
			derivative := (err - p.prevErr[i]) / dt
			u += p.Ki*p.integral[i] + p.Kd*derivative
		}
		p.prevErr[i] = err

		// more tension needs a shorter cable
		rest := a.RestLength() - u/a.Config().Stiffness
		if math.IsNaN(rest) || math.IsInf(rest, 0) {
			continue
		}
		_ = a.SetControlInput(math.Max(rest, 0))
	}
	p.first = false
}

func (p *PID) OnTeardown(*superball.Model) {
	p.Reset()
}

// Reset clears integral and derivative state
func (p *PID) Reset() {
	p.integral = nil
	p.prevErr = nil
	p.first = true
}

// GetParams returns tunable parameters for live adjustment
func (p *PID) GetParams() map[string]float64 {
	return map[string]float64{
		"Kp":     p.Kp,
		"Ki":     p.Ki,
		"Kd":     p.Kd,
		"Target": p.Target,
	}
}

// SetParam adjusts a PID parameter
func (p *PID) SetParam(name string, value float64) error {
	switch name {
	case "Kp":
		p.Kp = value
	case "Ki":
		p.Ki = value
	case "Kd":
		p.Kd = value
	case "Target":
		if value < 0 {
			return fmt.Errorf("target tension must be non-negative, got %f", value)
		}
		p.Target = value
	default:
		return fmt.Errorf("unknown parameter: %s", name)
	}
	return nil
}
