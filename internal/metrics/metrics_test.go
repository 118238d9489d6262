package metrics

import (
	"math"
	"testing"

	"github.com/san-kum/superball/internal/sim"
)

func TestMeanTension(t *testing.T) {
	m := NewMeanTension()
	m.Observe(sim.State{1, 3}, nil, 0)
	m.Observe(sim.State{4, 6}, nil, 0.1)

	if m.Value() != 3.5 {
		t.Errorf("expected 3.5, got %f", m.Value())
	}
	m.Reset()
	if m.Value() != 0 {
		t.Error("expected zero after reset")
	}
}

func TestPeakTension(t *testing.T) {
	p := NewPeakTension()
	p.Observe(sim.State{1, 9, 3}, nil, 0)
	p.Observe(sim.State{2, 4}, nil, 0.1)

	if p.Value() != 9 {
		t.Errorf("expected 9, got %f", p.Value())
	}
}

func TestSlack(t *testing.T) {
	s := NewSlack(1.0)
	s.Observe(sim.State{0, 5, 0.5, 10}, nil, 0)

	if s.Value() != 0.5 {
		t.Errorf("expected 0.5, got %f", s.Value())
	}
	s.Reset()
	if s.Value() != 0 {
		t.Error("expected zero after reset")
	}
}

func TestControlEffort(t *testing.T) {
	c := NewControlEffort()
	c.Observe(nil, sim.Control{-0.5, 0.5}, 0)
	c.Observe(nil, sim.Control{0, 0}, 0.1)

	if c.Value() != 0.5 {
		t.Errorf("expected 0.5, got %f", c.Value())
	}
}

func TestControlEffortSumsActuators(t *testing.T) {
	c := NewControlEffort()
	// 24 actuators each paying out 0.01 over one step is 0.24 of cable.
	u := make(sim.Control, 24)
	for i := range u {
		u[i] = 0.01
	}
	c.Observe(nil, u, 0)
	if math.Abs(c.Value()-0.24) > 1e-12 {
		t.Errorf("expected 0.24, got %f", c.Value())
	}
	c.Reset()
	if c.Value() != 0 {
		t.Errorf("expected 0 after reset, got %f", c.Value())
	}
}

func TestElasticEnergy(t *testing.T) {
	e := NewElasticEnergy(100)
	e.Observe(sim.State{10, 20}, nil, 0)

	expected := (100.0 + 400.0) / 200.0
	if math.Abs(e.Value()-expected) > 1e-12 {
		t.Errorf("expected %f, got %f", expected, e.Value())
	}
}

func TestDefaultsAreIndependent(t *testing.T) {
	a, b := Defaults(613), Defaults(613)
	a[0].Observe(sim.State{100}, nil, 0)
	if b[0].Value() != 0 {
		t.Error("Defaults shares metric instances")
	}

	names := make(map[string]bool)
	for _, m := range a {
		if names[m.Name()] {
			t.Errorf("duplicate metric %s", m.Name())
		}
		names[m.Name()] = true
	}
}
