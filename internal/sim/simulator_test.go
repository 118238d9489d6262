package sim

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/san-kum/superball/internal/control"
	"github.com/san-kum/superball/internal/core"
	"github.com/san-kum/superball/internal/superball"
)

type testMetric struct {
	count int
	sum   float64
}

func (t *testMetric) Name() string { return "test" }
func (t *testMetric) Observe(x State, u Control, time float64) {
	t.count++
	t.sum += x.Mean()
}
func (t *testMetric) Value() float64 {
	if t.count == 0 {
		return 0
	}
	return t.sum / float64(t.count)
}
func (t *testMetric) Reset() {
	t.count = 0
	t.sum = 0
}

func newSimulator() *Simulator {
	return New(superball.DefaultConfig(), core.DefaultWorldConfig(), nil)
}

func TestSimulatorRun(t *testing.T) {
	s := newSimulator()
	metric := &testMetric{}
	s.AddMetric(metric)

	result, err := s.Run(context.Background(), Config{Dt: 0.01, Duration: 0.1})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if len(result.States) != 11 {
		t.Errorf("expected 11 states, got %d", len(result.States))
	}
	if len(result.Times) != 11 {
		t.Errorf("expected 11 times, got %d", len(result.Times))
	}
	if len(result.Actuators) != 25 || len(result.States[0]) != 25 {
		t.Errorf("expected 25 actuator columns, got %d/%d", len(result.Actuators), len(result.States[0]))
	}
	if metric.count != 10 {
		t.Errorf("expected 10 observations, got %d", metric.count)
	}
	if math.Abs(result.Metrics["test"]-superball.DefaultPretension) > 1e-6 {
		t.Errorf("expected mean tension at pretension, got %f", result.Metrics["test"])
	}
}

func TestSimulatorInvalidConfig(t *testing.T) {
	s := newSimulator()

	tests := []struct {
		name string
		cfg  Config
	}{
		{"zero dt", Config{Dt: 0, Duration: 1.0}},
		{"negative dt", Config{Dt: -0.1, Duration: 1.0}},
		{"zero duration", Config{Dt: 0.1, Duration: 0}},
		{"negative duration", Config{Dt: 0.1, Duration: -1.0}},
		{"dt beyond duration", Config{Dt: 2, Duration: 1.0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := s.Run(context.Background(), tt.cfg); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestSimulatorInvalidModel(t *testing.T) {
	cfg := superball.DefaultConfig()
	cfg.Radius = 0
	s := New(cfg, core.DefaultWorldConfig(), nil)

	_, err := s.Run(context.Background(), DefaultConfig())
	if !errors.Is(err, core.ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestSimulatorController(t *testing.T) {
	s := newSimulator()
	s.AddController(control.NewPID(0.5, 0, 0, 1000))

	result, err := s.Run(context.Background(), Config{Dt: 0.01, Duration: 1})
	if err != nil {
		t.Fatal(err)
	}

	final := result.States[len(result.States)-1]
	if math.Abs(final.Mean()-1000) > 1e-3 {
		t.Errorf("expected mean tension 1000, got %f", final.Mean())
	}
	if result.Controls[0][0] <= 0 {
		t.Errorf("expected first control to lengthen cables, got %f", result.Controls[0][0])
	}
}

func TestSimulatorCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := newSimulator().Run(ctx, Config{Dt: 0.01, Duration: 1})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
	if result == nil || len(result.States) != 1 {
		t.Error("expected the initial sample in the partial result")
	}
}

type countingObserver struct{ n int }

func (c *countingObserver) OnStep(State, Control, float64) { c.n++ }

func TestSimulatorObservers(t *testing.T) {
	s := newSimulator()
	obs := &countingObserver{}
	s.AddObserver(obs)

	if _, err := s.Run(context.Background(), Config{Dt: 0.1, Duration: 1}); err != nil {
		t.Fatal(err)
	}
	if obs.n != 10 {
		t.Errorf("expected 10 observer calls, got %d", obs.n)
	}
}
