package sim

import (
	"context"
	"fmt"

	"github.com/san-kum/superball/internal/core"
	"github.com/san-kum/superball/internal/superball"
	"go.uber.org/zap"
)

// Simulator builds a fresh model for every run and steps it for the
// configured duration, sampling actuator tensions after each step.
type Simulator struct {
	model       superball.Config
	world       core.WorldConfig
	controllers []core.Observer[*superball.Model]
	metrics     []Metric
	observers   []Observer
	log         *zap.Logger
}

func New(model superball.Config, world core.WorldConfig, log *zap.Logger) *Simulator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Simulator{
		model:       model,
		world:       world,
		controllers: make([]core.Observer[*superball.Model], 0),
		metrics:     make([]Metric, 0),
		observers:   make([]Observer, 0),
		log:         log,
	}
}

func (s *Simulator) AddController(c core.Observer[*superball.Model]) {
	s.controllers = append(s.controllers, c)
}
func (s *Simulator) AddMetric(m Metric)     { s.metrics = append(s.metrics, m) }
func (s *Simulator) AddObserver(o Observer) { s.observers = append(s.observers, o) }

func (s *Simulator) Run(ctx context.Context, cfg Config) (*Result, error) {
	if err := s.validateConfig(cfg); err != nil {
		return nil, err
	}

	m := superball.NewModel(s.model, superball.WithLogger(s.log))
	for _, c := range s.controllers {
		m.Attach(c)
	}
	if err := m.Setup(core.NewWorld(s.world)); err != nil {
		return nil, err
	}
	defer m.Teardown()

	acts := m.Actuators()
	steps := int(cfg.Duration/cfg.Dt + 1e-9)
	result := &Result{
		Actuators: make([]string, len(acts)),
		States:    make([]State, 0, steps+1),
		Controls:  make([]Control, 0, steps),
		Times:     make([]float64, 0, steps+1),
		Metrics:   make(map[string]float64),
		Errors:    make([]error, 0),
	}
	for i, a := range acts {
		result.Actuators[i] = a.Name()
	}

	for _, mt := range s.metrics {
		mt.Reset()
	}

	t := 0.0
	x := sample(acts)
	result.States = append(result.States, x)
	result.Times = append(result.Times, t)

	prevRest := restLengths(acts)
	for i := 0; i < steps; i++ {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		if err := m.Step(cfg.Dt); err != nil {
			return result, fmt.Errorf("step %d: %w", i, err)
		}
		t += cfg.Dt

		x = sample(acts)
		rest := restLengths(acts)
		u := make(Control, len(acts))
		for j := range rest {
			u[j] = rest[j] - prevRest[j]
		}
		prevRest = rest

		if cfg.ValidateState && !x.IsValid() {
			result.Errors = append(result.Errors, SimError{Time: t, Step: i, Message: "invalid tension (NaN/Inf)"})
			break
		}

		for _, mt := range s.metrics {
			mt.Observe(x, u, t)
		}
		for _, obs := range s.observers {
			obs.OnStep(x, u, t)
		}

		result.StepsTaken++
		result.States = append(result.States, x)
		result.Controls = append(result.Controls, u)
		result.Times = append(result.Times, t)
	}

	for _, mt := range s.metrics {
		result.Metrics[mt.Name()] = mt.Value()
	}

	s.log.Debug("run complete",
		zap.Int("steps", result.StepsTaken),
		zap.Float64("final_mean_tension", x.Mean()),
	)

	return result, nil
}

func (s *Simulator) validateConfig(cfg Config) error {
	if cfg.Dt <= 0 {
		return fmt.Errorf("dt must be positive, got %f", cfg.Dt)
	}
	if cfg.Duration <= 0 {
		return fmt.Errorf("duration must be positive, got %f", cfg.Duration)
	}
	if cfg.Dt > cfg.Duration {
		return fmt.Errorf("dt %f exceeds duration %f", cfg.Dt, cfg.Duration)
	}
	return nil
}

func sample(acts []*core.BasicActuator) State {
	x := make(State, len(acts))
	for i, a := range acts {
		x[i] = a.Tension()
	}
	return x
}

func restLengths(acts []*core.BasicActuator) []float64 {
	r := make([]float64, len(acts))
	for i, a := range acts {
		r[i] = a.RestLength()
	}
	return r
}
