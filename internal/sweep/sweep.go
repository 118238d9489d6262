// Package sweep runs the model once per value of a config parameter and
// collects the run metrics.
package sweep

import (
	"context"
	"errors"
	"fmt"
	"math"
	"runtime"

	"github.com/san-kum/superball/internal/core"
	"github.com/san-kum/superball/internal/metrics"
	"github.com/san-kum/superball/internal/sim"
	"github.com/san-kum/superball/internal/superball"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var ErrNoValues = errors.New("sweep: no values")

// ControllerFactory returns a new controller for each run. Controllers keep
// per-run state so they cannot be shared between goroutines.
type ControllerFactory func() (core.Observer[*superball.Model], error)

// Point is one run of a sweep. Err is set when the model could not be built
// or simulated for Value; Metrics is nil then.
type Point struct {
	Value   float64            `json:"value"`
	Metrics map[string]float64 `json:"metrics,omitempty"`
	Err     error              `json:"-"`
}

// Failed reports whether the run for this point did not complete.
func (p Point) Failed() bool { return p.Err != nil }

type Sweep struct {
	Param      string
	Values     []float64
	Base       superball.Config
	World      core.WorldConfig
	Sim        sim.Config
	Controller ControllerFactory
	Workers    int
	Log        *zap.Logger
}

func New(param string, values []float64, base superball.Config) *Sweep {
	return &Sweep{
		Param:   param,
		Values:  values,
		Base:    base,
		World:   core.DefaultWorldConfig(),
		Sim:     sim.DefaultConfig(),
		Workers: runtime.NumCPU(),
		Log:     zap.NewNop(),
	}
}

// Run evaluates every value concurrently. Points come back in the order of
// Values. A value the model rejects, such as a rod spacing that puts nodes
// below ground, marks its own point failed and the other points still run.
// Unknown parameters, controller errors and cancellation fail the whole sweep.
func (s *Sweep) Run(ctx context.Context) ([]Point, error) {
	if len(s.Values) == 0 {
		return nil, ErrNoValues
	}
	// catch unknown parameter names before any goroutine starts
	if _, err := s.Base.WithParam(s.Param, s.Values[0]); err != nil {
		return nil, err
	}

	log := s.Log
	if log == nil {
		log = zap.NewNop()
	}
	workers := s.Workers
	if workers <= 0 {
		workers = 1
	}

	points := make([]Point, len(s.Values))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, v := range s.Values {
		i, v := i, v
		g.Go(func() error {
			points[i].Value = v
			cfg, err := s.Base.WithParam(s.Param, v)
			if err != nil {
				return err
			}

			runner := sim.New(cfg, s.World, log)
			for _, m := range metrics.Defaults(cfg.Stiffness) {
				runner.AddMetric(m)
			}
			if s.Controller != nil {
				ctrl, err := s.Controller()
				if err != nil {
					return err
				}
				runner.AddController(ctrl)
			}

			result, err := runner.Run(gctx, s.Sim)
			if err != nil {
				if gctx.Err() != nil {
					return gctx.Err()
				}
				points[i].Err = fmt.Errorf("%s=%g: %w", s.Param, v, err)
				log.Warn("sweep point failed", zap.String("param", s.Param), zap.Float64("value", v), zap.Error(err))
				return nil
			}

			points[i].Metrics = result.Metrics
			log.Debug("sweep point done", zap.String("param", s.Param), zap.Float64("value", v))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return points, nil
}

// Failures returns the failed points of a sweep.
func Failures(points []Point) []Point {
	var out []Point
	for _, p := range points {
		if p.Failed() {
			out = append(out, p)
		}
	}
	return out
}

// Pretension sweeps the cable pretension, the usual tuning knob.
func Pretension(ctx context.Context, base superball.Config, simCfg sim.Config, values []float64) ([]Point, error) {
	s := New("pretension", values, base)
	s.Sim = simCfg
	return s.Run(ctx)
}

// Best picks the point with the smallest (or largest) value of metric.
// Failed points and points missing the metric or holding NaN are skipped.
func Best(points []Point, metric string, minimize bool) (Point, bool) {
	best := math.Inf(1)
	if !minimize {
		best = math.Inf(-1)
	}

	var out Point
	found := false
	for _, p := range points {
		if p.Failed() {
			continue
		}
		val, ok := p.Metrics[metric]
		if !ok || math.IsNaN(val) {
			continue
		}
		if (minimize && val < best) || (!minimize && val > best) {
			best = val
			out = p
			found = true
		}
	}
	return out, found
}

// Linspace returns n evenly spaced values from lo to hi inclusive.
func Linspace(lo, hi float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []float64{lo}
	}
	out := make([]float64, n)
	step := (hi - lo) / float64(n-1)
	for i := range out {
		out[i] = lo + float64(i)*step
	}
	return out
}
