package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"text/tabwriter"

	"github.com/san-kum/superball/internal/core"
	"github.com/san-kum/superball/internal/sim"
	"github.com/san-kum/superball/internal/superball"
	"github.com/san-kum/superball/internal/sweep"
	"github.com/spf13/cobra"
)

var (
	sweepParam    string
	sweepFrom     float64
	sweepTo       float64
	sweepN        int
	sweepMetric   string
	sweepMaximize bool
	sweepWorkers  int
)

func sweepModel(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	// fail on a bad controller name before spawning runs
	if _, err := newController(cfg); err != nil {
		return err
	}

	s := sweep.New(sweepParam, sweep.Linspace(sweepFrom, sweepTo, sweepN), cfg.Model)
	s.World = cfg.World
	s.Sim = sim.Config{Dt: cfg.Dt, Duration: cfg.Duration, ValidateState: true}
	s.Log = logger()
	if sweepWorkers > 0 {
		s.Workers = sweepWorkers
	}
	s.Controller = func() (core.Observer[*superball.Model], error) {
		return newController(cfg)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Printf("sweeping %s over %d values...\n", sweepParam, len(s.Values))
	points, err := s.Run(ctx)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "VALUE\tMEAN T\tPEAK T\tSLACK\tEFFORT\tENERGY")
	for _, p := range points {
		if p.Failed() {
			fmt.Fprintf(w, "%.4g\tfailed: %v\n", p.Value, p.Err)
			continue
		}
		fmt.Fprintf(w, "%.4g\t%.1f\t%.1f\t%.3f\t%.4g\t%.4g\n",
			p.Value,
			p.Metrics["mean_tension"],
			p.Metrics["peak_tension"],
			p.Metrics["slack"],
			p.Metrics["control_effort"],
			p.Metrics["elastic_energy"],
		)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if failed := sweep.Failures(points); len(failed) > 0 {
		fmt.Printf("\n%d of %d runs failed\n", len(failed), len(points))
	}

	best, ok := sweep.Best(points, sweepMetric, !sweepMaximize)
	if !ok {
		return fmt.Errorf("no run reported metric %s", sweepMetric)
	}
	fmt.Printf("\nbest %s by %s: %.4g (%s = %.6f)\n", sweepParam, sweepMetric, best.Value, sweepMetric, best.Metrics[sweepMetric])
	return nil
}
