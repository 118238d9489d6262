package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"time"

	"github.com/san-kum/superball/internal/metrics"
	"github.com/san-kum/superball/internal/sim"
	"github.com/san-kum/superball/internal/storage"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func runModel(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	ctrl, err := newController(cfg)
	if err != nil {
		return err
	}

	log := logger()
	runner := sim.New(cfg.Model, cfg.World, log)
	runner.AddController(ctrl)
	for _, m := range metrics.Defaults(cfg.Model.Stiffness) {
		runner.AddMetric(m)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Printf("running superball for %.3fs (dt %g, controller %s)...\n", cfg.Duration, cfg.Dt, cfg.Controller)
	start := time.Now()

	result, err := runner.Run(ctx, sim.Config{Dt: cfg.Dt, Duration: cfg.Duration, ValidateState: true})
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	runID, err := st.Save(storage.RunMetadata{
		Dt:         cfg.Dt,
		Duration:   cfg.Duration,
		Controller: cfg.Controller,
		Config:     cfg.Model,
	}, result)
	if err != nil {
		return err
	}
	log.Info("run saved", zap.String("run_id", runID), zap.Duration("elapsed", elapsed))

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("steps: %d\n", result.StepsTaken)
	for _, e := range result.Errors {
		fmt.Printf("warning: %v\n", e)
	}
	printMetrics(result.Metrics)
	return nil
}

func printMetrics(m map[string]float64) {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Println("\nmetrics:")
	for _, name := range names {
		fmt.Printf("  %s: %.6f\n", name, m[name])
	}
}
