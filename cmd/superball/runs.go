package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/superball/internal/config"
	"github.com/san-kum/superball/internal/storage"
	"github.com/spf13/cobra"
)

var plotActuator string

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tDURATION\tDT\tCTRL\tPRETENSION\tMEAN T")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%.2fs\t%.4fs\t%s\t%.0f\t%.1f\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Duration,
			run.Dt,
			run.Controller,
			run.Config.Pretension,
			run.Metrics["mean_tension"],
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	samples, err := st.LoadSamples(runID)
	if err != nil {
		return err
	}
	if len(samples.Rows) == 0 {
		return fmt.Errorf("no samples in run %s", runID)
	}

	data := samples.MeanTension()
	caption := "mean tension"
	if plotActuator != "" {
		data = samples.Column(storage.TensionPrefix + plotActuator)
		if data == nil {
			return fmt.Errorf("no actuator %s in run %s (have %v)", plotActuator, runID, meta.Actuators)
		}
		caption = "tension " + plotActuator
	}

	fmt.Printf("run: %s  (%s, %.2fs)\n\n", meta.ID, meta.Controller, meta.Duration)
	graph := asciigraph.Plot(downsample(data, 200),
		asciigraph.Height(12),
		asciigraph.Width(80),
		asciigraph.Caption(caption),
	)
	fmt.Println(graph)
	return nil
}

// downsample keeps at most n evenly spaced points.
func downsample(data []float64, n int) []float64 {
	if len(data) <= n {
		return data
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = data[i*(len(data)-1)/(n-1)]
	}
	return out
}

func exportJSON(cmd *cobra.Command, args []string) error {
	meta, result, err := storage.New(dataDir).LoadResult(args[0])
	if err != nil {
		return err
	}
	return storage.ExportJSON(os.Stdout, *meta, result)
}

func exportCSV(cmd *cobra.Command, args []string) error {
	_, result, err := storage.New(dataDir).LoadResult(args[0])
	if err != nil {
		return err
	}
	return storage.WriteCSV(os.Stdout, result)
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PRESET\tCTRL\tTARGET\tPRETENSION\tDURATION\tHISTORY")
	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		fmt.Fprintf(w, "%s\t%s\t%.0f\t%.0f\t%.1fs\t%v\n",
			name, p.Controller, p.ControllerParams.Target, p.Model.Pretension, p.Duration, p.Model.History)
	}
	return w.Flush()
}
