package main

import (
	"fmt"
	"os"

	"github.com/san-kum/superball/internal/config"
	"github.com/san-kum/superball/internal/control"
	"github.com/san-kum/superball/internal/core"
	"github.com/san-kum/superball/internal/observability"
	"github.com/san-kum/superball/internal/superball"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	dataDir    string
	logLevel   string
	logFile    string
	configFile string
	preset     string
	dt         float64
	duration   float64
	controller string
	kp         float64
	ki         float64
	kd         float64
	target     float64
	pretension float64
	history    bool
)

// main registers the commands and exits with status 1 if the command fails.
func main() {
	rootCmd := &cobra.Command{
		Use:           "superball",
		Short:         "SUPERball v3 tensegrity model",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			lc := config.DefaultConfig().Logger
			lc.Level = logLevel
			lc.LogFile = logFile
			observability.InitializeLogger(lc)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			observability.Sync()
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".superball", "data directory")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "rotated JSON log file")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run the model and save the tensions",
		Args:  cobra.NoArgs,
		RunE:  runModel,
	}
	addRunFlags(runCmd)

	viewCmd := &cobra.Command{
		Use:   "view",
		Short: "step the model live in the terminal",
		Args:  cobra.NoArgs,
		RunE:  viewModel,
	}
	addRunFlags(viewCmd)
	viewCmd.Flags().IntVar(&stepsPerFrame, "steps-per-frame", 10, "model steps per frame")

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "run once per value of a model parameter",
		Args:  cobra.NoArgs,
		RunE:  sweepModel,
	}
	addRunFlags(sweepCmd)
	sweepCmd.Flags().StringVar(&sweepParam, "param", "pretension", "model parameter to sweep")
	sweepCmd.Flags().Float64Var(&sweepFrom, "from", 500, "first value")
	sweepCmd.Flags().Float64Var(&sweepTo, "to", 4000, "last value")
	sweepCmd.Flags().IntVar(&sweepN, "n", 8, "number of values")
	sweepCmd.Flags().StringVar(&sweepMetric, "metric", "slack", "metric to rank by")
	sweepCmd.Flags().BoolVar(&sweepMaximize, "maximize", false, "pick the largest metric instead of the smallest")
	sweepCmd.Flags().IntVar(&sweepWorkers, "workers", 0, "concurrent runs (0 = one per CPU)")

	geometryCmd := &cobra.Command{
		Use:   "geometry",
		Short: "print nodes and pairs",
		Args:  cobra.NoArgs,
		RunE:  printGeometry,
	}
	addConfigFlags(geometryCmd)
	geometryCmd.Flags().BoolVar(&declared, "declared", false, "print nodes before the move and rotation")

	svgCmd := &cobra.Command{
		Use:   "svg",
		Short: "render the structure, or a run's mean tension, as SVG",
		Args:  cobra.NoArgs,
		RunE:  renderSVG,
	}
	addConfigFlags(svgCmd)
	svgCmd.Flags().StringVarP(&svgOut, "output", "o", "", "output file (default stdout)")
	svgCmd.Flags().StringVar(&svgRun, "run", "", "plot the mean tension of this run instead")
	svgCmd.Flags().BoolVar(&svgBraille, "braille", false, "render the braille canvas as dots")
	svgCmd.Flags().Float64Var(&rotX, "rot-x", 0.3, "camera rotation about x (rad)")
	svgCmd.Flags().Float64Var(&rotY, "rot-y", 0.5, "camera rotation about y (rad)")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot run tensions",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().StringVar(&plotActuator, "actuator", "", "plot one actuator (e.g. 16-0) instead of the mean")

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run data to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run data to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		RunE:  listPresets,
	}

	initConfigCmd := &cobra.Command{
		Use:   "init-config [path]",
		Short: "write the default config as YAML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.DefaultConfig()
			if preset != "" {
				if cfg = config.GetPreset(preset); cfg == nil {
					return fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
				}
			}
			if err := config.Save(args[0], cfg); err != nil {
				return err
			}
			fmt.Printf("wrote %s\n", args[0])
			return nil
		},
	}
	initConfigCmd.Flags().StringVar(&preset, "preset", "", "start from a preset")

	rootCmd.AddCommand(runCmd, viewCmd, sweepCmd, geometryCmd, svgCmd, listCmd, plotCmd,
		exportJSONCmd, exportCSVCmd, presetsCmd, initConfigCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// addConfigFlags registers the flags that select the model config.
func addConfigFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
}

func addRunFlags(cmd *cobra.Command) {
	addConfigFlags(cmd)
	cmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "timestep")
	cmd.Flags().Float64Var(&duration, "time", config.DefaultDuration, "duration")
	cmd.Flags().StringVar(&controller, "controller", config.DefaultController, "controller (none, pid)")
	cmd.Flags().Float64Var(&kp, "kp", config.DefaultKp, "pid kp")
	cmd.Flags().Float64Var(&ki, "ki", config.DefaultKi, "pid ki")
	cmd.Flags().Float64Var(&kd, "kd", config.DefaultKd, "pid kd")
	cmd.Flags().Float64Var(&target, "target", config.DefaultTarget, "pid tension setpoint")
	cmd.Flags().Float64Var(&pretension, "pretension", superball.DefaultPretension, "cable pretension")
	cmd.Flags().BoolVar(&history, "history", superball.DefaultHistory, "keep per-step actuator history")
}

// resolveConfig layers defaults, preset, config file and changed flags, in
// that order. Flags a command does not register are never changed.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		if cfg = config.GetPreset(preset); cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}

	if configFile != "" {
		if err := config.LoadInto(configFile, cfg); err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}

	flags := cmd.Flags()
	if flags.Changed("dt") {
		cfg.Dt = dt
	}
	if flags.Changed("time") {
		cfg.Duration = duration
	}
	if flags.Changed("controller") {
		cfg.Controller = controller
	}
	if flags.Changed("kp") {
		cfg.ControllerParams.Kp = kp
	}
	if flags.Changed("ki") {
		cfg.ControllerParams.Ki = ki
	}
	if flags.Changed("kd") {
		cfg.ControllerParams.Kd = kd
	}
	if flags.Changed("target") {
		cfg.ControllerParams.Target = target
	}
	if flags.Changed("pretension") {
		cfg.Model.Pretension = pretension
	}
	if flags.Changed("history") {
		cfg.Model.History = history
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newController(cfg *config.Config) (core.Observer[*superball.Model], error) {
	return control.New(cfg.Controller, cfg.GetControllerParams())
}

func logger() *zap.Logger {
	return observability.GetLogger()
}
