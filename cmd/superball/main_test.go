package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/superball/internal/superball"
	"github.com/spf13/cobra"
)

func newTestCmd(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	preset, configFile = "", ""
	cmd := &cobra.Command{Use: "test"}
	addRunFlags(cmd)
	if err := cmd.ParseFlags(args); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	return cmd
}

func TestResolveConfigDefaults(t *testing.T) {
	cfg, err := resolveConfig(newTestCmd(t))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Controller != "none" || cfg.Model.Pretension != superball.DefaultPretension {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
}

func TestResolveConfigFlagsOverridePreset(t *testing.T) {
	cfg, err := resolveConfig(newTestCmd(t, "--preset", "soft", "--target", "900", "--pretension", "1500"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Controller != "pid" {
		t.Errorf("expected preset controller pid, got %s", cfg.Controller)
	}
	if cfg.ControllerParams.Target != 900 {
		t.Errorf("expected target 900, got %f", cfg.ControllerParams.Target)
	}
	if cfg.Model.Pretension != 1500 {
		t.Errorf("expected pretension 1500, got %f", cfg.Model.Pretension)
	}
}

func TestResolveConfigFileLayersOnPreset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	if err := os.WriteFile(path, []byte("dt: 0.005\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := resolveConfig(newTestCmd(t, "--preset", "hold", "--config", path, "--time", "2"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Dt != 0.005 {
		t.Errorf("expected dt from file, got %f", cfg.Dt)
	}
	if cfg.Controller != "pid" {
		t.Errorf("expected preset controller pid, got %s", cfg.Controller)
	}
	if cfg.Duration != 2 {
		t.Errorf("expected flag duration 2, got %f", cfg.Duration)
	}
}

func TestGeometryUsesConfiguredModel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wide.yaml")
	if err := os.WriteFile(path, []byte("model:\n  rod_space: 4\n"), 0644); err != nil {
		t.Fatal(err)
	}

	preset, configFile = "", ""
	cmd := &cobra.Command{Use: "geometry"}
	addConfigFlags(cmd)
	if err := cmd.ParseFlags([]string{"--config", path}); err != nil {
		t.Fatal(err)
	}

	cfg, err := resolveConfig(cmd)
	if err != nil {
		t.Fatal(err)
	}
	s, err := geometryStructure(cfg.Model, true)
	if err != nil {
		t.Fatal(err)
	}
	// node 0 sits on bar A at y = -rod_space
	if got := s.Nodes()[0].Y(); got != -4 {
		t.Errorf("expected node 0 at y=-4, got %f", got)
	}

	placed, err := geometryStructure(cfg.Model, false)
	if err != nil {
		t.Fatal(err)
	}
	if got := placed.Nodes()[0].Y(); got != 6 {
		t.Errorf("expected placed node 0 at y=6, got %f", got)
	}
}

func TestResolveConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown preset", []string{"--preset", "nope"}},
		{"bad controller", []string{"--controller", "lqr"}},
		{"zero dt", []string{"--dt", "0"}},
		{"missing config file", []string{"--config", "/nonexistent/superball.yaml"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := resolveConfig(newTestCmd(t, tt.args...)); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestDownsample(t *testing.T) {
	data := make([]float64, 1001)
	for i := range data {
		data[i] = float64(i)
	}

	out := downsample(data, 11)
	if len(out) != 11 {
		t.Fatalf("expected 11 points, got %d", len(out))
	}
	if out[0] != 0 || out[10] != 1000 || out[5] != 500 {
		t.Errorf("unexpected samples %v", out)
	}
	if got := downsample(data[:5], 11); len(got) != 5 {
		t.Errorf("short input should pass through, got %d", len(got))
	}
}
