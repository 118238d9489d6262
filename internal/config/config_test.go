package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/superball/internal/superball"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Controller != "none" {
		t.Errorf("expected controller none, got %s", cfg.Controller)
	}
	if cfg.Dt <= 0 {
		t.Error("dt should be positive")
	}
	if cfg.Duration <= 0 {
		t.Error("duration should be positive")
	}
	if cfg.Model != superball.DefaultConfig() {
		t.Error("model config should match superball defaults")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestLoadOverridesOnlyGivenFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	data := []byte("dt: 0.005\nmodel:\n  pretension: 1500\n  history: true\nworld:\n  gravity: 9.81\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Dt != 0.005 {
		t.Errorf("expected dt 0.005, got %f", cfg.Dt)
	}
	if cfg.Model.Pretension != 1500 || !cfg.Model.History {
		t.Errorf("model overrides not applied: %+v", cfg.Model)
	}
	if cfg.Model.Stiffness != superball.DefaultStiffness {
		t.Errorf("stiffness should keep default, got %f", cfg.Model.Stiffness)
	}
	if cfg.World.Gravity != 9.81 {
		t.Errorf("expected gravity 9.81, got %f", cfg.World.Gravity)
	}
	if cfg.Duration != DefaultDuration {
		t.Errorf("duration should keep default, got %f", cfg.Duration)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"negative dt", "dt: -1\n"},
		{"zero duration", "duration: 0\n"},
		{"unknown controller", "controller: lqr\n"},
		{"zero stiffness", "model:\n  stiffness: 0\n"},
		{"malformed", "dt: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "bad.yaml")
			if err := os.WriteFile(path, []byte(tt.body), 0644); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(path); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.yaml")
	cfg := DefaultConfig()
	cfg.Controller = "pid"

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.Controller != "pid" {
		t.Errorf("expected controller pid, got %s", loaded.Controller)
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("legacy")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Model.Pretension != 4*superball.DefaultStiffness {
		t.Errorf("expected pretension %f, got %f", 4*superball.DefaultStiffness, cfg.Model.Pretension)
	}

	cfg.Dt = 1
	if Presets["legacy"].Dt == 1 {
		t.Error("GetPreset returned shared config")
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if cfg := GetPreset("nonexistent"); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestPresetsValid(t *testing.T) {
	names := ListPresets()
	if len(names) == 0 {
		t.Fatal("expected presets")
	}
	for _, name := range names {
		if err := GetPreset(name).Validate(); err != nil {
			t.Errorf("preset %s invalid: %v", name, err)
		}
	}
}

func TestLoadIntoKeepsBase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	if err := os.WriteFile(path, []byte("dt: 0.005\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg := GetPreset("hold")
	if err := LoadInto(path, cfg); err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Dt != 0.005 {
		t.Errorf("expected dt 0.005, got %f", cfg.Dt)
	}
	if cfg.Controller != "pid" || cfg.Duration != 10.0 {
		t.Errorf("preset fields lost: controller=%s duration=%f", cfg.Controller, cfg.Duration)
	}
}
