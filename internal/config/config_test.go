package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/san-kum/redoxlab/internal/analysis"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Params.N != DefaultN || cfg.Params.S != DefaultS || cfg.Params.C != DefaultC || cfg.Params.D != DefaultD {
		t.Errorf("unexpected default params: %+v", cfg.Params)
	}
	if cfg.Grid.Start != 0 || cfg.Grid.Stop != DefaultGridStop || cfg.Grid.Points != DefaultGridPoints {
		t.Errorf("unexpected default grid: %+v", cfg.Grid)
	}
	if cfg.Cox.Time != DefaultCoxTime || cfg.Cox.XMax != DefaultCoxXMax || cfg.Cox.Points != DefaultCoxPoints {
		t.Errorf("unexpected default cox: %+v", cfg.Cox)
	}
	if cfg.Analysis.MinIntervalWidth != analysis.DefaultMinIntervalWidth {
		t.Errorf("min interval width = %v, want %v", cfg.Analysis.MinIntervalWidth, analysis.DefaultMinIntervalWidth)
	}
	if cfg.Log.Level != "info" || cfg.Log.Format != "console" {
		t.Errorf("unexpected default log config: %+v", cfg.Log)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lab.yaml")
	content := `
params:
  n: 2
  d: 7.1e-6
grid:
  stop: 5
log:
  level: debug
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Params.N != 2 || cfg.Params.D != 7.1e-6 {
		t.Errorf("params not loaded: %+v", cfg.Params)
	}
	if cfg.Params.S != DefaultS {
		t.Errorf("unset S should keep default, got %v", cfg.Params.S)
	}
	if cfg.Grid.Stop != 5 || cfg.Grid.Points != DefaultGridPoints {
		t.Errorf("unexpected grid: %+v", cfg.Grid)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("log level = %q, want debug", cfg.Log.Level)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		field   string
	}{
		{"zero electrons", "params:\n  n: 0\n", "params.n"},
		{"negative diffusion", "params:\n  d: -1\n", "params.d"},
		{"reversed grid", "grid:\n  start: 5\n  stop: 1\n", "grid.stop"},
		{"single point", "grid:\n  points: 1\n", "grid.points"},
		{"bad level", "log:\n  level: loud\n", "log.level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "lab.yaml")
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatalf("write config: %v", err)
			}

			_, err := Load(path)
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.field) {
				t.Errorf("error %q does not name %s", err, tt.field)
			}
		})
	}
}

func TestLoad_Missing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lab.yaml")
	cfg := DefaultConfig()
	cfg.Params.C = 0
	cfg.Cox.Time = 3

	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if *loaded != *cfg {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", loaded, cfg)
	}
}

func TestPhysicalParameters(t *testing.T) {
	p := DefaultConfig().PhysicalParameters()
	if p.N != 1 || p.S != 0.25 || p.C != 1e-5 || p.D != 1e-5 {
		t.Errorf("unexpected parameters %+v", p)
	}
	if err := p.Validate(); err != nil {
		t.Errorf("default parameters invalid: %v", err)
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("ferrocyanide")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Params.D != 6.7e-6 {
		t.Errorf("expected D 6.7e-6, got %g", cfg.Params.D)
	}
	if cfg.Grid.Points != DefaultGridPoints {
		t.Error("preset should keep default grid")
	}

	cfg.Params.D = 1
	if Presets["ferrocyanide"].D != 6.7e-6 {
		t.Error("GetPreset returned shared state")
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if GetPreset("nonexistent") != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestListPresets(t *testing.T) {
	presets := ListPresets()
	if len(presets) != len(Presets) {
		t.Fatalf("expected %d presets, got %d", len(Presets), len(presets))
	}
	for i := 1; i < len(presets); i++ {
		if presets[i-1] > presets[i] {
			t.Errorf("presets not sorted: %v", presets)
		}
	}
	for _, name := range presets {
		if err := GetPreset(name).Validate(); err != nil {
			t.Errorf("preset %s invalid: %v", name, err)
		}
	}
}
