package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/cyclepower/internal/power"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Name != "martin1998" {
		t.Errorf("expected name martin1998, got %s", cfg.Name)
	}
	if cfg.Bike.WheelRadius <= 0 {
		t.Error("wheel radius should be positive")
	}
	if cfg.Motion.FinalTime == cfg.Motion.InitialTime {
		t.Error("default interval should not be empty")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestInput(t *testing.T) {
	in := DefaultConfig().Input()

	want := power.Input{
		GroundVelocity:               8.36,
		TotalMass:                    90,
		RoadGradient:                 0.003,
		DragCoefficient:              0.9,
		FrontalArea:                  0.285,
		DrivetrainEfficiency:         0.976,
		RollingResistanceCoefficient: 0.0032,
		WindVelocity:                 2.94,
		BikeDirection:                340,
		WindDirection:                310,
		WheelMomentOfInertia:         0.14,
		SpokeDragArea:                0.0044,
		WheelRadius:                  0.311,
		InitialGroundVelocity:        8.28,
		FinalGroundVelocity:          8.45,
		InitialTime:                  43.58,
		FinalTime:                    100,
	}
	if in != want {
		t.Errorf("Input() = %+v, want %+v", in, want)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ride.yaml")
	data := []byte("name: commute\nenvironment:\n  road_gradient: 0.04\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Name != "commute" {
		t.Errorf("expected name commute, got %s", cfg.Name)
	}
	if cfg.Environment.RoadGradient != 0.04 {
		t.Errorf("expected gradient 0.04, got %f", cfg.Environment.RoadGradient)
	}
	if cfg.Rider.TotalMass != DefaultTotalMass {
		t.Errorf("expected default mass, got %f", cfg.Rider.TotalMass)
	}
}

func TestLoad_Errors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("rider: [1, 2"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for malformed yaml")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ride.yaml")
	cfg := GetPreset("climb")

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if *loaded != *cfg {
		t.Errorf("round trip mismatch: got %+v, want %+v", loaded, cfg)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name  string
		sweep SweepConfig
		ok    bool
	}{
		{"default", SweepConfig{MinVelocity: 2, MaxVelocity: 16, Step: 0.5}, true},
		{"single point", SweepConfig{MinVelocity: 5, MaxVelocity: 5, Step: 1}, true},
		{"zero step", SweepConfig{MinVelocity: 2, MaxVelocity: 16, Step: 0}, false},
		{"negative step", SweepConfig{MinVelocity: 2, MaxVelocity: 16, Step: -1}, false},
		{"reversed", SweepConfig{MinVelocity: 16, MaxVelocity: 2, Step: 1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Sweep = tt.sweep
			err := cfg.Validate()
			if tt.ok && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if !tt.ok && !errors.Is(err, ErrInvalidSweep) {
				t.Errorf("expected ErrInvalidSweep, got %v", err)
			}
		})
	}
}

func TestValidate_IgnoresPhysics(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Bike.WheelRadius = 0
	cfg.Rider.TotalMass = -1
	if err := cfg.Validate(); err != nil {
		t.Errorf("physics parameters should not be validated: %v", err)
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("climb")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Environment.RoadGradient != 0.06 {
		t.Errorf("expected gradient 0.06, got %f", cfg.Environment.RoadGradient)
	}

	cfg.Environment.RoadGradient = 1
	if Presets["climb"].Environment.RoadGradient != 0.06 {
		t.Error("GetPreset should return a copy")
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if cfg := GetPreset("nonexistent"); cfg != nil {
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
}

func TestPresetsEvaluate(t *testing.T) {
	for _, name := range ListPresets() {
		cfg := GetPreset(name)
		if cfg.Name != name {
			t.Errorf("preset %s has name %s", name, cfg.Name)
		}
		if _, err := power.Compute(cfg.Input()); err != nil {
			t.Errorf("preset %s: %v", name, err)
		}
		if err := cfg.Validate(); err != nil {
			t.Errorf("preset %s: %v", name, err)
		}
	}
}

func TestWindPresets(t *testing.T) {
	head, err := power.Compute(GetPreset("headwind").Input())
	if err != nil {
		t.Fatal(err)
	}
	tail, err := power.Compute(GetPreset("tailwind").Input())
	if err != nil {
		t.Fatal(err)
	}
	if tail.Aerodynamic >= head.Aerodynamic {
		t.Errorf("tailwind aero %f should be below headwind aero %f", tail.Aerodynamic, head.Aerodynamic)
	}
}
