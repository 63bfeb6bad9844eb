package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/san-kum/cyclepower/internal/config"
)

// inputFlags binds a command-line flag to a config field. Flags only apply
// when set explicitly, so they override the preset and the config file.
var inputFlags = []struct {
	name  string
	usage string
	field func(*config.Config) *float64
}{
	{"velocity", "ground velocity [m/s]", func(c *config.Config) *float64 { return &c.Motion.GroundVelocity }},
	{"mass", "total mass of rider and bike [kg]", func(c *config.Config) *float64 { return &c.Rider.TotalMass }},
	{"gradient", "road gradient, rise over run", func(c *config.Config) *float64 { return &c.Environment.RoadGradient }},
	{"cd", "drag coefficient", func(c *config.Config) *float64 { return &c.Rider.DragCoefficient }},
	{"area", "frontal area [m²]", func(c *config.Config) *float64 { return &c.Rider.FrontalArea }},
	{"efficiency", "drivetrain efficiency", func(c *config.Config) *float64 { return &c.Bike.DrivetrainEfficiency }},
	{"crr", "rolling resistance coefficient", func(c *config.Config) *float64 { return &c.Bike.RollingResistanceCoefficient }},
	{"wind", "wind velocity [m/s]", func(c *config.Config) *float64 { return &c.Environment.WindVelocity }},
	{"bike-direction", "bike heading [deg]", func(c *config.Config) *float64 { return &c.Bike.BikeDirection }},
	{"wind-direction", "heading the wind comes from [deg]", func(c *config.Config) *float64 { return &c.Environment.WindDirection }},
	{"inertia", "wheel moment of inertia [kg·m²]", func(c *config.Config) *float64 { return &c.Bike.WheelMomentOfInertia }},
	{"spoke-area", "incremental spoke drag area [m²]", func(c *config.Config) *float64 { return &c.Bike.SpokeDragArea }},
	{"wheel-radius", "wheel radius [m]", func(c *config.Config) *float64 { return &c.Bike.WheelRadius }},
	{"initial-velocity", "ground velocity at interval start [m/s]", func(c *config.Config) *float64 { return &c.Motion.InitialGroundVelocity }},
	{"final-velocity", "ground velocity at interval end [m/s]", func(c *config.Config) *float64 { return &c.Motion.FinalGroundVelocity }},
	{"initial-time", "interval start [s]", func(c *config.Config) *float64 { return &c.Motion.InitialTime }},
	{"final-time", "interval end [s]", func(c *config.Config) *float64 { return &c.Motion.FinalTime }},
}

var sweepFlags = []struct {
	name  string
	usage string
	field func(*config.Config) *float64
}{
	{"min", "lowest sweep velocity [m/s]", func(c *config.Config) *float64 { return &c.Sweep.MinVelocity }},
	{"max", "highest sweep velocity [m/s]", func(c *config.Config) *float64 { return &c.Sweep.MaxVelocity }},
	{"step", "sweep velocity step [m/s]", func(c *config.Config) *float64 { return &c.Sweep.Step }},
}

func addInputFlags(cmd *cobra.Command) {
	defaults := config.DefaultConfig()
	for _, f := range inputFlags {
		cmd.Flags().Float64(f.name, *f.field(defaults), f.usage)
	}
}

func addSweepFlags(cmd *cobra.Command) {
	defaults := config.DefaultConfig()
	for _, f := range sweepFlags {
		cmd.Flags().Float64(f.name, *f.field(defaults), f.usage)
	}
}

// loadConfig resolves defaults, then --preset, then --config, then any
// explicitly set parameter flag.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	all := append(inputFlags[:len(inputFlags):len(inputFlags)], sweepFlags...)
	for _, f := range all {
		if err := applyFlag(cmd.Flags(), f.name, f.field(cfg)); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

func applyFlag(fs *pflag.FlagSet, name string, dst *float64) error {
	if fs.Lookup(name) == nil || !fs.Changed(name) {
		return nil
	}
	v, err := fs.GetFloat64(name)
	if err != nil {
		return err
	}
	*dst = v
	return nil
}
