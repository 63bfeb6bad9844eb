package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/cyclepower/internal/power"
)

// Reference ride from Appendix I of Martin et al. (1998).
const (
	DefaultTotalMass             = 90.0
	DefaultDragCoefficient       = 0.9
	DefaultFrontalArea           = 0.285
	DefaultDrivetrainEfficiency  = 0.976
	DefaultRollingResistance     = 0.0032
	DefaultWheelMomentOfInertia  = 0.14
	DefaultSpokeDragArea         = 0.0044
	DefaultWheelRadius           = 0.311
	DefaultBikeDirection         = 340.0
	DefaultRoadGradient          = 0.003
	DefaultWindVelocity          = 2.94
	DefaultWindDirection         = 310.0
	DefaultGroundVelocity        = 8.36
	DefaultInitialGroundVelocity = 8.28
	DefaultFinalGroundVelocity   = 8.45
	DefaultInitialTime           = 43.58
	DefaultFinalTime             = 100.0

	DefaultSweepMin  = 2.0
	DefaultSweepMax  = 16.0
	DefaultSweepStep = 0.5
)

var ErrInvalidSweep = errors.New("config: invalid sweep range")

type Config struct {
	Name        string            `yaml:"name"`
	Rider       RiderConfig       `yaml:"rider"`
	Bike        BikeConfig        `yaml:"bike"`
	Environment EnvironmentConfig `yaml:"environment"`
	Motion      MotionConfig      `yaml:"motion"`
	Sweep       SweepConfig       `yaml:"sweep"`
}

type RiderConfig struct {
	TotalMass       float64 `yaml:"total_mass"`
	DragCoefficient float64 `yaml:"drag_coefficient"`
	FrontalArea     float64 `yaml:"frontal_area"`
}

type BikeConfig struct {
	DrivetrainEfficiency         float64 `yaml:"drivetrain_efficiency"`
	RollingResistanceCoefficient float64 `yaml:"rolling_resistance_coefficient"`
	WheelMomentOfInertia         float64 `yaml:"wheel_moment_of_inertia"`
	SpokeDragArea                float64 `yaml:"spoke_drag_area"`
	WheelRadius                  float64 `yaml:"wheel_radius"`
	BikeDirection                float64 `yaml:"bike_direction"`
}

type EnvironmentConfig struct {
	RoadGradient  float64 `yaml:"road_gradient"`
	WindVelocity  float64 `yaml:"wind_velocity"`
	WindDirection float64 `yaml:"wind_direction"`
}

type MotionConfig struct {
	GroundVelocity        float64 `yaml:"ground_velocity"`
	InitialGroundVelocity float64 `yaml:"initial_ground_velocity"`
	FinalGroundVelocity   float64 `yaml:"final_ground_velocity"`
	InitialTime           float64 `yaml:"initial_time"`
	FinalTime             float64 `yaml:"final_time"`
}

type SweepConfig struct {
	MinVelocity float64 `yaml:"min_velocity"`
	MaxVelocity float64 `yaml:"max_velocity"`
	Step        float64 `yaml:"step"`
}

func DefaultConfig() *Config {
	return &Config{
		Name: "martin1998",
		Rider: RiderConfig{
			TotalMass:       DefaultTotalMass,
			DragCoefficient: DefaultDragCoefficient,
			FrontalArea:     DefaultFrontalArea,
		},
		Bike: BikeConfig{
			DrivetrainEfficiency:         DefaultDrivetrainEfficiency,
			RollingResistanceCoefficient: DefaultRollingResistance,
			WheelMomentOfInertia:         DefaultWheelMomentOfInertia,
			SpokeDragArea:                DefaultSpokeDragArea,
			WheelRadius:                  DefaultWheelRadius,
			BikeDirection:                DefaultBikeDirection,
		},
		Environment: EnvironmentConfig{
			RoadGradient:  DefaultRoadGradient,
			WindVelocity:  DefaultWindVelocity,
			WindDirection: DefaultWindDirection,
		},
		Motion: MotionConfig{
			GroundVelocity:        DefaultGroundVelocity,
			InitialGroundVelocity: DefaultInitialGroundVelocity,
			FinalGroundVelocity:   DefaultFinalGroundVelocity,
			InitialTime:           DefaultInitialTime,
			FinalTime:             DefaultFinalTime,
		},
		Sweep: SweepConfig{
			MinVelocity: DefaultSweepMin,
			MaxVelocity: DefaultSweepMax,
			Step:        DefaultSweepStep,
		},
	}
}

// Load reads a yaml file on top of the defaults, so a file only needs the
// keys it changes.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks the sweep range only. Physical parameters are passed to
// the model untouched.
func (c *Config) Validate() error {
	if c.Sweep.Step <= 0 {
		return fmt.Errorf("%w: step must be positive, got %g", ErrInvalidSweep, c.Sweep.Step)
	}
	if c.Sweep.MaxVelocity < c.Sweep.MinVelocity {
		return fmt.Errorf("%w: max %g below min %g", ErrInvalidSweep, c.Sweep.MaxVelocity, c.Sweep.MinVelocity)
	}
	return nil
}

func (c *Config) Input() power.Input {
	return power.Input{
		GroundVelocity:               c.Motion.GroundVelocity,
		TotalMass:                    c.Rider.TotalMass,
		RoadGradient:                 c.Environment.RoadGradient,
		DragCoefficient:              c.Rider.DragCoefficient,
		FrontalArea:                  c.Rider.FrontalArea,
		DrivetrainEfficiency:         c.Bike.DrivetrainEfficiency,
		RollingResistanceCoefficient: c.Bike.RollingResistanceCoefficient,
		WindVelocity:                 c.Environment.WindVelocity,
		BikeDirection:                c.Bike.BikeDirection,
		WindDirection:                c.Environment.WindDirection,
		WheelMomentOfInertia:         c.Bike.WheelMomentOfInertia,
		SpokeDragArea:                c.Bike.SpokeDragArea,
		WheelRadius:                  c.Bike.WheelRadius,
		InitialGroundVelocity:        c.Motion.InitialGroundVelocity,
		FinalGroundVelocity:          c.Motion.FinalGroundVelocity,
		InitialTime:                  c.Motion.InitialTime,
		FinalTime:                    c.Motion.FinalTime,
	}
}

// Clone returns a copy that can be modified without touching a preset.
func (c *Config) Clone() *Config {
	cp := *c
	return &cp
}
