package config

import "sort"

var Presets = map[string]*Config{
	"martin1998": DefaultConfig(),
	"flat_calm": withName("flat_calm", func(c *Config) {
		c.Environment = EnvironmentConfig{}
		c.Motion.InitialGroundVelocity = c.Motion.GroundVelocity
		c.Motion.FinalGroundVelocity = c.Motion.GroundVelocity
	}),
	"climb": withName("climb", func(c *Config) {
		c.Environment = EnvironmentConfig{RoadGradient: 0.06}
		c.Motion = MotionConfig{GroundVelocity: 4.5, InitialGroundVelocity: 4.5, FinalGroundVelocity: 4.5, FinalTime: 60}
		c.Sweep = SweepConfig{MinVelocity: 1, MaxVelocity: 8, Step: 0.25}
	}),
	"headwind": withName("headwind", func(c *Config) {
		c.Environment = EnvironmentConfig{WindVelocity: 5, WindDirection: c.Bike.BikeDirection}
	}),
	"tailwind": withName("tailwind", func(c *Config) {
		c.Environment = EnvironmentConfig{WindVelocity: 5, WindDirection: c.Bike.BikeDirection - 180}
	}),
	"sprint": withName("sprint", func(c *Config) {
		c.Environment = EnvironmentConfig{}
		c.Motion = MotionConfig{GroundVelocity: 15, InitialGroundVelocity: 12, FinalGroundVelocity: 17, FinalTime: 8}
		c.Sweep = SweepConfig{MinVelocity: 10, MaxVelocity: 20, Step: 0.5}
	}),
}

func withName(name string, apply func(*Config)) *Config {
	c := DefaultConfig()
	c.Name = name
	apply(c)
	return c
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg.Clone()
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
