package power

import "math"

const (
	AirDensity = 1.2234 // kg/m³
	Gravity    = 9.81   // m/s²
)

// Input holds every parameter of the model in SI units. Angles are
// headings in degrees.
type Input struct {
	GroundVelocity               float64 `json:"ground_velocity"`
	TotalMass                    float64 `json:"total_mass"`
	RoadGradient                 float64 `json:"road_gradient"` // rise over run
	DragCoefficient              float64 `json:"drag_coefficient"`
	FrontalArea                  float64 `json:"frontal_area"`
	DrivetrainEfficiency         float64 `json:"drivetrain_efficiency"`
	RollingResistanceCoefficient float64 `json:"rolling_resistance_coefficient"`
	WindVelocity                 float64 `json:"wind_velocity"`
	BikeDirection                float64 `json:"bike_direction"`
	WindDirection                float64 `json:"wind_direction"` // heading the wind comes from
	WheelMomentOfInertia         float64 `json:"wheel_moment_of_inertia"`
	SpokeDragArea                float64 `json:"spoke_drag_area"`
	WheelRadius                  float64 `json:"wheel_radius"`
	InitialGroundVelocity        float64 `json:"initial_ground_velocity"`
	FinalGroundVelocity          float64 `json:"final_ground_velocity"`
	InitialTime                  float64 `json:"initial_time"`
	FinalTime                    float64 `json:"final_time"`
}

// Breakdown is the result of one evaluation, in watts.
type Breakdown struct {
	Total             float64
	Aerodynamic       float64
	RollingResistance float64
	WheelBearing      float64
	PotentialEnergy   float64
	KineticEnergy     float64
}

// Positions of each term in Values.
const (
	IndexTotal = iota
	IndexAerodynamic
	IndexRollingResistance
	IndexWheelBearing
	IndexPotentialEnergy
	IndexKineticEnergy
)

// Components names the entries of Breakdown.Values, in order.
var Components = [6]string{
	"total",
	"aerodynamic",
	"rolling_resistance",
	"wheel_bearing",
	"potential_energy",
	"kinetic_energy",
}

// Values returns the breakdown in its fixed positional order:
// total, aerodynamic, rolling resistance, wheel bearing, potential
// energy, kinetic energy.
func (b Breakdown) Values() [6]float64 {
	return [6]float64{
		b.Total,
		b.Aerodynamic,
		b.RollingResistance,
		b.WheelBearing,
		b.PotentialEnergy,
		b.KineticEnergy,
	}
}

// ApparentAirVelocity is the ground velocity plus the wind component along
// the direction of travel.
func ApparentAirVelocity(in Input) float64 {
	tangential := in.WindVelocity * math.Cos(radians(in.WindDirection)-radians(in.BikeDirection))
	return in.GroundVelocity + tangential
}

// Compute evaluates the model. It fails only when an input would divide by
// zero; every other value, physical or not, is propagated as is.
func Compute(in Input) (Breakdown, error) {
	if in.FinalTime == in.InitialTime {
		return Breakdown{}, divisionByZero("final_time")
	}
	if in.WheelRadius == 0 {
		return Breakdown{}, divisionByZero("wheel_radius")
	}
	if in.DrivetrainEfficiency == 0 {
		return Breakdown{}, divisionByZero("drivetrain_efficiency")
	}

	v := in.GroundVelocity
	va := ApparentAirVelocity(in)
	slope := math.Atan(in.RoadGradient)

	var b Breakdown
	b.Aerodynamic = 0.5 * AirDensity * (in.DragCoefficient*in.FrontalArea + in.SpokeDragArea) * va * va * v
	b.RollingResistance = v * math.Cos(slope) * in.RollingResistanceCoefficient * in.TotalMass * Gravity
	b.WheelBearing = v * (90 + 8.7*v) * 1e-3
	b.PotentialEnergy = v * in.TotalMass * Gravity * math.Sin(slope)

	effectiveMass := in.TotalMass + in.WheelMomentOfInertia/(in.WheelRadius*in.WheelRadius)
	dv2 := in.FinalGroundVelocity*in.FinalGroundVelocity - in.InitialGroundVelocity*in.InitialGroundVelocity
	b.KineticEnergy = 0.5 * effectiveMass * dv2 / (in.FinalTime - in.InitialTime)

	b.Total = (b.Aerodynamic + b.RollingResistance + b.WheelBearing + b.PotentialEnergy + b.KineticEnergy) / in.DrivetrainEfficiency
	return b, nil
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
