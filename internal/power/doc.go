// Package power implements the road cycling power model of Martin et al.
// (1998), "Validation of a Mathematical Model for Road Cycling Power".
//
// The model decomposes the power a rider must deliver at the pedals into
// five independent terms:
//
//   - aerodynamic drag of rider, bike and rotating spokes
//   - rolling resistance of the tyres
//   - wheel bearing friction
//   - change in potential energy (climbing)
//   - change in kinetic energy (acceleration)
//
// The sum is divided by drivetrain efficiency to give the total.
//
// # Example
//
//	in := power.Input{GroundVelocity: 8.36, TotalMass: 90, ...}
//	b, err := power.Compute(in)
//	total := b.Values()[0]
//
// # Thread Safety
//
// [Compute] reads only its argument and the package constants, so it may
// be called from any number of goroutines without coordination.
package power
