// Package sweep evaluates the power model across a range of ground
// velocities, one independent call per point.
package sweep

import (
	"errors"
	"fmt"
	"math"

	"github.com/san-kum/cyclepower/internal/power"
)

var ErrInvalidRange = errors.New("sweep: invalid velocity range")

// MaxPoints bounds a single sweep.
const MaxPoints = 1_000_000

type Point struct {
	Velocity  float64
	Breakdown power.Breakdown
}

// Run evaluates base at every velocity from min to max inclusive. The
// velocities are min + i*step so long sweeps do not accumulate drift.
func Run(base power.Input, min, max, step float64) ([]Point, error) {
	if step <= 0 || max < min || math.IsNaN(min) || math.IsNaN(max) || math.IsInf(max-min, 0) {
		return nil, fmt.Errorf("%w: [%g, %g] step %g", ErrInvalidRange, min, max, step)
	}

	// small epsilon so max is kept when (max-min)/step is a float hair below an integer
	span := math.Floor((max-min)/step + 1e-9)
	if span+1 > MaxPoints {
		return nil, fmt.Errorf("%w: [%g, %g] step %g exceeds %d points", ErrInvalidRange, min, max, step, MaxPoints)
	}
	n := int(span) + 1
	points := make([]Point, 0, n)
	for i := 0; i < n; i++ {
		in := base
		in.GroundVelocity = min + float64(i)*step
		b, err := power.Compute(in)
		if err != nil {
			return nil, err
		}
		points = append(points, Point{Velocity: in.GroundVelocity, Breakdown: b})
	}
	return points, nil
}

// Series extracts one component, indexed as in power.Breakdown.Values.
func Series(points []Point, component int) []float64 {
	out := make([]float64, len(points))
	for i, p := range points {
		out[i] = p.Breakdown.Values()[component]
	}
	return out
}

func Velocities(points []Point) []float64 {
	out := make([]float64, len(points))
	for i, p := range points {
		out[i] = p.Velocity
	}
	return out
}

// Peak returns the point with the highest total power.
func Peak(points []Point) (Point, bool) {
	if len(points) == 0 {
		return Point{}, false
	}
	best := points[0]
	for _, p := range points[1:] {
		if p.Breakdown.Total > best.Breakdown.Total {
			best = p
		}
	}
	return best, true
}
