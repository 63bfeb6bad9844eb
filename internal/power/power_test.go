package power_test

import (
	"errors"
	"math"
	"sync"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/cyclepower/internal/power"
)

// Appendix I of Martin et al. (1998).
func referenceInput() power.Input {
	return power.Input{
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
}

// The paper prints one decimal, so small terms get an absolute floor.
func within(expected float64) OmegaMatcher {
	return BeNumerically("~", expected, math.Max(0.01*math.Abs(expected), 0.05))
}

var _ = Describe("Compute", func() {
	Context("with the published reference ride", func() {
		var b power.Breakdown

		BeforeEach(func() {
			var err error
			b, err = power.Compute(referenceInput())
			Expect(err).NotTo(HaveOccurred())
		})

		It("matches the published totals", func() {
			Expect(b.Total).To(within(213.3))
			Expect(b.Aerodynamic).To(within(158.8))
			Expect(b.RollingResistance).To(within(23.6))
			Expect(b.WheelBearing).To(within(1.4))
			Expect(b.PotentialEnergy).To(within(22.1))
			Expect(b.KineticEnergy).To(within(2.3))
		})

		It("divides the component sum by drivetrain efficiency", func() {
			sum := b.Aerodynamic + b.RollingResistance + b.WheelBearing + b.PotentialEnergy + b.KineticEnergy
			Expect(b.Total * 0.976).To(BeNumerically("~", sum, 1e-9))
		})

		It("is deterministic", func() {
			again, err := power.Compute(referenceInput())
			Expect(err).NotTo(HaveOccurred())
			Expect(again).To(Equal(b))
		})
	})

	Context("with no wind, a flat road and constant speed", func() {
		It("reduces to the steady state terms", func() {
			in := referenceInput()
			in.WindVelocity = 0
			in.RoadGradient = 0
			in.InitialGroundVelocity = 9
			in.FinalGroundVelocity = 9

			b, err := power.Compute(in)
			Expect(err).NotTo(HaveOccurred())
			Expect(b.PotentialEnergy).To(BeZero())
			Expect(b.KineticEnergy).To(BeZero())

			v := in.GroundVelocity
			cda := in.DragCoefficient*in.FrontalArea + in.SpokeDragArea
			Expect(b.Aerodynamic).To(BeNumerically("~", 0.5*power.AirDensity*cda*v*v*v, 1e-9))
			Expect(b.RollingResistance).To(BeNumerically("~", v*in.RollingResistanceCoefficient*in.TotalMass*power.Gravity, 1e-9))
		})
	})

	Context("with wind", func() {
		aero := func(windVelocity, windDirection float64) float64 {
			in := referenceInput()
			in.BikeDirection = 90
			in.WindVelocity = windVelocity
			in.WindDirection = windDirection
			b, err := power.Compute(in)
			Expect(err).NotTo(HaveOccurred())
			return b.Aerodynamic
		}

		It("orders tailwind below calm below headwind", func() {
			tail := aero(3, 270)
			calm := aero(0, 90)
			head := aero(3, 90)
			Expect(tail).To(BeNumerically("<", calm))
			Expect(calm).To(BeNumerically("<", head))
		})

		It("ignores a pure crosswind", func() {
			in := referenceInput()
			in.BikeDirection = 0
			in.WindDirection = 90
			Expect(power.ApparentAirVelocity(in)).To(BeNumerically("~", in.GroundVelocity, 1e-9))
		})

		It("adds the tangential wind component to ground velocity", func() {
			in := referenceInput()
			expected := in.GroundVelocity + in.WindVelocity*math.Cos(-30*math.Pi/180)
			Expect(power.ApparentAirVelocity(in)).To(BeNumerically("~", expected, 1e-12))
		})
	})

	DescribeTable("rejects inputs that divide by zero",
		func(mutate func(*power.Input), field string) {
			in := referenceInput()
			mutate(&in)
			b, err := power.Compute(in)
			Expect(err).To(MatchError(power.ErrDivisionByZero))
			Expect(b).To(Equal(power.Breakdown{}))

			var de *power.DomainError
			Expect(errors.As(err, &de)).To(BeTrue())
			Expect(de.Field).To(Equal(field))
		},
		Entry("zero interval", func(in *power.Input) { in.FinalTime = in.InitialTime }, "final_time"),
		Entry("zero wheel radius", func(in *power.Input) { in.WheelRadius = 0 }, "wheel_radius"),
		Entry("zero efficiency", func(in *power.Input) { in.DrivetrainEfficiency = 0 }, "drivetrain_efficiency"),
	)

	It("scales total power with the inverse of drivetrain efficiency", func() {
		in := referenceInput()
		full, err := power.Compute(in)
		Expect(err).NotTo(HaveOccurred())

		in.DrivetrainEfficiency /= 2
		half, err := power.Compute(in)
		Expect(err).NotTo(HaveOccurred())

		Expect(half.Total).To(BeNumerically("~", 2*full.Total, 1e-9))
		Expect(half.Aerodynamic).To(Equal(full.Aerodynamic))
	})

	It("propagates physically meaningless values without failing", func() {
		in := referenceInput()
		in.TotalMass = -90
		in.RoadGradient = -0.5
		in.GroundVelocity = -3
		_, err := power.Compute(in)
		Expect(err).NotTo(HaveOccurred())

		in.GroundVelocity = math.NaN()
		b, err := power.Compute(in)
		Expect(err).NotTo(HaveOccurred())
		Expect(math.IsNaN(b.Total)).To(BeTrue())
	})

	It("leaves the caller's input untouched", func() {
		in := referenceInput()
		_, _ = power.Compute(in)
		Expect(in).To(Equal(referenceInput()))
	})

	It("is safe to call concurrently", func() {
		expected, err := power.Compute(referenceInput())
		Expect(err).NotTo(HaveOccurred())

		var wg sync.WaitGroup
		results := make([]power.Breakdown, 32)
		for i := range results {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				results[i], _ = power.Compute(referenceInput())
			}(i)
		}
		wg.Wait()
		for _, r := range results {
			Expect(r).To(Equal(expected))
		}
	})
})

var _ = Describe("Breakdown.Values", func() {
	It("keeps the positional order", func() {
		b := power.Breakdown{
			Total:             1,
			Aerodynamic:       2,
			RollingResistance: 3,
			WheelBearing:      4,
			PotentialEnergy:   5,
			KineticEnergy:     6,
		}
		Expect(b.Values()).To(Equal([6]float64{1, 2, 3, 4, 5, 6}))
		Expect(b.Values()[power.IndexKineticEnergy]).To(Equal(b.KineticEnergy))
		Expect(power.Components[power.IndexAerodynamic]).To(Equal("aerodynamic"))
	})

	It("keeps the positional order for computed results", func() {
		b, err := power.Compute(referenceInput())
		Expect(err).NotTo(HaveOccurred())
		v := b.Values()
		Expect(v[power.IndexTotal]).To(Equal(b.Total))
		Expect(v[power.IndexAerodynamic]).To(Equal(b.Aerodynamic))
		Expect(v[power.IndexRollingResistance]).To(Equal(b.RollingResistance))
		Expect(v[power.IndexWheelBearing]).To(Equal(b.WheelBearing))
		Expect(v[power.IndexPotentialEnergy]).To(Equal(b.PotentialEnergy))
		Expect(v[power.IndexKineticEnergy]).To(Equal(b.KineticEnergy))
	})
})
