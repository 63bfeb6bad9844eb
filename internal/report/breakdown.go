package report

import (
	"fmt"
	"math"
	"strings"

	"github.com/san-kum/cyclepower/internal/power"
)

var componentLabels = [6]string{
	"total",
	"aerodynamic",
	"rolling resistance",
	"wheel bearing",
	"potential energy",
	"kinetic energy",
}

// ComponentLabel returns a human readable name for a Values index.
func ComponentLabel(component int) string {
	return componentLabels[component]
}

// Breakdown renders one evaluation as a panel: the conditions, each
// component in watts and its share of the power delivered at the wheel.
func Breakdown(b power.Breakdown, in power.Input) string {
	var sb strings.Builder

	sb.WriteString(Title.Render("power breakdown"))
	sb.WriteString("\n\n")
	sb.WriteString(row("ground velocity", fmt.Sprintf("%.2f m/s (%.1f km/h)", in.GroundVelocity, in.GroundVelocity*3.6)))
	sb.WriteString(row("apparent air", fmt.Sprintf("%.2f m/s", power.ApparentAirVelocity(in))))
	sb.WriteString(row("gradient", fmt.Sprintf("%.2f %%", in.RoadGradient*100)))
	sb.WriteString("\n")

	values := b.Values()
	wheel := values[power.IndexTotal] * in.DrivetrainEfficiency
	for i := power.IndexAerodynamic; i <= power.IndexKineticEnergy; i++ {
		share := 0.0
		if wheel != 0 {
			share = math.Abs(values[i] / wheel)
		}
		line := fmt.Sprintf("%8.1f W  %s %5.1f%%", values[i], ShareBar(share, 20), share*100)
		sb.WriteString(row(componentLabels[i], line))
	}
	sb.WriteString("\n")
	sb.WriteString(row(componentLabels[power.IndexTotal], fmt.Sprintf("%8.1f W", values[power.IndexTotal])))
	sb.WriteString(Subtle.Render(fmt.Sprintf("drivetrain efficiency %.1f %%", in.DrivetrainEfficiency*100)))

	return Panel.Render(sb.String())
}

func row(label, value string) string {
	return Label.Render(label) + Value.Render(value) + "\n"
}
