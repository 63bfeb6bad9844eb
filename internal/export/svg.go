package export

import (
	"fmt"
	"math"
	"strings"

	"github.com/san-kum/cyclepower/internal/power"
	"github.com/san-kum/cyclepower/internal/sweep"
)

var strokeColors = [6]string{"#ffffff", "#00ccff", "#ffcc00", "#ff00ff", "#ff4444", "#00ff88"}

const svgMargin = 40.0

// SweepToSVG draws every component of a sweep as a line over velocity.
func SweepToSVG(points []sweep.Point, width, height int) string {
	if len(points) < 2 {
		return ""
	}

	minX, maxX := points[0].Velocity, points[len(points)-1].Velocity
	minY, maxY := math.Inf(1), math.Inf(-1)
	for _, p := range points {
		for _, v := range p.Breakdown.Values() {
			minY = math.Min(minY, v)
			maxY = math.Max(maxY, v)
		}
	}

	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minY -= rangeY * 0.05
	maxY += rangeY * 0.05
	rangeY = maxY - minY

	plotW := float64(width) - 2*svgMargin
	plotH := float64(height) - 2*svgMargin
	toX := func(v float64) float64 { return svgMargin + (v-minX)/rangeX*plotW }
	toY := func(v float64) float64 { return svgMargin + plotH - (v-minY)/rangeY*plotH }

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<text x="%d" y="20" fill="#cccccc" font-family="monospace" font-size="14" text-anchor="middle">Power consumption over velocity</text>
`, width, height, width, height, width/2))

	// axes
	sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="#444466" d="M%.1f,%.1f L%.1f,%.1f L%.1f,%.1f"/>
`, svgMargin, svgMargin, svgMargin, svgMargin+plotH, svgMargin+plotW, svgMargin+plotH))
	sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" fill="#888899" font-family="monospace" font-size="11" text-anchor="middle">Velocity [m/s] %.1f..%.1f</text>
`, svgMargin+plotW/2, float64(height)-10, minX, maxX))
	sb.WriteString(fmt.Sprintf(`<text x="12" y="%.1f" fill="#888899" font-family="monospace" font-size="11" transform="rotate(-90 12 %.1f)" text-anchor="middle">Power [W]</text>
`, svgMargin+plotH/2, svgMargin+plotH/2))

	for c := range power.Components {
		sb.WriteString(fmt.Sprintf(`<path id="%s" fill="none" stroke="%s" stroke-width="1.5" d="M`, power.Components[c], strokeColors[c]))
		for i, p := range points {
			v := p.Breakdown.Values()[c]
			if i == 0 {
				sb.WriteString(fmt.Sprintf("%.1f,%.1f", toX(p.Velocity), toY(v)))
			} else {
				sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", toX(p.Velocity), toY(v)))
			}
		}
		sb.WriteString("\"/>\n")

		sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" fill="%s" font-family="monospace" font-size="11">%s</text>
`, svgMargin+10, svgMargin+14*float64(c+1), strokeColors[c], power.Components[c]))
	}

	sb.WriteString("</svg>")
	return sb.String()
}
