package export

import (
	"encoding/json"
	"io"

	"github.com/san-kum/cyclepower/internal/power"
	"github.com/san-kum/cyclepower/internal/sweep"
)

type SweepData struct {
	Name       string       `json:"name"`
	Components []string     `json:"components"`
	Velocities []float64    `json:"velocities"`
	Power      [][6]float64 `json:"power"`
}

// SweepToJSON writes one ordered 6-value row per velocity.
func SweepToJSON(w io.Writer, name string, points []sweep.Point) error {
	data := SweepData{
		Name:       name,
		Components: power.Components[:],
		Velocities: sweep.Velocities(points),
		Power:      make([][6]float64, len(points)),
	}
	for i, p := range points {
		data.Power[i] = p.Breakdown.Values()
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}
