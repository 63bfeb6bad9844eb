package export

import (
	parquetbuffer "github.com/xitongsys/parquet-go-source/buffer"
	"github.com/xitongsys/parquet-go/parquet"
	"github.com/xitongsys/parquet-go/writer"

	"github.com/san-kum/cyclepower/internal/sweep"
)

type sweepParquetRow struct {
	Velocity          float64 `parquet:"name=velocity_mps, type=DOUBLE"`
	Total             float64 `parquet:"name=total_w, type=DOUBLE"`
	Aerodynamic       float64 `parquet:"name=aerodynamic_w, type=DOUBLE"`
	RollingResistance float64 `parquet:"name=rolling_resistance_w, type=DOUBLE"`
	WheelBearing      float64 `parquet:"name=wheel_bearing_w, type=DOUBLE"`
	PotentialEnergy   float64 `parquet:"name=potential_energy_w, type=DOUBLE"`
	KineticEnergy     float64 `parquet:"name=kinetic_energy_w, type=DOUBLE"`
}

// SweepToParquet encodes a sweep as a Snappy compressed parquet file.
func SweepToParquet(points []sweep.Point) ([]byte, error) {
	fw := parquetbuffer.NewBufferFile()
	pw, err := writer.NewParquetWriter(fw, new(sweepParquetRow), 4)
	if err != nil {
		return nil, err
	}
	pw.CompressionType = parquet.CompressionCodec_SNAPPY
	for _, p := range points {
		row := sweepParquetRow{
			Velocity:          p.Velocity,
			Total:             p.Breakdown.Total,
			Aerodynamic:       p.Breakdown.Aerodynamic,
			RollingResistance: p.Breakdown.RollingResistance,
			WheelBearing:      p.Breakdown.WheelBearing,
			PotentialEnergy:   p.Breakdown.PotentialEnergy,
			KineticEnergy:     p.Breakdown.KineticEnergy,
		}
		if err := pw.Write(row); err != nil {
			_ = pw.WriteStop()
			return nil, err
		}
	}
	if err := pw.WriteStop(); err != nil {
		return nil, err
	}
	if err := fw.Close(); err != nil {
		return nil, err
	}
	return append([]byte(nil), fw.Bytes()...), nil
}
