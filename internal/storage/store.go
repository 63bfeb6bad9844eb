package storage

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/san-kum/cyclepower/internal/power"
	"github.com/san-kum/cyclepower/internal/sweep"
)

var ErrNoPoints = errors.New("storage: sweep has no points")

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Timestamp   time.Time   `json:"timestamp"`
	Input       power.Input `json:"input"`
	MinVelocity float64     `json:"min_velocity"`
	MaxVelocity float64     `json:"max_velocity"`
	Step        float64     `json:"step"`
	Points      int         `json:"points"`
	PeakTotal   float64     `json:"peak_total"`
}

var csvHeader = append([]string{"velocity"}, power.Components[:]...)

// Save writes a sweep to <id>/metadata.json and <id>/sweep.csv.
func (s *Store) Save(name string, base power.Input, step float64, points []sweep.Point) (string, error) {
	if len(points) == 0 {
		return "", ErrNoPoints
	}

	runID := fmt.Sprintf("%s_%s", name, uuid.NewString())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	peak, _ := sweep.Peak(points)
	meta := RunMetadata{
		ID:          runID,
		Name:        name,
		Timestamp:   time.Now(),
		Input:       base,
		MinVelocity: points[0].Velocity,
		MaxVelocity: points[len(points)-1].Velocity,
		Step:        step,
		Points:      len(points),
		PeakTotal:   peak.Breakdown.Total,
	}

	if err := writeJSON(filepath.Join(runDir, "metadata.json"), meta); err != nil {
		os.RemoveAll(runDir)
		return "", err
	}
	if err := writeCSV(filepath.Join(runDir, "sweep.csv"), points); err != nil {
		os.RemoveAll(runDir)
		return "", err
	}

	return runID, nil
}

func writeJSON(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeCSV(path string, points []sweep.Point) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := WriteSweepCSV(w, points); err != nil {
		return err
	}
	return f.Sync()
}

// WriteSweepCSV writes a header row and one row per point, then flushes.
func WriteSweepCSV(w *csv.Writer, points []sweep.Point) error {
	if err := w.Write(csvHeader); err != nil {
		return err
	}

	for _, p := range points {
		row := []string{strconv.FormatFloat(p.Velocity, 'g', -1, 64)}
		for _, val := range p.Breakdown.Values() {
			row = append(row, strconv.FormatFloat(val, 'g', -1, 64))
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

// List returns every readable run, oldest first.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool {
		return runs[i].Timestamp.Before(runs[j].Timestamp)
	})
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	metaPath := filepath.Join(s.baseDir, runID, "metadata.json")
	data, err := os.ReadFile(metaPath)
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

// LoadSweep reads the points of a stored run. Malformed rows are skipped.
func (s *Store) LoadSweep(runID string) ([]sweep.Point, error) {
	csvPath := filepath.Join(s.baseDir, runID, "sweep.csv")
	file, err := os.Open(csvPath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	if len(records) < 2 {
		return []sweep.Point{}, nil
	}

	points := make([]sweep.Point, 0, len(records)-1)
	for _, record := range records[1:] {
		if len(record) != len(csvHeader) {
			continue
		}

		vals := make([]float64, len(record))
		ok := true
		for j, field := range record {
			vals[j], err = strconv.ParseFloat(field, 64)
			if err != nil {
				ok = false
				break
			}
		}
		if !ok {
			continue
		}

		points = append(points, sweep.Point{
			Velocity: vals[0],
			Breakdown: power.Breakdown{
				Total:             vals[1+power.IndexTotal],
				Aerodynamic:       vals[1+power.IndexAerodynamic],
				RollingResistance: vals[1+power.IndexRollingResistance],
				WheelBearing:      vals[1+power.IndexWheelBearing],
				PotentialEnergy:   vals[1+power.IndexPotentialEnergy],
				KineticEnergy:     vals[1+power.IndexKineticEnergy],
			},
		})
	}

	return points, nil
}
