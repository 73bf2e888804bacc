// Package storage records headless runs: one directory per run with
// metadata.json and a ticks.csv of per-body state over time.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/Syrthax/gravity-sim/internal/engine"
)

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
	ID           string    `json:"id"`
	Timestamp    time.Time `json:"timestamp"`
	Seed         int64     `json:"seed"`
	Dt           float64   `json:"dt"`
	Ticks        int       `json:"ticks"`
	Collisions   int       `json:"collisions"`
	ActiveBodies int       `json:"active_bodies"`
	TotalMass    float64   `json:"total_mass"`
}

// TickColumns is the ticks.csv schema, one row per body per recorded tick.
var TickColumns = []string{"tick", "body", "x", "y", "vx", "vy", "mass", "radius", "active"}

// Save writes one recorded run and returns its generated ID.
func (s *Store) Save(seed int64, dt float64, collisions int, frames [][]engine.BodyView) (string, error) {
	runID := fmt.Sprintf("gravity_%d", time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:         runID,
		Timestamp:  time.Now(),
		Seed:       seed,
		Dt:         dt,
		Ticks:      len(frames),
		Collisions: collisions,
	}
	if len(frames) > 0 {
		last := frames[len(frames)-1]
		for _, v := range last {
			if v.Active {
				meta.ActiveBodies++
				meta.TotalMass += v.Mass
			}
		}
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "ticks.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if err := w.Write(TickColumns); err != nil {
		return "", err
	}

	for tick, frame := range frames {
		for i, v := range frame {
			active := "0"
			if v.Active {
				active = "1"
			}
			row := []string{
				strconv.Itoa(tick),
				strconv.Itoa(i),
				strconv.FormatFloat(v.Pos.X, 'f', 6, 64),
				strconv.FormatFloat(v.Pos.Y, 'f', 6, 64),
				strconv.FormatFloat(v.Vel.X, 'f', 6, 64),
				strconv.FormatFloat(v.Vel.Y, 'f', 6, 64),
				strconv.FormatFloat(v.Mass, 'f', 6, 64),
				strconv.FormatFloat(v.Radius, 'f', 6, 64),
				active,
			}
			if err := w.Write(row); err != nil {
				return "", err
			}
		}
	}

	return runID, nil
}

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
		data, err := os.ReadFile(filepath.Join(s.baseDir, entry.Name(), "metadata.json"))
		if err != nil {
			continue
		}
		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}
		runs = append(runs, meta)
	}
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}
	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// LoadTicks reads ticks.csv back as numeric rows in TickColumns order.
func (s *Store) LoadTicks(runID string) ([][]float64, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "ticks.csv"))
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
		return [][]float64{}, nil
	}

	rows := make([][]float64, 0, len(records)-1)
	for _, record := range records[1:] {
		row := make([]float64, 0, len(record))
		ok := true
		for _, field := range record {
			val, err := strconv.ParseFloat(field, 64)
			if err != nil {
				ok = false
				break
			}
			row = append(row, val)
		}
		if ok {
			rows = append(rows, row)
		}
	}
	return rows, nil
}
