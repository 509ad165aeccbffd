// Package storage persists shower runs under a data directory, one
// subdirectory per run holding metadata.json and segments.csv.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/kinjalh/Physics-Jet-Simulator-3D/internal/shower"
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
	ID         string     `json:"id"`
	Timestamp  time.Time  `json:"timestamp"`
	Seed       int64      `json:"seed"`
	Layers     int        `json:"layers"`
	Theta0     float64    `json:"theta0"`
	BackToBack bool       `json:"back_to_back"`
	Momentum   [3]float64 `json:"momentum"`
	Partons    int        `json:"partons"`
	Leaves     int        `json:"leaves"`
}

// Save writes a run's metadata and its flattened segments. The run ID is
// derived from the save time.
func (s *Store) Save(meta RunMetadata, segs []shower.Segment) (string, error) {
	runID := fmt.Sprintf("shower_%d", time.Now().UnixNano())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta.ID = runID
	meta.Timestamp = time.Now()

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

	csvFile, err := os.Create(filepath.Join(runDir, "segments.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	header := []string{"x0", "y0", "z0", "x1", "y1", "z1"}
	if err := w.Write(header); err != nil {
		return "", err
	}

	for _, seg := range segs {
		row := make([]string, 0, 6)
		for _, v := range []float64{seg.Start.X, seg.Start.Y, seg.Start.Z, seg.End.X, seg.End.Y, seg.End.Z} {
			row = append(row, strconv.FormatFloat(v, 'f', 6, 64))
		}
		if err := w.Write(row); err != nil {
			return "", err
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

func (s *Store) LoadSegments(runID string) ([]shower.Segment, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "segments.csv"))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	if len(records) < 2 {
		return []shower.Segment{}, nil
	}

	segs := make([]shower.Segment, 0, len(records)-1)
	for _, record := range records[1:] {
		if len(record) < 6 {
			continue
		}
		var vals [6]float64
		ok := true
		for i := 0; i < 6; i++ {
			v, err := strconv.ParseFloat(record[i], 64)
			if err != nil {
				ok = false
				break
			}
			vals[i] = v
		}
		if !ok {
			continue
		}
		segs = append(segs, shower.Segment{
			Start: shower.Point{X: vals[0], Y: vals[1], Z: vals[2]},
			End:   shower.Point{X: vals[3], Y: vals[4], Z: vals[5]},
		})
	}

	return segs, nil
}
