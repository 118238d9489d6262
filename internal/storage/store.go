// Package storage persists runs as a directory per run holding
// metadata.json and samples.csv.
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
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/san-kum/superball/internal/sim"
	"github.com/san-kum/superball/internal/superball"
)

const (
	metadataFile = "metadata.json"
	samplesFile  = "samples.csv"

	// column prefixes in samples.csv
	TensionPrefix = "T_"
	ControlPrefix = "dL_"
)

var ErrRunNotFound = errors.New("run not found")

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
	ID         string             `json:"id"`
	Model      string             `json:"model"`
	Timestamp  time.Time          `json:"timestamp"`
	Dt         float64            `json:"dt"`
	Duration   float64            `json:"duration"`
	Controller string             `json:"controller"`
	Steps      int                `json:"steps"`
	Actuators  []string           `json:"actuators"`
	Config     superball.Config   `json:"config"`
	Metrics    map[string]float64 `json:"metrics"`
}

// NewRunID returns a short unique run directory name.
func NewRunID(model string) string {
	return fmt.Sprintf("%s_%s", model, uuid.NewString()[:8])
}

func (s *Store) Save(meta RunMetadata, result *sim.Result) (string, error) {
	if meta.Model == "" {
		meta.Model = "superball"
	}
	if meta.ID == "" {
		meta.ID = NewRunID(meta.Model)
	}
	if meta.Timestamp.IsZero() {
		meta.Timestamp = time.Now()
	}
	meta.Steps = result.StepsTaken
	meta.Actuators = result.Actuators
	meta.Metrics = result.Metrics

	runDir := filepath.Join(s.baseDir, meta.ID)
	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	metaFile, err := os.Create(filepath.Join(runDir, metadataFile))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, samplesFile))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	if err := WriteCSV(csvFile, result); err != nil {
		return "", err
	}
	return meta.ID, nil
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
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool {
		return runs[i].Timestamp.After(runs[j].Timestamp)
	})
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, metadataFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrRunNotFound, runID)
		}
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// Samples is samples.csv read back: one row per recorded time.
type Samples struct {
	Columns []string
	Times   []float64
	Rows    [][]float64
}

// Column returns the series of the named column, or nil.
func (s *Samples) Column(name string) []float64 {
	for j, c := range s.Columns {
		if c != name {
			continue
		}
		out := make([]float64, len(s.Rows))
		for i, row := range s.Rows {
			if j < len(row) {
				out[i] = row[j]
			}
		}
		return out
	}
	return nil
}

// MeanTension averages every tension column per row.
func (s *Samples) MeanTension() []float64 {
	idx := make([]int, 0)
	for j, c := range s.Columns {
		if strings.HasPrefix(c, TensionPrefix) {
			idx = append(idx, j)
		}
	}
	out := make([]float64, len(s.Rows))
	if len(idx) == 0 {
		return out
	}
	for i, row := range s.Rows {
		sum := 0.0
		for _, j := range idx {
			if j < len(row) {
				sum += row[j]
			}
		}
		out[i] = sum / float64(len(idx))
	}
	return out
}

func (s *Store) LoadSamples(runID string) (*Samples, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, samplesFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrRunNotFound, runID)
		}
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	out := &Samples{}
	if len(records) == 0 {
		return out, nil
	}
	if len(records[0]) > 1 {
		out.Columns = records[0][1:]
	}

	for _, record := range records[1:] {
		if len(record) == 0 {
			continue
		}
		t, err := strconv.ParseFloat(record[0], 64)
		if err != nil {
			continue
		}

		row := make([]float64, 0, len(record)-1)
		for _, field := range record[1:] {
			val, err := strconv.ParseFloat(field, 64)
			if err != nil {
				val = 0
			}
			row = append(row, val)
		}
		out.Times = append(out.Times, t)
		out.Rows = append(out.Rows, row)
	}
	return out, nil
}

// LoadResult rebuilds a run result from disk so it can be exported again.
func (s *Store) LoadResult(runID string) (*RunMetadata, *sim.Result, error) {
	meta, err := s.Load(runID)
	if err != nil {
		return nil, nil, err
	}
	samples, err := s.LoadSamples(runID)
	if err != nil {
		return nil, nil, err
	}

	n := len(meta.Actuators)
	result := &sim.Result{
		Actuators:  meta.Actuators,
		Times:      samples.Times,
		States:     make([]sim.State, 0, len(samples.Rows)),
		Controls:   make([]sim.Control, 0, len(samples.Rows)),
		Metrics:    meta.Metrics,
		StepsTaken: meta.Steps,
	}
	for i, row := range samples.Rows {
		if len(row) < 2*n {
			return nil, nil, fmt.Errorf("%s: row %d has %d columns, want %d", runID, i, len(row), 2*n)
		}
		result.States = append(result.States, sim.State(row[:n]))
		if i > 0 {
			result.Controls = append(result.Controls, sim.Control(row[n:2*n]))
		}
	}
	return meta, result, nil
}
