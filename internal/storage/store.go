package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Store persists runs under a base directory, one subdirectory per run
// holding metadata.json and samples.csv.
type Store struct {
	baseDir string
}

// now is swapped out in tests for deterministic run ids.
var now = time.Now

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

// RunMetadata describes a stored run.
type RunMetadata struct {
	ID        string             `json:"id"`
	Kind      string             `json:"kind"`
	Method    string             `json:"method"`
	Problem   string             `json:"problem"`
	Timestamp time.Time          `json:"timestamp"`
	Params    map[string]float64 `json:"params"`
	Summary   map[string]float64 `json:"summary"`
}

// Series is the tabular sample record of a run: a trajectory, a
// convergence history, or a solution vector.
type Series struct {
	Header []string
	Rows   [][]float64
}

// Save writes a new run and returns its id.
func (s *Store) Save(kind, method, problem string, params, summary map[string]float64, series Series) (string, error) {
	runID := fmt.Sprintf("%s_%s_%d", kind, problem, now().UnixNano())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        runID,
		Kind:      kind,
		Method:    method,
		Problem:   problem,
		Timestamp: now(),
		Params:    params,
		Summary:   summary,
	}

	if err := writeRun(runDir, meta, series); err != nil {
		// A half-written run would show up in List.
		os.RemoveAll(runDir)
		return "", err
	}
	return runID, nil
}

func writeRun(runDir string, meta RunMetadata, series Series) error {
	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "samples.csv"))
	if err != nil {
		return err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	if len(series.Header) == 0 {
		return nil
	}
	if err := w.Write(series.Header); err != nil {
		return err
	}
	for _, row := range series.Rows {
		record := make([]string, len(row))
		for i, val := range row {
			record[i] = strconv.FormatFloat(val, 'g', 17, 64)
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// List returns the metadata of every stored run.
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

	return runs, nil
}

// Load reads one run's metadata.
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

// LoadSeries reads one run's sample table.
func (s *Store) LoadSeries(runID string) (Series, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "samples.csv"))
	if err != nil {
		return Series{}, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return Series{}, err
	}
	if len(records) == 0 {
		return Series{}, nil
	}

	series := Series{
		Header: records[0],
		Rows:   make([][]float64, 0, len(records)-1),
	}
	for _, record := range records[1:] {
		row := make([]float64, len(record))
		for i, field := range record {
			val, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return Series{}, fmt.Errorf("run %s: bad sample %q: %w", runID, field, err)
			}
			row[i] = val
		}
		series.Rows = append(series.Rows, row)
	}

	return series, nil
}

// Column extracts a named column from the series, and reports whether the
// name exists.
func (s Series) Column(name string) ([]float64, bool) {
	col := -1
	for i, h := range s.Header {
		if h == name {
			col = i
			break
		}
	}
	if col < 0 {
		return nil, false
	}

	out := make([]float64, 0, len(s.Rows))
	for _, row := range s.Rows {
		if col < len(row) {
			out = append(out, row[col])
		}
	}
	return out, true
}

// ExportJSON writes a run's metadata and samples as one JSON document.
func (s *Store) ExportJSON(w io.Writer, runID string) error {
	meta, err := s.Load(runID)
	if err != nil {
		return err
	}
	series, err := s.LoadSeries(runID)
	if err != nil {
		return err
	}

	doc := struct {
		RunMetadata
		Header  []string    `json:"header"`
		Samples [][]float64 `json:"samples"`
	}{
		RunMetadata: *meta,
		Header:      series.Header,
		Samples:     series.Rows,
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
