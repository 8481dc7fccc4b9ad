package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/san-kum/dynvec/internal/trace"
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
	ID              string             `json:"id"`
	Workload        string             `json:"workload"`
	Timestamp       time.Time          `json:"timestamp"`
	Count           int                `json:"count"`
	InitialCapacity int                `json:"initial_capacity"`
	Seed            int64              `json:"seed"`
	Steps           int                `json:"steps"`
	FinalSize       int                `json:"final_size"`
	FinalCapacity   int                `json:"final_capacity"`
	Metrics         map[string]float64 `json:"metrics"`
}

var stepHeader = []string{"index", "op", "arg", "size", "capacity", "grew", "copied", "shifted", "err"}

func (s *Store) Save(result *trace.Result) (string, error) {
	now := time.Now()
	runID := fmt.Sprintf("%s_s%d_%d", result.Config.Workload, result.Config.Seed, now.UnixNano())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:              runID,
		Workload:        result.Config.Workload,
		Timestamp:       now,
		Count:           result.Config.Count,
		InitialCapacity: result.Config.InitialCapacity,
		Seed:            result.Config.Seed,
		Steps:           len(result.Steps),
		FinalSize:       len(result.Final),
		FinalCapacity:   result.Config.InitialCapacity,
		Metrics:         result.Metrics,
	}
	if n := len(result.Steps); n > 0 {
		meta.FinalCapacity = result.Steps[n-1].Capacity
	}

	err := writeFile(filepath.Join(runDir, "metadata.json"), func(w io.Writer) error {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(meta)
	})
	if err != nil {
		return "", err
	}

	err = writeFile(filepath.Join(runDir, "steps.csv"), func(w io.Writer) error {
		return WriteStepsCSV(w, result.Steps)
	})
	if err != nil {
		return "", err
	}
	return runID, nil
}

// writeFile creates path and runs write on it. A failed Close is reported
// since it can mean buffered data never reached disk.
func writeFile(path string, write func(w io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", filepath.Base(path), cerr)
		}
	}()
	return write(f)
}

// WriteStepsCSV writes a header row followed by one row per step.
func WriteStepsCSV(w io.Writer, steps []trace.Step) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(stepHeader); err != nil {
		return err
	}
	for _, st := range steps {
		row := []string{
			strconv.Itoa(st.Index),
			string(st.Op),
			strconv.Itoa(st.Arg),
			strconv.Itoa(st.Size),
			strconv.Itoa(st.Capacity),
			strconv.FormatBool(st.Grew),
			strconv.Itoa(st.Copied),
			strconv.Itoa(st.Shifted),
			st.Err,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// List returns the metadata of every readable run, oldest first.
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

func (s *Store) LoadSteps(runID string) ([]trace.Step, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "steps.csv"))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = len(stepHeader)

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return []trace.Step{}, nil
	}

	steps := make([]trace.Step, 0, len(records)-1)
	for i, rec := range records[1:] {
		st, err := parseStep(rec)
		if err != nil {
			return nil, fmt.Errorf("steps.csv row %d: %w", i+2, err)
		}
		steps = append(steps, st)
	}
	return steps, nil
}

func parseStep(rec []string) (trace.Step, error) {
	var st trace.Step
	ints := []*int{&st.Index, nil, &st.Arg, &st.Size, &st.Capacity, nil, &st.Copied, &st.Shifted}
	for i, dst := range ints {
		if dst == nil {
			continue
		}
		n, err := strconv.Atoi(rec[i])
		if err != nil {
			return st, err
		}
		*dst = n
	}
	grew, err := strconv.ParseBool(rec[5])
	if err != nil {
		return st, err
	}
	st.Op = trace.Op(rec[1])
	st.Grew = grew
	st.Err = rec[8]
	return st, nil
}

type runExport struct {
	*RunMetadata
	StepData []trace.Step `json:"step_data"`
}

// ExportJSON writes the run metadata and its steps as one JSON document.
func (s *Store) ExportJSON(w io.Writer, runID string) error {
	meta, err := s.Load(runID)
	if err != nil {
		return err
	}
	steps, err := s.LoadSteps(runID)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(runExport{RunMetadata: meta, StepData: steps})
}
