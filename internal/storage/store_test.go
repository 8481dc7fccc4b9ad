package storage

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/san-kum/dynvec/internal/trace"
)

func sampleResult() *trace.Result {
	return &trace.Result{
		Config: trace.Config{Workload: "test", Count: 3, Seed: 42},
		Steps: []trace.Step{
			{Index: 0, Op: trace.OpPushBack, Arg: 10, Size: 1, Capacity: 1, Grew: true},
			{Index: 1, Op: trace.OpPushBack, Arg: 20, Size: 2, Capacity: 2, Grew: true, Copied: 1},
			{Index: 2, Op: trace.OpRemoveAt, Arg: 5, Size: 2, Capacity: 2, Err: "RemoveAt: vector: index out of range (index 5, size 2)"},
		},
		Final: []int{10, 20},
		Metrics: map[string]float64{
			"reallocations": 2,
		},
	}
}

func TestStoreSaveLoad(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	runID, err := st.Save(sampleResult())
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if !strings.HasPrefix(runID, "test_") {
		t.Errorf("expected run id prefixed with workload, got %s", runID)
	}

	meta, err := st.Load(runID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if meta.Workload != "test" {
		t.Errorf("expected workload 'test', got '%s'", meta.Workload)
	}
	if meta.Seed != 42 {
		t.Errorf("expected seed 42, got %d", meta.Seed)
	}
	if meta.FinalSize != 2 || meta.FinalCapacity != 2 {
		t.Errorf("expected final size 2 cap 2, got %d/%d", meta.FinalSize, meta.FinalCapacity)
	}
	if meta.Metrics["reallocations"] != 2 {
		t.Errorf("expected 2 reallocations, got %f", meta.Metrics["reallocations"])
	}

	steps, err := st.LoadSteps(runID)
	if err != nil {
		t.Fatalf("load steps failed: %v", err)
	}
	want := sampleResult().Steps
	if len(steps) != len(want) {
		t.Fatalf("expected %d steps, got %d", len(want), len(steps))
	}
	for i := range want {
		if steps[i] != want[i] {
			t.Errorf("step %d: expected %+v, got %+v", i, want[i], steps[i])
		}
	}
}

func TestStoreList(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	runs, err := st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected 0 runs, got %d", len(runs))
	}

	if _, err := st.Save(sampleResult()); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if err := os.WriteFile(filepath.Join(st.baseDir, "stray.txt"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	runs, err = st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 1 {
		t.Errorf("expected 1 run, got %d", len(runs))
	}
}

func TestStoreList_MissingDir(t *testing.T) {
	st := New(filepath.Join(t.TempDir(), "missing"))
	runs, err := st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected 0 runs, got %d", len(runs))
	}
}

func TestStoreFileStructure(t *testing.T) {
	tmpDir := t.TempDir()
	st := New(tmpDir)
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	runID, err := st.Save(sampleResult())
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	runDir := filepath.Join(tmpDir, runID)
	if _, err := os.Stat(filepath.Join(runDir, "metadata.json")); os.IsNotExist(err) {
		t.Error("metadata.json not created")
	}
	if _, err := os.Stat(filepath.Join(runDir, "steps.csv")); os.IsNotExist(err) {
		t.Error("steps.csv not created")
	}
}

func TestExportJSON(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatal(err)
	}
	runID, err := st.Save(sampleResult())
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := st.ExportJSON(&buf, runID); err != nil {
		t.Fatalf("export failed: %v", err)
	}

	var doc struct {
		ID       string       `json:"id"`
		Steps    int          `json:"steps"`
		StepData []trace.Step `json:"step_data"`
	}
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if doc.ID != runID || doc.Steps != 3 || len(doc.StepData) != 3 {
		t.Errorf("unexpected export: %+v", doc)
	}
}

func TestLoad_Unknown(t *testing.T) {
	st := New(t.TempDir())
	if _, err := st.Load("nope"); err == nil {
		t.Error("expected error for unknown run")
	}
	if _, err := st.LoadSteps("nope"); err == nil {
		t.Error("expected error for unknown run")
	}
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.txt")

	err := writeFile(path, func(w io.Writer) error {
		_, err := io.WriteString(w, "size,capacity\n")
		return err
	})
	if err != nil {
		t.Fatalf("write failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "size,capacity\n" {
		t.Errorf("expected flushed content, got %q", data)
	}

	errWrite := errors.New("encoder failed")
	if err := writeFile(path, func(io.Writer) error { return errWrite }); !errors.Is(err, errWrite) {
		t.Errorf("expected write error, got %v", err)
	}

	if err := writeFile(filepath.Join(dir, "missing", "out.txt"), func(io.Writer) error { return nil }); err == nil {
		t.Error("expected error for missing directory")
	}
}
