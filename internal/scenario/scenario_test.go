package scenario

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestBuiltin_Passes(t *testing.T) {
	var out bytes.Buffer
	report, err := Run(context.Background(), Builtin(), &out)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if !report.OK() {
		t.Fatalf("expected builtin scenario to pass, failures: %v", report.Failures)
	}
	if report.Passed != report.Steps {
		t.Errorf("expected %d passed steps, got %d", report.Steps, report.Passed)
	}
	if lines := strings.Count(out.String(), "\n"); lines != report.Steps {
		t.Errorf("expected %d progress lines, got %d", report.Steps, lines)
	}
}

func TestRun_ReportsMismatches(t *testing.T) {
	sc, err := Parse([]byte(`
name: broken
initial: [1, 2]
steps:
  - {op: pop_back, expect: {value: 1}}
  - {op: at, index: 5}
  - {op: push_back, value: 3, expect: {error: empty}}
  - {op: clear, expect: {values: [], capacity: 2}}
`))
	if err != nil {
		t.Fatal(err)
	}

	report, err := Run(context.Background(), sc, nil)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if report.Passed != 1 {
		t.Errorf("expected 1 passed step, got %d", report.Passed)
	}
	if len(report.Failures) != 3 {
		t.Fatalf("expected 3 failures, got %v", report.Failures)
	}
	if !strings.Contains(report.Failures[0], "expected value 1, got 2") {
		t.Errorf("unexpected failure text: %s", report.Failures[0])
	}
	if !strings.Contains(report.Failures[1], "unexpected error") {
		t.Errorf("unexpected failure text: %s", report.Failures[1])
	}
	for _, f := range report.Failures {
		if strings.HasPrefix(f, "step 4") {
			t.Errorf("clear should keep capacity 2, got failure: %s", f)
		}
	}
}

func TestRun_UnknownOp(t *testing.T) {
	sc := &Scenario{Steps: []Step{{Op: "push_back", Value: 1}, {Op: "insert"}}}
	report, err := Run(context.Background(), sc, nil)
	if !errors.Is(err, ErrUnknownOp) {
		t.Fatalf("expected ErrUnknownOp, got %v", err)
	}
	if report.Passed != 1 {
		t.Errorf("expected first step to pass, got %d", report.Passed)
	}
}

func TestRun_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Run(ctx, Builtin(), nil); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestRun_CapacityHint(t *testing.T) {
	sc := &Scenario{Capacity: 8, Initial: []int{1}, Steps: []Step{
		{Op: "push_back", Value: 2, Expect: &Expect{Capacity: intPtr(8)}},
	}}
	report, err := Run(context.Background(), sc, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !report.OK() {
		t.Errorf("unexpected failures: %v", report.Failures)
	}
}

func TestLoadScenario(t *testing.T) {
	path := filepath.Join(t.TempDir(), "s.yaml")
	data := []byte("name: file\nsteps:\n  - {op: push_back, value: 4, expect: {size: 1}}\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	sc, err := LoadScenario(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if sc.Name != "file" || len(sc.Steps) != 1 {
		t.Errorf("unexpected scenario: %+v", sc)
	}
	if sc.Steps[0].Expect == nil || *sc.Steps[0].Expect.Size != 1 {
		t.Error("expected size expectation to be parsed")
	}
}

func TestParse_Invalid(t *testing.T) {
	if _, err := Parse([]byte("capacity: -1")); err == nil {
		t.Error("expected error for negative capacity")
	}
	if _, err := Parse([]byte("steps: {")); err == nil {
		t.Error("expected yaml error")
	}
}

func intPtr(n int) *int { return &n }
