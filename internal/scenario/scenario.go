// Package scenario runs scripted sequences of vector operations and checks
// the vector against per-step expectations.
package scenario

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/san-kum/dynvec/internal/vector"
	"gopkg.in/yaml.v3"
)

var ErrUnknownOp = errors.New("scenario: unknown op")

// Scenario defines a scripted vector session.
type Scenario struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Capacity    int    `yaml:"capacity"`
	Initial     []int  `yaml:"initial"`
	Steps       []Step `yaml:"steps"`
}

// Step is a single operation with optional expectations.
type Step struct {
	Op     string  `yaml:"op"`
	Value  int     `yaml:"value"`
	Index  int     `yaml:"index"`
	Expect *Expect `yaml:"expect"`
}

// Expect lists the checks applied after a step. Unset fields are skipped.
type Expect struct {
	Size     *int   `yaml:"size"`
	Capacity *int   `yaml:"capacity"`
	Values   *[]int `yaml:"values"`
	Value    *int   `yaml:"value"`
	Error    string `yaml:"error"` // out_of_range | empty
}

type Report struct {
	Name     string
	Steps    int
	Passed   int
	Failures []string
}

func (r *Report) OK() bool { return len(r.Failures) == 0 }

// LoadScenario loads a scenario from a YAML file
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

func Parse(data []byte) (*Scenario, error) {
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, err
	}
	if sc.Capacity < 0 {
		return nil, fmt.Errorf("scenario %q: negative capacity %d", sc.Name, sc.Capacity)
	}
	return &sc, nil
}

// Run executes every step of sc on a fresh vector. Expectation mismatches
// are collected in the report; an unknown op aborts the run. Progress is
// written to w when it is non-nil.
func Run(ctx context.Context, sc *Scenario, w io.Writer) (*Report, error) {
	v := vector.WithCapacity[int](max(sc.Capacity, len(sc.Initial)))
	for _, x := range sc.Initial {
		v.PushBack(x)
	}

	report := &Report{Name: sc.Name, Steps: len(sc.Steps)}
	for i, step := range sc.Steps {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		out, err := apply(v, step)
		if err != nil {
			return report, fmt.Errorf("step %d: %w", i+1, err)
		}

		failures := check(v, step.Expect, out)
		for _, f := range failures {
			report.Failures = append(report.Failures, fmt.Sprintf("step %d (%s): %s", i+1, step.Op, f))
		}
		if len(failures) == 0 {
			report.Passed++
		}

		if w != nil {
			status := "ok"
			if len(failures) > 0 {
				status = "FAIL"
			}
			fmt.Fprintf(w, "step %d/%d: %-10s %s %s\n", i+1, len(sc.Steps), step.Op, v, status)
		}
	}
	return report, nil
}

// outcome is what a single op produced: the element it returned, if any,
// and the error the vector reported.
type outcome struct {
	value *int
	err   error
}

func apply(v *vector.Vector[int], step Step) (outcome, error) {
	var (
		x   int
		err error
	)
	switch step.Op {
	case "push_back":
		v.PushBack(step.Value)
		return outcome{}, nil
	case "push_front":
		v.PushFront(step.Value)
		return outcome{}, nil
	case "clear":
		v.Clear()
		return outcome{}, nil
	case "remove_at":
		return outcome{err: v.RemoveAt(step.Index)}, nil
	case "pop_back":
		x, err = v.PopBack()
	case "pop_front":
		x, err = v.PopFront()
	case "at":
		x, err = v.At(step.Index)
	case "front":
		x, err = v.Front()
	case "back":
		x, err = v.Back()
	default:
		return outcome{}, fmt.Errorf("%w: %q", ErrUnknownOp, step.Op)
	}
	if err != nil {
		return outcome{err: err}, nil
	}
	return outcome{value: &x}, nil
}

func check(v *vector.Vector[int], exp *Expect, out outcome) []string {
	got, opErr := out.value, out.err
	var failures []string
	if exp == nil {
		if opErr != nil {
			failures = append(failures, fmt.Sprintf("unexpected error: %v", opErr))
		}
		return failures
	}

	switch exp.Error {
	case "":
		if opErr != nil {
			failures = append(failures, fmt.Sprintf("unexpected error: %v", opErr))
		}
	case "out_of_range", "empty":
		want := vector.ErrOutOfRange
		if exp.Error == "empty" {
			want = vector.ErrEmptyContainer
		}
		if !errors.Is(opErr, want) {
			failures = append(failures, fmt.Sprintf("expected %v, got %v", want, opErr))
		}
	default:
		failures = append(failures, fmt.Sprintf("unknown expected error %q", exp.Error))
	}

	if exp.Size != nil && v.Size() != *exp.Size {
		failures = append(failures, fmt.Sprintf("expected size %d, got %d", *exp.Size, v.Size()))
	}
	if exp.Capacity != nil && v.Capacity() != *exp.Capacity {
		failures = append(failures, fmt.Sprintf("expected capacity %d, got %d", *exp.Capacity, v.Capacity()))
	}
	if exp.Values != nil && !slices.Equal(v.Values(), *exp.Values) {
		failures = append(failures, fmt.Sprintf("expected values %v, got %v", *exp.Values, v.Values()))
	}
	if exp.Value != nil {
		switch {
		case got == nil:
			failures = append(failures, fmt.Sprintf("expected value %d, got none", *exp.Value))
		case *got != *exp.Value:
			failures = append(failures, fmt.Sprintf("expected value %d, got %d", *exp.Value, *got))
		}
	}
	return failures
}
