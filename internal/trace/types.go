package trace

import (
	"errors"
	"fmt"
)

type Op string

const (
	OpPushBack  Op = "push_back"
	OpPushFront Op = "push_front"
	OpPopBack   Op = "pop_back"
	OpPopFront  Op = "pop_front"
	OpRemoveAt  Op = "remove_at"
	OpClear     Op = "clear"
)

func ParseOp(s string) (Op, error) {
	switch op := Op(s); op {
	case OpPushBack, OpPushFront, OpPopBack, OpPopFront, OpRemoveAt, OpClear:
		return op, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownOp, s)
}

// Action is one operation of a workload. Arg is the pushed value or the
// index for remove_at.
type Action struct {
	Op  Op
	Arg int
}

// Step records the vector state after an action. Copied counts elements
// moved by a reallocation; Shifted counts elements moved to open or close a
// gap.
type Step struct {
	Index    int    `json:"index"`
	Op       Op     `json:"op"`
	Arg      int    `json:"arg"`
	Size     int    `json:"size"`
	Capacity int    `json:"capacity"`
	Grew     bool   `json:"grew"`
	Copied   int    `json:"copied"`
	Shifted  int    `json:"shifted"`
	Err      string `json:"err,omitempty"`
}

// Cost is the number of element writes the step performed.
func (s Step) Cost() int {
	if s.Err != "" {
		return 0
	}
	return 1 + s.Copied + s.Shifted
}

type Metric interface {
	Name() string
	Observe(s Step)
	Value() float64
	Reset()
}

type Observer interface {
	OnStep(s Step)
}

type Config struct {
	Workload        string `json:"workload"`
	Count           int    `json:"count"`
	InitialCapacity int    `json:"initial_capacity"`
	Seed            int64  `json:"seed"`
}

type Result struct {
	Config  Config             `json:"config"`
	Steps   []Step             `json:"steps"`
	Final   []int              `json:"final"`
	Metrics map[string]float64 `json:"metrics"`
}

var (
	ErrUnknownWorkload = errors.New("trace: unknown workload")
	ErrUnknownOp       = errors.New("trace: unknown op")
	ErrInvalidConfig   = errors.New("trace: invalid config")
)
