package trace

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/san-kum/dynvec/internal/vector"
)

type Runner struct {
	registry  *Registry
	metrics   []Metric
	observers []Observer
}

func NewRunner(registry *Registry) *Runner {
	return &Runner{
		registry:  registry,
		metrics:   make([]Metric, 0),
		observers: make([]Observer, 0),
	}
}

func (r *Runner) AddMetric(m Metric)     { r.metrics = append(r.metrics, m) }
func (r *Runner) AddObserver(o Observer) { r.observers = append(r.observers, o) }

// Run executes the configured workload on a fresh vector. Cancelling ctx
// stops the run between steps and returns the partial result.
func (r *Runner) Run(ctx context.Context, cfg Config) (*Result, error) {
	if cfg.Count < 0 {
		return nil, fmt.Errorf("%w: count %d", ErrInvalidConfig, cfg.Count)
	}
	if cfg.InitialCapacity < 0 {
		return nil, fmt.Errorf("%w: initial capacity %d", ErrInvalidConfig, cfg.InitialCapacity)
	}
	plan, err := r.registry.Get(cfg.Workload)
	if err != nil {
		return nil, err
	}

	actions := plan(cfg.Count, rand.New(rand.NewSource(cfg.Seed)))
	v := vector.WithCapacity[int](cfg.InitialCapacity)
	steps := vector.WithCapacity[Step](len(actions))

	for _, m := range r.metrics {
		m.Reset()
	}

	result := &Result{Config: cfg, Metrics: make(map[string]float64)}
	for i, a := range actions {
		select {
		case <-ctx.Done():
			r.finish(result, steps, v)
			return result, ctx.Err()
		default:
		}

		step := Apply(v, a)
		step.Index = i
		steps.PushBack(step)

		for _, m := range r.metrics {
			m.Observe(step)
		}
		for _, obs := range r.observers {
			obs.OnStep(step)
		}
	}

	r.finish(result, steps, v)
	return result, nil
}

func (r *Runner) finish(result *Result, steps *vector.Vector[Step], v *vector.Vector[int]) {
	result.Steps = steps.Values()
	result.Final = v.Values()
	for _, m := range r.metrics {
		result.Metrics[m.Name()] = m.Value()
	}
}
