package trace

import (
	"context"
	"sync"
)

// Ensemble runs one workload under consecutive seeds in parallel. Metrics
// hold per-run state, so each run gets a fresh set from newMetrics.
type Ensemble struct {
	registry   *Registry
	newMetrics func() []Metric
	numRuns    int
	seedStart  int64
}

func NewEnsemble(registry *Registry, newMetrics func() []Metric, numRuns int, seedStart int64) *Ensemble {
	return &Ensemble{registry: registry, newMetrics: newMetrics, numRuns: numRuns, seedStart: seedStart}
}

// Run returns one result per seed in seed order. The first error from any
// run is returned and the results are discarded.
func (e *Ensemble) Run(ctx context.Context, cfg Config) ([]*Result, error) {
	results := make([]*Result, e.numRuns)
	errs := make([]error, e.numRuns)

	var wg sync.WaitGroup
	for i := 0; i < e.numRuns; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			cfgCopy := cfg
			cfgCopy.Seed = e.seedStart + int64(idx)

			r := NewRunner(e.registry)
			if e.newMetrics != nil {
				for _, m := range e.newMetrics() {
					r.AddMetric(m)
				}
			}

			results[idx], errs[idx] = r.Run(ctx, cfgCopy)
		}(i)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return results, nil
}

// MeanMetrics averages each metric across results.
func MeanMetrics(results []*Result) map[string]float64 {
	mean := make(map[string]float64)
	if len(results) == 0 {
		return mean
	}
	for _, r := range results {
		for name, v := range r.Metrics {
			mean[name] += v
		}
	}
	for name := range mean {
		mean[name] /= float64(len(results))
	}
	return mean
}
