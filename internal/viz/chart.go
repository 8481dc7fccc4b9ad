package viz

import (
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/dynvec/internal/trace"
)

// PlotTrace charts size and capacity for every step of a run. It returns an
// empty string when there are no steps.
func PlotTrace(steps []trace.Step, width, height int) string {
	if len(steps) == 0 {
		return ""
	}
	size := make([]float64, len(steps))
	capacity := make([]float64, len(steps))
	for i, s := range steps {
		size[i] = float64(s.Size)
		capacity[i] = float64(s.Capacity)
	}
	return asciigraph.PlotMany(
		[][]float64{size, capacity},
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption("size / capacity per step"),
	)
}

// PlotCost charts the write cost of each step, which spikes on reallocation.
func PlotCost(steps []trace.Step, width, height int) string {
	if len(steps) == 0 {
		return ""
	}
	cost := make([]float64, len(steps))
	for i, s := range steps {
		cost[i] = float64(s.Cost())
	}
	return asciigraph.Plot(cost,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption("element writes per step"),
	)
}
