// Package trace drives workloads against a [vector.Vector] and records how
// its size and capacity evolve.
//
//   - [Registry]: named workloads (push_back, push_front, mixed, ...)
//   - [Runner]: executes a workload step by step and feeds [Metric]s
//   - [Apply]: performs one [Action] and reports its [Step] cost
//
// # Example
//
//	r := trace.NewRunner(trace.NewRegistry())
//	for _, m := range trace.DefaultMetrics() {
//	    r.AddMetric(m)
//	}
//	res, _ := r.Run(ctx, trace.Config{Workload: "push_back", Count: 64})
//	fmt.Println(res.Metrics["reallocations"]) // 7
package trace
