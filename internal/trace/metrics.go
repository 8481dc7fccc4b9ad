package trace

type Reallocations struct{ n int }

func (m *Reallocations) Name() string { return "reallocations" }
func (m *Reallocations) Observe(s Step) {
	if s.Grew {
		m.n++
	}
}
func (m *Reallocations) Value() float64 { return float64(m.n) }
func (m *Reallocations) Reset()         { m.n = 0 }

type CopiedElements struct{ n int }

func (m *CopiedElements) Name() string   { return "copied_elements" }
func (m *CopiedElements) Observe(s Step) { m.n += s.Copied }
func (m *CopiedElements) Value() float64 { return float64(m.n) }
func (m *CopiedElements) Reset()         { m.n = 0 }

type ShiftedElements struct{ n int }

func (m *ShiftedElements) Name() string   { return "shifted_elements" }
func (m *ShiftedElements) Observe(s Step) { m.n += s.Shifted }
func (m *ShiftedElements) Value() float64 { return float64(m.n) }
func (m *ShiftedElements) Reset()         { m.n = 0 }

// AmortizedCost averages element writes over accepted operations.
type AmortizedCost struct {
	total int
	ops   int
}

func (m *AmortizedCost) Name() string { return "amortized_cost" }

func (m *AmortizedCost) Observe(s Step) {
	if s.Err != "" {
		return
	}
	m.total += s.Cost()
	m.ops++
}

func (m *AmortizedCost) Value() float64 {
	if m.ops == 0 {
		return 0
	}
	return float64(m.total) / float64(m.ops)
}

func (m *AmortizedCost) Reset() { m.total, m.ops = 0, 0 }

type PeakCapacity struct{ peak int }

func (m *PeakCapacity) Name() string { return "peak_capacity" }
func (m *PeakCapacity) Observe(s Step) {
	if s.Capacity > m.peak {
		m.peak = s.Capacity
	}
}
func (m *PeakCapacity) Value() float64 { return float64(m.peak) }
func (m *PeakCapacity) Reset()         { m.peak = 0 }

// FinalUtilization is size/capacity after the last observed step.
type FinalUtilization struct{ size, capacity int }

func (m *FinalUtilization) Name() string { return "final_utilization" }
func (m *FinalUtilization) Observe(s Step) {
	m.size, m.capacity = s.Size, s.Capacity
}

func (m *FinalUtilization) Value() float64 {
	if m.capacity == 0 {
		return 0
	}
	return float64(m.size) / float64(m.capacity)
}

func (m *FinalUtilization) Reset() { m.size, m.capacity = 0, 0 }

type RejectedOps struct{ n int }

func (m *RejectedOps) Name() string { return "rejected_ops" }
func (m *RejectedOps) Observe(s Step) {
	if s.Err != "" {
		m.n++
	}
}
func (m *RejectedOps) Value() float64 { return float64(m.n) }
func (m *RejectedOps) Reset()         { m.n = 0 }

func DefaultMetrics() []Metric {
	return []Metric{
		&Reallocations{},
		&CopiedElements{},
		&ShiftedElements{},
		&AmortizedCost{},
		&PeakCapacity{},
		&FinalUtilization{},
		&RejectedOps{},
	}
}
