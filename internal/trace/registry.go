package trace

import (
	"fmt"
	"math/rand"
	"sort"
)

// Plan generates the actions of a workload of n primary operations.
type Plan func(n int, rng *rand.Rand) []Action

type Registry struct {
	workloads map[string]Plan
}

func NewRegistry() *Registry {
	r := &Registry{workloads: make(map[string]Plan)}

	r.workloads["push_back"] = func(n int, rng *rand.Rand) []Action {
		return pushes(OpPushBack, n)
	}
	r.workloads["push_front"] = func(n int, rng *rand.Rand) []Action {
		return pushes(OpPushFront, n)
	}
	r.workloads["drain"] = func(n int, rng *rand.Rand) []Action {
		actions := pushes(OpPushBack, n)
		for i := 0; i < n; i++ {
			actions = append(actions, Action{Op: OpPopFront})
		}
		return actions
	}
	r.workloads["churn"] = func(n int, rng *rand.Rand) []Action {
		actions := pushes(OpPushBack, n)
		actions = append(actions, Action{Op: OpClear})
		return append(actions, pushes(OpPushBack, n)...)
	}
	r.workloads["middle"] = func(n int, rng *rand.Rand) []Action {
		actions := pushes(OpPushBack, n)
		for size := n; size > 0; size-- {
			actions = append(actions, Action{Op: OpRemoveAt, Arg: size / 2})
		}
		return actions
	}
	r.workloads["mixed"] = func(n int, rng *rand.Rand) []Action {
		actions := make([]Action, 0, n)
		for i := 0; i < n; i++ {
			p := rng.Intn(100)
			switch {
			case p < 40:
				actions = append(actions, Action{Op: OpPushBack, Arg: i})
			case p < 50:
				actions = append(actions, Action{Op: OpPushFront, Arg: i})
			case p < 75:
				actions = append(actions, Action{Op: OpPopBack})
			case p < 85:
				actions = append(actions, Action{Op: OpPopFront})
			default:
				actions = append(actions, Action{Op: OpRemoveAt, Arg: rng.Intn(i + 1)})
			}
		}
		return actions
	}

	return r
}

// Register adds or replaces a workload.
func (r *Registry) Register(name string, p Plan) {
	r.workloads[name] = p
}

func (r *Registry) Get(name string) (Plan, error) {
	p, ok := r.workloads[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownWorkload, name)
	}
	return p, nil
}

func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.workloads))
	for name := range r.workloads {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func pushes(op Op, n int) []Action {
	actions := make([]Action, 0, n)
	for i := 0; i < n; i++ {
		actions = append(actions, Action{Op: op, Arg: i})
	}
	return actions
}
